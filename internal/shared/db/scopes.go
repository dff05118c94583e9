// Package db provides database utilities including transaction management and query scopes.
package db

import (
	"gorm.io/gorm"
)

// NotDeleted is a GORM scope that filters out soft-deleted records.
// All normal reads of clients, projects, tickets and time entries go through
// this scope; soft-deleted rows stay in the table but never surface.
//
// Example usage:
//
//	db.Model(&Model{}).Scopes(db.NotDeleted()).Where("client_id = ?", id).Find(&results)
func NotDeleted() func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("deleted_at IS NULL")
	}
}

// NotDeletedWithAlias is a GORM scope that filters out soft-deleted records with a table alias.
// Use this when joining tables and need to specify which table's deleted_at to check.
func NotDeletedWithAlias(alias string) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where(alias + ".deleted_at IS NULL")
	}
}
