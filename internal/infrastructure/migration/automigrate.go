package migration

import (
	"fmt"

	"gorm.io/gorm"

	"ddportal/internal/infrastructure/persistence/models"
	"ddportal/internal/shared/logger"
)

// AutoMigrateModels lists every persistence model in migration order.
func AutoMigrateModels() []interface{} {
	return []interface{}{
		&models.ClientModel{},
		&models.ProjectModel{},
		&models.PhaseModel{},
		&models.PhaseTemplateModel{},
		&models.TicketModel{},
		&models.CommentModel{},
		&models.TimeEntryModel{},
	}
}

// Run applies the schema with gorm AutoMigrate.
func Run(db *gorm.DB) error {
	targets := AutoMigrateModels()
	logger.Info("starting database migration", "models_count", len(targets))

	if err := db.AutoMigrate(targets...); err != nil {
		return fmt.Errorf("auto migration failed: %w", err)
	}

	logger.Info("database migration completed")
	return nil
}

// TableStatus reports whether a model's table exists in the database.
type TableStatus struct {
	Table  string
	Exists bool
}

// Status checks each persistence model against the connected schema.
func Status(db *gorm.DB) []TableStatus {
	migrator := db.Migrator()
	targets := AutoMigrateModels()

	statuses := make([]TableStatus, 0, len(targets))
	for _, target := range targets {
		stmt := &gorm.Statement{DB: db}
		if err := stmt.Parse(target); err != nil {
			continue
		}
		statuses = append(statuses, TableStatus{
			Table:  stmt.Schema.Table,
			Exists: migrator.HasTable(target),
		})
	}
	return statuses
}
