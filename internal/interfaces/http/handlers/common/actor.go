// Package common provides shared HTTP handler utilities.
package common

import (
	"github.com/gin-gonic/gin"

	"ddportal/internal/shared/authorization"
	"ddportal/internal/shared/constants"
)

// Actor is the authenticated caller's identity as stashed in the gin context
// by the auth middleware.
type Actor struct {
	ID       uint
	Role     authorization.UserRole
	ClientID uint
}

// ActorFromContext reads the caller's identity from the gin context. Routes
// behind RequireAuth always have these keys set.
func ActorFromContext(c *gin.Context) Actor {
	return Actor{
		ID:       c.GetUint(constants.ContextKeyUserID),
		Role:     authorization.UserRole(c.GetString(constants.ContextKeyUserRole)),
		ClientID: c.GetUint(constants.ContextKeyClientID),
	}
}
