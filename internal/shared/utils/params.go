package utils

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"ddportal/internal/shared/errors"
)

// ParseIDParam parses and validates a numeric ID from a URL path parameter.
// paramName is the Gin route parameter name (e.g., "id", "entry_id").
// entityName is used in error messages (e.g., "ticket", "phase").
func ParseIDParam(c *gin.Context, paramName, entityName string) (uint, error) {
	idStr := c.Param(paramName)
	id, err := strconv.ParseUint(idStr, 10, 32)
	if err != nil || id == 0 {
		return 0, errors.NewValidationError("Invalid " + entityName + " ID")
	}
	return uint(id), nil
}
