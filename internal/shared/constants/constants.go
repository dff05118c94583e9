package constants

// Pagination defaults.
const (
	DefaultPage     = 1
	DefaultPageSize = 20
	MaxPageSize     = 100
)

// Gin context keys set by the auth middleware.
const (
	ContextKeyUserID   = "user_id"
	ContextKeyUserRole = "user_role"
	ContextKeyClientID = "client_id"
)

// Time entry bounds in minutes. A single entry may not exceed one day.
const (
	MinTimeEntryMinutes = 1
	MaxTimeEntryMinutes = 1440
)
