package constants

import "time"

const (
	// Environment constants
	EnvDevelopment = "development"
	EnvTest        = "test"
	EnvProduction  = "production"

	// Default pagination
	DefaultPage     = 1
	DefaultPageSize = 20
	MaxPageSize     = 100

	// Job run log listing
	DefaultJobRunLimit = 20
	MaxJobRunLimit     = 100

	// Bulk reminder operations
	MaxBulkReminders = 100

	// A pending dispatch claim older than this is treated as abandoned.
	DefaultDispatchClaimTTL = 45 * time.Minute

	// HTTP Headers
	HeaderAuthorization = "Authorization"
	HeaderXRequestID    = "X-Request-ID"

	// Context keys
	ContextKeyRequestID = "request_id"

	// Error messages
	ErrMsgInternalServerError = "Internal server error occurred"
)
