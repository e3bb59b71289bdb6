package config

import "errors"

// Validation errors returned by [StructuredConfig.validate].
var (
	// ErrEmptyTokenSignKey indicates that neither APP_TOKEN_SIGN_KEY nor
	// JWT_KEY (nor the matching flag or JSON field) was provided.
	ErrEmptyTokenSignKey = errors.New("token sign key is not set")
	// ErrEmptyDSN indicates a missing database connection string.
	ErrEmptyDSN = errors.New("database DSN is not set")
	// ErrInvalidTimeZone indicates a database time zone that is not a
	// "+HH:MM"/"-HH:MM" offset.
	ErrInvalidTimeZone = errors.New("database time zone must be an offset like -08:00")
	// ErrInvalidTokenDuration indicates a negative token duration, which
	// would issue tokens that are already expired.
	ErrInvalidTokenDuration = errors.New("token duration must not be negative")
	// ErrInvalidPoolSize indicates a negative pool size.
	ErrInvalidPoolSize = errors.New("invalid database pool size")
)
