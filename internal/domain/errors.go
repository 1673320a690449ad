package domain

import "errors"

var (
	ErrAlreadyRunning      = errors.New("stopwatch is already running")
	ErrBlockNotFound       = errors.New("block not found")
	ErrConstraintViolation = errors.New("constraint violation")
	ErrIntegrity           = errors.New("store integrity fault")
	ErrMigration           = errors.New("schema migration failed")
	ErrNotRunning          = errors.New("stopwatch is not running")
	ErrStorageUnavailable  = errors.New("storage unavailable")
	ErrTagNameEmpty        = errors.New("tag name must not be empty")
	ErrTagNotFound         = errors.New("tag not found")
	ErrUnsupportedVersion  = errors.New("store schema version is newer than supported")
)
