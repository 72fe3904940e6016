package mcp

import (
	"errors"
	"fmt"
	"strings"
)

// Configuration errors
var (
	ErrMissingConfig  = errors.New("missing required database configuration")
	ErrInvalidPort    = errors.New("invalid port")
	ErrInvalidDriver  = errors.New("invalid database driver")
	ErrInvalidTimeout = errors.New("invalid query timeout")
)

// Connection errors
var (
	ErrConnectionFailed     = errors.New("failed to connect to database")
	ErrConnectionTestFailed = errors.New("connection test failed")
	ErrBeginTransaction     = errors.New("error starting transaction")
)

// Argument errors
var (
	ErrInvalidArguments = errors.New("invalid arguments")
	ErrQueryRequired    = errors.New("query is required")
)

// Resource errors
var (
	ErrInvalidResourceURI = errors.New("invalid resource URI")
	ErrInvalidTableName   = errors.New("invalid table name")
	ErrReadingResource    = errors.New("error reading resource")
)

// Query errors
var (
	ErrReadingRow     = errors.New("error reading row")
	ErrReadingResults = errors.New("error reading results")
)

// ConfigurationError reports required settings that are absent or malformed.
// It is fatal and is raised before any database operation runs.
type ConfigurationError struct {
	Missing []string
	Err     error
}

func (e *ConfigurationError) Error() string {
	if len(e.Missing) > 0 {
		return fmt.Sprintf("%v: %s are required", e.Err, strings.Join(e.Missing, ", "))
	}
	return e.Err.Error()
}

func (e *ConfigurationError) Unwrap() error {
	return e.Err
}

// ConnectionError reports an unreachable database or rejected credentials.
type ConnectionError struct {
	Err error
}

func (e *ConnectionError) Error() string {
	return e.Err.Error()
}

func (e *ConnectionError) Unwrap() error {
	return e.Err
}

func newConnectionError(kind error, err error) *ConnectionError {
	return &ConnectionError{Err: fmt.Errorf("%w: %v", kind, err)}
}
