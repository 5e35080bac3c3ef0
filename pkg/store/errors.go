// Package store is the gateway to the relational backend: one connection,
// statement execution and text materialization of result sets.
package store

import (
	"errors"
	"fmt"
)

// ErrNoConnection is returned when a statement is issued on a gateway that
// was never connected or has been closed.
var ErrNoConnection = errors.New("no database connection")

// ConnectionError reports a failure to establish the backend connection.
type ConnectionError struct {
	Host     string
	Port     int
	Database string
	Err      error
}

// Error implements the error interface.
func (e *ConnectionError) Error() string {
	return fmt.Sprintf("unable to connect to database %s on %s:%d: %v", e.Database, e.Host, e.Port, e.Err)
}

// Unwrap returns the underlying error.
func (e *ConnectionError) Unwrap() error {
	return e.Err
}

// StatementError represents a failed query or update.
type StatementError struct {
	SQL string
	Err error
}

// Error implements the error interface. Only the backend message is shown;
// the statement text is kept for logging.
func (e *StatementError) Error() string {
	return e.Err.Error()
}

// Unwrap returns the underlying error.
func (e *StatementError) Unwrap() error {
	return e.Err
}
