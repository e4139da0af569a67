package errors

import (
	"errors"
	"fmt"
)

// ErrorType represents different types of errors that can occur
type ErrorType int

const (
	ErrorTypeConfig ErrorType = iota
	ErrorTypeFileSystem
	ErrorTypeUI
	ErrorTypeNetwork
	ErrorTypeSystem
)

// String returns a string representation of the error type
func (et ErrorType) String() string {
	switch et {
	case ErrorTypeConfig:
		return "config"
	case ErrorTypeFileSystem:
		return "filesystem"
	case ErrorTypeUI:
		return "ui"
	case ErrorTypeNetwork:
		return "network"
	case ErrorTypeSystem:
		return "system"
	default:
		return "unknown"
	}
}

// AppError represents a structured application error.
// A query that returns an AppError failed as a whole; individual entries
// that could not be read are skipped and never reported this way.
type AppError struct {
	Type      ErrorType
	Operation string
	Path      string
	Message   string
	Err       error
}

func (e *AppError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("%s error in %s [%s]: %s", e.Type, e.Operation, e.Path, e.Message)
	}
	return fmt.Sprintf("%s error in %s: %s", e.Type, e.Operation, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// IsWholeCallFailure reports whether err is an AppError raised by a query
// that produced no usable result.
func IsWholeCallFailure(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr)
}

// NewConfigError creates a new configuration error
func NewConfigError(operation, message string, err error) *AppError {
	return &AppError{
		Type:      ErrorTypeConfig,
		Operation: operation,
		Message:   message,
		Err:       err,
	}
}

// NewFileSystemError creates a new filesystem error
func NewFileSystemError(operation, path, message string, err error) *AppError {
	return &AppError{
		Type:      ErrorTypeFileSystem,
		Operation: operation,
		Path:      path,
		Message:   message,
		Err:       err,
	}
}

// NewUIError creates a new UI error
func NewUIError(operation, message string, err error) *AppError {
	return &AppError{
		Type:      ErrorTypeUI,
		Operation: operation,
		Message:   message,
		Err:       err,
	}
}

// NewNetworkError creates a new network error
func NewNetworkError(operation, target, message string, err error) *AppError {
	return &AppError{
		Type:      ErrorTypeNetwork,
		Operation: operation,
		Path:      target,
		Message:   message,
		Err:       err,
	}
}

// NewSystemError creates a new system query error
func NewSystemError(operation, message string, err error) *AppError {
	return &AppError{
		Type:      ErrorTypeSystem,
		Operation: operation,
		Message:   message,
		Err:       err,
	}
}
