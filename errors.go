// Package gemmbench structured error types for benchmark failures
package gemmbench

import (
	"fmt"
)

// ErrorType represents categories of errors
type ErrorType int

const (
	// Invalid configuration errors
	ErrTypeConfig ErrorType = iota
	// Report output errors
	ErrTypeReport
	// Kernel verification errors
	ErrTypeVerify
)

// BenchError represents a structured error with context
type BenchError struct {
	Type    ErrorType
	Op      string // Operation that failed
	Message string // Human-readable message
	Err     error  // Underlying error if any
}

// Error implements the error interface
func (e *BenchError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("gemmbench %s error in %s: %s (caused by: %v)",
			e.Type.String(), e.Op, e.Message, e.Err)
	}
	return fmt.Sprintf("gemmbench %s error in %s: %s",
		e.Type.String(), e.Op, e.Message)
}

// Unwrap allows error chain inspection
func (e *BenchError) Unwrap() error {
	return e.Err
}

// String returns the error type as a string
func (t ErrorType) String() string {
	switch t {
	case ErrTypeConfig:
		return "Config"
	case ErrTypeReport:
		return "Report"
	case ErrTypeVerify:
		return "Verify"
	default:
		return "Unknown"
	}
}

// Common error constructors

// NewConfigError creates an invalid configuration error
func NewConfigError(op string, message string) error {
	return &BenchError{
		Type:    ErrTypeConfig,
		Op:      op,
		Message: message,
	}
}

// NewReportError creates a report output error
func NewReportError(op string, message string, err error) error {
	return &BenchError{
		Type:    ErrTypeReport,
		Op:      op,
		Message: message,
		Err:     err,
	}
}

// NewVerifyError creates a kernel verification error
func NewVerifyError(op string, message string) error {
	return &BenchError{
		Type:    ErrTypeVerify,
		Op:      op,
		Message: message,
	}
}

// IsVerifyError checks if an error is a kernel verification error
func IsVerifyError(err error) bool {
	if e, ok := err.(*BenchError); ok {
		return e.Type == ErrTypeVerify
	}
	return false
}

// IsReportError checks if an error is a report output error
func IsReportError(err error) bool {
	if e, ok := err.(*BenchError); ok {
		return e.Type == ErrTypeReport
	}
	return false
}
