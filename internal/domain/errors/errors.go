package errors

import (
	"errors"
	"fmt"
	"strings"
)

// ErrorType classifies engine errors by origin.
type ErrorType string

const (
	ErrorTypeValidation ErrorType = "validation"
	ErrorTypeCatalog    ErrorType = "catalog"
	ErrorTypeInternal   ErrorType = "internal"
	ErrorTypeNotFound   ErrorType = "not_found"
)

// AppError represents a structured engine error
type AppError struct {
	Type    ErrorType              `json:"type"`
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
	Cause   error                  `json:"-"`
}

func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Cause
}

func (e *AppError) WithDetails(details map[string]interface{}) *AppError {
	e.Details = details
	return e
}

func (e *AppError) WithCause(cause error) *AppError {
	e.Cause = cause
	return e
}

// Error constructors
func NewValidationError(code, message string) *AppError {
	return &AppError{
		Type:    ErrorTypeValidation,
		Code:    code,
		Message: message,
	}
}

func NewNotFoundError(resource string) *AppError {
	return &AppError{
		Type:    ErrorTypeNotFound,
		Code:    "RESOURCE_NOT_FOUND",
		Message: fmt.Sprintf("%s not found", resource),
	}
}

func NewInternalError(message string) *AppError {
	return &AppError{
		Type:    ErrorTypeInternal,
		Code:    "INTERNAL_ERROR",
		Message: message,
	}
}

// NewDependencyCycleError reports a cycle among pattern prerequisites. The
// remaining nodes are the ones Kahn's algorithm could not order; together they
// witness the cycle. This is an authoring-time catalog defect, never a runtime
// data condition.
func NewDependencyCycleError(remaining []string) *AppError {
	return &AppError{
		Type:    ErrorTypeCatalog,
		Code:    "DEPENDENCY_CYCLE",
		Message: fmt.Sprintf("dependency cycle among patterns: %s", strings.Join(remaining, ", ")),
		Details: map[string]interface{}{"cycle_nodes": remaining},
	}
}

// IsType checks if an error is of a specific type
func IsType(err error, errorType ErrorType) bool {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Type == errorType
	}
	return false
}

// CycleNodes extracts the cycle witness from a dependency cycle error, nil if
// the error is anything else.
func CycleNodes(err error) []string {
	var appErr *AppError
	if !errors.As(err, &appErr) || appErr.Code != "DEPENDENCY_CYCLE" {
		return nil
	}
	nodes, _ := appErr.Details["cycle_nodes"].([]string)
	return nodes
}

// Wrap wraps an error with a message using fmt.Errorf with %w
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}
