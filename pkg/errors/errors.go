package errors

import (
	"fmt"
)

// ConfigurationError reports a run configuration the engine cannot execute,
// such as an unsupported scheduling mode. It fails the run before any case
// starts.
type ConfigurationError struct {
	Field   string
	Message string
	Err     error
}

// NewConfigurationError constructs a ConfigurationError.
func NewConfigurationError(field, message string, err error) error {
	return &ConfigurationError{Field: field, Message: message, Err: err}
}

func (e *ConfigurationError) Error() string {
	if e == nil {
		return ""
	}
	if e.Field != "" {
		return fmt.Sprintf("configuration error: %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("configuration error: %s", e.Message)
}

// Unwrap exposes the underlying error.
func (e *ConfigurationError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// HandlerNotFoundError indicates no handler is registered for a step kind.
// It is recorded as a failed step result, never raised out of the executor.
type HandlerNotFoundError struct {
	Kind string
}

// NewHandlerNotFoundError constructs a HandlerNotFoundError for the given kind.
func NewHandlerNotFoundError(kind string) error {
	return &HandlerNotFoundError{Kind: kind}
}

func (e *HandlerNotFoundError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("no handler registered for step kind %q", e.Kind)
}

// ExecutionError represents a runtime failure while executing a step or case.
type ExecutionError struct {
	Unit string
	Err  error
}

// NewExecutionError constructs an ExecutionError for the named unit.
func NewExecutionError(unit string, err error) error {
	return &ExecutionError{Unit: unit, Err: err}
}

func (e *ExecutionError) Error() string {
	if e == nil {
		return ""
	}
	if e.Unit != "" {
		return fmt.Sprintf("execution error in %s: %v", e.Unit, e.Err)
	}
	return fmt.Sprintf("execution error: %v", e.Err)
}

// Unwrap exposes the root error.
func (e *ExecutionError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// ValidationError captures a step or suite document validation failure.
type ValidationError struct {
	Field   string
	Message string
	Err     error
}

// NewValidationError constructs a ValidationError.
func NewValidationError(field, message string, err error) error {
	return &ValidationError{Field: field, Message: message, Err: err}
}

func (e *ValidationError) Error() string {
	if e == nil {
		return ""
	}
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// Unwrap exposes the underlying error.
func (e *ValidationError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// ParseError represents a suite document parsing failure.
type ParseError struct {
	Path    string
	Message string
	Err     error
}

// NewParseError constructs a ParseError.
func NewParseError(path string, err error) error {
	message := ""
	if err != nil {
		message = err.Error()
	}
	return &ParseError{Path: path, Message: message, Err: err}
}

func (e *ParseError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("parse error: %s: %s", e.Path, e.Message)
}

// Unwrap exposes the underlying error.
func (e *ParseError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}
