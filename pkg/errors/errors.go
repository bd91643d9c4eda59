package errors

import (
	"errors"
	"fmt"
)

// Error represents a lax driver error with context.
//
// Lexical errors never take this form: the scanner reports those
// through the diagnostic layer. Error is for the driver's own failures
// (unreadable files, bad configuration, a REPL that cannot start).
type Error struct {
	// Code is the error code (e.g., "CONFIG_PARSE_ERROR")
	Code string
	// Message is the human-readable error message
	Message string
	// Cause describes why the error occurred
	Cause string
	// Action suggests what the user should do
	Action string
	// Underlying is the wrapped error
	Underlying error
}

// Error implements the error interface
func (e *Error) Error() string {
	if e.Underlying != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Underlying)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements errors.Unwrap
func (e *Error) Unwrap() error {
	return e.Underlying
}

// New creates a new Error
func New(code, message, cause, action string) *Error {
	return &Error{
		Code:    code,
		Message: message,
		Cause:   cause,
		Action:  action,
	}
}

// Wrap wraps an existing error with additional context
func Wrap(err error, code, message, cause, action string) *Error {
	return &Error{
		Code:       code,
		Message:    message,
		Cause:      cause,
		Action:     action,
		Underlying: err,
	}
}

// Common error codes
const (
	// Source file errors
	ErrCodeSourceNotFound  = "SOURCE_NOT_FOUND"
	ErrCodeSourceReadError = "SOURCE_READ_ERROR"

	// Configuration errors
	ErrCodeConfigNotFound   = "CONFIG_NOT_FOUND"
	ErrCodeConfigParseError = "CONFIG_PARSE_ERROR"
	ErrCodeConfigValidation = "CONFIG_VALIDATION_ERROR"

	// REPL errors
	ErrCodeReplInit = "REPL_INIT_ERROR"
)

// Common error constructors

// SourceNotFound creates a source not found error
func SourceNotFound(path string) *Error {
	return New(
		ErrCodeSourceNotFound,
		fmt.Sprintf("Source file not found: %s", path),
		"The specified script does not exist",
		"Check the file path and try again",
	)
}

// SourceReadError creates a source read error
func SourceReadError(path string, err error) *Error {
	return Wrap(
		err,
		ErrCodeSourceReadError,
		fmt.Sprintf("Failed to read source file: %s", path),
		"Permission denied or file is not readable",
		"Check file permissions with 'ls -l' and ensure the file is readable",
	)
}

// ConfigNotFound creates a config not found error
func ConfigNotFound(path string) *Error {
	return New(
		ErrCodeConfigNotFound,
		fmt.Sprintf("Configuration file not found: %s", path),
		"The specified configuration file does not exist",
		"Check the file path or omit -config to use the defaults",
	)
}

// ConfigParseError creates a config parse error
func ConfigParseError(path string, err error) *Error {
	return Wrap(
		err,
		ErrCodeConfigParseError,
		fmt.Sprintf("Failed to parse configuration file: %s", path),
		"Invalid YAML syntax, structure, or unknown fields (check for typos)",
		"Review the configuration file syntax and fix any errors",
	)
}

// ReplInitError creates a REPL initialization error
func ReplInitError(err error) *Error {
	return Wrap(
		err,
		ErrCodeReplInit,
		"Failed to initialize the interactive session",
		"The terminal line editor could not be set up",
		"Check that stdin is a terminal and the history file location is writable",
	)
}

// Is reports whether any error in err's chain matches target
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}
