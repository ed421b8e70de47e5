package errors

import (
	"errors"
	"fmt"
)

// Code represents an error code for categorizing errors
type Code string

const (
	// CodeUnknown indicates an unknown error
	CodeUnknown Code = "unknown"

	// CodeInvalidArgument indicates client specified an invalid argument
	CodeInvalidArgument Code = "invalid_argument"

	// CodeInternal indicates a storage or system failure
	CodeInternal Code = "internal"

	// CodeTargetNotFound indicates a damage target that is neither the player
	// nor a living enemy in an active encounter
	CodeTargetNotFound Code = "target_not_found"

	// CodePlayerNotInitialized indicates the player sheet has no hit points yet
	CodePlayerNotInitialized Code = "player_not_initialized"
)

// Error represents an application error with code and metadata
type Error struct {
	// Code is the error code
	Code Code

	// Message is the human readable message
	Message string

	// Cause is the wrapped error
	Cause error

	// Meta contains additional context
	Meta map[string]any
}

// Error returns the error message
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

// Unwrap returns the wrapped error
func (e *Error) Unwrap() error {
	return e.Cause
}

// WithMeta adds metadata to the error (builder pattern)
func (e *Error) WithMeta(key string, value any) *Error {
	if e.Meta == nil {
		e.Meta = make(map[string]any)
	}
	e.Meta[key] = value
	return e
}

// New creates a new error with the given code and message
func New(code Code, message string) *Error {
	return &Error{
		Code:    code,
		Message: message,
	}
}

// Newf creates a new error with formatted message
func Newf(code Code, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// Wrap wraps an error with additional context
func Wrap(err error, message string) *Error {
	if err == nil {
		return nil
	}

	// If it's already our error type, preserve the code
	var stateErr *Error
	if errors.As(err, &stateErr) {
		return &Error{
			Code:    stateErr.Code,
			Message: message,
			Cause:   err,
			Meta:    copyMeta(stateErr.Meta),
		}
	}

	return &Error{
		Code:    CodeUnknown,
		Message: message,
		Cause:   err,
	}
}

// Wrapf wraps an error with formatted message
func Wrapf(err error, format string, args ...any) *Error {
	if err == nil {
		return nil
	}
	return Wrap(err, fmt.Sprintf(format, args...))
}

// WrapWithCode wraps an error with a specific code
func WrapWithCode(err error, code Code, message string) *Error {
	if err == nil {
		return nil
	}

	wrapped := Wrap(err, message)
	wrapped.Code = code
	return wrapped
}

// InvalidArgument creates an invalid argument error
func InvalidArgument(message string) *Error {
	return New(CodeInvalidArgument, message)
}

// Internalf wraps a storage failure as an internal error
func Internalf(err error, format string, args ...any) *Error {
	return WrapWithCode(err, CodeInternal, fmt.Sprintf(format, args...))
}

// TargetNotFound creates the soft error returned for an unknown damage target
func TargetNotFound(target string) *Error {
	return Newf(CodeTargetNotFound, "Target '%s' not found in active combat.", target).
		WithMeta("target", target)
}

// PlayerNotInitialized creates the soft error returned when the player has no hit points
func PlayerNotInitialized() *Error {
	return New(CodePlayerNotInitialized, "Player HP not initialized. Ask player for their max HP first.")
}

// Is checks if the error is of a specific code
func Is(err error, code Code) bool {
	var stateErr *Error
	if errors.As(err, &stateErr) {
		return stateErr.Code == code
	}
	return false
}

// IsInvalidArgument checks if the error is an invalid argument error
func IsInvalidArgument(err error) bool {
	return Is(err, CodeInvalidArgument)
}

// IsInternal checks if the error is an internal error
func IsInternal(err error) bool {
	return Is(err, CodeInternal)
}

// IsTargetNotFound checks if the error is a target not found error
func IsTargetNotFound(err error) bool {
	return Is(err, CodeTargetNotFound)
}

// IsPlayerNotInitialized checks if the error is a player not initialized error
func IsPlayerNotInitialized(err error) bool {
	return Is(err, CodePlayerNotInitialized)
}

// IsSoft reports whether the error is an expected game condition that should
// be relayed to the player rather than treated as a failure.
func IsSoft(err error) bool {
	return IsTargetNotFound(err) || IsPlayerNotInitialized(err)
}

// GetCode returns the error code
func GetCode(err error) Code {
	var stateErr *Error
	if errors.As(err, &stateErr) {
		return stateErr.Code
	}
	return CodeUnknown
}

// GetMessage returns the human readable message without the cause chain
func GetMessage(err error) string {
	var stateErr *Error
	if errors.As(err, &stateErr) {
		return stateErr.Message
	}
	if err == nil {
		return ""
	}
	return err.Error()
}

// GetMeta returns the error metadata
func GetMeta(err error) map[string]any {
	var stateErr *Error
	if errors.As(err, &stateErr) {
		return stateErr.Meta
	}
	return nil
}

// copyMeta creates a copy of the metadata map
func copyMeta(meta map[string]any) map[string]any {
	if meta == nil {
		return nil
	}

	copied := make(map[string]any, len(meta))
	for k, v := range meta {
		copied[k] = v
	}
	return copied
}
