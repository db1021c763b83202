package errors

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// ErrorCode represents a unique error code
type ErrorCode int

// AppError represents an application error
type AppError struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
	Err     error     `json:"-"`
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// Common error codes
const (
	ErrNotFound ErrorCode = iota + 1000
	ErrValidation
	ErrConflict
	ErrBackend
	ErrInternal
)

// Error constructors
func NewValidation(message string) *AppError {
	return &AppError{
		Code:    ErrValidation,
		Message: message,
	}
}

func NewNotFound(message string, err error) *AppError {
	return &AppError{
		Code:    ErrNotFound,
		Message: message,
		Err:     err,
	}
}

func NewConflict(message string, err error) *AppError {
	return &AppError{
		Code:    ErrConflict,
		Message: message,
		Err:     err,
	}
}

func NewBackend(message string, err error) *AppError {
	return &AppError{
		Code:    ErrBackend,
		Message: message,
		Err:     err,
	}
}

func NewInternal(err error) *AppError {
	return &AppError{
		Code:    ErrInternal,
		Message: "internal error",
		Err:     err,
	}
}

// IsValidation reports whether err is a validation failure.
func IsValidation(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr) && appErr.Code == ErrValidation
}

// IsNotFound reports whether err carries the not-found error class.
func IsNotFound(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr) && appErr.Code == ErrNotFound
}

// IsConflict reports whether err carries the conflict error class.
func IsConflict(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr) && appErr.Code == ErrConflict
}

// structuredPayload is the object-with-message shape backend commands
// may return instead of a plain string.
type structuredPayload struct {
	Message string `json:"message"`
}

// Normalize reduces a backend error payload to a single human-readable
// string. Payloads arrive either as plain text or as a JSON object with
// a "message" field; anything unusable falls back to fallback.
func Normalize(raw string, fallback string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return fallback
	}

	if strings.HasPrefix(trimmed, "{") {
		var payload structuredPayload
		if err := json.Unmarshal([]byte(trimmed), &payload); err == nil {
			if msg := strings.TrimSpace(payload.Message); msg != "" {
				return msg
			}
			return fallback
		}
	}

	return trimmed
}

// NormalizeError is Normalize over an error value.
func NormalizeError(err error, fallback string) string {
	if err == nil {
		return fallback
	}
	var appErr *AppError
	if errors.As(err, &appErr) {
		return Normalize(appErr.Message, fallback)
	}
	return Normalize(err.Error(), fallback)
}

// Backend failures carry no structured codes, so specific classes are
// detected by case-insensitive substring sniffing of the error text.
var (
	conflictMarkers = []string{
		"conflict while saving patient",
		"unique constraint failed",
		"duplicate key value",
	}
	notFoundMarkers = []string{
		"patient not found",
		"attendance not found",
		"no rows in result set",
	}
)

// Classify inspects an opaque backend error and promotes it to a
// conflict or not-found AppError when the text matches a known class.
// Everything else becomes a backend error with the normalized text.
func Classify(err error, fallback string) *AppError {
	text := NormalizeError(err, fallback)
	lower := strings.ToLower(text)

	for _, marker := range conflictMarkers {
		if strings.Contains(lower, marker) {
			return NewConflict(text, err)
		}
	}
	for _, marker := range notFoundMarkers {
		if strings.Contains(lower, marker) {
			return NewNotFound(text, err)
		}
	}

	return NewBackend(text, err)
}
