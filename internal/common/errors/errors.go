// Package errors provides standardized error handling for the matching engine.
package errors

import (
	"errors"
	"fmt"
	"time"
)

// ErrorCode represents standardized internal error codes.
type ErrorCode string

const (
	ErrCodeIncompleteProfile ErrorCode = "INCOMPLETE_PROFILE"
	ErrCodeProfileNotFound   ErrorCode = "PROFILE_NOT_FOUND"
	ErrCodeSurveyMalformed   ErrorCode = "SURVEY_MALFORMED"

	ErrCodeDatabaseQueryFailed ErrorCode = "DATABASE_QUERY_FAILED"
	ErrCodeMatchPersistFailed  ErrorCode = "MATCH_PERSIST_FAILED"
	ErrCodeSettingsUnavailable ErrorCode = "SETTINGS_UNAVAILABLE"
)

// StandardError represents a structured application error.
type StandardError struct {
	Code      ErrorCode              `json:"code"`
	Message   string                 `json:"message"`
	Details   string                 `json:"details,omitempty"`
	Retryable bool                   `json:"retryable"`
	Metadata  map[string]interface{} `json:"metadata,omitempty"`
	Timestamp time.Time              `json:"timestamp"`
	cause     error
}

func (e *StandardError) Error() string {
	return fmt.Sprintf("StandardError[%s]: %s", e.Code, e.Message)
}

func (e *StandardError) Unwrap() error {
	return e.cause
}

// IsCode reports whether err is a *StandardError carrying the given code.
func IsCode(err error, code ErrorCode) bool {
	var se *StandardError
	if errors.As(err, &se) {
		return se.Code == code
	}
	return false
}

// NewIncompleteProfileError signals that the requester has not finished their
// profile or survey. User-correctable, never retried.
func NewIncompleteProfileError(userID string) *StandardError {
	return &StandardError{
		Code:      ErrCodeIncompleteProfile,
		Message:   "profile and survey must both be completed before matching",
		Retryable: false,
		Metadata:  map[string]interface{}{"userId": userID},
		Timestamp: time.Now().UTC(),
	}
}

// NewProfileNotFoundError signals that no such user exists in storage.
func NewProfileNotFoundError(userID string) *StandardError {
	return &StandardError{
		Code:      ErrCodeProfileNotFound,
		Message:   "user profile not found",
		Retryable: false,
		Metadata:  map[string]interface{}{"userId": userID},
		Timestamp: time.Now().UTC(),
	}
}

// NewSurveyMalformedError signals that a stored survey blob could not be
// parsed at all (individual bad answers are skipped, not errored).
func NewSurveyMalformedError(userID string, cause error) *StandardError {
	return &StandardError{
		Code:      ErrCodeSurveyMalformed,
		Message:   "stored survey answers are not a valid answer document",
		Details:   cause.Error(),
		Retryable: false,
		Metadata:  map[string]interface{}{"userId": userID},
		Timestamp: time.Now().UTC(),
		cause:     cause,
	}
}

// NewDatabaseQueryError wraps a storage read failure. Retryable by the caller.
func NewDatabaseQueryError(operation string, cause error) *StandardError {
	return &StandardError{
		Code:      ErrCodeDatabaseQueryFailed,
		Message:   fmt.Sprintf("database query failed: %s", operation),
		Details:   cause.Error(),
		Retryable: true,
		Timestamp: time.Now().UTC(),
		cause:     cause,
	}
}

// NewMatchPersistError wraps a match upsert failure. Retryable by the caller.
func NewMatchPersistError(senderID, receiverID string, cause error) *StandardError {
	return &StandardError{
		Code:      ErrCodeMatchPersistFailed,
		Message:   "failed to persist match result",
		Details:   cause.Error(),
		Retryable: true,
		Metadata: map[string]interface{}{
			"senderId":   senderID,
			"receiverId": receiverID,
		},
		Timestamp: time.Now().UTC(),
		cause:     cause,
	}
}

// NewSettingsUnavailableError signals the settings backend could not be read.
func NewSettingsUnavailableError(key string, cause error) *StandardError {
	return &StandardError{
		Code:      ErrCodeSettingsUnavailable,
		Message:   fmt.Sprintf("settings key unavailable: %s", key),
		Details:   cause.Error(),
		Retryable: true,
		Timestamp: time.Now().UTC(),
		cause:     cause,
	}
}
