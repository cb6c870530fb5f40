package models

import (
	"errors"
	"fmt"
)

// Common error codes for JSON responses
const (
	ErrCodeValidation         = "VALIDATION_ERROR"
	ErrCodeNotFound           = "NOT_FOUND"
	ErrCodeUnauthorized       = "UNAUTHORIZED"
	ErrCodeForbidden          = "FORBIDDEN"
	ErrCodeConflict           = "CONFLICT"
	ErrCodeInternal           = "INTERNAL_ERROR"
	ErrCodeBadRequest         = "BAD_REQUEST"
	ErrCodeServiceUnavailable = "SERVICE_UNAVAILABLE"
)

// Common errors
var (
	ErrUserNotFound       = errors.New("user not found")
	ErrBookNotFound       = errors.New("book not found")
	ErrNotFound           = errors.New("resource not found")
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrUsernameExists     = errors.New("username already exists")
	ErrInvalidToken       = errors.New("invalid or expired token")
	ErrUnauthorized       = errors.New("unauthorized access")
	ErrForbidden          = errors.New("forbidden access")
	ErrInvalidInput       = errors.New("invalid input")

	// Upstream collaborator failures (book search, hosted LLM).
	// The calling layer classifies provider responses into these; the
	// pure core never produces them.
	ErrUpstreamAuth        = errors.New("upstream authentication failed")
	ErrUpstreamRateLimited = errors.New("upstream rate limit exceeded")
	ErrUpstreamUnavailable = errors.New("upstream service unavailable")
	ErrUpstream            = errors.New("upstream request failed")
)

// AppError carries a machine-readable code alongside the message
type AppError struct {
	Code       string                 `json:"code"`
	Message    string                 `json:"message"`
	StatusCode int                    `json:"status_code,omitempty"`
	Details    map[string]interface{} `json:"details,omitempty"`
}

func (e *AppError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// NewHTTPError builds an AppError for an HTTP response
func NewHTTPError(code, message string, statusCode int, err error) *AppError {
	appErr := &AppError{
		Code:       code,
		Message:    message,
		StatusCode: statusCode,
	}
	if err != nil {
		appErr.Details = map[string]interface{}{"original_error": err.Error()}
	}
	return appErr
}

// ClassifyUpstreamStatus maps a collaborator HTTP status to the typed
// upstream error taxonomy.
func ClassifyUpstreamStatus(status int) error {
	switch {
	case status == 401 || status == 403:
		return ErrUpstreamAuth
	case status == 429:
		return ErrUpstreamRateLimited
	case status >= 500:
		return ErrUpstreamUnavailable
	case status >= 400:
		return ErrUpstream
	default:
		return nil
	}
}
