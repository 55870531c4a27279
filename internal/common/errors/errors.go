// Package errors provides the structured error type shared by the brief
// pipeline and its mapping onto BPMN job errors.
package errors

import (
	stderrors "errors"
	"fmt"
	"strings"
	"time"
)

// ErrorCode represents standardized internal error codes.
type ErrorCode string

const (
	ErrCodeResearchUnavailable     ErrorCode = "RESEARCH_UNAVAILABLE"
	ErrCodeGenerationFailed        ErrorCode = "GENERATION_FAILED"
	ErrCodeGenerationTimeout       ErrorCode = "GENERATION_TIMEOUT"
	ErrCodeRenderingFailed         ErrorCode = "RENDERING_FAILED"
	ErrCodeInvalidStakeholderInput ErrorCode = "INVALID_STAKEHOLDER_INPUT"
	ErrCodeRateLimited             ErrorCode = "RATE_LIMITED"
	ErrCodeNotificationSendFailed  ErrorCode = "NOTIFICATION_SEND_FAILED"
	ErrCodeInternal                ErrorCode = "INTERNAL_ERROR"
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

// WithMetadata returns e after attaching key=value.
func (e *StandardError) WithMetadata(key string, value interface{}) *StandardError {
	if e.Metadata == nil {
		e.Metadata = map[string]interface{}{}
	}
	e.Metadata[key] = value
	return e
}

// BPMNError represents an error that can be thrown to the Camunda workflow engine.
type BPMNError struct {
	Code           string                 `json:"code"`
	Message        string                 `json:"message"`
	Details        string                 `json:"details,omitempty"`
	Retryable      bool                   `json:"retryable"`
	Retries        int                    `json:"retries"`
	ErrorVariables map[string]interface{} `json:"errorVariables,omitempty"`
}

func (e *BPMNError) Error() string {
	return fmt.Sprintf("BPMNError[%s]: %s", e.Code, e.Message)
}

// ToErrorVariables returns a map suitable for setting Camunda job fail variables.
func (e *BPMNError) ToErrorVariables() map[string]interface{} {
	vars := map[string]interface{}{
		"errorCode":    e.Code,
		"errorMessage": e.Message,
		"errorDetails": e.Details,
		"retryable":    e.Retryable,
	}
	for k, v := range e.ErrorVariables {
		vars[k] = v
	}
	return vars
}

func newError(code ErrorCode, message string, cause error, retryable bool) *StandardError {
	se := &StandardError{
		Code:      code,
		Message:   message,
		Retryable: retryable,
		Timestamp: time.Now().UTC(),
		cause:     cause,
	}
	if cause != nil {
		se.Details = cause.Error()
	}
	return se
}

// NewResearchUnavailableError records a provider that fell back to canned data.
func NewResearchUnavailableError(provider string, err error) *StandardError {
	return newError(ErrCodeResearchUnavailable, fmt.Sprintf("research provider %s unavailable", provider), err, false).
		WithMetadata("provider", provider)
}

// NewGenerationFailedError wraps a failed model call. Not retried.
func NewGenerationFailedError(err error) *StandardError {
	return newError(ErrCodeGenerationFailed, "Brief generation failed", err, false)
}

func NewGenerationTimeoutError(err error) *StandardError {
	return newError(ErrCodeGenerationTimeout, "Brief generation timed out", err, true)
}

func NewRenderingFailedError(err error) *StandardError {
	return newError(ErrCodeRenderingFailed, "PDF rendering failed", err, false)
}

// NewInvalidStakeholderInputError is returned for malformed request bodies.
func NewInvalidStakeholderInputError(details string) *StandardError {
	se := newError(ErrCodeInvalidStakeholderInput, "Invalid stakeholder input", nil, false)
	se.Details = details
	return se
}

func NewRateLimitedError() *StandardError {
	return newError(ErrCodeRateLimited, "Too many brief generation requests", nil, true)
}

// NewNotificationSendFailedError creates a retryable delivery error.
func NewNotificationSendFailedError(channel string, err error) *StandardError {
	return newError(ErrCodeNotificationSendFailed, "Brief delivery failed", err, true).
		WithMetadata("channel", channel)
}

// AsStandardError unwraps err into a StandardError, wrapping unknown errors
// as INTERNAL_ERROR.
func AsStandardError(err error) *StandardError {
	if err == nil {
		return nil
	}
	var se *StandardError
	if stderrors.As(err, &se) {
		return se
	}
	return newError(ErrCodeInternal, "Unexpected error", err, false)
}

// BPMNErrorMapping maps internal error codes to BPMN error codes.
var BPMNErrorMapping = map[ErrorCode]string{
	ErrCodeResearchUnavailable:     "RESEARCH_UNAVAILABLE",
	ErrCodeGenerationFailed:        "BRIEF_GENERATION_FAILED",
	ErrCodeGenerationTimeout:       "BRIEF_GENERATION_TIMEOUT",
	ErrCodeRenderingFailed:         "BRIEF_RENDERING_FAILED",
	ErrCodeInvalidStakeholderInput: "INVALID_STAKEHOLDER_INPUT",
	ErrCodeRateLimited:             "RATE_LIMITED",
	ErrCodeNotificationSendFailed:  "NOTIFICATION_SEND_FAILED",
}

// GetRetryCount returns the job retry budget for a code.
func GetRetryCount(code ErrorCode) int {
	switch code {
	case ErrCodeNotificationSendFailed, ErrCodeRateLimited:
		return 3
	case ErrCodeGenerationTimeout:
		return 1
	default:
		return 0
	}
}

// ConvertToBPMNError converts a StandardError to a BPMNError for Camunda.
func ConvertToBPMNError(stdErr *StandardError) *BPMNError {
	bpmnCode, exists := BPMNErrorMapping[stdErr.Code]
	if !exists {
		bpmnCode = string(stdErr.Code)
	}

	retries := GetRetryCount(stdErr.Code)
	if !stdErr.Retryable {
		retries = 0
	}

	return &BPMNError{
		Code:      bpmnCode,
		Message:   stdErr.Message,
		Details:   stdErr.Details,
		Retryable: stdErr.Retryable,
		Retries:   retries,
		ErrorVariables: map[string]interface{}{
			"originalErrorCode": string(stdErr.Code),
			"timestamp":         stdErr.Timestamp.Format(time.RFC3339),
		},
	}
}

// IsRetryableErrorCode checks if an error code is retryable.
func IsRetryableErrorCode(code ErrorCode) bool {
	return GetRetryCount(code) > 0
}

// GetErrorCategory returns the category of the error code.
func GetErrorCategory(code ErrorCode) string {
	codeStr := string(code)
	switch {
	case strings.Contains(codeStr, "RESEARCH"):
		return "RESEARCH"
	case strings.Contains(codeStr, "GENERATION"):
		return "AI"
	case strings.Contains(codeStr, "RENDERING"):
		return "DOCUMENT"
	case strings.Contains(codeStr, "NOTIFICATION"):
		return "NOTIFICATION"
	case strings.Contains(codeStr, "INVALID") || strings.Contains(codeStr, "RATE"):
		return "REQUEST"
	default:
		return "OTHER"
	}
}
