package ai

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strings"

	genai "google.golang.org/genai"
)

// ErrorType categorizes provider failures
type ErrorType string

const (
	ErrTypeProvider       ErrorType = "provider"
	ErrTypeConfiguration  ErrorType = "configuration"
	ErrTypeAuthentication ErrorType = "authentication"
	ErrTypeRateLimit      ErrorType = "rate_limit"
	ErrTypeQuota          ErrorType = "quota"
	ErrTypeNetwork        ErrorType = "network"
	ErrTypeTimeout        ErrorType = "timeout"
	ErrTypeValidation     ErrorType = "validation"
)

// ProviderError is a failed remote call: transport, auth, quota or server side.
type ProviderError struct {
	Type       ErrorType `json:"type"`
	Message    string    `json:"message"`
	Provider   string    `json:"provider,omitempty"`
	StatusCode int       `json:"status_code,omitempty"`
	Cause      error     `json:"-"`
}

func (e *ProviderError) Error() string {
	var b strings.Builder
	if e.Provider != "" {
		b.WriteString(e.Provider)
		b.WriteString(": ")
	}
	b.WriteString(e.Message)
	if e.StatusCode > 0 {
		fmt.Fprintf(&b, " (status %d)", e.StatusCode)
	}
	return b.String()
}

func (e *ProviderError) Unwrap() error { return e.Cause }

// Is matches another ProviderError of the same Type.
func (e *ProviderError) Is(target error) bool {
	if pe, ok := target.(*ProviderError); ok {
		return e.Type == pe.Type
	}
	return false
}

// NewProviderError creates a new provider error
func NewProviderError(errType ErrorType, message, provider string) *ProviderError {
	return &ProviderError{Type: errType, Message: message, Provider: provider}
}

// NewProviderErrorWithCause creates a provider error with an underlying cause
func NewProviderErrorWithCause(errType ErrorType, message, provider string, cause error) *ProviderError {
	return &ProviderError{Type: errType, Message: message, Provider: provider, Cause: cause}
}

// EmptyResponseError means the call completed but carried no usable text.
type EmptyResponseError struct {
	Provider string
	Model    string
}

func (e *EmptyResponseError) Error() string {
	return "Analysis failed: The API returned an empty response."
}

// IsEmptyResponse reports whether err is, or wraps, an EmptyResponseError.
func IsEmptyResponse(err error) bool {
	var er *EmptyResponseError
	return errors.As(err, &er)
}

// IsProviderError reports whether err is, or wraps, a ProviderError.
func IsProviderError(err error) bool {
	var pe *ProviderError
	return errors.As(err, &pe)
}

// classifyError converts a genai client failure into a ProviderError,
// keeping the provider's own message when there is one.
func classifyError(provider string, err error) *ProviderError {
	var pe *ProviderError
	if errors.As(err, &pe) {
		return pe
	}

	var apiErr genai.APIError
	var apiErrPtr *genai.APIError
	switch {
	case errors.As(err, &apiErr):
	case errors.As(err, &apiErrPtr) && apiErrPtr != nil:
		apiErr = *apiErrPtr
	default:
		return classifyTransport(provider, err)
	}

	msg := apiErr.Message
	if msg == "" {
		msg = http.StatusText(apiErr.Code)
	}
	out := NewProviderErrorWithCause(typeForStatus(apiErr.Code, apiErr.Status), msg, provider, err)
	out.StatusCode = apiErr.Code
	return out
}

func classifyTransport(provider string, err error) *ProviderError {
	var netErr net.Error
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		return NewProviderErrorWithCause(ErrTypeTimeout, err.Error(), provider, err)
	case errors.As(err, &netErr):
		return NewProviderErrorWithCause(ErrTypeNetwork, err.Error(), provider, err)
	default:
		return NewProviderErrorWithCause(ErrTypeProvider, err.Error(), provider, err)
	}
}

func typeForStatus(code int, status string) ErrorType {
	switch {
	case code == http.StatusUnauthorized || code == http.StatusForbidden:
		return ErrTypeAuthentication
	case code == http.StatusTooManyRequests && status == "RESOURCE_EXHAUSTED":
		return ErrTypeQuota
	case code == http.StatusTooManyRequests:
		return ErrTypeRateLimit
	case code == http.StatusBadRequest:
		return ErrTypeValidation
	case code == http.StatusGatewayTimeout:
		return ErrTypeTimeout
	default:
		return ErrTypeProvider
	}
}
