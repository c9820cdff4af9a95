package chat

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// ErrorKind names one branch of the chat error taxonomy.
type ErrorKind string

const (
	KindConfiguration  ErrorKind = "configuration"
	KindInvalidRequest ErrorKind = "invalid_request"
	KindQuota          ErrorKind = "quota_exceeded"
	KindAuth           ErrorKind = "auth"
	KindEmptyResponse  ErrorKind = "empty_response"
	KindUpstream       ErrorKind = "upstream"
)

// Upstream error text indicators. Completers rewrite their native failures so
// these substrings appear in the error message.
const (
	IndicatorQuota      = "insufficient_quota"
	IndicatorInvalidKey = "invalid_api_key"
)

var (
	ErrMissingCredential = errors.New("chat: upstream credential not configured")
	ErrEmptyResponse     = errors.New("chat: upstream returned no content")
)

// Error is a classified chat failure. Status and Message are what the caller sees.
type Error struct {
	Kind ErrorKind
	Err  error
}

func (e *Error) Error() string {
	if e.Err == nil {
		return string(e.Kind)
	}
	return fmt.Sprintf("%s: %v", e.Kind, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Status maps the kind to an HTTP status code.
func (e *Error) Status() int {
	switch e.Kind {
	case KindInvalidRequest:
		return http.StatusBadRequest
	case KindQuota:
		return http.StatusTooManyRequests
	case KindAuth:
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}

// Message is the user-facing error string.
func (e *Error) Message() string {
	switch e.Kind {
	case KindConfiguration:
		return "Chat is not configured: the upstream API key is missing."
	case KindInvalidRequest:
		if e.Err != nil {
			return e.Err.Error()
		}
		return "invalid chat request"
	case KindQuota:
		return "The AI provider quota has been exceeded. Please check the account billing."
	case KindAuth:
		return "The AI provider rejected the API key. Please check the server configuration."
	case KindEmptyResponse:
		return "No response was returned by the AI provider."
	default:
		return "Failed to get a response from the AI provider. Please try again."
	}
}

func invalidRequest(format string, args ...any) *Error {
	return &Error{Kind: KindInvalidRequest, Err: fmt.Errorf(format, args...)}
}

// Classify maps any error from the chat path onto the taxonomy. Upstream
// failures are recognised by the text of the message only.
func Classify(err error) *Error {
	if err == nil {
		return nil
	}
	var ce *Error
	if errors.As(err, &ce) {
		return ce
	}
	switch {
	case errors.Is(err, ErrMissingCredential):
		return &Error{Kind: KindConfiguration, Err: err}
	case errors.Is(err, ErrEmptyResponse):
		return &Error{Kind: KindEmptyResponse, Err: err}
	}
	msg := err.Error()
	switch {
	case strings.Contains(msg, IndicatorQuota):
		return &Error{Kind: KindQuota, Err: err}
	case strings.Contains(msg, IndicatorInvalidKey):
		return &Error{Kind: KindAuth, Err: err}
	default:
		return &Error{Kind: KindUpstream, Err: err}
	}
}
