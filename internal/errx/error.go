package errx

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind classifies failures of calls to the remote product/auth API.
type Kind string

const (
	KindTransport    Kind = "transport"     // network failure, timeout
	KindStatus       Kind = "status"        // non-2xx response
	KindMalformed    Kind = "malformed"     // body is not the expected JSON shape
	KindInvalidParam Kind = "invalid_param" // missing or placeholder route parameter
)

const (
	SystemErrorMessage   = "internal server error"
	UpstreamErrorMessage = "product service unavailable"
	NotFoundMessage      = "not found"
)

// Error wraps an underlying error with its taxonomy kind, an HTTP status and
// a message that is safe to show.
type Error struct {
	Kind    Kind
	Err     error
	Status  int
	Message string
}

func (e *Error) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s: %s", e.Kind, e.Message)
	}
	return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

func New(kind Kind, err error, status int, message string) *Error {
	return &Error{
		Kind:    kind,
		Err:     err,
		Status:  status,
		Message: message,
	}
}

func Transport(err error) *Error {
	return New(KindTransport, err, http.StatusBadGateway, UpstreamErrorMessage)
}

// Status maps an upstream response code. 404 stays 404, everything else is a
// bad gateway from the caller's perspective except client errors we forward.
func Status(code int, message string) *Error {
	status := http.StatusBadGateway
	if code >= 400 && code < 500 {
		status = code
	}
	if message == "" {
		message = http.StatusText(code)
	}
	return New(KindStatus, fmt.Errorf("upstream responded %d", code), status, message)
}

func Malformed(err error) *Error {
	return New(KindMalformed, err, http.StatusBadGateway, UpstreamErrorMessage)
}

func InvalidParam(name, value string) *Error {
	return New(KindInvalidParam, fmt.Errorf("invalid %s %q", name, value), http.StatusBadRequest, "invalid "+name)
}

// KindOf returns the kind of the first *Error in the chain, or "" if none.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return ""
}

// IsNotFound reports whether err is an upstream 404.
func IsNotFound(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.Kind == KindStatus && e.Status == http.StatusNotFound
}

// StatusOf returns the HTTP status carried by err, defaulting to 500.
func StatusOf(err error) int {
	var e *Error
	if errors.As(err, &e) && e.Status != 0 {
		return e.Status
	}
	return http.StatusInternalServerError
}

// MessageOf returns the safe message carried by err.
func MessageOf(err error) string {
	var e *Error
	if errors.As(err, &e) && e.Message != "" {
		return e.Message
	}
	return SystemErrorMessage
}
