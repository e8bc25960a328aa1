package marketplace

import (
	"errors"
	"fmt"
	"net/http"
)

type ErrorKind string

const (
	KindUnauthorized ErrorKind = "UNAUTHORIZED"
	KindNotFound     ErrorKind = "NOT_FOUND"
	KindRejected     ErrorKind = "REJECTED"
	KindUpstream     ErrorKind = "UPSTREAM_FAILURE"
	KindTransport    ErrorKind = "TRANSPORT"
	KindDecode       ErrorKind = "DECODE"
)

// APIError is any failed call to the marketplace. Message and Errors carry the upstream
// body when one was returned.
type APIError struct {
	Kind    ErrorKind
	Status  int
	Message string
	Errors  []string
	err     error
}

func (e *APIError) Error() string {
	switch {
	case e.err != nil:
		return fmt.Sprintf("marketplace %s: %s: %v", e.Kind, e.Message, e.err)
	case e.Status != 0:
		return fmt.Sprintf("marketplace %s (%d): %s", e.Kind, e.Status, e.Message)
	default:
		return fmt.Sprintf("marketplace %s: %s", e.Kind, e.Message)
	}
}

func (e *APIError) Unwrap() error {
	return e.err
}

func IsKind(err error, kind ErrorKind) bool {
	var e *APIError
	if errors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}

// AsAPIError returns the upstream error carried by err, if any.
func AsAPIError(err error) (*APIError, bool) {
	var e *APIError
	ok := errors.As(err, &e)
	return e, ok
}

func kindForStatus(status int) ErrorKind {
	switch {
	case status == http.StatusUnauthorized:
		return KindUnauthorized
	case status == http.StatusNotFound:
		return KindNotFound
	case status >= 500:
		return KindUpstream
	default:
		return KindRejected
	}
}
