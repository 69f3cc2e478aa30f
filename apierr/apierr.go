// Package apierr defines the error taxonomy shared by every layer of the SDK.
//
// Every error surfaced by a stream belongs to one of four kinds:
//   - KindTransport: the request could not be sent or the connection failed.
//   - KindStatus: the server answered outside of the 2xx range.
//   - KindShape: a JSON value did not have the type the parser required.
//   - KindDomain: the value was well typed but meaningless for the target
//     domain type (unknown discriminant, out of range enumeration...).
//
// Layers wrap lower-layer errors into their own error types through a static
// forwarding Table, so the kind of the leaf is never lost.
package apierr

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind classifies an error.
type Kind uint8

const (
	KindUnknown Kind = iota
	KindTransport
	KindStatus
	KindShape
	KindDomain
)

func (k Kind) String() string {
	switch k {
	case KindTransport:
		return "transport"
	case KindStatus:
		return "status"
	case KindShape:
		return "shape"
	case KindDomain:
		return "domain"
	default:
		return "unknown"
	}
}

// Kinded is implemented by every error of the taxonomy. Wrapping errors
// report the kind of the error they wrap.
type Kinded interface {
	error
	Kind() Kind
}

// KindOf returns the kind of the first Kinded error in err's chain.
func KindOf(err error) Kind {
	var kinded Kinded
	if errors.As(err, &kinded) {
		return kinded.Kind()
	}

	return KindUnknown
}

// TransportError - the request never produced a response.
type TransportError struct {
	Method string
	URL    string
	Err    error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Method, e.URL, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// Kind - implements Kinded.
func (e *TransportError) Kind() Kind { return KindTransport }

// StatusError - the server rejected the request.
type StatusError struct {
	Method string
	URL    string
	Code   int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s %s: unexpected status %d %s", e.Method, e.URL, e.Code, http.StatusText(e.Code))
}

// Kind - implements Kinded.
func (e *StatusError) Kind() Kind { return KindStatus }

// IsNotFound reports whether err carries a 404 status.
func IsNotFound(err error) bool {
	return HasStatus(err, http.StatusNotFound)
}

// HasStatus reports whether err carries the given HTTP status code.
func HasStatus(err error, code int) bool {
	var statusErr *StatusError
	return errors.As(err, &statusErr) && statusErr.Code == code
}

// UnknownDiscriminantError - a tagged value carried a discriminant no variant
// matches.
type UnknownDiscriminantError struct {
	Field string
	Value string
}

func (e *UnknownDiscriminantError) Error() string {
	return fmt.Sprintf("unrecognized %s '%s'", e.Field, e.Value)
}

// Kind - implements Kinded.
func (e *UnknownDiscriminantError) Kind() Kind { return KindDomain }

var (
	_ Kinded = (*TransportError)(nil)
	_ Kinded = (*StatusError)(nil)
	_ Kinded = (*UnknownDiscriminantError)(nil)
)
