package adapter

import "errors"

var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrBadGateway          = errors.New("bad gateway")
	ErrInternalServerError = errors.New("internal server error")

	// ErrRejected is returned when the server answers 2xx but the body
	// carries an error marker.
	ErrRejected = errors.New("request rejected by server")
)

// ResponseError is a non-successful server answer. It unwraps to one of the
// sentinel errors above so callers can match it with [errors.Is], while
// Message keeps the text the server sent.
type ResponseError struct {
	StatusCode int
	Message    string
	Kind       error
}

func (e *ResponseError) Error() string {
	if e.Message == "" {
		return e.Kind.Error()
	}
	return e.Kind.Error() + ": " + e.Message
}

func (e *ResponseError) Unwrap() error {
	return e.Kind
}
