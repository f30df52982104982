package utils

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	ErrNotFound   = errors.New("resource not found")
	ErrBadRequest = errors.New("bad request")
	ErrInternal   = errors.New("internal error")
)

// ServiceError is the failure side of every repository and service call.
// Status and Message are copied verbatim into the response envelope.
type ServiceError struct {
	Status  int
	Message string
	Err     error
}

func (e *ServiceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap exposes both the kind sentinel and the underlying cause.
func (e *ServiceError) Unwrap() []error {
	kind := ErrInternal
	switch e.Status {
	case http.StatusNotFound:
		kind = ErrNotFound
	case http.StatusBadRequest:
		kind = ErrBadRequest
	}
	if e.Err == nil {
		return []error{kind}
	}
	return []error{kind, e.Err}
}

func NotFound(message string) *ServiceError {
	return &ServiceError{Status: http.StatusNotFound, Message: message}
}

func BadRequest(message string) *ServiceError {
	return &ServiceError{Status: http.StatusBadRequest, Message: message}
}

// QueryFailed wraps an unexpected database failure raised while resolving a
// parent entity.
func QueryFailed(err error) *ServiceError {
	return &ServiceError{
		Status:  http.StatusInternalServerError,
		Message: "Error en la consulta: " + Redact(err.Error()),
		Err:     err,
	}
}

// AsServiceError reports whether err carries a ServiceError.
func AsServiceError(err error) (*ServiceError, bool) {
	var se *ServiceError
	if errors.As(err, &se) {
		return se, true
	}
	return nil, false
}
