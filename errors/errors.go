package errors

import (
	"errors"
	"net/http"
)

var (
	NotFound            = HttpError{http.StatusNotFound, errors.New("not found")}
	BadRequest          = HttpError{http.StatusBadRequest, errors.New("bad request")}
	Unauthorized        = HttpError{http.StatusUnauthorized, errors.New("unauthorized")}
	Forbidden           = HttpError{http.StatusForbidden, errors.New("forbidden")}
	InternalServerError = HttpError{http.StatusInternalServerError, errors.New("internal server error")}
)

type HttpError struct {
	Code int
	Err  error
}

func (h HttpError) Unwrap() error {
	return h.Err
}

func (h HttpError) Error() string {
	return h.Err.Error()
}

// New returns an HttpError carrying the same status code as base with a
// message specific to the failed request.
func New(base HttpError, message string) HttpError {
	return HttpError{base.Code, errors.New(message)}
}
