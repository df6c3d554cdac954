package errs

import (
	"errors"
	"net/http"
)

// Machine-readable error codes carried in the response envelope.
const (
	CodeValidation = "validation_error"
	CodeNotFound   = "not_found"
	CodeConflict   = "conflict"
	CodeInternal   = "internal"
)

// Common error sentinel values
var (
	ErrValidation = errors.New("validation failed")
	ErrNotFound   = errors.New("not found")
	ErrConflict   = errors.New("resource conflict")
	ErrInternal   = errors.New("internal server error")
)

type ApiErr struct {
	StatusCode int
	Code       string
	err        error
	kind       error // taxonomy sentinel, for errors.Is checks
	Cause      error // The underlying cause of the error
}

// implements error interface. this allows us to pass an instance of ApiErr as an argument of type `error`
func (e *ApiErr) Error() string {
	return e.err.Error()
}

// Message is the client-facing text written into the error envelope.
func (e *ApiErr) Message() string {
	return e.err.Error()
}

// this function allows us to do the following:
// err := errs.NewNotFound("developer not found")
// errors.Is(err, errs.ErrNotFound) ==> evaluates to true
func (e *ApiErr) Unwrap() []error {
	out := []error{e.err}
	if e.kind != nil {
		out = append(out, e.kind)
	}
	if e.Cause != nil {
		out = append(out, e.Cause)
	}
	return out
}

// Common error constructors with appropriate HTTP status codes
func NewBadRequest(message string) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusBadRequest,
		Code:       CodeValidation,
		err:        errors.New(message),
		kind:       ErrValidation,
	}
}

func NewNotFound(message string) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusNotFound,
		Code:       CodeNotFound,
		err:        errors.New(message),
		kind:       ErrNotFound,
	}
}

func NewConflict(message string) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusConflict,
		Code:       CodeConflict,
		err:        errors.New(message),
		kind:       ErrConflict,
	}
}

func NewInternal(message string) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusInternalServerError,
		Code:       CodeInternal,
		err:        errors.New(message),
		kind:       ErrInternal,
	}
}

func IsValidation(err error) bool {
	return errors.Is(err, ErrValidation)
}

func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

func IsConflict(err error) bool {
	return errors.Is(err, ErrConflict)
}

func IsInternal(err error) bool {
	return errors.Is(err, ErrInternal)
}
