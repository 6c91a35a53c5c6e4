package usecase

import (
	"errors"
	"fmt"
)

// NotFoundError signals that a referenced entity does not exist. Handlers map
// it to 404.
type NotFoundError struct {
	Entity string
	ID     string
}

func (e *NotFoundError) Error() string {
	if e.ID == "" {
		return e.Entity + " not found"
	}
	return fmt.Sprintf("%s %s not found", e.Entity, e.ID)
}

func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}

// ValidationError describes a single bad field. Handlers map a ValidationErrors
// bundle to 400.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

type ValidationErrors []ValidationError

func (e ValidationErrors) Error() string {
	msg := "validation failed:"
	for _, v := range e {
		msg += " " + v.Field + " (" + v.Message + ")"
	}
	return msg
}

func IsValidation(err error) bool {
	var ve ValidationErrors
	return errors.As(err, &ve)
}

// PersistenceError wraps a store fault. Handlers map it to 500 with a generic
// message; the underlying error stays available for logs via Unwrap.
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	return e.Op + ": " + e.Err.Error()
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}

func IsPersistence(err error) bool {
	var pe *PersistenceError
	return errors.As(err, &pe)
}
