package usecase

import (
	"errors"
	"fmt"
	"strings"
)

type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidationErrors aggregates every failed required-field check for a single
// input so the caller sees all of them at once.
type ValidationErrors []ValidationError

func (e ValidationErrors) Error() string {
	msgs := make([]string, len(e))
	for i, v := range e {
		msgs[i] = v.Error()
	}
	return "validation failed: " + strings.Join(msgs, ", ")
}

// NotFoundError signals a reference field pointing at a record that does not
// exist. At the HTTP layer it is indistinguishable from a validation error.
type NotFoundError struct {
	Entity string
	ID     string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s with id '%s' does not exist", e.Entity, e.ID)
}

type ConflictError struct {
	Message string
}

func (e *ConflictError) Error() string {
	return e.Message
}

// IsClientError reports whether err is caused by the request rather than the
// system. All three error kinds surface as 400.
func IsClientError(err error) bool {
	var ve ValidationErrors
	var nf *NotFoundError
	var cf *ConflictError
	return errors.As(err, &ve) || errors.As(err, &nf) || errors.As(err, &cf)
}
