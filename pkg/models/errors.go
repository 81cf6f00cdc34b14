package models

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalid is matched by errors.Is for any ValidationError.
var ErrInvalid = errors.New("invalid articles")

type FieldError struct {
	Field   string
	Message string
}

func (e FieldError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidationError accumulates the problems found in a submitted collection
// so the admin sees every rejected field at once, not just the first.
type ValidationError struct {
	Items []FieldError
}

func (e *ValidationError) Error() string {
	if len(e.Items) == 0 {
		return "validation failed"
	}

	var b strings.Builder
	b.WriteString("validation failed:")
	for _, item := range e.Items {
		b.WriteString(" ")
		b.WriteString(item.Error())
		b.WriteString(";")
	}
	return strings.TrimSuffix(b.String(), ";")
}

func (e *ValidationError) Add(field, msg string) {
	e.Items = append(e.Items, FieldError{
		Field:   field,
		Message: msg,
	})
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalid
}

func (e *ValidationError) HasAny() bool {
	return len(e.Items) > 0
}
