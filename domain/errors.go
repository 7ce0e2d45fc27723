package domain

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrNotFound            = errors.New("record not found")
	ErrDuplicateNationalID = errors.New("national ID already registered")
	ErrHasDependents       = errors.New("record still has dependent rows")
	ErrInvalidInput        = errors.New("invalid input")
)

// ValidationError carries the business-rule failures of a candidate record in the
// order they were detected. The first entry is the one surfaced to the user.
type ValidationError struct {
	Errors []string
}

func NewValidationError(errs ...string) *ValidationError {
	return &ValidationError{Errors: errs}
}

func (e *ValidationError) Error() string {
	return strings.Join(e.Errors, "; ")
}

func (e *ValidationError) First() string {
	if len(e.Errors) == 0 {
		return ""
	}
	return e.Errors[0]
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidInput
}

// NotFoundError reports a missing row, looked up either by ID or by a natural Key.
type NotFoundError struct {
	Entity string
	ID     int
	Key    string
}

func (e *NotFoundError) Error() string {
	if e.Key != "" {
		return fmt.Sprintf("%s %s not found", e.Entity, e.Key)
	}
	return fmt.Sprintf("%s with id %d not found", e.Entity, e.ID)
}

func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// UniquenessError is returned when a unique column (national ID) already holds the value.
type UniquenessError struct {
	Entity string
	Field  string
	Value  string
}

func (e *UniquenessError) Error() string {
	return fmt.Sprintf("a %s with %s %s already exists", e.Entity, e.Field, e.Value)
}

func (e *UniquenessError) Is(target error) bool {
	return target == ErrDuplicateNationalID || target == ErrInvalidInput
}

type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}
