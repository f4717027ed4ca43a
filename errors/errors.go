/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// Common sentinel errors
var (
	// ErrNotFound is returned when no record exists at a key
	ErrNotFound = errors.New("entity not found")

	// ErrBackend is matched by every failure surfaced by a store client
	ErrBackend = errors.New("backend error")

	// ErrInvalidInput is returned when input validation fails
	ErrInvalidInput = errors.New("invalid input")
)

// NotFoundError represents a read of an absent key. Code carries the
// HTTP-equivalent status so callers can map it onto a response directly.
type NotFoundError struct {
	Kind string
	ID   string
	Code int
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s with id %q not found", e.Kind, e.ID)
}

func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// BackendError wraps an error returned by the store client. The client
// error is kept as-is and reachable through errors.Is / errors.As.
type BackendError struct {
	Op   string
	Kind string
	Err  error
}

func (e *BackendError) Error() string {
	if e.Kind != "" {
		return fmt.Sprintf("%s %s: %v", e.Op, e.Kind, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *BackendError) Unwrap() error {
	return e.Err
}

func (e *BackendError) Is(target error) bool {
	return target == ErrBackend
}

// ValidationError represents an input validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation failed for field %q: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation failed: %s", e.Message)
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidInput
}

// Helper functions for creating errors

// NewNotFoundError creates a new NotFoundError with code 404
func NewNotFoundError(kind, id string) error {
	return &NotFoundError{Kind: kind, ID: id, Code: http.StatusNotFound}
}

// NewBackendError wraps a client error. A nil err yields nil.
func NewBackendError(op, kind string, err error) error {
	if err == nil {
		return nil
	}
	return &BackendError{Op: op, Kind: kind, Err: err}
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// IsNotFound checks if an error is a not found error
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsBackend checks if an error was surfaced by the store client
func IsBackend(err error) bool {
	return errors.Is(err, ErrBackend)
}

// IsValidationError checks if an error is a validation error
func IsValidationError(err error) bool {
	return errors.Is(err, ErrInvalidInput)
}

// Code returns the status code carried by err: 404 for NotFound, 400 for
// validation failures, 500 for everything else and 0 for nil.
func Code(err error) int {
	if err == nil {
		return 0
	}
	var nf *NotFoundError
	if errors.As(err, &nf) {
		return nf.Code
	}
	if IsValidationError(err) {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}
