/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestNotFoundError(t *testing.T) {
	err := NewNotFoundError("Book", "123")

	// Test error message
	expected := `Book with id "123" not found`
	if err.Error() != expected {
		t.Errorf("Expected error message %q, got %q", expected, err.Error())
	}

	// Test Is method
	if !errors.Is(err, ErrNotFound) {
		t.Error("NotFoundError should match ErrNotFound")
	}

	// Test helper function
	if !IsNotFound(err) {
		t.Error("IsNotFound should return true for NotFoundError")
	}

	var nf *NotFoundError
	if !errors.As(err, &nf) || nf.Code != 404 {
		t.Errorf("Expected NotFoundError with code 404, got %+v", nf)
	}
}

func TestBackendError(t *testing.T) {
	cause := errors.New("throughput exceeded")
	err := NewBackendError("put", "Book", cause)

	expected := "put Book: throughput exceeded"
	if err.Error() != expected {
		t.Errorf("Expected error message %q, got %q", expected, err.Error())
	}

	if !IsBackend(err) {
		t.Error("IsBackend should return true for BackendError")
	}

	// The client error stays reachable
	if !errors.Is(err, cause) {
		t.Error("BackendError should unwrap to the client error")
	}

	if IsNotFound(err) {
		t.Error("BackendError should not match ErrNotFound")
	}

	if NewBackendError("put", "Book", nil) != nil {
		t.Error("NewBackendError(nil) should return nil")
	}
}

func TestBackendErrorWithoutKind(t *testing.T) {
	err := NewBackendError("allocate", "", errors.New("boom"))
	if err.Error() != "allocate: boom" {
		t.Errorf("unexpected message %q", err.Error())
	}
}

func TestValidationError(t *testing.T) {
	// With field
	err := NewValidationError("id", "must be a base-10 integer")
	expected := `validation failed for field "id": must be a base-10 integer`
	if err.Error() != expected {
		t.Errorf("Expected error message %q, got %q", expected, err.Error())
	}

	// Without field
	err = NewValidationError("", "general validation error")
	expected = "validation failed: general validation error"
	if err.Error() != expected {
		t.Errorf("Expected error message %q, got %q", expected, err.Error())
	}

	if !IsValidationError(err) {
		t.Error("IsValidationError should return true for ValidationError")
	}
}

func TestErrorWrapping(t *testing.T) {
	baseErr := NewNotFoundError("Book", "123")
	wrappedErr := fmt.Errorf("failed to load book: %w", baseErr)

	if !errors.Is(wrappedErr, ErrNotFound) {
		t.Error("Wrapped error should still match ErrNotFound")
	}

	if !IsNotFound(wrappedErr) {
		t.Error("IsNotFound should work with wrapped errors")
	}
}

func TestCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, 0},
		{"not found", NewNotFoundError("Book", "1"), 404},
		{"wrapped not found", fmt.Errorf("read: %w", NewNotFoundError("Book", "1")), 404},
		{"validation", NewValidationError("id", "bad"), 400},
		{"backend", NewBackendError("get", "Book", errors.New("x")), 500},
		{"plain", errors.New("x"), 500},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Code(tt.err); got != tt.want {
				t.Errorf("Code() = %d, want %d", got, tt.want)
			}
		})
	}
}
