package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestNew(t *testing.T) {
	err := New(ErrCodeInvalidRoot, "directory %q does not exist", "src")

	if err.Code != ErrCodeInvalidRoot {
		t.Errorf("Code = %v, want %v", err.Code, ErrCodeInvalidRoot)
	}

	if err.Message != `directory "src" does not exist` {
		t.Errorf("Message = %v", err.Message)
	}

	expected := `INVALID_ROOT: directory "src" does not exist`
	if err.Error() != expected {
		t.Errorf("Error() = %v, want %v", err.Error(), expected)
	}
}

func TestWrap(t *testing.T) {
	cause := errors.New("permission denied")
	err := Wrap(ErrCodeReadFailed, cause, "read a.cpp")

	if err.Code != ErrCodeReadFailed {
		t.Errorf("Code = %v, want %v", err.Code, ErrCodeReadFailed)
	}

	if err.Cause != cause {
		t.Errorf("Cause = %v, want %v", err.Cause, cause)
	}

	if unwrapped := errors.Unwrap(err); unwrapped != cause {
		t.Errorf("Unwrap() = %v, want %v", unwrapped, cause)
	}

	if !errors.Is(err, cause) {
		t.Error("errors.Is(err, cause) = false, want true")
	}
}

func TestIs(t *testing.T) {
	integrity := &IntegrityError{IncludePath: "core/a.h", ReferencedIn: "utils/u.cpp"}

	tests := []struct {
		name     string
		err      error
		code     Code
		expected bool
	}{
		{
			name:     "matching code",
			err:      New(ErrCodeInvalidRoot, "test"),
			code:     ErrCodeInvalidRoot,
			expected: true,
		},
		{
			name:     "non-matching code",
			err:      New(ErrCodeInvalidRoot, "test"),
			code:     ErrCodeReadFailed,
			expected: false,
		},
		{
			name:     "wrapped error",
			err:      Wrap(ErrCodeReadFailed, New(ErrCodeInvalidRoot, "inner"), "outer"),
			code:     ErrCodeReadFailed,
			expected: true,
		},
		{
			name:     "integrity error",
			err:      integrity,
			code:     ErrCodeHeaderNotFound,
			expected: true,
		},
		{
			name:     "integrity error wrapped with fmt",
			err:      fmt.Errorf("scan: %w", integrity),
			code:     ErrCodeHeaderNotFound,
			expected: true,
		},
		{
			name:     "non-Error type",
			err:      errors.New("plain error"),
			code:     ErrCodeInvalidRoot,
			expected: false,
		},
		{
			name:     "nil error",
			err:      nil,
			code:     ErrCodeInvalidRoot,
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Is(tt.err, tt.code); got != tt.expected {
				t.Errorf("Is() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestGetCode(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected Code
	}{
		{"Error type", New(ErrCodeInvalidConfig, "test"), ErrCodeInvalidConfig},
		{"IntegrityError", &IntegrityError{}, ErrCodeHeaderNotFound},
		{"plain error", errors.New("plain"), ""},
		{"nil", nil, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := GetCode(tt.err); got != tt.expected {
				t.Errorf("GetCode() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestUserMessage(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{"Error type", New(ErrCodeInvalidRoot, "friendly message"), "friendly message"},
		{"plain error", errors.New("plain error"), "plain error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := UserMessage(tt.err); got != tt.expected {
				t.Errorf("UserMessage() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestIntegrityError(t *testing.T) {
	err := &IntegrityError{
		IncludePath:  "core/missing.h",
		ReferencedIn: "/src/utils/u.cpp",
		Resolved:     "/src/core/missing.h",
		Base:         "/src",
	}

	want := `header not found at /src/core/missing.h (included as "core/missing.h" from /src/utils/u.cpp)`
	if err.Error() != want {
		t.Errorf("Error() = %v, want %v", err.Error(), want)
	}

	var target *IntegrityError
	if !errors.As(fmt.Errorf("build: %w", err), &target) {
		t.Fatal("errors.As did not find *IntegrityError")
	}
	if target.IncludePath != "core/missing.h" {
		t.Errorf("IncludePath = %q", target.IncludePath)
	}
}
