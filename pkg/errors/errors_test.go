package errors

import (
	stderrors "errors"
	"fmt"
	"strings"
	"testing"
)

func TestNew(t *testing.T) {
	err := New(ErrCodeInvalidPath, "bad path: %s", "/nope")
	if err.Code != ErrCodeInvalidPath {
		t.Errorf("Code = %q, want %q", err.Code, ErrCodeInvalidPath)
	}
	if err.Message != "bad path: /nope" {
		t.Errorf("Message = %q", err.Message)
	}
	if err.Cause != nil {
		t.Errorf("Cause = %v, want nil", err.Cause)
	}
	if got := err.Error(); got != "INVALID_PATH: bad path: /nope" {
		t.Errorf("Error() = %q", got)
	}
}

func TestWrap(t *testing.T) {
	cause := fmt.Errorf("permission denied")
	err := Wrap(ErrCodeIO, cause, "count lines of %s", "a.js")

	if !stderrors.Is(err, cause) {
		t.Error("wrapped error should match cause via errors.Is")
	}
	if !strings.Contains(err.Error(), "permission denied") {
		t.Errorf("Error() = %q, want cause included", err.Error())
	}
	if err.Unwrap() != cause {
		t.Error("Unwrap() should return cause")
	}
}

func TestIs(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code Code
		want bool
	}{
		{"MatchingCode", New(ErrCodeDiscovery, "boom"), ErrCodeDiscovery, true},
		{"DifferentCode", New(ErrCodeDiscovery, "boom"), ErrCodeIO, false},
		{"WrappedMatch", fmt.Errorf("outer: %w", New(ErrCodeConvergence, "no fixed point")), ErrCodeConvergence, true},
		{"PlainError", fmt.Errorf("plain"), ErrCodeInternal, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Is(tt.err, tt.code); got != tt.want {
				t.Errorf("Is() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestGetCode(t *testing.T) {
	if got := GetCode(New(ErrCodeIO, "x")); got != ErrCodeIO {
		t.Errorf("GetCode = %q, want %q", got, ErrCodeIO)
	}
	if got := GetCode(fmt.Errorf("plain")); got != "" {
		t.Errorf("GetCode = %q, want empty", got)
	}
}

func TestUserMessage(t *testing.T) {
	if got := UserMessage(New(ErrCodeInvalidInput, "bad flag")); got != "bad flag" {
		t.Errorf("UserMessage = %q", got)
	}
	if got := UserMessage(fmt.Errorf("plain failure")); got != "plain failure" {
		t.Errorf("UserMessage = %q", got)
	}
}
