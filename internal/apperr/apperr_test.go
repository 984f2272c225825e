package apperr

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
)

func TestAsFindsWrappedError(t *testing.T) {
	inner := NotFound("Resume not found")
	wrapped := fmt.Errorf("lookup: %w", inner)

	got, ok := As(wrapped)
	if !ok {
		t.Fatalf("expected *Error in chain")
	}
	if got.Status != http.StatusNotFound {
		t.Fatalf("unexpected status: got=%d want=%d", got.Status, http.StatusNotFound)
	}
}

func TestErrorMessageFallbacks(t *testing.T) {
	cause := errors.New("db down")
	cases := []struct {
		name string
		err  *Error
		want string
	}{
		{"message", Internal("Failed to fetch skills", cause), "Failed to fetch skills"},
		{"cause", &Error{Status: 500, Err: cause}, "db down"},
		{"code", &Error{Status: 403, Code: CodeForbidden}, CodeForbidden},
		{"status", &Error{Status: 418}, "api error (418)"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.err.Error(); got != tc.want {
				t.Fatalf("got=%q want=%q", got, tc.want)
			}
		})
	}
	if !errors.Is(Internal("x", cause), cause) {
		t.Fatalf("expected Unwrap to expose the cause")
	}
}
