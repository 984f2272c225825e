package logger

import "testing"

func TestSanitizeKVsRedactsSecrets(t *testing.T) {
	got := sanitizeKVs([]interface{}{"user_id", "u1", "password", "secret1", "session_id", "abc", "dangling"})
	want := []interface{}{"user_id", "u1", "password", "[REDACTED]", "session_id", "[REDACTED]", "dangling"}
	if len(got) != len(want) {
		t.Fatalf("unexpected length: got=%d want=%d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("index %d: got=%v want=%v", i, got[i], want[i])
		}
	}
}

func TestIsRedactKey(t *testing.T) {
	cases := map[string]bool{
		"password":       true,
		"GEMINI_API_KEY": true,
		"Cookie":         true,
		"user_id":        false,
		"":               false,
	}
	for key, want := range cases {
		if got := isRedactKey(key); got != want {
			t.Fatalf("isRedactKey(%q): got=%v want=%v", key, got, want)
		}
	}
}
