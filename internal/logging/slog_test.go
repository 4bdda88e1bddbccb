package logging

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
)

func TestAnonymizeEmail(t *testing.T) {
	tests := []struct {
		name  string
		email string
	}{
		{name: "regular email", email: "jane@example.com"},
		{name: "uppercase email", email: "JANE@EXAMPLE.COM"},
		{name: "unicode local part", email: "josé@example.com"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := AnonymizeEmail(tt.email)
			if !strings.HasPrefix(got, "user:") {
				t.Errorf("AnonymizeEmail() = %q, want user: prefix", got)
			}
			if strings.Contains(got, tt.email) {
				t.Errorf("AnonymizeEmail() = %q leaks the address", got)
			}
			// Hashing must be stable so log lines correlate
			if again := AnonymizeEmail(tt.email); again != got {
				t.Errorf("AnonymizeEmail() not deterministic: %q vs %q", got, again)
			}
		})
	}

	if got := AnonymizeEmail(""); got != "" {
		t.Errorf("AnonymizeEmail(\"\") = %q, want empty", got)
	}
}

func TestErrNil(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	logger.Info("test message", Err(nil))

	if strings.Contains(buf.String(), KeyError) {
		t.Errorf("Err(nil) should not emit an error attribute, got %q", buf.String())
	}
}

func TestWithHelpers(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	l := WithAccount(WithOperation(logger, "archive.run"), "default")
	l.Info("hello", Status(StatusSuccess), UserHash("jane@example.com"))

	out := buf.String()
	for _, want := range []string{
		KeyOperation + "=archive.run",
		KeyAccount + "=default",
		KeyStatus + "=" + StatusSuccess,
		KeyUserHash + "=user:",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("log output %q missing %q", out, want)
		}
	}
}
