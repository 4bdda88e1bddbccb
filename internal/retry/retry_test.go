package retry

import (
	"context"
	"errors"
	"testing"

	"google.golang.org/api/googleapi"
)

func TestDoRetriesServerErrors(t *testing.T) {
	calls := 0
	got, err := Do(context.Background(), func() (string, error) {
		calls++
		if calls < 3 {
			return "", &googleapi.Error{Code: 503, Message: "backend unavailable"}
		}
		return "ok", nil
	})
	if err != nil {
		t.Fatalf("Do() error = %v, want nil", err)
	}
	if got != "ok" {
		t.Errorf("Do() = %q, want %q", got, "ok")
	}
	if calls != 3 {
		t.Errorf("op called %d times, want 3", calls)
	}
}

func TestDoStopsOnClientError(t *testing.T) {
	calls := 0
	_, err := Do(context.Background(), func() (int, error) {
		calls++
		return 0, &googleapi.Error{Code: 404, Message: "not found"}
	})
	if err == nil {
		t.Fatal("Do() error = nil, want 404")
	}
	var gerr *googleapi.Error
	if !errors.As(err, &gerr) || gerr.Code != 404 {
		t.Errorf("Do() error = %v, want googleapi 404", err)
	}
	if calls != 1 {
		t.Errorf("op called %d times, want 1 (permanent error)", calls)
	}
}

func TestDoGivesUpAfterMaxTries(t *testing.T) {
	calls := 0
	_, err := Do(context.Background(), func() (int, error) {
		calls++
		return 0, &googleapi.Error{Code: 500, Message: "boom"}
	})
	if err == nil {
		t.Fatal("Do() error = nil, want failure after retries")
	}
	if calls != maxTries {
		t.Errorf("op called %d times, want %d", calls, maxTries)
	}
}

func TestIsRetryable(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{name: "rate limited", err: &googleapi.Error{Code: 429}, want: true},
		{name: "request timeout", err: &googleapi.Error{Code: 408}, want: true},
		{name: "server fault", err: &googleapi.Error{Code: 502}, want: true},
		{name: "bad request", err: &googleapi.Error{Code: 400}, want: false},
		{name: "forbidden", err: &googleapi.Error{Code: 403}, want: false},
		{name: "plain network error", err: errors.New("connection reset"), want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := isRetryable(tt.err); got != tt.want {
				t.Errorf("isRetryable(%v) = %v, want %v", tt.err, got, tt.want)
			}
		})
	}
}
