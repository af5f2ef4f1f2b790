package core

import (
	"context"
	"errors"
	"fmt"
	"testing"
)

func TestMapError(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		wantCode    string
		wantMessage string
	}{
		{
			name:        "nil error returns empty",
			err:         nil,
			wantCode:    "",
			wantMessage: "",
		},
		{
			name:        "missing configuration maps correctly",
			err:         fmt.Errorf("load leaderboard: %w", ErrConfigurationMissing),
			wantCode:    "CFG001",
			wantMessage: "The leaderboard sheet is not configured",
		},
		{
			name:        "fetch status carries the status text",
			err:         fmt.Errorf("load leaderboard: %w", &FetchError{StatusCode: 404, Status: "404 Not Found"}),
			wantCode:    "FETCH001",
			wantMessage: "Failed to fetch data: 404 Not Found",
		},
		{
			name:        "fetch status without text uses the code",
			err:         &FetchError{StatusCode: 503},
			wantCode:    "FETCH001",
			wantMessage: "Failed to fetch data: 503",
		},
		{
			name:        "connection refused maps correctly",
			err:         errors.New("dial tcp 127.0.0.1:443: connect: connection refused"),
			wantCode:    "FETCH002",
			wantMessage: "The leaderboard sheet could not be reached",
		},
		{
			name:        "unknown host maps correctly",
			err:         errors.New("dial tcp: lookup docs.example: no such host"),
			wantCode:    "FETCH002",
			wantMessage: "The leaderboard sheet could not be reached",
		},
		{
			name:        "unreachable sentinel maps correctly",
			err:         fmt.Errorf("fetch sheet: %w: %w", ErrSheetUnreachable, errors.New("dial tcp: i/o error")),
			wantCode:    "FETCH002",
			wantMessage: "The leaderboard sheet could not be reached",
		},
		{
			name:        "too large maps correctly",
			err:         fmt.Errorf("%w: more than 10 bytes", ErrSheetTooLarge),
			wantCode:    "FETCH003",
			wantMessage: "The leaderboard sheet is too large",
		},
		{
			name:        "empty data maps correctly",
			err:         fmt.Errorf("load leaderboard: %w", ErrEmptyData),
			wantCode:    "DATA001",
			wantMessage: "No data found in the sheet",
		},
		{
			name:        "deadline maps to timeout",
			err:         fmt.Errorf("fetch sheet: %w", context.DeadlineExceeded),
			wantCode:    "REQ002",
			wantMessage: "The sheet took too long to respond",
		},
		{
			name:        "timeout text maps to timeout",
			err:         errors.New("net/http: TLS handshake timeout"),
			wantCode:    "REQ002",
			wantMessage: "The sheet took too long to respond",
		},
		{
			name:        "cancel maps correctly",
			err:         context.Canceled,
			wantCode:    "REQ001",
			wantMessage: "The refresh was cancelled",
		},
		{
			name:        "rate limit maps correctly",
			err:         errors.New("rate limit exceeded"),
			wantCode:    "RATE001",
			wantMessage: "Too many refreshes",
		},
		{
			name:        "unknown error returns default",
			err:         errors.New("some random internal error"),
			wantCode:    "ERR000",
			wantMessage: "An unexpected error occurred",
		},
		{
			name:        "case insensitive matching",
			err:         errors.New("CONNECTION RESET by peer"),
			wantCode:    "FETCH002",
			wantMessage: "The leaderboard sheet could not be reached",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MapError(tt.err)
			if got.Code != tt.wantCode {
				t.Errorf("MapError() code = %q, want %q", got.Code, tt.wantCode)
			}
			if got.Message != tt.wantMessage {
				t.Errorf("MapError() message = %q, want %q", got.Message, tt.wantMessage)
			}
		})
	}
}

func TestIsUserFacing(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{
			name: "nil error is not user facing",
			err:  nil,
			want: false,
		},
		{
			name: "known error is user facing",
			err:  ErrConfigurationMissing,
			want: true,
		},
		{
			name: "unknown error is not user facing",
			err:  errors.New("random internal error xyz"),
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := IsUserFacing(tt.err)
			if got != tt.want {
				t.Errorf("IsUserFacing() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestNewUserError(t *testing.T) {
	t.Run("nil error returns nil", func(t *testing.T) {
		if got := NewUserError(nil); got != nil {
			t.Errorf("NewUserError(nil) = %v, want nil", got)
		}
	})

	t.Run("wraps technical error with user message", func(t *testing.T) {
		techErr := &FetchError{StatusCode: 500, Status: "500 Internal Server Error"}
		userErr := NewUserError(techErr)

		if userErr.Error() != "Failed to fetch data: 500 Internal Server Error" {
			t.Errorf("Error() = %q, want user message", userErr.Error())
		}

		var fetchErr *FetchError
		if !errors.As(userErr, &fetchErr) {
			t.Error("Unwrap() should return original error")
		}
	})

	t.Run("line includes code and action", func(t *testing.T) {
		got := NewUserError(ErrEmptyData).Line()
		want := "No data found in the sheet (Code: DATA001). Add at least one player row below the header"
		if got != want {
			t.Errorf("Line() = %q, want %q", got, want)
		}
	})
}
