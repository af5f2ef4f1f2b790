// Error Codes Reference
//
// Every load failure is shown to the user as one message. The code lets a
// user quote the failure without reading logs.
//
// # Configuration Errors (CFG001-CFG099)
//
//	CFG001 - Sheet not configured: No sheet URL is set
//	         Action: Set SHEET_CSV_URL to the published CSV link
//	         Kind: ErrConfigurationMissing
//
// # Fetch Errors (FETCH001-FETCH099)
//
//	FETCH001 - Sheet unavailable: The sheet host answered with an error status
//	           Action: Check the sheet is still published to the web
//	           Kind: *FetchError (message carries the status)
//
//	FETCH002 - Sheet unreachable: The sheet host could not be contacted
//	           Action: Check your connection and try again
//	           Kind: ErrSheetUnreachable
//	           Patterns: "no such host", "connection refused", "connection reset"
//
//	FETCH003 - Sheet too large: The document exceeds the configured size limit
//	           Action: Publish only the leaderboard tab
//	           Kind: ErrSheetTooLarge
//
// # Data Errors (DATA001-DATA099)
//
//	DATA001 - No data: The sheet has a header row but no players
//	          Action: Add at least one player row below the header
//	          Kind: ErrEmptyData
//
// # Request Errors (REQ001-REQ099)
//
//	REQ001 - Request cancelled: The refresh was cancelled
//	         Action: Please try again
//	         Kind: context.Canceled
//
//	REQ002 - Request timeout: The sheet took too long to respond
//	         Action: Try refreshing again in a moment
//	         Kind: context.DeadlineExceeded, Patterns: "timeout"
//
// # Rate Limiting (RATE001-RATE099)
//
//	RATE001 - Rate limited: Too many refreshes
//	          Action: Please wait a moment before refreshing again
//	          Patterns: "rate limit"
//
// # Default Error (ERR000)
//
//	ERR000 - Unknown error: An unexpected error occurred
//	         Action: Please try again
//
// Typed errors are matched with errors.Is / errors.As first; the remaining
// patterns are matched case-insensitively with strings.Contains and the first
// match wins.

package core

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// UserMessage provides user-friendly error information with actionable guidance.
type UserMessage struct {
	Message string // What happened (user-friendly)
	Action  string // What to do about it
	Code    string // Error code for support reference
}

var (
	msgNotConfigured = UserMessage{
		Message: "The leaderboard sheet is not configured",
		Action:  "Set SHEET_CSV_URL to the published CSV link",
		Code:    "CFG001",
	}
	msgUnreachable = UserMessage{
		Message: "The leaderboard sheet could not be reached",
		Action:  "Check your connection and try again",
		Code:    "FETCH002",
	}
	msgTooLarge = UserMessage{
		Message: "The leaderboard sheet is too large",
		Action:  "Publish only the leaderboard tab",
		Code:    "FETCH003",
	}
	msgNoData = UserMessage{
		Message: "No data found in the sheet",
		Action:  "Add at least one player row below the header",
		Code:    "DATA001",
	}
	msgCancelled = UserMessage{
		Message: "The refresh was cancelled",
		Action:  "Please try again",
		Code:    "REQ001",
	}
	msgTimeout = UserMessage{
		Message: "The sheet took too long to respond",
		Action:  "Try refreshing again in a moment",
		Code:    "REQ002",
	}
	msgRateLimited = UserMessage{
		Message: "Too many refreshes",
		Action:  "Please wait a moment before refreshing again",
		Code:    "RATE001",
	}
)

// errorPattern defines a pattern to match and its corresponding user message.
type errorPattern struct {
	pattern string
	msg     UserMessage
}

// errorPatterns covers untyped errors, mostly from net/http.
// Specific patterns come before general ones.
var errorPatterns = []errorPattern{
	{pattern: "no such host", msg: msgUnreachable},
	{pattern: "connection refused", msg: msgUnreachable},
	{pattern: "connection reset", msg: msgUnreachable},
	{pattern: "timeout", msg: msgTimeout},
	{pattern: "rate limit", msg: msgRateLimited},
}

// defaultMessage is returned when no pattern matches.
var defaultMessage = UserMessage{
	Message: "An unexpected error occurred",
	Action:  "Please try again",
	Code:    "ERR000",
}

// MapError converts a technical error into a user-friendly message.
// Returns an empty UserMessage if err is nil.
func MapError(err error) UserMessage {
	if err == nil {
		return UserMessage{}
	}

	var fetchErr *FetchError
	switch {
	case errors.Is(err, ErrConfigurationMissing):
		return msgNotConfigured
	case errors.As(err, &fetchErr):
		return UserMessage{
			Message: "Failed to fetch data: " + fetchErr.statusText(),
			Action:  "Check the sheet is still published to the web",
			Code:    "FETCH001",
		}
	case errors.Is(err, ErrSheetUnreachable):
		return msgUnreachable
	case errors.Is(err, ErrSheetTooLarge):
		return msgTooLarge
	case errors.Is(err, ErrEmptyData):
		return msgNoData
	case errors.Is(err, context.DeadlineExceeded):
		return msgTimeout
	case errors.Is(err, context.Canceled):
		return msgCancelled
	}

	errStr := strings.ToLower(err.Error())
	for _, ep := range errorPatterns {
		if strings.Contains(errStr, ep.pattern) {
			return ep.msg
		}
	}

	return defaultMessage
}

// IsUserFacing reports whether err maps to a specific message rather than
// the generic fallback.
func IsUserFacing(err error) bool {
	if err == nil {
		return false
	}
	return MapError(err).Code != defaultMessage.Code
}

// UserError pairs a technical error with the message shown for it.
type UserError struct {
	Technical error       // Original technical error for logging
	User      UserMessage // User-friendly message for display
}

func (e *UserError) Error() string {
	return e.User.Message
}

func (e *UserError) Unwrap() error {
	return e.Technical
}

// Line formats the message as the single line shown to users:
// "Message (Code: XXX). Action"
func (e *UserError) Line() string {
	return fmt.Sprintf("%s (Code: %s). %s", e.User.Message, e.User.Code, e.User.Action)
}

// NewUserError maps err to a UserError. Returns nil if err is nil.
func NewUserError(err error) *UserError {
	if err == nil {
		return nil
	}
	return &UserError{
		Technical: err,
		User:      MapError(err),
	}
}

func (e *FetchError) statusText() string {
	if e.Status != "" {
		return e.Status
	}
	return fmt.Sprintf("%d", e.StatusCode)
}
