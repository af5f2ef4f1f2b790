package core

import "errors"

// ErrConfigurationMissing is returned when no sheet URL is configured.
var ErrConfigurationMissing = errors.New("sheet url not configured")

// ErrEmptyData is returned when the sheet has a header but no data lines.
var ErrEmptyData = errors.New("no data found in the sheet")

// ErrSheetUnreachable wraps transport failures that happen before the sheet
// host answers, such as a refused connection or an unknown host.
var ErrSheetUnreachable = errors.New("sheet host unreachable")

// ErrSheetTooLarge is returned when the fetched document exceeds the size limit.
var ErrSheetTooLarge = errors.New("sheet too large")

// FetchError reports a non-success HTTP response from the sheet host.
type FetchError struct {
	StatusCode int
	Status     string // e.g. "404 Not Found"
}

func (e *FetchError) Error() string {
	return "failed to fetch sheet: " + e.statusText()
}
