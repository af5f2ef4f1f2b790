package core

// csvparse.go tokenizes the published sheet.
//
// The format is simpler than RFC 4180: a double quote always
// toggles quoted mode, so escaped quotes ("") are not supported and quotes
// never appear in field values. The text is split into lines before tokenizing,
// so a quoted field cannot span lines.

import "strings"

// ParseCSV splits text into data rows, discarding the header line.
// Returns ErrEmptyData if there is no line after the header.
func ParseCSV(text string) ([][]string, error) {
	lines := strings.Split(strings.TrimSpace(text), "\n")
	if len(lines) < 2 {
		return nil, ErrEmptyData
	}

	rows := make([][]string, 0, len(lines)-1)
	for _, line := range lines[1:] {
		rows = append(rows, ParseLine(line))
	}
	return rows, nil
}

// ParseLine tokenizes a single line into trimmed fields.
// Commas inside quotes are kept; the quotes themselves are dropped.
func ParseLine(line string) []string {
	var (
		fields   []string
		current  strings.Builder
		inQuotes bool
	)

	for _, r := range line {
		switch {
		case r == '"':
			inQuotes = !inQuotes
		case r == ',' && !inQuotes:
			fields = append(fields, strings.TrimSpace(current.String()))
			current.Reset()
		default:
			current.WriteRune(r)
		}
	}

	return append(fields, strings.TrimSpace(current.String()))
}
