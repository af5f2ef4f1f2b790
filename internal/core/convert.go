package core

// convert.go coerces sheet cells into numbers.
//
// Coercion is best-effort: a cell either yields a number or 0, never an error.
//   - Integers use the leading digits ("12 wins" -> 12, "7.9" -> 7)
//   - Percentages use the leading decimal ("62.5%" -> 62.5)
//   - Currency strips symbols, thousands separators and accounting
//     parentheses before an exact decimal parse

import (
	"errors"
	"regexp"
	"strconv"
	"strings"

	"github.com/jackc/pgx/v5/pgtype"
)

var (
	leadingIntRegex   = regexp.MustCompile(`^[+-]?\d+`)
	leadingFloatRegex = regexp.MustCompile(`^[+-]?(\d+(\.\d*)?|\.\d+)([eE][+-]?\d+)?`)

	// numericRegex validates a cleaned currency string.
	numericRegex = regexp.MustCompile(`^[+-]?(\d+(\.\d*)?|\.\d+)$`)
)

// ParseLeadingInt returns the integer formed by the leading digits of s, or 0.
// Digit runs beyond the range of int clamp to math.MaxInt or math.MinInt.
func ParseLeadingInt(s string) int {
	m := leadingIntRegex.FindString(strings.TrimSpace(s))
	if m == "" {
		return 0
	}
	// On ErrRange ParseInt returns the clamped bound.
	i, err := strconv.ParseInt(m, 10, 0)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return 0
	}
	return int(i)
}

// ParseLeadingFloat returns the decimal formed by the leading characters of s, or 0.
func ParseLeadingFloat(s string) float64 {
	m := leadingFloatRegex.FindString(strings.TrimSpace(s))
	if m == "" {
		return 0
	}
	f, err := strconv.ParseFloat(m, 64)
	if err != nil {
		return 0
	}
	return f
}

// ToNumeric converts a currency-formatted string to pgtype.Numeric.
// Handles currency symbols, thousands separators, and accounting format
// (parentheses for negative). Returns Valid=false for empty or invalid input.
func ToNumeric(s string) pgtype.Numeric {
	s = strings.TrimSpace(s)
	if s == "" {
		return pgtype.Numeric{Valid: false}
	}

	isNegative := false
	if strings.HasPrefix(s, "(") && strings.HasSuffix(s, ")") {
		isNegative = true
		s = strings.TrimSpace(s[1 : len(s)-1])
	}

	s = strings.ReplaceAll(s, "$", "")
	s = strings.ReplaceAll(s, "€", "") // Euro
	s = strings.ReplaceAll(s, "£", "") // Pound
	s = strings.ReplaceAll(s, ",", "")
	s = strings.TrimSpace(s)

	if isNegative {
		s = "-" + s
	}

	if !numericRegex.MatchString(s) {
		return pgtype.Numeric{Valid: false}
	}

	var n pgtype.Numeric
	if err := n.Scan(s); err != nil {
		return pgtype.Numeric{Valid: false}
	}
	return n
}

// ParseCurrency returns the value of a currency-formatted string, or 0.
func ParseCurrency(s string) float64 {
	n := ToNumeric(s)
	if !n.Valid {
		return 0
	}
	f, err := n.Float64Value()
	if err != nil || !f.Valid {
		return 0
	}
	return f.Float64
}
