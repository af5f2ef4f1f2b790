package core

import "strings"

// Fallback literals used when a text cell is missing or empty.
const (
	FallbackName    = "Unknown"
	FallbackWinRate = "0%"
	FallbackBalance = "$0"
)

// FieldSpec describes one positional column of the sheet.
type FieldSpec struct {
	Name     string  // Sheet header
	Label    string  // Table header when it differs from Name
	Index    int     // Zero-based column position
	Key      SortKey // Sort key that orders by this column
	Fallback string  // Used when the cell is missing or empty
	Apply    func(rec *Record, cell string)
}

// Columns is the sheet layout, in column order.
var Columns = []FieldSpec{
	{
		Name: "Name", Label: "Player", Index: 0, Key: SortName, Fallback: FallbackName,
		Apply: func(rec *Record, cell string) { rec.Name = cell },
	},
	{
		Name: "Wins", Index: 1, Key: SortWins,
		Apply: func(rec *Record, cell string) { rec.Wins = nonNegative(ParseLeadingInt(cell)) },
	},
	{
		Name: "Losses", Index: 2, Key: SortLosses,
		Apply: func(rec *Record, cell string) { rec.Losses = nonNegative(ParseLeadingInt(cell)) },
	},
	{
		Name: "Total Score", Label: "Score", Index: 3, Key: SortScore,
		Apply: func(rec *Record, cell string) { rec.TotalScore = ParseLeadingInt(cell) },
	},
	{
		Name: "Win Rate", Index: 4, Key: SortWinRate, Fallback: FallbackWinRate,
		Apply: func(rec *Record, cell string) {
			rec.WinRate = cell
			rec.WinRateValue = ParseLeadingFloat(cell)
		},
	},
	{
		Name: "Balance", Index: 5, Key: SortBalance, Fallback: FallbackBalance,
		Apply: func(rec *Record, cell string) {
			rec.Balance = cell
			rec.BalanceValue = ParseCurrency(cell)
		},
	},
}

// Cell returns the trimmed value of the column in row, or the column's fallback
// when the row is too short or the cell is blank.
func (f FieldSpec) Cell(row []string) string {
	if f.Index < len(row) {
		if v := strings.TrimSpace(row[f.Index]); v != "" {
			return v
		}
	}
	return f.Fallback
}

// Title returns the table header for the column.
func (f FieldSpec) Title() string {
	if f.Label != "" {
		return f.Label
	}
	return f.Name
}

// ColumnFor returns the column ordered by key.
func ColumnFor(key SortKey) (FieldSpec, bool) {
	for _, spec := range Columns {
		if spec.Key == key {
			return spec, true
		}
	}
	return FieldSpec{}, false
}

func nonNegative(i int) int {
	if i < 0 {
		return 0
	}
	return i
}
