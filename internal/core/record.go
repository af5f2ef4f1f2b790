package core

import "strings"

// Record is one participant's typed row.
type Record struct {
	Row          int     // 1-based data line in the sheet, orders sort ties
	Name         string  // Non-blank, never FallbackName
	Wins         int     // Never negative
	Losses       int     // Never negative
	TotalScore   int
	WinRate      string  // As written in the sheet, e.g. "62.5%"
	WinRateValue float64 // Parsed WinRate, 0 if unparseable
	Balance      string  // As written in the sheet, e.g. "$40.00"
	BalanceValue float64 // Parsed Balance, 0 if unparseable
}

// BuildRecord maps one parsed row through Columns.
func BuildRecord(row []string) Record {
	var rec Record
	for _, spec := range Columns {
		spec.Apply(&rec, spec.Cell(row))
	}
	return rec
}

// BuildRecords maps rows to records, keeping sheet order.
// Rows whose name resolves to the fallback literal or is blank are discarded;
// the number discarded is returned alongside.
func BuildRecords(rows [][]string) ([]Record, int) {
	records := make([]Record, 0, len(rows))
	discarded := 0

	for i, row := range rows {
		rec := BuildRecord(row)
		if !keepRecord(rec) {
			discarded++
			continue
		}
		rec.Row = i + 1
		records = append(records, rec)
	}

	return records, discarded
}

// keepRecord filters blank trailing rows the sheet host tends to publish.
func keepRecord(rec Record) bool {
	return rec.Name != FallbackName && strings.TrimSpace(rec.Name) != ""
}
