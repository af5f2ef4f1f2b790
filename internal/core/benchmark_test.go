package core

import (
	"fmt"
	"strings"
	"testing"
)

// ============================================================================
// Conversion Function Benchmarks
// ============================================================================

// BenchmarkParseCurrency benchmarks balance conversion.
// Runs once per row on every load.
func BenchmarkParseCurrency(b *testing.B) {
	testCases := []string{
		"123",
		"-456.78",
		"$1,234.56",
		"($123.45)",     // Accounting negative
		"  999.99  ",    // Whitespace
		"\u20ac1234.56", // Euro
		"n/a",           // Invalid
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		for _, tc := range testCases {
			ParseCurrency(tc)
		}
	}
}

// BenchmarkParseLeadingFloat benchmarks win rate conversion.
func BenchmarkParseLeadingFloat(b *testing.B) {
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		ParseLeadingFloat("62.5%")
	}
}

// ============================================================================
// Parse / Rank Benchmarks
// ============================================================================

// benchSheet builds a sheet with n players, every tenth name quoted.
func benchSheet(n int) string {
	var sb strings.Builder
	sb.WriteString("Name,Wins,Losses,Total Score,Win Rate,Balance\n")
	for i := 0; i < n; i++ {
		name := fmt.Sprintf("Player %d", i)
		if i%10 == 0 {
			name = fmt.Sprintf(`"Player, %d"`, i)
		}
		fmt.Fprintf(&sb, "%s,%d,%d,%d,%d%%,$%d.50\n", name, i%17, i%11, i*3%997, i%101, i%250)
	}
	return sb.String()
}

// BenchmarkParseCSV benchmarks tokenizing a typical club-sized sheet.
func BenchmarkParseCSV(b *testing.B) {
	text := benchSheet(500)
	b.SetBytes(int64(len(text)))

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := ParseCSV(text); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkBuildSnapshot benchmarks the full text-to-records path.
func BenchmarkBuildSnapshot(b *testing.B) {
	text := benchSheet(500)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := BuildSnapshot(text); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkNewBoard benchmarks sorting and ranking for each sort key.
func BenchmarkNewBoard(b *testing.B) {
	snap, err := BuildSnapshot(benchSheet(500))
	if err != nil {
		b.Fatal(err)
	}

	for _, key := range SortKeys {
		b.Run(string(key), func(b *testing.B) {
			state := SortState{Key: key, Dir: Desc}
			for i := 0; i < b.N; i++ {
				NewBoard(snap, state, 500)
			}
		})
	}
}
