package core

import (
	"cmp"
	"fmt"
	"slices"
	"strings"
)

// SortKey names a sortable column.
type SortKey string

const (
	SortName    SortKey = "name"
	SortWins    SortKey = "wins"
	SortLosses  SortKey = "losses"
	SortScore   SortKey = "score"
	SortWinRate SortKey = "winRate"
	SortBalance SortKey = "balance"
)

// SortKeys lists every key in display order.
var SortKeys = []SortKey{SortName, SortWins, SortLosses, SortScore, SortWinRate, SortBalance}

// sortKeyAliases accepts the column names used by older bookmarks of the page.
var sortKeyAliases = map[string]SortKey{
	"player":      SortName,
	"matcheswon":  SortWins,
	"matcheslost": SortLosses,
	"totalpoints": SortScore,
	"totalscore":  SortScore,
	"cashbalance": SortBalance,
}

// Direction is the sort order.
type Direction string

const (
	Asc  Direction = "asc"
	Desc Direction = "desc"
)

// ParseSortKey resolves a key name case-insensitively, including aliases.
func ParseSortKey(s string) (SortKey, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for _, k := range SortKeys {
		if strings.ToLower(string(k)) == s {
			return k, nil
		}
	}
	if k, ok := sortKeyAliases[s]; ok {
		return k, nil
	}
	return "", fmt.Errorf("unknown sort key: %q", s)
}

// ParseDirection resolves "asc" or "desc" case-insensitively.
func ParseDirection(s string) (Direction, error) {
	switch Direction(strings.ToLower(strings.TrimSpace(s))) {
	case Asc:
		return Asc, nil
	case Desc:
		return Desc, nil
	}
	return "", fmt.Errorf("unknown sort direction: %q", s)
}

// Opposite returns the other direction.
func (d Direction) Opposite() Direction {
	if d == Asc {
		return Desc
	}
	return Asc
}

// SortState is the active sort key and direction.
type SortState struct {
	Key SortKey   `json:"key"`
	Dir Direction `json:"dir"`
}

// Toggle returns the state after the user selects key: the same key flips
// direction, a new key starts descending.
func (s SortState) Toggle(key SortKey) SortState {
	if s.Key == key {
		return SortState{Key: key, Dir: s.Dir.Opposite()}
	}
	return SortState{Key: key, Dir: Desc}
}

// ParseSortState parses key and dir, substituting def for blank or invalid parts.
func ParseSortState(key, dir string, def SortState) SortState {
	state := def
	if k, err := ParseSortKey(key); err == nil {
		state.Key = k
	}
	if d, err := ParseDirection(dir); err == nil {
		state.Dir = d
	}
	return state
}

// compareBy returns the ascending comparison for key.
func compareBy(key SortKey) func(a, b Record) int {
	switch key {
	case SortName:
		return func(a, b Record) int {
			return strings.Compare(strings.ToLower(a.Name), strings.ToLower(b.Name))
		}
	case SortWins:
		return func(a, b Record) int { return cmp.Compare(a.Wins, b.Wins) }
	case SortLosses:
		return func(a, b Record) int { return cmp.Compare(a.Losses, b.Losses) }
	case SortWinRate:
		return func(a, b Record) int { return cmp.Compare(a.WinRateValue, b.WinRateValue) }
	case SortBalance:
		return func(a, b Record) int { return cmp.Compare(a.BalanceValue, b.BalanceValue) }
	default:
		return func(a, b Record) int { return cmp.Compare(a.TotalScore, b.TotalScore) }
	}
}

// SortRecords returns a sorted copy of records. Ties are ordered by sheet
// row in either direction; records with equal rows keep their input order.
func SortRecords(records []Record, state SortState) []Record {
	sorted := slices.Clone(records)
	compare := compareBy(state.Key)
	slices.SortStableFunc(sorted, func(a, b Record) int {
		c := compare(a, b)
		if state.Dir != Asc {
			c = -c
		}
		if c != 0 {
			return c
		}
		return cmp.Compare(a.Row, b.Row)
	})
	return sorted
}

// Tier is a coarse win-rate band.
type Tier string

const (
	TierHigh   Tier = "high"
	TierMedium Tier = "medium"
	TierLow    Tier = "low"
)

// Tier thresholds, in percent.
const (
	HighTierMin   = 60.0
	MediumTierMin = 40.0
)

// TierFor classifies a win rate given in percent.
func TierFor(winRate float64) Tier {
	switch {
	case winRate >= HighTierMin:
		return TierHigh
	case winRate >= MediumTierMin:
		return TierMedium
	default:
		return TierLow
	}
}

// RemainingPool returns poolTotal minus the sum of all balances.
func RemainingPool(records []Record, poolTotal float64) float64 {
	var sum float64
	for _, rec := range records {
		sum += rec.BalanceValue
	}
	return poolTotal - sum
}

// FormatMoney formats v the way the pool is displayed, e.g. "$350.00".
func FormatMoney(v float64) string {
	return fmt.Sprintf("$%.2f", v)
}
