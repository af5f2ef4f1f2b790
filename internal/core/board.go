package core

import (
	"strconv"
	"time"
)

// Snapshot is the record set produced by one successful load.
// A snapshot is never modified after it is published.
type Snapshot struct {
	LoadID    string
	Records   []Record
	Discarded int // Data lines dropped for having no name
	LoadedAt  time.Time
}

// BoardRow is one display line of the leaderboard.
type BoardRow struct {
	Rank    int    `json:"rank"`
	Name    string `json:"name"`
	Wins    int    `json:"wins"`
	Losses  int    `json:"losses"`
	Score   int    `json:"score"`
	WinRate string `json:"winRate"`
	Tier    Tier   `json:"tier"`
	Balance string `json:"balance"`
}

// Cell returns the row's display text for a column.
func (r BoardRow) Cell(key SortKey) string {
	switch key {
	case SortName:
		return r.Name
	case SortWins:
		return strconv.Itoa(r.Wins)
	case SortLosses:
		return strconv.Itoa(r.Losses)
	case SortScore:
		return strconv.Itoa(r.Score)
	case SortWinRate:
		return r.WinRate
	case SortBalance:
		return r.Balance
	}
	return ""
}

// Board is the ranked view of a snapshot under one sort state.
type Board struct {
	Rows          []BoardRow `json:"rows"`
	RemainingPool float64    `json:"remainingPool"`
	Sort          SortState  `json:"sort"`
	LoadID        string     `json:"loadId"`
	LoadedAt      time.Time  `json:"loadedAt"`
}

// NewBoard sorts the snapshot's records and derives rank, tier and pool.
// A nil snapshot yields an empty board with the full pool remaining.
func NewBoard(snap *Snapshot, state SortState, poolTotal float64) Board {
	board := Board{Sort: state, RemainingPool: poolTotal}
	if snap == nil {
		return board
	}

	sorted := SortRecords(snap.Records, state)
	board.Rows = make([]BoardRow, len(sorted))
	for i, rec := range sorted {
		board.Rows[i] = BoardRow{
			Rank:    i + 1,
			Name:    rec.Name,
			Wins:    rec.Wins,
			Losses:  rec.Losses,
			Score:   rec.TotalScore,
			WinRate: rec.WinRate,
			Tier:    TierFor(rec.WinRateValue),
			Balance: rec.Balance,
		}
	}
	board.RemainingPool = RemainingPool(snap.Records, poolTotal)
	board.LoadID = snap.LoadID
	board.LoadedAt = snap.LoadedAt
	return board
}

// PoolText returns the remaining pool formatted for display.
func (b Board) PoolText() string {
	return FormatMoney(b.RemainingPool)
}

// DefaultTimeFormat is the layout of the last-updated stamp when none is configured.
const DefaultTimeFormat = "Jan 2, 2006 3:04:05 PM"

// UpdatedText returns "Last updated: <time>" in local time, or
// "Not loaded yet" for a board built without a snapshot.
func (b Board) UpdatedText(layout string) string {
	if b.LoadedAt.IsZero() {
		return "Not loaded yet"
	}
	if layout == "" {
		layout = DefaultTimeFormat
	}
	return "Last updated: " + b.LoadedAt.Local().Format(layout)
}
