package core

import (
	"testing"
	"time"
)

func TestNewBoard(t *testing.T) {
	loadedAt := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	snap := &Snapshot{
		LoadID:   "load-1",
		LoadedAt: loadedAt,
		Records: []Record{
			{Name: "Alice", Wins: 6, Losses: 4, TotalScore: 10, WinRate: "60%", WinRateValue: 60, Balance: "$100", BalanceValue: 100},
			{Name: "Bob", Wins: 2, Losses: 8, TotalScore: 30, WinRate: "20%", WinRateValue: 20, Balance: "$50", BalanceValue: 50},
			{Name: "<script>", Wins: 4, Losses: 6, TotalScore: 20, WinRate: "40%", WinRateValue: 40, Balance: "$0"},
		},
	}

	board := NewBoard(snap, SortState{Key: SortScore, Dir: Desc}, 500)

	if len(board.Rows) != 3 {
		t.Fatalf("rows = %d, want 3", len(board.Rows))
	}

	want := []struct {
		rank int
		name string
		tier Tier
	}{
		{1, "Bob", TierLow},
		{2, "<script>", TierMedium},
		{3, "Alice", TierHigh},
	}
	for i, w := range want {
		row := board.Rows[i]
		if row.Rank != w.rank || row.Name != w.name || row.Tier != w.tier {
			t.Errorf("row %d = %+v, want rank %d %s %s", i, row, w.rank, w.name, w.tier)
		}
	}

	if board.PoolText() != "$350.00" {
		t.Errorf("PoolText() = %q, want %q", board.PoolText(), "$350.00")
	}
	if board.LoadID != "load-1" || !board.LoadedAt.Equal(loadedAt) {
		t.Errorf("board metadata = %q %v", board.LoadID, board.LoadedAt)
	}
	if board.Rows[0].Balance != "$50" || board.Rows[0].WinRate != "20%" {
		t.Errorf("display text not kept verbatim: %+v", board.Rows[0])
	}
}

func TestNewBoard_NilSnapshot(t *testing.T) {
	board := NewBoard(nil, SortState{Key: SortWins, Dir: Asc}, 500)
	if len(board.Rows) != 0 {
		t.Errorf("rows = %d, want 0", len(board.Rows))
	}
	if board.RemainingPool != 500 {
		t.Errorf("RemainingPool = %v, want 500", board.RemainingPool)
	}
	if board.Sort.Key != SortWins {
		t.Errorf("Sort = %+v, want wins", board.Sort)
	}
}

func TestNewBoard_Deterministic(t *testing.T) {
	text := "h\nA,1,0,5,50%,$1\nB,1,0,5,50%,$1\nC,2,0,5,50%,$1\n"
	first, err := BuildSnapshot(text)
	if err != nil {
		t.Fatal(err)
	}
	second, err := BuildSnapshot(text)
	if err != nil {
		t.Fatal(err)
	}

	state := SortState{Key: SortScore, Dir: Desc}
	a := NewBoard(first, state, 500)
	b := NewBoard(second, state, 500)
	for i := range a.Rows {
		if a.Rows[i] != b.Rows[i] {
			t.Errorf("row %d differs: %+v vs %+v", i, a.Rows[i], b.Rows[i])
		}
	}
	if a.Rows[0].Name != "A" || a.Rows[2].Name != "C" {
		t.Errorf("ties should keep sheet order, got %s..%s", a.Rows[0].Name, a.Rows[2].Name)
	}
}

func TestBoard_UpdatedText(t *testing.T) {
	if got := (Board{}).UpdatedText(""); got != "Not loaded yet" {
		t.Errorf("UpdatedText() = %q, want %q", got, "Not loaded yet")
	}

	b := Board{LoadedAt: time.Date(2026, 5, 4, 15, 4, 5, 0, time.Local)}
	if got := b.UpdatedText(""); got != "Last updated: May 4, 2026 3:04:05 PM" {
		t.Errorf("UpdatedText() = %q", got)
	}
	if got := b.UpdatedText("2006-01-02"); got != "Last updated: 2026-05-04" {
		t.Errorf("UpdatedText(custom) = %q", got)
	}
}

func TestBoardRow_Cell(t *testing.T) {
	row := BoardRow{Name: "Alice", Wins: 6, Losses: 4, Score: 10, WinRate: "60%", Balance: "$100"}

	tests := []struct {
		key  SortKey
		want string
	}{
		{SortName, "Alice"},
		{SortWins, "6"},
		{SortLosses, "4"},
		{SortScore, "10"},
		{SortWinRate, "60%"},
		{SortBalance, "$100"},
		{SortKey("height"), ""},
	}

	for _, tt := range tests {
		t.Run(string(tt.key), func(t *testing.T) {
			if got := row.Cell(tt.key); got != tt.want {
				t.Errorf("Cell(%q) = %q, want %q", tt.key, got, tt.want)
			}
		})
	}
}
