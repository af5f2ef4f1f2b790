package templates

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/JonMunkholm/leaderboard/internal/core"
)

func renderString(t *testing.T, data PageData, partial bool) string {
	t.Helper()
	var b strings.Builder
	var err error
	if partial {
		err = BoardSection(data).Render(context.Background(), &b)
	} else {
		err = Page(data).Render(context.Background(), &b)
	}
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	return b.String()
}

func sampleBoard() core.Board {
	return core.Board{
		Rows: []core.BoardRow{
			{Rank: 1, Name: `O'Neil & "Sons"`, Wins: 6, Losses: 4, Score: 30, WinRate: "60%", Tier: core.TierHigh, Balance: "$100"},
			{Rank: 2, Name: "<script>alert(1)</script>", Wins: 1, Losses: 9, Score: 10, WinRate: "10%", Tier: core.TierLow, Balance: "<i>$5</i>"},
		},
		RemainingPool: 395,
		Sort:          core.SortState{Key: core.SortScore, Dir: core.Desc},
		LoadedAt:      time.Date(2026, 5, 4, 15, 4, 5, 0, time.Local),
	}
}

func TestBoardSection_EscapesSheetText(t *testing.T) {
	html := renderString(t, PageData{Board: sampleBoard()}, true)

	if strings.Contains(html, "<script>") || strings.Contains(html, "<i>") {
		t.Errorf("sheet text rendered as markup:\n%s", html)
	}
	if !strings.Contains(html, "&lt;script&gt;alert(1)&lt;/script&gt;") {
		t.Error("escaped name missing")
	}
	if !strings.Contains(html, "O&#39;Neil &amp; &#34;Sons&#34;") {
		t.Errorf("quotes and ampersand not escaped:\n%s", html)
	}
}

func TestBoardSection_TiersAndPool(t *testing.T) {
	html := renderString(t, PageData{Board: sampleBoard()}, true)

	if !strings.Contains(html, `class="win-rate high">60%`) {
		t.Error("high tier class missing")
	}
	if !strings.Contains(html, `class="win-rate low">10%`) {
		t.Error("low tier class missing")
	}
	if !strings.Contains(html, "$395.00") {
		t.Error("pool text missing")
	}
	if !strings.Contains(html, "Last updated: May 4, 2026 3:04:05 PM") {
		t.Errorf("last updated stamp missing:\n%s", html)
	}
}

func TestBoardTable_SortIndicators(t *testing.T) {
	html := renderString(t, PageData{Board: sampleBoard()}, true)

	if !strings.Contains(html, `class="sortable active" data-sort="score"`) {
		t.Error("active column not marked")
	}
	if !strings.Contains(html, `Score<span class="sort-arrow">▼</span>`) {
		t.Error("descending arrow missing")
	}
	if !strings.Contains(html, `href="/?dir=asc&amp;sort=score"`) {
		t.Error("active column should link to ascending")
	}
}

func TestBoardSection_Error(t *testing.T) {
	msg := core.MapError(core.ErrEmptyData)
	html := renderString(t, PageData{Board: core.Board{RemainingPool: 500}, Error: &msg}, true)

	if !strings.Contains(html, "Error: No data found in the sheet") {
		t.Errorf("error text missing:\n%s", html)
	}
	if !strings.Contains(html, "DATA001") {
		t.Error("error code missing")
	}
	if !strings.Contains(html, "No players yet") {
		t.Error("empty table placeholder missing")
	}
	if !strings.Contains(html, "Not loaded yet") {
		t.Error("unloaded stamp missing")
	}
}

func TestPage_RefreshFormKeepsSort(t *testing.T) {
	board := sampleBoard()
	board.Sort = core.SortState{Key: core.SortWins, Dir: core.Asc}
	html := renderString(t, PageData{Title: "Club Ladder", Board: board}, false)

	if !strings.HasPrefix(strings.ToLower(html), "<!doctype html>") {
		t.Error("page should be a full document")
	}
	if !strings.Contains(html, "<title>Club Ladder</title>") {
		t.Error("title missing")
	}
	if !strings.Contains(html, `action="/refresh?dir=asc&amp;sort=wins"`) {
		t.Errorf("refresh form lost the sort:\n%s", html)
	}
	if !strings.Contains(html, `id="`+BoardSectionID+`"`) {
		t.Error("board section missing")
	}
}

func TestBoardTable_HeadersFollowColumns(t *testing.T) {
	html := renderString(t, PageData{Board: sampleBoard()}, true)

	last := -1
	for _, col := range core.Columns {
		i := strings.Index(html, `data-sort="`+string(col.Key)+`"`)
		if i < 0 {
			t.Fatalf("header for %q missing", col.Key)
		}
		if i < last {
			t.Errorf("header for %q out of column order", col.Key)
		}
		last = i
	}
	if got := strings.Count(html, "</th>"); got != len(core.Columns)+1 {
		t.Errorf("header cells = %d, want %d", got, len(core.Columns)+1)
	}
	if !strings.Contains(html, `<td class="num">30</td>`) {
		t.Errorf("numeric cell class missing:\n%s", html)
	}
}

func TestCellClasses(t *testing.T) {
	row := core.BoardRow{Tier: core.TierMedium}

	tests := []struct {
		key  core.SortKey
		want string
	}{
		{core.SortName, "player-name"},
		{core.SortWinRate, "win-rate medium"},
		{core.SortWins, "num"},
		{core.SortBalance, "num"},
	}

	for _, tt := range tests {
		t.Run(string(tt.key), func(t *testing.T) {
			if got := strings.Join(cellClasses(row, tt.key), " "); got != tt.want {
				t.Errorf("cellClasses(%q) = %q, want %q", tt.key, got, tt.want)
			}
		})
	}
}

func TestSortArrow(t *testing.T) {
	tests := []struct {
		name  string
		state core.SortState
		key   core.SortKey
		want  string
	}{
		{"inactive column", core.SortState{Key: core.SortWins, Dir: core.Desc}, core.SortName, ""},
		{"descending", core.SortState{Key: core.SortWins, Dir: core.Desc}, core.SortWins, "▼"},
		{"ascending", core.SortState{Key: core.SortWins, Dir: core.Asc}, core.SortWins, "▲"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := sortArrow(tt.state, tt.key); got != tt.want {
				t.Errorf("sortArrow() = %q, want %q", got, tt.want)
			}
		})
	}
}
