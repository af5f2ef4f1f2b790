package templates

import (
	"net/url"

	"github.com/JonMunkholm/leaderboard/internal/core"
)

// BoardSectionID is the element swapped by HTMX refreshes.
const BoardSectionID = "board"

// PageData is everything the leaderboard page shows.
type PageData struct {
	Title      string
	Board      core.Board
	Error      *core.UserMessage // Set when the most recent load failed
	TimeFormat string
}

func (d PageData) title() string {
	if d.Title == "" {
		return "Leaderboard"
	}
	return d.Title
}

// sortArrow marks the active column with the current direction.
func sortArrow(state core.SortState, key core.SortKey) string {
	switch {
	case state.Key != key:
		return ""
	case state.Dir == core.Asc:
		return "▲"
	default:
		return "▼"
	}
}

// cellClasses styles a body cell: tier colors for win rate, right-aligned numbers.
func cellClasses(row core.BoardRow, key core.SortKey) []string {
	switch key {
	case core.SortName:
		return []string{"player-name"}
	case core.SortWinRate:
		return []string{"win-rate", string(row.Tier)}
	default:
		return []string{"num"}
	}
}

func sortQuery(state core.SortState) string {
	v := url.Values{}
	v.Set("sort", string(state.Key))
	v.Set("dir", string(state.Dir))
	return v.Encode()
}

func sortURL(state core.SortState) string {
	return "/?" + sortQuery(state)
}

func refreshURL(state core.SortState) string {
	return "/refresh?" + sortQuery(state)
}
