package main

import (
	"strconv"
	"strings"

	"github.com/JonMunkholm/leaderboard/internal/core"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#7D56F4")).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	numberStyle = cellStyle.Align(lipgloss.Right)
	borderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#6B7280"))
	mutedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#6B7280"))
	poolStyle   = lipgloss.NewStyle().Bold(true)

	tierColors = map[core.Tier]lipgloss.Color{
		core.TierHigh:   lipgloss.Color("#1A7F37"),
		core.TierMedium: lipgloss.Color("#B7791F"),
		core.TierLow:    lipgloss.Color("#C53030"),
	}
)

// renderBoard lays the board out as a table with tier-colored win rates,
// followed by the pool and last-updated lines.
func renderBoard(board core.Board, timeFormat string) string {
	headers := []string{"#"}
	for _, col := range core.Columns {
		title := col.Title()
		if col.Key == board.Sort.Key {
			title += sortArrow(board.Sort.Dir)
		}
		headers = append(headers, title)
	}

	rows := make([][]string, len(board.Rows))
	for i, row := range board.Rows {
		rows[i] = append([]string{strconv.Itoa(row.Rank)}, rowCells(row)...)
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(borderStyle).
		BorderRow(false).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return headerStyle
			case col == 0:
				return numberStyle
			}
			switch core.Columns[col-1].Key {
			case core.SortName:
				return cellStyle
			case core.SortWinRate:
				if row < len(board.Rows) {
					return numberStyle.Foreground(tierColors[board.Rows[row].Tier])
				}
				return numberStyle
			default:
				return numberStyle
			}
		})

	var b strings.Builder
	b.WriteString(t.Render())
	b.WriteString("\n")
	if len(board.Rows) == 0 {
		b.WriteString(mutedStyle.Render("No players yet"))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString("Bank balance: " + poolStyle.Render(board.PoolText()))
	b.WriteString("\n")
	b.WriteString(mutedStyle.Render(board.UpdatedText(timeFormat)))
	b.WriteString("\n")
	return b.String()
}

// rowCells returns the row's values in core.Columns order.
func rowCells(row core.BoardRow) []string {
	cells := make([]string, len(core.Columns))
	for i, col := range core.Columns {
		cells[i] = row.Cell(col.Key)
	}
	return cells
}

func sortArrow(dir core.Direction) string {
	if dir == core.Asc {
		return " ▲"
	}
	return " ▼"
}
