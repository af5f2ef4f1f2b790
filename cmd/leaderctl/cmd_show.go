package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"

	"github.com/JonMunkholm/leaderboard/internal/config"
	"github.com/JonMunkholm/leaderboard/internal/core"
	"github.com/spf13/cobra"
)

var (
	showURL  string
	showFile string
	showSort string
	showDir  string
	showJSON bool
)

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Fetch the sheet and print the ranked board",
	Long: `Fetch the sheet once and print the ranked board.

The source is --file when given, otherwise --url, otherwise SHEET_CSV_URL.
Sort keys: name, wins, losses, score, winRate, balance (see "leaderctl keys").`,
	Example: `  leaderctl show
  leaderctl show --sort winRate --dir asc
  leaderctl show --file export.csv --json`,
	RunE: runShow,
}

func init() {
	showCmd.Flags().StringVar(&showURL, "url", "", "published CSV URL (overrides SHEET_CSV_URL)")
	showCmd.Flags().StringVar(&showFile, "file", "", "read a local CSV export instead of fetching")
	showCmd.Flags().StringVar(&showSort, "sort", "", "sort key (default BOARD_DEFAULT_SORT)")
	showCmd.Flags().StringVar(&showDir, "dir", "", "sort direction: asc or desc (default BOARD_DEFAULT_DIR)")
	showCmd.Flags().BoolVar(&showJSON, "json", false, "print the board as JSON")
}

func runShow(cmd *cobra.Command, args []string) error {
	state, err := parseShowSort(showSort, showDir)
	if err != nil {
		return err
	}

	svc, err := core.NewService(showSource(cfg.Sheet), cfg.Board)
	if err != nil {
		return err
	}

	// The source applies SHEET_FETCH_TIMEOUT; Ctrl-C cancels through cmd.Context.
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	snap, err := svc.Load(ctx)
	if err != nil {
		slog.Debug("load failed", "error", err)
		return core.NewUserError(err)
	}

	board := svc.Board(snap, state)
	slog.Debug("board ready", "rows", len(board.Rows), "discarded", snap.Discarded)

	if showJSON {
		return writeBoardJSON(cmd.OutOrStdout(), board)
	}
	_, err = fmt.Fprint(cmd.OutOrStdout(), renderBoard(board, cfg.Board.TimeFormat))
	return err
}

// showSource picks the file, flag URL or configured URL, in that order.
func showSource(sheet config.SheetConfig) core.Source {
	if showFile != "" {
		return core.FileSource{Path: showFile, MaxBytes: sheet.MaxBytes}
	}
	if showURL != "" {
		sheet.URL = showURL
	}
	return core.NewHTTPSource(sheet)
}

// parseShowSort validates explicit flags strictly; empty flags use the config default.
func parseShowSort(key, dir string) (core.SortState, error) {
	keyText, dirText := key, dir
	if keyText == "" {
		keyText = cfg.Board.DefaultSort
	}
	if dirText == "" {
		dirText = cfg.Board.DefaultDir
	}

	k, err := core.ParseSortKey(keyText)
	if err != nil {
		return core.SortState{}, fmt.Errorf("--sort: %w", err)
	}
	d, err := core.ParseDirection(dirText)
	if err != nil {
		return core.SortState{}, fmt.Errorf("--dir: %w", err)
	}
	return core.SortState{Key: k, Dir: d}, nil
}

func writeBoardJSON(w io.Writer, board core.Board) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(board)
}
