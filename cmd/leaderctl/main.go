// Package main implements leaderctl, a terminal client for the sheet leaderboard.
//
// It reads the same environment (and .env file) as the server, so
//
//	leaderctl show --sort wins
//
// prints the board the web page would show for ?sort=wins.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/JonMunkholm/leaderboard/internal/config"
	"github.com/JonMunkholm/leaderboard/internal/core"
	"github.com/JonMunkholm/leaderboard/internal/logging"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var (
	// cfg is populated by the root command before any subcommand runs.
	cfg *config.Config

	logLevel string
)

var rootCmd = &cobra.Command{
	Use:   "leaderctl",
	Short: "Show the sheet leaderboard in the terminal",
	Long: `leaderctl fetches the published leaderboard CSV and prints it as a ranked table.

Configuration comes from the environment and an optional .env file:
  SHEET_CSV_URL       published CSV link (or use --file)
  BOARD_POOL_TOTAL    amount the remaining pool is computed from
  BOARD_DEFAULT_SORT  sort key when --sort is omitted`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// A missing .env is fine; the environment may already be set.
		_ = godotenv.Overload()

		loaded, err := config.Load()
		if err != nil {
			return err
		}
		cfg = loaded

		level := cfg.Logging.Level
		if logLevel != "" {
			level = logLevel
		}
		// Logs go to stderr so the table can be piped.
		logging.Setup(os.Stderr, level, cfg.Logging.Format)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "override LOG_LEVEL (debug, info, warn, error)")
	rootCmd.AddCommand(showCmd, keysCmd)
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", errorLine(err))
		os.Exit(1)
	}
}

// errorLine adds the code and action to load failures.
func errorLine(err error) string {
	var userErr *core.UserError
	if errors.As(err, &userErr) {
		return userErr.Line()
	}
	return err.Error()
}
