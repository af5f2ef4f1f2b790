package main

import (
	"fmt"

	"github.com/JonMunkholm/leaderboard/internal/core"
	"github.com/spf13/cobra"
)

var keysCmd = &cobra.Command{
	Use:   "keys",
	Short: "List the sort keys accepted by --sort and ?sort=",
	RunE: func(cmd *cobra.Command, args []string) error {
		def, _ := core.ParseSortKey(cfg.Board.DefaultSort)
		for _, key := range core.SortKeys {
			marker := ""
			if key == def {
				marker = "  (default)"
			}
			col, _ := core.ColumnFor(key)
			fmt.Fprintf(cmd.OutOrStdout(), "%-8s %s%s\n", key, col.Name, marker)
		}
		return nil
	},
}
