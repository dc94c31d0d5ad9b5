/*
PURPOSE:
  Defines the 'statuses' subcommand.
  Prints every valid termination status key with its description.

REQUIREMENTS:
  User-specified:
  - List the closed status vocabulary for interactive/CLI help use.

  Implementation-discovered:
  - Useful sanity check before grepping logs for a status key.

ARCHITECTURE INTEGRATION:
  - Calls: internal/stats.AllStatuses()

ERROR HANDLING:
  - None; the vocabulary is a compile-time constant.

IMPLEMENTATION RULES:
  - Simple output to stdout, sorted by key.

USAGE:
  solver-stats statuses

SELF-HEALING INSTRUCTIONS:
  - None.

RELATED FILES:
  - internal/stats/status.go

MAINTENANCE:
  - None.
*/

package cli

import (
	"fmt"

	"github.com/daryltucker/solver-stats/internal/stats"
	"github.com/spf13/cobra"
)

var statusesCmd = &cobra.Command{
	Use:   "statuses",
	Short: "List all recognized solver termination statuses",
	Run: func(cmd *cobra.Command, args []string) {
		for _, info := range stats.AllStatuses() {
			fmt.Printf("%-16s %s\n", info.Key, info.Description)
		}
	},
}

func init() {
	rootCmd.AddCommand(statusesCmd)
}
