/*
PURPOSE:
  Defines the 'render' subcommand.
  Turns a JSON Lines file of execution records into aligned tables.

REQUIREMENTS:
  User-specified:
  - Render previously recorded solves as a columnar table.
  - Specific flags for overrides.

  Implementation-discovered:
  - Need to load config first.
  - Apply flag overrides to config.

ARCHITECTURE INTEGRATION:
  - Calls: internal/engine.Render()
  - Uses: internal/config

ERROR HANDLING:
  - Returns error if config load fails or rendering fails.

IMPLEMENTATION RULES:
  - Setup flags in init().
  - Logic: Load Config -> Override -> Engine.Render.

USAGE:
  solver-stats render records.jsonl --fields status,iter,neval_obj

SELF-HEALING INSTRUCTIONS:
  - Check flag names match Config struct fields generally.

RELATED FILES:
  - internal/cli/root.go

MAINTENANCE:
  - Update when adding new CLI overrides.
*/

package cli

import (
	"os"

	"github.com/daryltucker/solver-stats/internal/config"
	"github.com/daryltucker/solver-stats/internal/engine"
	"github.com/daryltucker/solver-stats/internal/output"
	"github.com/spf13/cobra"
)

var (
	fieldsOverride []string
	outputOverride string
	csvOverride    string
	fullReport     bool
)

var renderCmd = &cobra.Command{
	Use:   "render <records.jsonl>",
	Short: "Render recorded solves as an aligned table",
	Long: `Reads execution records from a JSON Lines file (one record per solve,
as written by a hosting solver) and renders them as a fixed-width table:
one header line, one line per record, columns aligned for grepping.

Optionally also prints the full multi-line report per record, and exports
the raw values to CSV.`,
	Example: `  # Table with the configured default fields
  solver-stats render records.jsonl

  # Pick the columns
  solver-stats render records.jsonl --fields status,iter,neval_obj,objective

  # Also export CSV and print full reports
  solver-stats render records.jsonl --csv out.csv -o ./reports --full`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		// 1. Load Config
		cfg, err := config.Load(cfgFile)
		if err != nil {
			return err
		}

		// 2. Overrides
		if len(fieldsOverride) > 0 {
			cfg.Fields = fieldsOverride
		}
		if outputOverride != "" {
			cfg.OutputDir = outputOverride
		}
		if csvOverride != "" {
			cfg.CSVFile = csvOverride
		}
		if fullReport {
			cfg.FullReport = true
		}
		output.SetLevel(cfg.LogLevel)

		// 3. Execution
		return engine.Render(cfg, args[0], os.Stdout)
	},
}

func init() {
	rootCmd.AddCommand(renderCmd)

	renderCmd.Flags().StringSliceVar(&fieldsOverride, "fields", nil, "Comma-separated list of table columns")
	renderCmd.Flags().StringVarP(&outputOverride, "output-dir", "o", "", "Output directory for the CSV export")
	renderCmd.Flags().StringVar(&csvOverride, "csv", "", "CSV file name to export (disabled when empty)")
	renderCmd.Flags().BoolVar(&fullReport, "full", false, "Also print the full multi-line report per record")
}
