package cli

import (
	"fmt"
	"os"

	"github.com/daryltucker/solver-stats/internal/nlp"
	"github.com/daryltucker/solver-stats/internal/output"
	"github.com/daryltucker/solver-stats/internal/stats"
	"github.com/spf13/cobra"
)

// demoModel stands in for a real solver's model: an unconstrained
// problem with some evaluation counts already on the clock.
type demoModel struct {
	counters nlp.Counters
}

func (m *demoModel) IsUnconstrained() bool  { return true }
func (m *demoModel) Counters() nlp.Counters { return m.counters }

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Build a sample execution record and print it",
	Long: `Constructs one execution record from a built-in sample model and shows
every rendering form: the one-line summary, the full report, and a
one-row table. Handy for checking what downstream logs will look like.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		m := &demoModel{counters: nlp.Counters{Obj: 12, Grad: 11, Hess: 3}}

		rec, err := stats.New(stats.StatusFirstOrder, m,
			stats.WithSolution([]float64{1.0, -0.5, 0.25, 0.125, -1.75, 2.0}),
			stats.WithObjective(3.815e-9),
			stats.WithDualFeas(7.2e-7),
			stats.WithIter(11),
			stats.WithElapsedTime(0.083),
			stats.WithSolverSpecific("trust_region_radius", 0.5),
		)
		if err != nil {
			return err
		}

		fmt.Println(rec)
		fmt.Println()
		if err := rec.Print(os.Stdout); err != nil {
			return err
		}
		fmt.Println()

		fields := []string{"status", "iter", "neval_obj", "neval_grad", "objective", "dual_feas"}
		tw, err := output.NewTableWriter(os.Stdout, fields)
		if err != nil {
			return err
		}
		return tw.Write(rec)
	},
}

func init() {
	rootCmd.AddCommand(demoCmd)
}
