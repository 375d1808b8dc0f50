package cmd

import (
	"errors"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/alexiusacademia/gotube/internal/check"
	"github.com/spf13/cobra"
)

var (
	checkRelTol float64
	checkStep   float64
)

var tubeCheckCmd = &cobra.Command{
	Use:   "check",
	Short: "Verify the analytic derivatives against finite differences",
	Long: `Compare the analytic derivatives of every surface with a central
finite-difference Jacobian of the property evaluation.

For each (property, input) pair the Frobenius norms of both diagonals
and their relative error are reported. The largest finite-difference
entry outside the diagonal is reported as well; it must be zero.

Examples:
  gotube tube check --file wing.yaml
  gotube tube check -f wing.yaml --rtol 1e-6 --step 1e-7`,
	RunE: runTubeCheck,
}

func init() {
	tubeCmd.AddCommand(tubeCheckCmd)

	tubeCheckCmd.Flags().Float64Var(&checkRelTol, "rtol", check.DefaultRelTol, "Relative tolerance")
	tubeCheckCmd.Flags().Float64Var(&checkStep, "step", 0, "Finite-difference step (0 = default)")
}

func runTubeCheck(cmd *cobra.Command, args []string) error {
	run, err := loadProblem(tubeFile)
	if err != nil {
		return err
	}

	report, err := check.Partials(run.Layout, run.Inputs, check.Options{RelTol: checkRelTol, Step: checkStep})
	if err != nil {
		return err
	}

	printHeader("DERIVATIVE CHECK (central differences)", run.Problem)

	for _, sr := range report.Surfaces {
		fmt.Printf("SURFACE %q:\n", sr.Surface)
		fmt.Println("───────────────────────────────────────────────────────────────")
		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintf(w, "  Pair\t|analytic|\t|fd|\tabs error\trel error\tStatus\n")
		fmt.Fprintf(w, "  ────\t──────────\t────\t─────────\t─────────\t──────\n")
		for _, p := range sr.Pairs {
			status := "✓"
			if !p.OK {
				status = "✗"
			}
			fmt.Fprintf(w, "  %s\t%.6e\t%.6e\t%.3e\t%.3e\t%s\n",
				p.Pair, p.Analytic, p.FD, p.AbsError, p.RelError, status)
		}
		w.Flush()
		fmt.Printf("  Largest off-diagonal entry: %.3e\n", sr.OffDiagonalMax)
		fmt.Println()
	}

	if !report.OK() {
		return errors.New("derivative check failed")
	}
	fmt.Printf("  All derivatives agree within rtol = %.1e\n\n", report.RelTol)
	return nil
}
