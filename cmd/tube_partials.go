package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/alexiusacademia/gotube/internal/diagram"
	"github.com/alexiusacademia/gotube/internal/tube"
	"github.com/spf13/cobra"
	"gonum.org/v1/gonum/mat"
)

var (
	partialsShowDiagram bool
	partialsExportFile  string
	partialsProperty    string
	partialsJacobian    bool
)

var tubePartialsCmd = &cobra.Command{
	Use:   "partials",
	Short: "Compute analytic derivatives of the tube properties",
	Long: `Compute the exact partial derivatives of A, Iy, Iz and J with respect
to the tube radius and wall thickness.

Each property of element i depends only on the radius and thickness of
element i, so every derivative is diagonal. With r1 = r - t, r2 = r:
  dA/dr  = 2π (r2 - r1)       dA/dt  = 2π r1
  dIy/dr = π (r2³ - r1³)      dIy/dt = π r1³     (Iz identical)
  dJ/dr  = 2π (r2³ - r1³)     dJ/dt  = 2π r1³

Examples:
  gotube tube partials --file wing.yaml
  gotube tube partials -f wing.yaml --jacobian
  gotube tube partials -f wing.yaml -o plots/dJ.svg --property J`,
	RunE: runTubePartials,
}

func init() {
	tubeCmd.AddCommand(tubePartialsCmd)

	tubePartialsCmd.Flags().BoolVar(&partialsJacobian, "jacobian", false, "Print the assembled 4n×2n Jacobian of each surface")

	// Diagram options
	tubePartialsCmd.Flags().BoolVar(&partialsShowDiagram, "diagram", false, "Show ASCII spanwise diagram")
	tubePartialsCmd.Flags().StringVarP(&partialsExportFile, "output", "o", "", "Export diagram to file (png, svg, pdf)")
	tubePartialsCmd.Flags().StringVarP(&partialsProperty, "property", "p", "A", "Property whose derivatives are drawn: A, Iy, Iz, J or all")
}

func runTubePartials(cmd *cobra.Command, args []string) error {
	roles, err := parseProperty(partialsProperty)
	if err != nil {
		return err
	}

	run, err := loadProblem(tubeFile)
	if err != nil {
		return err
	}

	partials, err := tube.ComputePartials(run.Layout, run.Inputs)
	if err != nil {
		return err
	}

	printHeader("TUBE SECTION DERIVATIVES", run.Problem)

	multi := len(run.Layout.Surfaces()) > 1
	for _, name := range run.Layout.Surfaces() {
		p := partials[name]
		pairs := run.Layout.Pairs(name)

		fmt.Printf("SURFACE %q (%d elements, diagonal entries):\n", name, p.Len())
		fmt.Println("───────────────────────────────────────────────────────────────")
		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintf(w, "  Elem")
		for _, pair := range pairs {
			fmt.Fprintf(w, "\t%s", pair)
		}
		fmt.Fprintln(w)
		for i := 0; i < p.Len(); i++ {
			fmt.Fprintf(w, "  %d", i+1)
			for _, pair := range pairs {
				fmt.Fprintf(w, "\t%.4e", p.Diag(pair)[i])
			}
			fmt.Fprintln(w)
		}
		w.Flush()
		fmt.Println()

		if partialsJacobian {
			fmt.Println("  JACOBIAN d[A; Iy; Iz; J] / d[radius; thickness]:")
			fmt.Printf("%v\n\n", mat.Formatted(p.Jacobian(), mat.Prefix("  "), mat.Squeeze()))
		}

		data := diagram.SpanwiseData{
			Surface: name,
			Title:   "Tube section derivatives",
			YLabel:  "Derivative (SI)",
		}
		for _, r := range roles {
			for _, wrt := range tube.InputRoles {
				pair := tube.Pair{Of: r, Wrt: wrt}
				data.Series = append(data.Series, diagram.Series{Label: pair.String(), Values: p.Diag(pair)})
			}
		}

		// Show diagram if requested
		if partialsShowDiagram {
			fmt.Println(diagram.DrawASCIISpanwise(data))
		}

		// Export diagram if requested
		if partialsExportFile != "" {
			filename := exportName(partialsExportFile, name, multi)
			if err := diagram.ExportSpanwiseDiagram(data, filename); err != nil {
				return fmt.Errorf("exporting diagram: %w", err)
			}
			fmt.Printf("Diagram exported to: %s\n\n", filename)
		}
	}

	return nil
}
