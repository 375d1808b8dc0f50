package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/alexiusacademia/gotube/internal/diagram"
	"github.com/alexiusacademia/gotube/internal/material"
	"github.com/alexiusacademia/gotube/internal/tube"
	"github.com/spf13/cobra"
)

var (
	evaluateShowDiagram bool
	evaluateExportFile  string
	evaluateProperty    string
	evaluateJSON        bool
)

var tubeEvaluateCmd = &cobra.Command{
	Use:   "evaluate",
	Short: "Compute tube cross-section properties",
	Long: `Compute the cross-sectional area A, bending inertias Iy and Iz and
torsional constant J of every beam element.

For an element with outer radius r and wall thickness t:
  r1 = r - t, r2 = r
  A  = π (r2² - r1²)
  Iy = Iz = π (r2⁴ - r1⁴) / 4
  J  = π (r2⁴ - r1⁴) / 2

A thickness larger than the radius is not rejected; keep t ≤ r with
bounds in the optimization problem.

Examples:
  gotube tube evaluate --file wing.yaml
  gotube tube evaluate -f wing.yaml --diagram --property J
  gotube tube evaluate -f wing.json -o plots/props.png --property all
  gotube tube evaluate -f wing.yaml --json`,
	RunE: runTubeEvaluate,
}

func init() {
	tubeCmd.AddCommand(tubeEvaluateCmd)

	tubeEvaluateCmd.Flags().BoolVar(&evaluateJSON, "json", false, "Print results as JSON keyed by variable name")

	// Diagram options
	tubeEvaluateCmd.Flags().BoolVar(&evaluateShowDiagram, "diagram", false, "Show ASCII spanwise diagram")
	tubeEvaluateCmd.Flags().StringVarP(&evaluateExportFile, "output", "o", "", "Export diagram to file (png, svg, pdf)")
	tubeEvaluateCmd.Flags().StringVarP(&evaluateProperty, "property", "p", "A", "Property to draw: A, Iy, Iz, J or all")
}

func runTubeEvaluate(cmd *cobra.Command, args []string) error {
	roles, err := parseProperty(evaluateProperty)
	if err != nil {
		return err
	}

	run, err := loadProblem(tubeFile)
	if err != nil {
		return err
	}

	results, err := tube.Evaluate(run.Layout, run.Inputs)
	if err != nil {
		return err
	}

	if evaluateJSON {
		return printResultsJSON(run.Layout, results)
	}

	printHeader("TUBE SECTION PROPERTIES", run.Problem)

	// Material properties
	m := run.Material
	fmt.Println("MATERIAL PROPERTIES:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Material:\t%s\n", m.Name)
	fmt.Fprintf(w, "  E:\t%.1f GPa\n", m.E/1e9)
	fmt.Fprintf(w, "  G:\t%.1f GPa\n", m.G/1e9)
	fmt.Fprintf(w, "  ρ:\t%.0f kg/m³\n", m.Density)
	w.Flush()
	fmt.Println()

	multi := len(run.Layout.Surfaces()) > 1
	for _, name := range run.Layout.Surfaces() {
		g := run.Inputs[name]
		props := results[name]
		spec, _ := run.Layout.Spec(name)

		fmt.Printf("SURFACE %q (%d nodes, %d elements):\n", name, spec.NumNodes(), spec.NumElements())
		fmt.Println("───────────────────────────────────────────────────────────────")
		w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintf(w, "  Elem\tη\tr (m)\tt (m)\tA (m²)\tIy (m⁴)\tIz (m⁴)\tJ (m⁴)\n")
		fmt.Fprintf(w, "  ────\t─────\t──────\t──────\t──────────\t──────────\t──────────\t──────────\n")
		eta := diagram.Stations(len(props.A))
		for i := range props.A {
			fmt.Fprintf(w, "  %d\t%.3f\t%.4f\t%.4f\t%.4e\t%.4e\t%.4e\t%.4e\n",
				i+1, eta[i], g.Radius[i], g.Thickness[i], props.A[i], props.Iy[i], props.Iz[i], props.J[i])
		}
		w.Flush()
		fmt.Println()

		if warn := thicknessWarnings(g); warn > 0 {
			fmt.Printf("  ⚠ %d element(s) with thickness > radius; results are not physical\n\n", warn)
		}

		s := material.Stiffness(props, m)
		fmt.Println("  SECTION STIFFNESS:")
		w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintf(w, "  Elem\tEA (MN)\tEIy (MN·m²)\tEIz (MN·m²)\tGJ (MN·m²)\tm (kg/m)\n")
		fmt.Fprintf(w, "  ────\t───────\t───────────\t───────────\t──────────\t────────\n")
		for i := range s.EA {
			fmt.Fprintf(w, "  %d\t%.3f\t%.4f\t%.4f\t%.4f\t%.2f\n",
				i+1, s.EA[i]/1e6, s.EIy[i]/1e6, s.EIz[i]/1e6, s.GJ[i]/1e6, s.MassPerLength[i])
		}
		w.Flush()
		fmt.Println()

		data := diagram.SpanwiseData{
			Surface: name,
			Title:   "Tube section properties",
			YLabel:  "Property (SI)",
		}
		for _, r := range roles {
			data.Series = append(data.Series, diagram.Series{Label: r.String(), Values: props.Get(r)})
		}

		// Show diagram if requested
		if evaluateShowDiagram {
			fmt.Println(diagram.DrawASCIISpanwise(data))
		}

		// Export diagram if requested
		if evaluateExportFile != "" {
			filename := exportName(evaluateExportFile, name, multi)
			if err := diagram.ExportSpanwiseDiagram(data, filename); err != nil {
				return fmt.Errorf("exporting diagram: %w", err)
			}
			fmt.Printf("Diagram exported to: %s\n\n", filename)
		}
	}

	return nil
}

func parseProperty(name string) ([]tube.Role, error) {
	if name == "all" {
		return tube.OutputRoles, nil
	}
	for _, r := range tube.OutputRoles {
		if r.String() == name {
			return []tube.Role{r}, nil
		}
	}
	return nil, fmt.Errorf("unknown property %q: use A, Iy, Iz, J or all", name)
}

func thicknessWarnings(g tube.Geometry) int {
	var n int
	for i := range g.Radius {
		if g.Thickness[i] > g.Radius[i] {
			n++
		}
	}
	return n
}

func printResultsJSON(l *tube.Layout, results tube.Results) error {
	out := make(map[string][]float64)
	for _, name := range l.Surfaces() {
		for _, k := range l.Outputs(name) {
			v, _ := results.Get(k)
			out[k.String()] = v
		}
	}
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
