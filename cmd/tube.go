package cmd

import (
	"fmt"
	"log"
	"path/filepath"
	"strings"

	"github.com/alexiusacademia/gotube/internal/material"
	"github.com/alexiusacademia/gotube/internal/surface"
	"github.com/alexiusacademia/gotube/internal/tube"
	"github.com/spf13/cobra"
)

var (
	tubeFile      string
	tubeRadius    float64
	tubeThickness float64
)

var tubeCmd = &cobra.Command{
	Use:   "tube",
	Short: "Tube spar section properties and derivatives",
	Long: `Evaluate the hollow circular tube sections of the spars of one or
more lifting surfaces defined in a JSON or YAML problem file.

Each surface is mirrored about the centerline: num_points_half nodes on
one half-span give 2*num_points_half-1 nodes and 2*num_points_half-2
beam elements. radius and thickness hold one value per element.

Subcommands:
  evaluate  - Compute A, Iy, Iz and J for every element
  partials  - Compute the analytic derivatives
  check     - Compare the analytic derivatives with finite differences

Example YAML file structure:
  name: CRM wing
  material: aluminum
  surfaces:
    - name: wing
      num_points_half: 3
      radius: [0.30, 0.35, 0.35, 0.30]
      thickness: [0.03, 0.03, 0.03, 0.03]

When thickness is omitted it defaults to a tenth of the largest radius.`,
}

func init() {
	rootCmd.AddCommand(tubeCmd)

	tubeCmd.PersistentFlags().StringVarP(&tubeFile, "file", "f", "", "Path to problem JSON/YAML file [required]")
	tubeCmd.MarkPersistentFlagRequired("file")

	// Geometry for surfaces declared without radius
	tubeCmd.PersistentFlags().Float64Var(&tubeRadius, "radius", 0, "Uniform tube radius (m) for surfaces without geometry")
	tubeCmd.PersistentFlags().Float64Var(&tubeThickness, "thickness", 0, "Uniform wall thickness (m) for surfaces without geometry (default radius/10)")
}

// problemRun is a loaded problem ready for evaluation
type problemRun struct {
	Problem  *surface.Problem
	Layout   *tube.Layout
	Inputs   tube.Inputs
	Material material.Material
}

func loadProblem(path string) (*problemRun, error) {
	p, err := surface.LoadFromFile(path)
	if err != nil {
		return nil, fmt.Errorf("loading problem: %w", err)
	}

	m, err := material.Lookup(p.Material)
	if err != nil {
		return nil, &surface.ConfigurationError{Msg: err.Error()}
	}

	layout, err := tube.Setup(p.Specs())
	if err != nil {
		return nil, err
	}

	inputs := make(tube.Inputs, len(p.Surfaces))
	for _, s := range p.Surfaces {
		if s.Radius != nil {
			inputs[s.Name] = tube.Geometry{Radius: s.Radius, Thickness: s.Thickness}
			continue
		}
		if tubeRadius <= 0 {
			log.Printf("surface %q has no tube geometry", s.Name)
			continue
		}
		inputs[s.Name] = uniformGeometry(s.NumElements(), tubeRadius, tubeThickness)
	}

	return &problemRun{Problem: p, Layout: layout, Inputs: inputs, Material: m}, nil
}

func uniformGeometry(n int, radius, thickness float64) tube.Geometry {
	if thickness <= 0 {
		thickness = surface.DefaultThicknessRatio * radius
	}
	g := tube.Geometry{Radius: make([]float64, n), Thickness: make([]float64, n)}
	for i := 0; i < n; i++ {
		g.Radius[i] = radius
		g.Thickness[i] = thickness
	}
	return g
}

// exportName inserts the surface name before the extension when a problem
// holds more than one surface.
func exportName(filename, surfaceName string, multi bool) string {
	if !multi {
		return filename
	}
	ext := filepath.Ext(filename)
	return strings.TrimSuffix(filename, ext) + "_" + surfaceName + ext
}

func printHeader(title string, p *surface.Problem) {
	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Printf("     %s\n", title)
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()
	if p.Name != "" {
		fmt.Printf("  Problem: %s\n", p.Name)
	}
	if p.Description != "" {
		fmt.Printf("  Description: %s\n", p.Description)
	}
	fmt.Println()
}
