package cmd

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/alexiusacademia/gotube/internal/version"
	"github.com/spf13/cobra"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "gotube",
	Short: "Tube cross-section properties for aerostructural wing models",
	Long: `gotube - Go Tube Section Properties

A CLI tool that computes the cross-section properties of the tubular
spars used by aerostructural wing models, together with their exact
derivatives for gradient-based optimization.

For every beam element of every lifting surface it computes:
  - Cross-sectional area (A)
  - Bending moments of inertia (Iy, Iz)
  - Torsional constant (J)
  - The analytic partial derivatives of each with respect to
    the tube radius and wall thickness`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		log.SetFlags(0)
		log.SetPrefix("gotube: ")
		if verbose {
			log.SetOutput(os.Stderr)
		} else {
			log.SetOutput(io.Discard)
		}
	},
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println()
		fmt.Println("  ╔═══════════════════════════════════════════════════════════╗")
		fmt.Println("  ║                                                           ║")
		fmt.Printf("  ║   gotube v%-48s║\n", version.Version)
		fmt.Println("  ║   Go Tube Section Properties                              ║")
		fmt.Println("  ║                                                           ║")
		fmt.Println("  ╚═══════════════════════════════════════════════════════════╝")
		fmt.Println()
		fmt.Println("  Cross-section properties and exact derivatives for the")
		fmt.Println("  tubular spars of aerostructural wing models.")
		fmt.Println()
		fmt.Println("  Features:")
		fmt.Println("    • Area, bending inertias and torsional constant per element")
		fmt.Println("    • Analytic partial derivatives with diagonal sparsity")
		fmt.Println("    • Finite-difference verification of the derivatives")
		fmt.Println("    • Spanwise diagrams (terminal, png, svg, pdf)")
		fmt.Println()
		fmt.Println("  Use 'gotube --help' to see available commands.")
		fmt.Println()
		fmt.Println("  ─────────────────────────────────────────────────────────────")
		fmt.Printf("  Copyright © %s %s. All rights reserved.\n", version.Year, version.Author)
		fmt.Println()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true
	rootCmd.SilenceErrors = true
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log setup and evaluation details to stderr")
}
