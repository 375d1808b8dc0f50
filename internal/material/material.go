package material

import (
	"fmt"
	"sort"

	"github.com/alexiusacademia/gotube/internal/tube"
)

// Material holds the isotropic properties used by the spatial beam model
type Material struct {
	Name    string
	E       float64 // Young's modulus (Pa)
	G       float64 // Shear modulus (Pa)
	Density float64 // kg/m³
	Yield   float64 // Allowable stress (Pa)
}

// Built-in materials
var (
	// Aluminum 7075, the default structural material of the wing models
	Aluminum = Material{
		Name:    "aluminum",
		E:       70.0e9,
		G:       30.0e9,
		Density: 3.0e3,
		Yield:   500.0e6,
	}

	// Structural steel
	Steel = Material{
		Name:    "steel",
		E:       200.0e9,
		G:       77.0e9,
		Density: 7.85e3,
		Yield:   250.0e6,
	}
)

var library = map[string]Material{
	Aluminum.Name: Aluminum,
	Steel.Name:    Steel,
}

// Lookup returns a built-in material by name. An empty name selects aluminum.
func Lookup(name string) (Material, error) {
	if name == "" {
		return Aluminum, nil
	}
	m, ok := library[name]
	if !ok {
		return Material{}, fmt.Errorf("unknown material %q (available: %v)", name, Names())
	}
	return m, nil
}

// Names lists the built-in materials.
func Names() []string {
	names := make([]string, 0, len(library))
	for name := range library {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// SectionStiffness holds the per-element stiffness and mass of a beam
type SectionStiffness struct {
	EA            []float64 // axial stiffness (N)
	EIy           []float64 // bending stiffness about y (N·m²)
	EIz           []float64 // bending stiffness about z (N·m²)
	GJ            []float64 // torsional stiffness (N·m²)
	MassPerLength []float64 // kg/m
}

// Stiffness scales the tube cross-section properties by the material moduli.
func Stiffness(props tube.Properties, m Material) SectionStiffness {
	n := len(props.A)
	s := SectionStiffness{
		EA:            make([]float64, n),
		EIy:           make([]float64, n),
		EIz:           make([]float64, n),
		GJ:            make([]float64, n),
		MassPerLength: make([]float64, n),
	}
	for i := 0; i < n; i++ {
		s.EA[i] = m.E * props.A[i]
		s.EIy[i] = m.E * props.Iy[i]
		s.EIz[i] = m.E * props.Iz[i]
		s.GJ[i] = m.G * props.J[i]
		s.MassPerLength[i] = m.Density * props.A[i]
	}
	return s
}
