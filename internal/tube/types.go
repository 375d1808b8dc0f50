package tube

import "fmt"

// Role names one per-element quantity of a tube-modelled beam.
type Role int

const (
	Radius Role = iota
	Thickness
	A
	Iy
	Iz
	J
)

// InputRoles and OutputRoles list the roles in their canonical order.
var (
	InputRoles  = []Role{Radius, Thickness}
	OutputRoles = []Role{A, Iy, Iz, J}
)

func (r Role) String() string {
	switch r {
	case Radius:
		return "radius"
	case Thickness:
		return "thickness"
	case A:
		return "A"
	case Iy:
		return "Iy"
	case Iz:
		return "Iz"
	case J:
		return "J"
	}
	return fmt.Sprintf("Role(%d)", int(r))
}

// IsInput reports whether r is one of the tube geometry roles.
func (r Role) IsInput() bool {
	return r == Radius || r == Thickness
}

// Key identifies one per-surface variable.
type Key struct {
	Surface string
	Role    Role
}

// String returns the variable name used at the boundary of the
// aerostructural model, e.g. "wing_tube_radius" or "wing_element_Iy".
func (k Key) String() string {
	if k.Surface == "" {
		return k.Role.String()
	}
	if k.Role.IsInput() {
		return fmt.Sprintf("%s_tube_%s", k.Surface, k.Role)
	}
	return fmt.Sprintf("%s_element_%s", k.Surface, k.Role)
}

// Pair is one (output, input) derivative, d Of / d Wrt.
type Pair struct {
	Of  Role
	Wrt Role
}

func (p Pair) String() string {
	return fmt.Sprintf("d%s/d%s", p.Of, p.Wrt)
}

// Pairs lists the eight declared derivative pairs, outputs major.
var Pairs = func() []Pair {
	pairs := make([]Pair, 0, len(OutputRoles)*len(InputRoles))
	for _, of := range OutputRoles {
		for _, wrt := range InputRoles {
			pairs = append(pairs, Pair{Of: of, Wrt: wrt})
		}
	}
	return pairs
}()

// Geometry holds the tube outer radius and wall thickness of every element
// of one surface.
type Geometry struct {
	Radius    []float64 `json:"radius" yaml:"radius"`
	Thickness []float64 `json:"thickness" yaml:"thickness"`
}

// Inputs maps surface names to their current geometry.
type Inputs map[string]Geometry

// Properties holds the cross-section properties of every element of one surface.
type Properties struct {
	A  []float64 `json:"A"`
	Iy []float64 `json:"Iy"`
	Iz []float64 `json:"Iz"`
	J  []float64 `json:"J"`
}

// Get returns the sequence for an output role, or nil for an input role.
func (p Properties) Get(r Role) []float64 {
	switch r {
	case A:
		return p.A
	case Iy:
		return p.Iy
	case Iz:
		return p.Iz
	case J:
		return p.J
	}
	return nil
}

// Results maps surface names to their evaluated properties.
type Results map[string]Properties

// Get resolves a typed key to its output sequence.
func (r Results) Get(k Key) ([]float64, bool) {
	p, ok := r[k.Surface]
	if !ok || k.Role.IsInput() {
		return nil, false
	}
	return p.Get(k.Role), true
}

// ShapeMismatchError reports an input sequence whose length differs from
// the element count fixed at setup.
type ShapeMismatchError struct {
	Key  Key
	Want int
	Got  int
}

func (e *ShapeMismatchError) Error() string {
	return fmt.Sprintf("shape mismatch: %s has %d values, expected %d", e.Key, e.Got, e.Want)
}

// MissingInputError reports a declared surface that received no geometry.
type MissingInputError struct {
	Surface string
}

func (e *MissingInputError) Error() string {
	return fmt.Sprintf("missing input: no tube geometry for surface %q", e.Surface)
}
