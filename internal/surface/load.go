package surface

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gonum.org/v1/gonum/floats"
	"gopkg.in/yaml.v3"
)

// DefaultThicknessRatio sizes the initial wall thickness as a fraction of the
// largest tube radius on the surface.
const DefaultThicknessRatio = 0.1

// Problem is a problem definition read from a JSON or YAML file
type Problem struct {
	Name        string
	Description string
	Material    string
	Surfaces    []Surface
}

// Surface couples a surface definition with its current tube geometry.
// Radius and Thickness are nil when the file carries no geometry for it.
type Surface struct {
	Spec
	Radius    []float64
	Thickness []float64
}

// Specs returns the surface definitions in file order.
func (p *Problem) Specs() []Spec {
	specs := make([]Spec, len(p.Surfaces))
	for i, s := range p.Surfaces {
		specs[i] = s.Spec
	}
	return specs
}

type problemFile struct {
	Name        string        `json:"name" yaml:"name"`
	Description string        `json:"description,omitempty" yaml:"description,omitempty"`
	Material    string        `json:"material,omitempty" yaml:"material,omitempty"`
	Surfaces    []surfaceFile `json:"surfaces" yaml:"surfaces"`
}

type surfaceFile struct {
	Name          string    `json:"name" yaml:"name"`
	NumPointsHalf *int      `json:"num_points_half" yaml:"num_points_half"`
	Radius        []float64 `json:"radius,omitempty" yaml:"radius,omitempty"`
	Thickness     []float64 `json:"thickness,omitempty" yaml:"thickness,omitempty"`
}

// LoadFromFile loads a problem definition. The format is chosen from the file
// extension: .yaml and .yml are decoded as YAML, anything else as JSON.
func LoadFromFile(path string) (*Problem, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var pf problemFile
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &pf)
	default:
		err = json.Unmarshal(data, &pf)
	}
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}

	return pf.problem()
}

func (pf *problemFile) problem() (*Problem, error) {
	p := &Problem{
		Name:        pf.Name,
		Description: pf.Description,
		Material:    pf.Material,
	}

	for i, sf := range pf.Surfaces {
		if sf.NumPointsHalf == nil {
			name := sf.Name
			if name == "" {
				name = fmt.Sprintf("#%d", i+1)
			}
			return nil, &ConfigurationError{Surface: name, Msg: "missing required key num_points_half"}
		}
		s := Surface{
			Spec:      Spec{Name: sf.Name, NumPointsHalf: *sf.NumPointsHalf},
			Radius:    sf.Radius,
			Thickness: sf.Thickness,
		}
		if len(s.Radius) > 0 && len(s.Thickness) == 0 {
			s.Thickness = UniformThickness(s.Radius, DefaultThicknessRatio)
		}
		p.Surfaces = append(p.Surfaces, s)
	}

	if err := ValidateAll(p.Specs()); err != nil {
		return nil, err
	}
	return p, nil
}

// UniformThickness returns a thickness distribution of len(radius) elements,
// all equal to ratio times the largest radius.
func UniformThickness(radius []float64, ratio float64) []float64 {
	thickness := make([]float64, len(radius))
	if len(radius) == 0 {
		return thickness
	}
	t := ratio * floats.Max(radius)
	for i := range thickness {
		thickness[i] = t
	}
	return thickness
}
