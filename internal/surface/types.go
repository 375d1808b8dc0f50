package surface

import "fmt"

// Spec identifies one lifting surface and its spanwise discretization.
// Surfaces are mirrored about the centerline, so only the nodes of one
// half-span are given; the structural mesh holds 2*NumPointsHalf-1 nodes
// and one beam element fewer.
type Spec struct {
	Name          string `json:"name" yaml:"name"`
	NumPointsHalf int    `json:"num_points_half" yaml:"num_points_half"`
}

// NumNodes returns the number of spanwise structural nodes on the full span.
func (s Spec) NumNodes() int {
	return 2*s.NumPointsHalf - 1
}

// NumElements returns the number of beam elements on the full span.
func (s Spec) NumElements() int {
	return s.NumNodes() - 1
}

// Validate checks if the surface definition is usable
func (s Spec) Validate() error {
	if s.Name == "" {
		return &ConfigurationError{Msg: "surface name must not be empty"}
	}
	if s.NumPointsHalf <= 0 {
		return &ConfigurationError{
			Surface: s.Name,
			Msg:     fmt.Sprintf("num_points_half must be positive, got %d", s.NumPointsHalf),
		}
	}
	if s.NumElements() < 1 {
		return &ConfigurationError{
			Surface: s.Name,
			Msg:     fmt.Sprintf("num_points_half=%d leaves no beam elements", s.NumPointsHalf),
		}
	}
	return nil
}

// ValidateAll validates every surface and rejects duplicate names.
func ValidateAll(specs []Spec) error {
	if len(specs) == 0 {
		return &ConfigurationError{Msg: "at least one lifting surface is required"}
	}
	seen := make(map[string]bool, len(specs))
	for _, s := range specs {
		if err := s.Validate(); err != nil {
			return err
		}
		if seen[s.Name] {
			return &ConfigurationError{Surface: s.Name, Msg: "duplicate surface name"}
		}
		seen[s.Name] = true
	}
	return nil
}

// ConfigurationError represents malformed surface metadata
type ConfigurationError struct {
	Surface string
	Msg     string
}

func (e *ConfigurationError) Error() string {
	if e.Surface == "" {
		return "configuration: " + e.Msg
	}
	return fmt.Sprintf("configuration: surface %q: %s", e.Surface, e.Msg)
}
