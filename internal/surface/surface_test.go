package surface

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestSpec_Counts(t *testing.T) {
	s := Spec{Name: "wing", NumPointsHalf: 5}
	assert.Equal(t, 9, s.NumNodes())
	assert.Equal(t, 8, s.NumElements())
	assert.NoError(t, s.Validate())
}

func TestSpec_Validate(t *testing.T) {
	tests := []struct {
		name string
		spec Spec
		msg  string
	}{
		{"empty name", Spec{NumPointsHalf: 3}, "name must not be empty"},
		{"zero", Spec{Name: "wing"}, "must be positive"},
		{"negative", Spec{Name: "wing", NumPointsHalf: -1}, "must be positive"},
		{"single node", Spec{Name: "wing", NumPointsHalf: 1}, "no beam elements"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.spec.Validate()
			var cfgErr *ConfigurationError
			require.ErrorAs(t, err, &cfgErr)
			assert.Contains(t, err.Error(), tt.msg)
		})
	}
}

func TestValidateAll_Duplicates(t *testing.T) {
	err := ValidateAll([]Spec{{Name: "wing", NumPointsHalf: 3}, {Name: "wing", NumPointsHalf: 3}})
	var cfgErr *ConfigurationError
	require.ErrorAs(t, err, &cfgErr)
	assert.Equal(t, "wing", cfgErr.Surface)
	assert.EqualError(t, err, `configuration: surface "wing": duplicate surface name`)
}

func TestLoadFromFile_YAML(t *testing.T) {
	path := writeFile(t, "wing.yaml", `
name: CRM study
material: aluminum
surfaces:
  - name: wing
    num_points_half: 3
    radius: [0.3, 0.4, 0.4, 0.3]
    thickness: [0.01, 0.02, 0.02, 0.01]
  - name: tail
    num_points_half: 2
    radius: [0.1, 0.2]
`)

	p, err := LoadFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, "CRM study", p.Name)
	assert.Equal(t, "aluminum", p.Material)
	require.Len(t, p.Surfaces, 2)

	assert.Equal(t, []Spec{{Name: "wing", NumPointsHalf: 3}, {Name: "tail", NumPointsHalf: 2}}, p.Specs())
	assert.Equal(t, []float64{0.01, 0.02, 0.02, 0.01}, p.Surfaces[0].Thickness)
	assert.InDeltaSlice(t, []float64{0.02, 0.02}, p.Surfaces[1].Thickness, 1e-15)
}

func TestLoadFromFile_JSON(t *testing.T) {
	path := writeFile(t, "wing.json", `{
  "name": "rect",
  "surfaces": [{"name": "wing", "num_points_half": 2}]
}`)

	p, err := LoadFromFile(path)
	require.NoError(t, err)
	require.Len(t, p.Surfaces, 1)
	assert.Nil(t, p.Surfaces[0].Radius)
	assert.Nil(t, p.Surfaces[0].Thickness)
}

func TestLoadFromFile_Errors(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		content string
		msg     string
	}{
		{"missing key", "p.yaml", "surfaces:\n  - name: wing\n", "missing required key num_points_half"},
		{"missing key unnamed", "p.json", `{"surfaces": [{}]}`, `surface "#1"`},
		{"non-positive", "p.json", `{"surfaces": [{"name": "wing", "num_points_half": 0}]}`, "must be positive"},
		{"no surfaces", "p.yaml", "name: empty\n", "at least one lifting surface"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadFromFile(writeFile(t, tt.file, tt.content))
			var cfgErr *ConfigurationError
			require.ErrorAs(t, err, &cfgErr)
			assert.Contains(t, err.Error(), tt.msg)
		})
	}

	_, err := LoadFromFile(writeFile(t, "bad.json", "{"))
	assert.ErrorContains(t, err, "decode")

	_, err = LoadFromFile(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestUniformThickness(t *testing.T) {
	assert.Equal(t, []float64{}, UniformThickness(nil, 0.1))
	assert.InDeltaSlice(t, []float64{0.5, 0.5, 0.5}, UniformThickness([]float64{1, 5, 2}, 0.1), 1e-15)
}
