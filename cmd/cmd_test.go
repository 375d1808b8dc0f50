package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/alexiusacademia/gotube/internal/surface"
	"github.com/alexiusacademia/gotube/internal/tube"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeProblem(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "problem.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func resetFlags() {
	tubeFile, tubeRadius, tubeThickness = "", 0, 0
	evaluateShowDiagram, evaluateExportFile, evaluateProperty, evaluateJSON = false, "", "A", false
	partialsShowDiagram, partialsExportFile, partialsProperty, partialsJacobian = false, "", "A", false
}

func TestLoadProblem_Example(t *testing.T) {
	resetFlags()
	run, err := loadProblem(filepath.Join("..", "examples", "crm_wing.yaml"))
	require.NoError(t, err)

	assert.Equal(t, []string{"wing", "tail"}, run.Layout.Surfaces())
	assert.Equal(t, "aluminum", run.Material.Name)
	require.Contains(t, run.Inputs, "tail")
	assert.InDeltaSlice(t, []float64{0.01, 0.01, 0.01, 0.01}, run.Inputs["tail"].Thickness, 1e-15)

	_, err = tube.Evaluate(run.Layout, run.Inputs)
	assert.NoError(t, err)
}

func TestLoadProblem_UniformGeometry(t *testing.T) {
	resetFlags()
	path := writeProblem(t, "surfaces:\n  - name: wing\n    num_points_half: 3\n")

	run, err := loadProblem(path)
	require.NoError(t, err)
	assert.NotContains(t, run.Inputs, "wing")
	_, err = tube.Evaluate(run.Layout, run.Inputs)
	var missing *tube.MissingInputError
	assert.ErrorAs(t, err, &missing)

	tubeRadius = 0.5
	defer resetFlags()
	run, err = loadProblem(path)
	require.NoError(t, err)
	assert.Equal(t, []float64{0.5, 0.5, 0.5, 0.5}, run.Inputs["wing"].Radius)
	assert.Equal(t, []float64{0.05, 0.05, 0.05, 0.05}, run.Inputs["wing"].Thickness)
}

func TestLoadProblem_Errors(t *testing.T) {
	resetFlags()
	var cfgErr *surface.ConfigurationError

	_, err := loadProblem(writeProblem(t, "material: balsa\nsurfaces:\n  - name: wing\n    num_points_half: 2\n"))
	require.ErrorAs(t, err, &cfgErr)
	assert.ErrorContains(t, err, "unknown material")

	_, err = loadProblem(writeProblem(t, "surfaces:\n  - name: wing\n    num_points_half: -3\n"))
	assert.ErrorAs(t, err, &cfgErr)
}

func TestHelpers(t *testing.T) {
	assert.Equal(t, "out/p.png", exportName("out/p.png", "wing", false))
	assert.Equal(t, "out/p_wing.png", exportName("out/p.png", "wing", true))
	assert.Equal(t, "p_tail", exportName("p", "tail", true))

	roles, err := parseProperty("all")
	require.NoError(t, err)
	assert.Equal(t, tube.OutputRoles, roles)
	roles, err = parseProperty("Iz")
	require.NoError(t, err)
	assert.Equal(t, []tube.Role{tube.Iz}, roles)
	_, err = parseProperty("radius")
	assert.Error(t, err)

	g := uniformGeometry(2, 1, 0.2)
	assert.Equal(t, []float64{0.2, 0.2}, g.Thickness)
	assert.Equal(t, 1, thicknessWarnings(tube.Geometry{Radius: []float64{1, 1}, Thickness: []float64{0.5, 1.5}}))
}

func TestCommands(t *testing.T) {
	example := filepath.Join("..", "examples", "crm_wing.yaml")
	out := filepath.Join(t.TempDir(), "props.svg")

	tests := []struct {
		name    string
		args    []string
		wantErr bool
	}{
		{"evaluate", []string{"tube", "evaluate", "-f", example, "--diagram", "-p", "all"}, false},
		{"evaluate json", []string{"tube", "evaluate", "-f", example, "--json"}, false},
		{"evaluate export", []string{"tube", "evaluate", "-f", example, "-o", out}, false},
		{"evaluate bad property", []string{"tube", "evaluate", "-f", example, "-p", "Ix"}, true},
		{"partials", []string{"tube", "partials", "-f", example, "--jacobian", "--diagram"}, false},
		{"check", []string{"tube", "check", "-f", example}, false},
		{"missing file", []string{"tube", "check", "-f", filepath.Join(t.TempDir(), "none.yaml")}, true},
		{"version", []string{"version"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resetFlags()
			defer resetFlags()
			rootCmd.SetArgs(tt.args)
			err := rootCmd.Execute()
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
		})
	}

	_, err := os.Stat(filepath.Join(filepath.Dir(out), "props_wing.svg"))
	assert.NoError(t, err)
	_, err = os.Stat(filepath.Join(filepath.Dir(out), "props_tail.svg"))
	assert.NoError(t, err)
}
