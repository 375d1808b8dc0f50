package diagram

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sample() SpanwiseData {
	return SpanwiseData{
		Surface: "wing",
		Title:   "Element properties",
		YLabel:  "value",
		Series: []Series{
			{Label: "A", Values: []float64{0.1, 0.2, 0.3, 0.3, 0.2, 0.1}},
			{Label: "J", Values: []float64{0.01, 0.02, 0.03, 0.03, 0.02, 0.01}},
		},
	}
}

func TestStations(t *testing.T) {
	assert.InDeltaSlice(t, []float64{-0.75, -0.25, 0.25, 0.75}, Stations(4), 1e-15)
	assert.Empty(t, Stations(0))
}

func TestDrawASCIISpanwise(t *testing.T) {
	out := DrawASCIISpanwise(sample())
	assert.Contains(t, out, "Element properties")
	assert.Contains(t, out, "wing: A along the span")
	assert.Contains(t, out, "wing: J along the span")
}

func TestExportSpanwiseDiagram(t *testing.T) {
	dir := t.TempDir()

	svg := filepath.Join(dir, "plots", "wing.svg")
	require.NoError(t, ExportSpanwiseDiagram(sample(), svg))
	_, err := os.Stat(svg)
	assert.NoError(t, err)

	noExt := filepath.Join(dir, "wing")
	require.NoError(t, ExportSpanwiseDiagram(sample(), noExt))
	_, err = os.Stat(noExt + ".png")
	assert.NoError(t, err)

	err = ExportSpanwiseDiagram(SpanwiseData{Surface: "tail"}, filepath.Join(dir, "tail.png"))
	assert.ErrorContains(t, err, "nothing to plot")
}
