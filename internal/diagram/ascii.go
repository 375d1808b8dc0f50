package diagram

import (
	"fmt"
	"strings"

	"github.com/guptarohit/asciigraph"
)

const (
	asciiHeight = 12
	asciiWidth  = 60
)

// DrawASCIISpanwise renders the distributions as a terminal chart, one
// chart per series so that quantities of different magnitude stay readable.
func DrawASCIISpanwise(data SpanwiseData) string {
	var sb strings.Builder

	sb.WriteString("\n")
	if data.Title != "" {
		sb.WriteString(fmt.Sprintf("  %s\n", data.Title))
		sb.WriteString(fmt.Sprintf("  %s\n", strings.Repeat("─", len([]rune(data.Title)))))
	}

	for _, s := range data.Series {
		if len(s.Values) == 0 {
			continue
		}
		caption := fmt.Sprintf("%s: %s along the span (left tip → right tip)", data.Surface, s.Label)
		sb.WriteString(asciigraph.Plot(s.Values,
			asciigraph.Height(asciiHeight),
			asciigraph.Width(asciiWidth),
			asciigraph.Offset(4),
			asciigraph.Precision(6),
			asciigraph.Caption(caption),
		))
		sb.WriteString("\n\n")
	}

	return sb.String()
}
