package diagram

import (
	"fmt"
	"image/color"
	"os"
	"path/filepath"
	"strings"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
)

// ExportSpanwiseDiagram exports the distributions of one surface to an image
// file. The format follows the extension (png, svg, pdf); a file without a
// known extension is written as PNG.
func ExportSpanwiseDiagram(data SpanwiseData, filename string) error {
	p := plot.New()
	p.Title.Text = data.Title
	if data.Surface != "" {
		p.Title.Text = fmt.Sprintf("%s (%s)", data.Title, data.Surface)
	}
	p.X.Label.Text = "Spanwise station η"
	p.Y.Label.Text = data.YLabel
	p.Legend.Top = true
	p.Add(plotter.NewGrid())

	// Centerline reference
	center, err := plotter.NewLine(plotter.XYs{{X: 0, Y: 0}, {X: 0, Y: 0}})
	if err != nil {
		return err
	}
	center.LineStyle.Color = color.Gray{Y: 128}
	center.LineStyle.Dashes = []vg.Length{vg.Points(3), vg.Points(3)}

	var lines []interface{}
	for _, s := range data.Series {
		if len(s.Values) == 0 {
			continue
		}
		eta := Stations(len(s.Values))
		pts := make(plotter.XYs, len(s.Values))
		for i, v := range s.Values {
			pts[i].X = eta[i]
			pts[i].Y = v
		}
		lines = append(lines, s.Label, pts)
	}
	if len(lines) == 0 {
		return fmt.Errorf("nothing to plot for surface %q", data.Surface)
	}
	if err := plotutil.AddLinePoints(p, lines...); err != nil {
		return err
	}

	// Stretch the centerline over the final y range
	center.XYs[0].Y, center.XYs[1].Y = p.Y.Min, p.Y.Max
	p.Add(center)

	width := 8 * vg.Inch
	height := 5 * vg.Inch

	// Create directory if needed
	dir := filepath.Dir(filename)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}

	switch strings.ToLower(filepath.Ext(filename)) {
	case ".png", ".svg", ".pdf":
		return p.Save(width, height, filename)
	default:
		return p.Save(width, height, filename+".png")
	}
}
