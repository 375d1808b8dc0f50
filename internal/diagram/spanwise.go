package diagram

// Series is one named distribution along the span
type Series struct {
	Label  string
	Values []float64
}

// SpanwiseData holds the distributions of one surface for drawing
type SpanwiseData struct {
	Surface string
	Title   string
	YLabel  string
	Series  []Series
}

// Stations returns the normalized spanwise position of each element
// midpoint, from -1 (left tip) to 1 (right tip).
func Stations(n int) []float64 {
	eta := make([]float64, n)
	for i := range eta {
		eta[i] = -1 + float64(2*i+1)/float64(n)
	}
	return eta
}
