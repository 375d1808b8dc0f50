package tube

import (
	"math"
	"sync"
)

// EvaluateSurface computes the hollow circular tube properties of n elements.
// With r2 the outer radius and r1 = r2 - thickness the inner radius:
//
//	A  = π (r2² - r1²)
//	Iy = Iz = π (r2⁴ - r1⁴) / 4
//	J  = π (r2⁴ - r1⁴) / 2
//
// A thickness larger than the radius is not rejected; r1 turns negative and
// the even powers keep every formula defined.
func EvaluateSurface(n int, g Geometry) (Properties, error) {
	if err := g.checkLength("", n); err != nil {
		return Properties{}, err
	}

	props := Properties{
		A:  make([]float64, n),
		Iy: make([]float64, n),
		Iz: make([]float64, n),
		J:  make([]float64, n),
	}
	for i := 0; i < n; i++ {
		r2 := g.Radius[i]
		r1 := r2 - g.Thickness[i]

		r1sq, r2sq := r1*r1, r2*r2
		quartic := r2sq*r2sq - r1sq*r1sq

		props.A[i] = math.Pi * (r2sq - r1sq)
		props.Iy[i] = math.Pi * quartic / 4
		props.Iz[i] = props.Iy[i]
		props.J[i] = math.Pi * quartic / 2
	}
	return props, nil
}

// Evaluate computes the properties of every surface declared in l.
// Shapes are checked for all surfaces before anything is computed; the
// surfaces are then evaluated in parallel.
func Evaluate(l *Layout, in Inputs) (Results, error) {
	if err := l.check(in); err != nil {
		return nil, err
	}

	out := make([]Properties, len(l.surfaces))
	var wg sync.WaitGroup
	for i, s := range l.surfaces {
		wg.Add(1)
		go func(i int, n int, g Geometry) {
			defer wg.Done()
			// lengths were checked above
			out[i], _ = EvaluateSurface(n, g)
		}(i, s.NumElements(), in[s.Name])
	}
	wg.Wait()

	results := make(Results, len(l.surfaces))
	for i, s := range l.surfaces {
		results[s.Name] = out[i]
	}
	return results, nil
}

func (g Geometry) checkLength(name string, n int) error {
	if len(g.Radius) != n {
		return &ShapeMismatchError{Key: Key{name, Radius}, Want: n, Got: len(g.Radius)}
	}
	if len(g.Thickness) != n {
		return &ShapeMismatchError{Key: Key{name, Thickness}, Want: n, Got: len(g.Thickness)}
	}
	return nil
}
