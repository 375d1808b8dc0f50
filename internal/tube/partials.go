package tube

import (
	"fmt"
	"math"
	"sync"

	"gonum.org/v1/gonum/mat"
)

// Partials holds the diagonal of every declared derivative of one surface.
// Entry i of each sequence is d output[i] / d input[i]; all cross-element
// derivatives are zero and not stored.
type Partials struct {
	DADRadius     []float64
	DADThickness  []float64
	DIyDRadius    []float64
	DIyDThickness []float64
	DIzDRadius    []float64
	DIzDThickness []float64
	DJDRadius     []float64
	DJDThickness  []float64
}

// PartialsSurface computes the exact derivatives of the tube properties of
// n elements. With r1 = r - t and r2 = r, dr1/dr = dr2/dr = 1, dr1/dt = -1
// and dr2/dt = 0.
func PartialsSurface(n int, g Geometry) (Partials, error) {
	if err := g.checkLength("", n); err != nil {
		return Partials{}, err
	}

	const (
		dr1dr = 1.
		dr2dr = 1.
		dr1dt = -1.
		dr2dt = 0.
	)

	p := newPartials(n)
	for i := 0; i < n; i++ {
		r2 := g.Radius[i]
		r1 := r2 - g.Thickness[i]
		r1cb, r2cb := r1*r1*r1, r2*r2*r2

		p.DADRadius[i] = 2 * math.Pi * (r2*dr2dr - r1*dr1dr)
		p.DADThickness[i] = 2 * math.Pi * (r2*dr2dt - r1*dr1dt)
		p.DIyDRadius[i] = math.Pi * (r2cb*dr2dr - r1cb*dr1dr)
		p.DIyDThickness[i] = math.Pi * (r2cb*dr2dt - r1cb*dr1dt)
		p.DIzDRadius[i] = p.DIyDRadius[i]
		p.DIzDThickness[i] = p.DIyDThickness[i]
		p.DJDRadius[i] = 2 * p.DIyDRadius[i]
		p.DJDThickness[i] = 2 * p.DIyDThickness[i]
	}
	return p, nil
}

// ComputePartials computes the derivatives of every surface declared in l.
func ComputePartials(l *Layout, in Inputs) (map[string]Partials, error) {
	if err := l.check(in); err != nil {
		return nil, err
	}

	out := make([]Partials, len(l.surfaces))
	var wg sync.WaitGroup
	for i, s := range l.surfaces {
		wg.Add(1)
		go func(i int, n int, g Geometry) {
			defer wg.Done()
			out[i], _ = PartialsSurface(n, g)
		}(i, s.NumElements(), in[s.Name])
	}
	wg.Wait()

	partials := make(map[string]Partials, len(l.surfaces))
	for i, s := range l.surfaces {
		partials[s.Name] = out[i]
	}
	return partials, nil
}

func newPartials(n int) Partials {
	return Partials{
		DADRadius:     make([]float64, n),
		DADThickness:  make([]float64, n),
		DIyDRadius:    make([]float64, n),
		DIyDThickness: make([]float64, n),
		DIzDRadius:    make([]float64, n),
		DIzDThickness: make([]float64, n),
		DJDRadius:     make([]float64, n),
		DJDThickness:  make([]float64, n),
	}
}

// Len returns the number of elements the derivatives were computed for.
func (p Partials) Len() int {
	return len(p.DADRadius)
}

// Diag returns the diagonal sequence of a declared pair, or nil when the
// pair is not one of the eight declared ones.
func (p Partials) Diag(pair Pair) []float64 {
	switch pair {
	case Pair{A, Radius}:
		return p.DADRadius
	case Pair{A, Thickness}:
		return p.DADThickness
	case Pair{Iy, Radius}:
		return p.DIyDRadius
	case Pair{Iy, Thickness}:
		return p.DIyDThickness
	case Pair{Iz, Radius}:
		return p.DIzDRadius
	case Pair{Iz, Thickness}:
		return p.DIzDThickness
	case Pair{J, Radius}:
		return p.DJDRadius
	case Pair{J, Thickness}:
		return p.DJDThickness
	}
	return nil
}

// Matrix returns a declared pair as an n×n diagonal matrix sharing storage
// with p.
func (p Partials) Matrix(pair Pair) (*mat.DiagDense, error) {
	d := p.Diag(pair)
	if d == nil {
		return nil, fmt.Errorf("undeclared derivative pair %s", pair)
	}
	if len(d) == 0 {
		return nil, fmt.Errorf("derivative pair %s is empty", pair)
	}
	return mat.NewDiagDense(len(d), d), nil
}

// Jacobian assembles the full derivative of [A; Iy; Iz; J] with respect to
// [radius; thickness] as a dense 4n×2n matrix.
func (p Partials) Jacobian() *mat.Dense {
	n := p.Len()
	if n == 0 {
		return nil
	}
	jac := mat.NewDense(len(OutputRoles)*n, len(InputRoles)*n, nil)
	for row, of := range OutputRoles {
		for col, wrt := range InputRoles {
			d := p.Diag(Pair{Of: of, Wrt: wrt})
			for i, v := range d {
				jac.Set(row*n+i, col*n+i, v)
			}
		}
	}
	return jac
}
