// Package check compares the analytic tube derivatives against central
// finite differences of the property evaluation.
package check

import (
	"fmt"
	"math"

	"github.com/alexiusacademia/gotube/internal/tube"
	"gonum.org/v1/gonum/diff/fd"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// DefaultRelTol is the relative error accepted between analytic and
// finite-difference derivatives.
const DefaultRelTol = 1e-5

// Options controls the finite-difference comparison.
type Options struct {
	RelTol float64 // relative tolerance, DefaultRelTol when zero
	Step   float64 // finite-difference step, gonum's central default when zero
}

// PairResult holds the comparison of one declared derivative pair.
type PairResult struct {
	Pair     tube.Pair
	Analytic float64 // Frobenius norm of the analytic diagonal
	FD       float64 // Frobenius norm of the finite-difference diagonal
	AbsError float64
	RelError float64
	OK       bool
}

// SurfaceReport holds the comparison of every pair of one surface.
type SurfaceReport struct {
	Surface string
	Pairs   []PairResult
	// OffDiagonalMax is the largest finite-difference magnitude found
	// outside the declared diagonal pattern.
	OffDiagonalMax float64
}

// OK reports whether every pair passed.
func (r SurfaceReport) OK() bool {
	for _, p := range r.Pairs {
		if !p.OK {
			return false
		}
	}
	return true
}

// Report holds the comparison of every surface, in declaration order.
type Report struct {
	RelTol   float64
	Surfaces []SurfaceReport
}

// OK reports whether every surface passed.
func (r *Report) OK() bool {
	for _, s := range r.Surfaces {
		if !s.OK() {
			return false
		}
	}
	return true
}

// Partials evaluates the analytic derivatives of every surface and compares
// them with a central finite-difference Jacobian.
func Partials(l *tube.Layout, in tube.Inputs, opts Options) (*Report, error) {
	if opts.RelTol <= 0 {
		opts.RelTol = DefaultRelTol
	}

	analytic, err := tube.ComputePartials(l, in)
	if err != nil {
		return nil, err
	}

	report := &Report{RelTol: opts.RelTol}
	for _, name := range l.Surfaces() {
		n, _ := l.NumElements(name)
		sr, err := compareSurface(name, n, in[name], analytic[name], opts)
		if err != nil {
			return nil, err
		}
		report.Surfaces = append(report.Surfaces, sr)
	}
	return report, nil
}

func compareSurface(name string, n int, g tube.Geometry, p tube.Partials, opts Options) (SurfaceReport, error) {
	nIn, nOut := len(tube.InputRoles)*n, len(tube.OutputRoles)*n

	x := make([]float64, 0, nIn)
	x = append(x, g.Radius...)
	x = append(x, g.Thickness...)

	// f maps the flattened [radius; thickness] to [A; Iy; Iz; J].
	var evalErr error
	f := func(y, x []float64) {
		props, err := tube.EvaluateSurface(n, tube.Geometry{Radius: x[:n], Thickness: x[n:]})
		if err != nil {
			evalErr = err
			return
		}
		for row, r := range tube.OutputRoles {
			copy(y[row*n:(row+1)*n], props.Get(r))
		}
	}

	numeric := mat.NewDense(nOut, nIn, nil)
	fd.Jacobian(numeric, f, x, &fd.JacobianSettings{
		Formula: fd.Central,
		Step:    opts.Step,
	})
	if evalErr != nil {
		return SurfaceReport{}, fmt.Errorf("surface %q: %w", name, evalErr)
	}

	sr := SurfaceReport{Surface: name}
	for row, of := range tube.OutputRoles {
		for col, wrt := range tube.InputRoles {
			pair := tube.Pair{Of: of, Wrt: wrt}
			fdDiag := make([]float64, n)
			for i := 0; i < n; i++ {
				fdDiag[i] = numeric.At(row*n+i, col*n+i)
				for j := 0; j < n; j++ {
					if j != i {
						sr.OffDiagonalMax = math.Max(sr.OffDiagonalMax, math.Abs(numeric.At(row*n+i, col*n+j)))
					}
				}
			}
			sr.Pairs = append(sr.Pairs, comparePair(pair, p.Diag(pair), fdDiag, opts.RelTol))
		}
	}
	return sr, nil
}

func comparePair(pair tube.Pair, analytic, numeric []float64, relTol float64) PairResult {
	res := PairResult{
		Pair:     pair,
		Analytic: floats.Norm(analytic, 2),
		FD:       floats.Norm(numeric, 2),
		AbsError: floats.Distance(analytic, numeric, 2),
	}
	if res.FD > 0 {
		res.RelError = res.AbsError / res.FD
	} else {
		res.RelError = res.AbsError
	}
	res.OK = res.RelError <= relTol
	return res
}
