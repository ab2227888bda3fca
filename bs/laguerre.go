package bs

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// DefaultOrder is the fixed quadrature order used by the Gamma-mixing
// integrator. 32 nodes keeps the eigen-decomposition cheap while matching the
// adaptive path to well below the 1e-9 tolerance for moderate shapes.
const DefaultOrder = 32

// laguerreTable holds generalized Gauss-Laguerre nodes and weights for
// ∫0..∞ t^a e^(-t) f(t) dt. Nodes are ascending. When Γ(a+1) is not
// representable as a double the weights are stored without that factor and
// normalized is set; the mixing integral divides by Γ(alpha) = Γ(a+1), so
// the factor cancels either way.
type laguerreTable struct {
	n          int
	a          float64
	x, w       []float64
	normalized bool
}

// newLaguerreTable builds the table from the symmetric tridiagonal Jacobi
// matrix of the generalized Laguerre recurrence: eigenvalues are the nodes,
// weights come from the first component of each eigenvector.
func newLaguerreTable(n int, a float64) *laguerreTable {
	jac := mat.NewSymDense(n, nil)
	for i := 0; i < n; i++ {
		jac.SetSym(i, i, 2.0*float64(i)+1.0+a)
		if i+1 < n {
			jac.SetSym(i, i+1, math.Sqrt((float64(i)+1.0)*(float64(i)+1.0+a)))
		}
	}

	var eig mat.EigenSym
	if ok := eig.Factorize(jac, true); !ok {
		// The Jacobi matrix is symmetric tridiagonal with finite entries;
		// a failed factorization is a logic defect, not an input problem.
		panic("bs: eigen-decomposition of Jacobi matrix failed")
	}

	vals := eig.Values(nil)
	var vecs mat.Dense
	eig.VectorsTo(&vecs)

	t := &laguerreTable{n: n, a: a, x: vals, w: make([]float64, n)}
	mu0 := math.Gamma(a + 1.0)
	if math.IsInf(mu0, 1) {
		t.normalized = true
		mu0 = 1.0
	}
	for j := 0; j < n; j++ {
		v0 := vecs.At(0, j)
		t.w[j] = mu0 * v0 * v0
	}
	return t
}

// laguerre returns the cached table for the engine's order and the given
// shape offset, rebuilding only on a miss. The decomposition is O(n^3), and
// the shape parameter repeats across calls within a batch, so the cache pays
// for itself quickly.
func (e *Engine) laguerre(a float64) *laguerreTable {
	if e.table == nil || e.table.n != e.order || e.table.a != a {
		e.table = newLaguerreTable(e.order, a)
	}
	return e.table
}
