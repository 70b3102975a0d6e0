// matrix.go - assembly of the skew-symmetric Kasteleyn matrix on the
// expanded dual and the log-Pfaffian via LU factorization.

package kasteleyn

import (
	"errors"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/planar/embed"
)

var (
	// ErrOrientationIncomplete - the orientation is missing an edge that the
	// expanded dual references.
	ErrOrientationIncomplete = errors.New("kasteleyn: orientation does not cover every edge")

	// ErrOddDimension - a nonzero skew-symmetric matrix of odd order has
	// determinant zero and no Pfaffian; only even orders are accepted.
	ErrOddDimension = errors.New("kasteleyn: matrix dimension is odd")

	// ErrSingular - the LU factorization met a zero pivot. For a correctly
	// assembled matrix this cannot happen, so it signals a broken input.
	ErrSingular = errors.New("kasteleyn: matrix is singular")
)

// Matrix assembles the 2E×2E Kasteleyn matrix of the expanded dual d under
// the given Pfaffian orientation.
//
// Entry conventions (everything else stays zero):
//
//   - Long pair of edge e with weight w: the node on the arc agreeing with
//     the orientation is the row, its partner the column, and the entry is
//     +exp(w); the transpose entry is −exp(w).
//   - Gadget pair (u, v): +1 at (u, v), −1 at (v, u). Gadget pairs are
//     emitted by the dual already directed against the face-tracing order.
//
// Entries accumulate rather than overwrite, so a malformed dual cannot
// silently drop a term. Complexity: O(E²) memory for the dense matrix.
func Matrix(d *embed.Dual, orient Orientation) (*mat.Dense, error) {
	k := mat.NewDense(d.N, d.N, nil)

	// 1. Long pairs carry the edge weights.
	for _, l := range d.Longs {
		dir, ok := orient[l.EdgeID]
		if !ok {
			return nil, ErrOrientationIncomplete
		}
		fwd, bwd := l.FromNode, l.ToNode
		if !dir {
			fwd, bwd = bwd, fwd
		}
		x := math.Exp(l.Weight)
		k.Set(fwd, bwd, k.At(fwd, bwd)+x)
		k.Set(bwd, fwd, k.At(bwd, fwd)-x)
	}

	// 2. Gadget pairs carry weight zero, i.e. exp(0) = 1.
	for _, g := range d.Gadgets {
		u, v := g[0], g[1]
		k.Set(u, v, k.At(u, v)+1)
		k.Set(v, u, k.At(v, u)-1)
	}

	return k, nil
}

// LogSqrtDet returns ½·log|det(K)| = log|Pf(K)| using a pivoted LU
// factorization. The dimension must be even and the matrix nonsingular;
// both failures are terminal for the caller.
func LogSqrtDet(k mat.Matrix) (float64, error) {
	n, c := k.Dims()
	if n != c || n%2 != 0 {
		return 0, ErrOddDimension
	}
	if n == 0 {
		return 0, nil
	}

	var lu mat.LU
	lu.Factorize(k)
	logDet, _ := lu.LogDet()
	if math.IsInf(logDet, 0) || math.IsNaN(logDet) {
		return 0, ErrSingular
	}
	return 0.5 * logDet, nil
}
