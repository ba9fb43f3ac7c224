// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cube

// A Transform is a bijection between the unit hypercube [0,1]^Dim and
// the support of a distribution, flattened to a float64 vector of
// length ValueDim.
//
// Transforms are immutable once constructed. Forward and Inverse are
// safe to call concurrently on the same Transform, provided the
// underlying quantile and CDF implementations are.
type Transform interface {
	// Dim returns the number of hypercube coordinates the
	// transform consumes. This is pure shape metadata; it never
	// evaluates a quantile or CDF.
	Dim() int

	// ValueDim returns the length of the flattened
	// distribution-space vector the transform produces. For most
	// transforms this equals Dim; a simplex transform over K
	// categories has Dim K−1 and ValueDim K.
	ValueDim() int

	// Forward maps a hypercube point to distribution space.
	// len(coords) must equal Dim() and every coordinate must be
	// in [0, 1].
	Forward(coords []float64) ([]float64, error)

	// Inverse maps a distribution-space vector back to the
	// hypercube. It is the left inverse of Forward: for any valid
	// coords, Inverse(Forward(coords)) equals coords up to
	// floating-point error. len(value) must equal ValueDim().
	Inverse(value []float64) ([]float64, error)
}

// Quantiler is the quantile (inverse CDF) capability. The univariate
// distributions in gonum.org/v1/gonum/stat/distuv satisfy it.
type Quantiler interface {
	Quantile(p float64) float64
}

// CDFer is the cumulative distribution function capability.
type CDFer interface {
	CDF(x float64) float64
}

// A SimplexDist is a distribution over the probability simplex
// parameterized by a positive concentration vector, such as the
// Dirichlet.
type SimplexDist interface {
	Concentration() []float64
}

// A Marginaler is a product distribution whose independent components
// are exposed in a fixed declaration order.
type Marginaler interface {
	Marginals() []any
}

// A MatrixDist is a matrix-variate distribution with independent
// elements.
type MatrixDist interface {
	Dims() (r, c int)
	Element(i, j int) any
}

// AsCube builds a Transform for dist, which may be:
//
//   - a Transform, returned unchanged;
//   - a SimplexDist, giving a simplex (stick-breaking) transform;
//   - a Marginaler, giving a product transform over its marginals;
//   - a MatrixDist, giving a product transform over its elements in
//     row-major order;
//   - a []any of components, each again anything AsCube accepts,
//     giving a product transform in slice order;
//   - anything else, giving a scalar transform over one univariate
//     distribution.
//
// Construction inspects only shape and capability metadata; it never
// evaluates a quantile or CDF. A univariate distribution with neither
// a Quantile/CDF method nor a rule installed by Register constructs
// successfully and fails with an *UnsupportedError on the first
// Forward or Inverse call that needs the missing capability.
func AsCube(dist any) (Transform, error) {
	switch d := dist.(type) {
	case Transform:
		return d, nil
	case SimplexDist:
		return newSimplex(d)
	case Marginaler:
		return NewProduct(d.Marginals()...)
	case MatrixDist:
		return newMatrix(d)
	case []any:
		return NewProduct(d...)
	}
	return newScalar(dist), nil
}
