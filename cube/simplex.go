// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cube

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat/distuv"
)

// A Simplex maps K−1 hypercube coordinates to a point on the
// K-simplex by stick breaking: component i takes a
// Beta(αᵢ, αᵢ₊₁+…+αₖ) fraction of the mass not yet assigned, and the
// final component closes the sum to exactly 1. For i.i.d. uniform
// coordinates the output is Dirichlet(α) distributed.
type Simplex struct {
	alpha []float64
	rest  []float64 // rest[i] = alpha[i+1] + … + alpha[K-1]
}

func newSimplex(d SimplexDist) (*Simplex, error) {
	alpha := d.Concentration()
	if len(alpha) < 2 {
		return nil, fmt.Errorf("simplex distribution needs at least 2 concentration parameters, have %d", len(alpha))
	}
	for _, a := range alpha {
		if !(a > 0) {
			return nil, fmt.Errorf("concentration parameters must be positive, have %v", alpha)
		}
	}
	s := &Simplex{
		alpha: append([]float64(nil), alpha...),
		rest:  make([]float64, len(alpha)),
	}
	for i := len(alpha) - 2; i >= 0; i-- {
		s.rest[i] = s.rest[i+1] + s.alpha[i+1]
	}
	return s, nil
}

func (s *Simplex) Dim() int      { return len(s.alpha) - 1 }
func (s *Simplex) ValueDim() int { return len(s.alpha) }

func (s *Simplex) Forward(coords []float64) ([]float64, error) {
	k := len(s.alpha)
	if len(coords) != k-1 {
		return nil, &DimensionError{"forward", k - 1, len(coords)}
	}
	out := make([]float64, k)
	for i := 0; i < k-1; i++ {
		b := distuv.Beta{Alpha: s.alpha[i], Beta: s.rest[i]}
		// The remaining mass is summed from the entries already
		// written, not rebuilt from the coordinates, so rounding
		// error does not compound across components.
		out[i] = (1 - floats.Sum(out[:i])) * b.Quantile(coords[i])
	}
	out[k-1] = 1 - floats.Sum(out[:k-1])
	return out, nil
}

func (s *Simplex) Inverse(value []float64) ([]float64, error) {
	k := len(s.alpha)
	if len(value) != k {
		return nil, &DimensionError{"inverse", k, len(value)}
	}
	coords := make([]float64, k-1)
	ysum := 0.0
	for i := 0; i < k-1; i++ {
		rem := 1 - ysum
		if !(rem > 0) {
			return nil, &DegenerateSimplexError{Index: i}
		}
		b := distuv.Beta{Alpha: s.alpha[i], Beta: s.rest[i]}
		coords[i] = b.CDF(value[i] / rem)
		ysum += value[i]
	}
	// value[k-1] is implied by the sum constraint and is not
	// consumed.
	return coords, nil
}
