// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dist

import (
	"fmt"
	"sort"
)

// An Empirical is a continuous distribution estimated from a sample.
// Its quantile function interpolates linearly between order
// statistics at the median-unbiased plotting positions
// (Hyndman-Fan type 8), and its CDF is the exact inverse of that
// interpolation, so an Empirical round-trips through a cube transform
// on the interior of its support.
type Empirical struct {
	xs []float64 // sorted
}

// NewEmpirical returns the empirical distribution of the given
// observations. The input slice is copied and may be in any order.
func NewEmpirical(xs []float64) (*Empirical, error) {
	if len(xs) == 0 {
		return nil, fmt.Errorf("empirical distribution needs at least one observation")
	}
	s := append([]float64(nil), xs...)
	sort.Float64s(s)
	return &Empirical{xs: s}, nil
}

// rank converts a probability to a fractional 1-based rank.
func (e *Empirical) rank(p float64) float64 {
	return p*(float64(len(e.xs))+1.0/3) + 1.0/3
}

// Quantile returns the interpolated p-th quantile of the sample.
// Values of p beyond the outermost plotting positions clamp to the
// sample minimum or maximum.
func (e *Empirical) Quantile(p float64) float64 {
	n := len(e.xs)
	h := e.rank(p)
	if h <= 1 {
		return e.xs[0]
	}
	if h >= float64(n) {
		return e.xs[n-1]
	}
	i := int(h)
	return e.xs[i-1] + (h-float64(i))*(e.xs[i]-e.xs[i-1])
}

// CDF returns the fraction of the distribution at or below x, the
// inverse of Quantile on the interior of the sample range.
func (e *Empirical) CDF(x float64) float64 {
	n := len(e.xs)
	if x <= e.xs[0] {
		return 0
	}
	if x >= e.xs[n-1] {
		return 1
	}
	// First index with xs[i] >= x; x lies in (xs[i-1], xs[i]], so
	// the interval is never empty.
	i := sort.SearchFloat64s(e.xs, x)
	h := float64(i) + (x-e.xs[i-1])/(e.xs[i]-e.xs[i-1])
	p := (h - 1.0/3) / (float64(n) + 1.0/3)
	if p < 0 {
		return 0
	}
	if p > 1 {
		return 1
	}
	return p
}

// Bounds returns the sample minimum and maximum.
func (e *Empirical) Bounds() (float64, float64) {
	return e.xs[0], e.xs[len(e.xs)-1]
}
