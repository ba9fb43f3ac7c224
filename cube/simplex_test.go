// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cube

import (
	"errors"
	"math"
	"testing"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat/distmv"
	"gonum.org/v1/gonum/stat/distuv"
)

// simplex3 is a Dirichlet-like test distribution over 3 categories.
type simplex3 struct{}

func (simplex3) Concentration() []float64 { return []float64{2, 3, 4} }

type simplexAlpha []float64

func (s simplexAlpha) Concentration() []float64 { return s }

func TestSimplexDim(t *testing.T) {
	for k := 2; k <= 6; k++ {
		alpha := make(simplexAlpha, k)
		for i := range alpha {
			alpha[i] = 1 + float64(i)
		}
		tr, err := AsCube(alpha)
		if err != nil {
			t.Fatal(err)
		}
		if tr.Dim() != k-1 || tr.ValueDim() != k {
			t.Errorf("K=%d: want dim %d/%d, got %d/%d", k, k-1, k, tr.Dim(), tr.ValueDim())
		}
	}

	if _, err := AsCube(simplexAlpha{1}); err == nil {
		t.Error("want error for a single concentration parameter")
	}
	if _, err := AsCube(simplexAlpha{1, -2, 3}); err == nil {
		t.Error("want error for a negative concentration parameter")
	}
}

func TestSimplexClosure(t *testing.T) {
	tr, err := AsCube(simplexAlpha{0.5, 1, 2, 3.5})
	if err != nil {
		t.Fatal(err)
	}
	for _, coords := range [][]float64{
		{0.5, 0.5, 0.5},
		{0.01, 0.99, 0.5},
		{0.9, 0.1, 0.7},
		{0.25, 0.25, 0.25},
	} {
		out, err := tr.Forward(coords)
		if err != nil {
			t.Fatal(err)
		}
		if len(out) != 4 {
			t.Fatalf("want 4 components, got %d", len(out))
		}
		for i, y := range out {
			if y < 0 {
				t.Errorf("Forward(%v): component %d is negative: %v", coords, i, y)
			}
		}
		if sum := floats.Sum(out); math.Abs(sum-1) > 1e-9 {
			t.Errorf("Forward(%v) sums to %v", coords, sum)
		}
	}
}

func TestSimplexTwoCategories(t *testing.T) {
	// With α = (1, 1) the single stick-breaking fraction is
	// Beta(1,1), i.e. uniform, so the output is (p, 1−p).
	tr, err := AsCube(simplexAlpha{1, 1})
	if err != nil {
		t.Fatal(err)
	}
	for _, p := range []float64{0.1, 0.5, 0.73} {
		out, err := tr.Forward([]float64{p})
		if err != nil {
			t.Fatal(err)
		}
		if !aeq(p, out[0]) || !aeq(1-p, out[1]) {
			t.Errorf("Forward(%v): got %v", p, out)
		}
	}
}

func TestSimplexStickBreaking(t *testing.T) {
	// First component is a straight Beta(α₁, α₂+α₃) quantile; the
	// second takes its Beta share of the remaining mass.
	alpha := []float64{2, 3, 4}
	tr, err := AsCube(simplexAlpha(alpha))
	if err != nil {
		t.Fatal(err)
	}
	coords := []float64{0.3, 0.8}
	out, err := tr.Forward(coords)
	if err != nil {
		t.Fatal(err)
	}
	y0 := distuv.Beta{Alpha: 2, Beta: 7}.Quantile(0.3)
	y1 := (1 - y0) * distuv.Beta{Alpha: 3, Beta: 4}.Quantile(0.8)
	if !aeq(y0, out[0]) || !aeq(y1, out[1]) || !aeq(1-y0-y1, out[2]) {
		t.Errorf("want [%v %v %v], got %v", y0, y1, 1-y0-y1, out)
	}
}

func TestSimplexRoundTrip(t *testing.T) {
	tr, err := AsCube(simplex3{})
	if err != nil {
		t.Fatal(err)
	}
	for _, coords := range [][]float64{
		{0.2, 0.7},
		{0.5, 0.5},
		{0.95, 0.05},
	} {
		v, err := tr.Forward(coords)
		if err != nil {
			t.Fatal(err)
		}
		u, err := tr.Inverse(v)
		if err != nil {
			t.Fatal(err)
		}
		if !aeqEach(coords, u) {
			t.Errorf("round trip of %v gives %v", coords, u)
		}
	}
}

func TestSimplexSupport(t *testing.T) {
	// Forward output must land in the support of the matching
	// Dirichlet: its log density there is finite.
	alpha := []float64{2, 3, 4}
	tr, err := AsCube(simplexAlpha(alpha))
	if err != nil {
		t.Fatal(err)
	}
	dir := distmv.NewDirichlet(alpha, nil)
	if dir.Dim() != tr.ValueDim() {
		t.Fatalf("Dirichlet dim %d != ValueDim %d", dir.Dim(), tr.ValueDim())
	}
	out, err := tr.Forward([]float64{0.4, 0.6})
	if err != nil {
		t.Fatal(err)
	}
	if lp := dir.LogProb(out); math.IsNaN(lp) || math.IsInf(lp, 0) {
		t.Errorf("LogProb(%v) = %v, want finite", out, lp)
	}
}

func TestSimplexDegenerate(t *testing.T) {
	tr, err := AsCube(simplexAlpha{1, 1, 1})
	if err != nil {
		t.Fatal(err)
	}
	// All mass on the first component: the second has nothing left
	// to divide by.
	_, err = tr.Inverse([]float64{1, 0, 0})
	var serr *DegenerateSimplexError
	if !errors.As(err, &serr) {
		t.Fatalf("want DegenerateSimplexError, got %v", err)
	}
	if serr.Index != 1 {
		t.Errorf("want index 1, got %d", serr.Index)
	}

	// A vertex on the last component is fine: no division by the
	// closing coordinate ever happens.
	if _, err := tr.Inverse([]float64{0, 0, 1}); err != nil {
		t.Errorf("Inverse at last vertex: %v", err)
	}
}

func TestSimplexDimensionMismatch(t *testing.T) {
	tr, err := AsCube(simplex3{})
	if err != nil {
		t.Fatal(err)
	}
	var derr *DimensionError
	if _, err := tr.Forward([]float64{0.5, 0.5, 0.5}); !errors.As(err, &derr) {
		t.Errorf("Forward: want DimensionError, got %v", err)
	}
	// Inverse takes ValueDim = 3 entries, not Dim = 2.
	if _, err := tr.Inverse([]float64{0.5, 0.5}); !errors.As(err, &derr) {
		t.Errorf("Inverse: want DimensionError, got %v", err)
	}
}
