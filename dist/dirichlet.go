// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package dist provides distributions for use with package cube that
// the gonum distribution library does not cover directly: a
// concentration-parameterized Dirichlet and an empirical distribution
// backed by a sample.
package dist // import "github.com/probkit/go-hypercube/dist"

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
)

// A Dirichlet is a Dirichlet distribution over the K-simplex with
// concentration parameters Alpha. Its Concentration method marks it
// as simplex-valued for cube.AsCube, which transforms it by stick
// breaking.
type Dirichlet struct {
	Alpha []float64
}

// NewDirichlet returns a Dirichlet with the given positive
// concentration parameters. len(alpha) must be at least 2.
func NewDirichlet(alpha ...float64) (Dirichlet, error) {
	if len(alpha) < 2 {
		return Dirichlet{}, fmt.Errorf("Dirichlet needs at least 2 concentration parameters, have %d", len(alpha))
	}
	for _, a := range alpha {
		if !(a > 0) {
			return Dirichlet{}, fmt.Errorf("Dirichlet concentration must be positive, have %v", alpha)
		}
	}
	return Dirichlet{Alpha: append([]float64(nil), alpha...)}, nil
}

// Concentration returns the concentration vector.
func (d Dirichlet) Concentration() []float64 { return d.Alpha }

// Mean returns the mean of the distribution, αᵢ/Σα.
func (d Dirichlet) Mean() []float64 {
	sum := floats.Sum(d.Alpha)
	mean := make([]float64, len(d.Alpha))
	for i, a := range d.Alpha {
		mean[i] = a / sum
	}
	return mean
}
