// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package cube maps points between the unit hypercube [0,1]ⁿ and the
// support of statistical distributions using inverse-CDF (quantile)
// transforms.
//
// A point with independent uniform(0,1) coordinates, pushed through
// the forward transform, is distributed according to the target
// distribution. This is the standard reparameterization used by
// quasi-Monte Carlo and nested-sampling codes: the algorithm works in
// the hypercube and the transform carries its points into parameter
// space.
//
// The package orchestrates the walk over structured distributions
// (products, matrices, simplexes); the quantile and CDF functions
// themselves come from the wrapped distributions, typically the
// univariate distributions in gonum.org/v1/gonum/stat/distuv.
package cube // import "github.com/probkit/go-hypercube/cube"
