// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cube

import "fmt"

// A DimensionError reports a coordinate or value vector whose length
// does not match the transform's dimension. It is returned before any
// quantile or CDF is evaluated.
type DimensionError struct {
	Op   string // "forward" or "inverse"
	Want int
	Got  int
}

func (e *DimensionError) Error() string {
	return fmt.Sprintf("%s transform: input has length %d, want %d", e.Op, e.Got, e.Want)
}

// An UnsupportedError reports a distribution that has neither the
// capability a transform leaf needs nor a rule installed by Register.
// It is returned by the first Forward or Inverse call that needs the
// missing capability, not by AsCube, so the caller can register a
// rule for the named type and rebuild the transform.
type UnsupportedError struct {
	Dist any    // the offending distribution
	Cap  string // "quantile" or "CDF"
}

func (e *UnsupportedError) Error() string {
	return fmt.Sprintf("distribution %T has no %s and no registered rule", e.Dist, e.Cap)
}

// A DegenerateSimplexError reports an inverse simplex transform of a
// value whose entries sum to 1 before the final component, leaving
// zero remaining mass. Inverse returns this error rather than
// propagating the NaN the division would produce.
type DegenerateSimplexError struct {
	Index int // first component with no remaining mass
}

func (e *DegenerateSimplexError) Error() string {
	return fmt.Sprintf("simplex value has no remaining mass at component %d", e.Index)
}
