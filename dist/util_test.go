// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dist

import (
	"math"
	"testing"
)

func aeq(expect, got float64) bool {
	if expect == got {
		return true
	}
	return math.Abs(expect-got) <= 1e-9*math.Max(1, math.Abs(expect))
}

func testFunc(t *testing.T, name string, f func(float64) float64, vals map[float64]float64) {
	t.Helper()
	for in, want := range vals {
		if got := f(in); !aeq(want, got) {
			t.Errorf("%s(%v): want %v, got %v", name, in, want, got)
		}
	}
}
