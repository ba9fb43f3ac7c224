// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cube

import "math"

func aeq(expect, got float64) bool {
	if expect == got {
		return true
	}
	return math.Abs(expect-got) <= 1e-9*math.Max(1, math.Abs(expect))
}

func aeqEach(expect, got []float64) bool {
	if len(expect) != len(got) {
		return false
	}
	for i := range expect {
		if !aeq(expect[i], got[i]) {
			return false
		}
	}
	return true
}
