// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cube

import (
	"reflect"
	"sync"
)

// A scalar wraps a single univariate distribution. Its capabilities
// are resolved once, at construction: a Quantile or CDF method wins;
// otherwise a rule registered for the distribution's dynamic type is
// used; otherwise the corresponding function is left nil and the
// first call that needs it fails with an *UnsupportedError.
type scalar struct {
	dist     any
	quantile func(p float64) float64
	cdf      func(x float64) float64
}

func newScalar(dist any) *scalar {
	s := &scalar{dist: dist}
	if q, ok := dist.(Quantiler); ok {
		s.quantile = q.Quantile
	}
	if c, ok := dist.(CDFer); ok {
		s.cdf = c.CDF
	}
	if s.quantile != nil && s.cdf != nil {
		return s
	}
	if r, ok := lookupRule(dist); ok {
		if s.quantile == nil && r.quantile != nil {
			fn := r.quantile
			s.quantile = func(p float64) float64 { return fn(s.dist, p) }
		}
		if s.cdf == nil && r.cdf != nil {
			fn := r.cdf
			s.cdf = func(x float64) float64 { return fn(s.dist, x) }
		}
	}
	return s
}

func (s *scalar) Dim() int      { return 1 }
func (s *scalar) ValueDim() int { return 1 }

func (s *scalar) Forward(coords []float64) ([]float64, error) {
	if len(coords) != 1 {
		return nil, &DimensionError{"forward", 1, len(coords)}
	}
	if s.quantile == nil {
		return nil, &UnsupportedError{s.dist, "quantile"}
	}
	return []float64{s.quantile(coords[0])}, nil
}

func (s *scalar) Inverse(value []float64) ([]float64, error) {
	if len(value) != 1 {
		return nil, &DimensionError{"inverse", 1, len(value)}
	}
	if s.cdf == nil {
		return nil, &UnsupportedError{s.dist, "CDF"}
	}
	return []float64{s.cdf(value[0])}, nil
}

// rules maps a distribution's dynamic type to custom transform
// functions, for distribution types that have no Quantile or CDF
// method of their own.
var (
	rulesMu sync.RWMutex
	rules   = make(map[reflect.Type]rule)
)

type rule struct {
	quantile func(dist any, p float64) float64
	cdf      func(dist any, x float64) float64
}

// Register installs quantile and CDF rules for distribution type T,
// extending AsCube to types the package knows nothing about. Either
// function may be nil to leave that capability unsupported. Rules are
// consulted when a transform is constructed, so Register must be
// called before AsCube.
func Register[T any](quantile, cdf func(dist T, p float64) float64) {
	var r rule
	if quantile != nil {
		r.quantile = func(dist any, p float64) float64 { return quantile(dist.(T), p) }
	}
	if cdf != nil {
		r.cdf = func(dist any, x float64) float64 { return cdf(dist.(T), x) }
	}
	rulesMu.Lock()
	rules[reflect.TypeOf((*T)(nil)).Elem()] = r
	rulesMu.Unlock()
}

func lookupRule(dist any) (rule, bool) {
	rulesMu.RLock()
	r, ok := rules[reflect.TypeOf(dist)]
	rulesMu.RUnlock()
	return r, ok
}
