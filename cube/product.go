// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cube

import "fmt"

// A Product is a composite transform over independent components.
// Components are processed in declaration order: component i consumes
// the Dim(i) coordinates immediately after those consumed by
// components 0..i−1, and writes its values to the corresponding range
// of the output. That coordinate-to-component mapping is part of the
// contract and never changes for a given Product.
type Product struct {
	children []Transform
	dim      int
	valueDim int
}

// NewProduct builds a product transform over the given components in
// order. Each component may be anything AsCube accepts. Child
// transforms are constructed here, once, not per call.
func NewProduct(components ...any) (*Product, error) {
	if len(components) == 0 {
		return nil, fmt.Errorf("product transform needs at least one component")
	}
	p := &Product{children: make([]Transform, len(components))}
	for i, c := range components {
		t, err := AsCube(c)
		if err != nil {
			return nil, err
		}
		p.children[i] = t
		p.dim += t.Dim()
		p.valueDim += t.ValueDim()
	}
	return p, nil
}

func (p *Product) Dim() int      { return p.dim }
func (p *Product) ValueDim() int { return p.valueDim }

func (p *Product) Forward(coords []float64) ([]float64, error) {
	if len(coords) != p.dim {
		return nil, &DimensionError{"forward", p.dim, len(coords)}
	}
	out := make([]float64, 0, p.valueDim)
	for _, c := range p.children {
		v, err := c.Forward(coords[:c.Dim()])
		if err != nil {
			return nil, err
		}
		out = append(out, v...)
		coords = coords[c.Dim():]
	}
	return out, nil
}

func (p *Product) Inverse(value []float64) ([]float64, error) {
	if len(value) != p.valueDim {
		return nil, &DimensionError{"inverse", p.valueDim, len(value)}
	}
	out := make([]float64, 0, p.dim)
	for _, c := range p.children {
		u, err := c.Inverse(value[:c.ValueDim()])
		if err != nil {
			return nil, err
		}
		out = append(out, u...)
		value = value[c.ValueDim():]
	}
	return out, nil
}
