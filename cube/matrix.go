// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cube

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// A Matrix is a composite transform over a matrix-variate
// distribution with independent elements. It is a product over the
// elements in row-major order; ForwardMatrix and InverseMatrix
// additionally carry the r×c shape.
type Matrix struct {
	rows, cols int
	prod       *Product
}

func newMatrix(d MatrixDist) (*Matrix, error) {
	r, c := d.Dims()
	if r <= 0 || c <= 0 {
		return nil, fmt.Errorf("matrix distribution has invalid shape %d×%d", r, c)
	}
	elems := make([]any, 0, r*c)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			elems = append(elems, d.Element(i, j))
		}
	}
	prod, err := NewProduct(elems...)
	if err != nil {
		return nil, err
	}
	// Reshaping to r×c requires one scalar per element.
	if prod.ValueDim() != r*c || prod.Dim() != r*c {
		return nil, fmt.Errorf("matrix distribution elements must be scalar")
	}
	return &Matrix{rows: r, cols: c, prod: prod}, nil
}

func (m *Matrix) Dim() int      { return m.prod.Dim() }
func (m *Matrix) ValueDim() int { return m.prod.ValueDim() }

func (m *Matrix) Forward(coords []float64) ([]float64, error) {
	return m.prod.Forward(coords)
}

func (m *Matrix) Inverse(value []float64) ([]float64, error) {
	return m.prod.Inverse(value)
}

// ForwardMatrix is Forward with the result shaped as an r×c dense
// matrix.
func (m *Matrix) ForwardMatrix(coords []float64) (*mat.Dense, error) {
	v, err := m.prod.Forward(coords)
	if err != nil {
		return nil, err
	}
	return mat.NewDense(m.rows, m.cols, v), nil
}

// InverseMatrix is Inverse taking the value as an r×c matrix.
func (m *Matrix) InverseMatrix(value mat.Matrix) ([]float64, error) {
	r, c := value.Dims()
	if r != m.rows || c != m.cols {
		return nil, &DimensionError{"inverse", m.rows * m.cols, r * c}
	}
	flat := make([]float64, 0, r*c)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			flat = append(flat, value.At(i, j))
		}
	}
	return m.prod.Inverse(flat)
}
