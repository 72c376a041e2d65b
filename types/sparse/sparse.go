/*
 *	Copyright 2025 The gocvx Authors
 *
 *	Licensed under the Apache License, Version 2.0 (the "License");
 *	you may not use this file except in compliance with the License.
 *	You may obtain a copy of the License at
 *
 *	http://www.apache.org/licenses/LICENSE-2.0
 *
 *	Unless required by applicable law or agreed to in writing, software
 *	distributed under the License is distributed on an "AS IS" BASIS,
 *	WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 *	See the License for the specific language governing permissions and
 *	limitations under the License.
 */

// Package sparse implements an immutable sparse matrix of float64 values
// in compressed sparse column (CSC) format.
//
// It is the representation used for the Jacobians assembled by the atoms
// package: those matrices have one column per output entry and one row
// per entry of the vectorized operand, with only a thin band of nonzero
// values, so a dense representation would waste quadratic space.
//
// Matrices are built from triplets (FromTriplets, NewColumn) or by adding
// existing matrices (Add); once built they are never mutated. Duplicate
// (row, col) triplets are summed, and zero values are not stored.
package sparse

import (
	"fmt"
	"sort"

	"github.com/gomlx/exceptions"
	"gonum.org/v1/gonum/mat"
)

// Matrix is a sparse rows x cols matrix in CSC format.
//
// The zero value is not usable; create one with Zeros, FromTriplets,
// NewColumn or Add.
type Matrix struct {
	rows, cols int

	// colPtr has cols+1 entries: column j's stored entries live at
	// positions colPtr[j]:colPtr[j+1] of rowIdx and values, sorted by row.
	colPtr []int
	rowIdx []int
	values []float64
}

// Triplet is one stored entry of a Matrix, used by Triplets.
type Triplet struct {
	Row, Col int
	Value    float64
}

// Zeros returns the all-zero matrix with the given dimensions.
// It panics if either dimension is smaller than 1.
func Zeros(rows, cols int) *Matrix {
	if rows < 1 || cols < 1 {
		exceptions.Panicf("sparse.Zeros(%d, %d): dimensions must be >= 1", rows, cols)
	}
	return &Matrix{
		rows:   rows,
		cols:   cols,
		colPtr: make([]int, cols+1),
	}
}

// FromTriplets builds a rows x cols matrix from parallel slices of row
// indices, column indices and values. Duplicate (row, col) entries are
// summed; entries whose final value is zero are not stored.
//
// It panics if the slices have different lengths or if any index is out
// of range, mirroring the construction-time checking of the dense side.
func FromTriplets(rows, cols int, rowIdx, colIdx []int, values []float64) *Matrix {
	if len(rowIdx) != len(colIdx) || len(rowIdx) != len(values) {
		exceptions.Panicf("sparse.FromTriplets: mismatched triplet slices: %d rows, %d cols, %d values",
			len(rowIdx), len(colIdx), len(values))
	}
	m := Zeros(rows, cols)
	if len(values) == 0 {
		return m
	}

	order := make([]int, len(values))
	for i := range order {
		r, c := rowIdx[i], colIdx[i]
		if r < 0 || r >= rows || c < 0 || c >= cols {
			exceptions.Panicf("sparse.FromTriplets: entry (%d, %d) out of range for %dx%d matrix",
				r, c, rows, cols)
		}
		order[i] = i
	}
	sort.Slice(order, func(a, b int) bool {
		ea, eb := order[a], order[b]
		if colIdx[ea] != colIdx[eb] {
			return colIdx[ea] < colIdx[eb]
		}
		return rowIdx[ea] < rowIdx[eb]
	})

	// Merge duplicates and compress, column by column.
	counts := make([]int, cols)
	for pos := 0; pos < len(order); {
		e := order[pos]
		r, c := rowIdx[e], colIdx[e]
		v := values[e]
		pos++
		for pos < len(order) && rowIdx[order[pos]] == r && colIdx[order[pos]] == c {
			v += values[order[pos]]
			pos++
		}
		if v == 0 {
			continue
		}
		m.rowIdx = append(m.rowIdx, r)
		m.values = append(m.values, v)
		counts[c]++
	}
	for c := 0; c < cols; c++ {
		m.colPtr[c+1] = m.colPtr[c] + counts[c]
	}
	return m
}

// NewColumn builds a k x 1 matrix from a dense slice of k values,
// storing only the nonzero entries.
func NewColumn(values []float64) *Matrix {
	m := Zeros(len(values), 1)
	for r, v := range values {
		if v == 0 {
			continue
		}
		m.rowIdx = append(m.rowIdx, r)
		m.values = append(m.values, v)
	}
	m.colPtr[1] = len(m.values)
	return m
}

// Dims returns the dimensions of the matrix. It matches the signature of
// gonum's mat.Matrix.
func (m *Matrix) Dims() (rows, cols int) { return m.rows, m.cols }

// NNZ returns the number of stored (nonzero) entries.
func (m *Matrix) NNZ() int { return len(m.values) }

// At returns the value at row i, column j. It panics if the indices are
// out of range.
func (m *Matrix) At(i, j int) float64 {
	if i < 0 || i >= m.rows || j < 0 || j >= m.cols {
		exceptions.Panicf("sparse.Matrix.At(%d, %d): out of range for %dx%d matrix", i, j, m.rows, m.cols)
	}
	start, end := m.colPtr[j], m.colPtr[j+1]
	pos := start + sort.SearchInts(m.rowIdx[start:end], i)
	if pos < end && m.rowIdx[pos] == i {
		return m.values[pos]
	}
	return 0
}

// Add returns the entry-wise sum m + o as a new matrix.
// It panics if the dimensions disagree.
func (m *Matrix) Add(o *Matrix) *Matrix {
	if m.rows != o.rows || m.cols != o.cols {
		exceptions.Panicf("sparse.Matrix.Add: dimension mismatch: %dx%d vs %dx%d",
			m.rows, m.cols, o.rows, o.cols)
	}
	out := Zeros(m.rows, m.cols)
	out.rowIdx = make([]int, 0, len(m.values)+len(o.values))
	out.values = make([]float64, 0, len(m.values)+len(o.values))
	for c := 0; c < m.cols; c++ {
		a, aEnd := m.colPtr[c], m.colPtr[c+1]
		b, bEnd := o.colPtr[c], o.colPtr[c+1]
		for a < aEnd || b < bEnd {
			switch {
			case b == bEnd || (a < aEnd && m.rowIdx[a] < o.rowIdx[b]):
				out.rowIdx = append(out.rowIdx, m.rowIdx[a])
				out.values = append(out.values, m.values[a])
				a++
			case a == aEnd || o.rowIdx[b] < m.rowIdx[a]:
				out.rowIdx = append(out.rowIdx, o.rowIdx[b])
				out.values = append(out.values, o.values[b])
				b++
			default: // Same row in both: sum, drop if it cancels out.
				if v := m.values[a] + o.values[b]; v != 0 {
					out.rowIdx = append(out.rowIdx, m.rowIdx[a])
					out.values = append(out.values, v)
				}
				a++
				b++
			}
		}
		out.colPtr[c+1] = len(out.values)
	}
	return out
}

// DoNonZero calls fn for each stored entry, in column-major order.
func (m *Matrix) DoNonZero(fn func(i, j int, v float64)) {
	for c := 0; c < m.cols; c++ {
		for pos := m.colPtr[c]; pos < m.colPtr[c+1]; pos++ {
			fn(m.rowIdx[pos], c, m.values[pos])
		}
	}
}

// Triplets returns the stored entries in column-major order.
func (m *Matrix) Triplets() []Triplet {
	out := make([]Triplet, 0, m.NNZ())
	m.DoNonZero(func(i, j int, v float64) {
		out = append(out, Triplet{Row: i, Col: j, Value: v})
	})
	return out
}

// Dense returns a dense copy of the matrix.
func (m *Matrix) Dense() *mat.Dense {
	out := mat.NewDense(m.rows, m.cols, nil)
	m.DoNonZero(func(i, j int, v float64) {
		out.Set(i, j, v)
	})
	return out
}

// String implements fmt.Stringer with a summary of dimensions and density.
func (m *Matrix) String() string {
	return fmt.Sprintf("sparse.Matrix(%dx%d, nnz=%d)", m.rows, m.cols, m.NNZ())
}
