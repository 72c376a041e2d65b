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

// Package atoms implements the mathematical operators ("atoms") of the
// modeling language that can be applied along an axis of their matrix
// operand.
//
// The central type is AxisAtom: it wraps an operand expression, an Axis
// selector and a ColumnGradient primitive, and provides output-shape
// inference and the assembly of the full sparse Jacobian of the
// vectorized operation from the primitive's per-slice gradients. The
// concrete atoms (Sum, MaxEntries, Norm2) each contribute only their
// per-column gradient; everything axis-related is handled here.
//
// Vectorization convention: a rows x cols operand is flattened by
// transposing it and laying the transpose out row by row, so the entry
// at (r, c) lands at position c*rows + r of the flattened vector. All
// Jacobian row indices follow from this single convention.
package atoms

import (
	"fmt"

	"github.com/gomlx/exceptions"
	"gonum.org/v1/gonum/mat"
	"k8s.io/klog/v2"

	"github.com/gocvx/gocvx/expr"
	"github.com/gocvx/gocvx/types/shapes"
	"github.com/gocvx/gocvx/types/sparse"
	"github.com/gocvx/gocvx/types/xslices"
)

// ColumnGradient is the per-slice derivative primitive a concrete atom
// supplies to AxisAtom.
//
// Given the numeric value of one column (a length-k vector), ColumnGrad
// returns the (sub/super)gradient of the atom's underlying function with
// respect to that column as a k x 1 sparse column, or ok=false when the
// function is not differentiable at v. Returning a nil matrix together
// with ok=true is a contract violation and panics during assembly.
//
// Implementations must be pure functions of their input: the assembly
// loop relies on slices being independent of each other.
type ColumnGradient interface {
	ColumnGrad(v mat.Vector) (grad *sparse.Matrix, ok bool)
}

// AxisAtom is an atom applied along an axis of a single matrix operand.
// It is the composition point between the generic axis machinery and a
// concrete atom's ColumnGradient primitive.
//
// AxisAtom implements expr.Expression, so atoms can be operands of other
// atoms. The axis is immutable after construction and is the only datum,
// besides the operand, distinguishing two atoms of the same family.
type AxisAtom struct {
	name    string
	operand expr.Expression
	axis    Axis
	prim    ColumnGradient
}

// NewAxisAtom wraps operand in an axis-wise atom using the given
// per-column gradient primitive. The name is used only for String.
//
// It returns an error wrapping ErrInvalidAxis when axis is not one of
// the declared Axis values; the atom must not be used in that case.
func NewAxisAtom(name string, operand expr.Expression, axis Axis, prim ColumnGradient) (*AxisAtom, error) {
	if err := ValidateAxis(axis); err != nil {
		return nil, err
	}
	return &AxisAtom{name: name, operand: operand, axis: axis, prim: prim}, nil
}

// Operand returns the wrapped expression.
func (a *AxisAtom) Operand() expr.Expression { return a.operand }

// Axis returns the axis the atom is applied along.
func (a *AxisAtom) Axis() Axis { return a.axis }

// Shape returns the output shape of the atom, fully determined by the
// operand's shape and the axis. It implements expr.Expression.
func (a *AxisAtom) Shape() shapes.Shape {
	return ShapeForAxis(a.operand.Shape(), a.axis)
}

// Data returns a single-element descriptor holding the axis. It is used
// by the structural-equality and serialization machinery to distinguish
// atoms that otherwise share structure.
func (a *AxisAtom) Data() []any {
	return []any{a.axis}
}

// String implements fmt.Stringer.
func (a *AxisAtom) String() string {
	if a.axis == AxisNone {
		return fmt.Sprintf("%s(%s)", a.name, a.operand)
	}
	return fmt.Sprintf("%s(%s, axis=%s)", a.name, a.operand, a.axis)
}

// Gradient assembles the Jacobian of the vectorized atom with respect to
// the vectorized operand, evaluated at the given operand value.
//
// The result always has rows*cols rows, one per entry of the flattened
// operand, and one column per output entry: a single column for
// AxisNone, cols columns for AxisColumns, rows columns for AxisRows.
// Column j holds the embedding of output entry j's gradient into the
// flattened-operand index space.
//
// ok=false means the atom has no (sub/super)gradient at value: either
// the single whole-operand call reported none, or, for the per-slice
// axes, at least one slice did. Assembly is fail-fast: the first
// non-differentiable slice aborts the loop, a partially valid Jacobian
// is never returned.
//
// It panics if value's dimensions disagree with the operand's shape.
func (a *AxisAtom) Gradient(value *mat.Dense) (grad *sparse.Matrix, ok bool) {
	shape := a.operand.Shape()
	if r, c := value.Dims(); r != shape.Rows || c != shape.Cols {
		exceptions.Panicf("%s.Gradient: value is %dx%d, operand shape is %s", a.name, r, c, shape)
	}
	m, n := shape.Rows, shape.Cols
	klog.V(2).Infof("assembling gradient of %s at a %s operand value", a, shape)

	if a.axis == AxisNone {
		d, ok := a.prim.ColumnGrad(flattenTransposed(value))
		if !ok {
			return nil, false
		}
		checkColumnGrad(a, d, m*n)
		return d, true
	}

	// AxisColumns and AxisRows differ only in the slice extracted per
	// output entry and in the row-index progression embedding a slice's
	// k-th entry into the flattened-operand index space.
	var numSlices, sliceLen int
	var sliceAt func(i int) mat.Vector
	var rowAt func(i, k int) int
	if a.axis == AxisColumns {
		numSlices, sliceLen = n, m
		sliceAt = value.ColView
		rowAt = func(i, k int) int { return i*n + k }
	} else {
		transposed := mat.DenseCopyOf(value.T())
		numSlices, sliceLen = m, n
		sliceAt = transposed.ColView
		rowAt = func(i, k int) int { return i + k*m }
	}

	jac := sparse.Zeros(m*n, numSlices)
	rowIdx := make([]int, sliceLen)
	values := make([]float64, sliceLen)
	for i := 0; i < numSlices; i++ {
		d, ok := a.prim.ColumnGrad(sliceAt(i))
		if !ok {
			return nil, false
		}
		checkColumnGrad(a, d, sliceLen)
		colIdx := xslices.SliceWithValue(sliceLen, i)
		for k := 0; k < sliceLen; k++ {
			rowIdx[k] = rowAt(i, k)
			values[k] = d.At(k, 0)
		}
		// Slices own disjoint (row, col) positions, so adding is plain
		// placement of slice i into column i.
		jac = jac.Add(sparse.FromTriplets(m*n, numSlices, rowIdx, colIdx, values))
	}
	return jac, true
}

// flattenTransposed flattens a rows x cols matrix into a rows*cols
// vector following the transpose-then-flatten convention: entry (r, c)
// lands at position c*rows + r.
func flattenTransposed(value *mat.Dense) *mat.VecDense {
	rows, cols := value.Dims()
	out := mat.NewVecDense(rows*cols, nil)
	for c := 0; c < cols; c++ {
		for r := 0; r < rows; r++ {
			out.SetVec(c*rows+r, value.At(r, c))
		}
	}
	return out
}

// checkColumnGrad panics when a primitive's result violates the
// ColumnGradient contract.
func checkColumnGrad(a *AxisAtom, d *sparse.Matrix, sliceLen int) {
	if d == nil {
		exceptions.Panicf("%s: ColumnGrad returned a nil gradient with ok=true", a.name)
	}
	if r, c := d.Dims(); r != sliceLen || c != 1 {
		exceptions.Panicf("%s: ColumnGrad returned a %dx%d matrix for a length-%d slice, want %dx1",
			a.name, r, c, sliceLen, sliceLen)
	}
}
