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

package atoms

import (
	"gonum.org/v1/gonum/mat"

	"github.com/gocvx/gocvx/expr"
	"github.com/gocvx/gocvx/types/sparse"
	"github.com/gocvx/gocvx/types/xslices"
)

// Sum is the atom summing the entries of its operand: all of them
// (AxisNone), per column (AxisColumns) or per row (AxisRows).
//
// The sum is linear, so its gradient with respect to a column is the
// all-ones vector, everywhere.
type Sum struct {
	*AxisAtom
}

// NewSum creates a Sum atom over operand applied along axis.
// It returns an error wrapping ErrInvalidAxis for an invalid axis.
func NewSum(operand expr.Expression, axis Axis) (*Sum, error) {
	base, err := NewAxisAtom("sum", operand, axis, sumGrad{})
	if err != nil {
		return nil, err
	}
	return &Sum{AxisAtom: base}, nil
}

type sumGrad struct{}

func (sumGrad) ColumnGrad(v mat.Vector) (*sparse.Matrix, bool) {
	return sparse.NewColumn(xslices.SliceWithValue(v.Len(), 1.0)), true
}
