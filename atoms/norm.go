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
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/gocvx/gocvx/expr"
	"github.com/gocvx/gocvx/types/sparse"
)

// Norm2 is the atom taking the Euclidean norm of its operand, whole or
// per slice, depending on the axis.
//
// Its gradient at v != 0 is v/|v|; at the origin the norm is not
// differentiable and the primitive reports no gradient, which makes
// Norm2 the atom exercising the fail-fast path of gradient assembly.
type Norm2 struct {
	*AxisAtom
}

// NewNorm2 creates a Norm2 atom over operand applied along axis.
// It returns an error wrapping ErrInvalidAxis for an invalid axis.
func NewNorm2(operand expr.Expression, axis Axis) (*Norm2, error) {
	base, err := NewAxisAtom("norm2", operand, axis, norm2Grad{})
	if err != nil {
		return nil, err
	}
	return &Norm2{AxisAtom: base}, nil
}

type norm2Grad struct{}

func (norm2Grad) ColumnGrad(v mat.Vector) (*sparse.Matrix, bool) {
	norm := math.Sqrt(mat.Dot(v, v))
	if norm == 0 {
		return nil, false
	}
	entries := make([]float64, v.Len())
	for j := range entries {
		entries[j] = v.AtVec(j) / norm
	}
	return sparse.NewColumn(entries), true
}
