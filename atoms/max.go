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
)

// MaxEntries is the atom taking the maximum entry of its operand, whole
// or per slice, depending on the axis.
//
// The max is not differentiable on ties; a valid supergradient still
// exists there, and the primitive picks the one-hot at the first maximal
// entry, so gradient assembly never fails for this atom.
type MaxEntries struct {
	*AxisAtom
}

// NewMaxEntries creates a MaxEntries atom over operand applied along axis.
// It returns an error wrapping ErrInvalidAxis for an invalid axis.
func NewMaxEntries(operand expr.Expression, axis Axis) (*MaxEntries, error) {
	base, err := NewAxisAtom("max_entries", operand, axis, maxGrad{})
	if err != nil {
		return nil, err
	}
	return &MaxEntries{AxisAtom: base}, nil
}

type maxGrad struct{}

func (maxGrad) ColumnGrad(v mat.Vector) (*sparse.Matrix, bool) {
	best := 0
	for j := 1; j < v.Len(); j++ {
		if v.AtVec(j) > v.AtVec(best) {
			best = j
		}
	}
	return sparse.FromTriplets(v.Len(), 1, []int{best}, []int{0}, []float64{1}), true
}
