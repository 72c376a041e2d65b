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
	"github.com/gomlx/exceptions"
	"github.com/pkg/errors"

	"github.com/gocvx/gocvx/types/shapes"
)

// Axis selects how an axis-wise atom is applied to its matrix operand:
// to the whole operand at once, independently to each column, or
// independently to each row.
type Axis int

const (
	// AxisNone applies the atom to the whole operand, producing a scalar.
	AxisNone Axis = iota

	// AxisColumns applies the atom independently to each column,
	// producing one scalar per column, assembled as a 1 x cols row.
	AxisColumns

	// AxisRows applies the atom independently to each row, producing one
	// scalar per row, assembled as a rows x 1 column.
	AxisRows
)

//go:generate enumer -type=Axis -trimprefix=Axis -transform=snake axis.go

// ErrInvalidAxis is returned (wrapped) by ValidateAxis and by the atom
// constructors when the axis is not one of AxisNone, AxisColumns or
// AxisRows. Match it with errors.Is.
var ErrInvalidAxis = errors.New("atoms: invalid axis")

// ValidateAxis returns an error wrapping ErrInvalidAxis unless axis is
// one of the three declared Axis values. Atom constructors run it before
// the atom is considered usable.
func ValidateAxis(axis Axis) error {
	if !axis.IsAAxis() {
		return errors.Wrapf(ErrInvalidAxis, "axis must be one of %v, got Axis(%d)", AxisValues(), int(axis))
	}
	return nil
}

// ShapeForAxis returns the output shape of an axis-wise atom applied to
// an operand of the given shape:
//
//	AxisNone    -> (1, 1)
//	AxisColumns -> (1, cols)
//	AxisRows    -> (rows, 1)
//
// The axis must have been validated already; an invalid one panics.
func ShapeForAxis(operand shapes.Shape, axis Axis) shapes.Shape {
	switch axis {
	case AxisNone:
		return shapes.Scalar()
	case AxisColumns:
		return shapes.Make(1, operand.Cols)
	case AxisRows:
		return shapes.Make(operand.Rows, 1)
	}
	exceptions.Panicf("atoms.ShapeForAxis: invalid axis Axis(%d)", int(axis))
	return shapes.Shape{}
}
