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

// Package shapes defines Shape, the dimensions of a matrix expression.
//
// Every expression in the modeling language is a matrix with rows x cols
// dimensions, both >= 1. A scalar is the 1x1 shape, a column vector is
// (rows, 1) and a row vector is (1, cols).
//
// Use Make to create a new shape; it panics on non-positive dimensions,
// so a Shape obtained through it is always valid. The zero Shape{} is
// invalid and can be used as a sentinel (Shape{}.Ok() == false).
package shapes

import (
	"fmt"

	"github.com/gomlx/exceptions"
)

// Shape holds the dimensions of a matrix expression: Rows x Cols.
//
// Use Make to create a valid Shape. See package documentation.
type Shape struct {
	Rows, Cols int
}

// HasShape is anything that can report its own Shape. It is implemented
// by Shape itself and by every expression node.
type HasShape interface {
	Shape() Shape
}

// Make returns the Shape with the given dimensions.
// It panics if either dimension is smaller than 1.
func Make(rows, cols int) Shape {
	if rows < 1 || cols < 1 {
		exceptions.Panicf("shapes.Make(%d, %d): dimensions must be >= 1", rows, cols)
	}
	return Shape{Rows: rows, Cols: cols}
}

// Scalar returns the 1x1 shape.
func Scalar() Shape {
	return Shape{Rows: 1, Cols: 1}
}

// Ok returns whether this is a valid Shape. The zero value Shape{} is invalid.
func (s Shape) Ok() bool { return s.Rows >= 1 && s.Cols >= 1 }

// Size returns the total number of entries, Rows*Cols.
func (s Shape) Size() int { return s.Rows * s.Cols }

// IsScalar returns whether the shape is 1x1.
func (s Shape) IsScalar() bool { return s.Rows == 1 && s.Cols == 1 }

// Equal returns whether s and o have the same dimensions.
func (s Shape) Equal(o Shape) bool { return s.Rows == o.Rows && s.Cols == o.Cols }

// Shape returns itself. It implements the HasShape interface.
func (s Shape) Shape() Shape { return s }

// String implements fmt.Stringer, pretty-prints the shape.
func (s Shape) String() string {
	return fmt.Sprintf("(%d, %d)", s.Rows, s.Cols)
}
