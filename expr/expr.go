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

// Package expr defines the expression-node abstraction the atoms operate
// on: anything with a fixed matrix shape.
//
// The package provides the two leaf node types of the modeling language,
// Variable and Constant. Composite nodes -- the atoms -- live in the
// atoms package and implement the same Expression interface, so they can
// be used as operands of further atoms.
package expr

import (
	"fmt"

	"github.com/gomlx/exceptions"
	"gonum.org/v1/gonum/mat"

	"github.com/gocvx/gocvx/types/shapes"
)

// Expression is a node of the modeling language: a matrix-valued
// expression with a fixed shape.
type Expression interface {
	shapes.HasShape
	fmt.Stringer
}

// Variable is a named leaf expression with no value of its own; values
// are supplied externally when gradients are requested.
type Variable struct {
	name  string
	shape shapes.Shape
}

// NewVariable creates a rows x cols variable with the given name.
// It panics if the dimensions are not positive.
func NewVariable(name string, rows, cols int) *Variable {
	return &Variable{name: name, shape: shapes.Make(rows, cols)}
}

// Shape returns the variable's shape.
func (v *Variable) Shape() shapes.Shape { return v.shape }

// Name returns the variable's name.
func (v *Variable) Name() string { return v.name }

// String implements fmt.Stringer.
func (v *Variable) String() string { return v.name }

// Constant is a leaf expression wrapping a fixed numeric matrix.
type Constant struct {
	value *mat.Dense
	shape shapes.Shape
}

// NewConstant creates a constant expression from the given dense matrix.
// It panics on a nil value.
func NewConstant(value *mat.Dense) *Constant {
	if value == nil {
		exceptions.Panicf("expr.NewConstant: nil value")
	}
	rows, cols := value.Dims()
	return &Constant{value: value, shape: shapes.Make(rows, cols)}
}

// Shape returns the constant's shape.
func (c *Constant) Shape() shapes.Shape { return c.shape }

// Value returns the wrapped matrix. Callers must not modify it.
func (c *Constant) Value() *mat.Dense { return c.value }

// String implements fmt.Stringer.
func (c *Constant) String() string {
	return fmt.Sprintf("const%s", c.shape)
}
