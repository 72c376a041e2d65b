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

package sparse

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestZeros(t *testing.T) {
	m := Zeros(3, 2)
	rows, cols := m.Dims()
	require.Equal(t, 3, rows)
	require.Equal(t, 2, cols)
	require.Equal(t, 0, m.NNZ())
	require.Equal(t, 0.0, m.At(2, 1))
	require.Panics(t, func() { Zeros(0, 2) })
}

func TestFromTriplets(t *testing.T) {
	m := FromTriplets(3, 3,
		[]int{0, 2, 1, 0},
		[]int{0, 1, 1, 0},
		[]float64{1, 3, 2, 4})
	require.Equal(t, 3, m.NNZ()) // Duplicate (0, 0) summed into one entry.
	require.Equal(t, 5.0, m.At(0, 0))
	require.Equal(t, 2.0, m.At(1, 1))
	require.Equal(t, 3.0, m.At(2, 1))
	require.Equal(t, 0.0, m.At(2, 2))

	require.Equal(t, []Triplet{
		{Row: 0, Col: 0, Value: 5},
		{Row: 1, Col: 1, Value: 2},
		{Row: 2, Col: 1, Value: 3},
	}, m.Triplets())
}

func TestFromTripletsDropsZeros(t *testing.T) {
	m := FromTriplets(2, 2,
		[]int{0, 1, 1},
		[]int{0, 1, 1},
		[]float64{0, 1, -1})
	require.Equal(t, 0, m.NNZ())
	require.Equal(t, 0.0, m.At(0, 0))
	require.Equal(t, 0.0, m.At(1, 1))
}

func TestFromTripletsPanics(t *testing.T) {
	require.Panics(t, func() {
		FromTriplets(2, 2, []int{0}, []int{0, 1}, []float64{1})
	})
	require.Panics(t, func() {
		FromTriplets(2, 2, []int{2}, []int{0}, []float64{1})
	})
	require.Panics(t, func() {
		FromTriplets(2, 2, []int{0}, []int{-1}, []float64{1})
	})
}

func TestNewColumn(t *testing.T) {
	m := NewColumn([]float64{1, 0, -2})
	rows, cols := m.Dims()
	require.Equal(t, 3, rows)
	require.Equal(t, 1, cols)
	require.Equal(t, 2, m.NNZ())
	require.Equal(t, 1.0, m.At(0, 0))
	require.Equal(t, 0.0, m.At(1, 0))
	require.Equal(t, -2.0, m.At(2, 0))
}

func TestAdd(t *testing.T) {
	a := FromTriplets(3, 2, []int{0, 1}, []int{0, 1}, []float64{1, 2})
	b := FromTriplets(3, 2, []int{1, 2}, []int{0, 1}, []float64{5, 7})
	sum := a.Add(b)
	require.Equal(t, 4, sum.NNZ())
	require.Equal(t, 1.0, sum.At(0, 0))
	require.Equal(t, 5.0, sum.At(1, 0))
	require.Equal(t, 2.0, sum.At(1, 1))
	require.Equal(t, 7.0, sum.At(2, 1))

	// Overlapping entries sum, cancellations are dropped.
	c := FromTriplets(3, 2, []int{0, 1}, []int{0, 1}, []float64{3, -2})
	sum = a.Add(c)
	require.Equal(t, 4.0, sum.At(0, 0))
	require.Equal(t, 0.0, sum.At(1, 1))
	require.Equal(t, 1, sum.NNZ())

	require.Panics(t, func() { a.Add(Zeros(2, 2)) })
}

func TestDense(t *testing.T) {
	m := FromTriplets(2, 2, []int{0, 1}, []int{1, 0}, []float64{3, 4})
	d := m.Dense()
	require.Equal(t, 0.0, d.At(0, 0))
	require.Equal(t, 3.0, d.At(0, 1))
	require.Equal(t, 4.0, d.At(1, 0))
	require.Equal(t, 0.0, d.At(1, 1))
}
