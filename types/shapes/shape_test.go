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

package shapes

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestShape(t *testing.T) {
	invalidShape := Shape{}
	require.False(t, invalidShape.Ok())

	shape0 := Scalar()
	require.True(t, shape0.Ok())
	require.True(t, shape0.IsScalar())
	require.Equal(t, 1, shape0.Size())

	shape1 := Make(4, 3)
	require.True(t, shape1.Ok())
	require.False(t, shape1.IsScalar())
	require.Equal(t, 4, shape1.Rows)
	require.Equal(t, 3, shape1.Cols)
	require.Equal(t, 12, shape1.Size())
	require.Equal(t, "(4, 3)", shape1.String())

	require.True(t, shape1.Equal(Make(4, 3)))
	require.False(t, shape1.Equal(Make(3, 4)))
	require.Equal(t, shape1, shape1.Shape())
}

func TestMakePanics(t *testing.T) {
	require.Panics(t, func() { _ = Make(0, 3) })
	require.Panics(t, func() { _ = Make(3, 0) })
	require.Panics(t, func() { _ = Make(-1, 1) })
}
