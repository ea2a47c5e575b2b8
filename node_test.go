// Copyright 2025 The Rivaas Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package endpoint

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// arityN builds a synthetic subtree of the given arity for carrier tests.
func arityN(n int) node {
	if n == 0 {
		return emptyEntity{}
	}
	var tree node = statusNode{}
	for i := 1; i < n; i++ {
		tree = newPair(tree, statusNode{})
	}

	return tree
}

// paramsOfArity builds a carrier with distinguishable values.
func paramsOfArity(n int, tag string) Params {
	vs := make([]any, 0, n)
	for i := 0; i < n; i++ {
		vs = append(vs, tag+string(rune('a'+i)))
	}

	return paramsFromFlat(vs)
}

func TestPairSplitCombine(t *testing.T) {
	t.Parallel()

	arities := []struct{ left, right int }{
		{0, 0}, {0, 1}, {1, 0}, {1, 1}, {2, 1}, {1, 3}, {2, 2}, {0, 4},
	}

	for _, tc := range arities {
		p := newPair(arityN(tc.left), arityN(tc.right))
		a := paramsOfArity(tc.left, "l")
		b := paramsOfArity(tc.right, "r")

		combined := p.combine(a, b)
		require.Equal(t, tc.left+tc.right, combined.arity())

		gotA, gotB := p.split(combined)
		assert.Equal(t, a.flatten(), gotA.flatten(), "left %d right %d", tc.left, tc.right)
		assert.Equal(t, b.flatten(), gotB.flatten(), "left %d right %d", tc.left, tc.right)
	}
}

func TestParamsShape(t *testing.T) {
	t.Parallel()

	t.Run("canonical by count", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, 0, paramsFromFlat(nil).arity())
		assert.Equal(t, 1, paramsFromFlat([]any{"x"}).arity())
		assert.Equal(t, 3, paramsFromFlat([]any{1, 2, 3}).arity())
	})

	t.Run("flatten round trips", func(t *testing.T) {
		t.Parallel()

		vs := []any{"a", 2, true}
		assert.Equal(t, vs, paramsFromFlat(vs).flatten())
		assert.Nil(t, noParams().flatten())
	})

	t.Run("single", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, 42, oneParam(42).single())
		assert.Panics(t, func() { noParams().single() })
	})
}

func TestUnitElision(t *testing.T) {
	t.Parallel()

	// A unit side must not change the other side's carrier shape.
	p := newPair(arityN(0), arityN(1))
	one := oneParam("v")

	combined := p.combine(noParams(), one)
	assert.Equal(t, 1, combined.arity())
	assert.Equal(t, "v", combined.single())

	left, right := p.split(combined)
	assert.Equal(t, 0, left.arity())
	assert.Equal(t, "v", right.single())
}
