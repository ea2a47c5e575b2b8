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

// None is the value type of descriptions that carry no information, such as
// a static path segment. Combinators elide None sides, so zipping a None
// description onto another never changes the other's value type shape.
type None struct{}

// Pair is the generic product used by [Zip2] when no custom combine/split
// functions are supplied.
type Pair[A, B any] struct {
	First  A
	Second B
}

// paramsKind discriminates the three shapes a Params value can take.
type paramsKind int

const (
	unitParams paramsKind = iota // no values
	oneParams                    // exactly one value
	listParams                   // two or more values, in tree order
)

// Params is the erased value carrier threaded through description trees
// during parsing and building. A Params is Unit (no values), One (a single
// erased value) or List (two or more, ordered left to right).
//
// The shape is fully determined by the carrying node's arity: arity 0 is
// always Unit, arity 1 always One, arity n>1 always List of length n. The
// typed witnesses created by the description DSL rely on this invariant to
// reassemble values without reflection.
type Params struct {
	kind paramsKind
	one  any
	list []any
}

// noParams is the Unit carrier.
func noParams() Params {
	return Params{kind: unitParams}
}

// oneParam wraps a single erased value.
func oneParam(v any) Params {
	return Params{kind: oneParams, one: v}
}

// paramsFromFlat rebuilds the canonical carrier for a flat value sequence.
func paramsFromFlat(vs []any) Params {
	switch len(vs) {
	case 0:
		return noParams()
	case 1:
		return oneParam(vs[0])
	default:
		return Params{kind: listParams, list: vs}
	}
}

// arity returns the number of values carried.
func (p Params) arity() int {
	switch p.kind {
	case unitParams:
		return 0
	case oneParams:
		return 1
	default:
		return len(p.list)
	}
}

// flatten returns the carried values as a flat sequence in tree order.
func (p Params) flatten() []any {
	switch p.kind {
	case unitParams:
		return nil
	case oneParams:
		return []any{p.one}
	default:
		return p.list
	}
}

// single returns the value of a One carrier. Calling single on any other
// shape is a defect in a tree walk, not a runtime condition.
func (p Params) single() any {
	if p.kind != oneParams {
		panic("endpoint: params carrier is not single-valued")
	}

	return p.one
}
