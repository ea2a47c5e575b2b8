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

// node is one vertex of a description tree. The tree is the single source
// of truth for every interpretation of a description: building outgoing
// requests, parsing incoming requests, building responses and parsing them.
//
// A node's arity is the number of erased values it contributes to the
// [Params] carrier. Leaves contribute 0 or 1; a pair contributes the sum of
// its children.
type node interface {
	arity() int
}

// staticSegment is a literal path segment. Contributes no values.
type staticSegment struct {
	value string
}

func (staticSegment) arity() int { return 0 }

// pathCapture is a named path variable decoded from a single raw segment.
type pathCapture struct {
	name   string
	decode func(string) (any, error)
	encode func(any) string
}

func (pathCapture) arity() int { return 1 }

// queryParam is a named query string parameter. The raw shape is the full
// multi-value slice for the name; cardinality rules (exactly one, optional,
// repeated) live in the attached codec.
type queryParam struct {
	name   string
	decode func([]string) (any, error)
	encode func(any) []string
}

func (queryParam) arity() int { return 1 }

// headerField is a named header, usable in request and response trees
// alike. Raw shape as for queryParam.
type headerField struct {
	name   string
	decode func([]string) (any, error)
	encode func(any) []string
}

func (headerField) arity() int { return 1 }

// cookieField is a named request cookie. The raw shape is normalized to the
// multi-value slice form so the same cardinality codecs apply.
type cookieField struct {
	name   string
	decode func([]string) (any, error)
	encode func(any) []string
}

func (cookieField) arity() int { return 1 }

// bytesBody is an in-memory entity body with a fixed content type.
type bytesBody struct {
	contentType string
	decode      func([]byte) (any, error)
	encode      func(any) []byte
}

func (bytesBody) arity() int { return 1 }

// streamBody is an entity body passed through as an io.Reader without
// buffering. The carried value is the reader itself.
type streamBody struct {
	contentType string
}

func (streamBody) arity() int { return 1 }

// emptyEntity describes the absence of an entity. Parsing ignores whatever
// is present; building writes nothing.
type emptyEntity struct{}

func (emptyEntity) arity() int { return 0 }

// voidNode describes a response that must never occur. Parsing always
// fails; building panics.
type voidNode struct{}

func (voidNode) arity() int { return 0 }

// fixedStatus pins a response to one status code. Building sets it; parsing
// verifies it.
type fixedStatus struct {
	code int
}

func (fixedStatus) arity() int { return 0 }

// statusNode carries the response status code as a value.
type statusNode struct{}

func (statusNode) arity() int { return 1 }

// pairNode concatenates two descriptions. It records the child arities at
// construction time so that combining and splitting carriers are exact
// inverses: split(combine(a, b)) == (a, b) whenever a and b have the
// recorded arities.
type pairNode struct {
	first, second   node
	nFirst, nSecond int
}

// newPair builds a pair over two subtrees, capturing their arities.
func newPair(first, second node) *pairNode {
	return &pairNode{
		first:   first,
		second:  second,
		nFirst:  first.arity(),
		nSecond: second.arity(),
	}
}

func (p *pairNode) arity() int { return p.nFirst + p.nSecond }

// combine merges the carriers of the two children. A Unit side is elided so
// that zipping a no-value description never changes the other side's shape.
func (p *pairNode) combine(a, b Params) Params {
	switch {
	case p.nFirst == 0:
		return b
	case p.nSecond == 0:
		return a
	default:
		flat := make([]any, 0, p.nFirst+p.nSecond)
		flat = append(flat, a.flatten()...)
		flat = append(flat, b.flatten()...)

		return paramsFromFlat(flat)
	}
}

// split is the exact inverse of combine for carriers of the recorded
// arities.
func (p *pairNode) split(c Params) (Params, Params) {
	switch {
	case p.nFirst == 0:
		return noParams(), c
	case p.nSecond == 0:
		return c, noParams()
	default:
		flat := c.flatten()

		return paramsFromFlat(flat[:p.nFirst]), paramsFromFlat(flat[p.nFirst:])
	}
}
