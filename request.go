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
	"io"
	"net/http"
	"strings"

	"rivaas.dev/endpoint/codec"
)

// Request describes how a value of type A is carried by an HTTP request:
// which path segments, query parameters, headers, cookies and body encode
// it, and how to recover it from an incoming request.
//
// A Request is a typed witness over an erased description tree. The pack
// and unpack closures are created where A is statically known, so no
// interpretation step ever needs a type assertion against unknown types.
//
// Requests are immutable values; combinators return new ones.
type Request[A any] struct {
	method string
	tree   node
	pack   func(A) Params
	unpack func(Params) (A, error)
}

// leafRequest wraps a single-value node in a typed witness.
func leafRequest[T any](n node) Request[T] {
	return Request[T]{
		tree:   n,
		pack:   func(v T) Params { return oneParam(v) },
		unpack: func(ps Params) (T, error) { return ps.single().(T), nil },
	}
}

// unitRequest wraps a zero-value node in a typed witness.
func unitRequest(n node) Request[None] {
	return Request[None]{
		tree:   n,
		pack:   func(None) Params { return noParams() },
		unpack: func(Params) (None, error) { return None{}, nil },
	}
}

// Method fixes the HTTP method of a request description.
func Method[A any](method string, r Request[A]) Request[A] {
	r.method = method
	return r
}

// Get fixes the method to GET.
func Get[A any](r Request[A]) Request[A] { return Method(http.MethodGet, r) }

// Post fixes the method to POST.
func Post[A any](r Request[A]) Request[A] { return Method(http.MethodPost, r) }

// Put fixes the method to PUT.
func Put[A any](r Request[A]) Request[A] { return Method(http.MethodPut, r) }

// Patch fixes the method to PATCH.
func Patch[A any](r Request[A]) Request[A] { return Method(http.MethodPatch, r) }

// Delete fixes the method to DELETE.
func Delete[A any](r Request[A]) Request[A] { return Method(http.MethodDelete, r) }

// Root describes the bare root path with no captured values.
func Root() Request[None] {
	return unitRequest(emptyEntity{})
}

// Static describes one or more literal path segments. The path is split on
// "/"; empty segments are dropped, so Static("/users/all") and
// Static("users/all") are the same description.
func Static(path string) Request[None] {
	var tree node
	for _, seg := range strings.Split(path, "/") {
		if seg == "" {
			continue
		}
		s := staticSegment{value: seg}
		if tree == nil {
			tree = s
		} else {
			tree = newPair(tree, s)
		}
	}
	if tree == nil {
		tree = emptyEntity{}
	}

	return unitRequest(tree)
}

// Segment describes a single literal path segment.
func Segment(value string) Request[None] {
	return unitRequest(staticSegment{value: value})
}

// PathVar describes a named path variable decoded with c.
//
// Example:
//
//	userByID := endpoint.Get(endpoint.Lead(
//	    endpoint.Static("users"),
//	    endpoint.PathVar("id", codec.Int()),
//	))
func PathVar[T any](name string, c codec.Codec[string, T]) Request[T] {
	decode, encode := eraseSingle(c)

	return leafRequest[T](pathCapture{name: name, decode: decode, encode: encode})
}

// Query describes a required query parameter. A declared codec default
// makes the parameter optional with that fallback; more than one occurrence
// is rejected.
func Query[T any](name string, c codec.Codec[string, T]) Request[T] {
	decode, encode := eraseMulti(exactlyOne(c))

	return leafRequest[T](queryParam{name: name, decode: decode, encode: encode})
}

// OptQuery describes an optional query parameter; absence decodes to nil.
func OptQuery[T any](name string, c codec.Codec[string, T]) Request[*T] {
	decode, encode := eraseMulti(codec.ListFirstOrNil(c))

	return leafRequest[*T](queryParam{name: name, decode: decode, encode: encode})
}

// QueryAll describes a repeated query parameter; every occurrence must
// decode. Zero occurrences decode to an empty slice.
func QueryAll[T any](name string, c codec.Codec[string, T]) Request[[]T] {
	decode, encode := eraseMulti(codec.List(c))

	return leafRequest[[]T](queryParam{name: name, decode: decode, encode: encode})
}

// Header describes a required request header. A declared codec default
// makes the header optional with that fallback.
func Header[T any](name string, c codec.Codec[string, T]) Request[T] {
	decode, encode := eraseMulti(exactlyOne(c))

	return leafRequest[T](headerField{name: name, decode: decode, encode: encode})
}

// OptHeader describes an optional request header; absence decodes to nil.
func OptHeader[T any](name string, c codec.Codec[string, T]) Request[*T] {
	decode, encode := eraseMulti(codec.ListFirstOrNil(c))

	return leafRequest[*T](headerField{name: name, decode: decode, encode: encode})
}

// Cookie describes a required request cookie. A declared codec default
// makes the cookie optional with that fallback.
func Cookie[T any](name string, c codec.Codec[string, T]) Request[T] {
	decode, encode := eraseMulti(exactlyOne(c))

	return leafRequest[T](cookieField{name: name, decode: decode, encode: encode})
}

// OptCookie describes an optional request cookie; absence decodes to nil.
func OptCookie[T any](name string, c codec.Codec[string, T]) Request[*T] {
	decode, encode := eraseMulti(codec.ListFirstOrNil(c))

	return leafRequest[*T](cookieField{name: name, decode: decode, encode: encode})
}

// BodyOf describes an in-memory request body decoded with c. The codec's
// format determines the advertised content type.
func BodyOf[T any](c codec.Codec[[]byte, T]) Request[T] {
	decode, encode := eraseBytes(c)

	return leafRequest[T](bytesBody{
		contentType: c.Format.ContentType(),
		decode:      decode,
		encode:      encode,
	})
}

// JSONBody describes a JSON request body for T.
func JSONBody[T any]() Request[T] {
	return BodyOf(codec.JSONOf[T]())
}

// TextBody describes a plain text request body.
func TextBody() Request[string] {
	return BodyOf(codec.TextPlain())
}

// BytesBody describes a raw byte request body.
func BytesBody() Request[[]byte] {
	return BodyOf(codec.Bytes())
}

// ReaderBody describes a streamed request body passed through without
// buffering.
func ReaderBody(contentType string) Request[io.Reader] {
	return leafRequest[io.Reader](streamBody{contentType: contentType})
}

// Zip concatenates two request descriptions into one carrying C. The
// combine function merges the two parsed values; split is its inverse,
// used when building outgoing requests. The method is taken from whichever
// side has one fixed.
func Zip[A, B, C any](first Request[A], second Request[B], combine func(A, B) C, split func(C) (A, B)) Request[C] {
	p := newPair(first.tree, second.tree)

	return Request[C]{
		method: pickMethod(first.method, second.method),
		tree:   p,
		pack: func(c C) Params {
			a, b := split(c)

			return p.combine(first.pack(a), second.pack(b))
		},
		unpack: func(ps Params) (C, error) {
			var zero C
			pa, pb := p.split(ps)

			a, err := first.unpack(pa)
			if err != nil {
				return zero, err
			}
			b, err := second.unpack(pb)
			if err != nil {
				return zero, err
			}

			return combine(a, b), nil
		},
	}
}

// Zip2 concatenates two request descriptions into a [Pair].
func Zip2[A, B any](first Request[A], second Request[B]) Request[Pair[A, B]] {
	return Zip(first, second,
		func(a A, b B) Pair[A, B] { return Pair[A, B]{First: a, Second: b} },
		func(p Pair[A, B]) (A, B) { return p.First, p.Second },
	)
}

// And appends a no-value description, keeping the left value type.
func And[A any](first Request[A], second Request[None]) Request[A] {
	return Zip(first, second,
		func(a A, _ None) A { return a },
		func(a A) (A, None) { return a, None{} },
	)
}

// Lead prepends a no-value description, keeping the right value type.
func Lead[A any](first Request[None], second Request[A]) Request[A] {
	return Zip(first, second,
		func(_ None, a A) A { return a },
		func(a A) (None, A) { return None{}, a },
	)
}

// MapRequest transforms the carried value with a bidirectional mapping. A
// mapping failure during parsing surfaces through the usual decode failure
// taxonomy, including panic trapping.
func MapRequest[A, B any](r Request[A], m codec.Mapping[A, B]) Request[B] {
	return Request[B]{
		method: r.method,
		tree:   r.tree,
		pack: func(b B) Params {
			return r.pack(m.Encode(b))
		},
		unpack: func(ps Params) (B, error) {
			var zero B
			a, err := r.unpack(ps)
			if err != nil {
				return zero, err
			}

			return m.Decode(a)
		},
	}
}

// pickMethod keeps the first fixed method when zipping.
func pickMethod(a, b string) string {
	if a != "" {
		return a
	}

	return b
}

// exactlyOne is the required-single-value cardinality over a raw
// multi-value location, with the element codec's default carried up so it
// can correct absence.
func exactlyOne[T any](c codec.Codec[string, T]) codec.Codec[[]string, T] {
	lc := codec.ListFirst(c)
	lc.Schema.Default = c.Schema.Default
	lc.Schema.HasDefault = c.Schema.HasDefault

	return lc
}

// eraseSingle converts a typed single-value codec into erased closures for
// a description leaf.
func eraseSingle[T any](c codec.Codec[string, T]) (func(string) (any, error), func(any) string) {
	return func(raw string) (any, error) {
			v, err := c.Decode(raw)
			if err != nil {
				return nil, err
			}

			return v, nil
		},
		func(v any) string { return c.Encode(v.(T)) }
}

// eraseMulti converts a typed multi-value codec into erased closures.
func eraseMulti[T any](c codec.Codec[[]string, T]) (func([]string) (any, error), func(any) []string) {
	return func(raw []string) (any, error) {
			v, err := c.Decode(raw)
			if err != nil {
				return nil, err
			}

			return v, nil
		},
		func(v any) []string { return c.Encode(v.(T)) }
}

// eraseBytes converts a typed body codec into erased closures.
func eraseBytes[T any](c codec.Codec[[]byte, T]) (func([]byte) (any, error), func(any) []byte) {
	return func(raw []byte) (any, error) {
			v, err := c.Decode(raw)
			if err != nil {
				return nil, err
			}

			return v, nil
		},
		func(v any) []byte { return c.Encode(v.(T)) }
}
