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

	"rivaas.dev/endpoint/codec"
)

// Response describes how a value of type A is carried by an HTTP response:
// status code, headers and body. Servers interpret the description to
// build responses; clients interpret the same description to parse them.
type Response[A any] struct {
	tree   node
	pack   func(A) Params
	unpack func(Params) (A, error)
}

// leafResponse wraps a single-value node in a typed witness.
func leafResponse[T any](n node) Response[T] {
	return Response[T]{
		tree:   n,
		pack:   func(v T) Params { return oneParam(v) },
		unpack: func(ps Params) (T, error) { return ps.single().(T), nil },
	}
}

// unitResponse wraps a zero-value node in a typed witness.
func unitResponse(n node) Response[None] {
	return Response[None]{
		tree:   n,
		pack:   func(None) Params { return noParams() },
		unpack: func(Params) (None, error) { return None{}, nil },
	}
}

// ResponseBodyOf describes a response body decoded with c. The codec's
// format determines the advertised content type.
func ResponseBodyOf[T any](c codec.Codec[[]byte, T]) Response[T] {
	decode, encode := eraseBytes(c)

	return leafResponse[T](bytesBody{
		contentType: c.Format.ContentType(),
		decode:      decode,
		encode:      encode,
	})
}

// JSONResponse describes a JSON response body for T.
func JSONResponse[T any]() Response[T] {
	return ResponseBodyOf(codec.JSONOf[T]())
}

// TextResponse describes a plain text response body.
func TextResponse() Response[string] {
	return ResponseBodyOf(codec.TextPlain())
}

// BytesResponse describes a raw byte response body.
func BytesResponse() Response[[]byte] {
	return ResponseBodyOf(codec.Bytes())
}

// ReaderResponse describes a streamed response body passed through without
// buffering.
func ReaderResponse(contentType string) Response[io.Reader] {
	return leafResponse[io.Reader](streamBody{contentType: contentType})
}

// EmptyResponse describes a response with no interpreted entity. Whatever
// body is present is ignored when parsing and nothing is written when
// building.
func EmptyResponse() Response[None] {
	return unitResponse(emptyEntity{})
}

// VoidResponse describes a response that must never occur. Parsing always
// fails; use it as the failure side of endpoints that cannot fail.
func VoidResponse() Response[None] {
	return unitResponse(voidNode{})
}

// StatusCode captures the response status code as a value.
func StatusCode() Response[int] {
	return leafResponse[int](statusNode{})
}

// StatusOnly describes a response that is nothing but a fixed status code.
func StatusOnly(code int) Response[None] {
	return unitResponse(fixedStatus{code: code})
}

// Status pins a response description to one status code. Building sets the
// code; parsing fails with a mismatch if the received code differs.
func Status[A any](code int, r Response[A]) Response[A] {
	return LeadResponse(StatusOnly(code), r)
}

// OK pins a response description to 200.
func OK[A any](r Response[A]) Response[A] {
	return Status(http.StatusOK, r)
}

// ResponseHeader describes a required response header.
func ResponseHeader[T any](name string, c codec.Codec[string, T]) Response[T] {
	decode, encode := eraseMulti(exactlyOne(c))

	return leafResponse[T](headerField{name: name, decode: decode, encode: encode})
}

// OptResponseHeader describes an optional response header; absence decodes
// to nil.
func OptResponseHeader[T any](name string, c codec.Codec[string, T]) Response[*T] {
	decode, encode := eraseMulti(codec.ListFirstOrNil(c))

	return leafResponse[*T](headerField{name: name, decode: decode, encode: encode})
}

// ZipResponses concatenates two response descriptions into one carrying C,
// with combine/split as for [Zip].
func ZipResponses[A, B, C any](first Response[A], second Response[B], combine func(A, B) C, split func(C) (A, B)) Response[C] {
	p := newPair(first.tree, second.tree)

	return Response[C]{
		tree: p,
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

// Zip2Responses concatenates two response descriptions into a [Pair].
func Zip2Responses[A, B any](first Response[A], second Response[B]) Response[Pair[A, B]] {
	return ZipResponses(first, second,
		func(a A, b B) Pair[A, B] { return Pair[A, B]{First: a, Second: b} },
		func(p Pair[A, B]) (A, B) { return p.First, p.Second },
	)
}

// AndResponse appends a no-value description, keeping the left value type.
func AndResponse[A any](first Response[A], second Response[None]) Response[A] {
	return ZipResponses(first, second,
		func(a A, _ None) A { return a },
		func(a A) (A, None) { return a, None{} },
	)
}

// LeadResponse prepends a no-value description, keeping the right value
// type.
func LeadResponse[A any](first Response[None], second Response[A]) Response[A] {
	return ZipResponses(first, second,
		func(_ None, a A) A { return a },
		func(a A) (None, A) { return None{}, a },
	)
}

// MapResponse transforms the carried value with a bidirectional mapping,
// with the same failure semantics as [MapRequest].
func MapResponse[A, B any](r Response[A], m codec.Mapping[A, B]) Response[B] {
	return Response[B]{
		tree: r.tree,
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
