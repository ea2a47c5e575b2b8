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
	"errors"
	"fmt"
	"strconv"

	"rivaas.dev/endpoint/codec"
)

// parseRequest walks a request tree against an incoming request, producing
// the erased carrier for the whole tree. The first failing leaf
// short-circuits the walk; leaf failures are annotated with the wire
// location they came from, preserving the underlying taxonomy error for
// errors.Is and errors.As.
func parseRequest(n node, src RequestSource) (Params, error) {
	switch t := n.(type) {
	case *pairNode:
		a, err := parseRequest(t.first, src)
		if err != nil {
			return Params{}, err
		}
		b, err := parseRequest(t.second, src)
		if err != nil {
			return Params{}, err
		}

		return t.combine(a, b), nil
	case staticSegment:
		// matched by the router before the parser runs
		return noParams(), nil
	case pathCapture:
		raw, ok := src.PathVar(t.name)
		if !ok {
			return Params{}, fmt.Errorf("path parameter %q: %w", t.name, codec.ErrMissing)
		}
		v, err := t.decode(raw)
		if err != nil {
			return Params{}, fmt.Errorf("path parameter %q: %w", t.name, err)
		}

		return oneParam(v), nil
	case queryParam:
		v, err := t.decode(src.QueryValues(t.name))
		if err != nil {
			return Params{}, fmt.Errorf("query parameter %q: %w", t.name, err)
		}

		return oneParam(v), nil
	case headerField:
		v, err := t.decode(src.HeaderValues(t.name))
		if err != nil {
			return Params{}, fmt.Errorf("header %q: %w", t.name, err)
		}

		return oneParam(v), nil
	case cookieField:
		var raw []string
		if value, ok := src.Cookie(t.name); ok {
			raw = []string{value}
		}
		v, err := t.decode(raw)
		if err != nil {
			return Params{}, fmt.Errorf("cookie %q: %w", t.name, err)
		}

		return oneParam(v), nil
	case bytesBody:
		b, err := src.BodyBytes()
		if err != nil {
			return Params{}, fmt.Errorf("request body: %w", err)
		}
		v, err := t.decode(b)
		if err != nil {
			return Params{}, fmt.Errorf("request body: %w", err)
		}

		return oneParam(v), nil
	case streamBody:
		r, err := src.BodyReader()
		if err != nil {
			return Params{}, fmt.Errorf("request body: %w", err)
		}

		return oneParam(r), nil
	case emptyEntity:
		return noParams(), nil
	default:
		panic(fmt.Sprintf("endpoint: node %T is not valid in a request tree", n))
	}
}

// parseResponse walks a response tree against a received response.
func parseResponse(n node, src ResponseSource) (Params, error) {
	switch t := n.(type) {
	case *pairNode:
		a, err := parseResponse(t.first, src)
		if err != nil {
			return Params{}, err
		}
		b, err := parseResponse(t.second, src)
		if err != nil {
			return Params{}, err
		}

		return t.combine(a, b), nil
	case fixedStatus:
		if got := src.StatusCode(); got != t.code {
			return Params{}, &codec.MismatchError{
				Expected: "status " + strconv.Itoa(t.code),
				Actual:   strconv.Itoa(got),
			}
		}

		return noParams(), nil
	case statusNode:
		return oneParam(src.StatusCode()), nil
	case headerField:
		v, err := t.decode(src.HeaderValues(t.name))
		if err != nil {
			return Params{}, fmt.Errorf("header %q: %w", t.name, err)
		}

		return oneParam(v), nil
	case bytesBody:
		b, err := src.BodyBytes()
		if err != nil {
			return Params{}, fmt.Errorf("response body: %w", err)
		}
		v, err := t.decode(b)
		if err != nil {
			return Params{}, fmt.Errorf("response body: %w", err)
		}

		return oneParam(v), nil
	case streamBody:
		r, err := src.BodyReader()
		if err != nil {
			return Params{}, fmt.Errorf("response body: %w", err)
		}

		return oneParam(r), nil
	case emptyEntity:
		return noParams(), nil
	case voidNode:
		return Params{}, &codec.DecodeError{
			Original: "status " + strconv.Itoa(src.StatusCode()),
			Err:      errors.New("void response cannot be decoded"),
		}
	default:
		panic(fmt.Sprintf("endpoint: node %T is not valid in a response tree", n))
	}
}
