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

package codec

import (
	"fmt"

	"rivaas.dev/endpoint/validate"
)

// Mapping is a bidirectional, fallible transformation between a low wire
// representation L and a high typed value H.
//
// RawDecode may fail; Encode must be total. A Mapping has no mutable state
// and is freely shared across goroutines.
//
// Decode — the method callers use — wraps RawDecode with fault trapping and
// validation: any panic or out-of-taxonomy error becomes a [DecodeError],
// and a non-empty validator result converts success into an
// [InvalidValueError]. Failures short-circuit; validation runs only on
// successfully decoded values.
type Mapping[L, H any] struct {
	// RawDecode converts a wire value into a typed value. It may return any
	// of the taxonomy errors directly; other errors are wrapped.
	RawDecode func(L) (H, error)

	// Encode converts a typed value back to its wire representation.
	// It must not fail: an Encode that panics is a defect in the endpoint
	// description.
	Encode func(H) L

	// Validator runs on successfully decoded values. Nil accepts everything.
	Validator validate.Validator[H]
}

// NewMapping builds a Mapping from a decode and an encode function.
func NewMapping[L, H any](decode func(L) (H, error), encode func(H) L) Mapping[L, H] {
	return Mapping[L, H]{RawDecode: decode, Encode: encode}
}

// Decode converts a wire value into a typed value, applying fault trapping
// and validation.
//
// Errors:
//   - [ErrMissing]: no value present
//   - [*MultipleError]: more than one value where one is expected
//   - [*MismatchError]: value has the wrong shape
//   - [*InvalidValueError]: validator rejected the decoded value
//   - [*DecodeError]: underlying parse failure or trapped panic
func (m Mapping[L, H]) Decode(l L) (H, error) {
	h, err := m.tryRawDecode(l)
	if err != nil {
		return h, err
	}

	if fields := m.Validator.Validate(h); len(fields) > 0 {
		var zero H
		return zero, &InvalidValueError{Fields: fields}
	}

	return h, nil
}

// tryRawDecode runs RawDecode, trapping panics and normalizing
// out-of-taxonomy errors into [DecodeError].
func (m Mapping[L, H]) tryRawDecode(l L) (h H, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = &DecodeError{Original: originalString(l), Err: fmt.Errorf("panic: %v", r)}
		}
	}()

	h, err = m.RawDecode(l)
	if err != nil && !IsFailure(err) {
		err = &DecodeError{Original: originalString(l), Err: err}
	}

	return h, err
}

// Chain composes two mappings into a mapping from L to HH. Decoding runs
// the outer stage fully — including its validation — before the inner
// mapping is attempted; a failure in the outer stage is returned verbatim
// without invoking the inner one. Encoding composes in the opposite order.
//
// Chain is associative: Chain(Chain(a, b), c) and Chain(a, Chain(b, c))
// decode and encode identically.
func Chain[L, H, HH any](outer Mapping[L, H], inner Mapping[H, HH]) Mapping[L, HH] {
	return Mapping[L, HH]{
		RawDecode: func(l L) (HH, error) {
			h, err := outer.Decode(l)
			if err != nil {
				var zero HH
				return zero, err
			}

			return inner.tryRawDecode(h)
		},
		Encode: func(hh HH) L {
			return outer.Encode(inner.Encode(hh))
		},
		Validator: inner.Validator,
	}
}
