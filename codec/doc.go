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

// Package codec provides bidirectional, fallible mappings between wire
// representations and typed values.
//
// A [Mapping] pairs a fallible decode with a total encode and an optional
// validator. A [Codec] is a Mapping plus structural metadata ([Schema]) and
// a wire [Format] tag. Both compose: [Chain] stacks mappings, [Then] extends
// a codec with a further mapping while keeping its format.
//
// Decoding never panics and never throws: failures are structured error
// values ([ErrMissing], [MultipleError], [MismatchError],
// [InvalidValueError], [DecodeError]) returned through ordinary error
// returns. Panics raised by user decode functions are trapped at the
// mapping boundary and converted into a [DecodeError] carrying the original
// raw value.
//
// Encoding is total by construction: an encode function that fails is a
// defect in the endpoint description, not a modeled error.
//
// Example:
//
//	userID := codec.Int().WithValidator(validate.Min(1))
//	id, err := userID.Decode("42")
//
// Body codecs for additional formats live in subpackages (yaml, toml,
// msgpack, proto), mirroring how this module family packages per-format
// support.
package codec
