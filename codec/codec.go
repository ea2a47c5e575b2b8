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
	"errors"

	"rivaas.dev/endpoint/validate"
)

// Format tags the wire format a codec produces and consumes. The value is
// the media type an adapter should advertise for payloads of this codec.
type Format string

// Built-in format tags.
const (
	FormatText    Format = "text/plain"
	FormatJSON    Format = "application/json"
	FormatBinary  Format = "application/octet-stream"
	FormatYAML    Format = "application/yaml"
	FormatTOML    Format = "application/toml"
	FormatMsgPack Format = "application/msgpack"
	FormatProto   Format = "application/x-protobuf"
)

// ContentType returns the media type for this format.
func (f Format) ContentType() string {
	return string(f)
}

// Schema carries structural and documentation metadata for a codec. It
// rides on the codec value itself; there is no ambient registry.
type Schema struct {
	Title       string // Short name for documentation
	Description string // Longer description for documentation
	Default     any    // Default substituted for a missing value
	HasDefault  bool   // Whether Default is set (distinguishes nil defaults)
}

// Codec is a [Mapping] with an attached [Schema] and wire [Format].
//
// Codec adds exactly one behavior over Mapping: when decoding fails with
// [ErrMissing] and the schema declares a default, the default is
// substituted. Everything else — fault trapping, validation, composition —
// is the Mapping contract.
type Codec[L, H any] struct {
	Mapping[L, H]

	Schema Schema
	Format Format
}

// Decode converts a wire value into a typed value, substituting the schema
// default for a missing value when one is declared.
func (c Codec[L, H]) Decode(l L) (H, error) {
	h, err := c.Mapping.Decode(l)
	if err != nil && errors.Is(err, ErrMissing) && c.Schema.HasDefault {
		if def, ok := c.Schema.Default.(H); ok {
			return def, nil
		}
	}

	return h, err
}

// WithFormat relabels the codec with a different format tag. The bytes are
// unchanged; use this when the same representation is legal under more than
// one content type.
func (c Codec[L, H]) WithFormat(f Format) Codec[L, H] {
	c.Format = f
	return c
}

// WithDefault declares a default value substituted when decoding finds no
// value at the wire location.
//
// Example:
//
//	page := endpoint.Query("page", codec.Int().WithDefault(1))
func (c Codec[L, H]) WithDefault(def H) Codec[L, H] {
	c.Schema.Default = def
	c.Schema.HasDefault = true

	return c
}

// WithDocs attaches a title and description used by documentation
// generators. Decoding behavior is unchanged.
func (c Codec[L, H]) WithDocs(title, description string) Codec[L, H] {
	c.Schema.Title = title
	c.Schema.Description = description

	return c
}

// WithValidator attaches a validator, combined with any existing one; all
// violations from every attached validator are reported together.
func (c Codec[L, H]) WithValidator(v validate.Validator[H]) Codec[L, H] {
	if c.Mapping.Validator == nil {
		c.Mapping.Validator = v
	} else {
		c.Mapping.Validator = c.Mapping.Validator.And(v)
	}

	return c
}

// Then extends a codec with a further mapping, producing a codec from L to
// HH. The codec's decode — including default substitution — runs first and
// must fully succeed before the mapping is attempted. Schema documentation
// carries over; the default does not, since it described type H.
func Then[L, H, HH any](c Codec[L, H], m Mapping[H, HH]) Codec[L, HH] {
	return Codec[L, HH]{
		Mapping: Mapping[L, HH]{
			RawDecode: func(l L) (HH, error) {
				h, err := c.Decode(l)
				if err != nil {
					var zero HH
					return zero, err
				}

				return m.tryRawDecode(h)
			},
			Encode: func(hh HH) L {
				return c.Encode(m.Encode(hh))
			},
			Validator: m.Validator,
		},
		Schema: Schema{Title: c.Schema.Title, Description: c.Schema.Description},
		Format: c.Format,
	}
}
