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

// Package msgpack provides a MessagePack body codec for endpoint
// descriptions.
//
// This package extends rivaas.dev/endpoint/codec with MessagePack payload
// support, using github.com/vmihailenco/msgpack/v5 for parsing.
//
// Example:
//
//	type Message struct {
//	    ID      int64  `msgpack:"id"`
//	    Content string `msgpack:"content"`
//	}
//
//	body := endpoint.BodyOf(msgpack.Of[Message]())
package msgpack

import (
	"bytes"
	"fmt"
	"io"

	"github.com/vmihailenco/msgpack/v5"

	"rivaas.dev/endpoint/codec"
)

// Option configures MessagePack codec behavior.
type Option func(*config)

// config holds MessagePack-specific codec configuration.
type config struct {
	useJSONTag      bool
	disallowUnknown bool
}

// WithJSONTag enables using JSON struct tags for field names.
// By default, msgpack struct tags are used.
func WithJSONTag() Option {
	return func(c *config) {
		c.useJSONTag = true
	}
}

// WithDisallowUnknown enables strict decoding that fails when the payload
// contains fields not present in the target struct.
func WithDisallowUnknown() Option {
	return func(c *config) {
		c.disallowUnknown = true
	}
}

// Of returns a body codec that decodes MessagePack payloads into T.
//
// Errors:
//   - [codec.ErrMissing]: the payload is empty
//   - [*codec.DecodeError]: the payload is not valid MessagePack for T
func Of[T any](opts ...Option) codec.Codec[[]byte, T] {
	cfg := &config{}
	for _, opt := range opts {
		opt(cfg)
	}

	return codec.Codec[[]byte, T]{
		Mapping: codec.NewMapping(
			func(b []byte) (T, error) {
				var value T
				if len(b) == 0 {
					return value, codec.ErrMissing
				}
				if err := decode(bytes.NewReader(b), &value, cfg); err != nil {
					return value, &codec.DecodeError{Original: fmt.Sprintf("%x", b), Err: err}
				}

				return value, nil
			},
			func(value T) []byte {
				b, err := encode(value, cfg)
				if err != nil {
					panic(fmt.Sprintf("msgpack: encode of %T failed: %v", value, err))
				}

				return b
			},
		),
		Format: codec.FormatMsgPack,
	}
}

// decode configures a decoder per the codec options and decodes into out.
func decode(r io.Reader, out any, cfg *config) error {
	dec := msgpack.NewDecoder(r)
	if cfg.useJSONTag {
		dec.SetCustomStructTag("json")
	}
	if cfg.disallowUnknown {
		dec.DisallowUnknownFields(true)
	}

	return dec.Decode(out)
}

// encode configures an encoder per the codec options and marshals value.
func encode(value any, cfg *config) ([]byte, error) {
	var buf bytes.Buffer
	enc := msgpack.NewEncoder(&buf)
	if cfg.useJSONTag {
		enc.SetCustomStructTag("json")
	}
	if err := enc.Encode(value); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}
