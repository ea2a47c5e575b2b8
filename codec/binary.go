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

// Bytes is the identity codec for raw byte payloads.
func Bytes() Codec[[]byte, []byte] {
	return Codec[[]byte, []byte]{
		Mapping: NewMapping(
			func(b []byte) ([]byte, error) { return b, nil },
			func(b []byte) []byte { return b },
		),
		Format: FormatBinary,
	}
}

// TextPlain decodes byte payloads as UTF-8 text.
func TextPlain() Codec[[]byte, string] {
	return Codec[[]byte, string]{
		Mapping: NewMapping(
			func(b []byte) (string, error) { return string(b), nil },
			func(s string) []byte { return []byte(s) },
		),
		Format: FormatText,
	}
}
