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

// List lifts an element codec over ordered sequences. Every element must
// decode; the first failing element's error is returned as-is and no
// partial result is produced. An empty sequence decodes to an empty slice.
func List[L, H any](c Codec[L, H]) Codec[[]L, []H] {
	return Codec[[]L, []H]{
		Mapping: NewMapping(
			func(ls []L) ([]H, error) {
				hs := make([]H, 0, len(ls))
				for _, l := range ls {
					h, err := c.Decode(l)
					if err != nil {
						return nil, err
					}
					hs = append(hs, h)
				}

				return hs, nil
			},
			func(hs []H) []L {
				ls := make([]L, 0, len(hs))
				for _, h := range hs {
					ls = append(ls, c.Encode(h))
				}

				return ls
			},
		),
		Schema: Schema{Title: c.Schema.Title, Description: c.Schema.Description},
		Format: c.Format,
	}
}

// Option lifts a codec over optional values: a nil low value decodes to a
// nil high value as a distinguished success, not a failure.
func Option[L, H any](c Codec[L, H]) Codec[*L, *H] {
	return Codec[*L, *H]{
		Mapping: NewMapping(
			func(l *L) (*H, error) {
				if l == nil {
					return nil, nil
				}

				h, err := c.Decode(*l)
				if err != nil {
					return nil, err
				}

				return &h, nil
			},
			func(h *H) *L {
				if h == nil {
					return nil
				}

				l := c.Encode(*h)

				return &l
			},
		),
		Schema: Schema{Title: c.Schema.Title, Description: c.Schema.Description},
		Format: c.Format,
	}
}

// ListFirst adapts a single-value codec to a multi-valued wire location
// that must carry exactly one value:
//
//   - zero values  → [ErrMissing] (correctable by a schema default)
//   - one value    → decoded with c
//   - more values  → [*MultipleError] carrying all of them
func ListFirst[L, H any](c Codec[L, H]) Codec[[]L, H] {
	return Codec[[]L, H]{
		Mapping: NewMapping(
			func(ls []L) (H, error) {
				var zero H
				switch len(ls) {
				case 0:
					return zero, ErrMissing
				case 1:
					return c.Decode(ls[0])
				default:
					values := make([]any, 0, len(ls))
					for _, l := range ls {
						values = append(values, l)
					}

					return zero, &MultipleError{Values: values}
				}
			},
			func(h H) []L {
				return []L{c.Encode(h)}
			},
		),
		Schema: Schema{Title: c.Schema.Title, Description: c.Schema.Description},
		Format: c.Format,
	}
}

// ListFirstOrNil is [ListFirst] with absence as a distinguished success:
// zero values decode to nil, and a nil value encodes to no values at all.
func ListFirstOrNil[L, H any](c Codec[L, H]) Codec[[]L, *H] {
	return Codec[[]L, *H]{
		Mapping: NewMapping(
			func(ls []L) (*H, error) {
				switch len(ls) {
				case 0:
					return nil, nil
				case 1:
					h, err := c.Decode(ls[0])
					if err != nil {
						return nil, err
					}

					return &h, nil
				default:
					values := make([]any, 0, len(ls))
					for _, l := range ls {
						values = append(values, l)
					}

					return nil, &MultipleError{Values: values}
				}
			},
			func(h *H) []L {
				if h == nil {
					return nil
				}

				return []L{c.Encode(*h)}
			},
		),
		Schema: Schema{Title: c.Schema.Title, Description: c.Schema.Description},
		Format: c.Format,
	}
}
