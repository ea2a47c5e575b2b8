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
	"strconv"
	"time"

	"github.com/google/uuid"
)

// String is the identity codec for text values.
func String() Codec[string, string] {
	return Codec[string, string]{
		Mapping: NewMapping(
			func(s string) (string, error) { return s, nil },
			func(s string) string { return s },
		),
		Format: FormatText,
	}
}

// Int decodes decimal integers.
//
// Example:
//
//	id := endpoint.PathVar("id", codec.Int())
func Int() Codec[string, int] {
	return Codec[string, int]{
		Mapping: NewMapping(
			func(s string) (int, error) {
				n, err := strconv.Atoi(s)
				if err != nil {
					return 0, &MismatchError{Expected: "integer", Actual: s}
				}

				return n, nil
			},
			strconv.Itoa,
		),
		Format: FormatText,
	}
}

// Int64 decodes decimal 64-bit integers.
func Int64() Codec[string, int64] {
	return Codec[string, int64]{
		Mapping: NewMapping(
			func(s string) (int64, error) {
				n, err := strconv.ParseInt(s, 10, 64)
				if err != nil {
					return 0, &MismatchError{Expected: "integer", Actual: s}
				}

				return n, nil
			},
			func(n int64) string { return strconv.FormatInt(n, 10) },
		),
		Format: FormatText,
	}
}

// Float64 decodes decimal floating point numbers.
func Float64() Codec[string, float64] {
	return Codec[string, float64]{
		Mapping: NewMapping(
			func(s string) (float64, error) {
				f, err := strconv.ParseFloat(s, 64)
				if err != nil {
					return 0, &MismatchError{Expected: "number", Actual: s}
				}

				return f, nil
			},
			func(f float64) string { return strconv.FormatFloat(f, 'g', -1, 64) },
		),
		Format: FormatText,
	}
}

// Bool decodes boolean values. Accepted spellings are those of
// strconv.ParseBool: 1, t, T, TRUE, true, True, 0, f, F, FALSE, false, False.
func Bool() Codec[string, bool] {
	return Codec[string, bool]{
		Mapping: NewMapping(
			func(s string) (bool, error) {
				b, err := strconv.ParseBool(s)
				if err != nil {
					return false, &MismatchError{Expected: "boolean", Actual: s}
				}

				return b, nil
			},
			strconv.FormatBool,
		),
		Format: FormatText,
	}
}

// UUID decodes RFC 4122 UUIDs.
func UUID() Codec[string, uuid.UUID] {
	return Codec[string, uuid.UUID]{
		Mapping: NewMapping(
			func(s string) (uuid.UUID, error) {
				u, err := uuid.Parse(s)
				if err != nil {
					return uuid.UUID{}, &MismatchError{Expected: "uuid", Actual: s}
				}

				return u, nil
			},
			func(u uuid.UUID) string { return u.String() },
		),
		Format: FormatText,
	}
}

// Time decodes timestamps using the given layout. Use time.RFC3339 unless
// the wire format dictates otherwise.
func Time(layout string) Codec[string, time.Time] {
	return Codec[string, time.Time]{
		Mapping: NewMapping(
			func(s string) (time.Time, error) {
				t, err := time.Parse(layout, s)
				if err != nil {
					return time.Time{}, &MismatchError{Expected: "timestamp (" + layout + ")", Actual: s}
				}

				return t, nil
			},
			func(t time.Time) string { return t.Format(layout) },
		),
		Format: FormatText,
	}
}

// Duration decodes Go duration strings such as "1h30m" or "500ms".
func Duration() Codec[string, time.Duration] {
	return Codec[string, time.Duration]{
		Mapping: NewMapping(
			func(s string) (time.Duration, error) {
				d, err := time.ParseDuration(s)
				if err != nil {
					return 0, &MismatchError{Expected: "duration", Actual: s}
				}

				return d, nil
			},
			func(d time.Duration) string { return d.String() },
		),
		Format: FormatText,
	}
}
