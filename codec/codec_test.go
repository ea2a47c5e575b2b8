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
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rivaas.dev/endpoint/validate"
)

func TestCodecDefault(t *testing.T) {
	t.Parallel()

	t.Run("substituted for missing value", func(t *testing.T) {
		t.Parallel()

		page := ListFirst(Int()).WithDefault(1)

		n, err := page.Decode(nil)
		require.NoError(t, err)
		assert.Equal(t, 1, n)
	})

	t.Run("missing without default fails", func(t *testing.T) {
		t.Parallel()

		_, err := ListFirst(Int()).Decode(nil)
		assert.ErrorIs(t, err, ErrMissing)
	})

	t.Run("present value wins over default", func(t *testing.T) {
		t.Parallel()

		page := ListFirst(Int()).WithDefault(1)

		n, err := page.Decode([]string{"7"})
		require.NoError(t, err)
		assert.Equal(t, 7, n)
	})

	t.Run("default does not mask a malformed value", func(t *testing.T) {
		t.Parallel()

		page := ListFirst(Int()).WithDefault(1)

		_, err := page.Decode([]string{"abc"})
		var mismatch *MismatchError
		assert.ErrorAs(t, err, &mismatch)
	})
}

func TestCodecWith(t *testing.T) {
	t.Parallel()

	t.Run("format relabel leaves decoding unchanged", func(t *testing.T) {
		t.Parallel()

		csv := String().WithFormat("text/csv")
		assert.Equal(t, "text/csv", csv.Format.ContentType())

		s, err := csv.Decode("a,b,c")
		require.NoError(t, err)
		assert.Equal(t, "a,b,c", s)
	})

	t.Run("docs attach without behavior change", func(t *testing.T) {
		t.Parallel()

		c := Int().WithDocs("page", "page number, 1-based")
		assert.Equal(t, "page", c.Schema.Title)
		assert.Equal(t, "page number, 1-based", c.Schema.Description)

		n, err := c.Decode("3")
		require.NoError(t, err)
		assert.Equal(t, 3, n)
	})

	t.Run("validators accumulate", func(t *testing.T) {
		t.Parallel()

		c := Int().
			WithValidator(validate.Min(10)).
			WithValidator(validate.Max(5))

		_, err := c.Decode("7")
		var invalid *InvalidValueError
		require.ErrorAs(t, err, &invalid)
		assert.Len(t, invalid.Fields, 2)
	})
}

func TestThen(t *testing.T) {
	t.Parallel()

	type userID struct{ n int }

	wrap := NewMapping(
		func(n int) (userID, error) { return userID{n: n}, nil },
		func(id userID) int { return id.n },
	)

	t.Run("decode then map", func(t *testing.T) {
		t.Parallel()

		c := Then(Int(), wrap)

		id, err := c.Decode("42")
		require.NoError(t, err)
		assert.Equal(t, userID{n: 42}, id)
		assert.Equal(t, "42", c.Encode(userID{n: 42}))
	})

	t.Run("default applies before the mapping", func(t *testing.T) {
		t.Parallel()

		c := Then(ListFirst(Int()).WithDefault(1), wrap)

		id, err := c.Decode(nil)
		require.NoError(t, err)
		assert.Equal(t, userID{n: 1}, id)
	})

	t.Run("docs carry over, default does not", func(t *testing.T) {
		t.Parallel()

		c := Then(Int().WithDocs("id", "user identifier").WithDefault(0), wrap)
		assert.Equal(t, "id", c.Schema.Title)
		assert.False(t, c.Schema.HasDefault)
	})
}

func TestTextCodecs(t *testing.T) {
	t.Parallel()

	t.Run("int round trip", func(t *testing.T) {
		t.Parallel()

		c := Int()
		n, err := c.Decode("42")
		require.NoError(t, err)
		assert.Equal(t, 42, n)
		assert.Equal(t, "42", c.Encode(42))

		_, err = c.Decode("abc")
		var mismatch *MismatchError
		assert.ErrorAs(t, err, &mismatch)
	})

	t.Run("int64 round trip", func(t *testing.T) {
		t.Parallel()

		c := Int64()
		n, err := c.Decode("-9007199254740993")
		require.NoError(t, err)
		assert.Equal(t, int64(-9007199254740993), n)
		assert.Equal(t, "-9007199254740993", c.Encode(-9007199254740993))
	})

	t.Run("float64 round trip", func(t *testing.T) {
		t.Parallel()

		c := Float64()
		f, err := c.Decode("2.5")
		require.NoError(t, err)
		assert.Equal(t, 2.5, f)
		assert.Equal(t, "2.5", c.Encode(2.5))
	})

	t.Run("bool spellings", func(t *testing.T) {
		t.Parallel()

		c := Bool()
		for raw, want := range map[string]bool{"true": true, "1": true, "false": false, "0": false} {
			b, err := c.Decode(raw)
			require.NoError(t, err, "raw %q", raw)
			assert.Equal(t, want, b, "raw %q", raw)
		}

		_, err := c.Decode("yes")
		var mismatch *MismatchError
		assert.ErrorAs(t, err, &mismatch)
	})

	t.Run("uuid round trip", func(t *testing.T) {
		t.Parallel()

		c := UUID()
		id := uuid.MustParse("6ba7b810-9dad-11d1-80b4-00c04fd430c8")

		got, err := c.Decode(id.String())
		require.NoError(t, err)
		assert.Equal(t, id, got)
		assert.Equal(t, id.String(), c.Encode(id))

		_, err = c.Decode("not-a-uuid")
		var mismatch *MismatchError
		assert.ErrorAs(t, err, &mismatch)
	})

	t.Run("time round trip", func(t *testing.T) {
		t.Parallel()

		c := Time(time.RFC3339)
		when, err := c.Decode("2025-06-01T12:00:00Z")
		require.NoError(t, err)
		assert.Equal(t, time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC), when)
		assert.Equal(t, "2025-06-01T12:00:00Z", c.Encode(when))
	})

	t.Run("duration round trip", func(t *testing.T) {
		t.Parallel()

		c := Duration()
		d, err := c.Decode("1h30m")
		require.NoError(t, err)
		assert.Equal(t, 90*time.Minute, d)
		assert.Equal(t, "1h30m0s", c.Encode(d))
	})
}

func TestJSONOf(t *testing.T) {
	t.Parallel()

	type user struct {
		Name string `json:"name"`
		Age  int    `json:"age"`
	}

	t.Run("round trip", func(t *testing.T) {
		t.Parallel()

		c := JSONOf[user]()

		u, err := c.Decode([]byte(`{"name":"alice","age":30}`))
		require.NoError(t, err)
		assert.Equal(t, user{Name: "alice", Age: 30}, u)

		assert.JSONEq(t, `{"name":"alice","age":30}`, string(c.Encode(u)))
	})

	t.Run("empty payload is missing", func(t *testing.T) {
		t.Parallel()

		c := JSONOf[user]()

		_, err := c.Decode(nil)
		assert.ErrorIs(t, err, ErrMissing)

		_, err = c.Decode([]byte("  \n"))
		assert.ErrorIs(t, err, ErrMissing)
	})

	t.Run("malformed payload", func(t *testing.T) {
		t.Parallel()

		_, err := JSONOf[user]().Decode([]byte(`{"name":`))
		var decodeErr *DecodeError
		require.ErrorAs(t, err, &decodeErr)
		assert.Equal(t, `{"name":`, decodeErr.Original)
	})

	t.Run("unknown fields rejected when strict", func(t *testing.T) {
		t.Parallel()

		payload := []byte(`{"name":"alice","role":"admin"}`)

		_, err := JSONOf[user]().Decode(payload)
		require.NoError(t, err)

		_, err = JSONOf[user](WithDisallowUnknownFields()).Decode(payload)
		var decodeErr *DecodeError
		assert.ErrorAs(t, err, &decodeErr)
	})

	t.Run("long payloads truncated in message", func(t *testing.T) {
		t.Parallel()

		_, err := JSONOf[user]().Decode([]byte("{" + strings.Repeat("x", 500)))
		require.Error(t, err)
		assert.Less(t, len(err.Error()), 250)
	})
}

func TestBinaryCodecs(t *testing.T) {
	t.Parallel()

	t.Run("bytes identity", func(t *testing.T) {
		t.Parallel()

		c := Bytes()
		b, err := c.Decode([]byte{0x01, 0x02})
		require.NoError(t, err)
		assert.Equal(t, []byte{0x01, 0x02}, b)
		assert.Equal(t, FormatBinary, c.Format)
	})

	t.Run("text plain", func(t *testing.T) {
		t.Parallel()

		c := TextPlain()
		s, err := c.Decode([]byte("ok"))
		require.NoError(t, err)
		assert.Equal(t, "ok", s)
		assert.Equal(t, []byte("ok"), c.Encode("ok"))
	})
}
