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

package msgpack

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rivaas.dev/endpoint/codec"
)

func TestOf(t *testing.T) {
	t.Parallel()

	type message struct {
		ID      int64  `msgpack:"id"`
		Content string `msgpack:"content"`
	}

	t.Run("round trip", func(t *testing.T) {
		t.Parallel()

		c := Of[message]()
		want := message{ID: 42, Content: "hello"}

		got, err := c.Decode(c.Encode(want))
		require.NoError(t, err)
		assert.Equal(t, want, got)
	})

	t.Run("empty payload is missing", func(t *testing.T) {
		t.Parallel()

		_, err := Of[message]().Decode(nil)
		assert.ErrorIs(t, err, codec.ErrMissing)
	})

	t.Run("malformed payload", func(t *testing.T) {
		t.Parallel()

		_, err := Of[message]().Decode([]byte{0xc1})
		var decodeErr *codec.DecodeError
		assert.ErrorAs(t, err, &decodeErr)
	})

	t.Run("json tags honored when enabled", func(t *testing.T) {
		t.Parallel()

		type tagged struct {
			Name string `json:"name"`
		}

		c := Of[tagged](WithJSONTag())

		got, err := c.Decode(c.Encode(tagged{Name: "alice"}))
		require.NoError(t, err)
		assert.Equal(t, "alice", got.Name)
	})

	t.Run("format", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, codec.FormatMsgPack, Of[message]().Format)
	})
}
