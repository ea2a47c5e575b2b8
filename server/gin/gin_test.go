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

package gin

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rivaas.dev/endpoint"
	"rivaas.dev/endpoint/codec"
	"rivaas.dev/endpoint/server"
)

func newRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)

	r := gin.New()
	ep := endpoint.New(
		endpoint.Get(endpoint.Lead(endpoint.Static("users"), endpoint.PathVar("id", codec.Int()))),
		endpoint.OK(endpoint.TextResponse()),
		endpoint.Status(http.StatusNotFound, endpoint.TextResponse()),
	)
	Route(r, ep, func(_ context.Context, id int) (string, error) {
		if id != 42 {
			return "", server.Fail("not found")
		}

		return "ok", nil
	})

	return r
}

func TestRoute(t *testing.T) {
	t.Parallel()

	r := newRouter()

	t.Run("success", func(t *testing.T) {
		t.Parallel()

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/users/42", nil)
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "ok", w.Body.String())
		assert.Contains(t, w.Header().Get("Content-Type"), "text/plain")
	})

	t.Run("domain failure", func(t *testing.T) {
		t.Parallel()

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/users/7", nil)
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, "not found", w.Body.String())
	})

	t.Run("malformed path variable", func(t *testing.T) {
		t.Parallel()

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/users/abc", nil)
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)

		var p map[string]any
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &p))
		assert.Equal(t, "type_mismatch", p["code"])
	})
}
