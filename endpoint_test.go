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

package endpoint

import (
	"bytes"
	"io"
	"net/http"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rivaas.dev/endpoint/codec"
)

// fakeURL collects the address parts of a built request.
type fakeURL struct {
	segments []string
	query    url.Values
}

func newFakeURL() *fakeURL {
	return &fakeURL{query: url.Values{}}
}

func (f *fakeURL) AppendPath(segment string) {
	f.segments = append(f.segments, segment)
}

func (f *fakeURL) AddQuery(name string, values []string) {
	f.query[name] = append(f.query[name], values...)
}

// fakeEntity collects the entity parts of a built request.
type fakeEntity struct {
	headers http.Header
	cookies map[string]string
	body    *Body
}

func newFakeEntity() *fakeEntity {
	return &fakeEntity{headers: http.Header{}, cookies: map[string]string{}}
}

func (f *fakeEntity) AddHeader(name string, values []string) {
	for _, v := range values {
		f.headers.Add(name, v)
	}
}

func (f *fakeEntity) AddCookie(name, value string) {
	f.cookies[name] = value
}

func (f *fakeEntity) SetBody(body Body) {
	f.body = &body
}

// fakeRequest exposes a canned incoming request to the parser.
type fakeRequest struct {
	pathVars map[string]string
	query    url.Values
	headers  http.Header
	cookies  map[string]string
	body     []byte
}

func (f *fakeRequest) PathVar(name string) (string, bool) {
	v, ok := f.pathVars[name]
	return v, ok
}

func (f *fakeRequest) QueryValues(name string) []string {
	return f.query[name]
}

func (f *fakeRequest) HeaderValues(name string) []string {
	return f.headers.Values(name)
}

func (f *fakeRequest) Cookie(name string) (string, bool) {
	v, ok := f.cookies[name]
	return v, ok
}

func (f *fakeRequest) BodyBytes() ([]byte, error) {
	return f.body, nil
}

func (f *fakeRequest) BodyReader() (io.Reader, error) {
	return bytes.NewReader(f.body), nil
}

// fakeResponse exposes a canned received response to the parser.
type fakeResponse struct {
	status  int
	headers http.Header
	body    []byte
}

func (f *fakeResponse) StatusCode() int {
	return f.status
}

func (f *fakeResponse) HeaderValues(name string) []string {
	return f.headers.Values(name)
}

func (f *fakeResponse) BodyBytes() ([]byte, error) {
	return f.body, nil
}

func (f *fakeResponse) BodyReader() (io.Reader, error) {
	return bytes.NewReader(f.body), nil
}

// fakeSink collects a built response.
type fakeSink struct {
	status    int
	statusSet bool
	headers   http.Header
	body      *Body
}

func newFakeSink() *fakeSink {
	return &fakeSink{headers: http.Header{}}
}

func (f *fakeSink) SetStatus(code int) {
	f.status = code
	f.statusSet = true
}

func (f *fakeSink) AddHeader(name string, values []string) {
	for _, v := range values {
		f.headers.Add(name, v)
	}
}

func (f *fakeSink) SetBody(body Body) {
	f.body = &body
}

type getUserInput struct {
	ID      int
	Verbose bool
}

// getUser is the reference fixture: GET /users/{id}?verbose=... returning
// "ok" on 200 and "not found" on 404.
func getUser() Endpoint[getUserInput, string, string] {
	return New(
		Get(Zip(
			Lead(Static("users"), PathVar("id", codec.Int())),
			Query("verbose", codec.Bool().WithDefault(false)),
			func(id int, verbose bool) getUserInput { return getUserInput{ID: id, Verbose: verbose} },
			func(in getUserInput) (int, bool) { return in.ID, in.Verbose },
		)),
		OK(TextResponse()),
		Status(http.StatusNotFound, TextResponse()),
		WithOperationID("getUser"),
	)
}

func TestEncodeRequest(t *testing.T) {
	t.Parallel()

	ep := getUser()

	t.Run("path and query", func(t *testing.T) {
		t.Parallel()

		u, entity := newFakeURL(), newFakeEntity()
		ep.EncodeRequest(getUserInput{ID: 42, Verbose: true}, u, entity)

		assert.Equal(t, []string{"users", "42"}, u.segments)
		assert.Equal(t, []string{"true"}, u.query["verbose"])
		assert.Nil(t, entity.body)
		assert.Equal(t, http.MethodGet, ep.Method())
	})

	t.Run("templates", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "/users/{id}", ep.PathTemplate())
		assert.Equal(t, "/users/:id", ep.PathTemplateColon())
	})
}

func TestDecodeRequest(t *testing.T) {
	t.Parallel()

	ep := getUser()

	t.Run("all values present", func(t *testing.T) {
		t.Parallel()

		in, err := ep.DecodeRequest(&fakeRequest{
			pathVars: map[string]string{"id": "42"},
			query:    url.Values{"verbose": {"true"}},
		})
		require.NoError(t, err)
		assert.Equal(t, getUserInput{ID: 42, Verbose: true}, in)
	})

	t.Run("query default applies", func(t *testing.T) {
		t.Parallel()

		in, err := ep.DecodeRequest(&fakeRequest{
			pathVars: map[string]string{"id": "7"},
			query:    url.Values{},
		})
		require.NoError(t, err)
		assert.Equal(t, getUserInput{ID: 7, Verbose: false}, in)
	})

	t.Run("malformed path variable", func(t *testing.T) {
		t.Parallel()

		_, err := ep.DecodeRequest(&fakeRequest{
			pathVars: map[string]string{"id": "abc"},
			query:    url.Values{},
		})
		var mismatch *codec.MismatchError
		require.ErrorAs(t, err, &mismatch)
		assert.Contains(t, err.Error(), `path parameter "id"`)
	})

	t.Run("repeated single-valued query", func(t *testing.T) {
		t.Parallel()

		_, err := ep.DecodeRequest(&fakeRequest{
			pathVars: map[string]string{"id": "1"},
			query:    url.Values{"verbose": {"true", "false"}},
		})
		var multi *codec.MultipleError
		require.ErrorAs(t, err, &multi)
		assert.Contains(t, err.Error(), `query parameter "verbose"`)
	})
}

func TestDecodeResponse(t *testing.T) {
	t.Parallel()

	ep := getUser()

	t.Run("2xx selects success", func(t *testing.T) {
		t.Parallel()

		outcome, err := ep.DecodeResponse(&fakeResponse{status: 200, body: []byte("ok")})
		require.NoError(t, err)
		require.True(t, outcome.IsSuccess())
		v, _ := outcome.Value()
		assert.Equal(t, "ok", v)
		assert.Equal(t, 200, outcome.StatusCode())
	})

	t.Run("non-2xx selects failure", func(t *testing.T) {
		t.Parallel()

		outcome, err := ep.DecodeResponse(&fakeResponse{status: 404, body: []byte("not found")})
		require.NoError(t, err)
		require.False(t, outcome.IsSuccess())
		failure, ok := outcome.Failure()
		assert.True(t, ok)
		assert.Equal(t, "not found", failure)
	})

	t.Run("unexpected status fails the decode", func(t *testing.T) {
		t.Parallel()

		_, err := ep.DecodeResponse(&fakeResponse{status: 500, body: []byte("boom")})
		var mismatch *codec.MismatchError
		require.ErrorAs(t, err, &mismatch)
	})
}

func TestEncodeResponse(t *testing.T) {
	t.Parallel()

	ep := getUser()

	t.Run("success", func(t *testing.T) {
		t.Parallel()

		sink := newFakeSink()
		ep.EncodeResponse("ok", sink)

		assert.True(t, sink.statusSet)
		assert.Equal(t, 200, sink.status)
		require.NotNil(t, sink.body)
		assert.Equal(t, []byte("ok"), sink.body.Bytes)
		assert.Equal(t, "text/plain", sink.body.ContentType)
	})

	t.Run("failure", func(t *testing.T) {
		t.Parallel()

		sink := newFakeSink()
		ep.EncodeErrorResponse("not found", sink)

		assert.Equal(t, 404, sink.status)
		require.NotNil(t, sink.body)
		assert.Equal(t, []byte("not found"), sink.body.Bytes)
	})
}

func TestEntityLeaves(t *testing.T) {
	t.Parallel()

	type createUser struct {
		Name string `json:"name"`
	}

	ep := New(
		Post(Zip(
			And(Lead(Static("users"), JSONBody[createUser]()), Segment("create")),
			Header("X-Tenant", codec.String()),
			func(body createUser, tenant string) Pair[createUser, string] {
				return Pair[createUser, string]{First: body, Second: tenant}
			},
			func(p Pair[createUser, string]) (createUser, string) { return p.First, p.Second },
		)),
		StatusOnly(http.StatusCreated),
		VoidResponse(),
	)

	t.Run("build", func(t *testing.T) {
		t.Parallel()

		u, entity := newFakeURL(), newFakeEntity()
		in := Pair[createUser, string]{First: createUser{Name: "alice"}, Second: "acme"}
		ep.EncodeRequest(in, u, entity)

		assert.Equal(t, []string{"users", "create"}, u.segments)
		assert.Equal(t, "acme", entity.headers.Get("X-Tenant"))
		require.NotNil(t, entity.body)
		assert.JSONEq(t, `{"name":"alice"}`, string(entity.body.Bytes))
		assert.Equal(t, "application/json", entity.body.ContentType)
		assert.Equal(t, http.MethodPost, ep.Method())
	})

	t.Run("parse", func(t *testing.T) {
		t.Parallel()

		in, err := ep.DecodeRequest(&fakeRequest{
			headers: http.Header{"X-Tenant": {"acme"}},
			body:    []byte(`{"name":"alice"}`),
		})
		require.NoError(t, err)
		assert.Equal(t, "alice", in.First.Name)
		assert.Equal(t, "acme", in.Second)
	})

	t.Run("missing header", func(t *testing.T) {
		t.Parallel()

		_, err := ep.DecodeRequest(&fakeRequest{body: []byte(`{"name":"alice"}`)})
		require.ErrorIs(t, err, codec.ErrMissing)
		assert.Contains(t, err.Error(), `header "X-Tenant"`)
	})

	t.Run("void failure response never parses", func(t *testing.T) {
		t.Parallel()

		_, err := ep.DecodeResponse(&fakeResponse{status: 500})
		var decodeErr *codec.DecodeError
		require.ErrorAs(t, err, &decodeErr)
		assert.Equal(t, "status 500", decodeErr.Original)
	})

	t.Run("fixed status verified", func(t *testing.T) {
		t.Parallel()

		outcome, err := ep.DecodeResponse(&fakeResponse{status: 201})
		require.NoError(t, err)
		assert.True(t, outcome.IsSuccess())

		_, err = ep.DecodeResponse(&fakeResponse{status: 200})
		var mismatch *codec.MismatchError
		assert.ErrorAs(t, err, &mismatch)
	})
}

func TestOptionalLeaves(t *testing.T) {
	t.Parallel()

	ep := New(
		Get(Zip(
			And(Root(), Segment("search")),
			Zip2(OptQuery("cursor", codec.String()), QueryAll("tag", codec.String())),
			func(_ None, qs Pair[*string, []string]) Pair[*string, []string] { return qs },
			func(qs Pair[*string, []string]) (None, Pair[*string, []string]) { return None{}, qs },
		)),
		OK(JSONResponse[[]string]()),
		Status(http.StatusBadRequest, TextResponse()),
	)

	t.Run("absent optional is nil", func(t *testing.T) {
		t.Parallel()

		in, err := ep.DecodeRequest(&fakeRequest{query: url.Values{}})
		require.NoError(t, err)
		assert.Nil(t, in.First)
		assert.Empty(t, in.Second)
	})

	t.Run("repeated values collect", func(t *testing.T) {
		t.Parallel()

		in, err := ep.DecodeRequest(&fakeRequest{
			query: url.Values{"cursor": {"abc"}, "tag": {"go", "http"}},
		})
		require.NoError(t, err)
		require.NotNil(t, in.First)
		assert.Equal(t, "abc", *in.First)
		assert.Equal(t, []string{"go", "http"}, in.Second)
	})

	t.Run("nil optional encodes to nothing", func(t *testing.T) {
		t.Parallel()

		u, entity := newFakeURL(), newFakeEntity()
		ep.EncodeRequest(Pair[*string, []string]{Second: []string{"go"}}, u, entity)

		assert.NotContains(t, u.query, "cursor")
		assert.Equal(t, []string{"go"}, u.query["tag"])
	})
}

func TestMapRequest(t *testing.T) {
	t.Parallel()

	type period struct {
		From, To int
	}

	toPeriod := codec.NewMapping(
		func(p Pair[int, int]) (period, error) {
			if p.Second < p.First {
				return period{}, &codec.MismatchError{Expected: "from <= to", Actual: "inverted range"}
			}

			return period{From: p.First, To: p.Second}, nil
		},
		func(p period) Pair[int, int] { return Pair[int, int]{First: p.From, Second: p.To} },
	)

	ep := New(
		Get(MapRequest(
			Lead(Static("report"), Zip2(Query("from", codec.Int()), Query("to", codec.Int()))),
			toPeriod,
		)),
		OK(TextResponse()),
		VoidResponse(),
	)

	t.Run("mapping applies after leaf decoding", func(t *testing.T) {
		t.Parallel()

		in, err := ep.DecodeRequest(&fakeRequest{
			query: url.Values{"from": {"1"}, "to": {"5"}},
		})
		require.NoError(t, err)
		assert.Equal(t, period{From: 1, To: 5}, in)
	})

	t.Run("mapping failure surfaces in the taxonomy", func(t *testing.T) {
		t.Parallel()

		_, err := ep.DecodeRequest(&fakeRequest{
			query: url.Values{"from": {"5"}, "to": {"1"}},
		})
		var mismatch *codec.MismatchError
		assert.ErrorAs(t, err, &mismatch)
	})

	t.Run("encode inverts the mapping", func(t *testing.T) {
		t.Parallel()

		u, entity := newFakeURL(), newFakeEntity()
		ep.EncodeRequest(period{From: 1, To: 5}, u, entity)

		assert.Equal(t, []string{"1"}, u.query["from"])
		assert.Equal(t, []string{"5"}, u.query["to"])
	})
}

func TestStatusAndHeaderResponses(t *testing.T) {
	t.Parallel()

	ep := New(
		Get(Lead(Static("things"), PathVar("id", codec.Int()))),
		ZipResponses(
			StatusCode(),
			ResponseHeader("ETag", codec.String()),
			func(status int, etag string) Pair[int, string] {
				return Pair[int, string]{First: status, Second: etag}
			},
			func(p Pair[int, string]) (int, string) { return p.First, p.Second },
		),
		VoidResponse(),
	)

	t.Run("status captured as a value", func(t *testing.T) {
		t.Parallel()

		outcome, err := ep.DecodeResponse(&fakeResponse{
			status:  204,
			headers: http.Header{"Etag": {"v1"}},
		})
		require.NoError(t, err)
		v, _ := outcome.Value()
		assert.Equal(t, 204, v.First)
		assert.Equal(t, "v1", v.Second)
	})

	t.Run("status set from the value", func(t *testing.T) {
		t.Parallel()

		sink := newFakeSink()
		ep.EncodeResponse(Pair[int, string]{First: 204, Second: "v1"}, sink)

		assert.Equal(t, 204, sink.status)
		assert.Equal(t, "v1", sink.headers.Get("ETag"))
		assert.Nil(t, sink.body)
	})
}

func TestCookieLeaf(t *testing.T) {
	t.Parallel()

	ep := New(
		Get(Lead(Static("me"), Cookie("session", codec.String()))),
		OK(TextResponse()),
		VoidResponse(),
	)

	t.Run("present cookie decodes", func(t *testing.T) {
		t.Parallel()

		in, err := ep.DecodeRequest(&fakeRequest{cookies: map[string]string{"session": "s123"}})
		require.NoError(t, err)
		assert.Equal(t, "s123", in)
	})

	t.Run("absent cookie is missing", func(t *testing.T) {
		t.Parallel()

		_, err := ep.DecodeRequest(&fakeRequest{})
		require.ErrorIs(t, err, codec.ErrMissing)
		assert.Contains(t, err.Error(), `cookie "session"`)
	})

	t.Run("cookie encodes on build", func(t *testing.T) {
		t.Parallel()

		u, entity := newFakeURL(), newFakeEntity()
		ep.EncodeRequest("s123", u, entity)
		assert.Equal(t, "s123", entity.cookies["session"])
	})
}
