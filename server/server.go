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

// Package server interprets endpoint descriptions as HTTP handlers.
//
// [Handler] produces a net/http handler from an endpoint and an
// implementation function; [Mount] registers it on a ServeMux using the
// endpoint's method and path template:
//
//	mux := http.NewServeMux()
//	server.Mount(mux, getUser, func(ctx context.Context, in getUserInput) (User, error) {
//	    u, ok := store.Find(in.ID)
//	    if !ok {
//	        return User{}, server.Fail("not found")
//	    }
//	    return u, nil
//	})
//
// Domain failures are returned with [Fail] and encoded through the
// endpoint's failure description. Requests that do not decode are answered
// with an RFC 9457 problem document carrying the failure's machine code.
//
// The [Exchange] function and [Buffer] type are the transport-agnostic
// core; the gin and echo subpackages reuse them over their own request
// sources.
package server

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"rivaas.dev/endpoint"
)

// FailureError carries a domain failure value out of an implementation
// function. Create one with [Fail].
type FailureError struct {
	value any
}

// Fail wraps a domain failure so the handler encodes it through the
// endpoint's failure description instead of treating it as an internal
// error.
func Fail[E any](failure E) error {
	return &FailureError{value: failure}
}

// Error returns a formatted error message.
func (e *FailureError) Error() string {
	return fmt.Sprintf("domain failure: %v", e.value)
}

// Config holds resolved handler configuration. Exported so transport
// subpackages can resolve the same options.
type Config struct {
	Logger endpoint.Logger
}

// Option configures a handler.
type Option func(*Config)

// WithLogger sets the logger for request handling. Defaults to a no-op
// logger.
func WithLogger(l endpoint.Logger) Option {
	return func(c *Config) {
		c.Logger = l
	}
}

// NewConfig resolves options onto the defaults.
func NewConfig(opts ...Option) Config {
	cfg := Config{Logger: endpoint.NopLogger{}}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// Handler builds a net/http handler that decodes the request with the
// endpoint's request description, invokes impl and encodes the result with
// the matching response description. Path variables are read with
// http.Request.PathValue, so the handler must be registered under the
// endpoint's [endpoint.Endpoint.PathTemplate] pattern.
func Handler[I, E, O any](ep endpoint.Endpoint[I, E, O], impl func(context.Context, I) (O, error), opts ...Option) http.Handler {
	cfg := NewConfig(opts...)

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		buf := Exchange(r.Context(), ep, impl, newRequestSource(r), cfg.Logger)
		writeBuffer(w, buf)
	})
}

// Mount registers the endpoint's handler on mux under its method and path
// template.
func Mount[I, E, O any](mux *http.ServeMux, ep endpoint.Endpoint[I, E, O], impl func(context.Context, I) (O, error), opts ...Option) {
	mux.Handle(ep.Method()+" "+ep.PathTemplate(), Handler(ep, impl, opts...))
}

// writeBuffer flushes a completed exchange to the response writer.
func writeBuffer(w http.ResponseWriter, buf *Buffer) {
	for name, values := range buf.Header {
		w.Header()[name] = values
	}
	if buf.Body != nil && buf.Body.ContentType != "" {
		w.Header().Set("Content-Type", buf.Body.ContentType)
	}
	w.WriteHeader(buf.StatusCode)

	if buf.Body == nil {
		return
	}
	if buf.Body.IsStream {
		_, _ = io.Copy(w, buf.Body.Reader)
		return
	}
	_, _ = w.Write(buf.Body.Bytes)
}

// requestSource implements endpoint.RequestSource over *http.Request.
type requestSource struct {
	r     *http.Request
	query url.Values

	body     []byte
	bodyRead bool
	bodyErr  error
}

func newRequestSource(r *http.Request) *requestSource {
	return &requestSource{r: r, query: r.URL.Query()}
}

func (s *requestSource) PathVar(name string) (string, bool) {
	v := s.r.PathValue(name)

	return v, v != ""
}

func (s *requestSource) QueryValues(name string) []string {
	return s.query[name]
}

func (s *requestSource) HeaderValues(name string) []string {
	return s.r.Header.Values(name)
}

func (s *requestSource) Cookie(name string) (string, bool) {
	c, err := s.r.Cookie(name)
	if err != nil {
		return "", false
	}

	return c.Value, true
}

func (s *requestSource) BodyBytes() ([]byte, error) {
	if !s.bodyRead {
		s.body, s.bodyErr = io.ReadAll(s.r.Body)
		s.bodyRead = true
	}

	return s.body, s.bodyErr
}

func (s *requestSource) BodyReader() (io.Reader, error) {
	if s.bodyRead {
		return bytes.NewReader(s.body), s.bodyErr
	}

	return s.r.Body, nil
}

// asFailure extracts the typed domain failure from an implementation
// error, if it carries one.
func asFailure[E any](err error) (E, bool) {
	var zero E
	var fe *FailureError
	if !errors.As(err, &fe) {
		return zero, false
	}
	e, ok := fe.value.(E)

	return e, ok
}
