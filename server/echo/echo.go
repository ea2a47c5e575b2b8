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

// Package echo adapts endpoint descriptions to the Echo web framework.
//
// Example:
//
//	e := echo.New()
//	endpointecho.Route(e, getUser, func(ctx context.Context, in getUserInput) (User, error) {
//	    return store.Get(ctx, in.ID)
//	})
package echo

import (
	"bytes"
	"context"
	"io"
	"net/url"

	"github.com/labstack/echo/v4"

	"rivaas.dev/endpoint"
	"rivaas.dev/endpoint/server"
)

// Router is the subset of *echo.Echo and *echo.Group used to register
// routes.
type Router interface {
	Add(method, path string, handler echo.HandlerFunc, middleware ...echo.MiddlewareFunc) *echo.Route
}

// Route registers the endpoint on an Echo router under its method and
// colon-style path template.
func Route[I, E, O any](r Router, ep endpoint.Endpoint[I, E, O], impl func(context.Context, I) (O, error), opts ...server.Option) {
	cfg := server.NewConfig(opts...)

	r.Add(ep.Method(), ep.PathTemplateColon(), func(c echo.Context) error {
		buf := server.Exchange(c.Request().Context(), ep, impl, newSource(c), cfg.Logger)

		return write(c, buf)
	})
}

// write flushes a completed exchange through the Echo context.
func write(c echo.Context, buf *server.Buffer) error {
	header := c.Response().Header()
	for name, values := range buf.Header {
		header[name] = values
	}

	switch {
	case buf.Body == nil:
		return c.NoContent(buf.StatusCode)
	case buf.Body.IsStream:
		return c.Stream(buf.StatusCode, buf.Body.ContentType, buf.Body.Reader)
	default:
		return c.Blob(buf.StatusCode, buf.Body.ContentType, buf.Body.Bytes)
	}
}

// source implements endpoint.RequestSource over echo.Context.
type source struct {
	c     echo.Context
	query url.Values

	body     []byte
	bodyRead bool
	bodyErr  error
}

func newSource(c echo.Context) *source {
	return &source{c: c, query: c.QueryParams()}
}

func (s *source) PathVar(name string) (string, bool) {
	for _, pname := range s.c.ParamNames() {
		if pname == name {
			return s.c.Param(name), true
		}
	}

	return "", false
}

func (s *source) QueryValues(name string) []string {
	return s.query[name]
}

func (s *source) HeaderValues(name string) []string {
	return s.c.Request().Header.Values(name)
}

func (s *source) Cookie(name string) (string, bool) {
	cookie, err := s.c.Cookie(name)
	if err != nil {
		return "", false
	}

	return cookie.Value, true
}

func (s *source) BodyBytes() ([]byte, error) {
	if !s.bodyRead {
		s.body, s.bodyErr = io.ReadAll(s.c.Request().Body)
		s.bodyRead = true
	}

	return s.body, s.bodyErr
}

func (s *source) BodyReader() (io.Reader, error) {
	if s.bodyRead {
		return bytes.NewReader(s.body), s.bodyErr
	}

	return s.c.Request().Body, nil
}
