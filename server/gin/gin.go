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

// Package gin adapts endpoint descriptions to the Gin web framework.
//
// Example:
//
//	r := gin.Default()
//	endpointgin.Route(r, getUser, func(ctx context.Context, in getUserInput) (User, error) {
//	    return store.Get(ctx, in.ID)
//	})
package gin

import (
	"bytes"
	"context"
	"io"
	"net/url"

	"github.com/gin-gonic/gin"

	"rivaas.dev/endpoint"
	"rivaas.dev/endpoint/server"
)

// Route registers the endpoint on a Gin router under its method and
// colon-style path template.
func Route[I, E, O any](r gin.IRoutes, ep endpoint.Endpoint[I, E, O], impl func(context.Context, I) (O, error), opts ...server.Option) {
	cfg := server.NewConfig(opts...)

	r.Handle(ep.Method(), ep.PathTemplateColon(), func(c *gin.Context) {
		buf := server.Exchange(c.Request.Context(), ep, impl, newSource(c), cfg.Logger)
		write(c, buf)
	})
}

// write flushes a completed exchange through the Gin context.
func write(c *gin.Context, buf *server.Buffer) {
	header := c.Writer.Header()
	for name, values := range buf.Header {
		header[name] = values
	}

	switch {
	case buf.Body == nil:
		c.Status(buf.StatusCode)
		c.Writer.WriteHeaderNow()
	case buf.Body.IsStream:
		c.DataFromReader(buf.StatusCode, -1, buf.Body.ContentType, buf.Body.Reader, nil)
	default:
		c.Data(buf.StatusCode, buf.Body.ContentType, buf.Body.Bytes)
	}
}

// source implements endpoint.RequestSource over *gin.Context.
type source struct {
	c     *gin.Context
	query url.Values

	body     []byte
	bodyRead bool
	bodyErr  error
}

func newSource(c *gin.Context) *source {
	return &source{c: c, query: c.Request.URL.Query()}
}

func (s *source) PathVar(name string) (string, bool) {
	return s.c.Params.Get(name)
}

func (s *source) QueryValues(name string) []string {
	return s.query[name]
}

func (s *source) HeaderValues(name string) []string {
	return s.c.Request.Header.Values(name)
}

func (s *source) Cookie(name string) (string, bool) {
	v, err := s.c.Cookie(name)
	if err != nil {
		return "", false
	}

	return v, true
}

func (s *source) BodyBytes() ([]byte, error) {
	if !s.bodyRead {
		s.body, s.bodyErr = io.ReadAll(s.c.Request.Body)
		s.bodyRead = true
	}

	return s.body, s.bodyErr
}

func (s *source) BodyReader() (io.Reader, error) {
	if s.bodyRead {
		return bytes.NewReader(s.body), s.bodyErr
	}

	return s.c.Request.Body, nil
}
