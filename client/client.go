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

// Package client interprets endpoint descriptions as outgoing HTTP calls
// over net/http.
//
// A Client is configured once with a base URL and shared across
// goroutines; [Call] executes one endpoint against it:
//
//	c, err := client.New("https://api.example.com")
//	if err != nil { ... }
//
//	outcome, err := client.Call(ctx, c, getUser, getUserInput{ID: 42})
//	if err != nil { ... }          // transport or decode failure
//	if user, ok := outcome.Value(); ok { ... }
//
// Response bodies are buffered before decoding, so streamed response
// descriptions read from memory on the client side.
package client

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	otelcodes "go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"rivaas.dev/endpoint"
)

// tracerName identifies spans created by this package.
const tracerName = "rivaas.dev/endpoint/client"

// Client executes endpoint descriptions against one base URL.
type Client struct {
	base   *url.URL
	http   *http.Client
	logger endpoint.Logger
	tracer trace.Tracer
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient sets the underlying HTTP client. Defaults to
// http.DefaultClient.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.http = hc
	}
}

// WithLogger sets the logger for request/response debug lines. Defaults to
// a no-op logger.
func WithLogger(l endpoint.Logger) Option {
	return func(c *Client) {
		c.logger = l
	}
}

// WithTracerProvider sets the OpenTelemetry tracer provider used for
// client spans. Defaults to the global provider.
func WithTracerProvider(tp trace.TracerProvider) Option {
	return func(c *Client) {
		c.tracer = tp.Tracer(tracerName)
	}
}

// New creates a Client for the given base URL.
func New(baseURL string, opts ...Option) (*Client, error) {
	base, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parse base URL: %w", err)
	}

	c := &Client{
		base:   base,
		http:   http.DefaultClient,
		logger: endpoint.NopLogger{},
		tracer: otel.GetTracerProvider().Tracer(tracerName),
	}
	for _, opt := range opts {
		opt(c)
	}

	return c, nil
}

// Call executes one endpoint: it builds the request from in, performs the
// exchange and decodes the response into an outcome.
//
// Errors:
//   - [*endpoint.ExchangeError]: the request could not be performed, the
//     response body could not be read, or the response did not match
//     either response description
func Call[I, E, O any](ctx context.Context, c *Client, ep endpoint.Endpoint[I, E, O], in I) (endpoint.Outcome[E, O], error) {
	var zero endpoint.Outcome[E, O]

	spanName := ep.Docs().OperationID
	if spanName == "" {
		spanName = ep.Method() + " " + ep.PathTemplate()
	}
	ctx, span := c.tracer.Start(ctx, spanName, trace.WithSpanKind(trace.SpanKindClient))
	defer span.End()

	req, err := newRequest(ctx, c, ep, in)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(otelcodes.Error, err.Error())

		return zero, err
	}

	span.SetAttributes(
		attribute.String("http.request.method", req.Method),
		attribute.String("url.full", req.URL.String()),
	)
	c.logger.Debug("endpoint request", "method", req.Method, "url", req.URL.String())

	resp, err := c.http.Do(req)
	if err != nil {
		exErr := &endpoint.ExchangeError{Method: req.Method, URL: req.URL.String(), Err: err}
		span.RecordError(exErr)
		span.SetStatus(otelcodes.Error, exErr.Error())

		return zero, exErr
	}

	body, err := io.ReadAll(resp.Body)
	_ = resp.Body.Close()
	if err != nil {
		exErr := &endpoint.ExchangeError{Method: req.Method, URL: req.URL.String(), Err: err}
		span.RecordError(exErr)
		span.SetStatus(otelcodes.Error, exErr.Error())

		return zero, exErr
	}

	span.SetAttributes(attribute.Int("http.response.status_code", resp.StatusCode))
	c.logger.Debug("endpoint response", "method", req.Method, "url", req.URL.String(), "status", resp.StatusCode)

	outcome, err := ep.DecodeResponse(&responseSource{resp: resp, body: body})
	if err != nil {
		exErr := &endpoint.ExchangeError{Method: req.Method, URL: req.URL.String(), Err: err}
		span.RecordError(exErr)
		span.SetStatus(otelcodes.Error, exErr.Error())

		return zero, exErr
	}

	return outcome, nil
}

// newRequest interprets the endpoint's request description into an
// *http.Request bound to ctx. A free function because Go methods cannot
// take type parameters.
func newRequest[I, E, O any](ctx context.Context, c *Client, ep endpoint.Endpoint[I, E, O], in I) (*http.Request, error) {
	ub := &urlBuilder{query: url.Values{}}
	entity := &requestEntity{header: http.Header{}}
	ep.EncodeRequest(in, ub, entity)

	// Each path leaf occupies exactly one wire segment, so captured values
	// are escaped segment by segment; a "/" inside a value must not split
	// the segment.
	decoded := strings.TrimSuffix(c.base.Path, "/")
	escaped := strings.TrimSuffix(c.base.EscapedPath(), "/")
	for _, seg := range ub.segments {
		decoded += "/" + seg
		escaped += "/" + url.PathEscape(seg)
	}
	if decoded == "" {
		decoded, escaped = "/", "/"
	}

	target := *c.base
	target.Path = decoded
	target.RawPath = escaped
	target.RawQuery = ub.query.Encode()

	var bodyReader io.Reader
	if entity.body != nil {
		if entity.body.IsStream {
			bodyReader = entity.body.Reader
		} else {
			bodyReader = bytes.NewReader(entity.body.Bytes)
		}
	}

	req, err := http.NewRequestWithContext(ctx, ep.Method(), target.String(), bodyReader)
	if err != nil {
		return nil, &endpoint.ExchangeError{Method: ep.Method(), URL: target.String(), Err: err}
	}

	for name, values := range entity.header {
		req.Header[name] = values
	}
	if entity.body != nil && entity.body.ContentType != "" {
		req.Header.Set("Content-Type", entity.body.ContentType)
	}
	for _, cookie := range entity.cookies {
		req.AddCookie(cookie)
	}

	return req, nil
}

// urlBuilder implements endpoint.URLSink.
type urlBuilder struct {
	segments []string
	query    url.Values
}

func (b *urlBuilder) AppendPath(segment string) {
	b.segments = append(b.segments, segment)
}

func (b *urlBuilder) AddQuery(name string, values []string) {
	for _, v := range values {
		b.query.Add(name, v)
	}
}

// requestEntity implements endpoint.EntitySink.
type requestEntity struct {
	header  http.Header
	cookies []*http.Cookie
	body    *endpoint.Body
}

func (e *requestEntity) AddHeader(name string, values []string) {
	for _, v := range values {
		e.header.Add(name, v)
	}
}

func (e *requestEntity) AddCookie(name, value string) {
	e.cookies = append(e.cookies, &http.Cookie{Name: name, Value: value})
}

func (e *requestEntity) SetBody(body endpoint.Body) {
	e.body = &body
}

// responseSource implements endpoint.ResponseSource over a buffered
// response.
type responseSource struct {
	resp *http.Response
	body []byte
}

func (s *responseSource) StatusCode() int {
	return s.resp.StatusCode
}

func (s *responseSource) HeaderValues(name string) []string {
	return s.resp.Header.Values(name)
}

func (s *responseSource) BodyBytes() ([]byte, error) {
	return s.body, nil
}

func (s *responseSource) BodyReader() (io.Reader, error) {
	return bytes.NewReader(s.body), nil
}
