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
	"fmt"
	"io"
)

// buildRequest walks a request tree in order, splitting the carrier at
// each pair and emitting every leaf into the URL and entity sinks. Building
// is total: pack closures and leaf encoders never fail on values of the
// witnessed type.
func buildRequest(n node, ps Params, url URLSink, entity EntitySink) {
	switch t := n.(type) {
	case *pairNode:
		a, b := t.split(ps)
		buildRequest(t.first, a, url, entity)
		buildRequest(t.second, b, url, entity)
	case staticSegment:
		url.AppendPath(t.value)
	case pathCapture:
		url.AppendPath(t.encode(ps.single()))
	case queryParam:
		if values := t.encode(ps.single()); len(values) > 0 {
			url.AddQuery(t.name, values)
		}
	case headerField:
		if values := t.encode(ps.single()); len(values) > 0 {
			entity.AddHeader(t.name, values)
		}
	case cookieField:
		for _, v := range t.encode(ps.single()) {
			entity.AddCookie(t.name, v)
		}
	case bytesBody:
		entity.SetBody(Body{
			Bytes:       t.encode(ps.single()),
			ContentType: t.contentType,
		})
	case streamBody:
		entity.SetBody(Body{
			Reader:      ps.single().(io.Reader),
			ContentType: t.contentType,
			IsStream:    true,
		})
	case emptyEntity:
		// nothing to emit
	default:
		panic(fmt.Sprintf("endpoint: node %T is not valid in a request tree", n))
	}
}

// buildResponse walks a response tree and emits every leaf into the
// response sink. Trees without a status leaf leave the sink's default
// status in place.
func buildResponse(n node, ps Params, sink ResponseSink) {
	switch t := n.(type) {
	case *pairNode:
		a, b := t.split(ps)
		buildResponse(t.first, a, sink)
		buildResponse(t.second, b, sink)
	case fixedStatus:
		sink.SetStatus(t.code)
	case statusNode:
		sink.SetStatus(ps.single().(int))
	case headerField:
		if values := t.encode(ps.single()); len(values) > 0 {
			sink.AddHeader(t.name, values)
		}
	case bytesBody:
		sink.SetBody(Body{
			Bytes:       t.encode(ps.single()),
			ContentType: t.contentType,
		})
	case streamBody:
		sink.SetBody(Body{
			Reader:      ps.single().(io.Reader),
			ContentType: t.contentType,
			IsStream:    true,
		})
	case emptyEntity:
		// nothing to emit
	case voidNode:
		panic("endpoint: a void response cannot be built")
	default:
		panic(fmt.Sprintf("endpoint: node %T is not valid in a response tree", n))
	}
}
