// Copyright 2025 Supabase, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package wire implements the codec for the PostgreSQL frontend/backend
// wire protocol: it turns raw bytes received from a transport into typed
// protocol messages and turns client requests into framed byte sequences.
//
// The codec is purely functional: every operation transforms one buffer
// or structure into another without I/O or shared mutable state. The only
// injected collaborator is the TypeCodec, the catalog used for OID
// resolution and binary format negotiation. Within one connection's byte
// stream, DecodeMessage must be driven sequentially, each call consuming
// the tail returned by the previous one.
package wire

import (
	"encoding/binary"
	"fmt"

	"github.com/pgwirekit/pgwire/go/pgwire/protocol"
)

// Message is a single framed protocol message. Payload aliases the
// buffer handed to DecodeMessage; the codec retains no reference to it.
// For ErrorResponse messages the decoded server error is carried in Err
// alongside the raw payload.
type Message struct {
	Type    protocol.MessageType
	Payload []byte
	Err     *ServerError
}

// DecodeMessage splits buf into the first complete message and the
// unconsumed remainder. A buffer that does not yet hold a complete
// message (including one shorter than the 5-byte header) yields a nil
// Message, the buffer unchanged, and no error: that is the signal to
// read more bytes from the transport and retry with the same tail.
//
// ErrorResponse ('E') payloads are decoded eagerly so that the caller
// always observes server errors in structured form.
func DecodeMessage(buf []byte) (*Message, []byte, error) {
	if len(buf) < protocol.MessageFrameSize {
		return nil, buf, nil
	}

	length := int32(binary.BigEndian.Uint32(buf[1:protocol.MessageFrameSize]))
	if length < protocol.PacketHeaderSize {
		return nil, buf, fmt.Errorf("declared length %d: %w", length, ErrMalformed)
	}

	total := 1 + int(length)
	if len(buf) < total {
		return nil, buf, nil
	}

	msg := &Message{
		Type:    protocol.MessageType(buf[0]),
		Payload: buf[protocol.MessageFrameSize:total],
	}

	if msg.Type == protocol.MsgErrorResponse {
		serverErr, err := DecodeError(msg.Payload)
		if err != nil {
			return nil, buf, err
		}
		msg.Err = serverErr
	}

	return msg, buf[total:], nil
}

// CutString splits b at its first zero byte, returning the string before
// it and the bytes after it. A missing terminator is malformed: this
// primitive expects well-formed protocol input, not truncated buffers.
func CutString(b []byte) (string, []byte, error) {
	for i, c := range b {
		if c == 0 {
			return string(b[:i]), b[i+1:], nil
		}
	}
	return "", nil, fmt.Errorf("unterminated string: %w", ErrMalformed)
}

// SplitStrings splits b at every zero byte and returns the segments in
// order. Protocol string tables are always zero-terminated, so the
// trailing empty segment is dropped.
func SplitStrings(b []byte) []string {
	var out []string
	start := 0
	for i, c := range b {
		if c == 0 {
			out = append(out, string(b[start:i]))
			start = i + 1
		}
	}
	if start < len(b) {
		out = append(out, string(b[start:]))
	}
	return out
}
