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

package wire

import (
	"fmt"
	"strings"

	"github.com/pgwirekit/pgwire/go/pgwire/protocol"
)

// Extra keys populated on ServerError from optional error fields.
const (
	ExtraDetail   = "detail"
	ExtraHint     = "hint"
	ExtraPosition = "position"
)

// ServerError is a structured ErrorResponse reported by the server.
// Decoding one is not itself a codec failure; whether a server-reported
// error aborts the in-flight operation is the caller's decision.
type ServerError struct {
	// Severity is the lower-cased severity field: one of panic, fatal,
	// error, warning, notice, debug, info, log.
	Severity string
	// Code is the SQLSTATE code.
	Code string
	// Message is the primary human-readable message.
	Message string
	// Extra holds the optional detail, hint, and position fields, keyed
	// by the Extra* constants. Absent fields have no key; an error with
	// none of them carries a nil map.
	Extra map[string]string
}

// Error implements the error interface.
func (e *ServerError) Error() string {
	if detail, ok := e.Extra[ExtraDetail]; ok {
		return fmt.Sprintf("%s: %s (SQLSTATE %s)\nDETAIL: %s", e.Severity, e.Message, e.Code, detail)
	}
	return fmt.Sprintf("%s: %s (SQLSTATE %s)", e.Severity, e.Message, e.Code)
}

// IsSQLState checks if the error has the given SQLSTATE code.
func (e *ServerError) IsSQLState(code string) bool {
	return e.Code == code
}

// field is a single (code, value) pair from an ErrorResponse or
// NoticeResponse field set.
type field struct {
	code  byte
	value string
}

// decodeFields reads 1-byte field codes, each followed by a
// null-terminated string, until the lone zero byte that terminates the
// set. A payload that ends before the terminator is malformed.
func decodeFields(payload []byte) ([]field, error) {
	r := NewMessageReader(payload)
	var fields []field
	for {
		code, err := r.ReadByte()
		if err != nil {
			return nil, fmt.Errorf("missing field-set terminator: %w", ErrMalformed)
		}
		if code == 0 {
			return fields, nil
		}
		value, err := r.ReadString()
		if err != nil {
			return nil, fmt.Errorf("field %q: %w", code, err)
		}
		fields = append(fields, field{code: code, value: value})
	}
}

// DecodeError parses an ErrorResponse (or NoticeResponse) payload into a
// ServerError. When a field code appears more than once, the last
// occurrence in the byte stream wins. Field codes this package does not
// recognize are ignored, which keeps decoding forward compatible with
// protocol versions that add fields.
func DecodeError(payload []byte) (*ServerError, error) {
	fields, err := decodeFields(payload)
	if err != nil {
		return nil, err
	}

	serverErr := &ServerError{}
	setExtra := func(key, value string) {
		if serverErr.Extra == nil {
			serverErr.Extra = make(map[string]string, 3)
		}
		serverErr.Extra[key] = value
	}

	for _, f := range fields {
		switch f.code {
		case protocol.FieldSeverity:
			serverErr.Severity = strings.ToLower(f.value)
		case protocol.FieldCode:
			serverErr.Code = f.value
		case protocol.FieldMessage:
			serverErr.Message = f.value
		case protocol.FieldDetail:
			setExtra(ExtraDetail, f.value)
		case protocol.FieldHint:
			setExtra(ExtraHint, f.value)
		case protocol.FieldPosition:
			setExtra(ExtraPosition, f.value)
		}
	}

	return serverErr, nil
}
