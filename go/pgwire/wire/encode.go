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
	"errors"
	"fmt"
	"strconv"

	"github.com/pgwirekit/pgwire/go/pgwire/protocol"
)

// EncodeStartup frames a payload without a leading tag byte, as used by
// startup-style messages (StartupMessage, SSLRequest, CancelRequest).
// The 4-byte length prefix counts itself.
func EncodeStartup(payload []byte) []byte {
	out := make([]byte, 0, protocol.PacketHeaderSize+len(payload))
	w := MessageWriter{buf: out}
	w.WriteInt32(int32(protocol.PacketHeaderSize + len(payload)))
	w.WriteBytes(payload)
	return w.Bytes()
}

// EncodeMessage frames a payload as a typed message: tag byte followed
// by a 4-byte length that counts itself but not the tag.
func EncodeMessage(t protocol.MessageType, payload []byte) []byte {
	out := make([]byte, 0, protocol.MessageFrameSize+len(payload))
	w := MessageWriter{buf: out}
	w.WriteByte(byte(t))
	w.WriteInt32(int32(protocol.PacketHeaderSize + len(payload)))
	w.WriteBytes(payload)
	return w.Bytes()
}

// EncodeTypeList encodes a parameter-type list for a Parse message: a
// 2-byte count followed by one 4-byte OID per type. The zero DataType
// encodes as OID 0, which tells the server to infer the type.
func EncodeTypeList(codec TypeCodec, types []DataType) []byte {
	w := NewMessageWriter()
	w.WriteInt16(int16(len(types)))
	for _, t := range types {
		if t.IsZero() {
			w.WriteUint32(0)
			continue
		}
		w.WriteUint32(codec.OIDForType(t))
	}
	return w.Bytes()
}

// EncodeFormats encodes a result-column format list for a Bind message:
// a 2-byte count followed by each column's negotiated format code.
func EncodeFormats(columns []ColumnDescriptor) []byte {
	w := NewMessageWriter()
	w.WriteInt16(int16(len(columns)))
	for _, col := range columns {
		w.WriteInt16(col.Format)
	}
	return w.Bytes()
}

// FormatFor returns the wire format to negotiate for type t: binary iff
// the codec declares binary support, text otherwise. Row decoding and
// parameter/column encoding both defer to this.
func FormatFor(codec TypeCodec, t DataType) int16 {
	if codec.SupportsBinary(t) {
		return protocol.FormatBinary
	}
	return protocol.FormatText
}

// Parameter is one value bound to a statement. A zero Type means the
// value travels in its natural textual representation; a resolved Type
// lets the codec attempt binary encoding. A nil Value is SQL NULL.
type Parameter struct {
	Type  DataType
	Value any
}

// EncodeParameters encodes a parameter list for a Bind message:
// format-code array and value array, each prefixed by the same 2-byte
// count. The duplicated count is part of the wire contract.
func EncodeParameters(codec TypeCodec, params []Parameter) ([]byte, error) {
	formats := make([]int16, len(params))
	values := make([][]byte, len(params))
	for i, p := range params {
		format, value, err := encodeParameter(codec, p)
		if err != nil {
			return nil, fmt.Errorf("parameter %d: %w", i+1, err)
		}
		formats[i] = format
		values[i] = value
	}

	w := NewMessageWriter()
	w.WriteInt16(int16(len(params)))
	for _, f := range formats {
		w.WriteInt16(f)
	}
	w.WriteInt16(int16(len(params)))
	for _, v := range values {
		w.WriteByteString(v)
	}
	return w.Bytes(), nil
}

// encodeParameter produces the (format, bytes) pair for one parameter.
// A typed parameter goes binary when the codec supports it; a codec that
// reports the pairing unsupported drops the parameter back to text. Bare
// values always encode as text.
func encodeParameter(codec TypeCodec, p Parameter) (int16, []byte, error) {
	if !p.Type.IsZero() && codec.SupportsBinary(p.Type) {
		value, err := codec.EncodeBinary(p.Type, p.Value)
		if err == nil {
			return protocol.FormatBinary, value, nil
		}
		if !errors.Is(err, ErrBinaryUnsupported) {
			return 0, nil, fmt.Errorf("encode binary %s: %w", p.Type.Name, err)
		}
		// Fall through to the textual representation.
	}

	value, err := encodeTextValue(p.Value)
	if err != nil {
		return 0, nil, err
	}
	return protocol.FormatText, value, nil
}

// encodeTextValue renders a bare value in its natural textual wire
// representation. Values with no reasonable text rendering are a
// programming error, reported as ErrUnsupportedValue.
func encodeTextValue(v any) ([]byte, error) {
	switch v := v.(type) {
	case nil:
		return nil, nil // NULL
	case string:
		return []byte(v), nil
	case []byte:
		return v, nil
	case int:
		return strconv.AppendInt(nil, int64(v), 10), nil
	case int8:
		return strconv.AppendInt(nil, int64(v), 10), nil
	case int16:
		return strconv.AppendInt(nil, int64(v), 10), nil
	case int32:
		return strconv.AppendInt(nil, int64(v), 10), nil
	case int64:
		return strconv.AppendInt(nil, v, 10), nil
	case uint:
		return strconv.AppendUint(nil, uint64(v), 10), nil
	case uint8:
		return strconv.AppendUint(nil, uint64(v), 10), nil
	case uint16:
		return strconv.AppendUint(nil, uint64(v), 10), nil
	case uint32:
		return strconv.AppendUint(nil, uint64(v), 10), nil
	case uint64:
		return strconv.AppendUint(nil, v, 10), nil
	case float32:
		return strconv.AppendFloat(nil, float64(v), 'g', -1, 32), nil
	case float64:
		return strconv.AppendFloat(nil, v, 'g', -1, 64), nil
	default:
		return nil, fmt.Errorf("value of type %T: %w", v, ErrUnsupportedValue)
	}
}
