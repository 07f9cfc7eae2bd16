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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pgwirekit/pgwire/go/pgwire/protocol"
)

type columnSpec struct {
	name   string
	oid    uint32
	size   int16
	mod    int32
	format int16
}

func rowDescriptionPayload(specs ...columnSpec) []byte {
	w := NewMessageWriter()
	w.WriteInt16(int16(len(specs)))
	for _, s := range specs {
		w.WriteString(s.name)
		w.WriteUint32(0) // table OID
		w.WriteInt16(0)  // attribute number
		w.WriteUint32(s.oid)
		w.WriteInt16(s.size)
		w.WriteInt32(s.mod)
		w.WriteInt16(s.format)
	}
	return w.Bytes()
}

func TestDecodeRowDescription(t *testing.T) {
	codec := newFakeCodec()
	payload := rowDescriptionPayload(
		columnSpec{name: "id", oid: oidInt4, size: 4, mod: -1, format: protocol.FormatText},
		columnSpec{name: "body", oid: oidText, size: -1, mod: 260, format: protocol.FormatBinary},
	)

	columns, err := DecodeRowDescription(codec, payload)
	require.NoError(t, err)
	require.Len(t, columns, 2)

	assert.Equal(t, "id", columns[0].Name)
	assert.Equal(t, DataType{OID: oidInt4, Name: "int4"}, columns[0].Type)
	assert.Equal(t, int16(4), columns[0].Size)
	assert.Equal(t, int32(-1), columns[0].Modifier)
	assert.Equal(t, int16(protocol.FormatText), columns[0].Format)

	assert.Equal(t, "body", columns[1].Name)
	assert.Equal(t, DataType{OID: oidText, Name: "text"}, columns[1].Type)
	assert.Equal(t, int32(260), columns[1].Modifier)
	assert.Equal(t, int16(protocol.FormatBinary), columns[1].Format)
}

func TestDecodeRowDescriptionEmpty(t *testing.T) {
	columns, err := DecodeRowDescription(newFakeCodec(), rowDescriptionPayload())
	require.NoError(t, err)
	assert.Empty(t, columns)
}

func TestDecodeRowDescriptionUnresolvedOID(t *testing.T) {
	payload := rowDescriptionPayload(
		columnSpec{name: "mystery", oid: 999999, size: 4, mod: -1},
	)

	_, err := DecodeRowDescription(newFakeCodec(), payload)
	require.Error(t, err, "an unresolvable OID is an error, not a silent fallback")
	assert.Contains(t, err.Error(), "mystery")
	assert.Contains(t, err.Error(), "999999")
}

func TestDecodeRowDescriptionTruncated(t *testing.T) {
	payload := rowDescriptionPayload(
		columnSpec{name: "id", oid: oidInt4, size: 4, mod: -1},
	)

	_, err := DecodeRowDescription(newFakeCodec(), payload[:len(payload)-3])
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMalformed)
}

func textColumns(t *testing.T, codec TypeCodec) []ColumnDescriptor {
	t.Helper()
	columns, err := DecodeRowDescription(codec, rowDescriptionPayload(
		columnSpec{name: "id", oid: oidInt4, size: 4, mod: -1, format: protocol.FormatText},
		columnSpec{name: "name", oid: oidText, size: -1, mod: -1, format: protocol.FormatText},
	))
	require.NoError(t, err)
	return columns
}

func TestDecodeDataRowText(t *testing.T) {
	codec := newFakeCodec()
	columns := textColumns(t, codec)

	w := NewMessageWriter()
	w.WriteInt16(2)
	w.WriteByteString([]byte("42"))
	w.WriteByteString([]byte("brynn"))

	row, err := DecodeDataRow(codec, columns, w.Bytes())
	require.NoError(t, err)
	require.Len(t, row, 2)

	// Text format passes through as raw bytes.
	assert.Equal(t, []byte("42"), row[0])
	assert.Equal(t, []byte("brynn"), row[1])
}

func TestDecodeDataRowNull(t *testing.T) {
	codec := newFakeCodec()
	columns := textColumns(t, codec)

	w := NewMessageWriter()
	w.WriteInt16(2)
	w.WriteByteString([]byte("7"))
	w.WriteByteString(nil) // NULL sentinel, length -1

	row, err := DecodeDataRow(codec, columns, w.Bytes())
	require.NoError(t, err)
	require.Len(t, row, 2, "row length always equals column count")
	assert.Equal(t, []byte("7"), row[0])
	assert.Nil(t, row[1])
}

func TestDecodeDataRowEmptyValueIsNotNull(t *testing.T) {
	codec := newFakeCodec()
	columns := textColumns(t, codec)

	w := NewMessageWriter()
	w.WriteInt16(2)
	w.WriteByteString([]byte{})
	w.WriteByteString(nil)

	row, err := DecodeDataRow(codec, columns, w.Bytes())
	require.NoError(t, err)
	assert.NotNil(t, row[0], "zero-length value is distinct from NULL")
	assert.Empty(t, row[0])
	assert.Nil(t, row[1])
}

func TestDecodeDataRowBinary(t *testing.T) {
	codec := newFakeCodec(oidInt4, oidBool)
	columns, err := DecodeRowDescription(codec, rowDescriptionPayload(
		columnSpec{name: "n", oid: oidInt4, size: 4, mod: -1, format: protocol.FormatBinary},
		columnSpec{name: "ok", oid: oidBool, size: 1, mod: -1, format: protocol.FormatBinary},
	))
	require.NoError(t, err)

	w := NewMessageWriter()
	w.WriteInt16(2)
	w.WriteByteString([]byte{0x00, 0x00, 0x01, 0x2c})
	w.WriteByteString([]byte{0x01})

	row, err := DecodeDataRow(codec, columns, w.Bytes())
	require.NoError(t, err)
	assert.Equal(t, int32(300), row[0], "binary column goes through the type codec")
	assert.Equal(t, true, row[1])
}

func TestDecodeDataRowCountMismatch(t *testing.T) {
	codec := newFakeCodec()
	columns := textColumns(t, codec)

	w := NewMessageWriter()
	w.WriteInt16(1)
	w.WriteByteString([]byte("only one"))

	_, err := DecodeDataRow(codec, columns, w.Bytes())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMalformed)
}

func TestDecodeDataRowTruncated(t *testing.T) {
	codec := newFakeCodec()
	columns := textColumns(t, codec)

	w := NewMessageWriter()
	w.WriteInt16(2)
	w.WriteByteString([]byte("42"))
	// Second value promises 10 bytes but delivers 3.
	w.WriteInt32(10)
	w.WriteBytes([]byte("abc"))

	_, err := DecodeDataRow(codec, columns, w.Bytes())
	require.Error(t, err, "a truncated payload is malformed, never a shorter row")
	assert.ErrorIs(t, err, ErrMalformed)
}
