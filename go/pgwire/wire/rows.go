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

	"github.com/pgwirekit/pgwire/go/pgwire/protocol"
)

// ColumnDescriptor describes one column of a result set, as announced by
// a RowDescription message. Descriptors are immutable after decoding and
// shared read-only by every DataRow of the result set.
type ColumnDescriptor struct {
	Name     string
	Type     DataType
	Size     int16
	Modifier int32
	Format   int16
}

// Row is one decoded DataRow tuple, positionally aligned with the column
// descriptors it was decoded against. A nil element is SQL NULL. Text
// format values are the raw []byte from the wire; binary format values
// are whatever the TypeCodec decoded them into.
type Row []any

// DecodeRowDescription parses a RowDescription payload into column
// descriptors, resolving each type OID through codec. The per-column
// table OID and attribute number are read and discarded.
func DecodeRowDescription(codec TypeCodec, payload []byte) ([]ColumnDescriptor, error) {
	r := NewMessageReader(payload)

	count, err := r.ReadInt16()
	if err != nil {
		return nil, fmt.Errorf("read column count: %w", err)
	}
	if count < 0 {
		return nil, fmt.Errorf("negative column count %d: %w", count, ErrMalformed)
	}

	columns := make([]ColumnDescriptor, count)
	for i := range columns {
		col := &columns[i]

		col.Name, err = r.ReadString()
		if err != nil {
			return nil, fmt.Errorf("read name of column %d: %w", i, err)
		}
		if _, err = r.ReadUint32(); err != nil { // table OID, unused
			return nil, fmt.Errorf("read table OID of column %d: %w", i, err)
		}
		if _, err = r.ReadInt16(); err != nil { // attribute number, unused
			return nil, fmt.Errorf("read attribute number of column %d: %w", i, err)
		}
		oid, err := r.ReadUint32()
		if err != nil {
			return nil, fmt.Errorf("read type OID of column %d: %w", i, err)
		}
		if col.Size, err = r.ReadInt16(); err != nil {
			return nil, fmt.Errorf("read size of column %d: %w", i, err)
		}
		if col.Modifier, err = r.ReadInt32(); err != nil {
			return nil, fmt.Errorf("read modifier of column %d: %w", i, err)
		}
		if col.Format, err = r.ReadInt16(); err != nil {
			return nil, fmt.Errorf("read format of column %d: %w", i, err)
		}

		col.Type, err = codec.TypeForOID(oid)
		if err != nil {
			return nil, fmt.Errorf("resolve type of column %q: %w", col.Name, err)
		}
	}

	return columns, nil
}

// DecodeDataRow parses a DataRow payload against the columns from the
// preceding RowDescription. The returned row always has exactly one
// element per column: a count mismatch or a payload that runs out before
// every column is consumed is malformed, never a shorter row.
//
// Values travel per the column's negotiated format: text columns pass
// through as raw bytes, binary columns go through codec.DecodeBinary
// keyed by the column's type.
func DecodeDataRow(codec TypeCodec, columns []ColumnDescriptor, payload []byte) (Row, error) {
	r := NewMessageReader(payload)

	count, err := r.ReadInt16()
	if err != nil {
		return nil, fmt.Errorf("read value count: %w", err)
	}
	if int(count) != len(columns) {
		return nil, fmt.Errorf("row has %d values for %d columns: %w", count, len(columns), ErrMalformed)
	}

	row := make(Row, len(columns))
	for i := range columns {
		col := &columns[i]

		value, err := r.ReadByteString()
		if err != nil {
			return nil, fmt.Errorf("read value of column %q: %w", col.Name, err)
		}
		if value == nil {
			continue // NULL
		}

		if col.Format == protocol.FormatBinary {
			decoded, err := codec.DecodeBinary(col.Type, value)
			if err != nil {
				return nil, fmt.Errorf("decode binary value of column %q: %w", col.Name, err)
			}
			row[i] = decoded
		} else {
			row[i] = value
		}
	}

	return row, nil
}
