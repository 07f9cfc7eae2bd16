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

package command

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"

	"github.com/pgwirekit/pgwire/go/pgwire/bufpool"
	"github.com/pgwirekit/pgwire/go/pgwire/protocol"
	"github.com/pgwirekit/pgwire/go/pgwire/wire"
)

// readPool recycles the chunk buffer used to slurp captures.
var readPool = bufpool.New(4096, 64*1024)

// Dumper decodes one captured backend stream and renders each message.
type Dumper struct {
	FS     afero.Fs
	Out    io.Writer
	Logger *slog.Logger
	Codec  wire.TypeCodec
	Format string

	// columns tracks the most recent RowDescription so subsequent
	// DataRow messages can be decoded against it.
	columns []wire.ColumnDescriptor
}

// Record is the rendered form of one protocol message.
type Record struct {
	Seq    int    `json:"seq" yaml:"seq"`
	Type   string `json:"type" yaml:"type"`
	Length int    `json:"length" yaml:"length"`
	Detail any    `json:"detail,omitempty" yaml:"detail,omitempty"`
}

// Run decodes the capture at input ("-" for stdin) and writes one
// record per message to the dumper's output.
func (d *Dumper) Run(input string, hexInput bool) error {
	data, err := d.readCapture(input)
	if err != nil {
		return err
	}
	if hexInput {
		data, err = decodeHex(data)
		if err != nil {
			return fmt.Errorf("decode hex input: %w", err)
		}
	}

	seq := 0
	buf := data
	for {
		msg, rest, err := wire.DecodeMessage(buf)
		if err != nil {
			return fmt.Errorf("message %d: %w", seq+1, err)
		}
		if msg == nil {
			if len(buf) > 0 {
				d.Logger.Warn("capture ends mid-message", "trailing_bytes", len(buf))
			}
			return nil
		}
		seq++

		record := Record{
			Seq:    seq,
			Type:   msg.Type.String(),
			Length: len(msg.Payload),
			Detail: d.describe(msg),
		}
		if err := d.render(record); err != nil {
			return err
		}
		buf = rest
	}
}

// readCapture reads the whole capture through a pooled chunk buffer.
func (d *Dumper) readCapture(input string) ([]byte, error) {
	var r io.Reader
	if input == "-" {
		r = os.Stdin
	} else {
		f, err := d.FS.Open(input)
		if err != nil {
			return nil, fmt.Errorf("open capture: %w", err)
		}
		defer f.Close()
		r = f
	}

	chunk := readPool.Get(32 * 1024)
	defer readPool.Put(chunk)

	var data []byte
	for {
		n, err := r.Read(*chunk)
		data = append(data, (*chunk)[:n]...)
		if err == io.EOF {
			return data, nil
		}
		if err != nil {
			return nil, fmt.Errorf("read capture: %w", err)
		}
	}
}

// describe produces the per-type detail for a message, or nil when the
// tag has no decoded representation.
func (d *Dumper) describe(msg *wire.Message) any {
	switch msg.Type {
	case protocol.MsgRowDescription:
		columns, err := wire.DecodeRowDescription(d.Codec, msg.Payload)
		if err != nil {
			return fmt.Sprintf("undecodable: %v", err)
		}
		d.columns = columns
		described := make([]string, len(columns))
		for i, col := range columns {
			format := "text"
			if col.Format == protocol.FormatBinary {
				format = "binary"
			}
			described[i] = fmt.Sprintf("%s %s (%s)", col.Name, col.Type.Name, format)
		}
		return described

	case protocol.MsgDataRow:
		if d.columns == nil {
			return "no preceding RowDescription"
		}
		row, err := wire.DecodeDataRow(d.Codec, d.columns, msg.Payload)
		if err != nil {
			return fmt.Sprintf("undecodable: %v", err)
		}
		return renderRow(row)

	case protocol.MsgCommandComplete:
		tag, err := wire.DecodeCommandComplete(msg.Payload)
		if err != nil {
			return fmt.Sprintf("undecodable: %v", err)
		}
		d.columns = nil
		if tag.Type == wire.CommandOther {
			return tag.Name
		}
		return fmt.Sprintf("%s rows=%d", tag.Type, tag.Rows)

	case protocol.MsgErrorResponse:
		return msg.Err.Error()

	case protocol.MsgNoticeResponse:
		notice, err := wire.DecodeError(msg.Payload)
		if err != nil {
			return fmt.Sprintf("undecodable: %v", err)
		}
		return notice.Error()

	case protocol.MsgParameterStatus:
		pair := wire.SplitStrings(msg.Payload)
		if len(pair) == 2 {
			return fmt.Sprintf("%s=%s", pair[0], pair[1])
		}
		return pair

	case protocol.MsgReadyForQuery:
		if len(msg.Payload) == 1 {
			return fmt.Sprintf("txn=%c", msg.Payload[0])
		}
		return nil

	default:
		return nil
	}
}

// renderRow converts decoded values into printable form. Text values
// arrive as raw bytes and NULL as nil.
func renderRow(row wire.Row) []any {
	out := make([]any, len(row))
	for i, v := range row {
		switch v := v.(type) {
		case nil:
			out[i] = nil
		case []byte:
			out[i] = string(v)
		default:
			out[i] = v
		}
	}
	return out
}

// render writes one record in the configured output format.
func (d *Dumper) render(record Record) error {
	switch d.Format {
	case "json":
		data, err := json.Marshal(record)
		if err != nil {
			return fmt.Errorf("marshal record: %w", err)
		}
		_, err = fmt.Fprintln(d.Out, string(data))
		return err
	case "yaml":
		data, err := yaml.Marshal([]Record{record})
		if err != nil {
			return fmt.Errorf("marshal record: %w", err)
		}
		_, err = d.Out.Write(data)
		return err
	case "text", "":
		if record.Detail != nil {
			_, err := fmt.Fprintf(d.Out, "%4d %-22s %5dB  %v\n", record.Seq, record.Type, record.Length, record.Detail)
			return err
		}
		_, err := fmt.Fprintf(d.Out, "%4d %-22s %5dB\n", record.Seq, record.Type, record.Length)
		return err
	default:
		return fmt.Errorf("unknown output format %q", d.Format)
	}
}

// decodeHex strips whitespace and decodes the remaining hex digits.
func decodeHex(data []byte) ([]byte, error) {
	compact := strings.Join(strings.Fields(string(data)), "")
	return hex.DecodeString(compact)
}
