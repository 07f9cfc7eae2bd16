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
	"strconv"
	"strings"
)

// CommandType classifies the outcome announced by a CommandComplete
// message.
type CommandType int

// Command outcomes. CommandOther covers every tag this package does not
// classify specifically; the tag's leading keyword is preserved on
// CommandTag.Name.
const (
	CommandOther CommandType = iota
	CommandSelect
	CommandBegin
	CommandRollback
	CommandInsert
	CommandUpdate
	CommandDelete
	CommandMove
	CommandFetch
)

var commandTypeNames = map[CommandType]string{
	CommandOther:    "other",
	CommandSelect:   "select",
	CommandBegin:    "begin",
	CommandRollback: "rollback",
	CommandInsert:   "insert",
	CommandUpdate:   "update",
	CommandDelete:   "delete",
	CommandMove:     "move",
	CommandFetch:    "fetch",
}

func (t CommandType) String() string {
	if name, ok := commandTypeNames[t]; ok {
		return name
	}
	return fmt.Sprintf("CommandType(%d)", int(t))
}

// CommandTag is the structured outcome of a completed command. Rows is
// meaningful for Insert, Update, Delete, Move and Fetch. Name carries
// the lower-cased leading keyword for CommandOther tags.
type CommandTag struct {
	Type CommandType
	Rows int64
	Name string
}

// DecodeCommandComplete classifies a CommandComplete tag string. The
// fixed literals SELECT, BEGIN and ROLLBACK (with or without trailing
// NUL) match first; other tags match on their leading keyword, with
// INSERT discarding the OID token before the row count. A non-numeric
// row count where a number is required is malformed, never coerced.
func DecodeCommandComplete(payload []byte) (CommandTag, error) {
	tag := strings.TrimSuffix(string(payload), "\x00")

	switch tag {
	case "SELECT":
		return CommandTag{Type: CommandSelect}, nil
	case "BEGIN":
		return CommandTag{Type: CommandBegin}, nil
	case "ROLLBACK":
		return CommandTag{Type: CommandRollback}, nil
	}

	tokens := strings.Fields(tag)
	if len(tokens) == 0 {
		return CommandTag{}, fmt.Errorf("empty command tag: %w", ErrMalformed)
	}

	switch tokens[0] {
	case "INSERT":
		// INSERT <oid> <rows>; the OID token is a historical artifact.
		if len(tokens) < 3 {
			return CommandTag{}, fmt.Errorf("command tag %q: %w", tag, ErrMalformed)
		}
		rows, err := parseRowCount(tag, tokens[2])
		if err != nil {
			return CommandTag{}, err
		}
		return CommandTag{Type: CommandInsert, Rows: rows}, nil

	case "UPDATE", "DELETE", "MOVE", "FETCH":
		if len(tokens) < 2 {
			return CommandTag{}, fmt.Errorf("command tag %q: %w", tag, ErrMalformed)
		}
		rows, err := parseRowCount(tag, tokens[1])
		if err != nil {
			return CommandTag{}, err
		}
		types := map[string]CommandType{
			"UPDATE": CommandUpdate,
			"DELETE": CommandDelete,
			"MOVE":   CommandMove,
			"FETCH":  CommandFetch,
		}
		return CommandTag{Type: types[tokens[0]], Rows: rows}, nil

	default:
		return CommandTag{Type: CommandOther, Name: strings.ToLower(tokens[0])}, nil
	}
}

func parseRowCount(tag, token string) (int64, error) {
	rows, err := strconv.ParseInt(token, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("command tag %q has non-numeric row count %q: %w", tag, token, ErrMalformed)
	}
	return rows, nil
}
