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
)

func TestDecodeCommandComplete(t *testing.T) {
	tests := []struct {
		tag      string
		expected CommandTag
	}{
		{"SELECT\x00", CommandTag{Type: CommandSelect}},
		{"SELECT", CommandTag{Type: CommandSelect}},
		{"BEGIN\x00", CommandTag{Type: CommandBegin}},
		{"ROLLBACK\x00", CommandTag{Type: CommandRollback}},
		{"INSERT 0 7\x00", CommandTag{Type: CommandInsert, Rows: 7}},
		{"INSERT 16384 1\x00", CommandTag{Type: CommandInsert, Rows: 1}},
		{"UPDATE 3\x00", CommandTag{Type: CommandUpdate, Rows: 3}},
		{"DELETE 0\x00", CommandTag{Type: CommandDelete, Rows: 0}},
		{"MOVE 12\x00", CommandTag{Type: CommandMove, Rows: 12}},
		{"FETCH 50\x00", CommandTag{Type: CommandFetch, Rows: 50}},
		{"FOO\x00", CommandTag{Type: CommandOther, Name: "foo"}},
		{"CREATE TABLE\x00", CommandTag{Type: CommandOther, Name: "create"}},
		{"COMMIT\x00", CommandTag{Type: CommandOther, Name: "commit"}},
	}

	for _, tt := range tests {
		t.Run(tt.tag, func(t *testing.T) {
			tag, err := DecodeCommandComplete([]byte(tt.tag))
			require.NoError(t, err)
			assert.Equal(t, tt.expected, tag)
		})
	}
}

func TestDecodeCommandCompleteMalformed(t *testing.T) {
	tests := []struct {
		name string
		tag  string
	}{
		{"empty tag", "\x00"},
		{"insert missing row count", "INSERT 0\x00"},
		{"update missing row count", "UPDATE\x00"},
		{"non-numeric insert count", "INSERT 0 seven\x00"},
		{"non-numeric update count", "UPDATE lots\x00"},
		{"non-numeric fetch count", "FETCH x\x00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodeCommandComplete([]byte(tt.tag))
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrMalformed, "row counts are never silently coerced")
		})
	}
}

func TestCommandTypeString(t *testing.T) {
	assert.Equal(t, "select", CommandSelect.String())
	assert.Equal(t, "insert", CommandInsert.String())
	assert.Equal(t, "other", CommandOther.String())
}
