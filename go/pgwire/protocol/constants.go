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

// Package protocol defines PostgreSQL wire protocol constants and types.
package protocol

import "fmt"

// MessageType is the single-byte tag that identifies a protocol message.
// The tag space is shared between frontend and backend messages; a few
// bytes ('C', 'D', 'E', 'H', 'S') mean different things in each direction.
type MessageType byte

// Message type constants for frontend (client) messages
const (
	MsgBind         MessageType = 'B' // Bind
	MsgClose        MessageType = 'C' // Close
	MsgDescribe     MessageType = 'D' // Describe
	MsgExecute      MessageType = 'E' // Execute
	MsgFunctionCall MessageType = 'F' // Function call
	MsgFlush        MessageType = 'H' // Flush
	MsgParse        MessageType = 'P' // Parse
	MsgQuery        MessageType = 'Q' // Query (simple query)
	MsgSync         MessageType = 'S' // Sync
	MsgTerminate    MessageType = 'X' // Terminate
	MsgCopyFail     MessageType = 'f' // Copy fail
	MsgCopyData     MessageType = 'd' // Copy data (bidirectional)
	MsgCopyDone     MessageType = 'c' // Copy done (bidirectional)
	MsgPasswordMsg  MessageType = 'p' // Password message (also used for SASL/GSS responses)
)

// Message type constants for backend (server) messages
const (
	MsgParseComplete         MessageType = '1' // Parse complete
	MsgBindComplete          MessageType = '2' // Bind complete
	MsgCloseComplete         MessageType = '3' // Close complete
	MsgNotificationResponse  MessageType = 'A' // Notification response
	MsgCommandComplete       MessageType = 'C' // Command complete
	MsgDataRow               MessageType = 'D' // Data row
	MsgErrorResponse         MessageType = 'E' // Error response
	MsgCopyInResponse        MessageType = 'G' // Copy-in response
	MsgCopyOutResponse       MessageType = 'H' // Copy-out response
	MsgEmptyQueryResponse    MessageType = 'I' // Empty query response
	MsgBackendKeyData        MessageType = 'K' // Backend key data
	MsgNoticeResponse        MessageType = 'N' // Notice response
	MsgAuthenticationRequest MessageType = 'R' // Authentication request
	MsgParameterStatus       MessageType = 'S' // Parameter status
	MsgRowDescription        MessageType = 'T' // Row description
	MsgFunctionCallResponse  MessageType = 'V' // Function call response
	MsgCopyBothResponse      MessageType = 'W' // Copy-both response
	MsgReadyForQuery         MessageType = 'Z' // Ready for query
	MsgNoData                MessageType = 'n' // No data
	MsgPortalSuspended       MessageType = 's' // Portal suspended
	MsgParameterDescription  MessageType = 't' // Parameter description
)

// backendMessageNames maps backend message tags to their protocol names.
var backendMessageNames = map[MessageType]string{
	MsgParseComplete:         "ParseComplete",
	MsgBindComplete:          "BindComplete",
	MsgCloseComplete:         "CloseComplete",
	MsgNotificationResponse:  "NotificationResponse",
	MsgCommandComplete:       "CommandComplete",
	MsgDataRow:               "DataRow",
	MsgErrorResponse:         "ErrorResponse",
	MsgCopyInResponse:        "CopyInResponse",
	MsgCopyOutResponse:       "CopyOutResponse",
	MsgEmptyQueryResponse:    "EmptyQueryResponse",
	MsgBackendKeyData:        "BackendKeyData",
	MsgNoticeResponse:        "NoticeResponse",
	MsgAuthenticationRequest: "AuthenticationRequest",
	MsgParameterStatus:       "ParameterStatus",
	MsgRowDescription:        "RowDescription",
	MsgFunctionCallResponse:  "FunctionCallResponse",
	MsgCopyBothResponse:      "CopyBothResponse",
	MsgReadyForQuery:         "ReadyForQuery",
	MsgNoData:                "NoData",
	MsgPortalSuspended:       "PortalSuspended",
	MsgParameterDescription:  "ParameterDescription",
}

// Known reports whether t is a recognized backend message tag.
// Unknown tags are still framed and surfaced to the caller, so new
// message types added by future server versions do not break decoding.
func (t MessageType) Known() bool {
	_, ok := backendMessageNames[t]
	return ok
}

// String returns the protocol name of a backend message tag, or
// "Unknown(0xNN)" for tags this package does not recognize.
func (t MessageType) String() string {
	if name, ok := backendMessageNames[t]; ok {
		return name
	}
	return fmt.Sprintf("Unknown(0x%02x)", byte(t))
}

// Error and Notice message field codes
const (
	FieldSeverity         = 'S' // Severity (always present)
	FieldSeverityV        = 'V' // Severity (non-localized, always present)
	FieldCode             = 'C' // SQLSTATE code (always present)
	FieldMessage          = 'M' // Primary message (always present)
	FieldDetail           = 'D' // Detail message
	FieldHint             = 'H' // Hint message
	FieldPosition         = 'P' // Position in query string
	FieldInternalPosition = 'p' // Position in internal query
	FieldInternalQuery    = 'q' // Internal query
	FieldWhere            = 'W' // Context (where the error occurred)
	FieldSchema           = 's' // Schema name
	FieldTable            = 't' // Table name
	FieldColumn           = 'c' // Column name
	FieldDataType         = 'd' // Data type name
	FieldConstraint       = 'n' // Constraint name
	FieldFile             = 'F' // Source file name
	FieldLine             = 'L' // Source line number
	FieldRoutine          = 'R' // Source routine name
)

// TransactionStatus represents the transaction state sent in ReadyForQuery messages.
type TransactionStatus byte

// Transaction status indicators for ReadyForQuery
const (
	TxnStatusIdle    TransactionStatus = 'I' // Idle (not in transaction)
	TxnStatusInBlock TransactionStatus = 'T' // In transaction block
	TxnStatusFailed  TransactionStatus = 'E' // In failed transaction block
)

// Format codes for data types
const (
	FormatText   = 0 // Text format
	FormatBinary = 1 // Binary format
)

// Protocol version
const (
	ProtocolVersionMajor  = 3
	ProtocolVersionMinor  = 0
	ProtocolVersionNumber = (ProtocolVersionMajor << 16) | ProtocolVersionMinor
)

// Special protocol version codes
const (
	CancelRequestCode = (1234 << 16) | 5678 // Cancel request code
	SSLRequestCode    = (1234 << 16) | 5679 // SSL negotiation request code
	GSSENCRequestCode = (1234 << 16) | 5680 // GSSAPI encryption request code
)

// Packet length constants
const (
	PacketHeaderSize = 4 // Size of packet length field (does not include message type byte)
	MessageFrameSize = 5 // Tag byte plus length field, the minimum decodable unit
)
