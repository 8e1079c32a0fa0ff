package dbc

import "fmt"

// Kind identifies one member of the closed error taxonomy a caller can
// switch on. It never grows a new case silently from input; every handler
// that returns an Error sets Kind to one of the constants below.
type Kind int

const (
	// KindUnexpectedEOF means the input ended inside a statement.
	KindUnexpectedEOF Kind = iota
	// KindExpected means a required literal, identifier, number, or quoted
	// string was absent at the current position.
	KindExpected
	// KindInvalidChar means a character is disallowed in the current lexical
	// context (e.g. an unescaped control byte inside a quoted string).
	KindInvalidChar
	// KindMaxStrLength means a quoted string or identifier exceeded its
	// configured capacity.
	KindMaxStrLength
	// KindVersion is a VERSION statement failure.
	KindVersion
	// KindMessage is a BO_ statement or message-level validation failure.
	KindMessage
	// KindSignal is an SG_ statement or signal-level validation failure.
	KindSignal
	// KindNodes is a BU_ statement or node-list validation failure.
	KindNodes
	// KindReceivers is a signal receiver-list failure.
	KindReceivers
	// KindDecoding is a codec failure raised by Decode/Encode.
	KindDecoding
	// KindValidation is a Document-level structural-invariant failure
	// raised by Build.
	KindValidation
)

func (k Kind) String() string {
	switch k {
	case KindUnexpectedEOF:
		return "UnexpectedEof"
	case KindExpected:
		return "Expected"
	case KindInvalidChar:
		return "InvalidChar"
	case KindMaxStrLength:
		return "MaxStrLength"
	case KindVersion:
		return "Version"
	case KindMessage:
		return "Message"
	case KindSignal:
		return "Signal"
	case KindNodes:
		return "Nodes"
	case KindReceivers:
		return "Receivers"
	case KindDecoding:
		return "Decoding"
	case KindValidation:
		return "Validation"
	default:
		return "Unknown"
	}
}

// Reason codes. These are stable identifiers: callers may match on them
// across locales and across releases. The human-readable Message on an
// Error is allowed to change; Reason is not.
const (
	ReasonExpectedKeyword    = "EXPECTED_KEYWORD"
	ReasonUnexpectedEOF      = "UNEXPECTED_EOF"
	ReasonInvalidChar        = "INVALID_CHAR"
	ReasonInvalidUTF8        = "INVALID_UTF8"
	ReasonMaxStrLength       = "MAX_STR_LENGTH"
	ReasonUnterminatedString = "UNTERMINATED_STRING"

	ReasonNodesDuplicateName  = "NODES_DUPLICATE_NAME"
	ReasonNodeNameEmpty       = "NODE_NAME_EMPTY"
	ReasonSenderNotInNodes    = "SENDER_NOT_IN_NODES"
	ReasonReceiverNotInNodes  = "RECEIVER_NOT_IN_NODES"

	ReasonMessageNameEmpty          = "MESSAGE_NAME_EMPTY"
	ReasonMessageSenderEmpty        = "MESSAGE_SENDER_EMPTY"
	ReasonMessageInvalidID          = "MESSAGE_INVALID_ID"
	ReasonMessageInvalidDLC         = "MESSAGE_INVALID_DLC"
	ReasonMessageDLCTooSmall        = "MESSAGE_DLC_TOO_SMALL"
	ReasonMessageDLCTooLarge        = "MESSAGE_DLC_TOO_LARGE"
	ReasonMessageIDOutOfRange       = "MESSAGE_ID_OUT_OF_RANGE"
	ReasonDuplicateMessageID        = "DUPLICATE_MESSAGE_ID"
	ReasonMessageTooManySignals     = "MESSAGE_TOO_MANY_SIGNALS"
	ReasonSignalExtendsBeyondMsg    = "SIGNAL_EXTENDS_BEYOND_MESSAGE"
	ReasonSignalOverlap             = "SIGNAL_OVERLAP"
	ReasonMultipleSwitchSignals     = "MULTIPLE_SWITCH_SIGNALS"
	ReasonTooManyMessages           = "TOO_MANY_MESSAGES"

	ReasonSignalNameEmpty       = "SIGNAL_NAME_EMPTY"
	ReasonSignalNameDuplicate   = "SIGNAL_NAME_DUPLICATE"
	ReasonSignalLengthTooSmall  = "SIGNAL_LENGTH_TOO_SMALL"
	ReasonSignalLengthTooLarge  = "SIGNAL_LENGTH_TOO_LARGE"
	ReasonSignalFactorZero      = "SIGNAL_FACTOR_ZERO"
	ReasonInvalidRange          = "INVALID_RANGE"
	ReasonInvalidStartBit       = "INVALID_START_BIT"
	ReasonInvalidFloatLength    = "INVALID_FLOAT_LENGTH"

	ReasonValueDescriptionSignalNotFound = "VALUE_DESCRIPTION_SIGNAL_NOT_FOUND"
	ReasonExtendedMuxSwitchNotFound      = "EXTENDED_MUX_SWITCH_NOT_FOUND"
	ReasonExtendedMuxSignalNotMultiplexed = "EXTENDED_MUX_SIGNAL_NOT_MULTIPLEXED"
	ReasonExtendedMuxCycle               = "EXTENDED_MUX_CYCLE"

	ReasonSignalExtendsBeyondData = "SIGNAL_EXTENDS_BEYOND_DATA"
	ReasonMessageNotFound         = "MESSAGE_NOT_FOUND"
	ReasonSignalNotInMessage      = "SIGNAL_NOT_IN_MESSAGE"
	ReasonValueOutOfRange         = "VALUE_OUT_OF_RANGE"
	ReasonPayloadTooShort         = "PAYLOAD_TOO_SHORT"
)

// Error is the single public error type for this module. It carries a Kind
// (for programmatic dispatch), a stable Reason code, an optional source
// Line, and a human-readable Message that MAY be localized by a Translator
// without changing Kind or Reason.
type Error struct {
	Kind    Kind
	Reason  string
	Line    int // 1-based; 0 means "not applicable" (e.g. a codec error)
	Message string
}

func (e *Error) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("%s: %s (line %d)", e.Kind, e.Message, e.Line)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// Is lets errors.Is match sentinels built with ReasonOnly, comparing only
// Kind and Reason.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Kind == t.Kind && e.Reason == t.Reason
}

// ReasonOnly builds a comparison sentinel: errors.Is(err, dbc.ReasonOnly(dbc.KindValidation, dbc.ReasonSignalOverlap)).
func ReasonOnly(kind Kind, reason string) *Error {
	return &Error{Kind: kind, Reason: reason}
}

func newErr(kind Kind, reason string, line int, msg string) *Error {
	return &Error{Kind: kind, Reason: reason, Line: line, Message: msg}
}

// NewError constructs an Error with a default English message derived from
// the reason code. The codec and multiplexer code use it; dbcfile and the
// validator build their errors through ParseOptions instead, so that a
// Translator (see the lang subpackage) applies to them.
func NewError(kind Kind, reason string, line int) *Error {
	return newErr(kind, reason, line, defaultMessage(kind, reason))
}

func defaultMessage(kind Kind, reason string) string {
	if msg, ok := messageTable[reason]; ok {
		return msg
	}
	return fmt.Sprintf("%s error (%s)", kind, reason)
}

// messageTable holds the default (English) human-readable text for each
// reason code. A Translator (dbc/lang) may substitute this table at
// Document-build or parse time without altering Kind/Reason.
var messageTable = map[string]string{
	ReasonExpectedKeyword:    "expected a known DBC keyword",
	ReasonUnexpectedEOF:      "input ended in the middle of a statement",
	ReasonInvalidChar:        "disallowed character in this lexical context",
	ReasonInvalidUTF8:        "quoted string is not valid UTF-8",
	ReasonMaxStrLength:       "name or quoted string exceeds the configured length limit",
	ReasonUnterminatedString: "quoted string is missing its closing quote",

	ReasonNodesDuplicateName: "duplicate node name",
	ReasonNodeNameEmpty:      "node name must not be empty",
	ReasonSenderNotInNodes:   "sender does not reference a known node",
	ReasonReceiverNotInNodes: "receiver does not reference a known node",

	ReasonMessageNameEmpty:       "message name must not be empty",
	ReasonMessageSenderEmpty:     "message sender must not be empty",
	ReasonMessageInvalidID:       "message id could not be parsed",
	ReasonMessageInvalidDLC:      "message DLC could not be parsed",
	ReasonMessageDLCTooSmall:     "message DLC must be at least 1",
	ReasonMessageDLCTooLarge:     "message DLC must not exceed 64",
	ReasonMessageIDOutOfRange:    "message id exceeds the 29-bit extended range",
	ReasonDuplicateMessageID:     "duplicate message id",
	ReasonMessageTooManySignals:  "message has more signals than the configured capacity",
	ReasonSignalExtendsBeyondMsg: "signal bit range extends beyond the message DLC",
	ReasonSignalOverlap:          "two non-multiplexed signals occupy overlapping bits",
	ReasonMultipleSwitchSignals:  "a message may have at most one multiplexer switch signal",
	ReasonTooManyMessages:        "document has more messages than the configured capacity",

	ReasonSignalNameEmpty:      "signal name must not be empty",
	ReasonSignalNameDuplicate:  "duplicate signal name within a message",
	ReasonSignalLengthTooSmall: "signal length must be at least 1 bit",
	ReasonSignalLengthTooLarge: "signal length must not exceed 512 bits",
	ReasonSignalFactorZero:     "signal factor must not be zero",
	ReasonInvalidRange:         "signal min must not exceed max",
	ReasonInvalidStartBit:      "signal start bit is out of range",
	ReasonInvalidFloatLength:   "float-typed signal must be exactly 32 or 64 bits",

	ReasonValueDescriptionSignalNotFound:  "VAL_ references a signal that does not exist",
	ReasonExtendedMuxSwitchNotFound:       "SG_MUL_VAL_ references a switch signal that does not exist",
	ReasonExtendedMuxSignalNotMultiplexed: "SG_MUL_VAL_ target signal is not a multiplexed signal",
	ReasonExtendedMuxCycle:                "extended multiplexing switches form a cycle",

	ReasonSignalExtendsBeyondData: "signal bit range extends beyond the supplied payload",
	ReasonMessageNotFound:         "no message with that id is defined",
	ReasonSignalNotInMessage:      "no signal with that name is defined on the message",
	ReasonValueOutOfRange:         "encoded value is outside the signal's [min, max] range",
	ReasonPayloadTooShort:         "payload is shorter than the signal's declared bit range requires",
}
