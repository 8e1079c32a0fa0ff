package dbcfile

import (
	dbc "github.com/canlinelabs/godbc"
)

// Parse reads DBC text and returns a validated Document. It runs dbc.Build
// before returning, so a non-nil Document is always structurally valid
// under opts; a malformed statement that cannot be recovered by skipping to
// end of line (an unterminated quoted string, invalid UTF-8, EOF mid
// keyword) is the only thing that fails the parse itself.
func Parse(data []byte, opts dbc.ParseOptions) (*dbc.Document, error) {
	c := newCursor(data)
	state := newParseState()

	for {
		c.skipNewlinesAndSpaces()
		if c.startsWith("//") {
			c.skipToEndOfLine()
			continue
		}
		if c.atEOF() {
			break
		}

		kw, ok := peekKeyword(c)
		if !ok {
			// Unknown statement: skip it rather than fail the parse.
			c.skipToEndOfLine()
			continue
		}

		if err := dispatch(c, state, kw, opts); err != nil {
			// Input that ran out mid-statement is a more useful root cause
			// than whatever domain-specific reason the handler reported.
			if c.eofLine != 0 {
				return nil, opts.NewStatementError(dbc.KindUnexpectedEOF, dbc.ReasonUnexpectedEOF, c.eofLine)
			}
			return nil, err
		}
		if c.invalidCharLine != 0 {
			return nil, opts.NewStatementError(dbc.KindInvalidChar, c.invalidCharReason, c.invalidCharLine)
		}
		if c.overflowLine != 0 {
			return nil, opts.NewStatementError(dbc.KindMaxStrLength, dbc.ReasonMaxStrLength, c.overflowLine)
		}
	}

	doc := state.buildDocument()
	if err := dbc.Build(doc, opts); err != nil {
		return nil, err
	}
	return doc, nil
}

func dispatch(c *cursor, s *parseState, kw string, opts dbc.ParseOptions) error {
	if unimplementedKeywords[kw] {
		return handleUnimplemented(c, kw)
	}
	switch kw {
	case kwVersion:
		return handleVersion(c, s)
	case kwNS:
		return handleNS(c)
	case kwBS:
		return handleBS(c, s)
	case kwBU:
		return handleBU(c, s, opts)
	case kwBO:
		return handleBO(c, s, opts)
	case kwBOTxBU:
		return handleBOTxBU(c, s)
	case kwCM:
		return handleCM(c, s)
	case kwBADef:
		return handleBADef(c, s)
	case kwBADefDef:
		return handleBADefDef(c, s)
	case kwBA:
		return handleBA(c, s)
	case kwBASGType:
		return handleBASGType(c, s)
	case kwBADefSGType:
		return handleBADefSGType(c, s)
	case kwVal:
		return handleVal(c, s)
	case kwValTable:
		return handleValTable(c, s)
	case kwSigGroup:
		return handleSigGroup(c, s)
	case kwSigValType:
		return handleSigValType(c, s)
	case kwSGMulVal:
		return handleSGMulVal(c, s)
	case kwEV:
		return handleEV(c, s)
	case kwEnvVarData:
		return handleEnvVarData(c, s)
	case kwEVData:
		return handleEVData(c, s)
	case kwSGType:
		return handleSGType(c, s)
	case kwSGTypeVal:
		return handleSGTypeVal(c, s)
	case kwSigTypeRef:
		return handleSigTypeRef(c, s)
	default:
		c.skipToEndOfLine()
		return nil
	}
}
