package dbcfile

import (
	dbc "github.com/canlinelabs/godbc"
)

// handleBO parses a BO_ header line and every indented SG_ line that
// follows it, stopping at the next top-level keyword. Unlike the original
// parser (which pre-scans a fixed-capacity signal array to keep message
// header and body in separate sub-parsers), a Go slice lets this collect
// signals in one forward pass.
func handleBO(c *cursor, s *parseState, opts dbc.ParseOptions) error {
	line := c.line()
	c.expect(kwBO)
	c.skipNewlinesAndSpaces()

	id, ok := c.parseU32()
	if !ok {
		return opts.NewStatementError(dbc.KindMessage, dbc.ReasonMessageInvalidID, line)
	}
	c.skipNewlinesAndSpaces()

	name, ok := c.parseIdentifier()
	if !ok {
		return opts.NewStatementError(dbc.KindMessage, dbc.ReasonMessageNameEmpty, line)
	}
	c.skipNewlinesAndSpaces()

	if !c.expect(":") {
		return opts.NewStatementError(dbc.KindMessage, dbc.ReasonMessageInvalidDLC, line)
	}
	c.skipNewlinesAndSpaces()

	dlc, ok := c.parseU8()
	if !ok {
		return opts.NewStatementError(dbc.KindMessage, dbc.ReasonMessageInvalidDLC, line)
	}
	c.skipNewlinesAndSpaces()

	sender, ok := c.parseIdentifier()
	if !ok {
		return opts.NewStatementError(dbc.KindMessage, dbc.ReasonMessageSenderEmpty, line)
	}
	c.skipToEndOfLine()

	var signals []dbc.Signal
	for {
		save := c.pos
		c.skipNewlinesAndSpaces()
		if !c.startsWith(kwSG) {
			c.pos = save
			break
		}
		next, hasNext := c.peekByteAt(len(kwSG))
		if hasNext && isIdentByte(next) {
			// A longer keyword that starts with SG_ (SG_MUL_VAL_), not a
			// bare signal line: stop the message body here.
			c.pos = save
			break
		}
		sig, err := parseSignal(c, opts)
		if err != nil {
			if opts.Logger != nil {
				opts.Logger.Warn("dbcfile: skipping malformed SG_ line", "message_id", id, "error", err.Error())
			}
			c.skipToEndOfLine()
			continue
		}
		signals = append(signals, sig)
	}

	s.messages = append(s.messages, dbc.Message{
		ID:      id,
		Name:    name,
		DLC:     dlc,
		Sender:  sender,
		Signals: signals,
	})
	return nil
}

// parseSignal parses one "SG_ name[mux] : start|length@order+- (factor,offset) [min|max] "unit" receivers" line.
func parseSignal(c *cursor, opts dbc.ParseOptions) (dbc.Signal, error) {
	line := c.line()
	c.expect(kwSG)
	c.skipSpaces()

	name, ok := c.parseIdentifier()
	if !ok {
		return dbc.Signal{}, opts.NewStatementError(dbc.KindSignal, dbc.ReasonSignalNameEmpty, line)
	}
	c.skipSpaces()

	mux, err := parseMuxIndicator(c)
	if err != nil {
		return dbc.Signal{}, opts.NewStatementError(dbc.KindSignal, dbc.ReasonInvalidStartBit, line)
	}
	c.skipSpaces()

	if !c.expect(":") {
		return dbc.Signal{}, opts.NewStatementError(dbc.KindSignal, dbc.ReasonInvalidStartBit, line)
	}
	c.skipSpaces()

	startBit, ok := c.parseU32()
	if !ok {
		return dbc.Signal{}, opts.NewStatementError(dbc.KindSignal, dbc.ReasonInvalidStartBit, line)
	}
	if !c.expect("|") {
		return dbc.Signal{}, opts.NewStatementError(dbc.KindSignal, dbc.ReasonInvalidStartBit, line)
	}
	length, ok := c.parseU32()
	if !ok {
		return dbc.Signal{}, opts.NewStatementError(dbc.KindSignal, dbc.ReasonSignalLengthTooSmall, line)
	}
	if !c.expect("@") {
		return dbc.Signal{}, opts.NewStatementError(dbc.KindSignal, dbc.ReasonInvalidStartBit, line)
	}

	byteOrder := dbc.Intel
	if c.expect("0") {
		byteOrder = dbc.Motorola
	} else if !c.expect("1") {
		return dbc.Signal{}, opts.NewStatementError(dbc.KindSignal, dbc.ReasonInvalidStartBit, line)
	}

	signed := false
	if c.expect("-") {
		signed = true
	} else if !c.expect("+") {
		return dbc.Signal{}, opts.NewStatementError(dbc.KindSignal, dbc.ReasonInvalidStartBit, line)
	}
	c.skipSpaces()

	if !c.expect("(") {
		return dbc.Signal{}, opts.NewStatementError(dbc.KindSignal, dbc.ReasonSignalFactorZero, line)
	}
	factor, ok := c.parseF64()
	if !ok || !c.expect(",") {
		return dbc.Signal{}, opts.NewStatementError(dbc.KindSignal, dbc.ReasonSignalFactorZero, line)
	}
	offset, ok := c.parseF64()
	if !ok || !c.expect(")") {
		return dbc.Signal{}, opts.NewStatementError(dbc.KindSignal, dbc.ReasonSignalFactorZero, line)
	}
	c.skipSpaces()

	if !c.expect("[") {
		return dbc.Signal{}, opts.NewStatementError(dbc.KindSignal, dbc.ReasonInvalidRange, line)
	}
	min, ok := c.parseF64()
	if !ok || !c.expect("|") {
		return dbc.Signal{}, opts.NewStatementError(dbc.KindSignal, dbc.ReasonInvalidRange, line)
	}
	max, ok := c.parseF64()
	if !ok || !c.expect("]") {
		return dbc.Signal{}, opts.NewStatementError(dbc.KindSignal, dbc.ReasonInvalidRange, line)
	}
	c.skipSpaces()

	unit := ""
	if c.expect(`"`) {
		u, ok := c.takeUntilQuote()
		if !ok {
			return dbc.Signal{}, opts.NewStatementError(dbc.KindExpected, dbc.ReasonUnterminatedString, line)
		}
		unit = u
	}
	c.skipSpaces()

	receivers := parseReceivers(c)
	c.skipToEndOfLine()

	return dbc.Signal{
		Name:      name,
		StartBit:  uint16(startBit),
		Length:    uint16(length),
		ByteOrder: byteOrder,
		Signed:    signed,
		Factor:    factor,
		Offset:    offset,
		Min:       min,
		Max:       max,
		Unit:      unit,
		Receivers: receivers,
		Mux:       mux,
	}, nil
}

// parseMuxIndicator reads an optional M, m<u64>, or m<u64>M token
// immediately following a signal's name.
func parseMuxIndicator(c *cursor) (dbc.MuxRole, error) {
	if c.expect("M") {
		return dbc.SwitchRole(), nil
	}
	if b, ok := c.peekByte(); ok && b == 'm' {
		save := c.pos
		c.pos++
		v, ok := c.parseU64()
		if !ok {
			c.pos = save
			return dbc.NormalRole(), nil
		}
		c.expect("M") // nested multiplexed-and-switch: the trailing M is consumed but not separately modeled
		return dbc.MultiplexedRole(v), nil
	}
	return dbc.NormalRole(), nil
}

// parseReceivers reads the comma-separated receiver list or the Vector__XXX
// sentinel that ends a SG_ line.
func parseReceivers(c *cursor) dbc.Receivers {
	var names []string
	for {
		name, ok := c.parseIdentifier()
		if !ok {
			break
		}
		if name != dbc.VectorXXX {
			names = append(names, name)
		}
		c.skipSpaces()
		if !c.expect(",") {
			break
		}
		c.skipSpaces()
	}
	if len(names) == 0 {
		return dbc.NoReceivers()
	}
	return dbc.NewReceivers(names...)
}
