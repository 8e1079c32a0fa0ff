package dbcfile

import dbc "github.com/canlinelabs/godbc"

// handleSigValType parses "SIG_VALTYPE_ message_id signal_name : value_type ;"
// where value_type is 0 (integer, the default and rarely written explicitly),
// 1 (float32) or 2 (float64). The result is folded onto the named signal
// once the whole document has been parsed, since this statement commonly
// appears after the BO_ block that defines the signal.
func handleSigValType(c *cursor, s *parseState) error {
	c.expect(kwSigValType)
	c.skipNewlinesAndSpaces()

	id, ok := c.parseU32()
	if !ok {
		c.skipToEndOfLine()
		return nil
	}
	c.skipNewlinesAndSpaces()

	name, ok := c.parseIdentifier()
	if !ok {
		c.skipToEndOfLine()
		return nil
	}
	c.skipNewlinesAndSpaces()
	if !c.expect(":") {
		c.skipToEndOfLine()
		return nil
	}
	c.skipNewlinesAndSpaces()

	n, ok := c.parseU32()
	if !ok || n > 2 {
		c.skipToEndOfLine()
		return nil
	}

	var vt dbc.ExtendedValueType
	switch n {
	case 1:
		vt = dbc.ValueFloat32
	case 2:
		vt = dbc.ValueFloat64
	default:
		vt = dbc.ValueInteger
	}
	s.signalValueTypes[signalKey{id, name}] = vt

	c.skipNewlinesAndSpaces()
	c.expect(";")
	c.skipToEndOfLine()
	return nil
}
