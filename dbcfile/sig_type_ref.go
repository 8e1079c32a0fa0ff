package dbcfile

import dbc "github.com/canlinelabs/godbc"

// handleSigTypeRef parses "SIG_TYPE_REF_ message_id signal_name : type_name ;",
// linking a signal to a reusable SGTYPE_ template.
func handleSigTypeRef(c *cursor, s *parseState) error {
	c.expect(kwSigTypeRef)
	c.skipNewlinesAndSpaces()

	id, ok := c.parseU32()
	if !ok {
		c.skipToEndOfLine()
		return nil
	}
	c.skipNewlinesAndSpaces()

	signalName, ok := c.parseIdentifier()
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

	typeName, ok := c.parseIdentifier()
	if !ok {
		c.skipToEndOfLine()
		return nil
	}

	s.signalTypeRefs = append(s.signalTypeRefs, dbc.SignalTypeReference{
		MessageID:      id,
		SignalName:     signalName,
		SignalTypeName: typeName,
	})
	c.skipNewlinesAndSpaces()
	c.expect(";")
	c.skipToEndOfLine()
	return nil
}
