package dbcfile

import dbc "github.com/canlinelabs/godbc"

// handleBOTxBU parses "BO_TX_BU_ message_id : node1, node2, ... ;".
func handleBOTxBU(c *cursor, s *parseState) error {
	c.expect(kwBOTxBU)
	c.skipNewlinesAndSpaces()

	id, ok := c.parseU32()
	if !ok {
		c.skipToEndOfLine()
		return nil
	}
	c.skipNewlinesAndSpaces()
	if !c.expect(":") {
		c.skipToEndOfLine()
		return nil
	}

	var names []string
	for {
		c.skipNewlinesAndSpaces()
		if c.expect(";") {
			break
		}
		if c.atEOF() {
			break
		}
		name, ok := c.parseIdentifier()
		if !ok {
			break
		}
		names = append(names, name)
		c.skipNewlinesAndSpaces()
		c.expect(",")
	}

	s.transmitters = append(s.transmitters, dbc.MessageTransmitters{MessageID: id, NodeNames: names})
	c.skipToEndOfLine()
	return nil
}
