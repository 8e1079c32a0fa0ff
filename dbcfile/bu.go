package dbcfile

import dbc "github.com/canlinelabs/godbc"

// handleBU parses "BU_: node1 node2 ...", a single line (no semicolon) of
// space-separated node names following the colon.
func handleBU(c *cursor, s *parseState, opts dbc.ParseOptions) error {
	c.expect(kwBU)
	c.skipNewlinesAndSpaces()
	if !c.expect(":") {
		c.skipToEndOfLine()
		return nil
	}

	for {
		c.skipSpaces()
		if c.atEOF() || isNewline(mustPeek(c)) {
			break
		}
		name, ok := c.parseIdentifier()
		if !ok {
			break
		}
		s.nodes = append(s.nodes, dbc.Node{Name: name})
	}
	c.skipToEndOfLine()
	return nil
}

func mustPeek(c *cursor) byte {
	b, ok := c.peekByte()
	if !ok {
		return '\n'
	}
	return b
}
