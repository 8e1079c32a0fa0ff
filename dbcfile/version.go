package dbcfile

import dbc "github.com/canlinelabs/godbc"

// handleVersion parses VERSION "text". The keyword has already been peeked
// but not consumed.
func handleVersion(c *cursor, s *parseState) error {
	c.expect(kwVersion)
	c.skipNewlinesAndSpaces()
	if !c.expect(`"`) {
		c.skipToEndOfLine()
		return nil
	}
	text, ok := c.takeUntilQuote()
	if !ok {
		c.skipToEndOfLine()
		return nil
	}
	s.version = dbc.Version{Set: true, Value: text}
	c.skipToEndOfLine()
	return nil
}
