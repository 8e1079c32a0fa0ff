package dbcfile

import dbc "github.com/canlinelabs/godbc"

// handleBS parses the optional BS_: [baudrate [: BTR1, BTR2]] bit-timing
// statement. Every field is optional; a bare "BS_:" is valid and leaves
// s.bitTiming zero-valued except Set.
func handleBS(c *cursor, s *parseState) error {
	c.expect(kwBS)
	c.skipNewlinesAndSpaces()
	if !c.expect(":") {
		c.skipToEndOfLine()
		return nil
	}
	c.skipSpaces()

	bt := dbc.BitTiming{Set: true}
	if baud, ok := c.parseU32(); ok {
		bt.Baudrate = baud
	}
	c.skipSpaces()

	if c.expect(":") {
		c.skipSpaces()
		if btr1, ok := c.parseU32(); ok {
			bt.BTR1 = btr1
		}
		c.skipSpaces()
		if c.expect(",") {
			c.skipSpaces()
			if btr2, ok := c.parseU32(); ok {
				bt.BTR2 = btr2
			}
		}
	}

	if !s.bitTiming.Set {
		s.bitTiming = bt
	}
	c.skipToEndOfLine()
	return nil
}
