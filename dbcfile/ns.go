package dbcfile

// handleNS consumes an NS_ : block. The statement's body is the list of
// new-symbol names Vector tooling understands (VAL_TABLE_, BA_, ...); this
// module derives no behavior from it, so lines are skipped until one that
// starts with BS_, BU_, BO_, SG_ or VERSION, as the original parser does.
func handleNS(c *cursor) error {
	c.expect(kwNS)
	c.skipNewlinesAndSpaces()
	c.expect(":")

	for {
		c.skipNewlinesAndSpaces()
		if c.atEOF() {
			return nil
		}
		// NS_'s body lines are indented new-symbol names (CM_, BA_, ...);
		// only the handful of keywords that start the next real section
		// end the block, matching the original parser's behavior.
		if c.startsWith(kwBS) || c.startsWith(kwBU) || c.startsWith(kwBO) ||
			c.startsWith(kwSG) || c.startsWith(kwVersion) {
			return nil
		}
		c.skipToEndOfLine()
	}
}
