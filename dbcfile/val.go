package dbcfile

import dbc "github.com/canlinelabs/godbc"

// handleVal parses "VAL_ message_id signal_name value1 "desc1" value2 "desc2" ... ;".
// A VAL_ whose message_id does not parse as a number (Vector tooling never
// emits this, but some hand-edited files use VAL_ signal_name ... for a
// global/wildcard table) is treated as global, matching spec.md §9's
// resolution of VAL_'s wildcard semantics.
func handleVal(c *cursor, s *parseState) error {
	c.expect(kwVal)
	c.skipNewlinesAndSpaces()

	save := c.pos
	id, isMessageScoped := c.parseU32()
	if !isMessageScoped {
		c.pos = save
	}
	c.skipNewlinesAndSpaces()

	signalName, ok := c.parseIdentifier()
	if !ok {
		c.skipToEndOfLine()
		return nil
	}
	c.skipNewlinesAndSpaces()

	entries := parseValueTableEntries(c)

	s.valueDescriptions = append(s.valueDescriptions, dbc.ValueDescriptions{
		Global:     !isMessageScoped,
		MessageID:  id,
		SignalName: signalName,
		Entries:    entries,
	})
	c.skipToEndOfLine()
	return nil
}

// parseValueTableEntries reads the repeated "value "description"" pairs
// shared by VAL_ and VAL_TABLE_, up to the terminating semicolon.
func parseValueTableEntries(c *cursor) []dbc.ValueTableEntry {
	var entries []dbc.ValueTableEntry
	for {
		c.skipNewlinesAndSpaces()
		if c.expect(";") || c.atEOF() {
			break
		}
		value, ok := c.parseU64()
		if !ok {
			break
		}
		c.skipNewlinesAndSpaces()
		if !c.expect(`"`) {
			break
		}
		desc, ok := c.takeUntilQuote()
		if !ok {
			break
		}
		entries = append(entries, dbc.ValueTableEntry{Value: value, Desc: desc})
	}
	return entries
}
