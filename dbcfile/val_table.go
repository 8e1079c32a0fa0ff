package dbcfile

import dbc "github.com/canlinelabs/godbc"

// handleValTable parses "VAL_TABLE_ table_name value1 "desc1" ... ;", a
// named, reusable value table that VAL_ entries may reference by name.
func handleValTable(c *cursor, s *parseState) error {
	c.expect(kwValTable)
	c.skipNewlinesAndSpaces()

	name, ok := c.parseIdentifier()
	if !ok {
		c.skipToEndOfLine()
		return nil
	}
	c.skipNewlinesAndSpaces()

	entries := parseValueTableEntries(c)
	s.valueTables = append(s.valueTables, dbc.ValueTable{Name: name, Entries: entries})
	c.skipToEndOfLine()
	return nil
}
