package dbcfile

import dbc "github.com/canlinelabs/godbc"

// handleBADefDef parses "BA_DEF_DEF_ "name" value ;", the default value for
// an attribute definition.
func handleBADefDef(c *cursor, s *parseState) error {
	c.expect(kwBADefDef)
	c.skipNewlinesAndSpaces()

	if !c.expect(`"`) {
		c.skipToEndOfLine()
		return nil
	}
	name, ok := c.takeUntilQuote()
	if !ok {
		c.skipToEndOfLine()
		return nil
	}
	c.skipNewlinesAndSpaces()

	value, ok := parseAttributeValue(c)
	if !ok {
		c.skipToEndOfLine()
		return nil
	}
	c.skipNewlinesAndSpaces()
	c.expect(";")

	s.attributeDefaults = append(s.attributeDefaults, dbc.AttributeDefault{Name: name, Value: value})
	c.skipToEndOfLine()
	return nil
}
