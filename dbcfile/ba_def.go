package dbcfile

import dbc "github.com/canlinelabs/godbc"

// handleBADef parses "BA_DEF_ [BU_|BO_|SG_|EV_] "name" value_type ;". A
// missing object-type prefix means the attribute is network/global-scoped.
func handleBADef(c *cursor, s *parseState) error {
	c.expect(kwBADef)
	c.skipNewlinesAndSpaces()

	objectType := dbc.AttributeNetwork
	switch {
	case c.expect(kwBU):
		objectType = dbc.AttributeNode
	case c.expect(kwBO):
		objectType = dbc.AttributeMessage
	case c.expect(kwSG):
		objectType = dbc.AttributeSignal
	case c.expect(kwEV):
		objectType = dbc.AttributeEnvironmentVariable
	}
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

	valueType, ok := parseAttributeValueType(c)
	if !ok {
		c.skipToEndOfLine()
		return nil
	}
	c.skipNewlinesAndSpaces()
	c.expect(";")

	s.attributeDefinitions = append(s.attributeDefinitions, dbc.AttributeDefinition{
		ObjectType: objectType,
		Name:       name,
		ValueType:  valueType,
	})
	c.skipToEndOfLine()
	return nil
}
