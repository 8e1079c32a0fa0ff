package dbcfile

import dbc "github.com/canlinelabs/godbc"

// handleBA parses "BA_ "name" [BU_ node | BO_ id | SG_ id name | EV_ name] value ;".
func handleBA(c *cursor, s *parseState) error {
	c.expect(kwBA)
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

	target := dbc.AttributeTarget{ObjectType: dbc.AttributeNetwork}
	switch {
	case c.expect(kwBU):
		c.skipNewlinesAndSpaces()
		nodeName, _ := c.parseIdentifier()
		target = dbc.AttributeTarget{ObjectType: dbc.AttributeNode, NodeName: nodeName}
	case c.expect(kwBO):
		c.skipNewlinesAndSpaces()
		id, _ := c.parseU32()
		target = dbc.AttributeTarget{ObjectType: dbc.AttributeMessage, MessageID: id}
	case c.expect(kwSG):
		c.skipNewlinesAndSpaces()
		id, _ := c.parseU32()
		c.skipNewlinesAndSpaces()
		sigName, _ := c.parseIdentifier()
		target = dbc.AttributeTarget{ObjectType: dbc.AttributeSignal, MessageID: id, SignalName: sigName}
	case c.expect(kwEV):
		c.skipNewlinesAndSpaces()
		envName, _ := c.parseIdentifier()
		target = dbc.AttributeTarget{ObjectType: dbc.AttributeEnvironmentVariable, EnvVarName: envName}
	}
	c.skipNewlinesAndSpaces()

	value, ok := parseAttributeValue(c)
	if !ok {
		c.skipToEndOfLine()
		return nil
	}
	c.skipNewlinesAndSpaces()
	c.expect(";")

	s.attributeValues = append(s.attributeValues, dbc.AttributeValueEntry{
		Name:   name,
		Target: target,
		Value:  value,
	})
	c.skipToEndOfLine()
	return nil
}
