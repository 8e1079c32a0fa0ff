package dbcfile

import dbc "github.com/canlinelabs/godbc"

// handleCM parses "CM_ [BU_ node | BO_ id | SG_ id name | EV_ name] "text" ;"
// — a comment attached to a node, message, signal, environment variable, or
// (with no object prefix) the document as a whole.
func handleCM(c *cursor, s *parseState) error {
	c.expect(kwCM)
	c.skipNewlinesAndSpaces()

	entry := dbc.CommentEntry{ObjectType: dbc.CommentGeneral}

	switch {
	case c.expect(kwBU):
		c.skipNewlinesAndSpaces()
		name, _ := c.parseIdentifier()
		entry.ObjectType = dbc.CommentNode
		entry.NodeName = name
	case c.expect(kwBO):
		c.skipNewlinesAndSpaces()
		id, _ := c.parseU32()
		entry.ObjectType = dbc.CommentMessage
		entry.MessageID = id
	case c.expect(kwSG):
		c.skipNewlinesAndSpaces()
		id, _ := c.parseU32()
		c.skipNewlinesAndSpaces()
		name, _ := c.parseIdentifier()
		entry.ObjectType = dbc.CommentSignal
		entry.MessageID = id
		entry.SignalName = name
	case c.expect(kwEV):
		c.skipNewlinesAndSpaces()
		name, _ := c.parseIdentifier()
		entry.ObjectType = dbc.CommentEnvironmentVariable
		entry.EnvVarName = name
	}
	c.skipNewlinesAndSpaces()

	if c.expect(`"`) {
		text, ok := c.takeUntilQuote()
		if ok {
			entry.Text = text
		}
	}
	c.skipNewlinesAndSpaces()
	c.expect(";")

	s.comments = append(s.comments, entry)
	c.skipToEndOfLine()
	return nil
}
