package dbcfile

import dbc "github.com/canlinelabs/godbc"

// handleSigGroup parses "SIG_GROUP_ message_id group_name repetitions : sig1 sig2 ... ;".
// The colon before the signal list is optional; some tools omit it.
func handleSigGroup(c *cursor, s *parseState) error {
	c.expect(kwSigGroup)
	c.skipNewlinesAndSpaces()

	id, ok := c.parseU32()
	if !ok {
		c.skipToEndOfLine()
		return nil
	}
	c.skipNewlinesAndSpaces()

	name, ok := c.parseIdentifier()
	if !ok {
		c.skipToEndOfLine()
		return nil
	}
	c.skipNewlinesAndSpaces()

	repetitions, ok := c.parseU32()
	if !ok {
		c.skipToEndOfLine()
		return nil
	}
	c.skipNewlinesAndSpaces()
	c.expect(":")

	var signalNames []string
	for {
		c.skipNewlinesAndSpaces()
		if c.expect(";") || c.atEOF() {
			break
		}
		sigName, ok := c.parseIdentifier()
		if !ok {
			break
		}
		signalNames = append(signalNames, sigName)
	}

	s.signalGroups = append(s.signalGroups, dbc.SignalGroup{
		MessageID:   id,
		Name:        name,
		Repetitions: repetitions,
		SignalNames: signalNames,
	})
	c.skipToEndOfLine()
	return nil
}
