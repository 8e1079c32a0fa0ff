package dbcfile

import dbc "github.com/canlinelabs/godbc"

// handleEV parses:
//
//	EV_ name : type [min|max] "unit" initial ev_id DUMMY_NODE_VECTORn node1,node2 ;
//
// Environment variables are stored opaquely: this module exposes them for
// lookup but assigns them no decoding behavior (spec.md §4.3).
func handleEV(c *cursor, s *parseState) error {
	c.expect(kwEV)
	c.skipNewlinesAndSpaces()

	name, ok := c.parseIdentifier()
	if !ok {
		c.skipToEndOfLine()
		return nil
	}
	c.skipNewlinesAndSpaces()
	if !c.expect(":") {
		c.skipToEndOfLine()
		return nil
	}
	c.skipNewlinesAndSpaces()

	kind, ok := c.parseU32()
	if !ok {
		c.skipToEndOfLine()
		return nil
	}
	c.skipNewlinesAndSpaces()

	if !c.expect("[") {
		c.skipToEndOfLine()
		return nil
	}
	min, ok1 := c.parseF64()
	c.skipNewlinesAndSpaces()
	if !c.expect("|") {
		c.skipToEndOfLine()
		return nil
	}
	max, ok2 := c.parseF64()
	c.skipNewlinesAndSpaces()
	if !ok1 || !ok2 || !c.expect("]") {
		c.skipToEndOfLine()
		return nil
	}
	c.skipNewlinesAndSpaces()

	unit := ""
	if c.expect(`"`) {
		u, ok := c.takeUntilQuote()
		if ok {
			unit = u
		}
	}
	c.skipNewlinesAndSpaces()

	initial, ok := c.parseF64()
	if !ok {
		c.skipToEndOfLine()
		return nil
	}
	c.skipNewlinesAndSpaces()

	evID, ok := c.parseU32()
	if !ok {
		c.skipToEndOfLine()
		return nil
	}
	c.skipNewlinesAndSpaces()

	accessType := ""
	if c.startsWith("DUMMY_NODE_VECTOR") {
		c.expect("DUMMY_NODE_VECTOR")
		if n, ok := c.parseU32(); ok {
			accessType = accessTypeName(n)
		}
	}
	c.skipNewlinesAndSpaces()

	var nodeNames []string
	for {
		c.skipNewlinesAndSpaces()
		if c.expect(";") || c.atEOF() {
			break
		}
		n, ok := c.parseIdentifier()
		if !ok {
			break
		}
		nodeNames = append(nodeNames, n)
		c.skipNewlinesAndSpaces()
		c.expect(",")
	}

	s.envVars = append(s.envVars, dbc.EnvironmentVariable{
		Name:       name,
		Kind:       kind,
		Min:        min,
		Max:        max,
		Unit:       unit,
		InitValue:  initial,
		EVID:       evID,
		AccessType: accessType,
		NodeNames:  nodeNames,
	})
	c.skipToEndOfLine()
	return nil
}

func accessTypeName(code uint32) string {
	switch {
	case code >= 8000 && code <= 8003:
		return "StringType"
	case code == 0:
		return "Unrestricted"
	case code == 1:
		return "ReadOnly"
	case code == 2:
		return "WriteOnly"
	case code == 3:
		return "ReadWrite"
	default:
		return "Unrestricted"
	}
}
