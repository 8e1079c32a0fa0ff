package dbcfile

import dbc "github.com/canlinelabs/godbc"

// handleSGType parses the long form of SGTYPE_, a reusable signal-encoding
// template:
//
//	SGTYPE_ type_name : length@order+- (factor,offset) [min|max] "unit" default_value, value_table_name ;
//
// A short form ("SGTYPE_ type_name : length ;") also appears in the wild;
// anything after length that fails to parse is simply left at its zero
// value rather than failing the statement.
func handleSGType(c *cursor, s *parseState) error {
	c.expect(kwSGType)
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

	length, ok := c.parseU32()
	if !ok {
		c.skipToEndOfLine()
		return nil
	}

	st := dbc.SignalType{Name: name, Length: uint16(length)}

	if c.expect("@") {
		if c.expect("0") {
			st.ByteOrder = dbc.Motorola
		} else {
			c.expect("1")
		}
		if c.expect("-") {
			st.Signed = true
		} else {
			c.expect("+")
		}
		c.skipNewlinesAndSpaces()
		if c.expect("(") {
			st.Factor, _ = c.parseF64()
			c.expect(",")
			st.Offset, _ = c.parseF64()
			c.expect(")")
		}
		c.skipNewlinesAndSpaces()
		if c.expect("[") {
			st.Min, _ = c.parseF64()
			c.expect("|")
			st.Max, _ = c.parseF64()
			c.expect("]")
		}
		c.skipNewlinesAndSpaces()
		if c.expect(`"`) {
			st.Unit, _ = c.takeUntilQuote()
		}
		c.skipNewlinesAndSpaces()
		st.DefaultValue, _ = c.parseF64()
		c.skipNewlinesAndSpaces()
		if c.expect(",") {
			c.skipNewlinesAndSpaces()
			st.ValueTableName, _ = c.parseIdentifier()
		}
	}

	s.signalTypes = append(s.signalTypes, st)
	c.skipNewlinesAndSpaces()
	c.expect(";")
	c.skipToEndOfLine()
	return nil
}
