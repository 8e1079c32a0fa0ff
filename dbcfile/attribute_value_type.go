package dbcfile

import dbc "github.com/canlinelabs/godbc"

// parseAttributeValueType parses the INT/HEX/FLOAT/STRING/ENUM clause of a
// BA_DEF_ statement.
func parseAttributeValueType(c *cursor) (dbc.AttributeValueType, bool) {
	switch {
	case c.expect("INT"):
		c.skipNewlinesAndSpaces()
		min, ok1 := c.parseI64()
		c.skipNewlinesAndSpaces()
		max, ok2 := c.parseI64()
		if !ok1 || !ok2 {
			return dbc.AttributeValueType{}, false
		}
		return dbc.AttributeValueType{Kind: dbc.AttrInt, IntMin: min, IntMax: max}, true
	case c.expect("HEX"):
		c.skipNewlinesAndSpaces()
		min, ok1 := c.parseI64()
		c.skipNewlinesAndSpaces()
		max, ok2 := c.parseI64()
		if !ok1 || !ok2 {
			return dbc.AttributeValueType{}, false
		}
		return dbc.AttributeValueType{Kind: dbc.AttrHex, IntMin: min, IntMax: max}, true
	case c.expect("FLOAT"):
		c.skipNewlinesAndSpaces()
		min, ok1 := c.parseF64()
		c.skipNewlinesAndSpaces()
		max, ok2 := c.parseF64()
		if !ok1 || !ok2 {
			return dbc.AttributeValueType{}, false
		}
		return dbc.AttributeValueType{Kind: dbc.AttrFloat, FloatMin: min, FloatMax: max}, true
	case c.expect("STRING"):
		return dbc.AttributeValueType{Kind: dbc.AttrString}, true
	case c.expect("ENUM"):
		c.skipNewlinesAndSpaces()
		var values []string
		for {
			c.skipNewlinesAndSpaces()
			if c.startsWith(";") || c.atEOF() {
				break
			}
			if !c.expect(`"`) {
				break
			}
			v, ok := c.takeUntilQuote()
			if !ok {
				return dbc.AttributeValueType{}, false
			}
			values = append(values, v)
			c.skipNewlinesAndSpaces()
			if !c.expect(",") {
				break
			}
		}
		return dbc.AttributeValueType{Kind: dbc.AttrEnum, EnumValues: values}, true
	default:
		return dbc.AttributeValueType{}, false
	}
}

// parseAttributeValue parses a bare value that may be a quoted string, an
// integer, or a float — the shape BA_ and BA_DEF_DEF_ assignment values
// share.
func parseAttributeValue(c *cursor) (dbc.AttributeValue, bool) {
	if c.expect(`"`) {
		text, ok := c.takeUntilQuote()
		if !ok {
			return dbc.AttributeValue{}, false
		}
		return dbc.AttributeValue{Kind: dbc.AttrString, Text: text}, true
	}
	save := c.pos
	if v, ok := c.parseI64(); ok {
		if b, ok2 := c.peekByte(); !ok2 || (b != '.' && b != 'e' && b != 'E') {
			return dbc.AttributeValue{Kind: dbc.AttrInt, Int: v}, true
		}
	}
	// Not a plain integer (e.g. "1.5" or "1e3"): parseI64 consumes the whole
	// number run even when it rejects it, so rewind and read it as a float.
	c.pos = save
	if v, ok := c.parseF64(); ok {
		return dbc.AttributeValue{Kind: dbc.AttrFloat, Flt: v}, true
	}
	return dbc.AttributeValue{}, false
}
