package dbcfile

import dbc "github.com/canlinelabs/godbc"

// handleSGMulVal parses "SG_MUL_VAL_ message_id signal_name switch_name min-max,min-max,... ;",
// extended (nested) multiplexing's activation ranges for one signal against
// one switch.
func handleSGMulVal(c *cursor, s *parseState) error {
	c.expect(kwSGMulVal)
	c.skipNewlinesAndSpaces()

	id, ok := c.parseU32()
	if !ok {
		c.skipToEndOfLine()
		return nil
	}
	c.skipNewlinesAndSpaces()

	signalName, ok := c.parseIdentifier()
	if !ok {
		c.skipToEndOfLine()
		return nil
	}
	c.skipNewlinesAndSpaces()

	switchName, ok := c.parseIdentifier()
	if !ok {
		c.skipToEndOfLine()
		return nil
	}
	c.skipNewlinesAndSpaces()

	var ranges []dbc.ExtendedMuxRange
	for {
		c.skipNewlinesAndSpaces()
		min, ok := c.parseU64()
		if !ok {
			break
		}
		if !c.expect("-") {
			break
		}
		max, ok := c.parseU64()
		if !ok {
			break
		}
		ranges = append(ranges, dbc.ExtendedMuxRange{Min: min, Max: max})

		c.skipNewlinesAndSpaces()
		if c.expect(",") {
			continue
		}
		c.expect(";")
		break
	}

	if len(ranges) > 0 {
		s.extendedMux = append(s.extendedMux, dbc.ExtendedMultiplexing{
			MessageID:       id,
			SignalName:      signalName,
			MultiplexSwitch: switchName,
			Ranges:          ranges,
		})
	}
	c.skipToEndOfLine()
	return nil
}
