package dbcfile

import dbc "github.com/canlinelabs/godbc"

// handleEVData and handleEnvVarData both parse "KEYWORD_ name : data_size ;",
// the two historical spellings of the same statement (EV_DATA_ is the
// modern one; ENVVAR_DATA_ appears in files produced by older tooling).
func handleEVData(c *cursor, s *parseState) error {
	c.expect(kwEVData)
	parseEnvVarData(c, s)
	return nil
}

func handleEnvVarData(c *cursor, s *parseState) error {
	c.expect(kwEnvVarData)
	parseEnvVarData(c, s)
	return nil
}

func parseEnvVarData(c *cursor, s *parseState) {
	c.skipNewlinesAndSpaces()
	name, ok := c.parseIdentifier()
	if !ok {
		c.skipToEndOfLine()
		return
	}
	c.skipNewlinesAndSpaces()
	if !c.expect(":") {
		c.skipToEndOfLine()
		return
	}
	c.skipNewlinesAndSpaces()

	size, ok := c.parseU32()
	if !ok {
		c.skipToEndOfLine()
		return
	}
	s.envVarData = append(s.envVarData, dbc.EnvironmentVariableData{Name: name, Length: size})
	c.skipNewlinesAndSpaces()
	c.expect(";")
	c.skipToEndOfLine()
}
