package dbcfile

// handleBASGType accepts "BA_SGTYPE_ "name" signal_type_name value ;" and
// handleBADefSGType accepts "BA_DEF_SGTYPE_ "name" value_type ;". Both are
// attribute statements scoped to the legacy SGTYPE_ signal-type-template
// feature; real-world DBC tooling only emits SGTYPE_ itself for shared
// encoding templates, never per-template attributes, so this module has no
// model field for them and accepts-and-skips like the relational keywords.
func handleBASGType(c *cursor, s *parseState) error {
	c.expect(kwBASGType)
	c.skipToEndOfLine()
	return nil
}

func handleBADefSGType(c *cursor, s *parseState) error {
	c.expect(kwBADefSGType)
	c.skipToEndOfLine()
	return nil
}
