package dbcfile

// handleSGTypeVal accepts "SGTYPE_VAL_ type_name value "desc" value "desc" ... ;"
// and skips it to end of line: signal-type value descriptions are not
// stored anywhere in the Document, matching the scope of other legacy
// SGTYPE_ extensions this module does not model in depth.
func handleSGTypeVal(c *cursor, s *parseState) error {
	c.expect(kwSGTypeVal)
	c.skipToEndOfLine()
	return nil
}
