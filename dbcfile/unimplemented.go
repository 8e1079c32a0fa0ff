package dbcfile

// handleUnimplemented accepts a recognized-but-unmodeled keyword and skips
// its statement to end of line without failing the parse: the relational
// attribute keywords (BA_DEF_REL_, BA_REL_, BA_DEF_DEF_REL_, BU_SG_REL_,
// BU_EV_REL_, BU_BO_REL_) plus NS_DESC_, SIGTYPE_VALTYPE_, CAT_DEF_, CAT_
// and FILTER, none of which this module assigns a model to.
func handleUnimplemented(c *cursor, keyword string) error {
	c.expect(keyword)
	c.skipToEndOfLine()
	return nil
}
