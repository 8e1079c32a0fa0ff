package dbcfile

// Keyword constants, one per top-level DBC statement. Order in allKeywords
// matters: longer keywords that share a prefix with a shorter one (e.g.
// BA_DEF_SGTYPE_ vs BA_DEF_) must be tried first.
const (
	kwVersion       = "VERSION"
	kwNS            = "NS_"
	kwBS            = "BS_"
	kwBU            = "BU_"
	kwBO            = "BO_"
	kwSG            = "SG_"
	kwBOTxBU        = "BO_TX_BU_"
	kwCM            = "CM_"
	kwBADefDefRel   = "BA_DEF_DEF_REL_"
	kwBADefSGType   = "BA_DEF_SGTYPE_"
	kwBADefRel      = "BA_DEF_REL_"
	kwBADefDef      = "BA_DEF_DEF_"
	kwBADef         = "BA_DEF_"
	kwBASGType      = "BA_SGTYPE_"
	kwBARel         = "BA_REL_"
	kwBA            = "BA_"
	kwValTable      = "VAL_TABLE_"
	kwVal           = "VAL_"
	kwSigGroup      = "SIG_GROUP_"
	kwSigValType    = "SIG_VALTYPE_"
	kwSigTypeRef    = "SIG_TYPE_REF_"
	kwSGMulVal      = "SG_MUL_VAL_"
	kwSGTypeVal     = "SGTYPE_VAL_"
	kwSGType        = "SGTYPE_"
	kwEnvVarData    = "ENVVAR_DATA_"
	kwEVData        = "EV_DATA_"
	kwEV            = "EV_"
	kwBUSGRel       = "BU_SG_REL_"
	kwBUEVRel       = "BU_EV_REL_"
	kwBUBORel       = "BU_BO_REL_"
	kwNSDesc        = "NS_DESC_"
	kwSigTypeValType = "SIGTYPE_VALTYPE_"
	kwCatDef        = "CAT_DEF_"
	kwCat           = "CAT_"
	kwFilter        = "FILTER"
)

// allKeywords is matched longest-first so a shorter keyword that is a
// prefix of a longer one (BA_DEF_ / BA_DEF_SGTYPE_ / BA_DEF_DEF_REL_) never
// shadows it.
var allKeywords = []string{
	kwBADefDefRel, kwBADefSGType, kwBADefRel, kwBADefDef, kwBADef, kwBASGType, kwBARel, kwBA,
	kwBOTxBU, kwBO, kwBUSGRel, kwBUEVRel, kwBUBORel, kwBU,
	kwValTable, kwVal,
	kwSigGroup, kwSigValType, kwSigTypeRef,
	kwSGMulVal, kwSGTypeVal, kwSGType, kwSG,
	kwEnvVarData, kwEVData, kwEV,
	kwSigTypeValType,
	kwNSDesc, kwNS,
	kwBS, kwCM, kwCatDef, kwCat, kwFilter, kwVersion,
}

// unimplementedKeywords are accepted and skipped to end-of-line without
// failing the parse: their statements are real DBC grammar but this module
// has no model for node/signal/bus relational attributes.
var unimplementedKeywords = map[string]bool{
	kwBADefRel:       true,
	kwBARel:          true,
	kwBADefDefRel:    true,
	kwBUSGRel:        true,
	kwBUEVRel:        true,
	kwBUBORel:        true,
	kwNSDesc:         true,
	kwSigTypeValType: true,
	kwCatDef:         true,
	kwCat:            true,
	kwFilter:         true,
}

// isDelimiter reports whether b may legally follow a keyword token: either
// whitespace, a colon (BU_: / BS_:), or end of input.
func isDelimiter(b byte, ok bool) bool {
	if !ok {
		return true
	}
	return isSpaceOrTab(b) || isNewline(b) || b == ':'
}

// peekKeyword looks ahead from the cursor's current position (which must
// already be past leading whitespace) for one of allKeywords, without
// consuming it. SG_ is matched like any other keyword; signal lines inside
// a message block are consumed by handleBO, so one seen here is a stray
// line that dispatch skips.
func peekKeyword(c *cursor) (string, bool) {
	for _, kw := range allKeywords {
		if c.startsWith(kw) {
			next, ok := c.peekByteAt(len(kw))
			if isDelimiter(next, ok) {
				return kw, true
			}
		}
	}
	return "", false
}
