package dbcfile

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dbc "github.com/canlinelabs/godbc"
)

func TestHandleBS_Minimal(t *testing.T) {
	s := newParseState()
	c := newCursor([]byte("BS_:\n"))
	require.NoError(t, handleBS(c, s))
	assert.True(t, s.bitTiming.Set)
	assert.Zero(t, s.bitTiming.Baudrate)
}

func TestHandleEV_FullGrammar(t *testing.T) {
	s := newParseState()
	c := newCursor([]byte(`EV_ Average_radius: 0 [0|4294967295] "" 0 2 DUMMY_NODE_VECTOR0 Vector__XXX;` + "\n"))
	require.NoError(t, handleEV(c, s))
	require.Len(t, s.envVars, 1)
	ev := s.envVars[0]
	assert.Equal(t, "Average_radius", ev.Name)
	assert.Equal(t, "Unrestricted", ev.AccessType)
	assert.Equal(t, uint32(2), ev.EVID)
}

func TestHandleSGType_LongForm(t *testing.T) {
	s := newParseState()
	c := newCursor([]byte(`SGTYPE_ Speed_T : 16@1+ (0.1,0) [0|6000] "km/h" 0, SpeedTable ;` + "\n"))
	require.NoError(t, handleSGType(c, s))
	require.Len(t, s.signalTypes, 1)
	st := s.signalTypes[0]
	assert.Equal(t, uint16(16), st.Length)
	assert.Equal(t, 0.1, st.Factor)
	assert.Equal(t, "SpeedTable", st.ValueTableName)
}

func TestHandleSigTypeRef(t *testing.T) {
	s := newParseState()
	c := newCursor([]byte("SIG_TYPE_REF_ 256 RPM : Speed_T ;\n"))
	require.NoError(t, handleSigTypeRef(c, s))
	require.Len(t, s.signalTypeRefs, 1)
	assert.Equal(t, "Speed_T", s.signalTypeRefs[0].SignalTypeName)
}

func TestHandleValTable(t *testing.T) {
	s := newParseState()
	c := newCursor([]byte(`VAL_TABLE_ OnOff 0 "Off" 1 "On" ;` + "\n"))
	require.NoError(t, handleValTable(c, s))
	require.Len(t, s.valueTables, 1)
	assert.Equal(t, "OnOff", s.valueTables[0].Name)
	require.Len(t, s.valueTables[0].Entries, 2)
}

func TestHandleBOTxBU(t *testing.T) {
	s := newParseState()
	c := newCursor([]byte("BO_TX_BU_ 256 : ECM, GATEWAY;\n"))
	require.NoError(t, handleBOTxBU(c, s))
	require.Len(t, s.transmitters, 1)
	assert.Equal(t, []string{"ECM", "GATEWAY"}, s.transmitters[0].NodeNames)
}

func TestHandleSigGroup_ColonOptional(t *testing.T) {
	s := newParseState()
	c := newCursor([]byte("SIG_GROUP_ 256 GroupA 1 RPM Temp;\n"))
	require.NoError(t, handleSigGroup(c, s))
	require.Len(t, s.signalGroups, 1)
	assert.Equal(t, []string{"RPM", "Temp"}, s.signalGroups[0].SignalNames)
}

func TestHandleUnimplemented_SkipsStatement(t *testing.T) {
	c := newCursor([]byte("BA_DEF_REL_ BU_SG_REL_ \"x\" INT 0 1;\nVERSION \"next\"\n"))
	require.NoError(t, handleUnimplemented(c, kwBADefRel))
	kw, ok := peekKeyword(c)
	require.True(t, ok)
	assert.Equal(t, kwVersion, kw)
}

func TestHandleBU_ParsesNodeList(t *testing.T) {
	s := newParseState()
	c := newCursor([]byte("BU_: ECM GATEWAY DASH\n"))
	require.NoError(t, handleBU(c, s, dbc.DefaultParseOptions()))
	require.Len(t, s.nodes, 3)
	assert.Equal(t, "DASH", s.nodes[2].Name)
}
