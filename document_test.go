package dbc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDocument_FindMessage_StandardAndExtended(t *testing.T) {
	doc := &Document{
		Messages: []Message{
			{ID: 100, Name: "Standard", DLC: 8, Sender: "ECM"},
			{ID: MakeExtendedID(0x1FFFF), Name: "Extended", DLC: 8, Sender: "ECM"},
		},
	}
	require.NoError(t, Build(doc, DefaultParseOptions()))

	m, ok := doc.FindMessage(100, false)
	require.True(t, ok)
	assert.Equal(t, "Standard", m.Name)

	m, ok = doc.FindMessage(0x1FFFF, true)
	require.True(t, ok)
	assert.Equal(t, "Extended", m.Name)

	_, ok = doc.FindMessage(100, true)
	assert.False(t, ok)
}

func TestDocument_ValueDescriptionsFor_MessageSpecificWinsOverGlobal(t *testing.T) {
	doc := &Document{
		Messages: []Message{
			{ID: 1, Name: "A", DLC: 8, Sender: "ECM", Signals: []Signal{{Name: "Mode", StartBit: 0, Length: 8, Factor: 1}}},
		},
		ValueDescriptions: []ValueDescriptions{
			{Global: true, SignalName: "Mode", Entries: []ValueTableEntry{{Value: 0, Desc: "GlobalOff"}}},
			{Global: false, MessageID: 1, SignalName: "Mode", Entries: []ValueTableEntry{{Value: 0, Desc: "SpecificOff"}}},
		},
	}
	require.NoError(t, Build(doc, DefaultParseOptions()))

	vd, ok := doc.ValueDescriptionsFor(1, "Mode")
	require.True(t, ok)
	desc, ok := vd.Get(0)
	require.True(t, ok)
	assert.Equal(t, "SpecificOff", desc)
}

func TestDocument_ValueDescriptionsFor_FallsBackToGlobal(t *testing.T) {
	doc := &Document{
		Messages: []Message{
			{ID: 1, Name: "A", DLC: 8, Sender: "ECM", Signals: []Signal{{Name: "Mode", StartBit: 0, Length: 8, Factor: 1}}},
			{ID: 2, Name: "B", DLC: 8, Sender: "ECM", Signals: []Signal{{Name: "Mode", StartBit: 0, Length: 8, Factor: 1}}},
		},
		ValueDescriptions: []ValueDescriptions{
			{Global: true, SignalName: "Mode", Entries: []ValueTableEntry{{Value: 1, Desc: "On"}}},
		},
	}
	require.NoError(t, Build(doc, DefaultParseOptions()))

	vd, ok := doc.ValueDescriptionsFor(2, "Mode")
	require.True(t, ok)
	desc, ok := vd.Get(1)
	require.True(t, ok)
	assert.Equal(t, "On", desc)
}

func TestDocument_ExtendedMultiplexingFor(t *testing.T) {
	doc := &Document{
		ExtendedMultiplexing: []ExtendedMultiplexing{
			{MessageID: 1, SignalName: "Detail", MultiplexSwitch: "Mode", Ranges: []ExtendedMuxRange{{Min: 1, Max: 2}}},
			{MessageID: 1, SignalName: "Other", MultiplexSwitch: "Mode", Ranges: []ExtendedMuxRange{{Min: 5, Max: 5}}},
		},
	}
	entries := doc.ExtendedMultiplexingFor(1, "Detail")
	require.Len(t, entries, 1)
	assert.True(t, entries[0].Matches(1))
	assert.True(t, entries[0].Matches(2))
	assert.False(t, entries[0].Matches(3))
}
