package dbc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func engineDocument(t *testing.T) *Document {
	t.Helper()
	doc := &Document{
		Nodes: []Node{{Name: "ECM"}},
		Messages: []Message{
			{
				ID:     256,
				Name:   "Engine",
				DLC:    8,
				Sender: "ECM",
				Signals: []Signal{
					{
						Name: "RPM", StartBit: 0, Length: 16, ByteOrder: Intel,
						Factor: 0.25, Offset: 0, Min: 0, Max: 8000, Unit: "rpm",
						Receivers: NoReceivers(),
					},
					{
						Name: "Temp", StartBit: 16, Length: 8, ByteOrder: Intel, Signed: true,
						Factor: 1, Offset: -40, Min: -40, Max: 215, Unit: "°C",
						Receivers: NoReceivers(),
					},
				},
			},
		},
	}
	require.NoError(t, Build(doc, DefaultParseOptions()))
	return doc
}

func TestDecode_SeedScenario1_RPM(t *testing.T) {
	doc := engineDocument(t)
	payload := []byte{0x40, 0x1F, 0, 0, 0, 0, 0, 0}

	signals, err := Decode(doc, 256, payload, false)
	require.NoError(t, err)
	require.Len(t, signals, 2)

	assert.Equal(t, "RPM", signals[0].Name)
	assert.Equal(t, 2000.0, signals[0].Value)
	assert.Equal(t, "rpm", signals[0].Unit)
	assert.Equal(t, int64(8000), signals[0].Raw)
}

func TestDecode_SeedScenario2_Temp(t *testing.T) {
	doc := engineDocument(t)
	payload := []byte{0x40, 0x1F, 0x5A, 0, 0, 0, 0, 0}

	signals, err := Decode(doc, 256, payload, false)
	require.NoError(t, err)
	require.Len(t, signals, 2)
	assert.Equal(t, 50.0, signals[1].Value)
}

func TestDecode_SeedScenario3_BigEndianRPM(t *testing.T) {
	doc := &Document{
		Messages: []Message{{
			ID: 256, Name: "Engine", DLC: 8, Sender: "ECM",
			Signals: []Signal{{
				Name: "RPM", StartBit: 7, Length: 16, ByteOrder: Motorola,
				Factor: 0.25, Offset: 0, Min: 0, Max: 8000,
				Receivers: NoReceivers(),
			}},
		}},
	}
	require.NoError(t, Build(doc, DefaultParseOptions()))

	payload := []byte{0x1F, 0x40, 0, 0, 0, 0, 0, 0}
	signals, err := Decode(doc, 256, payload, false)
	require.NoError(t, err)
	require.Len(t, signals, 1)
	assert.Equal(t, 2000.0, signals[0].Value)
	assert.Equal(t, int64(8000), signals[0].Raw)
}

func TestMotorolaSawtooth_CrossesByteBoundary(t *testing.T) {
	// A Motorola signal whose 16-bit range starts at bit 7 (MSB of byte 0)
	// and runs into byte 1 exercises the sawtooth walk in both gatherBits
	// and scatterBits identically, so a round trip is the correctness check.
	doc := &Document{
		Messages: []Message{{
			ID: 300, Name: "M", DLC: 8, Sender: "ECM",
			Signals: []Signal{{
				Name: "S", StartBit: 7, Length: 16, ByteOrder: Motorola, Signed: true,
				Factor: 1, Min: -32768, Max: 32767,
				Receivers: NoReceivers(),
			}},
		}},
	}
	require.NoError(t, Build(doc, DefaultParseOptions()))
	sig, _ := doc.Messages[0].SignalByName("S")

	for _, v := range []float64{0, 1, -1, 32767, -32768, 12345, -12345} {
		payload := make([]byte, 8)
		require.NoError(t, sig.Encode(payload, v, EncodeOptions{}))
		got, err := sig.Decode(payload)
		require.NoError(t, err)
		assert.Equal(t, v, got)
	}
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	doc := engineDocument(t)

	payload, err := Encode(doc, 256, []NamedValue{
		{Name: "RPM", Value: 2000.0},
		{Name: "Temp", Value: 50.0},
	}, false, EncodeOptions{})
	require.NoError(t, err)

	signals, err := Decode(doc, 256, payload, false)
	require.NoError(t, err)
	require.Len(t, signals, 2)
	assert.Equal(t, 2000.0, signals[0].Value)
	assert.Equal(t, 50.0, signals[1].Value)
}

func TestDecode_UnknownMessage(t *testing.T) {
	doc := engineDocument(t)
	_, err := Decode(doc, 999, []byte{0, 0, 0, 0, 0, 0, 0, 0}, false)
	require.Error(t, err)
	var dbcErr *Error
	require.ErrorAs(t, err, &dbcErr)
	assert.Equal(t, ReasonMessageNotFound, dbcErr.Reason)
}

func TestDecode_PayloadTooShort(t *testing.T) {
	doc := engineDocument(t)
	_, err := Decode(doc, 256, []byte{0x40, 0x1F}, false)
	require.Error(t, err)
	var dbcErr *Error
	require.ErrorAs(t, err, &dbcErr)
	assert.Equal(t, ReasonPayloadTooShort, dbcErr.Reason)
}

func TestExtendedID_FindMatchesBothForms(t *testing.T) {
	doc := &Document{
		Messages: []Message{{
			ID: MakeExtendedID(0x1ABCDEF), Name: "Ext", DLC: 8, Sender: "ECM",
		}},
	}
	require.NoError(t, Build(doc, DefaultParseOptions()))

	byWire, ok := doc.FindMessage(0x1ABCDEF, true)
	require.True(t, ok)
	byStored, ok := doc.FindMessage(MakeExtendedID(0x1ABCDEF), true)
	require.True(t, ok)
	assert.Equal(t, byWire, byStored)
}

func TestMux_SwitchSelectsSignal(t *testing.T) {
	doc := &Document{
		Messages: []Message{{
			ID: 500, Name: "Mux", DLC: 8, Sender: "ECM",
			Signals: []Signal{
				{Name: "Mux", StartBit: 0, Length: 8, ByteOrder: Intel, Factor: 1, Min: 0, Max: 255, Mux: SwitchRole(), Receivers: NoReceivers()},
				{Name: "A", StartBit: 8, Length: 8, ByteOrder: Intel, Factor: 1, Min: 0, Max: 255, Mux: MultiplexedRole(0), Receivers: NoReceivers()},
				{Name: "B", StartBit: 8, Length: 8, ByteOrder: Intel, Factor: 1, Min: 0, Max: 255, Mux: MultiplexedRole(1), Receivers: NoReceivers()},
			},
		}},
	}
	require.NoError(t, Build(doc, DefaultParseOptions()))

	signalsA, err := Decode(doc, 500, []byte{0, 7, 0, 0, 0, 0, 0, 0}, false)
	require.NoError(t, err)
	names := map[string]float64{}
	for _, s := range signalsA {
		names[s.Name] = s.Value
	}
	assert.Contains(t, names, "A")
	assert.NotContains(t, names, "B")

	signalsB, err := Decode(doc, 500, []byte{1, 7, 0, 0, 0, 0, 0, 0}, false)
	require.NoError(t, err)
	names = map[string]float64{}
	for _, s := range signalsB {
		names[s.Name] = s.Value
	}
	assert.Contains(t, names, "B")
	assert.NotContains(t, names, "A")
}

func TestEncode_NestedExtendedMuxResolvesLayerByLayer(t *testing.T) {
	// Mux selects Sub (a signal that is itself a nested switch via
	// SG_MUL_VAL_); Deep is only active when Sub carries a specific value.
	// Encode must commit Sub to the payload before it can decide Deep's
	// activation, rather than evaluating both off the payload as it stood
	// right after the top switch was written.
	doc := &Document{
		Messages: []Message{{
			ID: 600, Name: "Nested", DLC: 8, Sender: "ECM",
			Signals: []Signal{
				{Name: "Mux", StartBit: 0, Length: 8, ByteOrder: Intel, Factor: 1, Min: 0, Max: 255, Mux: SwitchRole(), Receivers: NoReceivers()},
				{Name: "Sub", StartBit: 8, Length: 8, ByteOrder: Intel, Factor: 1, Min: 0, Max: 255, Mux: MultiplexedRole(0), Receivers: NoReceivers()},
				{Name: "Deep", StartBit: 16, Length: 8, ByteOrder: Intel, Factor: 1, Min: 0, Max: 255, Mux: MultiplexedRole(0), Receivers: NoReceivers()},
			},
		}},
		ExtendedMultiplexing: []ExtendedMultiplexing{
			{MessageID: 600, SignalName: "Deep", MultiplexSwitch: "Sub", Ranges: []ExtendedMuxRange{{Min: 5, Max: 5}}},
		},
	}
	require.NoError(t, Build(doc, DefaultParseOptions()))

	payload, err := Encode(doc, 600, []NamedValue{
		{Name: "Mux", Value: 0},
		{Name: "Sub", Value: 5},
		{Name: "Deep", Value: 42},
	}, false, EncodeOptions{})
	require.NoError(t, err)

	signals, err := Decode(doc, 600, payload, false)
	require.NoError(t, err)
	values := map[string]float64{}
	for _, s := range signals {
		values[s.Name] = s.Value
	}
	assert.Equal(t, 5.0, values["Sub"])
	assert.Equal(t, 42.0, values["Deep"])
}

func TestFloat32Signal(t *testing.T) {
	doc := &Document{
		Messages: []Message{{
			ID: 700, Name: "Float", DLC: 8, Sender: "ECM",
			Signals: []Signal{{
				Name: "F", StartBit: 0, Length: 32, ByteOrder: Intel,
				Factor: 1, Min: -1e9, Max: 1e9, ExtendedValueType: ValueFloat32,
				Receivers: NoReceivers(),
			}},
		}},
	}
	require.NoError(t, Build(doc, DefaultParseOptions()))

	// little-endian IEEE754 binary32 encoding of pi: 0x40490FDB
	payload := []byte{0xDB, 0x0F, 0x49, 0x40, 0, 0, 0, 0}
	signals, err := Decode(doc, 700, payload, false)
	require.NoError(t, err)
	require.Len(t, signals, 1)
	assert.InDelta(t, 3.14159274, signals[0].Value, 1e-6)
}
