package dbc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSignal_DecodeRaw_FullByteDLC1(t *testing.T) {
	s := Signal{Name: "S", StartBit: 0, Length: 8, ByteOrder: Intel, Factor: 1, Min: 0, Max: 255}
	raw, physical, err := s.DecodeRaw([]byte{0xFF})
	require.NoError(t, err)
	assert.Equal(t, int64(255), raw)
	assert.Equal(t, 255.0, physical)
}

func TestSignal_DecodeRaw_SignedOneBit(t *testing.T) {
	s := Signal{Name: "S", StartBit: 0, Length: 1, ByteOrder: Intel, Signed: true, Factor: 1, Min: -1, Max: 0}

	raw, physical, err := s.DecodeRaw([]byte{0b0000_0001})
	require.NoError(t, err)
	assert.Equal(t, int64(-1), raw)
	assert.Equal(t, -1.0, physical)

	raw, physical, err = s.DecodeRaw([]byte{0b0000_0000})
	require.NoError(t, err)
	assert.Equal(t, int64(0), raw)
	assert.Equal(t, 0.0, physical)
}

func TestSignal_DecodeRaw_64BitWideSignal(t *testing.T) {
	s := Signal{Name: "S", StartBit: 0, Length: 64, ByteOrder: Intel, Factor: 1, Min: 0, Max: 1.8e19}
	payload := []byte{0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF}

	raw, _, err := s.DecodeRaw(payload)
	require.NoError(t, err)
	assert.Equal(t, int64(-1), raw) // all-ones bit pattern reinterpreted as int64
}

func TestSignal_DecodeRaw_PayloadTooShort(t *testing.T) {
	s := Signal{Name: "S", StartBit: 56, Length: 16, ByteOrder: Intel, Factor: 1}
	_, _, err := s.DecodeRaw(make([]byte, 8))

	var dbcErr *Error
	require.ErrorAs(t, err, &dbcErr)
	assert.Equal(t, ReasonPayloadTooShort, dbcErr.Reason)
}

func TestSignal_Encode_FactorOffsetPattern(t *testing.T) {
	// factor=0.25, offset=-40 over a 16-bit field: common temperature/RPM
	// style scaling (spec.md §8 seed scenario).
	s := Signal{
		Name: "S", StartBit: 0, Length: 16, ByteOrder: Intel,
		Factor: 0.25, Offset: -40, Min: -40, Max: 16343.75,
	}
	payload := make([]byte, 2)
	require.NoError(t, s.Encode(payload, 0.0, EncodeOptions{}))

	raw, physical, err := s.DecodeRaw(payload)
	require.NoError(t, err)
	assert.Equal(t, int64(160), raw) // (0 - (-40)) / 0.25 = 160
	assert.Equal(t, 0.0, physical)
}

func TestSignal_Encode_RejectsOutOfRangeByDefault(t *testing.T) {
	s := Signal{Name: "S", StartBit: 0, Length: 8, ByteOrder: Intel, Factor: 1, Min: 0, Max: 100}
	payload := make([]byte, 1)
	err := s.Encode(payload, 200, EncodeOptions{})

	var dbcErr *Error
	require.ErrorAs(t, err, &dbcErr)
	assert.Equal(t, ReasonValueOutOfRange, dbcErr.Reason)
}

func TestSignal_Encode_ClampsWhenRequested(t *testing.T) {
	s := Signal{Name: "S", StartBit: 0, Length: 8, ByteOrder: Intel, Factor: 1, Min: 0, Max: 100}
	payload := make([]byte, 1)
	require.NoError(t, s.Encode(payload, 200, EncodeOptions{Clamp: true}))

	_, physical, err := s.DecodeRaw(payload)
	require.NoError(t, err)
	assert.Equal(t, 100.0, physical)
}

func TestSignal_Encode_RoundsHalfAwayFromZero(t *testing.T) {
	tests := []struct {
		name      string
		value     float64
		expectRaw int64
	}{
		{name: "positive half rounds up", value: 2.5, expectRaw: 3},
		{name: "negative half rounds down", value: -2.5, expectRaw: -3},
		{name: "positive below half rounds down", value: 2.4, expectRaw: 2},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := Signal{Name: "S", StartBit: 0, Length: 8, ByteOrder: Intel, Signed: true, Factor: 1, Min: -128, Max: 127}
			payload := make([]byte, 1)
			require.NoError(t, s.Encode(payload, tc.value, EncodeOptions{}))
			raw, _, err := s.DecodeRaw(payload)
			require.NoError(t, err)
			assert.Equal(t, tc.expectRaw, raw)
		})
	}
}

func TestSignal_Float64RoundTrip(t *testing.T) {
	s := Signal{
		Name: "S", StartBit: 0, Length: 64, ByteOrder: Intel,
		Factor: 1, Min: -1e300, Max: 1e300, ExtendedValueType: ValueFloat64,
	}
	payload := make([]byte, 8)
	require.NoError(t, s.Encode(payload, 2.718281828459045, EncodeOptions{}))

	physical, err := s.Decode(payload)
	require.NoError(t, err)
	assert.Equal(t, 2.718281828459045, physical)
}
