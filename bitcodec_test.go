package dbc

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGatherBits_IntelByteAlignedFastPath(t *testing.T) {
	tests := []struct {
		name     string
		given    []byte
		startBit uint16
		length   uint16
		expect   uint64
	}{
		{name: "single byte", given: []byte{0x42, 0, 0, 0}, startBit: 0, length: 8, expect: 0x42},
		{name: "two bytes little-endian", given: []byte{0x34, 0x12, 0, 0}, startBit: 0, length: 16, expect: 0x1234},
		{name: "offset into second byte", given: []byte{0, 0xAB, 0, 0}, startBit: 8, length: 8, expect: 0xAB},
		{name: "four bytes", given: []byte{0x78, 0x56, 0x34, 0x12}, startBit: 0, length: 32, expect: 0x12345678},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := gatherBits(tc.given, tc.startBit, tc.length, Intel)
			assert.Equal(t, tc.expect, got)
		})
	}
}

func TestGatherBits_IntelSubByteOffsets(t *testing.T) {
	tests := []struct {
		name     string
		given    []byte
		startBit uint16
		length   uint16
		expect   uint64
	}{
		{name: "nibble at bit 4", given: []byte{0xF0}, startBit: 4, length: 4, expect: 0xF},
		{name: "3 bits spanning nothing", given: []byte{0b0000_0110}, startBit: 1, length: 3, expect: 0b011},
		{name: "crosses byte boundary", given: []byte{0b1000_0000, 0b0000_0001}, startBit: 7, length: 2, expect: 0b11},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := gatherBits(tc.given, tc.startBit, tc.length, Intel)
			assert.Equal(t, tc.expect, got)
		})
	}
}

func TestGatherScatterBits_MotorolaRoundTrip(t *testing.T) {
	// Exercise the sawtooth walk by scattering then gathering back out,
	// across a handful of offsets and lengths.
	cases := []struct {
		startBit, length uint16
		value            uint64
	}{
		{startBit: 7, length: 8, value: 0xAB},
		{startBit: 7, length: 16, value: 0x1234},
		{startBit: 15, length: 4, value: 0x9},
		{startBit: 23, length: 24, value: 0xABCDEF},
	}
	for _, c := range cases {
		payload := make([]byte, 8)
		scatterBits(payload, c.value, c.startBit, c.length, Motorola)
		got := gatherBits(payload, c.startBit, c.length, Motorola)
		assert.Equal(t, c.value, got, "startBit=%d length=%d", c.startBit, c.length)
	}
}

func TestScatterBits_DoesNotDisturbOtherBits(t *testing.T) {
	payload := []byte{0xFF, 0xFF, 0xFF, 0xFF}
	scatterBits(payload, 0, 8, 8, Intel) // zero out byte 1
	assert.Equal(t, []byte{0xFF, 0x00, 0xFF, 0xFF}, payload)
}

func TestSignExtend64(t *testing.T) {
	tests := []struct {
		name   string
		raw    uint64
		length uint16
		expect int64
	}{
		{name: "1-bit zero", raw: 0, length: 1, expect: 0},
		{name: "1-bit negative one", raw: 1, length: 1, expect: -1},
		{name: "8-bit positive", raw: 0x7F, length: 8, expect: 127},
		{name: "8-bit negative", raw: 0x80, length: 8, expect: -128},
		{name: "16-bit negative", raw: 0xFFFF, length: 16, expect: -1},
		{name: "64-bit passthrough", raw: 0xFFFFFFFFFFFFFFFF, length: 64, expect: -1},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := signExtend64(tc.raw, tc.length)
			assert.Equal(t, tc.expect, got)
		})
	}
}

func TestFloatBitsRoundTrip(t *testing.T) {
	f32 := bitsFromFloat32(3.14159274)
	assert.InDelta(t, 3.14159274, float32FromBits(f32), 1e-6)

	f64 := bitsFromFloat64(2.718281828459045)
	assert.Equal(t, 2.718281828459045, float64FromBits(f64))
}
