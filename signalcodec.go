package dbc

import "math"

// maxPhysicalBit returns the highest physical bit index (0 = LSB of byte 0)
// this signal's bit range touches, honoring byte order.
func (s *Signal) maxPhysicalBit() uint16 {
	lsb, msb := bitRange(s.StartBit, s.Length, s.ByteOrder)
	if msb > lsb {
		return msb
	}
	return lsb
}

func (s *Signal) checkPayloadLength(payload []byte) error {
	needBytes := int(s.maxPhysicalBit())/8 + 1
	if len(payload) < needBytes {
		return NewError(KindDecoding, ReasonPayloadTooShort, 0)
	}
	return nil
}

// DecodeRaw extracts the signal's raw integer value from payload without
// applying factor/offset, alongside the physical value computed from it in
// the same pass (spec.md §4.4's decode_raw: avoids recomputing the gather
// for multiplexer-switch decoding).
func (s *Signal) DecodeRaw(payload []byte) (raw int64, physical float64, err error) {
	if err := s.checkPayloadLength(payload); err != nil {
		return 0, 0, err
	}

	bits := gatherBits(payload, s.StartBit, s.Length, s.ByteOrder)

	switch s.ExtendedValueType {
	case ValueFloat32:
		physical = float32FromBits(bits)*s.Factor + s.Offset
		return int64(bits), physical, nil
	case ValueFloat64:
		physical = float64FromBits(bits)*s.Factor + s.Offset
		return int64(bits), physical, nil
	}

	if s.Signed {
		raw = signExtend64(bits, s.Length)
	} else {
		raw = int64(bits)
	}
	physical = float64(raw)*s.Factor + s.Offset
	return raw, physical, nil
}

// Decode returns only the physical value; see DecodeRaw to also get the raw
// integer (used by multiplexer-switch resolution).
func (s *Signal) Decode(payload []byte) (float64, error) {
	_, physical, err := s.DecodeRaw(payload)
	return physical, err
}

// EncodeOptions controls out-of-range handling for Signal.Encode.
type EncodeOptions struct {
	// Clamp, when true, clamps values outside [Min, Max] (and raw values
	// outside the signal's bit-width range) instead of rejecting them.
	Clamp bool
}

// Encode computes the raw integer for value and deposits its bits into
// payload (which must already be sized to the owning message's DLC),
// leaving all other bits untouched. Rounding uses round-half-away-from-zero
// (spec.md §4.4 leaves the rounding mode for the caller to pick).
func (s *Signal) Encode(payload []byte, value float64, opts EncodeOptions) error {
	if err := s.checkPayloadLength(payload); err != nil {
		return err
	}

	if !opts.Clamp && (value < s.Min || value > s.Max) {
		return NewError(KindDecoding, ReasonValueOutOfRange, 0)
	}
	if opts.Clamp {
		if value < s.Min {
			value = s.Min
		} else if value > s.Max {
			value = s.Max
		}
	}

	switch s.ExtendedValueType {
	case ValueFloat32:
		raw := bitsFromFloat32((value - s.Offset) / s.Factor)
		scatterBits(payload, raw, s.StartBit, s.Length, s.ByteOrder)
		return nil
	case ValueFloat64:
		raw := bitsFromFloat64((value - s.Offset) / s.Factor)
		scatterBits(payload, raw, s.StartBit, s.Length, s.ByteOrder)
		return nil
	}

	rawSigned := roundHalfAwayFromZero((value - s.Offset) / s.Factor)

	var lo, hi int64
	if s.Signed {
		lo = -(int64(1) << (s.Length - 1))
		hi = (int64(1) << (s.Length - 1)) - 1
	} else {
		lo = 0
		hi = int64((uint64(1) << s.Length) - 1)
	}
	if rawSigned < lo {
		if !opts.Clamp {
			return NewError(KindDecoding, ReasonValueOutOfRange, 0)
		}
		rawSigned = lo
	}
	if rawSigned > hi {
		if !opts.Clamp {
			return NewError(KindDecoding, ReasonValueOutOfRange, 0)
		}
		rawSigned = hi
	}

	mask := uint64(1)<<s.Length - 1
	if s.Length == 64 {
		mask = ^uint64(0)
	}
	scatterBits(payload, uint64(rawSigned)&mask, s.StartBit, s.Length, s.ByteOrder)
	return nil
}

// EncodeRaw deposits a pre-computed raw integer directly, skipping the
// factor/offset/range machinery, for callers that already hold a raw value.
// Encode does not use it: it writes switch signals through Signal.Encode
// like any other signal.
func (s *Signal) EncodeRaw(payload []byte, raw uint64) error {
	if err := s.checkPayloadLength(payload); err != nil {
		return err
	}
	scatterBits(payload, raw, s.StartBit, s.Length, s.ByteOrder)
	return nil
}

func roundHalfAwayFromZero(v float64) int64 {
	if v >= 0 {
		return int64(math.Floor(v + 0.5))
	}
	return int64(math.Ceil(v - 0.5))
}
