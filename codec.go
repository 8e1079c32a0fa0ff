package dbc

// DecodedSignal is one signal's decoded value, as returned by Decode.
type DecodedSignal struct {
	Name  string
	Value float64
	Unit  string
	Raw   int64
}

// NamedValue pairs a signal name with the physical value to encode.
type NamedValue struct {
	Name  string
	Value float64
}

// Frame is the minimal shape this library needs from a caller's CAN driver
// frame type: a wire identifier, whether it is 29-bit extended, and the
// payload bytes. Integration with any specific driver's frame type is out
// of scope (spec.md §1); this interface is the whole surface a driver
// adapter must satisfy.
type Frame interface {
	ID() uint32
	IsExtended() bool
	Data() []byte
}

// Decode looks up the message matching (id, isExtended) and returns the
// physical value of every currently-active signal, in definition order
// (spec.md §4.5, §6).
func Decode(doc *Document, id uint32, payload []byte, isExtended bool) ([]DecodedSignal, error) {
	m, ok := doc.FindMessage(id, isExtended)
	if !ok {
		return nil, NewError(KindDecoding, ReasonMessageNotFound, 0)
	}

	signals, err := activeSignals(doc, m, payload)
	if err != nil {
		return nil, err
	}

	out := make([]DecodedSignal, 0, len(signals))
	for _, s := range signals {
		raw, physical, err := s.DecodeRaw(payload)
		if err != nil {
			return nil, err
		}
		out = append(out, DecodedSignal{Name: s.Name, Value: physical, Unit: s.Unit, Raw: raw})
	}
	return out, nil
}

// DecodeFrame adapts an opaque driver Frame to Decode.
func DecodeFrame(doc *Document, f Frame) ([]DecodedSignal, error) {
	return Decode(doc, f.ID(), f.Data(), f.IsExtended())
}

// Encode looks up the message matching (id, isExtended) and returns a
// dlc-byte payload with every named value encoded into its signal. Names
// absent from values default to a zero raw value (spec.md §6); when the
// message is multiplexed, switch values given in `values` determine which
// multiplexed signals are written — signals not selected by the switch (or
// not satisfying their extended-multiplexing ranges) are left as zero.
func Encode(doc *Document, id uint32, values []NamedValue, isExtended bool, opts EncodeOptions) ([]byte, error) {
	m, ok := doc.FindMessage(id, isExtended)
	if !ok {
		return nil, NewError(KindDecoding, ReasonMessageNotFound, 0)
	}

	payload := make([]byte, m.DLC)

	lookup := make(map[string]float64, len(values))
	for _, v := range values {
		lookup[v.Name] = v.Value
	}

	encodeSignal := func(s *Signal) error {
		v, ok := lookup[s.Name]
		if !ok {
			// payload starts zeroed, so leaving the bits alone is raw 0.
			return nil
		}
		return s.Encode(payload, v, opts)
	}

	written := make(map[string]bool, len(m.Signals))

	// The top switch must be written first: everything else's activation is
	// resolved relative to already-written switch values.
	if sw, hasSwitch := m.SwitchSignal(); hasSwitch {
		if err := encodeSignal(sw); err != nil {
			return nil, err
		}
		written[sw.Name] = true
	}

	// Resolve and write the rest one multiplexing layer at a time: a nested
	// switch signal (one itself named as a SG_MUL_VAL_ MultiplexSwitch) must
	// be committed to payload before the signals gated on it can have their
	// activation evaluated, since activeSignals reads switch values back out
	// of payload rather than out of the caller-supplied values.
	remaining := make([]*Signal, 0, len(m.Signals))
	for i := range m.Signals {
		s := &m.Signals[i]
		if s.Mux.Kind == RoleSwitch {
			continue
		}
		remaining = append(remaining, s)
	}

	for len(remaining) > 0 {
		active, err := activeSignals(doc, m, payload)
		if err != nil {
			return nil, err
		}
		activeSet := make(map[string]bool, len(active))
		for _, s := range active {
			activeSet[s.Name] = true
		}

		// Signals handled this round are marked written only after the
		// round, so a signal gated on a switch written in this same round
		// waits for the next activeSignals pass that can see its value.
		var next, done []*Signal
		for _, s := range remaining {
			if !allWritten(muxDependencies(doc, m, s), written) {
				next = append(next, s)
				continue
			}
			if activeSet[s.Name] {
				if err := encodeSignal(s); err != nil {
					return nil, err
				}
			}
			done = append(done, s)
		}
		for _, s := range done {
			written[s.Name] = true
		}
		if len(done) == 0 {
			// Remaining signals depend on a switch that never resolved
			// (e.g. gated on a switch that is itself inactive); leave them
			// at their zero default.
			break
		}
		remaining = next
	}

	return payload, nil
}
