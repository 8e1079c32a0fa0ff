package dbc

// activeSignals determines, in definition order, the subset of m's signals
// that are present given payload (spec.md §4.5). It is the single place
// both Decode and the encode-side "only write the active subset" rule
// consult.
func activeSignals(doc *Document, m *Message, payload []byte) ([]*Signal, error) {
	switchSig, hasSwitch := m.SwitchSignal()
	if !hasSwitch {
		out := make([]*Signal, 0, len(m.Signals))
		for i := range m.Signals {
			if m.Signals[i].Mux.Kind == RoleNormal {
				out = append(out, &m.Signals[i])
			}
		}
		return out, nil
	}

	swRaw, _, err := switchSig.DecodeRaw(payload)
	if err != nil {
		return nil, err
	}
	topSwitch := uint64(swRaw)

	// Cache decoded raw values of any signal used as a nested switch so we
	// don't re-gather the same bits once per dependent signal.
	rawCache := map[string]uint64{switchSig.Name: topSwitch}
	rawOf := func(name string) (uint64, error) {
		if v, ok := rawCache[name]; ok {
			return v, nil
		}
		sig, ok := m.SignalByName(name)
		if !ok {
			return 0, NewError(KindDecoding, ReasonSignalNotInMessage, 0)
		}
		raw, _, err := sig.DecodeRaw(payload)
		if err != nil {
			return 0, err
		}
		rawCache[name] = uint64(raw)
		return uint64(raw), nil
	}

	out := make([]*Signal, 0, len(m.Signals))
	for i := range m.Signals {
		s := &m.Signals[i]
		switch s.Mux.Kind {
		case RoleSwitch:
			out = append(out, s)
		case RoleNormal:
			out = append(out, s)
		case RoleMultiplexed:
			ext := doc.ExtendedMultiplexingFor(m.ID, s.Name)
			if len(ext) == 0 {
				if topSwitch == s.Mux.SwitchValue {
					out = append(out, s)
				}
				continue
			}
			active, err := extendedMuxActive(ext, rawOf)
			if err != nil {
				return nil, err
			}
			if active {
				out = append(out, s)
			}
		}
	}
	return out, nil
}

// muxDependencies returns the names of the switch signals that gate s's
// activation: the top-level switch for plain m<N> multiplexing, or the
// distinct MultiplexSwitch names named in s's SG_MUL_VAL_ entries for
// extended multiplexing. Used by Encode to resolve nested switches before
// the signals that depend on them (spec.md §4.5).
func muxDependencies(doc *Document, m *Message, s *Signal) []string {
	ext := doc.ExtendedMultiplexingFor(m.ID, s.Name)
	if len(ext) == 0 {
		if sw, ok := m.SwitchSignal(); ok {
			return []string{sw.Name}
		}
		return nil
	}
	seen := make(map[string]bool, len(ext))
	var deps []string
	for _, e := range ext {
		if !seen[e.MultiplexSwitch] {
			seen[e.MultiplexSwitch] = true
			deps = append(deps, e.MultiplexSwitch)
		}
	}
	return deps
}

func allWritten(deps []string, written map[string]bool) bool {
	for _, d := range deps {
		if !written[d] {
			return false
		}
	}
	return true
}

// extendedMuxActive evaluates the AND-across-switches, OR-across-ranges
// rule for a signal's SG_MUL_VAL_ entries (spec.md §4.5).
func extendedMuxActive(entries []ExtendedMultiplexing, rawOf func(string) (uint64, error)) (bool, error) {
	bySwitch := make(map[string][]ExtendedMultiplexing, len(entries))
	for _, e := range entries {
		bySwitch[e.MultiplexSwitch] = append(bySwitch[e.MultiplexSwitch], e)
	}
	for switchName, es := range bySwitch {
		v, err := rawOf(switchName)
		if err != nil {
			return false, err
		}
		matched := false
		for _, e := range es {
			if e.Matches(v) {
				matched = true
				break
			}
		}
		if !matched {
			return false, nil
		}
	}
	return true, nil
}
