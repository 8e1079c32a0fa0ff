package dbc

import "strings"

// bitRange returns the inclusive (lsb, msb) physical bit positions a signal
// occupies, honoring its byte order. For Intel signals this is a contiguous
// forward range; for Motorola signals it follows the sawtooth numbering of
// spec.md §4.4 and the range is the min/max of the per-bit physical
// positions the signal covers.
func bitRange(startBit, length uint16, order ByteOrder) (lsb, msb uint16) {
	if order == Intel {
		return startBit, startBit + length - 1
	}
	min := ^uint16(0)
	max := uint16(0)
	sByte := startBit / 8
	topDist := 7 - startBit%8
	for k := uint16(0); k < length; k++ {
		g := topDist + k
		byteIdx := sByte + g/8
		bit := 7 - (g % 8)
		phys := byteIdx*8 + bit
		if phys < min {
			min = phys
		}
		if phys > max {
			max = phys
		}
	}
	return min, max
}

// Build validates cross-statement invariants and returns the first
// violation found (spec.md §3, §7: "validation runs once; reporting only
// the first is permissible in v1"). It never mutates doc on failure path
// beyond what the caller already assembled; it is safe to call repeatedly.
func Build(doc *Document, opts ParseOptions) error {
	if err := validateNodes(doc, opts); err != nil {
		return err
	}
	if err := validateMessages(doc, opts); err != nil {
		return err
	}
	if err := validateValueDescriptions(doc, opts); err != nil {
		return err
	}
	if err := validateExtendedMux(doc, opts); err != nil {
		return err
	}
	return nil
}

func validateNodes(doc *Document, opts ParseOptions) error {
	if len(doc.Nodes) > MaxNodes {
		return opts.newError(KindNodes, ReasonTooManyMessages, 0)
	}
	seen := make(map[string]bool, len(doc.Nodes))
	for _, n := range doc.Nodes {
		if strings.TrimSpace(n.Name) == "" {
			return opts.newError(KindNodes, ReasonNodeNameEmpty, 0)
		}
		if seen[n.Name] {
			return opts.newError(KindNodes, ReasonNodesDuplicateName, 0)
		}
		seen[n.Name] = true
	}
	return nil
}

func validateMessages(doc *Document, opts ParseOptions) error {
	if len(doc.Messages) > MaxMessages {
		return opts.newError(KindValidation, ReasonTooManyMessages, 0)
	}

	hasNodes := len(doc.Nodes) > 0
	seenIDs := make(map[uint32]bool, len(doc.Messages))

	for mi := range doc.Messages {
		m := &doc.Messages[mi]

		if seenIDs[m.ID] {
			return opts.newError(KindValidation, ReasonDuplicateMessageID, 0)
		}
		seenIDs[m.ID] = true

		if strings.TrimSpace(m.Name) == "" {
			return opts.newError(KindValidation, ReasonMessageNameEmpty, 0)
		}
		if strings.TrimSpace(m.Sender) == "" {
			return opts.newError(KindValidation, ReasonMessageSenderEmpty, 0)
		}
		if m.DLC == 0 {
			return opts.newError(KindValidation, ReasonMessageDLCTooSmall, 0)
		}
		if m.DLC > 64 {
			return opts.newError(KindValidation, ReasonMessageDLCTooLarge, 0)
		}
		if IsExtendedID(m.ID) {
			if RawCANID(m.ID) > extendedIDMask {
				return opts.newError(KindValidation, ReasonMessageIDOutOfRange, 0)
			}
		} else if m.ID > standardIDMask && m.ID != 0 {
			// Standard ids are bounded to 11 bits; values above that without
			// the extended marker bit are malformed.
			if m.ID != OrphanMessageID {
				return opts.newError(KindValidation, ReasonMessageIDOutOfRange, 0)
			}
		}

		if hasNodes {
			if _, ok := doc.NodeByName(m.Sender); !ok {
				return opts.newError(KindValidation, ReasonSenderNotInNodes, 0)
			}
		}

		if len(m.Signals) > MaxSignalsPerMessage {
			return opts.newError(KindValidation, ReasonMessageTooManySignals, 0)
		}

		if err := validateSignals(doc, m, hasNodes, opts); err != nil {
			return err
		}
	}
	return nil
}

func validateSignals(doc *Document, m *Message, hasNodes bool, opts ParseOptions) error {
	maxBits := uint16(m.DLC) * 8
	seenNames := make(map[string]bool, len(m.Signals))
	switchSeen := false

	type ranged struct {
		lsb, msb uint16
		mux      MuxRoleKind
	}
	ranges := make([]ranged, 0, len(m.Signals))

	for si := range m.Signals {
		s := &m.Signals[si]

		if strings.TrimSpace(s.Name) == "" {
			return opts.newError(KindValidation, ReasonSignalNameEmpty, 0)
		}
		if seenNames[s.Name] {
			return opts.newError(KindValidation, ReasonSignalNameDuplicate, 0)
		}
		seenNames[s.Name] = true

		if s.Length == 0 {
			return opts.newError(KindValidation, ReasonSignalLengthTooSmall, 0)
		}
		if s.Length > 512 {
			return opts.newError(KindValidation, ReasonSignalLengthTooLarge, 0)
		}
		if s.Factor == 0 {
			return opts.newError(KindValidation, ReasonSignalFactorZero, 0)
		}
		if s.Min > s.Max {
			return opts.newError(KindValidation, ReasonInvalidRange, 0)
		}
		if s.ExtendedValueType == ValueFloat32 && s.Length != 32 {
			return opts.newError(KindValidation, ReasonInvalidFloatLength, 0)
		}
		if s.ExtendedValueType == ValueFloat64 && s.Length != 64 {
			return opts.newError(KindValidation, ReasonInvalidFloatLength, 0)
		}

		if s.Mux.Kind == RoleSwitch {
			if switchSeen {
				return opts.newError(KindValidation, ReasonMultipleSwitchSignals, 0)
			}
			switchSeen = true
		}

		if !s.Receivers.IsNone() {
			for _, r := range s.Receivers.Names() {
				if r == VectorXXX {
					continue
				}
				if hasNodes {
					if _, ok := doc.NodeByName(r); !ok {
						return opts.newError(KindValidation, ReasonReceiverNotInNodes, 0)
					}
				}
			}
		}

		lsb, msb := bitRange(s.StartBit, s.Length, s.ByteOrder)
		maxBit := msb
		if lsb > maxBit {
			maxBit = lsb
		}
		if opts.StrictBoundaryCheck && maxBit >= maxBits {
			return opts.newError(KindValidation, ReasonSignalExtendsBeyondMsg, 0)
		}

		ranges = append(ranges, ranged{lsb: lsb, msb: msb, mux: s.Mux.Kind})
	}

	for i := 0; i < len(ranges); i++ {
		for j := i + 1; j < len(ranges); j++ {
			a, b := ranges[i], ranges[j]
			if a.lsb <= b.msb && b.lsb <= a.msb {
				bothMuxed := a.mux == RoleMultiplexed && b.mux == RoleMultiplexed
				if !bothMuxed {
					return opts.newError(KindValidation, ReasonSignalOverlap, 0)
				}
			}
		}
	}
	return nil
}

func validateValueDescriptions(doc *Document, opts ParseOptions) error {
	for _, vd := range doc.ValueDescriptions {
		if vd.Global {
			found := false
			for _, m := range doc.Messages {
				if _, ok := m.SignalByName(vd.SignalName); ok {
					found = true
					break
				}
			}
			if !found {
				return opts.newError(KindValidation, ReasonValueDescriptionSignalNotFound, 0)
			}
			continue
		}
		m, ok := doc.MessageByID(vd.MessageID)
		if !ok {
			return opts.newError(KindValidation, ReasonValueDescriptionSignalNotFound, 0)
		}
		if _, ok := m.SignalByName(vd.SignalName); !ok {
			return opts.newError(KindValidation, ReasonValueDescriptionSignalNotFound, 0)
		}
	}
	return nil
}

func validateExtendedMux(doc *Document, opts ParseOptions) error {
	for _, e := range doc.ExtendedMultiplexing {
		m, ok := doc.MessageByID(e.MessageID)
		if !ok {
			return opts.newError(KindValidation, ReasonExtendedMuxSwitchNotFound, 0)
		}
		target, ok := m.SignalByName(e.SignalName)
		if !ok || target.Mux.Kind != RoleMultiplexed {
			return opts.newError(KindValidation, ReasonExtendedMuxSignalNotMultiplexed, 0)
		}
		sw, ok := m.SignalByName(e.MultiplexSwitch)
		if !ok || (sw.Mux.Kind != RoleSwitch && sw.Mux.Kind != RoleMultiplexed) {
			return opts.newError(KindValidation, ReasonExtendedMuxSwitchNotFound, 0)
		}
	}
	return detectMuxCycles(doc, opts)
}

// detectMuxCycles rejects a document where nested-switch references among
// ExtendedMultiplexing entries form a cycle (spec.md §4.5: "cycles among
// switches are a validation error").
func detectMuxCycles(doc *Document, opts ParseOptions) error {
	// Build an edge signal -> switch per (message, signal) for signals that
	// are themselves switches fed by another multiplexed signal.
	type key struct {
		id   uint32
		name string
	}
	edge := make(map[key]key, len(doc.ExtendedMultiplexing))
	for _, e := range doc.ExtendedMultiplexing {
		m, ok := doc.MessageByID(e.MessageID)
		if !ok {
			continue
		}
		sw, ok := m.SignalByName(e.MultiplexSwitch)
		if !ok || sw.Mux.Kind != RoleMultiplexed {
			continue // switch is the message's plain Switch signal: no edge
		}
		edge[key{e.MessageID, e.SignalName}] = key{e.MessageID, e.MultiplexSwitch}
	}

	for start := range edge {
		visited := map[key]bool{}
		cur := start
		for {
			if visited[cur] {
				return opts.newError(KindValidation, ReasonExtendedMuxCycle, 0)
			}
			visited[cur] = true
			next, ok := edge[cur]
			if !ok {
				break
			}
			cur = next
		}
	}
	return nil
}
