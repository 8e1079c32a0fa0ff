package dbc

// ExtendedMuxRange is one inclusive [Min, Max] activation range.
type ExtendedMuxRange struct {
	Min uint64
	Max uint64
}

// Contains reports whether v falls within this inclusive range.
func (r ExtendedMuxRange) Contains(v uint64) bool { return v >= r.Min && v <= r.Max }

// ExtendedMultiplexing is one SG_MUL_VAL_ entry: the controlled signal is
// active iff the named switch's decoded raw value falls within any of
// Ranges. When a signal has multiple ExtendedMultiplexing entries (one per
// switch it depends on), all of them must be satisfied (AND across
// switches; OR across ranges within one entry) — spec.md §4.5.
type ExtendedMultiplexing struct {
	MessageID       uint32
	SignalName      string
	MultiplexSwitch string
	Ranges          []ExtendedMuxRange
}

// Matches reports whether switchValue activates this entry.
func (e ExtendedMultiplexing) Matches(switchValue uint64) bool {
	for _, r := range e.Ranges {
		if r.Contains(switchValue) {
			return true
		}
	}
	return false
}
