package dbc

// SignalGroup names a subset of signals within a message (SIG_GROUP_).
type SignalGroup struct {
	MessageID   uint32
	Name        string
	Repetitions uint32
	SignalNames []string
}

// SignalType is a named, reusable signal-encoding template (SGTYPE_).
type SignalType struct {
	Name              string
	Length            uint16
	ByteOrder         ByteOrder
	Signed            bool
	Factor            float64
	Offset            float64
	Min               float64
	Max               float64
	Unit              string
	DefaultValue      float64
	ValueTableName    string // optional VAL_TABLE_ reference
}

// SignalTypeReference links a (message_id, signal_name) to a SignalType
// (SIG_TYPE_REF_).
type SignalTypeReference struct {
	MessageID      uint32
	SignalName     string
	SignalTypeName string
}

// MessageTransmitters is a BO_TX_BU_ entry: additional nodes permitted to
// transmit a message beyond its declared sender.
type MessageTransmitters struct {
	MessageID uint32
	NodeNames []string
}

// EnvironmentVariable is an EV_ entry. Its semantics are opaque to this
// library beyond storage and lookup (spec.md §4.3).
type EnvironmentVariable struct {
	Name       string
	Kind       uint32 // 0 int, 1 float, 2 string per EV_ grammar
	Min        float64
	Max        float64
	Unit       string
	InitValue  float64
	EVID       uint32
	AccessType string
	NodeNames  []string
}

// EnvironmentVariableData records a ENVVAR_DATA_/EV_DATA_ entry: an
// environment variable that carries a block of raw bytes rather than a
// scalar.
type EnvironmentVariableData struct {
	Name   string
	Length uint32
}
