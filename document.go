package dbc

// Document is the root of the parsed/validated model. dbcfile.Parse fills
// in every field and runs Build, which validates the Document without
// changing it; nothing in this module mutates a Document afterward, so a
// *Document may be shared freely across goroutines for reads.
type Document struct {
	Version   Version
	BitTiming BitTiming
	Nodes     []Node
	Messages  []Message

	Comments              []CommentEntry
	ValueTables           []ValueTable
	ValueDescriptions     []ValueDescriptions
	AttributeDefinitions  []AttributeDefinition
	AttributeDefaults     []AttributeDefault
	AttributeValues       []AttributeValueEntry
	SignalGroups          []SignalGroup
	SignalTypes           []SignalType
	SignalTypeReferences  []SignalTypeReference
	MessageTransmitters   []MessageTransmitters
	EnvironmentVariables  []EnvironmentVariable
	EnvironmentVariableData []EnvironmentVariableData
	ExtendedMultiplexing  []ExtendedMultiplexing
}

// MessageByID returns the message with the given stored id (extended-flag
// bit included), or false if none is defined.
func (d *Document) MessageByID(id uint32) (*Message, bool) {
	for i := range d.Messages {
		if d.Messages[i].ID == id {
			return &d.Messages[i], true
		}
	}
	return nil, false
}

// FindMessage looks a message up the way wire traffic addresses it: a
// standard frame matches on its 11-bit id, an extended frame matches on its
// 29-bit id with the extended marker bit applied, per spec.md §6.
func (d *Document) FindMessage(id uint32, isExtended bool) (*Message, bool) {
	var want uint32
	if isExtended {
		want = MakeExtendedID(id)
	} else {
		want = id & standardIDMask
	}
	return d.MessageByID(want)
}

// MessageByName returns the first message with the given name.
func (d *Document) MessageByName(name string) (*Message, bool) {
	for i := range d.Messages {
		if d.Messages[i].Name == name {
			return &d.Messages[i], true
		}
	}
	return nil, false
}

// NodeByName returns the node with the given name.
func (d *Document) NodeByName(name string) (*Node, bool) {
	for i := range d.Nodes {
		if d.Nodes[i].Name == name {
			return &d.Nodes[i], true
		}
	}
	return nil, false
}

// ValueDescriptionsFor resolves the VAL_ entry for a (message_id,
// signal_name) pair, preferring a message-specific entry and falling back
// to a global (wildcard message id) entry, per spec.md §9.
func (d *Document) ValueDescriptionsFor(messageID uint32, signalName string) (ValueDescriptions, bool) {
	var global *ValueDescriptions
	for i := range d.ValueDescriptions {
		vd := &d.ValueDescriptions[i]
		if vd.SignalName != signalName {
			continue
		}
		if vd.Global {
			global = vd
			continue
		}
		if vd.MessageID == messageID {
			return *vd, true
		}
	}
	if global != nil {
		return *global, true
	}
	return ValueDescriptions{}, false
}

// ValueTableByName returns the named VAL_TABLE_ definition.
func (d *Document) ValueTableByName(name string) (*ValueTable, bool) {
	for i := range d.ValueTables {
		if d.ValueTables[i].Name == name {
			return &d.ValueTables[i], true
		}
	}
	return nil, false
}

// ExtendedMultiplexingFor returns every SG_MUL_VAL_ entry controlling the
// given signal on the given message.
func (d *Document) ExtendedMultiplexingFor(messageID uint32, signalName string) []ExtendedMultiplexing {
	var out []ExtendedMultiplexing
	for _, e := range d.ExtendedMultiplexing {
		if e.MessageID == messageID && e.SignalName == signalName {
			out = append(out, e)
		}
	}
	return out
}
