package dbcfile

import (
	"fmt"
	"strconv"
	"strings"

	dbc "github.com/canlinelabs/godbc"
)

// Serialize renders a Document back to canonical DBC text: VERSION, NS_,
// BS_, BU_, each BO_ with its nested SG_ lines, then BO_TX_BU_, CM_,
// BA_DEF_, BA_DEF_DEF_, BA_, VAL_, VAL_TABLE_, SIG_GROUP_, SIG_VALTYPE_ and
// SG_MUL_VAL_ in that order.
func Serialize(doc *dbc.Document) []byte {
	var b strings.Builder

	fmt.Fprintf(&b, "VERSION \"%s\"\n\n", doc.Version.Value)
	b.WriteString("NS_ :\n\n")

	b.WriteString("BS_:")
	if doc.BitTiming.Set {
		fmt.Fprintf(&b, " %d:%d,%d", doc.BitTiming.Baudrate, doc.BitTiming.BTR1, doc.BitTiming.BTR2)
	}
	b.WriteString("\n\n")

	b.WriteString("BU_:")
	for _, n := range doc.Nodes {
		b.WriteString(" ")
		b.WriteString(n.Name)
	}
	b.WriteString("\n\n")

	for _, m := range doc.Messages {
		writeMessage(&b, m)
	}

	writeMessageTransmitters(&b, doc.MessageTransmitters)
	writeComments(&b, doc)
	writeAttributeDefinitions(&b, doc.AttributeDefinitions)
	writeAttributeDefaults(&b, doc.AttributeDefaults)
	writeAttributeValues(&b, doc.AttributeValues)
	writeValueDescriptions(&b, doc.ValueDescriptions)
	writeValueTables(&b, doc.ValueTables)
	writeSignalGroups(&b, doc.SignalGroups)
	writeSignalValueTypes(&b, doc)
	writeExtendedMultiplexing(&b, doc.ExtendedMultiplexing)

	return []byte(b.String())
}

func writeMessage(b *strings.Builder, m dbc.Message) {
	fmt.Fprintf(b, "BO_ %d %s: %d %s\n", m.ID, m.Name, m.DLC, m.Sender)
	for _, sg := range m.Signals {
		writeSignal(b, sg)
	}
	b.WriteString("\n")
}

func writeSignal(b *strings.Builder, sg dbc.Signal) {
	b.WriteString(" SG_ ")
	b.WriteString(sg.Name)
	switch sg.Mux.Kind {
	case dbc.RoleSwitch:
		b.WriteString(" M")
	case dbc.RoleMultiplexed:
		fmt.Fprintf(b, " m%d", sg.Mux.SwitchValue)
	}
	b.WriteString(" : ")

	order := "1"
	if sg.ByteOrder == dbc.Motorola {
		order = "0"
	}
	sign := "+"
	if sg.Signed {
		sign = "-"
	}
	fmt.Fprintf(b, "%d|%d@%s%s (%s,%s) [%s|%s] \"%s\" ",
		sg.StartBit, sg.Length, order, sign,
		formatFloat(sg.Factor), formatFloat(sg.Offset),
		formatFloat(sg.Min), formatFloat(sg.Max), sg.Unit)

	if sg.Receivers.IsNone() {
		b.WriteString(dbc.VectorXXX)
	} else {
		b.WriteString(strings.Join(sg.Receivers.Names(), ","))
	}
	b.WriteString("\n")
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}

func writeMessageTransmitters(b *strings.Builder, mts []dbc.MessageTransmitters) {
	for _, mt := range mts {
		fmt.Fprintf(b, "BO_TX_BU_ %d : %s;\n", mt.MessageID, strings.Join(mt.NodeNames, ","))
	}
	if len(mts) > 0 {
		b.WriteString("\n")
	}
}

func writeComments(b *strings.Builder, doc *dbc.Document) {
	for _, c := range doc.Comments {
		switch c.ObjectType {
		case dbc.CommentGeneral:
			fmt.Fprintf(b, "CM_ \"%s\";\n", c.Text)
		case dbc.CommentNode:
			fmt.Fprintf(b, "CM_ BU_ %s \"%s\";\n", c.NodeName, c.Text)
		case dbc.CommentMessage:
			fmt.Fprintf(b, "CM_ BO_ %d \"%s\";\n", c.MessageID, c.Text)
		case dbc.CommentSignal:
			fmt.Fprintf(b, "CM_ SG_ %d %s \"%s\";\n", c.MessageID, c.SignalName, c.Text)
		case dbc.CommentEnvironmentVariable:
			fmt.Fprintf(b, "CM_ EV_ %s \"%s\";\n", c.EnvVarName, c.Text)
		}
	}
	if len(doc.Comments) > 0 {
		b.WriteString("\n")
	}
}

func writeAttributeDefinitions(b *strings.Builder, defs []dbc.AttributeDefinition) {
	for _, d := range defs {
		prefix := attributeObjectPrefix(d.ObjectType)
		if prefix != "" {
			prefix += " "
		}
		fmt.Fprintf(b, "BA_DEF_ %s\"%s\" %s;\n", prefix, d.Name, formatAttributeValueType(d.ValueType))
	}
	if len(defs) > 0 {
		b.WriteString("\n")
	}
}

func formatAttributeValueType(t dbc.AttributeValueType) string {
	switch t.Kind {
	case dbc.AttrInt:
		return fmt.Sprintf("INT %d %d", t.IntMin, t.IntMax)
	case dbc.AttrHex:
		return fmt.Sprintf("HEX %d %d", t.IntMin, t.IntMax)
	case dbc.AttrFloat:
		return fmt.Sprintf("FLOAT %s %s", formatFloat(t.FloatMin), formatFloat(t.FloatMax))
	case dbc.AttrString:
		return "STRING"
	case dbc.AttrEnum:
		quoted := make([]string, len(t.EnumValues))
		for i, v := range t.EnumValues {
			quoted[i] = fmt.Sprintf("\"%s\"", v)
		}
		return "ENUM " + strings.Join(quoted, ",")
	}
	return ""
}

func attributeObjectPrefix(t dbc.AttributeObjectType) string {
	switch t {
	case dbc.AttributeNode:
		return "BU_"
	case dbc.AttributeMessage:
		return "BO_"
	case dbc.AttributeSignal:
		return "SG_"
	case dbc.AttributeEnvironmentVariable:
		return "EV_"
	}
	return ""
}

func writeAttributeDefaults(b *strings.Builder, defaults []dbc.AttributeDefault) {
	for _, d := range defaults {
		fmt.Fprintf(b, "BA_DEF_DEF_ \"%s\" %s;\n", d.Name, formatAttributeValue(d.Value))
	}
	if len(defaults) > 0 {
		b.WriteString("\n")
	}
}

func formatAttributeValue(v dbc.AttributeValue) string {
	switch v.Kind {
	case dbc.AttrString, dbc.AttrEnum:
		return fmt.Sprintf("\"%s\"", v.Text)
	case dbc.AttrFloat:
		return formatFloat(v.Flt)
	default:
		return strconv.FormatInt(v.Int, 10)
	}
}

func writeAttributeValues(b *strings.Builder, values []dbc.AttributeValueEntry) {
	for _, v := range values {
		target := ""
		switch v.Target.ObjectType {
		case dbc.AttributeNode:
			target = fmt.Sprintf("BU_ %s ", v.Target.NodeName)
		case dbc.AttributeMessage:
			target = fmt.Sprintf("BO_ %d ", v.Target.MessageID)
		case dbc.AttributeSignal:
			target = fmt.Sprintf("SG_ %d %s ", v.Target.MessageID, v.Target.SignalName)
		case dbc.AttributeEnvironmentVariable:
			target = fmt.Sprintf("EV_ %s ", v.Target.EnvVarName)
		}
		fmt.Fprintf(b, "BA_ \"%s\" %s%s;\n", v.Name, target, formatAttributeValue(v.Value))
	}
	if len(values) > 0 {
		b.WriteString("\n")
	}
}

func writeValueDescriptions(b *strings.Builder, vds []dbc.ValueDescriptions) {
	for _, vd := range vds {
		if vd.Global {
			fmt.Fprintf(b, "VAL_ %s %s;\n", vd.SignalName, formatValueTableEntries(vd.Entries))
			continue
		}
		id := strconv.FormatUint(uint64(vd.MessageID), 10)
		fmt.Fprintf(b, "VAL_ %s %s %s;\n", id, vd.SignalName, formatValueTableEntries(vd.Entries))
	}
	if len(vds) > 0 {
		b.WriteString("\n")
	}
}

func formatValueTableEntries(entries []dbc.ValueTableEntry) string {
	var parts []string
	for _, e := range entries {
		parts = append(parts, fmt.Sprintf("%d \"%s\"", e.Value, e.Desc))
	}
	return strings.Join(parts, " ")
}

func writeValueTables(b *strings.Builder, tables []dbc.ValueTable) {
	for _, t := range tables {
		fmt.Fprintf(b, "VAL_TABLE_ %s %s;\n", t.Name, formatValueTableEntries(t.Entries))
	}
	if len(tables) > 0 {
		b.WriteString("\n")
	}
}

func writeSignalGroups(b *strings.Builder, groups []dbc.SignalGroup) {
	for _, g := range groups {
		fmt.Fprintf(b, "SIG_GROUP_ %d %s %d : %s;\n",
			g.MessageID, g.Name, g.Repetitions, strings.Join(g.SignalNames, " "))
	}
	if len(groups) > 0 {
		b.WriteString("\n")
	}
}

func writeSignalValueTypes(b *strings.Builder, doc *dbc.Document) {
	var wrote bool
	for _, m := range doc.Messages {
		for _, sg := range m.Signals {
			if sg.ExtendedValueType == dbc.ValueInteger {
				continue
			}
			code := 1
			if sg.ExtendedValueType == dbc.ValueFloat64 {
				code = 2
			}
			fmt.Fprintf(b, "SIG_VALTYPE_ %d %s : %d;\n", m.ID, sg.Name, code)
			wrote = true
		}
	}
	if wrote {
		b.WriteString("\n")
	}
}

func writeExtendedMultiplexing(b *strings.Builder, entries []dbc.ExtendedMultiplexing) {
	for _, e := range entries {
		var ranges []string
		for _, r := range e.Ranges {
			ranges = append(ranges, fmt.Sprintf("%d-%d", r.Min, r.Max))
		}
		fmt.Fprintf(b, "SG_MUL_VAL_ %d %s %s %s;\n",
			e.MessageID, e.SignalName, e.MultiplexSwitch, strings.Join(ranges, ","))
	}
}
