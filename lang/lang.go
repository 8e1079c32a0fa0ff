// Package lang provides an optional, data-driven override of the default
// English error messages dbc.NewError produces, so a host application can
// ship a locale file instead of recompiling with a different message table.
package lang

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Table implements dbc.Translator over a flat reason-code -> message map.
type Table struct {
	messages map[string]string
}

// Translate looks up reason in the table.
func (t *Table) Translate(reason string) (string, bool) {
	msg, ok := t.messages[reason]
	return msg, ok
}

// Load builds a Table directly from a map, e.g. one assembled in code.
func Load(messages map[string]string) *Table {
	cp := make(map[string]string, len(messages))
	for k, v := range messages {
		cp[k] = v
	}
	return &Table{messages: cp}
}

// LoadYAML parses a locale file shaped as a flat mapping of reason code to
// translated text, e.g.:
//
//	SIGNAL_OVERLAP: "zwei Signale ueberlappen sich"
//	VALUE_OUT_OF_RANGE: "Wert ausserhalb des gueltigen Bereichs"
func LoadYAML(data []byte) (*Table, error) {
	var raw map[string]string
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("lang: parsing locale yaml: %w", err)
	}
	return Load(raw), nil
}
