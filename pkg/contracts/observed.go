package contracts

import (
	"encoding/json"
	"fmt"
)

// RawParam is one entry of the flat-array parameter encoding emitted by
// older indexer versions.
type RawParam struct {
	Type  string `json:"type"`
	Name  string `json:"name"`
	Value any    `json:"value"`
}

// RawParams accepts both parameter encodings the indexer emits: a flat array
// of {type,name,value} triples, or a keyed {name: value} record.
type RawParams struct {
	Flat  []RawParam
	Keyed map[string]any
}

// UnmarshalJSON decodes either encoding. A JSON array becomes Flat; a JSON
// object becomes Keyed; null leaves both empty.
func (p *RawParams) UnmarshalJSON(data []byte) error {
	switch {
	case len(data) == 0 || string(data) == "null":
		return nil
	case data[0] == '[':
		return json.Unmarshal(data, &p.Flat)
	case data[0] == '{':
		return json.Unmarshal(data, &p.Keyed)
	default:
		return fmt.Errorf("params: expected array or object, got %q", data[0])
	}
}

// MarshalJSON re-emits whichever encoding was populated, preferring Flat.
func (p RawParams) MarshalJSON() ([]byte, error) {
	if p.Flat != nil {
		return json.Marshal(p.Flat)
	}
	if p.Keyed != nil {
		return json.Marshal(p.Keyed)
	}
	return []byte("null"), nil
}

// Canonical flattens both encodings into one name-keyed map. Flat entries win
// over keyed entries with the same name so the two encodings cannot disagree
// silently.
func (p RawParams) Canonical() map[string]any {
	out := make(map[string]any, len(p.Flat)+len(p.Keyed))
	for k, v := range p.Keyed {
		out[k] = v
	}
	for _, rp := range p.Flat {
		out[rp.Name] = rp.Value
	}
	return out
}

// RawObservedAction is one staged action as read back from the indexer.
// It is transient: consumed once per conversion, never stored.
type RawObservedAction struct {
	Index              int       `json:"index"`
	Type               string    `json:"type"`
	FullyQualifiedType string    `json:"fullyQualifiedType,omitempty"`
	PackageID          string    `json:"packageId,omitempty"`
	CoinType           string    `json:"coinType,omitempty"`
	Params             RawParams `json:"params"`

	// Unparsed marks a record the upstream indexer could not decode.
	// Conversion of such a record always fails with UnparsedAction.
	Unparsed bool `json:"unparsed,omitempty"`
}

// ExecutionConfig is a typed, resolved description of one action ready to
// dispatch: kind id, canonical field values, and one resolved on-chain type
// per declared generic slot. Produced by a staging caller that still holds
// the original config, or reconstructed by pkg/convert from a
// RawObservedAction.
type ExecutionConfig struct {
	Kind     string
	Fields   map[string]any
	TypeArgs map[TypeParamSlot]string

	// Produces / Consumes mirror StagedAction resource-bag names.
	Produces string
	Consumes string
}

// Field returns the named field value.
func (c *ExecutionConfig) Field(name string) (any, bool) {
	v, ok := c.Fields[name]
	return v, ok
}

// OrderedTypeArgs projects the resolved type arguments into the definition's
// declared slot order, the order every ledger call requires.
func (c *ExecutionConfig) OrderedTypeArgs(def *ActionDefinition) ([]string, error) {
	if len(def.TypeParams) == 0 {
		return nil, nil
	}
	out := make([]string, 0, len(def.TypeParams))
	for _, slot := range def.TypeParams {
		arg, ok := c.TypeArgs[slot]
		if !ok || arg == "" {
			return nil, fmt.Errorf("action %s: unresolved type argument for slot %s", c.Kind, slot)
		}
		out = append(out, arg)
	}
	return out, nil
}
