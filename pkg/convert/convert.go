// Package convert reconstructs typed execution configs from raw
// indexer-observed actions, for executors that never held the original
// staging config. Matching, field normalization, and type-argument
// resolution all run against the action catalog; a record the catalog cannot
// explain fails loudly rather than producing a best-guess config.
package convert

import (
	"strings"

	"github.com/praxis-labs/intentkit/pkg/catalog"
	"github.com/praxis-labs/intentkit/pkg/contracts"
)

// slotParam maps each generic slot to the explicit parameter name an indexer
// record may carry for it. An explicit parameter always wins over inline
// fields and positional generics.
var slotParam = map[contracts.TypeParamSlot]string{
	contracts.SlotCoinType:   "coin_type",
	contracts.SlotAssetType:  "asset_type",
	contracts.SlotStableType: "stable_type",
	contracts.SlotObjectType: "object_type",
	contracts.SlotCapType:    "cap_type",
	contracts.SlotKeyType:    "key_type",
}

// Converter turns RawObservedActions into ExecutionConfigs.
type Converter struct {
	cat *catalog.Catalog
}

// New creates a converter over the given catalog.
func New(cat *catalog.Catalog) *Converter {
	return &Converter{cat: cat}
}

// Convert reconstructs one execution config. Failure modes:
// UnknownActionKind when neither the marker type nor the legacy kind id
// matches the catalog; UnparsedAction when the indexer flagged the record;
// MissingField when a required field or type argument cannot be resolved.
func (c *Converter) Convert(raw contracts.RawObservedAction) (contracts.ExecutionConfig, error) {
	if raw.Unparsed {
		return contracts.ExecutionConfig{}, &contracts.ConversionError{
			Reason: contracts.UnparsedAction,
			Index:  raw.Index,
		}
	}

	def, err := c.resolve(raw)
	if err != nil {
		return contracts.ExecutionConfig{}, err
	}

	fields := normalizeFields(def, raw.Params.Canonical())

	typeArgs, convErr := c.resolveTypeArgs(def, raw, fields)
	if convErr != nil {
		return contracts.ExecutionConfig{}, convErr
	}

	// Required fields have no generic-type encoding to fall back on; their
	// absence is always fatal.
	for _, spec := range def.Params {
		if spec.Optional {
			continue
		}
		if _, ok := fields[spec.Name]; !ok {
			return contracts.ExecutionConfig{}, &contracts.ConversionError{
				Reason: contracts.MissingField,
				Kind:   def.ID,
				Index:  raw.Index,
				Field:  spec.Name,
			}
		}
	}

	return contracts.ExecutionConfig{
		Kind:     def.ID,
		Fields:   fields,
		TypeArgs: typeArgs,
	}, nil
}

// resolve matches the record against the catalog: exact marker type first,
// legacy kind-id encoding second.
func (c *Converter) resolve(raw contracts.RawObservedAction) (*contracts.ActionDefinition, error) {
	if raw.FullyQualifiedType != "" {
		if def, err := c.cat.LookupByMarkerType(raw.FullyQualifiedType); err == nil {
			return def, nil
		}
	}
	if raw.Type != "" {
		if def, err := c.cat.LookupByID(raw.Type); err == nil {
			return def, nil
		}
	}
	kind := raw.FullyQualifiedType
	if kind == "" {
		kind = raw.Type
	}
	return nil, &contracts.ConversionError{
		Reason: contracts.UnknownActionKind,
		Kind:   kind,
		Index:  raw.Index,
	}
}

// resolveTypeArgs fills each declared slot by priority: explicit named
// parameter, then the record's inline field, then the positional generic
// argument parsed from the marker type parameterization. Anything still
// unresolved is fatal; no defaults are guessed.
func (c *Converter) resolveTypeArgs(def *contracts.ActionDefinition, raw contracts.RawObservedAction,
	fields map[string]any) (map[contracts.TypeParamSlot]string, *contracts.ConversionError) {

	if len(def.TypeParams) == 0 {
		return nil, nil
	}
	generics := catalog.MarkerTypeArgs(raw.FullyQualifiedType)
	out := make(map[contracts.TypeParamSlot]string, len(def.TypeParams))
	for i, slot := range def.TypeParams {
		if v, ok := fields[slotParam[slot]].(string); ok && v != "" {
			out[slot] = v
			delete(fields, slotParam[slot])
			continue
		}
		if slot == contracts.SlotCoinType && raw.CoinType != "" {
			out[slot] = raw.CoinType
			continue
		}
		if i < len(generics) && generics[i] != "" {
			out[slot] = generics[i]
			continue
		}
		return nil, &contracts.ConversionError{
			Reason: contracts.MissingField,
			Kind:   def.ID,
			Index:  raw.Index,
			Field:  string(slot),
		}
	}
	return out, nil
}

// normalizeFields projects the canonical param map onto the definition's
// declared names, accepting the camelCase spellings older indexer versions
// emit. Record keys that are not declared parameters are kept only if they
// name a type-argument parameter.
func normalizeFields(def *contracts.ActionDefinition, params map[string]any) map[string]any {
	out := make(map[string]any, len(params))
	for _, spec := range def.Params {
		if v, ok := params[spec.Name]; ok {
			out[spec.Name] = v
			continue
		}
		if v, ok := params[snakeToCamel(spec.Name)]; ok {
			out[spec.Name] = v
		}
	}
	for _, name := range slotParam {
		if v, ok := params[name]; ok {
			out[name] = v
		} else if v, ok := params[snakeToCamel(name)]; ok {
			out[name] = v
		}
	}
	return out
}

func snakeToCamel(s string) string {
	parts := strings.Split(s, "_")
	if len(parts) == 1 {
		return s
	}
	var b strings.Builder
	b.WriteString(parts[0])
	for _, p := range parts[1:] {
		if p == "" {
			continue
		}
		b.WriteString(strings.ToUpper(p[:1]))
		b.WriteString(p[1:])
	}
	return b.String()
}
