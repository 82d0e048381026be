package workflow

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/praxis-labs/intentkit/pkg/contracts"
	"github.com/praxis-labs/intentkit/pkg/staging"
)

// BatchSpec is a declarative action batch, the form operators stage from
// files. All validation is deferred to the staging builder, which resolves
// every entry through the catalog.
type BatchSpec struct {
	Context contracts.IntentContext `yaml:"context"`
	Outcome contracts.OutcomeKey    `yaml:"outcome"`
	Actions []ActionSpec            `yaml:"actions"`
}

// ActionSpec is one declared action.
type ActionSpec struct {
	Kind     string            `yaml:"kind"`
	TypeArgs map[string]string `yaml:"type_args,omitempty"`
	Fields   map[string]any    `yaml:"fields,omitempty"`
	Produces string            `yaml:"produces,omitempty"`
	Consumes string            `yaml:"consumes,omitempty"`
}

// LoadBatchSpec decodes a YAML batch spec.
func LoadBatchSpec(r io.Reader) (*BatchSpec, error) {
	var spec BatchSpec
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&spec); err != nil {
		return nil, fmt.Errorf("decode batch spec: %w", err)
	}
	if len(spec.Actions) == 0 {
		return nil, fmt.Errorf("batch spec: no actions")
	}
	return &spec, nil
}

// Configs projects the spec into staging configs.
func (s *BatchSpec) Configs() []staging.Config {
	out := make([]staging.Config, 0, len(s.Actions))
	for _, a := range s.Actions {
		out = append(out, specConfig{spec: a})
	}
	return out
}

// specConfig adapts one declared action to the staging surface.
type specConfig struct {
	spec ActionSpec
}

func (c specConfig) Kind() string { return c.spec.Kind }

func (c specConfig) Fields() map[string]any { return c.spec.Fields }

func (c specConfig) TypeArgs() map[contracts.TypeParamSlot]string {
	if len(c.spec.TypeArgs) == 0 {
		return nil
	}
	out := make(map[contracts.TypeParamSlot]string, len(c.spec.TypeArgs))
	for k, v := range c.spec.TypeArgs {
		out[contracts.TypeParamSlot(k)] = v
	}
	return out
}

func (c specConfig) ProducesName() string { return c.spec.Produces }

func (c specConfig) ConsumesName() string { return c.spec.Consumes }
