// Package staging builds intent batches: an append-only, consume-once
// Builder plus one typed config per action kind. Every adapter derives its
// call shape from the action catalog; nothing here declares parameter or
// type-argument order on its own.
//
// All validation — required parameters, kind registration, type-argument
// cardinality, resource-bag ordering — happens before any external call,
// so a rejected config never costs a ledger round trip.
package staging

import (
	"errors"
	"fmt"
	"time"

	"github.com/praxis-labs/intentkit/pkg/catalog"
	"github.com/praxis-labs/intentkit/pkg/codec"
	"github.com/praxis-labs/intentkit/pkg/contracts"
	"github.com/praxis-labs/intentkit/pkg/ledger"
)

// ErrBuilderConsumed is returned when a builder is used after Commit.
var ErrBuilderConsumed = errors.New("builder already consumed")

// ErrEmptyBatch is returned when committing a builder with no actions.
var ErrEmptyBatch = errors.New("cannot commit empty batch")

// Config is one typed staging config. Each action kind has exactly one
// implementation; the builder resolves everything else (targets, parameter
// order, wire types) through the catalog.
type Config interface {
	// Kind returns the catalog action id.
	Kind() string
	// Fields returns canonical field values keyed by declared parameter
	// name. Absent optional parameters are simply omitted.
	Fields() map[string]any
	// TypeArgs returns the resolved on-chain type per declared generic slot.
	TypeArgs() map[contracts.TypeParamSlot]string
}

// Validator is implemented by configs with kind-specific checks beyond the
// catalog's declared shape.
type Validator interface {
	Validate() error
}

// resourceNamer customizes the resource-bag name an action produces or
// consumes. Without it, the definition's role name is used.
type producerNamer interface{ ProducesName() string }
type consumerNamer interface{ ConsumesName() string }

type bagEntry struct {
	role  contracts.ResourceRole
	index int
}

// Builder accumulates a typed, ordered action list for one outcome of one
// intent. Append order is execution order and cannot be changed later. The
// builder is consumed exactly once by Commit.
type Builder struct {
	cat      *catalog.Catalog
	ctx      contracts.IntentContext
	actions  []contracts.StagedAction
	bag      map[string]bagEntry
	consumed bool
}

// NewBuilder creates a builder for intents staged under ctx.
func NewBuilder(cat *catalog.Catalog, ctx contracts.IntentContext) *Builder {
	return &Builder{cat: cat, ctx: ctx, bag: make(map[string]bagEntry)}
}

// Len returns the number of staged actions.
func (b *Builder) Len() int { return len(b.actions) }

// Add validates cfg and appends one staged action. The failure modes —
// unregistered kind, unsupported context, missing required parameter, wrong
// type-argument cardinality, or a consumer without an earlier matching
// producer — are all caught here, before anything reaches the ledger.
func (b *Builder) Add(cfg Config) error {
	if b.consumed {
		return ErrBuilderConsumed
	}

	def, err := b.cat.LookupByID(cfg.Kind())
	if err != nil {
		return err
	}
	if !def.SupportsContext(b.ctx) {
		return &contracts.ValidationError{
			Kind:   def.ID,
			Reason: fmt.Sprintf("not stageable under %s intents", b.ctx),
		}
	}
	if v, ok := cfg.(Validator); ok {
		if err := v.Validate(); err != nil {
			return err
		}
	}

	typeArgs, err := orderedTypeArgs(def, cfg.TypeArgs())
	if err != nil {
		return err
	}
	args, err := codec.EncodeParams(def, cfg.Fields())
	if err != nil {
		return err
	}

	staged := contracts.StagedAction{
		Kind:     def.ID,
		Args:     args,
		TypeArgs: typeArgs,
	}

	if def.Produces != "" {
		staged.Produces = string(def.Produces)
		if n, ok := cfg.(producerNamer); ok && n.ProducesName() != "" {
			staged.Produces = n.ProducesName()
		}
	}
	if def.Consumes != "" {
		staged.Consumes = string(def.Consumes)
		if n, ok := cfg.(consumerNamer); ok && n.ConsumesName() != "" {
			staged.Consumes = n.ConsumesName()
		}
		entry, ok := b.bag[staged.Consumes]
		if !ok {
			return &contracts.ValidationError{
				Kind:   def.ID,
				Field:  staged.Consumes,
				Reason: "consumes a resource no earlier action produces",
			}
		}
		if entry.role != def.Consumes {
			return &contracts.ValidationError{
				Kind:  def.ID,
				Field: staged.Consumes,
				Reason: fmt.Sprintf("resource produced at index %d is a %s, not a %s",
					entry.index, entry.role, def.Consumes),
			}
		}
	}
	if staged.Produces != "" {
		b.bag[staged.Produces] = bagEntry{role: def.Produces, index: len(b.actions)}
	}

	b.actions = append(b.actions, staged)
	return nil
}

// Commit consumes the builder and returns the immutable batch bound to one
// outcome of one intent instance. Any later Add or Commit fails with
// ErrBuilderConsumed.
func (b *Builder) Commit(intentID, accountID string, outcome contracts.OutcomeKey) (*contracts.IntentBatch, error) {
	if b.consumed {
		return nil, ErrBuilderConsumed
	}
	if len(b.actions) == 0 {
		return nil, ErrEmptyBatch
	}
	b.consumed = true
	return &contracts.IntentBatch{
		IntentID:  intentID,
		AccountID: accountID,
		Context:   b.ctx,
		Outcome:   outcome,
		Actions:   b.actions,
		StagedAt:  time.Now().UTC(),
	}, nil
}

func orderedTypeArgs(def *contracts.ActionDefinition, slots map[contracts.TypeParamSlot]string) ([]string, error) {
	if len(slots) != len(def.TypeParams) {
		return nil, &contracts.ValidationError{
			Kind: def.ID,
			Reason: fmt.Sprintf("type-argument cardinality mismatch: declared %d, got %d",
				len(def.TypeParams), len(slots)),
		}
	}
	if len(def.TypeParams) == 0 {
		return nil, nil
	}
	out := make([]string, 0, len(def.TypeParams))
	for _, slot := range def.TypeParams {
		arg, ok := slots[slot]
		if !ok || arg == "" {
			return nil, &contracts.ValidationError{
				Kind:   def.ID,
				Field:  string(slot),
				Reason: "missing type argument",
			}
		}
		out = append(out, arg)
	}
	return out, nil
}

// BuildStagingCalls projects a committed batch into ledger calls: one call
// per staged action through its definition's staging target, in staged
// order. The surrounding workflow appends the stage-intent call that binds
// the batch to its raise or proposal outcome.
func BuildStagingCalls(cat *catalog.Catalog, batch *contracts.IntentBatch) ([]ledger.Call, error) {
	calls := make([]ledger.Call, 0, len(batch.Actions))
	for i, a := range batch.Actions {
		def, err := cat.LookupByID(a.Kind)
		if err != nil {
			return nil, fmt.Errorf("staged action %d: %w", i, err)
		}
		args := make([]ledger.Arg, 0, len(a.Args))
		for _, e := range a.Args {
			args = append(args, ledger.Pure(e.Bytes))
		}
		calls = append(calls, ledger.Call{
			Target:   def.StagingTarget,
			TypeArgs: a.TypeArgs,
			Args:     args,
		})
	}
	return calls, nil
}

// ExecutionConfigFor projects a typed staging config into the execution
// shape, for callers that execute with the original in-memory config rather
// than re-deriving it from the indexer.
func ExecutionConfigFor(cfg Config) contracts.ExecutionConfig {
	out := contracts.ExecutionConfig{
		Kind:     cfg.Kind(),
		Fields:   cfg.Fields(),
		TypeArgs: cfg.TypeArgs(),
	}
	if n, ok := cfg.(producerNamer); ok {
		out.Produces = n.ProducesName()
	}
	if n, ok := cfg.(consumerNamer); ok {
		out.Consumes = n.ConsumesName()
	}
	return out
}
