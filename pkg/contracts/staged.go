package contracts

import "time"

// EncodedArg is one wire-encoded staged parameter, in call-argument order.
type EncodedArg struct {
	Name  string    `json:"name"`
	Type  ParamType `json:"type"`
	Bytes []byte    `json:"bytes"`
}

// StagedAction is one opaque entry of an intent batch: a kind id plus its
// serialized parameters and chosen type arguments. Never mutated after the
// builder appends it.
type StagedAction struct {
	Kind     string       `json:"kind"`
	Args     []EncodedArg `json:"args"`
	TypeArgs []string     `json:"type_args,omitempty"`

	// Produces / Consumes carry the caller-chosen resource-bag names for
	// actions whose definition declares a resource role.
	Produces string `json:"produces,omitempty"`
	Consumes string `json:"consumes,omitempty"`
}

// OutcomeKey identifies one outcome of one intent instance. Raises use
// OutcomeSuccess / OutcomeFailure; proposals use ProposalOutcome(i).
type OutcomeKey string

const (
	OutcomeSuccess OutcomeKey = "success"
	OutcomeFailure OutcomeKey = "failure"
)

// IntentBatch is the committed, ordered action list bound to one outcome of
// one intent instance. Once the builder is consumed the batch is immutable:
// no add, remove, or reorder.
type IntentBatch struct {
	IntentID  string         `json:"intent_id"`
	AccountID string         `json:"account_id"`
	Context   IntentContext  `json:"context"`
	Outcome   OutcomeKey     `json:"outcome"`
	Actions   []StagedAction `json:"actions"`
	StagedAt  time.Time      `json:"staged_at"`
}

// Len returns the number of staged actions.
func (b *IntentBatch) Len() int { return len(b.Actions) }
