// Package execution replays a committed intent batch against the ledger:
// it opens a linear, single-use execution handle, dispatches one call per
// staged action in original order, and finalizes the handle.
//
// The ledger accepts the finalize call only if all and only the batch's
// actions were executed in staged order; this package's contribution to that
// guarantee is refusing, locally and early, any dispatch sequence that the
// ledger would abort anyway.
package execution

import (
	"errors"
	"fmt"
	"time"

	"github.com/praxis-labs/intentkit/pkg/catalog"
	"github.com/praxis-labs/intentkit/pkg/contracts"
	"github.com/praxis-labs/intentkit/pkg/ledger"
)

var (
	// ErrOutcomeUnresolved: the gating raise or proposal has not resolved.
	ErrOutcomeUnresolved = errors.New("intent outcome not resolved")
	// ErrAlreadyExecuted: the intent was executed before.
	ErrAlreadyExecuted = errors.New("intent already executed")
	// ErrTimeGate: the execution window has not opened yet.
	ErrTimeGate = errors.New("execution time gate not passed")
	// ErrHandleConsumed: the handle was used after Finalize.
	ErrHandleConsumed = errors.New("execution handle already finalized")
	// ErrIncompleteReplay: Finalize was called before every staged action
	// was dispatched.
	ErrIncompleteReplay = errors.New("not all staged actions executed")
	// ErrBatchExhausted: Dispatch was called more times than the batch has
	// actions.
	ErrBatchExhausted = errors.New("all staged actions already dispatched")
)

// OutOfOrderError reports a dispatch whose kind does not match the staged
// action at the current position.
type OutOfOrderError struct {
	Index  int
	Staged string
	Got    string
}

func (e *OutOfOrderError) Error() string {
	return fmt.Sprintf("dispatch out of order at index %d: staged %s, got %s", e.Index, e.Staged, e.Got)
}

// IntentStatus is the ledger-observed state of an intent, checked before a
// begin call is even composed.
type IntentStatus struct {
	Resolved        bool
	Executed        bool
	ExecutableAfter time.Time
}

// Targets are the intent-lifecycle call targets for one intent context.
type Targets struct {
	Begin    string
	Finalize string
	// Borrow / Return are the inline capability borrow targets used by the
	// borrow/use/return helper for privileged actions.
	Borrow string
	Return string
}

// LifecycleTargets derives the lifecycle targets for a context from the
// actions package address.
func LifecycleTargets(actionsPkg string, ctx contracts.IntentContext) Targets {
	module := "raise_intents"
	if ctx == contracts.ContextProposal {
		module = "proposal_intents"
	}
	return Targets{
		Begin:    actionsPkg + "::" + module + "::begin_execution",
		Finalize: actionsPkg + "::" + module + "::finalize_execution",
		Borrow:   actionsPkg + "::access_actions::borrow_cap_inline",
		Return:   actionsPkg + "::access_actions::return_cap_inline",
	}
}

type executableState int

const (
	stateOpen executableState = iota
	stateFinalized
)

// Executable is the single-use execution handle. It exists only between a
// successful Begin and the Finalize that consumes it; there is no default
// construction and no way to reopen a finalized handle.
type Executable struct {
	cat       *catalog.Catalog
	targets   Targets
	tx        *ledger.Transaction
	intentID  string
	accountID string

	expected []contracts.StagedAction
	cursor   int
	state    executableState

	beginCall int
	bag       map[string]ledger.Arg
}

// Begin opens the handle for one resolved intent outcome and appends the
// begin call to tx. It fails without touching tx when the outcome is
// unresolved, the intent was already executed, or the time gate has not
// passed.
func Begin(cat *catalog.Catalog, targets Targets, tx *ledger.Transaction,
	intentID, accountID string, batch []contracts.StagedAction,
	status IntentStatus, now time.Time) (*Executable, error) {

	if !status.Resolved {
		return nil, fmt.Errorf("begin %s: %w", intentID, ErrOutcomeUnresolved)
	}
	if status.Executed {
		return nil, fmt.Errorf("begin %s: %w", intentID, ErrAlreadyExecuted)
	}
	if now.Before(status.ExecutableAfter) {
		return nil, fmt.Errorf("begin %s: %w (opens %s)", intentID, ErrTimeGate,
			status.ExecutableAfter.UTC().Format(time.RFC3339))
	}

	beginIdx := tx.Append(ledger.Call{
		Target: targets.Begin,
		Args:   []ledger.Arg{ledger.Object(intentID), ledger.Object(accountID)},
	})
	return &Executable{
		cat:       cat,
		targets:   targets,
		tx:        tx,
		intentID:  intentID,
		accountID: accountID,
		expected:  batch,
		beginCall: beginIdx,
		bag:       make(map[string]ledger.Arg),
	}, nil
}

// Remaining returns the number of staged actions not yet dispatched.
func (e *Executable) Remaining() int { return len(e.expected) - e.cursor }

// handleArg references the execution handle returned by the begin call.
func (e *Executable) handleArg() ledger.Arg { return ledger.Result(e.beginCall, 0) }

// Dispatch issues the execution call for the next staged action. The config's
// kind and resolved type arguments must match the staged action at the
// current position; any deviation here would make the ledger abort the whole
// batch, so it is rejected before submission instead.
func (e *Executable) Dispatch(cfg contracts.ExecutionConfig) error {
	if e.state != stateOpen {
		return ErrHandleConsumed
	}
	if e.cursor >= len(e.expected) {
		return ErrBatchExhausted
	}
	staged := e.expected[e.cursor]
	if cfg.Kind != staged.Kind {
		return &OutOfOrderError{Index: e.cursor, Staged: staged.Kind, Got: cfg.Kind}
	}

	def, err := e.cat.LookupByID(cfg.Kind)
	if err != nil {
		return err
	}
	typeArgs, err := cfg.OrderedTypeArgs(def)
	if err != nil {
		return err
	}
	if len(staged.TypeArgs) > 0 {
		for i, want := range staged.TypeArgs {
			if typeArgs[i] != want {
				return fmt.Errorf("action %d (%s): staged type argument %d is %s, resolved %s",
					e.cursor, cfg.Kind, i, want, typeArgs[i])
			}
		}
	}

	if err := e.issue(def, staged, cfg, typeArgs); err != nil {
		return err
	}
	e.cursor++
	return nil
}

// Finalize consumes the handle, appending the finalize call. It fails if any
// staged action has not been dispatched; a partially replayed batch can never
// produce a submittable transaction.
func (e *Executable) Finalize(now time.Time) error {
	if e.state != stateOpen {
		return ErrHandleConsumed
	}
	if e.cursor != len(e.expected) {
		return fmt.Errorf("finalize %s: %w (%d of %d dispatched)",
			e.intentID, ErrIncompleteReplay, e.cursor, len(e.expected))
	}
	e.tx.Append(ledger.Call{
		Target: e.targets.Finalize,
		Args: []ledger.Arg{
			e.handleArg(),
			ledger.Object(e.accountID),
		},
	})
	e.state = stateFinalized
	return nil
}
