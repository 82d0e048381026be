// Package workflow composes the staging, execution, and conversion layers
// into full intent lifecycles: create, stage per outcome, lock, settle,
// execute, claim. Orchestrators own retry and abort policy; the layers below
// only construct plans and calls.
package workflow

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/praxis-labs/intentkit/pkg/catalog"
	"github.com/praxis-labs/intentkit/pkg/contracts"
	"github.com/praxis-labs/intentkit/pkg/convert"
	"github.com/praxis-labs/intentkit/pkg/execution"
	"github.com/praxis-labs/intentkit/pkg/ledger"
	"github.com/praxis-labs/intentkit/pkg/staging"
)

// ActionSource supplies observed actions for intents the executor never
// staged itself. Satisfied by indexer.Client.
type ActionSource interface {
	IntentActions(ctx context.Context, intentID string, outcome contracts.OutcomeKey) ([]contracts.RawObservedAction, error)
}

// Service wires a catalog, a ledger caller, and an optional action source
// into the orchestrator-facing surface.
type Service struct {
	cat    *catalog.Catalog
	addrs  catalog.Addresses
	caller ledger.Caller
	source ActionSource
	conv   *convert.Converter
	log    *slog.Logger
	clock  func() time.Time

	// Sender is the address submitting transactions.
	Sender string
}

// Option configures a Service.
type Option func(*Service)

// WithActionSource attaches an indexer-backed action source for cranker
// flows.
func WithActionSource(src ActionSource) Option {
	return func(s *Service) { s.source = src }
}

// WithLogger overrides the default logger.
func WithLogger(log *slog.Logger) Option {
	return func(s *Service) { s.log = log }
}

// WithClock overrides the clock for testing.
func WithClock(clock func() time.Time) Option {
	return func(s *Service) { s.clock = clock }
}

// New creates a workflow service.
func New(cat *catalog.Catalog, addrs catalog.Addresses, caller ledger.Caller, sender string, opts ...Option) *Service {
	s := &Service{
		cat:    cat,
		addrs:  addrs,
		caller: caller,
		conv:   convert.New(cat),
		log:    slog.Default(),
		clock:  time.Now,
		Sender: sender,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// BatchConfig describes one outcome batch to stage.
type BatchConfig struct {
	// IntentID of the raise or proposal the batch binds to.
	IntentID  string
	AccountID string
	Context   contracts.IntentContext
	Outcome   contracts.OutcomeKey
	Configs   []staging.Config
}

// BatchRef identifies a committed batch.
type BatchRef struct {
	IntentID string
	Outcome  contracts.OutcomeKey
	TxDigest string
	Size     int
}

// StageActions validates and stages a whole batch in one transaction: one
// staging call per action in append order, then the stage-intent call that
// binds the batch to its outcome and locks it. Any validation error aborts
// before submission.
func (s *Service) StageActions(ctx context.Context, cfg BatchConfig) (*BatchRef, *contracts.IntentBatch, error) {
	if cfg.IntentID == "" {
		return nil, nil, fmt.Errorf("stage actions: missing intent id")
	}

	b := staging.NewBuilder(s.cat, cfg.Context)
	for i, ac := range cfg.Configs {
		if err := b.Add(ac); err != nil {
			return nil, nil, fmt.Errorf("action %d: %w", i, err)
		}
	}
	batch, err := b.Commit(cfg.IntentID, cfg.AccountID, cfg.Outcome)
	if err != nil {
		return nil, nil, err
	}

	calls, err := staging.BuildStagingCalls(s.cat, batch)
	if err != nil {
		return nil, nil, err
	}
	tx := ledger.NewTransaction(s.Sender)
	for _, c := range calls {
		tx.Append(c)
	}
	tx.Append(ledger.Call{
		Target: s.stageTarget(cfg.Context, cfg.Outcome),
		Args: []ledger.Arg{
			ledger.Object(cfg.IntentID),
			ledger.Object(cfg.AccountID),
		},
	})

	res, err := s.caller.Submit(ctx, tx)
	if err != nil {
		return nil, nil, err
	}
	s.log.Info("staged intent batch",
		"intent_id", cfg.IntentID,
		"outcome", cfg.Outcome,
		"actions", batch.Len(),
		"digest", res.Digest)
	return &BatchRef{
		IntentID: cfg.IntentID,
		Outcome:  cfg.Outcome,
		TxDigest: res.Digest,
		Size:     batch.Len(),
	}, batch, nil
}

// ExecuteRequest describes one resolved intent outcome to replay.
type ExecuteRequest struct {
	IntentID  string
	AccountID string
	Context   contracts.IntentContext
	// Batch is the staged action list; a cranker that only has converted
	// configs may leave it nil and the expectation is synthesized from them.
	Batch   []contracts.StagedAction
	Configs []contracts.ExecutionConfig
	Status  execution.IntentStatus
}

// ExecuteBatch wraps begin, ordered dispatch, and finalize into one atomic
// transaction and submits it. There is no partial execution: a dispatch or
// finalize failure aborts before submission, and a ledger-side failure
// aborts the whole transaction.
func (s *Service) ExecuteBatch(ctx context.Context, req ExecuteRequest) (*ledger.TxResult, error) {
	expected := req.Batch
	if expected == nil {
		expected = synthesizeBatch(s.cat, req.Configs)
	}
	if len(expected) != len(req.Configs) {
		return nil, fmt.Errorf("execute %s: %d staged actions but %d configs",
			req.IntentID, len(expected), len(req.Configs))
	}

	tx := ledger.NewTransaction(s.Sender)
	targets := execution.LifecycleTargets(s.addrs.Actions, req.Context)
	exec, err := execution.Begin(s.cat, targets, tx, req.IntentID, req.AccountID,
		expected, req.Status, s.clock())
	if err != nil {
		return nil, err
	}
	for i, cfg := range req.Configs {
		if err := exec.Dispatch(cfg); err != nil {
			return nil, fmt.Errorf("dispatch action %d: %w", i, err)
		}
	}
	if err := exec.Finalize(s.clock()); err != nil {
		return nil, err
	}

	res, err := s.caller.Submit(ctx, tx)
	if err != nil {
		return nil, err
	}
	s.log.Info("executed intent batch",
		"intent_id", req.IntentID,
		"actions", len(req.Configs),
		"digest", res.Digest)
	return res, nil
}

// ExecuteObserved is the cranker path: fetch the observed actions for a
// resolved outcome, convert them, and replay. Conversion uses collect-all
// mode so a broken batch reports every bad index at once.
func (s *Service) ExecuteObserved(ctx context.Context, intent ExecuteRequest, outcome contracts.OutcomeKey) (*ledger.TxResult, error) {
	if s.source == nil {
		return nil, fmt.Errorf("execute observed: no action source configured")
	}
	raws, err := s.source.IntentActions(ctx, intent.IntentID, outcome)
	if err != nil {
		return nil, err
	}
	res := s.conv.ValidateAndConvert(raws)
	if !res.Success {
		for _, e := range res.Errors {
			s.log.Error("unconvertible observed action",
				"intent_id", intent.IntentID, "index", e.Index, "reason", string(e.Reason))
		}
		return nil, fmt.Errorf("intent %s: %d observed actions failed conversion",
			intent.IntentID, len(res.Errors))
	}
	intent.Configs = res.Configs
	return s.ExecuteBatch(ctx, intent)
}

// Convert exposes single-record conversion on the service surface.
func (s *Service) Convert(raw contracts.RawObservedAction) (contracts.ExecutionConfig, error) {
	return s.conv.Convert(raw)
}

func (s *Service) stageTarget(ctx contracts.IntentContext, outcome contracts.OutcomeKey) string {
	if ctx == contracts.ContextProposal {
		return s.addrs.Actions + "::proposal_intents::stage_outcome_intent"
	}
	if outcome == contracts.OutcomeFailure {
		return s.addrs.Actions + "::raise_intents::stage_failure_intent"
	}
	return s.addrs.Actions + "::raise_intents::stage_success_intent"
}

// synthesizeBatch builds the dispatch expectation from converted configs,
// for executors that never held the staged byte form.
func synthesizeBatch(cat *catalog.Catalog, configs []contracts.ExecutionConfig) []contracts.StagedAction {
	out := make([]contracts.StagedAction, 0, len(configs))
	for _, cfg := range configs {
		staged := contracts.StagedAction{
			Kind:     cfg.Kind,
			Produces: cfg.Produces,
			Consumes: cfg.Consumes,
		}
		if def, err := cat.LookupByID(cfg.Kind); err == nil {
			if ta, err := cfg.OrderedTypeArgs(def); err == nil {
				staged.TypeArgs = ta
			}
		}
		out = append(out, staged)
	}
	return out
}
