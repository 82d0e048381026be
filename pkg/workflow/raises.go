package workflow

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/praxis-labs/intentkit/pkg/codec"
	"github.com/praxis-labs/intentkit/pkg/contracts"
	"github.com/praxis-labs/intentkit/pkg/execution"
	"github.com/praxis-labs/intentkit/pkg/ledger"
	"github.com/praxis-labs/intentkit/pkg/staging"
)

// Raises orchestrates the funding-campaign lifecycle: create, stage the
// success and failure batches, lock, settle, execute the resolved outcome,
// and claim the cranker reward.
type Raises struct {
	svc *Service
}

// Raises returns the raise orchestrator.
func (s *Service) Raises() *Raises { return &Raises{svc: s} }

// CreateRaiseConfig describes a new funding campaign.
type CreateRaiseConfig struct {
	AccountID    string
	CoinType     string
	StableType   string
	Goal         uint64
	MinRaise     uint64
	DeadlineMS   uint64
	AllowExceeds bool
}

// Create submits the raise-creation call and returns the client-assigned
// raise id the staging calls will bind to.
func (r *Raises) Create(ctx context.Context, cfg CreateRaiseConfig) (string, error) {
	raiseID := "raise-" + uuid.NewString()
	tx := ledger.NewTransaction(r.svc.Sender)
	tx.Append(ledger.Call{
		Target:   r.svc.addrs.Actions + "::launchpad::create_raise",
		TypeArgs: []string{cfg.CoinType, cfg.StableType},
		Args: []ledger.Arg{
			ledger.Object(cfg.AccountID),
			ledger.Pure(codec.EncodeString(raiseID)),
			ledger.Pure(codec.EncodeU64(cfg.Goal)),
			ledger.Pure(codec.EncodeU64(cfg.MinRaise)),
			ledger.Pure(codec.EncodeU64(cfg.DeadlineMS)),
			ledger.Pure(codec.EncodeBool(cfg.AllowExceeds)),
		},
	})
	res, err := r.svc.caller.Submit(ctx, tx)
	if err != nil {
		return "", fmt.Errorf("create raise: %w", err)
	}
	r.svc.log.Info("created raise", "raise_id", raiseID, "digest", res.Digest)
	return raiseID, nil
}

// StageSuccess stages the batch executed if the raise succeeds.
func (r *Raises) StageSuccess(ctx context.Context, raiseID, accountID string, configs []staging.Config) (*BatchRef, error) {
	ref, _, err := r.svc.StageActions(ctx, BatchConfig{
		IntentID:  raiseID,
		AccountID: accountID,
		Context:   contracts.ContextRaise,
		Outcome:   contracts.OutcomeSuccess,
		Configs:   configs,
	})
	return ref, err
}

// StageFailure stages the batch executed if the raise fails.
func (r *Raises) StageFailure(ctx context.Context, raiseID, accountID string, configs []staging.Config) (*BatchRef, error) {
	ref, _, err := r.svc.StageActions(ctx, BatchConfig{
		IntentID:  raiseID,
		AccountID: accountID,
		Context:   contracts.ContextRaise,
		Outcome:   contracts.OutcomeFailure,
		Configs:   configs,
	})
	return ref, err
}

// Lock closes the raise to further staging. After this the staged batches
// are immutable on-chain.
func (r *Raises) Lock(ctx context.Context, raiseID, accountID string) error {
	return r.simpleCall(ctx, "::launchpad::lock_raise", raiseID, accountID)
}

// Settle resolves the raise outcome once its deadline has passed.
func (r *Raises) Settle(ctx context.Context, raiseID, accountID string) error {
	return r.simpleCall(ctx, "::launchpad::settle_raise", raiseID, accountID)
}

// ExecuteOutcome replays the staged batch for the resolved outcome from the
// indexer's view of it. Any third party may call this.
func (r *Raises) ExecuteOutcome(ctx context.Context, raiseID, accountID string,
	outcome contracts.OutcomeKey, status execution.IntentStatus) (*ledger.TxResult, error) {
	return r.svc.ExecuteObserved(ctx, ExecuteRequest{
		IntentID:  raiseID,
		AccountID: accountID,
		Context:   contracts.ContextRaise,
		Status:    status,
	}, outcome)
}

// ClaimReward claims the cranker incentive after a successful execution.
func (r *Raises) ClaimReward(ctx context.Context, raiseID string) error {
	tx := ledger.NewTransaction(r.svc.Sender)
	tx.Append(ledger.Call{
		Target: r.svc.addrs.Actions + "::launchpad::claim_cranker_reward",
		Args:   []ledger.Arg{ledger.Object(raiseID)},
	})
	if _, err := r.svc.caller.Submit(ctx, tx); err != nil {
		return fmt.Errorf("claim reward: %w", err)
	}
	return nil
}

func (r *Raises) simpleCall(ctx context.Context, suffix, raiseID, accountID string) error {
	tx := ledger.NewTransaction(r.svc.Sender)
	tx.Append(ledger.Call{
		Target: r.svc.addrs.Actions + suffix,
		Args:   []ledger.Arg{ledger.Object(raiseID), ledger.Object(accountID)},
	})
	if _, err := r.svc.caller.Submit(ctx, tx); err != nil {
		return err
	}
	return nil
}
