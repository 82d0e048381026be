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

// Proposals orchestrates the governance-proposal lifecycle: create, stage
// one batch per outcome, and execute the winning outcome after resolution.
type Proposals struct {
	svc *Service
}

// Proposals returns the proposal orchestrator.
func (s *Service) Proposals() *Proposals { return &Proposals{svc: s} }

// ProposalOutcome keys the batch for outcome index i. Outcome 0 is
// conventionally the reject outcome and stages no actions.
func ProposalOutcome(i uint64) contracts.OutcomeKey {
	return contracts.OutcomeKey(fmt.Sprintf("outcome_%d", i))
}

// CreateProposalConfig describes a new proposal.
type CreateProposalConfig struct {
	AccountID   string
	Title       string
	OutcomeMsgs []string
}

// Create submits the proposal-creation call and returns the client-assigned
// proposal id.
func (p *Proposals) Create(ctx context.Context, cfg CreateProposalConfig) (string, error) {
	if len(cfg.OutcomeMsgs) < 2 {
		return "", fmt.Errorf("create proposal: need at least two outcomes")
	}
	proposalID := "prop-" + uuid.NewString()
	tx := ledger.NewTransaction(p.svc.Sender)
	tx.Append(ledger.Call{
		Target: p.svc.addrs.Actions + "::governance::create_proposal",
		Args: []ledger.Arg{
			ledger.Object(cfg.AccountID),
			ledger.Pure(codec.EncodeString(proposalID)),
			ledger.Pure(codec.EncodeString(cfg.Title)),
			ledger.Pure(codec.EncodeVecString(cfg.OutcomeMsgs)),
		},
	})
	if _, err := p.svc.caller.Submit(ctx, tx); err != nil {
		return "", fmt.Errorf("create proposal: %w", err)
	}
	p.svc.log.Info("created proposal", "proposal_id", proposalID, "outcomes", len(cfg.OutcomeMsgs))
	return proposalID, nil
}

// StageOutcome stages the batch executed if outcome index wins.
func (p *Proposals) StageOutcome(ctx context.Context, proposalID, accountID string,
	outcome uint64, configs []staging.Config) (*BatchRef, error) {
	ref, _, err := p.svc.StageActions(ctx, BatchConfig{
		IntentID:  proposalID,
		AccountID: accountID,
		Context:   contracts.ContextProposal,
		Outcome:   ProposalOutcome(outcome),
		Configs:   configs,
	})
	return ref, err
}

// ExecuteWinning replays the staged batch for the winning outcome.
func (p *Proposals) ExecuteWinning(ctx context.Context, proposalID, accountID string,
	winning uint64, status execution.IntentStatus) (*ledger.TxResult, error) {
	return p.svc.ExecuteObserved(ctx, ExecuteRequest{
		IntentID:  proposalID,
		AccountID: accountID,
		Context:   contracts.ContextProposal,
		Status:    status,
	}, ProposalOutcome(winning))
}
