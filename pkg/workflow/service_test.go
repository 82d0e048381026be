package workflow

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/praxis-labs/intentkit/pkg/catalog"
	"github.com/praxis-labs/intentkit/pkg/codec"
	"github.com/praxis-labs/intentkit/pkg/contracts"
	"github.com/praxis-labs/intentkit/pkg/execution"
	"github.com/praxis-labs/intentkit/pkg/ledger"
	"github.com/praxis-labs/intentkit/pkg/staging"
)

const testCoin = "0x2::sui::SUI"

// mockCaller records submitted transactions.
type mockCaller struct {
	txs []*ledger.Transaction
	err error
}

func (m *mockCaller) Submit(ctx context.Context, tx *ledger.Transaction) (*ledger.TxResult, error) {
	if m.err != nil {
		return nil, m.err
	}
	m.txs = append(m.txs, tx)
	return &ledger.TxResult{Digest: "0xdigest", Status: "success"}, nil
}

func (m *mockCaller) last(t *testing.T) *ledger.Transaction {
	t.Helper()
	require.NotEmpty(t, m.txs)
	return m.txs[len(m.txs)-1]
}

// mockSource serves canned observed actions.
type mockSource struct {
	actions []contracts.RawObservedAction
	err     error
}

func (m *mockSource) IntentActions(ctx context.Context, intentID string, outcome contracts.OutcomeKey) ([]contracts.RawObservedAction, error) {
	return m.actions, m.err
}

func newTestService(caller *mockCaller, opts ...Option) *Service {
	return New(catalog.Default(), catalog.DefaultAddresses(), caller, "0xsender", opts...)
}

func TestStageActions(t *testing.T) {
	caller := &mockCaller{}
	svc := newTestService(caller)

	ref, batch, err := svc.StageActions(context.Background(), BatchConfig{
		IntentID:  "raise-1",
		AccountID: "acct-1",
		Context:   contracts.ContextRaise,
		Outcome:   contracts.OutcomeSuccess,
		Configs: []staging.Config{
			staging.VaultSpend{CoinType: testCoin, VaultName: "treasury", Amount: 100},
			staging.TransferCoin{CoinType: testCoin, Recipient: "0xabc"},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, "raise-1", ref.IntentID)
	assert.Equal(t, 2, ref.Size)
	assert.Equal(t, "0xdigest", ref.TxDigest)
	require.Len(t, batch.Actions, 2)

	// One staging call per action plus the stage-intent call.
	tx := caller.last(t)
	calls := tx.Calls()
	require.Len(t, calls, 3)
	assert.Contains(t, calls[0].Target, "new_vault_spend")
	assert.Contains(t, calls[1].Target, "new_transfer_coin")
	assert.Contains(t, calls[2].Target, "raise_intents::stage_success_intent")
}

func TestStageTargetPerContextAndOutcome(t *testing.T) {
	caller := &mockCaller{}
	svc := newTestService(caller)

	_, _, err := svc.StageActions(context.Background(), BatchConfig{
		IntentID:  "raise-1",
		AccountID: "acct-1",
		Context:   contracts.ContextRaise,
		Outcome:   contracts.OutcomeFailure,
		Configs:   []staging.Config{staging.Memo{Message: "refund note"}},
	})
	require.NoError(t, err)
	calls := caller.last(t).Calls()
	assert.Contains(t, calls[len(calls)-1].Target, "stage_failure_intent")

	_, _, err = svc.StageActions(context.Background(), BatchConfig{
		IntentID:  "prop-1",
		AccountID: "acct-1",
		Context:   contracts.ContextProposal,
		Outcome:   ProposalOutcome(1),
		Configs:   []staging.Config{staging.Memo{Message: "x"}},
	})
	require.NoError(t, err)
	calls = caller.last(t).Calls()
	assert.Contains(t, calls[len(calls)-1].Target, "proposal_intents::stage_outcome_intent")
}

func TestStageActionsValidationAborts(t *testing.T) {
	caller := &mockCaller{}
	svc := newTestService(caller)

	_, _, err := svc.StageActions(context.Background(), BatchConfig{
		IntentID:  "raise-1",
		AccountID: "acct-1",
		Context:   contracts.ContextRaise,
		Outcome:   contracts.OutcomeSuccess,
		Configs: []staging.Config{
			staging.TransferCoin{CoinType: testCoin, Recipient: "0xabc"}, // no producer
		},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "action 0")
	// Nothing was submitted.
	assert.Empty(t, caller.txs)
}

func TestExecuteBatchComposesOneTransaction(t *testing.T) {
	caller := &mockCaller{}
	svc := newTestService(caller)

	configs := []staging.Config{
		staging.Mint{CoinType: testCoin, Amount: 50},
		staging.Burn{CoinType: testCoin, Amount: 50},
	}
	b := staging.NewBuilder(catalog.Default(), contracts.ContextRaise)
	for _, c := range configs {
		require.NoError(t, b.Add(c))
	}
	batch, err := b.Commit("raise-1", "acct-1", contracts.OutcomeSuccess)
	require.NoError(t, err)

	execConfigs := make([]contracts.ExecutionConfig, 0, len(configs))
	for _, c := range configs {
		execConfigs = append(execConfigs, staging.ExecutionConfigFor(c))
	}

	res, err := svc.ExecuteBatch(context.Background(), ExecuteRequest{
		IntentID:  "raise-1",
		AccountID: "acct-1",
		Context:   contracts.ContextRaise,
		Batch:     batch.Actions,
		Configs:   execConfigs,
		Status:    execution.IntentStatus{Resolved: true},
	})
	require.NoError(t, err)
	assert.Equal(t, "0xdigest", res.Digest)

	// begin, mint, burn, finalize — all in one atomic submission.
	calls := caller.last(t).Calls()
	require.Len(t, calls, 4)
	assert.Contains(t, calls[0].Target, "begin_execution")
	assert.Contains(t, calls[1].Target, "do_mint")
	assert.Contains(t, calls[2].Target, "do_burn")
	assert.Contains(t, calls[3].Target, "finalize_execution")
}

func TestExecuteBatchLengthMismatch(t *testing.T) {
	svc := newTestService(&mockCaller{})

	_, err := svc.ExecuteBatch(context.Background(), ExecuteRequest{
		IntentID: "raise-1",
		Batch:    []contracts.StagedAction{{Kind: catalog.KindMemo}},
		Configs:  nil,
		Status:   execution.IntentStatus{Resolved: true},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "1 staged actions but 0 configs")
}

func TestExecuteBatchRespectsTimeGate(t *testing.T) {
	frozen := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	svc := newTestService(&mockCaller{}, WithClock(func() time.Time { return frozen }))

	_, err := svc.ExecuteBatch(context.Background(), ExecuteRequest{
		IntentID:  "raise-1",
		AccountID: "acct-1",
		Context:   contracts.ContextRaise,
		Configs:   []contracts.ExecutionConfig{{Kind: catalog.KindMemo, Fields: map[string]any{"message": "x"}}},
		Status: execution.IntentStatus{
			Resolved:        true,
			ExecutableAfter: frozen.Add(time.Minute),
		},
	})
	assert.ErrorIs(t, err, execution.ErrTimeGate)
}

func TestExecuteObserved(t *testing.T) {
	marker := func(kind string) string {
		def, err := catalog.Default().LookupByID(kind)
		require.NoError(t, err)
		return def.MarkerType
	}
	caller := &mockCaller{}
	source := &mockSource{actions: []contracts.RawObservedAction{
		{
			Index:              0,
			FullyQualifiedType: marker(catalog.KindVaultSpend) + "<" + testCoin + ">",
			Params: contracts.RawParams{Keyed: map[string]any{
				"vault_name": "treasury", "amount": float64(100),
			}},
		},
		{
			Index:              1,
			FullyQualifiedType: marker(catalog.KindTransferCoin) + "<" + testCoin + ">",
			Params:             contracts.RawParams{Keyed: map[string]any{"recipient": "0xabc"}},
		},
	}}
	svc := newTestService(caller, WithActionSource(source))

	res, err := svc.ExecuteObserved(context.Background(), ExecuteRequest{
		IntentID:  "raise-1",
		AccountID: "acct-1",
		Context:   contracts.ContextRaise,
		Status:    execution.IntentStatus{Resolved: true},
	}, contracts.OutcomeSuccess)
	require.NoError(t, err)
	assert.Equal(t, "0xdigest", res.Digest)

	calls := caller.last(t).Calls()
	require.Len(t, calls, 4)
	assert.Contains(t, calls[1].Target, "do_vault_spend")
	assert.Contains(t, calls[2].Target, "do_transfer_coin")
}

func TestExecuteObservedReportsAllBadIndexes(t *testing.T) {
	source := &mockSource{actions: []contracts.RawObservedAction{
		{Index: 0, FullyQualifiedType: "0x1::nope::NopeAction"},
		{Index: 1, Unparsed: true},
	}}
	svc := newTestService(&mockCaller{}, WithActionSource(source))

	_, err := svc.ExecuteObserved(context.Background(), ExecuteRequest{
		IntentID: "raise-1",
		Status:   execution.IntentStatus{Resolved: true},
	}, contracts.OutcomeSuccess)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "2 observed actions failed conversion")
}

func TestExecuteObservedWithoutSource(t *testing.T) {
	svc := newTestService(&mockCaller{})
	_, err := svc.ExecuteObserved(context.Background(), ExecuteRequest{IntentID: "raise-1"},
		contracts.OutcomeSuccess)
	assert.ErrorContains(t, err, "no action source")
}

func TestRaiseLifecycle(t *testing.T) {
	caller := &mockCaller{}
	svc := newTestService(caller)
	raises := svc.Raises()
	ctx := context.Background()

	raiseID, err := raises.Create(ctx, CreateRaiseConfig{
		AccountID:  "acct-1",
		CoinType:   testCoin,
		StableType: "0x3::usdc::USDC",
		Goal:       1_000_000,
	})
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(raiseID, "raise-"))
	assert.Contains(t, caller.last(t).Calls()[0].Target, "create_raise")

	_, err = raises.StageSuccess(ctx, raiseID, "acct-1", []staging.Config{
		staging.Mint{CoinType: testCoin, Amount: 10},
	})
	require.NoError(t, err)

	require.NoError(t, raises.Lock(ctx, raiseID, "acct-1"))
	assert.Contains(t, caller.last(t).Calls()[0].Target, "lock_raise")

	require.NoError(t, raises.Settle(ctx, raiseID, "acct-1"))
	assert.Contains(t, caller.last(t).Calls()[0].Target, "settle_raise")

	require.NoError(t, raises.ClaimReward(ctx, raiseID))
	assert.Contains(t, caller.last(t).Calls()[0].Target, "claim_cranker_reward")
}

func TestCreateRaiseEncodesAllFields(t *testing.T) {
	caller := &mockCaller{}
	raises := newTestService(caller).Raises()

	_, err := raises.Create(context.Background(), CreateRaiseConfig{
		AccountID:    "acct-1",
		CoinType:     testCoin,
		StableType:   "0x3::usdc::USDC",
		Goal:         1_000_000,
		MinRaise:     250_000,
		DeadlineMS:   1_735_689_600_000,
		AllowExceeds: true,
	})
	require.NoError(t, err)

	call := caller.last(t).Calls()[0]
	assert.Contains(t, call.Target, "create_raise")
	assert.Equal(t, []string{testCoin, "0x3::usdc::USDC"}, call.TypeArgs)
	require.Len(t, call.Args, 6)

	goal, err := codec.DecodeU64(call.Args[2].Pure)
	require.NoError(t, err)
	assert.Equal(t, uint64(1_000_000), goal)
	minRaise, err := codec.DecodeU64(call.Args[3].Pure)
	require.NoError(t, err)
	assert.Equal(t, uint64(250_000), minRaise)
	deadline, err := codec.DecodeU64(call.Args[4].Pure)
	require.NoError(t, err)
	assert.Equal(t, uint64(1_735_689_600_000), deadline)
	allow, err := codec.DecodeBool(call.Args[5].Pure)
	require.NoError(t, err)
	assert.True(t, allow)
}

func TestCreateProposalEncodesAllFields(t *testing.T) {
	caller := &mockCaller{}
	props := newTestService(caller).Proposals()

	_, err := props.Create(context.Background(), CreateProposalConfig{
		AccountID:   "acct-1",
		Title:       "fund engineering",
		OutcomeMsgs: []string{"reject", "fund 100k", "fund 250k"},
	})
	require.NoError(t, err)

	call := caller.last(t).Calls()[0]
	assert.Contains(t, call.Target, "create_proposal")
	require.Len(t, call.Args, 4)

	title, err := codec.DecodeString(call.Args[2].Pure)
	require.NoError(t, err)
	assert.Equal(t, "fund engineering", title)
	msgs := codec.EncodeVecString([]string{"reject", "fund 100k", "fund 250k"})
	assert.Equal(t, msgs, call.Args[3].Pure)
}

func TestProposalOutcomeKeys(t *testing.T) {
	assert.Equal(t, contracts.OutcomeKey("outcome_0"), ProposalOutcome(0))
	assert.Equal(t, contracts.OutcomeKey("outcome_3"), ProposalOutcome(3))
}

func TestProposalCreateNeedsTwoOutcomes(t *testing.T) {
	svc := newTestService(&mockCaller{})
	_, err := svc.Proposals().Create(context.Background(), CreateProposalConfig{
		AccountID:   "acct-1",
		Title:       "t",
		OutcomeMsgs: []string{"reject"},
	})
	assert.ErrorContains(t, err, "at least two outcomes")
}

func TestCallerErrorPropagates(t *testing.T) {
	boom := errors.New("ledger down")
	svc := newTestService(&mockCaller{err: boom})

	_, _, err := svc.StageActions(context.Background(), BatchConfig{
		IntentID:  "raise-1",
		AccountID: "acct-1",
		Context:   contracts.ContextRaise,
		Outcome:   contracts.OutcomeSuccess,
		Configs:   []staging.Config{staging.Memo{Message: "x"}},
	})
	assert.ErrorIs(t, err, boom)
}
