package staging

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/praxis-labs/intentkit/pkg/catalog"
	"github.com/praxis-labs/intentkit/pkg/codec"
	"github.com/praxis-labs/intentkit/pkg/contracts"
)

const testCoin = "0x2::sui::SUI"

func TestBuilderSpendAndTransfer(t *testing.T) {
	b := NewBuilder(catalog.Default(), contracts.ContextRaise)

	require.NoError(t, b.Add(VaultSpend{
		CoinType:  testCoin,
		VaultName: "treasury",
		Amount:    1_000_000,
	}))
	require.NoError(t, b.Add(TransferCoin{
		CoinType:  testCoin,
		Recipient: "0xabc",
	}))
	require.Equal(t, 2, b.Len())

	batch, err := b.Commit("raise-1", "acct-1", contracts.OutcomeSuccess)
	require.NoError(t, err)

	assert.Equal(t, "raise-1", batch.IntentID)
	assert.Equal(t, contracts.ContextRaise, batch.Context)
	assert.Equal(t, contracts.OutcomeSuccess, batch.Outcome)
	require.Len(t, batch.Actions, 2)

	spend := batch.Actions[0]
	assert.Equal(t, catalog.KindVaultSpend, spend.Kind)
	assert.Equal(t, []string{testCoin}, spend.TypeArgs)
	// Named resources default to the definition's role name.
	assert.Equal(t, "coin", spend.Produces)
	assert.Equal(t, "coin", batch.Actions[1].Consumes)

	// Args follow the declared parameter order with wire encoding.
	require.Len(t, spend.Args, 2)
	assert.Equal(t, codec.EncodeString("treasury"), spend.Args[0].Bytes)
	assert.Equal(t, codec.EncodeU64(1_000_000), spend.Args[1].Bytes)
}

func TestBuilderNamedResources(t *testing.T) {
	b := NewBuilder(catalog.Default(), contracts.ContextRaise)

	require.NoError(t, b.Add(Mint{CoinType: testCoin, Amount: 10, Resource: "minted"}))
	require.NoError(t, b.Add(VaultSpend{CoinType: testCoin, VaultName: "v", Amount: 5, Resource: "spent"}))
	require.NoError(t, b.Add(Burn{CoinType: testCoin, Amount: 10, Resource: "minted"}))
	require.NoError(t, b.Add(TransferCoin{CoinType: testCoin, Recipient: "0x1", Resource: "spent"}))
}

func TestBuilderRejectsConsumerWithoutProducer(t *testing.T) {
	b := NewBuilder(catalog.Default(), contracts.ContextRaise)

	err := b.Add(TransferCoin{CoinType: testCoin, Recipient: "0x1"})
	var verr *contracts.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, catalog.KindTransferCoin, verr.Kind)
	assert.Equal(t, 0, b.Len())
}

func TestBuilderRejectsRoleMismatch(t *testing.T) {
	b := NewBuilder(catalog.Default(), contracts.ContextRaise)

	require.NoError(t, b.Add(VaultSpend{
		CoinType: testCoin, VaultName: "v", Amount: 1, Resource: "thing",
	}))
	// "thing" holds a coin; transferring it as an object must fail.
	err := b.Add(TransferObject{
		ObjectType: "0x1::obj::Widget", Recipient: "0x1", Resource: "thing",
	})
	var verr *contracts.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Reason, "is a coin")
}

func TestBuilderRejectsWrongContext(t *testing.T) {
	b := NewBuilder(catalog.Default(), contracts.ContextRaise)

	err := b.Add(SetFactoryPaused{Paused: true})
	var verr *contracts.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Reason, "not stageable")
}

func TestBuilderRejectsUnknownKind(t *testing.T) {
	b := NewBuilder(catalog.Default(), contracts.ContextRaise)

	err := b.Add(rawConfig{kind: "no_such_kind"})
	assert.ErrorIs(t, err, contracts.ErrActionNotFound)
}

func TestBuilderRejectsMissingTypeArg(t *testing.T) {
	b := NewBuilder(catalog.Default(), contracts.ContextRaise)

	err := b.Add(Mint{Amount: 10}) // no CoinType
	var verr *contracts.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, string(contracts.SlotCoinType), verr.Field)
}

func TestBuilderRunsConfigValidators(t *testing.T) {
	b := NewBuilder(catalog.Default(), contracts.ContextProposal)

	err := b.Add(UpgradePackage{
		PackageName: "core",
		Version:     "not-semver",
		Digest:      []byte{1, 2, 3},
	})
	var verr *contracts.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "version", verr.Field)

	err = b.Add(UpdateCurrencyMetadata{CoinType: testCoin})
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Reason, "at least one")
}

func TestBuilderConsumeOnce(t *testing.T) {
	b := NewBuilder(catalog.Default(), contracts.ContextProposal)
	require.NoError(t, b.Add(Memo{Message: "hello"}))

	_, err := b.Commit("prop-1", "acct-1", "outcome_1")
	require.NoError(t, err)

	assert.ErrorIs(t, b.Add(Memo{Message: "again"}), ErrBuilderConsumed)
	_, err = b.Commit("prop-1", "acct-1", "outcome_1")
	assert.ErrorIs(t, err, ErrBuilderConsumed)
}

func TestCommitEmptyBatch(t *testing.T) {
	b := NewBuilder(catalog.Default(), contracts.ContextRaise)
	_, err := b.Commit("raise-1", "acct-1", contracts.OutcomeSuccess)
	assert.ErrorIs(t, err, ErrEmptyBatch)
}

func TestBuildStagingCalls(t *testing.T) {
	cat := catalog.Default()
	b := NewBuilder(cat, contracts.ContextRaise)
	require.NoError(t, b.Add(Mint{CoinType: testCoin, Amount: 42}))
	require.NoError(t, b.Add(Memo{Message: "mint note"}))

	batch, err := b.Commit("raise-1", "acct-1", contracts.OutcomeSuccess)
	require.NoError(t, err)

	calls, err := BuildStagingCalls(cat, batch)
	require.NoError(t, err)
	require.Len(t, calls, 2)

	mintDef, err := cat.LookupByID(catalog.KindMint)
	require.NoError(t, err)
	assert.Equal(t, mintDef.StagingTarget, calls[0].Target)
	assert.Equal(t, []string{testCoin}, calls[0].TypeArgs)
	require.Len(t, calls[0].Args, 1)
}

func TestExecutionConfigFor(t *testing.T) {
	cfg := ExecutionConfigFor(VaultSpend{
		CoinType: testCoin, VaultName: "v", Amount: 7, Resource: "payout",
	})
	assert.Equal(t, catalog.KindVaultSpend, cfg.Kind)
	assert.Equal(t, "payout", cfg.Produces)
	assert.Equal(t, testCoin, cfg.TypeArgs[contracts.SlotCoinType])
}

// rawConfig is a minimal config for negative cases.
type rawConfig struct {
	kind   string
	fields map[string]any
}

func (c rawConfig) Kind() string                                 { return c.kind }
func (c rawConfig) Fields() map[string]any                       { return c.fields }
func (c rawConfig) TypeArgs() map[contracts.TypeParamSlot]string { return nil }
