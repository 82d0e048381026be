package staging

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/praxis-labs/intentkit/pkg/catalog"
)

// Every catalog definition must have exactly one typed config. A kind added
// to the table without a config here is unusable by staging callers.
func TestEveryKindHasTypedConfig(t *testing.T) {
	configs := []Config{
		CreateStream{}, CancelStream{}, CreateVesting{}, CancelVesting{},
		VaultSpend{}, VaultDeposit{},
		Mint{}, Burn{}, UpdateCurrencyMetadata{}, DisableCurrencyAbilities{},
		WithdrawObject{}, TransferObject{}, TransferCoin{}, TransferToSender{},
		UpgradePackage{}, CommitUpgrade{}, RestrictUpgradePolicy{},
		BorrowCap{}, ReturnCap{}, ReturnTreasuryCap{}, ReturnMetadata{},
		UpdateDaoName{}, UpdateTradingParams{}, UpdateMetadataTable{},
		UpdateGovernanceParams{}, SetProposalsEnabled{}, UpdateTwapConfig{},
		CreatePool{}, CreatePoolWithMint{}, UpdatePoolFee{}, RemoveLiquidity{},
		SetFactoryPaused{}, UpdateProtocolFees{},
		GrantOracleRead{}, RevokeOracleRead{},
		Memo{},
	}

	covered := make(map[string]bool, len(configs))
	for _, c := range configs {
		assert.False(t, covered[c.Kind()], "duplicate config for %s", c.Kind())
		covered[c.Kind()] = true
	}

	cat := catalog.Default()
	require.Equal(t, cat.Len(), len(configs))
	for _, def := range cat.All() {
		assert.True(t, covered[def.ID], "no typed config for %s", def.ID)
	}
}
