package staging

import (
	"github.com/praxis-labs/intentkit/pkg/catalog"
	"github.com/praxis-labs/intentkit/pkg/contracts"
)

// VaultSpend stages a withdrawal from a named treasury vault. The withdrawn
// coin lands in the batch resource bag under Resource (default "coin") for a
// later action to consume.
type VaultSpend struct {
	CoinType  string
	VaultName string
	Amount    uint64
	Resource  string
}

func (VaultSpend) Kind() string { return catalog.KindVaultSpend }

func (c VaultSpend) Fields() map[string]any {
	return map[string]any{"vault_name": c.VaultName, "amount": c.Amount}
}

func (c VaultSpend) TypeArgs() map[contracts.TypeParamSlot]string { return coinArg(c.CoinType) }

func (c VaultSpend) ProducesName() string { return c.Resource }

// VaultDeposit stages a deposit into a named vault, consuming a coin an
// earlier action placed in the resource bag.
type VaultDeposit struct {
	CoinType  string
	VaultName string
	Amount    uint64
	Resource  string
}

func (VaultDeposit) Kind() string { return catalog.KindVaultDeposit }

func (c VaultDeposit) Fields() map[string]any {
	return map[string]any{"vault_name": c.VaultName, "amount": c.Amount}
}

func (c VaultDeposit) TypeArgs() map[contracts.TypeParamSlot]string { return coinArg(c.CoinType) }

func (c VaultDeposit) ConsumesName() string { return c.Resource }
