package staging

import (
	"github.com/praxis-labs/intentkit/pkg/catalog"
	"github.com/praxis-labs/intentkit/pkg/contracts"
)

// Mint stages minting of the account-governed currency. The minted coin
// lands in the resource bag under Resource (default "coin").
type Mint struct {
	CoinType string
	Amount   uint64
	Resource string
}

func (Mint) Kind() string { return catalog.KindMint }

func (c Mint) Fields() map[string]any { return map[string]any{"amount": c.Amount} }

func (c Mint) TypeArgs() map[contracts.TypeParamSlot]string { return coinArg(c.CoinType) }

func (c Mint) ProducesName() string { return c.Resource }

// Burn stages burning of a coin an earlier action placed in the bag.
type Burn struct {
	CoinType string
	Amount   uint64
	Resource string
}

func (Burn) Kind() string { return catalog.KindBurn }

func (c Burn) Fields() map[string]any { return map[string]any{"amount": c.Amount} }

func (c Burn) TypeArgs() map[contracts.TypeParamSlot]string { return coinArg(c.CoinType) }

func (c Burn) ConsumesName() string { return c.Resource }

// UpdateCurrencyMetadata stages a partial coin-metadata update; every field
// is optional and absent fields are left untouched on-chain.
type UpdateCurrencyMetadata struct {
	CoinType    string
	Name        *string
	Symbol      *string
	Description *string
	IconURL     *string
}

func (UpdateCurrencyMetadata) Kind() string { return catalog.KindUpdateCurrencyMetadata }

func (c UpdateCurrencyMetadata) Fields() map[string]any {
	f := map[string]any{}
	if c.Name != nil {
		f["name"] = *c.Name
	}
	if c.Symbol != nil {
		f["symbol"] = *c.Symbol
	}
	if c.Description != nil {
		f["description"] = *c.Description
	}
	if c.IconURL != nil {
		f["icon_url"] = *c.IconURL
	}
	return f
}

func (c UpdateCurrencyMetadata) TypeArgs() map[contracts.TypeParamSlot]string {
	return coinArg(c.CoinType)
}

// Validate rejects an update that touches nothing.
func (c UpdateCurrencyMetadata) Validate() error {
	if c.Name == nil && c.Symbol == nil && c.Description == nil && c.IconURL == nil {
		return &contracts.ValidationError{
			Kind:   catalog.KindUpdateCurrencyMetadata,
			Reason: "at least one metadata field must be set",
		}
	}
	return nil
}

// DisableCurrencyAbilities stages an irreversible removal of currency
// abilities.
type DisableCurrencyAbilities struct {
	CoinType              string
	DisableMint           bool
	DisableBurn           bool
	DisableUpdateMetadata bool
}

func (DisableCurrencyAbilities) Kind() string { return catalog.KindDisableCurrencyAbilities }

func (c DisableCurrencyAbilities) Fields() map[string]any {
	return map[string]any{
		"disable_mint":            c.DisableMint,
		"disable_burn":            c.DisableBurn,
		"disable_update_metadata": c.DisableUpdateMetadata,
	}
}

func (c DisableCurrencyAbilities) TypeArgs() map[contracts.TypeParamSlot]string {
	return coinArg(c.CoinType)
}
