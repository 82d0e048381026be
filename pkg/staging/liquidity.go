package staging

import (
	"github.com/praxis-labs/intentkit/pkg/catalog"
	"github.com/praxis-labs/intentkit/pkg/contracts"
)

// CreatePool stages creation of an asset/stable liquidity pool seeded from
// the account treasury.
type CreatePool struct {
	AssetType    string
	StableType   string
	AssetAmount  uint64
	StableAmount uint64
	FeeBps       uint64
}

func (CreatePool) Kind() string { return catalog.KindCreatePool }

func (c CreatePool) Fields() map[string]any {
	return map[string]any{
		"asset_amount":  c.AssetAmount,
		"stable_amount": c.StableAmount,
		"fee_bps":       c.FeeBps,
	}
}

func (c CreatePool) TypeArgs() map[contracts.TypeParamSlot]string {
	return pairArg(c.AssetType, c.StableType)
}

// CreatePoolWithMint stages pool creation where the asset side is minted at
// execution time rather than withdrawn from the treasury. Only stageable
// under raise intents.
type CreatePoolWithMint struct {
	AssetType    string
	StableType   string
	AssetAmount  uint64
	StableAmount uint64
	FeeBps       uint64
}

func (CreatePoolWithMint) Kind() string { return catalog.KindCreatePoolWithMint }

func (c CreatePoolWithMint) Fields() map[string]any {
	return map[string]any{
		"asset_amount":  c.AssetAmount,
		"stable_amount": c.StableAmount,
		"fee_bps":       c.FeeBps,
	}
}

func (c CreatePoolWithMint) TypeArgs() map[contracts.TypeParamSlot]string {
	return pairArg(c.AssetType, c.StableType)
}

// UpdatePoolFee stages a fee change on an existing pool.
type UpdatePoolFee struct {
	AssetType  string
	StableType string
	PoolID     string
	FeeBps     uint64
}

func (UpdatePoolFee) Kind() string { return catalog.KindUpdatePoolFee }

func (c UpdatePoolFee) Fields() map[string]any {
	return map[string]any{"pool_id": c.PoolID, "fee_bps": c.FeeBps}
}

func (c UpdatePoolFee) TypeArgs() map[contracts.TypeParamSlot]string {
	return pairArg(c.AssetType, c.StableType)
}

// RemoveLiquidity stages an LP withdrawal back into the account treasury.
type RemoveLiquidity struct {
	AssetType    string
	StableType   string
	PoolID       string
	LPAmount     uint64
	MinAssetOut  uint64
	MinStableOut uint64
}

func (RemoveLiquidity) Kind() string { return catalog.KindRemoveLiquidity }

func (c RemoveLiquidity) Fields() map[string]any {
	return map[string]any{
		"pool_id":        c.PoolID,
		"lp_amount":      c.LPAmount,
		"min_asset_out":  c.MinAssetOut,
		"min_stable_out": c.MinStableOut,
	}
}

func (c RemoveLiquidity) TypeArgs() map[contracts.TypeParamSlot]string {
	return pairArg(c.AssetType, c.StableType)
}
