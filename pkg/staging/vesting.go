package staging

import (
	"github.com/praxis-labs/intentkit/pkg/catalog"
	"github.com/praxis-labs/intentkit/pkg/contracts"
)

func coinArg(t string) map[contracts.TypeParamSlot]string {
	return map[contracts.TypeParamSlot]string{contracts.SlotCoinType: t}
}

func objectArg(t string) map[contracts.TypeParamSlot]string {
	return map[contracts.TypeParamSlot]string{contracts.SlotObjectType: t}
}

func capArg(t string) map[contracts.TypeParamSlot]string {
	return map[contracts.TypeParamSlot]string{contracts.SlotCapType: t}
}

func pairArg(asset, stable string) map[contracts.TypeParamSlot]string {
	return map[contracts.TypeParamSlot]string{
		contracts.SlotAssetType:  asset,
		contracts.SlotStableType: stable,
	}
}

// CreateStream stages a recurring payment stream funded from the account.
type CreateStream struct {
	CoinType           string
	Beneficiary        string
	AmountPerIteration uint64
	Iterations         uint64
	StartMS            uint64
	IntervalMS         uint64
	CliffMS            *uint64
	Cancelable         bool
}

func (CreateStream) Kind() string { return catalog.KindCreateStream }

func (c CreateStream) Fields() map[string]any {
	f := map[string]any{
		"beneficiary":          c.Beneficiary,
		"amount_per_iteration": c.AmountPerIteration,
		"iterations":           c.Iterations,
		"start_ms":             c.StartMS,
		"interval_ms":          c.IntervalMS,
		"cancelable":           c.Cancelable,
	}
	if c.CliffMS != nil {
		f["cliff_ms"] = *c.CliffMS
	}
	return f
}

func (c CreateStream) TypeArgs() map[contracts.TypeParamSlot]string { return coinArg(c.CoinType) }

// CancelStream stages cancellation of an existing stream.
type CancelStream struct {
	CoinType string
	StreamID string
}

func (CancelStream) Kind() string { return catalog.KindCancelStream }

func (c CancelStream) Fields() map[string]any {
	return map[string]any{"stream_id": c.StreamID}
}

func (c CancelStream) TypeArgs() map[contracts.TypeParamSlot]string { return coinArg(c.CoinType) }

// CreateVesting stages a one-shot vesting schedule.
type CreateVesting struct {
	CoinType   string
	Recipient  string
	Amount     uint64
	StartMS    uint64
	DurationMS uint64
	CliffMS    *uint64
}

func (CreateVesting) Kind() string { return catalog.KindCreateVesting }

func (c CreateVesting) Fields() map[string]any {
	f := map[string]any{
		"recipient":   c.Recipient,
		"amount":      c.Amount,
		"start_ms":    c.StartMS,
		"duration_ms": c.DurationMS,
	}
	if c.CliffMS != nil {
		f["cliff_ms"] = *c.CliffMS
	}
	return f
}

func (c CreateVesting) TypeArgs() map[contracts.TypeParamSlot]string { return coinArg(c.CoinType) }

// CancelVesting stages cancellation of a vesting schedule.
type CancelVesting struct {
	CoinType  string
	VestingID string
}

func (CancelVesting) Kind() string { return catalog.KindCancelVesting }

func (c CancelVesting) Fields() map[string]any {
	return map[string]any{"vesting_id": c.VestingID}
}

func (c CancelVesting) TypeArgs() map[contracts.TypeParamSlot]string { return coinArg(c.CoinType) }
