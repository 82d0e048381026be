package staging

import (
	"github.com/praxis-labs/intentkit/pkg/catalog"
	"github.com/praxis-labs/intentkit/pkg/contracts"
)

// UpdateDaoName stages a DAO rename.
type UpdateDaoName struct {
	Name string
}

func (UpdateDaoName) Kind() string { return catalog.KindUpdateDaoName }

func (c UpdateDaoName) Fields() map[string]any { return map[string]any{"name": c.Name} }

func (c UpdateDaoName) TypeArgs() map[contracts.TypeParamSlot]string { return nil }

// UpdateTradingParams stages new market parameters for future proposals.
type UpdateTradingParams struct {
	MinAssetAmount  uint64
	MinStableAmount uint64
	ReviewPeriodMS  uint64
	TradingPeriodMS uint64
}

func (UpdateTradingParams) Kind() string { return catalog.KindUpdateTradingParams }

func (c UpdateTradingParams) Fields() map[string]any {
	return map[string]any{
		"min_asset_amount":  c.MinAssetAmount,
		"min_stable_amount": c.MinStableAmount,
		"review_period_ms":  c.ReviewPeriodMS,
		"trading_period_ms": c.TradingPeriodMS,
	}
}

func (c UpdateTradingParams) TypeArgs() map[contracts.TypeParamSlot]string { return nil }

// UpdateMetadataTable stages key/value metadata writes. Keys and values are
// parallel lists and must have equal length.
type UpdateMetadataTable struct {
	Keys   []string
	Values []string
}

func (UpdateMetadataTable) Kind() string { return catalog.KindUpdateMetadataTable }

func (c UpdateMetadataTable) Fields() map[string]any {
	return map[string]any{"keys": c.Keys, "values": c.Values}
}

func (c UpdateMetadataTable) TypeArgs() map[contracts.TypeParamSlot]string { return nil }

func (c UpdateMetadataTable) Validate() error {
	if len(c.Keys) != len(c.Values) {
		return &contracts.ValidationError{
			Kind:   catalog.KindUpdateMetadataTable,
			Field:  "values",
			Reason: "keys and values must have equal length",
		}
	}
	if len(c.Keys) == 0 {
		return &contracts.ValidationError{
			Kind:   catalog.KindUpdateMetadataTable,
			Field:  "keys",
			Reason: "empty update",
		}
	}
	return nil
}

// UpdateGovernanceParams stages new limits for intent staging.
type UpdateGovernanceParams struct {
	MaxOutcomes          uint64
	MaxActionsPerOutcome uint64
	RequiredBond         uint64
	MaxIntentsPerOutcome uint64
}

func (UpdateGovernanceParams) Kind() string { return catalog.KindUpdateGovernanceParams }

func (c UpdateGovernanceParams) Fields() map[string]any {
	return map[string]any{
		"max_outcomes":            c.MaxOutcomes,
		"max_actions_per_outcome": c.MaxActionsPerOutcome,
		"required_bond":           c.RequiredBond,
		"max_intents_per_outcome": c.MaxIntentsPerOutcome,
	}
}

func (c UpdateGovernanceParams) TypeArgs() map[contracts.TypeParamSlot]string { return nil }

// SetProposalsEnabled stages toggling proposal creation.
type SetProposalsEnabled struct {
	Enabled bool
}

func (SetProposalsEnabled) Kind() string { return catalog.KindSetProposalsEnabled }

func (c SetProposalsEnabled) Fields() map[string]any { return map[string]any{"enabled": c.Enabled} }

func (c SetProposalsEnabled) TypeArgs() map[contracts.TypeParamSlot]string { return nil }

// UpdateTwapConfig stages new TWAP observation parameters. The arithmetic
// that consumes them runs on-chain; this only commits the values.
type UpdateTwapConfig struct {
	StartDelayMS       uint64
	StepMax            uint64
	InitialObservation string // decimal u128
	Threshold          uint64
}

func (UpdateTwapConfig) Kind() string { return catalog.KindUpdateTwapConfig }

func (c UpdateTwapConfig) Fields() map[string]any {
	return map[string]any{
		"start_delay_ms":      c.StartDelayMS,
		"step_max":            c.StepMax,
		"initial_observation": c.InitialObservation,
		"threshold":           c.Threshold,
	}
}

func (c UpdateTwapConfig) TypeArgs() map[contracts.TypeParamSlot]string { return nil }
