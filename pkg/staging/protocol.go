package staging

import (
	"github.com/praxis-labs/intentkit/pkg/catalog"
	"github.com/praxis-labs/intentkit/pkg/contracts"
)

// SetFactoryPaused stages pausing or unpausing DAO creation at the protocol
// level.
type SetFactoryPaused struct {
	Paused bool
}

func (SetFactoryPaused) Kind() string { return catalog.KindSetFactoryPaused }

func (c SetFactoryPaused) Fields() map[string]any { return map[string]any{"paused": c.Paused} }

func (c SetFactoryPaused) TypeArgs() map[contracts.TypeParamSlot]string { return nil }

// UpdateProtocolFees stages new protocol-level fee values.
type UpdateProtocolFees struct {
	DaoCreationFee uint64
	ProposalFee    uint64
	MonthlyFee     uint64
}

func (UpdateProtocolFees) Kind() string { return catalog.KindUpdateProtocolFees }

func (c UpdateProtocolFees) Fields() map[string]any {
	return map[string]any{
		"dao_creation_fee": c.DaoCreationFee,
		"proposal_fee":     c.ProposalFee,
		"monthly_fee":      c.MonthlyFee,
	}
}

func (c UpdateProtocolFees) TypeArgs() map[contracts.TypeParamSlot]string { return nil }

// GrantOracleRead stages granting a reader access to a conditional price
// oracle.
type GrantOracleRead struct {
	AssetType  string
	StableType string
	OracleID   string
	Reader     string
}

func (GrantOracleRead) Kind() string { return catalog.KindGrantOracleRead }

func (c GrantOracleRead) Fields() map[string]any {
	return map[string]any{"oracle_id": c.OracleID, "reader": c.Reader}
}

func (c GrantOracleRead) TypeArgs() map[contracts.TypeParamSlot]string {
	return pairArg(c.AssetType, c.StableType)
}

// RevokeOracleRead stages revoking a reader's oracle access.
type RevokeOracleRead struct {
	AssetType  string
	StableType string
	OracleID   string
	Reader     string
}

func (RevokeOracleRead) Kind() string { return catalog.KindRevokeOracleRead }

func (c RevokeOracleRead) Fields() map[string]any {
	return map[string]any{"oracle_id": c.OracleID, "reader": c.Reader}
}

func (c RevokeOracleRead) TypeArgs() map[contracts.TypeParamSlot]string {
	return pairArg(c.AssetType, c.StableType)
}

// Memo stages an on-chain note with no state effect beyond its event.
type Memo struct {
	Message string
}

func (Memo) Kind() string { return catalog.KindMemo }

func (c Memo) Fields() map[string]any { return map[string]any{"message": c.Message} }

func (c Memo) TypeArgs() map[contracts.TypeParamSlot]string { return nil }
