// Package contracts defines the shared data model for the intent pipeline:
// action definitions, staged batches, execution configs, and the wire shape
// of indexer-observed actions.
//
// Three call shapes — staging, execution, and wire-observed — are all derived
// from the single ActionDefinition table in pkg/catalog. Nothing outside that
// table may declare parameter or type-argument order.
package contracts

// Category groups action kinds by the subsystem they touch on-chain.
type Category string

const (
	CategoryVesting    Category = "vesting"
	CategoryTreasury   Category = "treasury"
	CategoryCurrency   Category = "currency"
	CategoryTransfer   Category = "transfer"
	CategoryPackage    Category = "package"
	CategoryAccess     Category = "access"
	CategoryConfig     Category = "config"
	CategoryLiquidity  Category = "liquidity"
	CategoryProtocol   Category = "protocol"
	CategoryOracle     Category = "oracle"
	CategoryGovernance Category = "governance"
)

// IntentContext names the trigger an intent is gated on.
type IntentContext string

const (
	// ContextRaise gates an intent on a funding campaign's success or failure.
	ContextRaise IntentContext = "raise"
	// ContextProposal gates an intent on a governance proposal's winning outcome.
	ContextProposal IntentContext = "proposal"
)

// TypeParamSlot is one ordered generic slot of a staging or execution call.
type TypeParamSlot string

const (
	SlotCoinType   TypeParamSlot = "CoinType"
	SlotAssetType  TypeParamSlot = "AssetType"
	SlotStableType TypeParamSlot = "StableType"
	SlotObjectType TypeParamSlot = "ObjectType"
	SlotCapType    TypeParamSlot = "CapType"
	SlotKeyType    TypeParamSlot = "KeyType"
)

// ParamType is the wire type of one staged parameter.
type ParamType string

const (
	ParamU8         ParamType = "u8"
	ParamU16        ParamType = "u16"
	ParamU32        ParamType = "u32"
	ParamU64        ParamType = "u64"
	ParamU128       ParamType = "u128"
	ParamBool       ParamType = "bool"
	ParamAddress    ParamType = "address"
	ParamID         ParamType = "id"
	ParamString     ParamType = "string"
	ParamBytes      ParamType = "vector<u8>"
	ParamVecString  ParamType = "vector<string>"
	ParamVecAddress ParamType = "vector<address>"
)

// ParamSpec declares one parameter of an action, in call-argument order.
// Optional parameters are encoded with option wrapping on the wire.
type ParamSpec struct {
	Name     string
	Type     ParamType
	Optional bool
}

// ResourceRole names the kind of execution-scoped resource an action places
// into, or takes from, the batch resource bag. Empty means the action neither
// produces nor consumes a bag resource.
type ResourceRole string

const (
	ResourceCoin   ResourceRole = "coin"
	ResourceObject ResourceRole = "object"
	ResourceCap    ResourceRole = "cap"
	ResourceTicket ResourceRole = "upgrade_ticket"
)

// ActionDefinition is one row of the action catalog. Definitions are fixed at
// process start and immutable; IDs and MarkerTypes are each globally unique.
//
// StagingTarget and ExecutionTarget are module-function call targets in
// "package::module::function" form. Both calls take the definition's
// TypeParams in declared order; the ledger's own arity checking rejects any
// drift, so the two lists are never declared separately.
type ActionDefinition struct {
	ID              string
	DisplayName     string
	Category        Category
	StagingTarget   string
	ExecutionTarget string

	// MarkerType is the fully-qualified on-chain type path used to recognize
	// this kind when an action is read back from the ledger. Observed values
	// may carry a generic parameterization suffix, e.g.
	// "0xf00d::vesting_actions::CreateStreamAction<0x2::sui::SUI>".
	MarkerType string

	Params     []ParamSpec
	TypeParams []TypeParamSlot
	Contexts   []IntentContext

	// Produces / Consumes declare the action's role in the batch resource
	// bag. A consumer must be staged strictly after a producer whose chosen
	// resource name matches; pkg/staging enforces this before any external
	// call is made.
	Produces ResourceRole
	Consumes ResourceRole
}

// SupportsContext reports whether the definition may be staged under ctx.
func (d *ActionDefinition) SupportsContext(ctx IntentContext) bool {
	for _, c := range d.Contexts {
		if c == ctx {
			return true
		}
	}
	return false
}

// ParamSpecByName returns the declared parameter with the given name.
func (d *ActionDefinition) ParamSpecByName(name string) (ParamSpec, bool) {
	for _, p := range d.Params {
		if p.Name == name {
			return p, true
		}
	}
	return ParamSpec{}, false
}
