package catalog

import (
	"github.com/praxis-labs/intentkit/pkg/contracts"
)

// Action kind ids. Exported so staging adapters, the dispatch table, and
// tests name kinds through one set of constants.
const (
	KindCreateStream             = "create_stream"
	KindCancelStream             = "cancel_stream"
	KindCreateVesting            = "create_vesting"
	KindCancelVesting            = "cancel_vesting"
	KindVaultSpend               = "vault_spend"
	KindVaultDeposit             = "vault_deposit"
	KindMint                     = "mint"
	KindBurn                     = "burn"
	KindUpdateCurrencyMetadata   = "update_currency_metadata"
	KindDisableCurrencyAbilities = "disable_currency_abilities"
	KindWithdrawObject           = "withdraw_object"
	KindTransferObject           = "transfer_object"
	KindTransferCoin             = "transfer_coin"
	KindTransferToSender         = "transfer_to_sender"
	KindUpgradePackage           = "upgrade_package"
	KindCommitUpgrade            = "commit_upgrade"
	KindRestrictUpgradePolicy    = "restrict_upgrade_policy"
	KindBorrowCap                = "borrow_cap"
	KindReturnCap                = "return_cap"
	KindReturnTreasuryCap        = "return_treasury_cap"
	KindReturnMetadata           = "return_metadata"
	KindUpdateDaoName            = "update_dao_name"
	KindUpdateTradingParams      = "update_trading_params"
	KindUpdateMetadataTable      = "update_metadata_table"
	KindUpdateGovernanceParams   = "update_governance_params"
	KindSetProposalsEnabled      = "set_proposals_enabled"
	KindUpdateTwapConfig         = "update_twap_config"
	KindCreatePool               = "create_pool"
	KindCreatePoolWithMint       = "create_pool_with_mint"
	KindUpdatePoolFee            = "update_pool_fee"
	KindRemoveLiquidity          = "remove_liquidity"
	KindSetFactoryPaused         = "set_factory_paused"
	KindUpdateProtocolFees       = "update_protocol_fees"
	KindGrantOracleRead          = "grant_oracle_read"
	KindRevokeOracleRead         = "revoke_oracle_read"
	KindMemo                     = "memo"
)

// definitions returns the full table anchored to the given deployment
// addresses. Table order is the order used by List* methods.
func definitions(addrs Addresses) []contracts.ActionDefinition {
	var (
		both     = []contracts.IntentContext{contracts.ContextRaise, contracts.ContextProposal}
		raise    = []contracts.IntentContext{contracts.ContextRaise}
		proposal = []contracts.IntentContext{contracts.ContextProposal}

		coin        = []contracts.TypeParamSlot{contracts.SlotCoinType}
		object      = []contracts.TypeParamSlot{contracts.SlotObjectType}
		cap         = []contracts.TypeParamSlot{contracts.SlotCapType}
		assetStable = []contracts.TypeParamSlot{contracts.SlotAssetType, contracts.SlotStableType}
	)
	p := func(name string, t contracts.ParamType) contracts.ParamSpec {
		return contracts.ParamSpec{Name: name, Type: t}
	}
	opt := func(name string, t contracts.ParamType) contracts.ParamSpec {
		return contracts.ParamSpec{Name: name, Type: t, Optional: true}
	}
	target := func(pkg, module, fn string) string { return pkg + "::" + module + "::" + fn }
	marker := func(pkg, module, name string) string { return pkg + "::" + module + "::" + name }

	a := addrs.Actions
	pr := addrs.Protocol

	return []contracts.ActionDefinition{
		// --- vesting ---
		{
			ID: KindCreateStream, DisplayName: "Create payment stream",
			Category:        contracts.CategoryVesting,
			StagingTarget:   target(a, "vesting_intents", "new_create_stream"),
			ExecutionTarget: target(a, "vesting_actions", "do_create_stream"),
			MarkerType:      marker(a, "vesting_actions", "CreateStreamAction"),
			Params: []contracts.ParamSpec{
				p("beneficiary", contracts.ParamAddress),
				p("amount_per_iteration", contracts.ParamU64),
				p("iterations", contracts.ParamU64),
				p("start_ms", contracts.ParamU64),
				p("interval_ms", contracts.ParamU64),
				opt("cliff_ms", contracts.ParamU64),
				p("cancelable", contracts.ParamBool),
			},
			TypeParams: coin, Contexts: both,
		},
		{
			ID: KindCancelStream, DisplayName: "Cancel payment stream",
			Category:        contracts.CategoryVesting,
			StagingTarget:   target(a, "vesting_intents", "new_cancel_stream"),
			ExecutionTarget: target(a, "vesting_actions", "do_cancel_stream"),
			MarkerType:      marker(a, "vesting_actions", "CancelStreamAction"),
			Params:          []contracts.ParamSpec{p("stream_id", contracts.ParamID)},
			TypeParams:      coin, Contexts: both,
		},
		{
			ID: KindCreateVesting, DisplayName: "Create vesting schedule",
			Category:        contracts.CategoryVesting,
			StagingTarget:   target(a, "vesting_intents", "new_create_vesting"),
			ExecutionTarget: target(a, "vesting_actions", "do_create_vesting"),
			MarkerType:      marker(a, "vesting_actions", "CreateVestingAction"),
			Params: []contracts.ParamSpec{
				p("recipient", contracts.ParamAddress),
				p("amount", contracts.ParamU64),
				p("start_ms", contracts.ParamU64),
				p("duration_ms", contracts.ParamU64),
				opt("cliff_ms", contracts.ParamU64),
			},
			TypeParams: coin, Contexts: both,
		},
		{
			ID: KindCancelVesting, DisplayName: "Cancel vesting schedule",
			Category:        contracts.CategoryVesting,
			StagingTarget:   target(a, "vesting_intents", "new_cancel_vesting"),
			ExecutionTarget: target(a, "vesting_actions", "do_cancel_vesting"),
			MarkerType:      marker(a, "vesting_actions", "CancelVestingAction"),
			Params:          []contracts.ParamSpec{p("vesting_id", contracts.ParamID)},
			TypeParams:      coin, Contexts: both,
		},

		// --- treasury ---
		{
			ID: KindVaultSpend, DisplayName: "Spend from vault",
			Category:        contracts.CategoryTreasury,
			StagingTarget:   target(a, "vault_intents", "new_vault_spend"),
			ExecutionTarget: target(a, "vault_actions", "do_vault_spend"),
			MarkerType:      marker(a, "vault_actions", "VaultSpendAction"),
			Params: []contracts.ParamSpec{
				p("vault_name", contracts.ParamString),
				p("amount", contracts.ParamU64),
			},
			TypeParams: coin, Contexts: both,
			Produces: contracts.ResourceCoin,
		},
		{
			ID: KindVaultDeposit, DisplayName: "Deposit into vault",
			Category:        contracts.CategoryTreasury,
			StagingTarget:   target(a, "vault_intents", "new_vault_deposit"),
			ExecutionTarget: target(a, "vault_actions", "do_vault_deposit"),
			MarkerType:      marker(a, "vault_actions", "VaultDepositAction"),
			Params: []contracts.ParamSpec{
				p("vault_name", contracts.ParamString),
				p("amount", contracts.ParamU64),
			},
			TypeParams: coin, Contexts: both,
			Consumes: contracts.ResourceCoin,
		},

		// --- currency ---
		{
			ID: KindMint, DisplayName: "Mint currency",
			Category:        contracts.CategoryCurrency,
			StagingTarget:   target(a, "currency_intents", "new_mint"),
			ExecutionTarget: target(a, "currency_actions", "do_mint"),
			MarkerType:      marker(a, "currency_actions", "MintAction"),
			Params:          []contracts.ParamSpec{p("amount", contracts.ParamU64)},
			TypeParams:      coin, Contexts: both,
			Produces: contracts.ResourceCoin,
		},
		{
			ID: KindBurn, DisplayName: "Burn currency",
			Category:        contracts.CategoryCurrency,
			StagingTarget:   target(a, "currency_intents", "new_burn"),
			ExecutionTarget: target(a, "currency_actions", "do_burn"),
			MarkerType:      marker(a, "currency_actions", "BurnAction"),
			Params:          []contracts.ParamSpec{p("amount", contracts.ParamU64)},
			TypeParams:      coin, Contexts: both,
			Consumes: contracts.ResourceCoin,
		},
		{
			ID: KindUpdateCurrencyMetadata, DisplayName: "Update coin metadata",
			Category:        contracts.CategoryCurrency,
			StagingTarget:   target(a, "currency_intents", "new_update_metadata"),
			ExecutionTarget: target(a, "currency_actions", "do_update_metadata"),
			MarkerType:      marker(a, "currency_actions", "UpdateCurrencyMetadataAction"),
			Params: []contracts.ParamSpec{
				opt("name", contracts.ParamString),
				opt("symbol", contracts.ParamString),
				opt("description", contracts.ParamString),
				opt("icon_url", contracts.ParamString),
			},
			TypeParams: coin, Contexts: both,
		},
		{
			ID: KindDisableCurrencyAbilities, DisplayName: "Disable coin abilities",
			Category:        contracts.CategoryCurrency,
			StagingTarget:   target(a, "currency_intents", "new_disable_abilities"),
			ExecutionTarget: target(a, "currency_actions", "do_disable_abilities"),
			MarkerType:      marker(a, "currency_actions", "DisableCurrencyAbilitiesAction"),
			Params: []contracts.ParamSpec{
				p("disable_mint", contracts.ParamBool),
				p("disable_burn", contracts.ParamBool),
				p("disable_update_metadata", contracts.ParamBool),
			},
			TypeParams: coin, Contexts: proposal,
		},

		// --- transfer ---
		{
			ID: KindWithdrawObject, DisplayName: "Withdraw owned object",
			Category:        contracts.CategoryTransfer,
			StagingTarget:   target(a, "transfer_intents", "new_withdraw_object"),
			ExecutionTarget: target(a, "transfer_actions", "do_withdraw_object"),
			MarkerType:      marker(a, "transfer_actions", "WithdrawObjectAction"),
			Params:          []contracts.ParamSpec{p("object_id", contracts.ParamID)},
			TypeParams:      object, Contexts: both,
			Produces: contracts.ResourceObject,
		},
		{
			ID: KindTransferObject, DisplayName: "Transfer object",
			Category:        contracts.CategoryTransfer,
			StagingTarget:   target(a, "transfer_intents", "new_transfer_object"),
			ExecutionTarget: target(a, "transfer_actions", "do_transfer_object"),
			MarkerType:      marker(a, "transfer_actions", "TransferObjectAction"),
			Params:          []contracts.ParamSpec{p("recipient", contracts.ParamAddress)},
			TypeParams:      object, Contexts: both,
			Consumes: contracts.ResourceObject,
		},
		{
			ID: KindTransferCoin, DisplayName: "Transfer coin",
			Category:        contracts.CategoryTransfer,
			StagingTarget:   target(a, "transfer_intents", "new_transfer_coin"),
			ExecutionTarget: target(a, "transfer_actions", "do_transfer_coin"),
			MarkerType:      marker(a, "transfer_actions", "TransferCoinAction"),
			Params:          []contracts.ParamSpec{p("recipient", contracts.ParamAddress)},
			TypeParams:      coin, Contexts: both,
			Consumes: contracts.ResourceCoin,
		},
		{
			ID: KindTransferToSender, DisplayName: "Transfer to executor",
			Category:        contracts.CategoryTransfer,
			StagingTarget:   target(a, "transfer_intents", "new_transfer_to_sender"),
			ExecutionTarget: target(a, "transfer_actions", "do_transfer_to_sender"),
			MarkerType:      marker(a, "transfer_actions", "TransferToSenderAction"),
			TypeParams:      object, Contexts: both,
			Consumes: contracts.ResourceObject,
		},

		// --- package lifecycle ---
		{
			ID: KindUpgradePackage, DisplayName: "Upgrade package",
			Category:        contracts.CategoryPackage,
			StagingTarget:   target(a, "package_intents", "new_upgrade_package"),
			ExecutionTarget: target(a, "package_actions", "do_upgrade_package"),
			MarkerType:      marker(a, "package_actions", "UpgradePackageAction"),
			Params: []contracts.ParamSpec{
				p("package_name", contracts.ParamString),
				p("version", contracts.ParamString),
				p("digest", contracts.ParamBytes),
			},
			Contexts: proposal,
			Produces: contracts.ResourceTicket,
		},
		{
			ID: KindCommitUpgrade, DisplayName: "Commit package upgrade",
			Category:        contracts.CategoryPackage,
			StagingTarget:   target(a, "package_intents", "new_commit_upgrade"),
			ExecutionTarget: target(a, "package_actions", "do_commit_upgrade"),
			MarkerType:      marker(a, "package_actions", "CommitUpgradeAction"),
			Params:          []contracts.ParamSpec{p("package_name", contracts.ParamString)},
			Contexts:        proposal,
			Consumes:        contracts.ResourceTicket,
		},
		{
			ID: KindRestrictUpgradePolicy, DisplayName: "Restrict upgrade policy",
			Category:        contracts.CategoryPackage,
			StagingTarget:   target(a, "package_intents", "new_restrict_policy"),
			ExecutionTarget: target(a, "package_actions", "do_restrict_policy"),
			MarkerType:      marker(a, "package_actions", "RestrictUpgradePolicyAction"),
			Params: []contracts.ParamSpec{
				p("package_name", contracts.ParamString),
				p("policy", contracts.ParamU8),
			},
			Contexts: proposal,
		},

		// --- access / capabilities ---
		{
			ID: KindBorrowCap, DisplayName: "Borrow capability",
			Category:        contracts.CategoryAccess,
			StagingTarget:   target(a, "access_intents", "new_borrow_cap"),
			ExecutionTarget: target(a, "access_actions", "do_borrow_cap"),
			MarkerType:      marker(a, "access_actions", "BorrowCapAction"),
			TypeParams:      cap, Contexts: proposal,
			Produces: contracts.ResourceCap,
		},
		{
			ID: KindReturnCap, DisplayName: "Return capability",
			Category:        contracts.CategoryAccess,
			StagingTarget:   target(a, "access_intents", "new_return_cap"),
			ExecutionTarget: target(a, "access_actions", "do_return_cap"),
			MarkerType:      marker(a, "access_actions", "ReturnCapAction"),
			TypeParams:      cap, Contexts: proposal,
			Consumes: contracts.ResourceCap,
		},
		{
			ID: KindReturnTreasuryCap, DisplayName: "Return treasury cap",
			Category:        contracts.CategoryAccess,
			StagingTarget:   target(a, "access_intents", "new_return_treasury_cap"),
			ExecutionTarget: target(a, "access_actions", "do_return_treasury_cap"),
			MarkerType:      marker(a, "access_actions", "ReturnTreasuryCapAction"),
			Params:          []contracts.ParamSpec{p("recipient", contracts.ParamAddress)},
			TypeParams:      coin, Contexts: both,
		},
		{
			ID: KindReturnMetadata, DisplayName: "Return coin metadata",
			Category:        contracts.CategoryAccess,
			StagingTarget:   target(a, "access_intents", "new_return_metadata"),
			ExecutionTarget: target(a, "access_actions", "do_return_metadata"),
			MarkerType:      marker(a, "access_actions", "ReturnMetadataAction"),
			Params:          []contracts.ParamSpec{p("recipient", contracts.ParamAddress)},
			TypeParams:      coin, Contexts: both,
		},

		// --- DAO configuration ---
		{
			ID: KindUpdateDaoName, DisplayName: "Update DAO name",
			Category:        contracts.CategoryConfig,
			StagingTarget:   target(a, "config_intents", "new_update_name"),
			ExecutionTarget: target(a, "config_actions", "do_update_name"),
			MarkerType:      marker(a, "config_actions", "UpdateDaoNameAction"),
			Params:          []contracts.ParamSpec{p("name", contracts.ParamString)},
			Contexts:        proposal,
		},
		{
			ID: KindUpdateTradingParams, DisplayName: "Update trading parameters",
			Category:        contracts.CategoryConfig,
			StagingTarget:   target(a, "config_intents", "new_update_trading_params"),
			ExecutionTarget: target(a, "config_actions", "do_update_trading_params"),
			MarkerType:      marker(a, "config_actions", "UpdateTradingParamsAction"),
			Params: []contracts.ParamSpec{
				p("min_asset_amount", contracts.ParamU64),
				p("min_stable_amount", contracts.ParamU64),
				p("review_period_ms", contracts.ParamU64),
				p("trading_period_ms", contracts.ParamU64),
			},
			Contexts: proposal,
		},
		{
			ID: KindUpdateMetadataTable, DisplayName: "Update metadata table",
			Category:        contracts.CategoryConfig,
			StagingTarget:   target(a, "config_intents", "new_update_metadata_table"),
			ExecutionTarget: target(a, "config_actions", "do_update_metadata_table"),
			MarkerType:      marker(a, "config_actions", "UpdateMetadataTableAction"),
			Params: []contracts.ParamSpec{
				p("keys", contracts.ParamVecString),
				p("values", contracts.ParamVecString),
			},
			Contexts: both,
		},
		{
			ID: KindUpdateGovernanceParams, DisplayName: "Update governance parameters",
			Category:        contracts.CategoryConfig,
			StagingTarget:   target(a, "config_intents", "new_update_governance_params"),
			ExecutionTarget: target(a, "config_actions", "do_update_governance_params"),
			MarkerType:      marker(a, "config_actions", "UpdateGovernanceParamsAction"),
			Params: []contracts.ParamSpec{
				p("max_outcomes", contracts.ParamU64),
				p("max_actions_per_outcome", contracts.ParamU64),
				p("required_bond", contracts.ParamU64),
				p("max_intents_per_outcome", contracts.ParamU64),
			},
			Contexts: proposal,
		},
		{
			ID: KindSetProposalsEnabled, DisplayName: "Enable or disable proposals",
			Category:        contracts.CategoryConfig,
			StagingTarget:   target(a, "config_intents", "new_set_proposals_enabled"),
			ExecutionTarget: target(a, "config_actions", "do_set_proposals_enabled"),
			MarkerType:      marker(a, "config_actions", "SetProposalsEnabledAction"),
			Params:          []contracts.ParamSpec{p("enabled", contracts.ParamBool)},
			Contexts:        both,
		},
		{
			ID: KindUpdateTwapConfig, DisplayName: "Update TWAP configuration",
			Category:        contracts.CategoryConfig,
			StagingTarget:   target(a, "config_intents", "new_update_twap_config"),
			ExecutionTarget: target(a, "config_actions", "do_update_twap_config"),
			MarkerType:      marker(a, "config_actions", "UpdateTwapConfigAction"),
			Params: []contracts.ParamSpec{
				p("start_delay_ms", contracts.ParamU64),
				p("step_max", contracts.ParamU64),
				p("initial_observation", contracts.ParamU128),
				p("threshold", contracts.ParamU64),
			},
			Contexts: proposal,
		},

		// --- liquidity ---
		{
			ID: KindCreatePool, DisplayName: "Create liquidity pool",
			Category:        contracts.CategoryLiquidity,
			StagingTarget:   target(a, "liquidity_intents", "new_create_pool"),
			ExecutionTarget: target(a, "liquidity_actions", "do_create_pool"),
			MarkerType:      marker(a, "liquidity_actions", "CreatePoolAction"),
			Params: []contracts.ParamSpec{
				p("asset_amount", contracts.ParamU64),
				p("stable_amount", contracts.ParamU64),
				p("fee_bps", contracts.ParamU64),
			},
			TypeParams: assetStable, Contexts: both,
		},
		{
			ID: KindCreatePoolWithMint, DisplayName: "Create pool with minted assets",
			Category:        contracts.CategoryLiquidity,
			StagingTarget:   target(a, "liquidity_intents", "new_create_pool_with_mint"),
			ExecutionTarget: target(a, "liquidity_actions", "do_create_pool_with_mint"),
			MarkerType:      marker(a, "liquidity_actions", "CreatePoolWithMintAction"),
			Params: []contracts.ParamSpec{
				p("asset_amount", contracts.ParamU64),
				p("stable_amount", contracts.ParamU64),
				p("fee_bps", contracts.ParamU64),
			},
			TypeParams: assetStable, Contexts: raise,
		},
		{
			ID: KindUpdatePoolFee, DisplayName: "Update pool fee",
			Category:        contracts.CategoryLiquidity,
			StagingTarget:   target(a, "liquidity_intents", "new_update_pool_fee"),
			ExecutionTarget: target(a, "liquidity_actions", "do_update_pool_fee"),
			MarkerType:      marker(a, "liquidity_actions", "UpdatePoolFeeAction"),
			Params: []contracts.ParamSpec{
				p("pool_id", contracts.ParamID),
				p("fee_bps", contracts.ParamU64),
			},
			TypeParams: assetStable, Contexts: proposal,
		},
		{
			ID: KindRemoveLiquidity, DisplayName: "Remove liquidity",
			Category:        contracts.CategoryLiquidity,
			StagingTarget:   target(a, "liquidity_intents", "new_remove_liquidity"),
			ExecutionTarget: target(a, "liquidity_actions", "do_remove_liquidity"),
			MarkerType:      marker(a, "liquidity_actions", "RemoveLiquidityAction"),
			Params: []contracts.ParamSpec{
				p("pool_id", contracts.ParamID),
				p("lp_amount", contracts.ParamU64),
				p("min_asset_out", contracts.ParamU64),
				p("min_stable_out", contracts.ParamU64),
			},
			TypeParams: assetStable, Contexts: proposal,
		},

		// --- protocol admin ---
		{
			ID: KindSetFactoryPaused, DisplayName: "Pause or unpause factory",
			Category:        contracts.CategoryProtocol,
			StagingTarget:   target(pr, "protocol_intents", "new_set_factory_paused"),
			ExecutionTarget: target(pr, "protocol_actions", "do_set_factory_paused"),
			MarkerType:      marker(pr, "protocol_actions", "SetFactoryPausedAction"),
			Params:          []contracts.ParamSpec{p("paused", contracts.ParamBool)},
			Contexts:        proposal,
		},
		{
			ID: KindUpdateProtocolFees, DisplayName: "Update protocol fees",
			Category:        contracts.CategoryProtocol,
			StagingTarget:   target(pr, "protocol_intents", "new_update_fees"),
			ExecutionTarget: target(pr, "protocol_actions", "do_update_fees"),
			MarkerType:      marker(pr, "protocol_actions", "UpdateProtocolFeesAction"),
			Params: []contracts.ParamSpec{
				p("dao_creation_fee", contracts.ParamU64),
				p("proposal_fee", contracts.ParamU64),
				p("monthly_fee", contracts.ParamU64),
			},
			Contexts: proposal,
		},

		// --- price oracle grants ---
		{
			ID: KindGrantOracleRead, DisplayName: "Grant oracle read access",
			Category:        contracts.CategoryOracle,
			StagingTarget:   target(a, "oracle_intents", "new_grant_read"),
			ExecutionTarget: target(a, "oracle_actions", "do_grant_read"),
			MarkerType:      marker(a, "oracle_actions", "GrantOracleReadAction"),
			Params: []contracts.ParamSpec{
				p("oracle_id", contracts.ParamID),
				p("reader", contracts.ParamAddress),
			},
			TypeParams: assetStable, Contexts: proposal,
		},
		{
			ID: KindRevokeOracleRead, DisplayName: "Revoke oracle read access",
			Category:        contracts.CategoryOracle,
			StagingTarget:   target(a, "oracle_intents", "new_revoke_read"),
			ExecutionTarget: target(a, "oracle_actions", "do_revoke_read"),
			MarkerType:      marker(a, "oracle_actions", "RevokeOracleReadAction"),
			Params: []contracts.ParamSpec{
				p("oracle_id", contracts.ParamID),
				p("reader", contracts.ParamAddress),
			},
			TypeParams: assetStable, Contexts: proposal,
		},

		// --- governance ---
		{
			ID: KindMemo, DisplayName: "Emit memo",
			Category:        contracts.CategoryGovernance,
			StagingTarget:   target(a, "governance_intents", "new_memo"),
			ExecutionTarget: target(a, "governance_actions", "do_memo"),
			MarkerType:      marker(a, "governance_actions", "MemoAction"),
			Params:          []contracts.ParamSpec{p("message", contracts.ParamString)},
			Contexts:        both,
		},
	}
}
