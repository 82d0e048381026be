package execution

import (
	"fmt"
	"strings"

	"github.com/praxis-labs/intentkit/pkg/codec"
	"github.com/praxis-labs/intentkit/pkg/contracts"
	"github.com/praxis-labs/intentkit/pkg/ledger"
)

// issue builds the ledger call(s) for one staged action. Handlers are grouped
// by category; the protocol-admin and oracle categories run through the
// borrow/use/return helper because their on-chain functions demand an admin
// capability held by the account.
//
// The category set is closed: a definition reaching default means the catalog
// gained a category without a handler, which the completeness test catches
// before it can ship.
func (e *Executable) issue(def *contracts.ActionDefinition, staged contracts.StagedAction,
	cfg contracts.ExecutionConfig, typeArgs []string) error {

	switch def.Category {
	case contracts.CategoryVesting,
		contracts.CategoryTreasury,
		contracts.CategoryCurrency,
		contracts.CategoryTransfer,
		contracts.CategoryPackage,
		contracts.CategoryAccess,
		contracts.CategoryConfig,
		contracts.CategoryLiquidity,
		contracts.CategoryGovernance:
		return e.standardCall(def, staged, cfg, typeArgs)

	case contracts.CategoryProtocol:
		capType := packageOf(def.ExecutionTarget) + "::protocol_actions::ProtocolAdminCap"
		return e.withBorrowedCap(capType, def, staged, cfg, typeArgs)

	case contracts.CategoryOracle:
		capType := packageOf(def.ExecutionTarget) + "::oracle_actions::OracleAdminCap"
		return e.withBorrowedCap(capType, def, staged, cfg, typeArgs)

	default:
		panic(fmt.Sprintf("execution: no handler for category %q (action %s)", def.Category, def.ID))
	}
}

// standardCall issues one execution call: handle, account, the declared
// parameters in catalog order, and the consumed bag resource if the
// definition declares one. A produced resource is recorded in the bag as
// output 0 of the call.
func (e *Executable) standardCall(def *contracts.ActionDefinition, staged contracts.StagedAction,
	cfg contracts.ExecutionConfig, typeArgs []string) error {

	args, err := e.callArgs(def, staged, cfg)
	if err != nil {
		return err
	}
	idx := e.tx.Append(ledger.Call{
		Target:   def.ExecutionTarget,
		TypeArgs: typeArgs,
		Args:     args,
	})
	e.recordProduced(def, staged, cfg, idx)
	return nil
}

// withBorrowedCap wraps one execution call in an inline capability borrow:
// borrow from the account, pass the capability as the call's last argument,
// return it in the same step.
func (e *Executable) withBorrowedCap(capType string, def *contracts.ActionDefinition,
	staged contracts.StagedAction, cfg contracts.ExecutionConfig, typeArgs []string) error {

	args, err := e.callArgs(def, staged, cfg)
	if err != nil {
		return err
	}

	borrowIdx := e.tx.Append(ledger.Call{
		Target:   e.targets.Borrow,
		TypeArgs: []string{capType},
		Args:     []ledger.Arg{e.handleArg(), ledger.Object(e.accountID)},
	})
	capRef := ledger.Result(borrowIdx, 0)

	idx := e.tx.Append(ledger.Call{
		Target:   def.ExecutionTarget,
		TypeArgs: typeArgs,
		Args:     append(args, capRef),
	})
	e.recordProduced(def, staged, cfg, idx)

	e.tx.Append(ledger.Call{
		Target:   e.targets.Return,
		TypeArgs: []string{capType},
		Args:     []ledger.Arg{e.handleArg(), ledger.Object(e.accountID), capRef},
	})
	return nil
}

func (e *Executable) callArgs(def *contracts.ActionDefinition, staged contracts.StagedAction,
	cfg contracts.ExecutionConfig) ([]ledger.Arg, error) {

	args := []ledger.Arg{e.handleArg(), ledger.Object(e.accountID)}

	// Staged actions carry authoritative encoded bytes; a cranker replaying
	// from the indexer re-encodes the converted fields through the same
	// catalog-declared shape.
	encoded := staged.Args
	if encoded == nil {
		var err error
		encoded, err = codec.EncodeParams(def, cfg.Fields)
		if err != nil {
			return nil, err
		}
	}
	for _, a := range encoded {
		args = append(args, ledger.Pure(a.Bytes))
	}

	if def.Consumes != "" {
		name := resourceName(staged.Consumes, cfg.Consumes, def.Consumes)
		res, ok := e.bag[name]
		if !ok {
			return nil, fmt.Errorf("action %d (%s): resource %q not produced by an earlier action",
				e.cursor, def.ID, name)
		}
		args = append(args, res)
	}
	return args, nil
}

func (e *Executable) recordProduced(def *contracts.ActionDefinition, staged contracts.StagedAction,
	cfg contracts.ExecutionConfig, callIdx int) {
	if def.Produces == "" {
		return
	}
	name := resourceName(staged.Produces, cfg.Produces, def.Produces)
	e.bag[name] = ledger.Result(callIdx, 0)
}

func resourceName(staged, cfg string, role contracts.ResourceRole) string {
	if staged != "" {
		return staged
	}
	if cfg != "" {
		return cfg
	}
	return string(role)
}

func packageOf(target string) string {
	if i := strings.Index(target, "::"); i >= 0 {
		return target[:i]
	}
	return target
}
