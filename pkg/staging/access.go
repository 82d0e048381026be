package staging

import (
	"github.com/praxis-labs/intentkit/pkg/catalog"
	"github.com/praxis-labs/intentkit/pkg/contracts"
)

// BorrowCap stages borrowing a capability from the account into the resource
// bag. Pair with a ReturnCap later in the same batch; the ledger aborts an
// execution that ends with a borrowed capability unreturned.
type BorrowCap struct {
	CapType  string
	Resource string
}

func (BorrowCap) Kind() string { return catalog.KindBorrowCap }

func (c BorrowCap) Fields() map[string]any { return map[string]any{} }

func (c BorrowCap) TypeArgs() map[contracts.TypeParamSlot]string { return capArg(c.CapType) }

func (c BorrowCap) ProducesName() string { return c.Resource }

// ReturnCap stages returning a borrowed capability to the account.
type ReturnCap struct {
	CapType  string
	Resource string
}

func (ReturnCap) Kind() string { return catalog.KindReturnCap }

func (c ReturnCap) Fields() map[string]any { return map[string]any{} }

func (c ReturnCap) TypeArgs() map[contracts.TypeParamSlot]string { return capArg(c.CapType) }

func (c ReturnCap) ConsumesName() string { return c.Resource }

// ReturnTreasuryCap stages handing the currency treasury cap back to a
// recipient, typically when a raise fails.
type ReturnTreasuryCap struct {
	CoinType  string
	Recipient string
}

func (ReturnTreasuryCap) Kind() string { return catalog.KindReturnTreasuryCap }

func (c ReturnTreasuryCap) Fields() map[string]any {
	return map[string]any{"recipient": c.Recipient}
}

func (c ReturnTreasuryCap) TypeArgs() map[contracts.TypeParamSlot]string { return coinArg(c.CoinType) }

// ReturnMetadata stages handing the coin metadata object back to a recipient.
type ReturnMetadata struct {
	CoinType  string
	Recipient string
}

func (ReturnMetadata) Kind() string { return catalog.KindReturnMetadata }

func (c ReturnMetadata) Fields() map[string]any {
	return map[string]any{"recipient": c.Recipient}
}

func (c ReturnMetadata) TypeArgs() map[contracts.TypeParamSlot]string { return coinArg(c.CoinType) }
