package staging

import (
	"github.com/praxis-labs/intentkit/pkg/catalog"
	"github.com/praxis-labs/intentkit/pkg/contracts"
)

// WithdrawObject stages withdrawal of an account-owned object into the
// execution resource bag.
type WithdrawObject struct {
	ObjectType string
	ObjectID   string
	Resource   string
}

func (WithdrawObject) Kind() string { return catalog.KindWithdrawObject }

func (c WithdrawObject) Fields() map[string]any {
	return map[string]any{"object_id": c.ObjectID}
}

func (c WithdrawObject) TypeArgs() map[contracts.TypeParamSlot]string {
	return objectArg(c.ObjectType)
}

func (c WithdrawObject) ProducesName() string { return c.Resource }

// TransferObject stages transfer of a bag object to a fixed recipient.
type TransferObject struct {
	ObjectType string
	Recipient  string
	Resource   string
}

func (TransferObject) Kind() string { return catalog.KindTransferObject }

func (c TransferObject) Fields() map[string]any {
	return map[string]any{"recipient": c.Recipient}
}

func (c TransferObject) TypeArgs() map[contracts.TypeParamSlot]string {
	return objectArg(c.ObjectType)
}

func (c TransferObject) ConsumesName() string { return c.Resource }

// TransferCoin stages transfer of a bag coin to a fixed recipient.
type TransferCoin struct {
	CoinType  string
	Recipient string
	Resource  string
}

func (TransferCoin) Kind() string { return catalog.KindTransferCoin }

func (c TransferCoin) Fields() map[string]any {
	return map[string]any{"recipient": c.Recipient}
}

func (c TransferCoin) TypeArgs() map[contracts.TypeParamSlot]string { return coinArg(c.CoinType) }

func (c TransferCoin) ConsumesName() string { return c.Resource }

// TransferToSender stages transfer of a bag object to whoever cranks the
// execution, the usual cranker incentive.
type TransferToSender struct {
	ObjectType string
	Resource   string
}

func (TransferToSender) Kind() string { return catalog.KindTransferToSender }

func (c TransferToSender) Fields() map[string]any { return map[string]any{} }

func (c TransferToSender) TypeArgs() map[contracts.TypeParamSlot]string {
	return objectArg(c.ObjectType)
}

func (c TransferToSender) ConsumesName() string { return c.Resource }
