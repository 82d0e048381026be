// Package ledger is the call boundary to the on-chain ledger. A staging or
// execution call is a module-function target plus an ordered argument list
// plus an ordered type-argument list; the ledger's own arity and type
// checking rejects any call whose ordering drifts from the action catalog.
// There is no schema negotiation.
package ledger

import (
	"context"
	"encoding/json"
	"fmt"
)

// ArgKind discriminates transaction argument forms.
type ArgKind string

const (
	// ArgPure is a wire-encoded value (pkg/codec output).
	ArgPure ArgKind = "pure"
	// ArgObject references an on-chain object by id.
	ArgObject ArgKind = "object"
	// ArgResult references the output of an earlier call in the same
	// transaction, the mechanism that threads the execution handle and
	// resource-bag values through a batch.
	ArgResult ArgKind = "result"
)

// Arg is one ordered argument of a Call.
type Arg struct {
	Kind   ArgKind `json:"kind"`
	Pure   []byte  `json:"pure,omitempty"`
	Object string  `json:"object,omitempty"`
	Call   int     `json:"call,omitempty"`
	Output int     `json:"output,omitempty"`
}

// Pure wraps encoded bytes as a call argument.
func Pure(b []byte) Arg { return Arg{Kind: ArgPure, Pure: b} }

// Object references an on-chain object.
func Object(id string) Arg { return Arg{Kind: ArgObject, Object: id} }

// Result references output `output` of the transaction's call `call`.
func Result(call, output int) Arg { return Arg{Kind: ArgResult, Call: call, Output: output} }

// Call is one named module-function invocation.
type Call struct {
	Target   string   `json:"target"` // "package::module::function"
	TypeArgs []string `json:"type_args,omitempty"`
	Args     []Arg    `json:"args"`
}

// Transaction is an ordered list of calls submitted as one atomic unit.
// The ledger executes all calls in order or aborts the whole transaction;
// this module's sole contribution to that guarantee is emitting calls in
// exact staged order and never omitting one.
type Transaction struct {
	Sender string `json:"sender"`
	calls  []Call
}

// NewTransaction starts an empty transaction for sender.
func NewTransaction(sender string) *Transaction {
	return &Transaction{Sender: sender}
}

// Append adds a call and returns its index, usable in Result references by
// later calls.
func (t *Transaction) Append(c Call) int {
	t.calls = append(t.calls, c)
	return len(t.calls) - 1
}

// Calls returns the ordered call list.
func (t *Transaction) Calls() []Call {
	out := make([]Call, len(t.calls))
	copy(out, t.calls)
	return out
}

// Len returns the number of appended calls.
func (t *Transaction) Len() int { return len(t.calls) }

// MarshalJSON emits the wire form of the transaction.
func (t *Transaction) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Sender string `json:"sender"`
		Calls  []Call `json:"calls"`
	}{Sender: t.Sender, Calls: t.calls})
}

// TxResult is the ledger's response to a submitted transaction.
type TxResult struct {
	Digest  string          `json:"digest"`
	Status  string          `json:"status"` // "success" or "failure"
	Error   string          `json:"error,omitempty"`
	Effects json.RawMessage `json:"effects,omitempty"`
}

// Succeeded reports whether the transaction committed.
func (r *TxResult) Succeeded() bool { return r.Status == "success" }

// Caller submits transactions to the ledger. Retry, backoff, and timeout
// policy belong to the orchestrating caller, not implementations.
type Caller interface {
	Submit(ctx context.Context, tx *Transaction) (*TxResult, error)
}

// ValidateCall rejects obviously malformed calls before submission.
func ValidateCall(c Call) error {
	if c.Target == "" {
		return fmt.Errorf("call: empty target")
	}
	for i, a := range c.Args {
		switch a.Kind {
		case ArgPure:
			if a.Pure == nil {
				return fmt.Errorf("call %s: arg %d: empty pure bytes", c.Target, i)
			}
		case ArgObject:
			if a.Object == "" {
				return fmt.Errorf("call %s: arg %d: empty object id", c.Target, i)
			}
		case ArgResult:
			if a.Call < 0 {
				return fmt.Errorf("call %s: arg %d: negative call index", c.Target, i)
			}
		default:
			return fmt.Errorf("call %s: arg %d: unknown kind %q", c.Target, i, a.Kind)
		}
	}
	return nil
}
