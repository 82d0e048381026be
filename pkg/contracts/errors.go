package contracts

import (
	"errors"
	"fmt"
)

// ErrActionNotFound is the not-found signal for catalog lookups.
var ErrActionNotFound = errors.New("action definition not found")

// LookupError reports a failed catalog lookup. Always fatal for the caller;
// never auto-retried.
type LookupError struct {
	By  string // "id" or "marker_type"
	Key string
}

func (e *LookupError) Error() string {
	return fmt.Sprintf("catalog lookup by %s failed: %q", e.By, e.Key)
}

func (e *LookupError) Unwrap() error { return ErrActionNotFound }

// ValidationError reports a malformed staging config, caught before any
// external call. Fully correctable by the caller.
type ValidationError struct {
	Kind   string
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("invalid %s config: field %s: %s", e.Kind, e.Field, e.Reason)
	}
	return fmt.Sprintf("invalid %s config: %s", e.Kind, e.Reason)
}

// ConversionReason classifies a conversion failure.
type ConversionReason string

const (
	// UnknownActionKind: no catalog entry matches the observed marker type
	// or kind id.
	UnknownActionKind ConversionReason = "unknown_action_kind"
	// UnparsedAction: the upstream indexer flagged the record unparseable.
	UnparsedAction ConversionReason = "unparsed_action"
	// MissingField: a required field with no generic-type encoding is absent.
	MissingField ConversionReason = "missing_field"
)

// ConversionError reports one failed RawObservedAction conversion with
// enough context (kind, batch index, field) to diagnose without re-deriving
// state.
type ConversionError struct {
	Reason ConversionReason
	Kind   string
	Index  int
	Field  string
}

func (e *ConversionError) Error() string {
	switch e.Reason {
	case MissingField:
		return fmt.Sprintf("convert action %d (%s): missing field %q", e.Index, e.Kind, e.Field)
	case UnparsedAction:
		return fmt.Sprintf("convert action %d: indexer marked action unparseable", e.Index)
	default:
		return fmt.Sprintf("convert action %d: unknown action kind %q", e.Index, e.Kind)
	}
}

// ExternalRejection wraps a ledger refusal (wrong arity or order, missing
// capability, unresolved outcome, double execution). Opaque and terminal:
// never reinterpreted or retried by this module.
type ExternalRejection struct {
	Target string // call target that was refused, if known
	Err    error
}

func (e *ExternalRejection) Error() string {
	if e.Target != "" {
		return fmt.Sprintf("ledger rejected %s: %v", e.Target, e.Err)
	}
	return fmt.Sprintf("ledger rejected call: %v", e.Err)
}

func (e *ExternalRejection) Unwrap() error { return e.Err }
