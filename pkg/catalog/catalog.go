// Package catalog holds the static action-definition table: one row per
// supported action kind, looked up by id or by on-chain marker type.
//
// The table is the single source of truth for staging call shapes, execution
// call shapes, and wire-observed shapes. pkg/staging and pkg/convert never
// declare parameter or type-argument order themselves; they read it from
// here, so the three representations cannot drift.
package catalog

import (
	"fmt"
	"strings"
	"sync"

	"github.com/praxis-labs/intentkit/pkg/contracts"
)

// Addresses are the deployed package ids the catalog's call targets and
// marker types are anchored to. Fixed per build.
type Addresses struct {
	// Actions is the account-actions package: vesting, vault, currency,
	// transfer, package, access, config, liquidity, oracle, governance
	// modules.
	Actions string
	// Protocol is the protocol-admin package.
	Protocol string
}

// DefaultAddresses returns the mainnet deployment addresses.
func DefaultAddresses() Addresses {
	return Addresses{
		Actions:  "0x94c3a21b0a7e3cf4d6b1f08e5a2d9c47e1f63b8a0d5c2e794b6a1d8f3c0e5b72",
		Protocol: "0x2f8e6d1c4b7a9350e8c2f6a1d4b790e3c5a8f21d6b4e09c7a3f5d812e6b0c49f",
	}
}

// Catalog is an immutable action-definition table with unique ids and unique
// marker types.
type Catalog struct {
	ordered  []*contracts.ActionDefinition
	byID     map[string]*contracts.ActionDefinition
	byMarker map[string]*contracts.ActionDefinition
}

// New builds a catalog for the given deployment addresses. It fails on
// duplicate ids or marker types and on definitions whose staging and
// execution shapes could not agree (nil target, unnamed parameter).
func New(addrs Addresses) (*Catalog, error) {
	defs := definitions(addrs)
	c := &Catalog{
		ordered:  make([]*contracts.ActionDefinition, 0, len(defs)),
		byID:     make(map[string]*contracts.ActionDefinition, len(defs)),
		byMarker: make(map[string]*contracts.ActionDefinition, len(defs)),
	}
	for i := range defs {
		d := &defs[i]
		if d.ID == "" || d.StagingTarget == "" || d.ExecutionTarget == "" || d.MarkerType == "" {
			return nil, fmt.Errorf("definition %d (%s): incomplete", i, d.ID)
		}
		if _, dup := c.byID[d.ID]; dup {
			return nil, fmt.Errorf("duplicate action id %q", d.ID)
		}
		if _, dup := c.byMarker[d.MarkerType]; dup {
			return nil, fmt.Errorf("duplicate marker type %q", d.MarkerType)
		}
		for _, p := range d.Params {
			if p.Name == "" || p.Type == "" {
				return nil, fmt.Errorf("action %s: unnamed or untyped parameter", d.ID)
			}
		}
		if len(d.Contexts) == 0 {
			return nil, fmt.Errorf("action %s: no supported contexts", d.ID)
		}
		c.ordered = append(c.ordered, d)
		c.byID[d.ID] = d
		c.byMarker[d.MarkerType] = d
	}
	return c, nil
}

var (
	defaultOnce    sync.Once
	defaultCatalog *Catalog
)

// Default returns the catalog built from DefaultAddresses. The table is
// static, so a failure here is a programmer error.
func Default() *Catalog {
	defaultOnce.Do(func() {
		c, err := New(DefaultAddresses())
		if err != nil {
			panic(fmt.Sprintf("catalog: invalid built-in definitions: %v", err))
		}
		defaultCatalog = c
	})
	return defaultCatalog
}

// LookupByID returns the definition for an action kind id.
func (c *Catalog) LookupByID(id string) (*contracts.ActionDefinition, error) {
	if d, ok := c.byID[id]; ok {
		return d, nil
	}
	return nil, &contracts.LookupError{By: "id", Key: id}
}

// LookupByMarkerType returns the definition whose marker type matches t.
// A generic parameterization suffix ("...Action<0x2::sui::SUI>") is ignored
// for matching.
func (c *Catalog) LookupByMarkerType(t string) (*contracts.ActionDefinition, error) {
	base := BaseMarkerType(t)
	if d, ok := c.byMarker[base]; ok {
		return d, nil
	}
	return nil, &contracts.LookupError{By: "marker_type", Key: t}
}

// ListByCategory returns all definitions in a category, in table order.
func (c *Catalog) ListByCategory(cat contracts.Category) []*contracts.ActionDefinition {
	var out []*contracts.ActionDefinition
	for _, d := range c.ordered {
		if d.Category == cat {
			out = append(out, d)
		}
	}
	return out
}

// ListByContext returns all definitions stageable under ctx, in table order.
func (c *Catalog) ListByContext(ctx contracts.IntentContext) []*contracts.ActionDefinition {
	var out []*contracts.ActionDefinition
	for _, d := range c.ordered {
		if d.SupportsContext(ctx) {
			out = append(out, d)
		}
	}
	return out
}

// All returns every definition in table order.
func (c *Catalog) All() []*contracts.ActionDefinition {
	out := make([]*contracts.ActionDefinition, len(c.ordered))
	copy(out, c.ordered)
	return out
}

// Len returns the number of definitions.
func (c *Catalog) Len() int { return len(c.ordered) }

// BaseMarkerType strips a generic parameterization suffix from a
// fully-qualified type path.
func BaseMarkerType(t string) string {
	if i := strings.IndexByte(t, '<'); i >= 0 {
		return strings.TrimSpace(t[:i])
	}
	return strings.TrimSpace(t)
}

// MarkerTypeArgs parses the ordered generic type arguments out of a marker
// type parameterization. Nested parameterizations are kept intact, e.g.
// "A<B<C,D>,E>" yields ["B<C,D>", "E"]. A marker without parameterization
// yields nil.
func MarkerTypeArgs(t string) []string {
	open := strings.IndexByte(t, '<')
	if open < 0 {
		return nil
	}
	close := strings.LastIndexByte(t, '>')
	if close <= open {
		return nil
	}
	inner := t[open+1 : close]
	var out []string
	depth, start := 0, 0
	for i := 0; i < len(inner); i++ {
		switch inner[i] {
		case '<':
			depth++
		case '>':
			depth--
		case ',':
			if depth == 0 {
				out = append(out, strings.TrimSpace(inner[start:i]))
				start = i + 1
			}
		}
	}
	if s := strings.TrimSpace(inner[start:]); s != "" {
		out = append(out, s)
	}
	return out
}
