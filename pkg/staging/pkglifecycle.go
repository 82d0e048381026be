package staging

import (
	"github.com/Masterminds/semver/v3"

	"github.com/praxis-labs/intentkit/pkg/catalog"
	"github.com/praxis-labs/intentkit/pkg/contracts"
)

// UpgradePackage stages a package upgrade. The upgrade ticket lands in the
// resource bag under Resource (default "upgrade_ticket") and must be
// consumed by a later CommitUpgrade in the same batch.
type UpgradePackage struct {
	PackageName string
	Version     string
	Digest      []byte
	Resource    string
}

func (UpgradePackage) Kind() string { return catalog.KindUpgradePackage }

func (c UpgradePackage) Fields() map[string]any {
	return map[string]any{
		"package_name": c.PackageName,
		"version":      c.Version,
		"digest":       c.Digest,
	}
}

func (c UpgradePackage) TypeArgs() map[contracts.TypeParamSlot]string { return nil }

func (c UpgradePackage) ProducesName() string { return c.Resource }

// Validate enforces a semver version string and a non-empty digest.
func (c UpgradePackage) Validate() error {
	if _, err := semver.StrictNewVersion(c.Version); err != nil {
		return &contracts.ValidationError{
			Kind:   catalog.KindUpgradePackage,
			Field:  "version",
			Reason: "not a valid semantic version: " + c.Version,
		}
	}
	if len(c.Digest) == 0 {
		return &contracts.ValidationError{
			Kind:   catalog.KindUpgradePackage,
			Field:  "digest",
			Reason: "empty upgrade digest",
		}
	}
	return nil
}

// CommitUpgrade stages the commit that consumes an upgrade ticket.
type CommitUpgrade struct {
	PackageName string
	Resource    string
}

func (CommitUpgrade) Kind() string { return catalog.KindCommitUpgrade }

func (c CommitUpgrade) Fields() map[string]any {
	return map[string]any{"package_name": c.PackageName}
}

func (c CommitUpgrade) TypeArgs() map[contracts.TypeParamSlot]string { return nil }

func (c CommitUpgrade) ConsumesName() string { return c.Resource }

// RestrictUpgradePolicy stages a one-way tightening of a package's upgrade
// policy.
type RestrictUpgradePolicy struct {
	PackageName string
	Policy      uint8
}

func (RestrictUpgradePolicy) Kind() string { return catalog.KindRestrictUpgradePolicy }

func (c RestrictUpgradePolicy) Fields() map[string]any {
	return map[string]any{"package_name": c.PackageName, "policy": c.Policy}
}

func (c RestrictUpgradePolicy) TypeArgs() map[contracts.TypeParamSlot]string { return nil }
