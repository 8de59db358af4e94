package kernel

import (
	"fmt"

	"marketplace/internal/pkg/errs"
)

// Role identifies which side of the marketplace a user acts on. The workflow
// consumes roles to gate transitions: only managers propose custom orders,
// only admins cancel on behalf of others.
type Role int

const (
	// RoleUnknown represents an invalid or undefined role.
	RoleUnknown Role = iota

	// RoleBuyer purchases services and drives acceptance/revision.
	RoleBuyer

	// RoleSeller is an influencer fulfilling orders.
	RoleSeller

	// RoleManager brokers deals and proposes custom orders.
	RoleManager

	// RoleAdmin moderates the marketplace.
	RoleAdmin
)

func getRoleStrings() map[Role]string {
	return map[Role]string{
		RoleUnknown: "unknown",
		RoleBuyer:   "buyer",
		RoleSeller:  "seller",
		RoleManager: "manager",
		RoleAdmin:   "admin",
	}
}

// RoleFromString parses the persisted role name.
// Returns ValueIsInvalidError for unrecognized names.
func RoleFromString(s string) (Role, error) {
	for role, name := range getRoleStrings() {
		if role != RoleUnknown && name == s {
			return role, nil
		}
	}
	return RoleUnknown, errs.NewValueIsInvalidErrorWithCause("role",
		fmt.Errorf("%q is not a valid role", s))
}

// String returns the lowercase role name used in persistence and API payloads.
func (r Role) String() string {
	if name, ok := getRoleStrings()[r]; ok {
		return name
	}
	return "unknown"
}

// Validate checks the Role is one of the defined marketplace roles.
func (r Role) Validate() error {
	if r != RoleBuyer && r != RoleSeller && r != RoleManager && r != RoleAdmin {
		return errs.NewValueIsInvalidErrorWithCause("role",
			fmt.Errorf("%d is not a valid role", r))
	}
	return nil
}

// IsParticipant reports whether the role can be the recipient of a custom
// order proposal. Managers and admins broker or moderate; they are never the
// counterparty of a proposal.
func (r Role) IsParticipant() bool {
	return r == RoleBuyer || r == RoleSeller
}
