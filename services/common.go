package services

import (
	"fmt"
	"strings"

	"github.com/l3montree-dev/incidentguard/monitoring"
	"github.com/l3montree-dev/incidentguard/shared"
)

// requirePermission fails with ErrAuthorizationDenied if the role of the claim
// does not hold the permission.
func requirePermission(authorizer shared.Authorizer, claim shared.Claim, permission shared.Permission) error {
	if authorizer.HasPermission(claim.Role, permission) {
		return nil
	}
	return denied(permission, fmt.Sprintf("role %q is missing permission %s", claim.Role, permission))
}

func denied(permission shared.Permission, msg string) error {
	monitoring.AuthorizationDeniedAmount.WithLabelValues(string(permission)).Inc()
	return shared.Denied(msg)
}

func validate(v any) error {
	if err := shared.V.Struct(v); err != nil {
		return shared.Invalid(err.Error())
	}
	return nil
}

func requireText(field, value string) error {
	if strings.TrimSpace(value) == "" {
		return shared.Invalid(fmt.Sprintf("%s must not be empty", field))
	}
	return nil
}
