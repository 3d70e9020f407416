// Copyright (C) 2023 Tim Bastin, l3montree GmbH
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as
// published by the Free Software Foundation, either version 3 of the
// License, or (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <http://www.gnu.org/licenses/>.

package accesscontrol

import (
	_ "embed"
	"fmt"
	"strings"

	"github.com/casbin/casbin/v2"
	"github.com/casbin/casbin/v2/model"
	"github.com/l3montree-dev/incidentguard/shared"
)

//go:embed rbac_model.conf
var rbacModel string

var _ shared.Authorizer = &casbinAuthorizer{}

// casbinAuthorizer keeps the static role matrix in a casbin enforcer and
// materializes the implicit permissions of every role once, so that
// lookups never touch the enforcer.
type casbinAuthorizer struct {
	enforcer    *casbin.SyncedEnforcer
	permissions map[shared.Role]map[shared.Permission]struct{}
}

func NewCasbinAuthorizer() (*casbinAuthorizer, error) {
	enforcer, err := buildEnforcer()
	if err != nil {
		return nil, err
	}

	a := &casbinAuthorizer{
		enforcer:    enforcer,
		permissions: make(map[shared.Role]map[shared.Permission]struct{}),
	}

	for _, role := range []shared.Role{shared.RoleViewer, shared.RoleEditor, shared.RoleAdmin} {
		policies, err := enforcer.GetImplicitPermissionsForUser("role::" + string(role))
		if err != nil {
			return nil, fmt.Errorf("could not resolve permissions of role %s: %w", role, err)
		}
		set := make(map[shared.Permission]struct{}, len(policies))
		for _, p := range policies {
			if len(p) < 3 {
				continue
			}
			set[toPermission(p[1], p[2])] = struct{}{}
		}
		a.permissions[role] = set
	}

	return a, nil
}

func buildEnforcer() (*casbin.SyncedEnforcer, error) {
	m, err := model.NewModelFromString(rbacModel)
	if err != nil {
		return nil, fmt.Errorf("could not parse rbac model: %w", err)
	}

	e, err := casbin.NewSyncedEnforcer(m)
	if err != nil {
		return nil, err
	}
	e.EnableLog(false)

	if err := bootstrapRoles(e); err != nil {
		return nil, err
	}
	return e, nil
}

// bootstrapRoles writes the static matrix. admin inherits editor, editor
// inherits viewer.
func bootstrapRoles(e *casbin.SyncedEnforcer) error {
	if err := inheritRole(e, shared.RoleAdmin, shared.RoleEditor); err != nil {
		return err
	}
	if err := inheritRole(e, shared.RoleEditor, shared.RoleViewer); err != nil {
		return err
	}

	if err := allowRole(e, shared.RoleViewer,
		shared.PermissionViewIncidents,
		shared.PermissionViewTags,
		shared.PermissionViewTemplates,
		shared.PermissionViewPostMortems,
		shared.PermissionViewStats,
	); err != nil {
		return err
	}

	if err := allowRole(e, shared.RoleEditor,
		shared.PermissionCreateIncidents,
		shared.PermissionEditIncidents,
		shared.PermissionDeleteIncidents,
		shared.PermissionManageTags,
		shared.PermissionManageTemplates,
		shared.PermissionManagePostMortems,
		shared.PermissionExportData,
	); err != nil {
		return err
	}

	return allowRole(e, shared.RoleAdmin,
		shared.PermissionViewUsers,
		shared.PermissionManageUsers,
	)
}

func inheritRole(e *casbin.SyncedEnforcer, roleWhichGetsPermissions, roleWhichProvidesPermissions shared.Role) error {
	_, err := e.AddGroupingPolicy("role::"+string(roleWhichGetsPermissions), "role::"+string(roleWhichProvidesPermissions))
	return err
}

func allowRole(e *casbin.SyncedEnforcer, role shared.Role, permissions ...shared.Permission) error {
	policies := make([][]string, 0, len(permissions))
	for _, p := range permissions {
		obj, act := splitPermission(p)
		policies = append(policies, []string{"role::" + string(role), "obj::" + obj, "act::" + act})
	}
	_, err := e.AddPolicies(policies)
	return err
}

// splitPermission maps "view_incidents" to object "incidents" and action "view".
func splitPermission(p shared.Permission) (string, string) {
	act, obj, _ := strings.Cut(string(p), "_")
	return obj, act
}

func toPermission(obj, act string) shared.Permission {
	return shared.Permission(strings.TrimPrefix(act, "act::") + "_" + strings.TrimPrefix(obj, "obj::"))
}

func (a *casbinAuthorizer) HasPermission(role shared.Role, permission shared.Permission) bool {
	set, ok := a.permissions[role]
	if !ok {
		return false
	}
	_, ok = set[permission]
	return ok
}

// HasAny is false for an empty list.
func (a *casbinAuthorizer) HasAny(role shared.Role, permissions ...shared.Permission) bool {
	for _, p := range permissions {
		if a.HasPermission(role, p) {
			return true
		}
	}
	return false
}

// HasAll is true for an empty list only if the role is known.
func (a *casbinAuthorizer) HasAll(role shared.Role, permissions ...shared.Permission) bool {
	if _, ok := a.permissions[role]; !ok {
		return false
	}
	for _, p := range permissions {
		if !a.HasPermission(role, p) {
			return false
		}
	}
	return true
}

func (a *casbinAuthorizer) PermissionsOf(role shared.Role) []shared.Permission {
	res := make([]shared.Permission, 0)
	for _, p := range shared.AllPermissions {
		if a.HasPermission(role, p) {
			res = append(res, p)
		}
	}
	return res
}

// Enforce asks the enforcer directly. It is slower than HasPermission and
// only used to cross check the materialized matrix.
func (a *casbinAuthorizer) Enforce(role shared.Role, permission shared.Permission) (bool, error) {
	obj, act := splitPermission(permission)
	return a.enforcer.Enforce("role::"+string(role), "obj::"+obj, "act::"+act)
}
