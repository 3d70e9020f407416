package commands

import (
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/l3montree-dev/incidentguard/accesscontrol"
	"github.com/l3montree-dev/incidentguard/shared"
	"github.com/spf13/cobra"
)

var matrixRoles = []shared.Role{shared.RoleViewer, shared.RoleEditor, shared.RoleAdmin}

func renderPermissionMatrix(authorizer shared.Authorizer) string {
	tw := table.NewWriter()

	header := table.Row{"Permission"}
	for _, role := range matrixRoles {
		header = append(header, string(role))
	}
	tw.AppendHeader(header)

	for _, permission := range shared.AllPermissions {
		row := table.Row{string(permission)}
		for _, role := range matrixRoles {
			if authorizer.HasPermission(role, permission) {
				row = append(row, text.FgGreen.Sprint("yes"))
			} else {
				row = append(row, "-")
			}
		}
		tw.AppendRow(row)
	}

	return tw.Render()
}

func NewPermissionsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "permissions",
		Short: "Print the permissions of every role",
		Args:  cobra.ExactArgs(0),
		RunE: func(cmd *cobra.Command, args []string) error {
			authorizer, err := accesscontrol.NewCasbinAuthorizer()
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderPermissionMatrix(authorizer))
			return nil
		},
	}
}
