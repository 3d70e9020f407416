package commands

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/l3montree-dev/incidentguard/accesscontrol"
	"github.com/l3montree-dev/incidentguard/shared"
	"github.com/spf13/cobra"
)

// NewTokenCommand issues a bearer token for a user. The identity provider is
// out of scope, so operators use this to hand out tokens for tests and
// automation.
func NewTokenCommand() *cobra.Command {
	token := &cobra.Command{
		Use:   "token",
		Short: "Issue a signed bearer token",
		Args:  cobra.ExactArgs(0),
		RunE: func(cmd *cobra.Command, args []string) error {
			secret, _ := cmd.Flags().GetString("secret")
			if secret == "" {
				secret = shared.GetEnvOrDefault("JWT_SECRET", "")
			}
			rawID, _ := cmd.Flags().GetString("user-id")
			name, _ := cmd.Flags().GetString("name")
			email, _ := cmd.Flags().GetString("email")
			role, _ := cmd.Flags().GetString("role")
			ttl, _ := cmd.Flags().GetDuration("ttl")

			id := uuid.New()
			if rawID != "" {
				parsed, err := uuid.Parse(rawID)
				if err != nil {
					return fmt.Errorf("invalid user id: %w", err)
				}
				id = parsed
			}

			if !shared.Role(role).IsValid() {
				return fmt.Errorf("unknown role %q", role)
			}

			verifier, err := accesscontrol.NewTokenVerifier([]byte(secret))
			if err != nil {
				return err
			}

			signed, err := verifier.Issue(shared.Claim{
				ID:    id,
				Name:  name,
				Email: email,
				Role:  shared.Role(role),
			}, ttl)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), signed)
			return nil
		},
	}

	token.Flags().String("secret", "", "HS256 secret, defaults to JWT_SECRET")
	token.Flags().String("user-id", "", "user id, a random one is generated if empty")
	token.Flags().String("name", "", "display name")
	token.Flags().String("email", "", "email address")
	token.Flags().String("role", string(shared.RoleViewer), "role: viewer, editor or admin")
	token.Flags().Duration("ttl", 24*time.Hour, "lifetime of the token")
	return token
}
