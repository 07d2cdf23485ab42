package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"ngoconnect-web/backend"
	"ngoconnect-web/config"
	"ngoconnect-web/identity"
	"ngoconnect-web/models"
)

func init() {
	whoamiCmd.Flags().String("token", "", "bearer token to resolve")
	whoamiCmd.Flags().String("role", "", "role to try first (ngo or user)")
	_ = whoamiCmd.MarkFlagRequired("token")
	rootCmd.AddCommand(whoamiCmd)
}

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Resolve a token against the backend and print the identity",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		token, _ := cmd.Flags().GetString("token")
		role, _ := cmd.Flags().GetString("role")

		cfg := config.Load()
		api := backend.NewClient(cfg.BackendURL, cfg.BackendTimeout)
		resolver := identity.NewResolver(api)

		acc, resolved, err := resolver.Account(cmd.Context(), token, models.ParseRole(role))
		if err != nil {
			return fmt.Errorf("%s: %w", backend.Message(err), err)
		}

		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(struct {
			Identity models.Identity `json:"identity"`
			Account  models.Account  `json:"account"`
		}{models.IdentityFor(resolved, acc.ID), acc})
	},
}
