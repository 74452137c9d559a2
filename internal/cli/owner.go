package cli

import (
	"fmt"

	service "github.com/Chimelu/hafak-surgicals-backend/internal/services"
	"github.com/spf13/cobra"
)

func (a *app) createOwnerCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "create-owner",
		Short: "Create the super_admin owner account if it does not exist",
		Long:  "Creates the owner account from OWNER_USERNAME, OWNER_EMAIL and OWNER_PASSWORD. Without OWNER_PASSWORD a random password is generated and printed once.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withMaintenance(cmd.Context(), func(svc service.MaintenanceService) error {

				owner, err := svc.CreateOwner(cmd.Context())
				if err != nil {
					return fmt.Errorf("creating owner user: %w", err)
				}

				printOwner(cmd.OutOrStdout(), owner)
				return nil
			})
		},
	}
}
