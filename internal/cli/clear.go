package cli

import (
	"errors"
	"fmt"

	service "github.com/Chimelu/hafak-surgicals-backend/internal/services"
	"github.com/spf13/cobra"
)

var errNotConfirmed = errors.New("refusing to clear the database without --yes")

func (a *app) clearCmd() *cobra.Command {

	var confirmed bool

	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Delete every row from every table",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !confirmed {
				return errNotConfirmed
			}

			return a.withMaintenance(cmd.Context(), func(svc service.MaintenanceService) error {

				removed, err := svc.Clear(cmd.Context())
				if err != nil {
					return err
				}

				w := cmd.OutOrStdout()

				fmt.Fprintln(w, "🗑️  Removed rows:")
				printCounts(w, removed)
				fmt.Fprintln(w, "✅ Database cleared")
				return nil
			})
		},
	}

	cmd.Flags().BoolVar(&confirmed, "yes", false, "confirm that all data should be deleted")

	return cmd
}
