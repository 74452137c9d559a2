package cli

import (
	"fmt"

	service "github.com/Chimelu/hafak-surgicals-backend/internal/services"
	"github.com/spf13/cobra"
)

func (a *app) seedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Replace the catalog with sample data",
		Long:  "Ensures the owner account exists, removes all categories and equipment, then inserts the sample catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withMaintenance(cmd.Context(), func(svc service.MaintenanceService) error {

				report, err := svc.Seed(cmd.Context())
				if err != nil {
					return fmt.Errorf("seeding database: %w", err)
				}

				w := cmd.OutOrStdout()

				printOwner(w, report.Owner)

				fmt.Fprintln(w, "\n🧹 Cleared existing catalog data:")
				printCounts(w, report.Removed)

				fmt.Fprintf(w, "\n📁 Created %d categories:\n", len(report.Categories))
				for _, category := range report.Categories {
					fmt.Fprintf(w, "  %s %s (%s)\n", category.Icon, category.Name, category.Slug)
				}

				fmt.Fprintf(w, "\n🩺 Created %d equipment items:\n", len(report.Equipment))
				for _, item := range report.Equipment {
					fmt.Fprintf(w, "  %s in %s, %s\n", item.Name, categoryName(item), formatPrice(item))
				}

				fmt.Fprintln(w, "\n🎉 Database seeded successfully!")
				return nil
			})
		},
	}
}
