package cli

import (
	"fmt"

	service "github.com/Chimelu/hafak-surgicals-backend/internal/services"
	"github.com/spf13/cobra"
)

func (a *app) checkCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Print row counts and the current contents of each table",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withMaintenance(cmd.Context(), func(svc service.MaintenanceService) error {

				report, err := svc.Check(cmd.Context())
				if err != nil {
					return err
				}

				w := cmd.OutOrStdout()

				fmt.Fprintln(w, "📊 Row counts:")
				printCounts(w, report.Counts)

				fmt.Fprintln(w, "\n👤 Users:")
				for _, user := range report.Users {
					fmt.Fprintf(w, "  %s <%s> %s\n", user.Username, user.Email, user.Role)
				}

				fmt.Fprintln(w, "\n📁 Categories:")
				for _, category := range report.Categories {
					fmt.Fprintf(w, "  %s (%s) status=%s\n", category.Name, category.Slug, category.Status)
				}

				fmt.Fprintln(w, "\n🩺 Equipment:")
				for _, item := range report.Equipment {
					fmt.Fprintf(w, "  %s in %s, %s, public=%t featured=%t\n",
						item.Name, categoryName(item), formatPrice(item), item.IsPublic, item.IsFeatured)
				}

				if len(report.Products) > 0 {
					fmt.Fprintln(w, "\n📦 Legacy products:")
					for _, product := range report.Products {
						fmt.Fprintf(w, "  %s (%s)\n", product.Name, product.Category)
					}
				}

				return nil
			})
		},
	}
}
