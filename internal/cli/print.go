package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/Chimelu/hafak-surgicals-backend/internal/models"
	service "github.com/Chimelu/hafak-surgicals-backend/internal/services"
)

// tableOrder fixes the order row counts are printed in.
var tableOrder = []string{"users", "categories", "equipment", "products"}

var rule = strings.Repeat("=", 40)

func printOwner(w io.Writer, owner *service.OwnerResult) {
	if !owner.Created {
		fmt.Fprintln(w, "Owner user already exists!")
		fmt.Fprintf(w, "Username: %s\n", owner.User.Username)
		fmt.Fprintf(w, "Email: %s\n", owner.User.Email)
		fmt.Fprintf(w, "Role: %s\n", owner.User.Role)
		return
	}

	fmt.Fprintln(w, "✅ Owner user created successfully!")
	fmt.Fprintln(w, rule)
	fmt.Fprintf(w, "Username: %s\n", owner.User.Username)
	fmt.Fprintf(w, "Password: %s\n", owner.Password)
	fmt.Fprintf(w, "Email: %s\n", owner.User.Email)
	fmt.Fprintf(w, "Role: %s\n", owner.User.Role)
	fmt.Fprintln(w, rule)
	fmt.Fprintln(w, "⚠️  IMPORTANT: Change this password after first login!")
}

func printCounts[T int | int64](w io.Writer, counts map[string]T) {
	for _, table := range tableOrder {
		if n, ok := counts[table]; ok {
			fmt.Fprintf(w, "  %-12s %d\n", table+":", n)
		}
	}
}

func formatPrice(item *models.Equipment) string {
	if !item.Price.Valid {
		return "no price"
	}

	return item.Price.Decimal.StringFixed(2)
}

func categoryName(item *models.Equipment) string {
	if item.Category == nil {
		return item.CategoryID.String()
	}

	return item.Category.Name
}
