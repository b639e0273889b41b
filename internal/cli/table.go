package cli

import (
	"fmt"
	"io"
	"text/tabwriter"

	"stockkeeper/internal/models"
)

// PrintProductTable renders products as an aligned table with a status
// column flagging low stock.
func PrintProductTable(out io.Writer, products []models.Product) {
	if len(products) == 0 {
		return
	}

	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "SKU\tNAME\tCATEGORY\tPRICE\tQTY\tVALUE\tSTATUS")
	for _, p := range products {
		status := "OK"
		if p.IsLowStock() {
			status = "LOW"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t$%.2f\t%d\t$%.2f\t%s\n",
			p.SKU, truncate(p.Name, 24), truncate(p.Category, 14),
			p.Price, p.Quantity, p.TotalValue(), status)
	}
	w.Flush()
	fmt.Fprintf(out, "Total: %d products\n", len(products))
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max]
}
