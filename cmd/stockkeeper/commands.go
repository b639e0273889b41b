package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"stockkeeper/internal/cli"
	"stockkeeper/internal/inventory"
	"stockkeeper/internal/repo"
)

func newListCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all products",
		RunE: func(cmd *cobra.Command, args []string) error {
			products, err := a.manager.Products()
			if err != nil {
				return err
			}
			if len(products) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No products in inventory.")
				return nil
			}
			cli.PrintProductTable(cmd.OutOrStdout(), products)
			return nil
		},
	}
}

func newShowCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "show SKU",
		Short: "Show one product",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			product, err := a.manager.Product(strings.ToUpper(args[0]))
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "SKU:           %s\n", product.SKU)
			fmt.Fprintf(out, "Name:          %s\n", product.Name)
			fmt.Fprintf(out, "Category:      %s\n", product.Category)
			fmt.Fprintf(out, "Price:         $%.2f\n", product.Price)
			fmt.Fprintf(out, "Quantity:      %d\n", product.Quantity)
			fmt.Fprintf(out, "Description:   %s\n", product.Description)
			fmt.Fprintf(out, "Reorder Level: %d\n", product.ReorderLevel)
			fmt.Fprintf(out, "Supplier:      %s\n", product.Supplier)
			fmt.Fprintf(out, "Created:       %s\n", product.CreatedAt)
			fmt.Fprintf(out, "Last Updated:  %s\n", product.UpdatedAt)
			return nil
		},
	}
}

func newAddCmd(a *app) *cobra.Command {
	var in inventory.ProductInput
	var reorderLevel int

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a new product",
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("reorder-level") {
				in.ReorderLevel = &reorderLevel
			}
			product, err := a.manager.AddProduct(in)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Product '%s' added with SKU: %s\n", product.Name, product.SKU)
			return nil
		},
	}

	cmd.Flags().StringVar(&in.SKU, "sku", "", "custom SKU (auto-generated when empty)")
	cmd.Flags().StringVar(&in.Name, "name", "", "product name")
	cmd.Flags().StringVar(&in.Category, "category", "", "category")
	cmd.Flags().Float64Var(&in.Price, "price", 0, "unit price")
	cmd.Flags().IntVar(&in.Quantity, "quantity", 0, "initial quantity")
	cmd.Flags().StringVar(&in.Description, "description", "", "description")
	cmd.Flags().IntVar(&reorderLevel, "reorder-level", 0, "reorder threshold")
	cmd.Flags().StringVar(&in.Supplier, "supplier", "", "supplier name")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("category")
	return cmd
}

func newDeleteCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "delete SKU",
		Short: "Delete a product",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sku := strings.ToUpper(args[0])
			if err := a.manager.DeleteProduct(sku); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Product %s deleted\n", sku)
			return nil
		},
	}
}

func parseQuantityArg(arg string) (int, error) {
	quantity, err := strconv.Atoi(arg)
	if err != nil {
		return 0, fmt.Errorf("invalid quantity %q", arg)
	}
	return quantity, nil
}

func newAddStockCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "add-stock SKU QUANTITY",
		Short: "Add stock to a product",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			quantity, err := parseQuantityArg(args[1])
			if err != nil {
				return err
			}
			product, err := a.manager.AddStock(strings.ToUpper(args[0]), quantity)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Added %d units to '%s'. New quantity: %d\n",
				quantity, product.Name, product.Quantity)
			return nil
		},
	}
}

func newRemoveStockCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "remove-stock SKU QUANTITY",
		Short: "Remove stock from a product",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			quantity, err := parseQuantityArg(args[1])
			if err != nil {
				return err
			}
			product, err := a.manager.RemoveStock(strings.ToUpper(args[0]), quantity)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Removed %d units from '%s'. Remaining: %d\n",
				quantity, product.Name, product.Quantity)
			return nil
		},
	}
}

func newSearchCmd(a *app) *cobra.Command {
	var filter repo.ProductFilter
	var minPrice, maxPrice float64
	var minQty, maxQty, offset, limit int

	cmd := &cobra.Command{
		Use:   "search",
		Short: "Search and filter products",
		RunE: func(cmd *cobra.Command, args []string) error {
			flags := cmd.Flags()
			if flags.Changed("min-price") {
				filter.MinPrice = &minPrice
			}
			if flags.Changed("max-price") {
				filter.MaxPrice = &maxPrice
			}
			if flags.Changed("min-qty") {
				filter.MinQty = &minQty
			}
			if flags.Changed("max-qty") {
				filter.MaxQty = &maxQty
			}
			if flags.Changed("offset") {
				filter.Offset = &offset
			}
			if flags.Changed("limit") {
				filter.Limit = &limit
			}

			products, total, err := a.manager.Filter(filter)
			if err != nil {
				return err
			}
			if total == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No products found matching your search.")
				return nil
			}
			cli.PrintProductTable(cmd.OutOrStdout(), products)
			if len(products) < total {
				fmt.Fprintf(cmd.OutOrStdout(), "(showing %d of %d matches)\n", len(products), total)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&filter.Name, "name", "", "name substring")
	cmd.Flags().StringVar(&filter.Category, "category", "", "exact category")
	cmd.Flags().StringVar(&filter.Supplier, "supplier", "", "supplier substring")
	cmd.Flags().Float64Var(&minPrice, "min-price", 0, "minimum price")
	cmd.Flags().Float64Var(&maxPrice, "max-price", 0, "maximum price")
	cmd.Flags().IntVar(&minQty, "min-qty", 0, "minimum quantity")
	cmd.Flags().IntVar(&maxQty, "max-qty", 0, "maximum quantity")
	cmd.Flags().IntVar(&offset, "offset", 0, "paging offset")
	cmd.Flags().IntVar(&limit, "limit", 0, "paging limit")
	return cmd
}

func newLowStockCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "low-stock",
		Short: "List products at or below their reorder level",
		RunE: func(cmd *cobra.Command, args []string) error {
			low, err := a.manager.LowStock()
			if err != nil {
				return err
			}
			if len(low) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No products are low on stock.")
				return nil
			}
			cli.PrintProductTable(cmd.OutOrStdout(), low)
			return nil
		},
	}
}

func newReportCmd(a *app) *cobra.Command {
	var metricsOnly bool

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Print the inventory report",
		RunE: func(cmd *cobra.Command, args []string) error {
			if metricsOnly {
				metrics, err := a.manager.Metrics()
				if err != nil {
					return err
				}
				out := cmd.OutOrStdout()
				fmt.Fprintf(out, "Total Products:  %d\n", metrics.TotalProducts)
				fmt.Fprintf(out, "Total Movements: %d\n", metrics.TotalMovements)
				fmt.Fprintf(out, "Low Stock Count: %d\n", metrics.LowStockCount)
				if metrics.MostMovedProduct.Name != "" {
					fmt.Fprintf(out, "Most Moved:      %s (%d movements)\n",
						metrics.MostMovedProduct.Name, metrics.MostMovedProduct.MovementCount)
				}
				return nil
			}

			report, err := a.manager.Report()
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), report.Render())
			return nil
		},
	}

	cmd.Flags().BoolVar(&metricsOnly, "metrics", false, "print the compact dashboard metrics instead")
	return cmd
}

func newMovementsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "movements SKU",
		Short: "Show the stock movement history of a product",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			movements, total, err := a.manager.Movements(strings.ToUpper(args[0]), repo.MovementFilter{})
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if total == 0 {
				fmt.Fprintln(out, "No movements recorded.")
				return nil
			}
			for _, m := range movements {
				fmt.Fprintf(out, "%s  %+d  %s\n", m.CreatedAt, m.Delta, m.Note)
			}
			return nil
		},
	}
}

func newExportCmd(a *app) *cobra.Command {
	var outputPath string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export products as CSV",
		RunE: func(cmd *cobra.Command, args []string) error {
			if outputPath == "" {
				return a.manager.ExportCSV(cmd.OutOrStdout())
			}
			f, err := os.Create(outputPath)
			if err != nil {
				return err
			}
			defer f.Close()
			if err := a.manager.ExportCSV(f); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Exported to %s\n", outputPath)
			return nil
		},
	}

	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "write CSV to file instead of stdout")
	return cmd
}

func newImportCmd(a *app) *cobra.Command {
	var mode string

	cmd := &cobra.Command{
		Use:   "import FILE",
		Short: "Import products from a CSV file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(args[0])
			if err != nil {
				return err
			}
			defer f.Close()

			result, err := a.manager.ImportCSV(f, inventory.ImportMode(mode))
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Imported %d product(s)\n", result.Imported)
			for _, rowErr := range result.Errors {
				fmt.Fprintf(out, "row %d: %s\n", rowErr.Row, rowErr.Description)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&mode, "mode", "skip", "collision handling: skip or update")
	return cmd
}

func newBackupCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "backup",
		Short: "Copy the data file to a backup",
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := a.manager.Backup()
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Backup created at %s\n", path)
			return nil
		},
	}
}

func newClearCmd(a *app) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Remove every product and the movement history",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !yes {
				return fmt.Errorf("refusing to clear the inventory without --yes")
			}
			if err := a.manager.Clear(); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "All products have been removed from inventory.")
			return nil
		},
	}

	cmd.Flags().BoolVar(&yes, "yes", false, "confirm clearing the whole inventory")
	return cmd
}
