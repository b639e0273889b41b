// Package cli implements the interactive menu-driven console front-end.
// It is thin glue over inventory.Manager: prompts, a numbered menu and
// tabular output, nothing else.
package cli

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"stockkeeper/internal/inventory"
	"stockkeeper/internal/models"
)

// Console runs the interactive menu loop against a manager.
type Console struct {
	manager *inventory.Manager
	in      *bufio.Scanner
	out     io.Writer
}

// New creates a console reading choices from in and printing to out.
func New(manager *inventory.Manager, in io.Reader, out io.Writer) *Console {
	return &Console{
		manager: manager,
		in:      bufio.NewScanner(in),
		out:     out,
	}
}

// Run executes the menu loop until the user exits or input ends.
func (c *Console) Run() error {
	rule := strings.Repeat("=", 50)
	fmt.Fprintf(c.out, "\n%s\n  INVENTORY MANAGEMENT SYSTEM\n%s\n", rule, rule)

	for {
		c.showMenu()
		choice, ok := c.prompt("\nEnter your choice (1-12): ")
		if !ok {
			return nil
		}

		switch choice {
		case "1":
			c.addProduct()
		case "2":
			c.viewAllProducts()
		case "3":
			c.viewProduct()
		case "4":
			c.updateProduct()
		case "5":
			c.deleteProduct()
		case "6":
			c.addStock()
		case "7":
			c.removeStock()
		case "8":
			c.searchProducts()
		case "9":
			c.viewLowStock()
		case "10":
			c.viewReport()
		case "11":
			c.backupData()
		case "12":
			fmt.Fprintln(c.out, "\nThank you for using the Inventory Management System!")
			fmt.Fprintln(c.out, "Goodbye!")
			return nil
		default:
			c.warn("Invalid choice. Please try again.")
		}
	}
}

func (c *Console) showMenu() {
	rule := strings.Repeat("-", 40)
	fmt.Fprintf(c.out, "\n%s\nMAIN MENU\n%s\n", rule, rule)
	fmt.Fprintln(c.out, "1.  Add New Product")
	fmt.Fprintln(c.out, "2.  View All Products")
	fmt.Fprintln(c.out, "3.  View Product Details")
	fmt.Fprintln(c.out, "4.  Update Product")
	fmt.Fprintln(c.out, "5.  Delete Product")
	fmt.Fprintln(c.out, "6.  Add Stock")
	fmt.Fprintln(c.out, "7.  Remove Stock (Sale)")
	fmt.Fprintln(c.out, "8.  Search Products")
	fmt.Fprintln(c.out, "9.  View Low Stock Items")
	fmt.Fprintln(c.out, "10. Generate Inventory Report")
	fmt.Fprintln(c.out, "11. Backup Data")
	fmt.Fprintln(c.out, "12. Exit")
	fmt.Fprintln(c.out, rule)
}

// prompt prints the label and reads one trimmed line. ok is false when the
// input stream has ended.
func (c *Console) prompt(label string) (value string, ok bool) {
	fmt.Fprint(c.out, label)
	if !c.in.Scan() {
		return "", false
	}
	return strings.TrimSpace(c.in.Text()), true
}

func (c *Console) warn(format string, args ...any) {
	fmt.Fprintf(c.out, "\n[!] "+format+"\n", args...)
}

func (c *Console) info(format string, args ...any) {
	fmt.Fprintf(c.out, "\n[✓] "+format+"\n", args...)
}

func (c *Console) addProduct() {
	fmt.Fprintln(c.out, "\n--- Add New Product ---")

	name, ok := c.prompt("Product Name: ")
	if !ok || name == "" {
		c.warn("Product name cannot be empty.")
		return
	}
	category, ok := c.prompt("Category: ")
	if !ok || category == "" {
		c.warn("Category cannot be empty.")
		return
	}

	priceStr, _ := c.prompt("Price: $")
	price, err := strconv.ParseFloat(priceStr, 64)
	if err != nil {
		c.warn("Invalid number format.")
		return
	}
	qtyStr, _ := c.prompt("Initial Quantity: ")
	quantity, err := strconv.Atoi(qtyStr)
	if err != nil {
		c.warn("Invalid number format.")
		return
	}

	description, _ := c.prompt("Description (optional): ")

	var reorderLevel *int
	if s, _ := c.prompt("Reorder Level (default: 10): "); s != "" {
		if n, err := strconv.Atoi(s); err == nil {
			reorderLevel = &n
		}
	}

	supplier, _ := c.prompt("Supplier (optional): ")
	sku, _ := c.prompt("Custom SKU (press Enter for auto-generated): ")

	product, err := c.manager.AddProduct(inventory.ProductInput{
		SKU:          sku,
		Name:         name,
		Category:     category,
		Price:        price,
		Quantity:     quantity,
		Description:  description,
		ReorderLevel: reorderLevel,
		Supplier:     supplier,
	})
	if err != nil {
		c.warn("%v", err)
		return
	}
	c.info("Product '%s' added with SKU: %s", product.Name, product.SKU)
}

func (c *Console) viewAllProducts() {
	products, err := c.manager.Products()
	if err != nil {
		c.warn("%v", err)
		return
	}
	if len(products) == 0 {
		c.warn("No products in inventory.")
		return
	}
	fmt.Fprintln(c.out, "\n--- All Products ---")
	PrintProductTable(c.out, products)
}

func (c *Console) viewProduct() {
	fmt.Fprintln(c.out, "\n--- View Product Details ---")

	sku, _ := c.prompt("Enter Product SKU: ")
	product, err := c.manager.Product(strings.ToUpper(sku))
	if err != nil {
		c.warn("Product with SKU '%s' not found.", strings.ToUpper(sku))
		return
	}

	status := "OK"
	if product.IsLowStock() {
		status = "LOW STOCK!"
	}
	rule := strings.Repeat("-", 40)
	fmt.Fprintln(c.out, "\n"+rule)
	fmt.Fprintf(c.out, "SKU:           %s\n", product.SKU)
	fmt.Fprintf(c.out, "Name:          %s\n", product.Name)
	fmt.Fprintf(c.out, "Category:      %s\n", product.Category)
	fmt.Fprintf(c.out, "Price:         $%.2f\n", product.Price)
	fmt.Fprintf(c.out, "Quantity:      %d\n", product.Quantity)
	fmt.Fprintf(c.out, "Description:   %s\n", orNA(product.Description))
	fmt.Fprintf(c.out, "Reorder Level: %d\n", product.ReorderLevel)
	fmt.Fprintf(c.out, "Supplier:      %s\n", orNA(product.Supplier))
	fmt.Fprintf(c.out, "Created:       %s\n", product.CreatedAt)
	fmt.Fprintf(c.out, "Last Updated:  %s\n", product.UpdatedAt)
	fmt.Fprintf(c.out, "Total Value:   $%.2f\n", product.TotalValue())
	fmt.Fprintf(c.out, "Stock Status:  %s\n", status)
	fmt.Fprintln(c.out, rule)
}

func (c *Console) updateProduct() {
	fmt.Fprintln(c.out, "\n--- Update Product ---")

	sku, _ := c.prompt("Enter Product SKU to update: ")
	sku = strings.ToUpper(sku)
	product, err := c.manager.Product(sku)
	if err != nil {
		c.warn("Product with SKU '%s' not found.", sku)
		return
	}

	fmt.Fprintf(c.out, "\nCurrent product: %s\n", product.Name)
	fmt.Fprintln(c.out, "(Press Enter to keep current value)")
	fmt.Fprintln(c.out)

	changes := inventory.ProductUpdate{}
	if s, _ := c.prompt(fmt.Sprintf("Name [%s]: ", product.Name)); s != "" {
		changes.Name = &s
	}
	if s, _ := c.prompt(fmt.Sprintf("Category [%s]: ", product.Category)); s != "" {
		changes.Category = &s
	}
	if s, _ := c.prompt(fmt.Sprintf("Price [$%.2f]: $", product.Price)); s != "" {
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			c.warn("Invalid number format. Update cancelled.")
			return
		}
		changes.Price = &v
	}
	if s, _ := c.prompt(fmt.Sprintf("Quantity [%d]: ", product.Quantity)); s != "" {
		v, err := strconv.Atoi(s)
		if err != nil {
			c.warn("Invalid number format. Update cancelled.")
			return
		}
		changes.Quantity = &v
	}
	if s, _ := c.prompt(fmt.Sprintf("Description [%s]: ", orNA(product.Description))); s != "" {
		changes.Description = &s
	}
	if s, _ := c.prompt(fmt.Sprintf("Reorder Level [%d]: ", product.ReorderLevel)); s != "" {
		v, err := strconv.Atoi(s)
		if err != nil {
			c.warn("Invalid number format. Update cancelled.")
			return
		}
		changes.ReorderLevel = &v
	}
	if s, _ := c.prompt(fmt.Sprintf("Supplier [%s]: ", orNA(product.Supplier))); s != "" {
		changes.Supplier = &s
	}

	if _, err := c.manager.UpdateProduct(sku, changes); err != nil {
		c.warn("%v", err)
		return
	}
	c.info("Product '%s' updated successfully", sku)
}

func (c *Console) deleteProduct() {
	fmt.Fprintln(c.out, "\n--- Delete Product ---")

	sku, _ := c.prompt("Enter Product SKU to delete: ")
	sku = strings.ToUpper(sku)
	product, err := c.manager.Product(sku)
	if err != nil {
		c.warn("Product with SKU '%s' not found.", sku)
		return
	}

	confirm, _ := c.prompt(fmt.Sprintf("Are you sure you want to delete '%s'? (yes/no): ", product.Name))
	if strings.ToLower(confirm) != "yes" {
		fmt.Fprintln(c.out, "\n[i] Deletion cancelled.")
		return
	}

	if err := c.manager.DeleteProduct(sku); err != nil {
		c.warn("%v", err)
		return
	}
	c.info("Product '%s' (SKU: %s) deleted", product.Name, sku)
}

func (c *Console) addStock() {
	fmt.Fprintln(c.out, "\n--- Add Stock ---")
	c.adjustStock(true)
}

func (c *Console) removeStock() {
	fmt.Fprintln(c.out, "\n--- Remove Stock (Sale) ---")
	c.adjustStock(false)
}

func (c *Console) adjustStock(add bool) {
	sku, _ := c.prompt("Enter Product SKU: ")
	sku = strings.ToUpper(sku)
	product, err := c.manager.Product(sku)
	if err != nil {
		c.warn("Product with SKU '%s' not found.", sku)
		return
	}

	fmt.Fprintf(c.out, "Current stock for '%s': %d\n", product.Name, product.Quantity)

	label := "Quantity to add: "
	if !add {
		label = "Quantity to remove: "
	}
	qtyStr, _ := c.prompt(label)
	quantity, err := strconv.Atoi(qtyStr)
	if err != nil {
		c.warn("Invalid quantity.")
		return
	}

	if add {
		updated, err := c.manager.AddStock(sku, quantity)
		if err != nil {
			c.warn("%v", err)
			return
		}
		c.info("Added %d units to '%s'. New quantity: %d", quantity, updated.Name, updated.Quantity)
		return
	}

	updated, err := c.manager.RemoveStock(sku, quantity)
	if err != nil {
		if err == inventory.ErrInsufficientStock {
			c.warn("Insufficient stock. Available: %d, Requested: %d", product.Quantity, quantity)
			return
		}
		c.warn("%v", err)
		return
	}
	c.info("Removed %d units from '%s'. Remaining: %d", quantity, updated.Name, updated.Quantity)
}

func (c *Console) searchProducts() {
	fmt.Fprintln(c.out, "\n--- Search Products ---")
	fmt.Fprintln(c.out, "1. Search by Name")
	fmt.Fprintln(c.out, "2. Search by Category")
	fmt.Fprintln(c.out, "3. Search by Supplier")

	choice, _ := c.prompt("\nSearch option (1-3): ")

	var (
		found []models.Product
		err   error
	)

	switch choice {
	case "1":
		query, _ := c.prompt("Enter name to search: ")
		found, err = c.manager.SearchByName(query)
	case "2":
		if categories, cerr := c.manager.Categories(); cerr == nil && len(categories) > 0 {
			fmt.Fprintf(c.out, "Available categories: %s\n", strings.Join(categories, ", "))
		}
		query, _ := c.prompt("Enter category: ")
		found, err = c.manager.SearchByCategory(query)
	case "3":
		query, _ := c.prompt("Enter supplier name: ")
		found, err = c.manager.SearchBySupplier(query)
	default:
		c.warn("Invalid search option.")
		return
	}
	if err != nil {
		c.warn("%v", err)
		return
	}

	if len(found) == 0 {
		fmt.Fprintln(c.out, "\n[i] No products found matching your search.")
		return
	}
	fmt.Fprintf(c.out, "\nFound %d product(s):\n", len(found))
	PrintProductTable(c.out, found)
}

func (c *Console) viewLowStock() {
	fmt.Fprintln(c.out, "\n--- Low Stock Items ---")

	low, err := c.manager.LowStock()
	if err != nil {
		c.warn("%v", err)
		return
	}
	if len(low) == 0 {
		fmt.Fprintln(c.out, "[✓] No products are low on stock.")
		return
	}
	fmt.Fprintf(c.out, "[!] %d product(s) at or below reorder level:\n\n", len(low))
	PrintProductTable(c.out, low)
}

func (c *Console) viewReport() {
	report, err := c.manager.Report()
	if err != nil {
		c.warn("%v", err)
		return
	}
	fmt.Fprintln(c.out, "\n"+report.Render())
}

func (c *Console) backupData() {
	fmt.Fprintln(c.out, "\n--- Backup Data ---")

	path, err := c.manager.Backup()
	if err != nil {
		c.warn("Failed to create backup: %v", err)
		return
	}
	fmt.Fprintf(c.out, "[✓] Backup created at %s\n", path)
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}
