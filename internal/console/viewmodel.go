package console

import (
	"fmt"
	"strconv"
	"time"

	"github.com/shopspring/decimal"

	"github.com/stockroomhq/console/internal/api"
)

// Pure entity-to-view-model mappers. Nothing here performs I/O.

var (
	productColumns      = []string{"ID", "Name", "Category", "Supplier", "Stock", "Reorder Level", "Price"}
	staffProductColumns = []string{"ID", "Name", "Stock", "Price"}
	categoryColumns     = []string{"ID", "Name"}
	supplierColumns     = []string{"ID", "Name", "Email", "Phone", "Address"}
	userColumns         = []string{"ID", "Username", "Role"}
	purchaseColumns     = []string{"ID", "Product", "Supplier", "Quantity", "Price", "Status", "Date"}
	saleColumns         = []string{"ID", "Product", "User", "Quantity", "Price", "Date"}
	staffSaleColumns    = []string{"ID", "Product", "Quantity", "Price", "Date"}
	notificationColumns = []string{"ID", "Message", "Status", "Date"}
)

func productRow(p api.Product) Row {
	return Row{
		Cells: []string{
			strconv.Itoa(p.ProductID),
			p.ProductName,
			p.CategoryName,
			p.SupplierName,
			strconv.Itoa(p.QuantityInStock),
			strconv.Itoa(p.ReorderLevel),
			money(p.UnitPrice),
		},
		Actions: []string{ActionEdit, ActionDelete},
	}
}

func staffProductRow(p api.Product) Row {
	return Row{
		Cells: []string{
			strconv.Itoa(p.ProductID),
			p.ProductName,
			strconv.Itoa(p.QuantityInStock),
			money(p.UnitPrice),
		},
	}
}

func categoryRow(c api.Category) Row {
	return Row{
		Cells:   []string{strconv.Itoa(c.CategoryID), c.CategoryName},
		Actions: []string{ActionEdit, ActionDelete},
	}
}

func supplierRow(s api.Supplier) Row {
	return Row{
		Cells:   []string{strconv.Itoa(s.SupplierID), s.SupplierName, s.ContactEmail, s.Phone, s.Address},
		Actions: []string{ActionEdit, ActionDelete},
	}
}

func userRow(u api.User) Row {
	return Row{
		Cells:   []string{strconv.Itoa(u.UserID), u.Username, u.Role},
		Actions: []string{ActionEdit, ActionDelete},
	}
}

func purchaseRow(p api.Purchase) Row {
	return Row{
		Cells: []string{
			strconv.Itoa(p.PurchaseID),
			p.ProductName,
			p.SupplierName,
			strconv.Itoa(p.QuantityPurchased),
			money(p.PurchasePrice),
			p.Status,
			shortDate(p.PurchaseDate),
		},
		Actions: []string{ActionEdit, ActionDelete},
	}
}

func saleRow(s api.Sale) Row {
	return Row{
		Cells: []string{
			strconv.Itoa(s.SaleID),
			s.ProductName,
			s.Username,
			strconv.Itoa(s.QuantitySold),
			money(s.SalePrice),
			shortDate(s.SaleDate),
		},
		Actions: []string{ActionEdit, ActionDelete},
	}
}

func staffSaleRow(s api.Sale) Row {
	return Row{
		Cells: []string{
			strconv.Itoa(s.SaleID),
			s.ProductName,
			strconv.Itoa(s.QuantitySold),
			money(s.SalePrice),
			shortDate(s.SaleDate),
		},
	}
}

func notificationRow(n api.Notification) Row {
	status := "Unread"
	actions := []string{ActionMarkAsRead, ActionDelete}
	if n.IsRead {
		status = "Read"
		actions = []string{ActionDelete}
	}
	return Row{
		Cells:   []string{strconv.Itoa(n.NotificationID), n.Message, status, shortDate(n.CreatedAt)},
		Actions: actions,
	}
}

func notificationCard(n api.Notification) Card {
	return Card{
		Title:  n.ProductName,
		Body:   n.Message,
		Footer: shortDate(n.CreatedAt),
		Unread: !n.IsRead,
	}
}

func productOption(p api.Product) Option {
	return Option{Value: strconv.Itoa(p.ProductID), Label: p.ProductName}
}

func categoryOption(c api.Category) Option {
	return Option{Value: strconv.Itoa(c.CategoryID), Label: c.CategoryName}
}

func supplierOption(s api.Supplier) Option {
	return Option{Value: strconv.Itoa(s.SupplierID), Label: s.SupplierName}
}

func saleProductOption(p api.Product) Option {
	return Option{
		Value: strconv.Itoa(p.ProductID),
		Label: fmt.Sprintf("%s (Stock: %d)", p.ProductName, p.QuantityInStock),
	}
}

func overviewFrom(products []api.Product, sales []api.Sale, suppliers []api.Supplier) Overview {
	low := 0
	for _, p := range products {
		if p.LowStock() {
			low++
		}
	}
	return Overview{
		TotalProducts:  len(products),
		TotalSales:     len(sales),
		TotalSuppliers: len(suppliers),
		LowStockCount:  low,
	}
}

// money renders a float price as $x.xx without float artifacts.
func money(value float64) string {
	return "$" + decimal.NewFromFloat(value).StringFixed(2)
}

var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// shortDate normalizes a backend timestamp for table cells, falling back to
// the raw value when it does not parse.
func shortDate(raw string) string {
	for _, layout := range dateLayouts {
		if ts, err := time.Parse(layout, raw); err == nil {
			return ts.Format("2006-01-02")
		}
	}
	return raw
}
