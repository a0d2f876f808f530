package console

import (
	"testing"

	"github.com/stockroomhq/console/internal/api"
)

func TestMoneyFormatting(t *testing.T) {
	cases := []struct {
		value float64
		want  string
	}{
		{19.99, "$19.99"},
		{5, "$5.00"},
		{0.1, "$0.10"},
		{1234.5, "$1234.50"},
	}
	for _, tc := range cases {
		if got := money(tc.value); got != tc.want {
			t.Fatalf("money(%v) = %q, want %q", tc.value, got, tc.want)
		}
	}
}

func TestOverviewCountsLowStock(t *testing.T) {
	products := []api.Product{
		{ProductID: 1, QuantityInStock: 3, ReorderLevel: 5},
		{ProductID: 2, QuantityInStock: 10, ReorderLevel: 5},
		{ProductID: 3, QuantityInStock: 5, ReorderLevel: 5},
	}
	sales := []api.Sale{{SaleID: 1}}
	suppliers := []api.Supplier{{SupplierID: 1}, {SupplierID: 2}}

	overview := overviewFrom(products, sales, suppliers)
	if overview.TotalProducts != 3 {
		t.Fatalf("expected 3 products, got %d", overview.TotalProducts)
	}
	if overview.TotalSales != 1 {
		t.Fatalf("expected 1 sale, got %d", overview.TotalSales)
	}
	if overview.TotalSuppliers != 2 {
		t.Fatalf("expected 2 suppliers, got %d", overview.TotalSuppliers)
	}
	// Stock at exactly the reorder level counts as low.
	if overview.LowStockCount != 2 {
		t.Fatalf("expected 2 low stock, got %d", overview.LowStockCount)
	}
}

func TestNotificationRowActionsDependOnReadState(t *testing.T) {
	unread := notificationRow(api.Notification{NotificationID: 1, Message: "low stock", IsRead: false})
	if len(unread.Actions) != 2 || unread.Actions[0] != ActionMarkAsRead {
		t.Fatalf("expected markAsRead+delete for unread, got %v", unread.Actions)
	}

	read := notificationRow(api.Notification{NotificationID: 2, Message: "restocked", IsRead: true})
	if len(read.Actions) != 1 || read.Actions[0] != ActionDelete {
		t.Fatalf("expected delete only for read, got %v", read.Actions)
	}
}

func TestSaleProductOptionShowsStock(t *testing.T) {
	option := saleProductOption(api.Product{ProductID: 4, ProductName: "Widget", QuantityInStock: 12})
	if option.Value != "4" {
		t.Fatalf("expected value 4, got %q", option.Value)
	}
	if option.Label != "Widget (Stock: 12)" {
		t.Fatalf("unexpected label %q", option.Label)
	}
}

func TestShortDateFallsBackToRawValue(t *testing.T) {
	if got := shortDate("2026-03-04T10:00:00Z"); got != "2026-03-04" {
		t.Fatalf("expected parsed date, got %q", got)
	}
	if got := shortDate("not a date"); got != "not a date" {
		t.Fatalf("expected raw passthrough, got %q", got)
	}
}
