package console

import (
	"strings"

	"github.com/stockroomhq/console/internal/api"
)

// filterRows keeps the items whose searchable fields contain term as a
// case-folded substring. An empty term keeps everything. The result is
// always a pure subset of the input; no network or cache is involved.
func filterRows[T any](items []T, term string, fields func(T) []string) []T {
	if term == "" {
		return items
	}
	folded := strings.ToLower(term)
	matched := make([]T, 0, len(items))
	for _, item := range items {
		for _, field := range fields(item) {
			if strings.Contains(strings.ToLower(field), folded) {
				matched = append(matched, item)
				break
			}
		}
	}
	return matched
}

// Searchable fields per entity type. Fixed by design: search boxes only ever
// match against these.

func productSearchFields(p api.Product) []string {
	return []string{p.ProductName, p.CategoryName, p.SupplierName}
}

func categorySearchFields(c api.Category) []string {
	return []string{c.CategoryName}
}

func supplierSearchFields(s api.Supplier) []string {
	return []string{s.SupplierName, s.ContactEmail, s.Phone}
}

func userSearchFields(u api.User) []string {
	return []string{u.Username, u.Role}
}

func purchaseSearchFields(p api.Purchase) []string {
	return []string{p.ProductName, p.SupplierName, p.Status}
}

func saleSearchFields(s api.Sale) []string {
	return []string{s.ProductName, s.Username}
}

func notificationSearchFields(n api.Notification) []string {
	return []string{n.Message}
}
