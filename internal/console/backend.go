package console

import (
	"context"

	"github.com/stockroomhq/console/internal/api"
)

// Backend is the slice of the API client the controllers consume. *api.Client
// satisfies it; tests substitute fakes.
type Backend interface {
	ListProducts(ctx context.Context) ([]api.Product, error)
	CreateProduct(ctx context.Context, payload api.ProductPayload) (*api.Product, error)
	UpdateProduct(ctx context.Context, id int, payload api.ProductPayload) (*api.Product, error)
	UpdateProductStock(ctx context.Context, id, quantity int) error
	DeleteProduct(ctx context.Context, id int) error

	ListCategories(ctx context.Context) ([]api.Category, error)
	CreateCategory(ctx context.Context, payload api.CategoryPayload) (*api.Category, error)
	UpdateCategory(ctx context.Context, id int, payload api.CategoryPayload) (*api.Category, error)
	DeleteCategory(ctx context.Context, id int) error

	ListSuppliers(ctx context.Context) ([]api.Supplier, error)
	CreateSupplier(ctx context.Context, payload api.SupplierPayload) (*api.Supplier, error)
	UpdateSupplier(ctx context.Context, id int, payload api.SupplierPayload) (*api.Supplier, error)
	DeleteSupplier(ctx context.Context, id int) error

	Login(ctx context.Context, creds api.Credentials) (*api.LoginResponse, error)
	ListUsers(ctx context.Context) ([]api.User, error)
	CreateUser(ctx context.Context, payload api.UserPayload) (*api.User, error)
	UpdateUser(ctx context.Context, id int, payload api.UserPayload) (*api.User, error)
	DeleteUser(ctx context.Context, id int) error

	ListPurchases(ctx context.Context) ([]api.Purchase, error)
	CreatePurchase(ctx context.Context, payload api.PurchaseCreatePayload) (*api.Purchase, error)
	UpdatePurchaseStatus(ctx context.Context, id int, status string) error
	DeletePurchase(ctx context.Context, id int) error

	ListSales(ctx context.Context) ([]api.Sale, error)
	CreateSale(ctx context.Context, payload api.SaleCreatePayload) (*api.Sale, error)
	UpdateSale(ctx context.Context, id int, payload api.SaleUpdatePayload) (*api.Sale, error)
	DeleteSale(ctx context.Context, id int) error

	ListNotifications(ctx context.Context) ([]api.Notification, error)
	MarkNotificationRead(ctx context.Context, id int) error
	DeleteNotification(ctx context.Context, id int) error
}

var _ Backend = (*api.Client)(nil)
