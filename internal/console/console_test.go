package console

import (
	"context"
	"io"

	"github.com/stockroomhq/console/internal/api"
	"github.com/stockroomhq/console/pkg/logger"
)

func testLogger() *logger.Logger {
	return logger.New(logger.Options{ServiceName: "test", Output: io.Discard})
}

var (
	adminUser = api.User{UserID: 1, Username: "boss", Role: api.RoleAdmin}
	staffUser = api.User{UserID: 7, Username: "till", Role: api.RoleStaff}
)

// fakeBackend implements Backend through optional fn fields. Unset list
// functions return empty slices; unset mutation functions succeed.
type fakeBackend struct {
	listProductsFn  func(ctx context.Context) ([]api.Product, error)
	createProductFn func(ctx context.Context, payload api.ProductPayload) (*api.Product, error)
	updateProductFn func(ctx context.Context, id int, payload api.ProductPayload) (*api.Product, error)
	updateStockFn   func(ctx context.Context, id, quantity int) error
	deleteProductFn func(ctx context.Context, id int) error

	listCategoriesFn func(ctx context.Context) ([]api.Category, error)
	createCategoryFn func(ctx context.Context, payload api.CategoryPayload) (*api.Category, error)
	updateCategoryFn func(ctx context.Context, id int, payload api.CategoryPayload) (*api.Category, error)
	deleteCategoryFn func(ctx context.Context, id int) error

	listSuppliersFn  func(ctx context.Context) ([]api.Supplier, error)
	createSupplierFn func(ctx context.Context, payload api.SupplierPayload) (*api.Supplier, error)
	updateSupplierFn func(ctx context.Context, id int, payload api.SupplierPayload) (*api.Supplier, error)
	deleteSupplierFn func(ctx context.Context, id int) error

	loginFn      func(ctx context.Context, creds api.Credentials) (*api.LoginResponse, error)
	listUsersFn  func(ctx context.Context) ([]api.User, error)
	createUserFn func(ctx context.Context, payload api.UserPayload) (*api.User, error)
	updateUserFn func(ctx context.Context, id int, payload api.UserPayload) (*api.User, error)
	deleteUserFn func(ctx context.Context, id int) error

	listPurchasesFn        func(ctx context.Context) ([]api.Purchase, error)
	createPurchaseFn       func(ctx context.Context, payload api.PurchaseCreatePayload) (*api.Purchase, error)
	updatePurchaseStatusFn func(ctx context.Context, id int, status string) error
	deletePurchaseFn       func(ctx context.Context, id int) error

	listSalesFn  func(ctx context.Context) ([]api.Sale, error)
	createSaleFn func(ctx context.Context, payload api.SaleCreatePayload) (*api.Sale, error)
	updateSaleFn func(ctx context.Context, id int, payload api.SaleUpdatePayload) (*api.Sale, error)
	deleteSaleFn func(ctx context.Context, id int) error

	listNotificationsFn    func(ctx context.Context) ([]api.Notification, error)
	markNotificationReadFn func(ctx context.Context, id int) error
	deleteNotificationFn   func(ctx context.Context, id int) error

	listProductCalls int
	listSaleCalls    int
}

func (f *fakeBackend) ListProducts(ctx context.Context) ([]api.Product, error) {
	f.listProductCalls++
	if f.listProductsFn != nil {
		return f.listProductsFn(ctx)
	}
	return nil, nil
}

func (f *fakeBackend) CreateProduct(ctx context.Context, payload api.ProductPayload) (*api.Product, error) {
	if f.createProductFn != nil {
		return f.createProductFn(ctx, payload)
	}
	return &api.Product{}, nil
}

func (f *fakeBackend) UpdateProduct(ctx context.Context, id int, payload api.ProductPayload) (*api.Product, error) {
	if f.updateProductFn != nil {
		return f.updateProductFn(ctx, id, payload)
	}
	return &api.Product{}, nil
}

func (f *fakeBackend) UpdateProductStock(ctx context.Context, id, quantity int) error {
	if f.updateStockFn != nil {
		return f.updateStockFn(ctx, id, quantity)
	}
	return nil
}

func (f *fakeBackend) DeleteProduct(ctx context.Context, id int) error {
	if f.deleteProductFn != nil {
		return f.deleteProductFn(ctx, id)
	}
	return nil
}

func (f *fakeBackend) ListCategories(ctx context.Context) ([]api.Category, error) {
	if f.listCategoriesFn != nil {
		return f.listCategoriesFn(ctx)
	}
	return nil, nil
}

func (f *fakeBackend) CreateCategory(ctx context.Context, payload api.CategoryPayload) (*api.Category, error) {
	if f.createCategoryFn != nil {
		return f.createCategoryFn(ctx, payload)
	}
	return &api.Category{}, nil
}

func (f *fakeBackend) UpdateCategory(ctx context.Context, id int, payload api.CategoryPayload) (*api.Category, error) {
	if f.updateCategoryFn != nil {
		return f.updateCategoryFn(ctx, id, payload)
	}
	return &api.Category{}, nil
}

func (f *fakeBackend) DeleteCategory(ctx context.Context, id int) error {
	if f.deleteCategoryFn != nil {
		return f.deleteCategoryFn(ctx, id)
	}
	return nil
}

func (f *fakeBackend) ListSuppliers(ctx context.Context) ([]api.Supplier, error) {
	if f.listSuppliersFn != nil {
		return f.listSuppliersFn(ctx)
	}
	return nil, nil
}

func (f *fakeBackend) CreateSupplier(ctx context.Context, payload api.SupplierPayload) (*api.Supplier, error) {
	if f.createSupplierFn != nil {
		return f.createSupplierFn(ctx, payload)
	}
	return &api.Supplier{}, nil
}

func (f *fakeBackend) UpdateSupplier(ctx context.Context, id int, payload api.SupplierPayload) (*api.Supplier, error) {
	if f.updateSupplierFn != nil {
		return f.updateSupplierFn(ctx, id, payload)
	}
	return &api.Supplier{}, nil
}

func (f *fakeBackend) DeleteSupplier(ctx context.Context, id int) error {
	if f.deleteSupplierFn != nil {
		return f.deleteSupplierFn(ctx, id)
	}
	return nil
}

func (f *fakeBackend) Login(ctx context.Context, creds api.Credentials) (*api.LoginResponse, error) {
	if f.loginFn != nil {
		return f.loginFn(ctx, creds)
	}
	return &api.LoginResponse{Success: true, User: adminUser}, nil
}

func (f *fakeBackend) ListUsers(ctx context.Context) ([]api.User, error) {
	if f.listUsersFn != nil {
		return f.listUsersFn(ctx)
	}
	return nil, nil
}

func (f *fakeBackend) CreateUser(ctx context.Context, payload api.UserPayload) (*api.User, error) {
	if f.createUserFn != nil {
		return f.createUserFn(ctx, payload)
	}
	return &api.User{}, nil
}

func (f *fakeBackend) UpdateUser(ctx context.Context, id int, payload api.UserPayload) (*api.User, error) {
	if f.updateUserFn != nil {
		return f.updateUserFn(ctx, id, payload)
	}
	return &api.User{}, nil
}

func (f *fakeBackend) DeleteUser(ctx context.Context, id int) error {
	if f.deleteUserFn != nil {
		return f.deleteUserFn(ctx, id)
	}
	return nil
}

func (f *fakeBackend) ListPurchases(ctx context.Context) ([]api.Purchase, error) {
	if f.listPurchasesFn != nil {
		return f.listPurchasesFn(ctx)
	}
	return nil, nil
}

func (f *fakeBackend) CreatePurchase(ctx context.Context, payload api.PurchaseCreatePayload) (*api.Purchase, error) {
	if f.createPurchaseFn != nil {
		return f.createPurchaseFn(ctx, payload)
	}
	return &api.Purchase{}, nil
}

func (f *fakeBackend) UpdatePurchaseStatus(ctx context.Context, id int, status string) error {
	if f.updatePurchaseStatusFn != nil {
		return f.updatePurchaseStatusFn(ctx, id, status)
	}
	return nil
}

func (f *fakeBackend) DeletePurchase(ctx context.Context, id int) error {
	if f.deletePurchaseFn != nil {
		return f.deletePurchaseFn(ctx, id)
	}
	return nil
}

func (f *fakeBackend) ListSales(ctx context.Context) ([]api.Sale, error) {
	f.listSaleCalls++
	if f.listSalesFn != nil {
		return f.listSalesFn(ctx)
	}
	return nil, nil
}

func (f *fakeBackend) CreateSale(ctx context.Context, payload api.SaleCreatePayload) (*api.Sale, error) {
	if f.createSaleFn != nil {
		return f.createSaleFn(ctx, payload)
	}
	return &api.Sale{}, nil
}

func (f *fakeBackend) UpdateSale(ctx context.Context, id int, payload api.SaleUpdatePayload) (*api.Sale, error) {
	if f.updateSaleFn != nil {
		return f.updateSaleFn(ctx, id, payload)
	}
	return &api.Sale{}, nil
}

func (f *fakeBackend) DeleteSale(ctx context.Context, id int) error {
	if f.deleteSaleFn != nil {
		return f.deleteSaleFn(ctx, id)
	}
	return nil
}

func (f *fakeBackend) ListNotifications(ctx context.Context) ([]api.Notification, error) {
	if f.listNotificationsFn != nil {
		return f.listNotificationsFn(ctx)
	}
	return nil, nil
}

func (f *fakeBackend) MarkNotificationRead(ctx context.Context, id int) error {
	if f.markNotificationReadFn != nil {
		return f.markNotificationReadFn(ctx, id)
	}
	return nil
}

func (f *fakeBackend) DeleteNotification(ctx context.Context, id int) error {
	if f.deleteNotificationFn != nil {
		return f.deleteNotificationFn(ctx, id)
	}
	return nil
}

// fakeRenderer records every view model pushed at it.
type fakeRenderer struct {
	tables      map[Tab][]Table
	cards       map[Tab][][]Card
	overviews   []Overview
	options     map[string][][]Option
	closed      []string
	resets      []string
	alerts      []string
	successes   []string
	loginErrors []string
	navigations []string
}

func newFakeRenderer() *fakeRenderer {
	return &fakeRenderer{
		tables:  make(map[Tab][]Table),
		cards:   make(map[Tab][][]Card),
		options: make(map[string][][]Option),
	}
}

func (r *fakeRenderer) RenderTable(tab Tab, table Table) {
	r.tables[tab] = append(r.tables[tab], table)
}

func (r *fakeRenderer) RenderCards(tab Tab, cards []Card) {
	r.cards[tab] = append(r.cards[tab], cards)
}

func (r *fakeRenderer) RenderOverview(overview Overview) {
	r.overviews = append(r.overviews, overview)
}

func (r *fakeRenderer) RenderOptions(field string, options []Option) {
	r.options[field] = append(r.options[field], options)
}

func (r *fakeRenderer) CloseModal(name string)        { r.closed = append(r.closed, name) }
func (r *fakeRenderer) ResetForm(name string)         { r.resets = append(r.resets, name) }
func (r *fakeRenderer) ShowAlert(message string)      { r.alerts = append(r.alerts, message) }
func (r *fakeRenderer) ShowSuccess(message string)    { r.successes = append(r.successes, message) }
func (r *fakeRenderer) ShowLoginError(message string) { r.loginErrors = append(r.loginErrors, message) }
func (r *fakeRenderer) Navigate(target string)        { r.navigations = append(r.navigations, target) }

func (r *fakeRenderer) lastTable(tab Tab) (Table, bool) {
	tables := r.tables[tab]
	if len(tables) == 0 {
		return Table{}, false
	}
	return tables[len(tables)-1], true
}

type fakePrompter struct {
	answer bool
	calls  int
}

func (p *fakePrompter) Confirm(string) bool {
	p.calls++
	return p.answer
}

type fakeSessions struct {
	saved   []api.User
	cleared int
	saveErr error
}

func (s *fakeSessions) Save(user api.User) error {
	s.saved = append(s.saved, user)
	return s.saveErr
}

func (s *fakeSessions) Clear() error {
	s.cleared++
	return nil
}
