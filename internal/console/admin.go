package console

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/stockroomhq/console/internal/api"
	pkgerrors "github.com/stockroomhq/console/pkg/errors"
	"github.com/stockroomhq/console/pkg/logger"
)

// sessionStore is the slice of the session layer the controllers need.
type sessionStore interface {
	Save(user api.User) error
	Clear() error
}

var adminTabs = []Tab{
	TabProducts,
	TabCategories,
	TabSuppliers,
	TabUsers,
	TabPurchases,
	TabSales,
	TabNotifications,
}

// AdminController drives the full management dashboard: one panel per stored
// collection plus the derived overview counters.
type AdminController struct {
	backend  Backend
	renderer Renderer
	prompter Prompter
	sessions sessionStore
	logg     *logger.Logger
	state    *State
}

// AdminParams collects the dependencies for NewAdmin.
type AdminParams struct {
	Backend  Backend
	Renderer Renderer
	Prompter Prompter
	Sessions sessionStore
	Logger   *logger.Logger
	User     api.User
}

func NewAdmin(p AdminParams) (*AdminController, error) {
	if p.Backend == nil {
		return nil, fmt.Errorf("backend required")
	}
	if p.Renderer == nil {
		return nil, fmt.Errorf("renderer required")
	}
	if p.Prompter == nil {
		return nil, fmt.Errorf("prompter required")
	}
	if p.Sessions == nil {
		return nil, fmt.Errorf("session store required")
	}
	if p.Logger == nil {
		return nil, fmt.Errorf("logger required")
	}
	if p.User.Role != api.RoleAdmin {
		return nil, pkgerrors.New(pkgerrors.CodeForbidden, fmt.Sprintf("role %q cannot open the admin dashboard", p.User.Role))
	}
	state := newState(TabProducts, adminTabs)
	state.User = p.User
	return &AdminController{
		backend:  p.Backend,
		renderer: p.Renderer,
		prompter: p.Prompter,
		sessions: p.Sessions,
		logg:     p.Logger,
		state:    state,
	}, nil
}

// Start renders the initial dashboard: overview counters plus the default
// products tab.
func (c *AdminController) Start(ctx context.Context) error {
	ctx = c.logg.WithUser(ctx, c.state.User.Username)
	if err := c.loadOverview(ctx); err != nil {
		return c.fail(ctx, "loading overview", err)
	}
	return c.ActivateTab(ctx, TabProducts)
}

// ActivateTab switches the visible panel and re-fetches its collection. The
// stored search term for that tab is applied to the fresh data.
func (c *AdminController) ActivateTab(ctx context.Context, tab Tab) error {
	if !validTab(tab, adminTabs) {
		return pkgerrors.New(pkgerrors.CodeValidation, fmt.Sprintf("unknown tab %q", tab))
	}
	c.state.ActiveTab = tab
	ctx = c.logg.WithTab(ctx, string(tab))
	if err := c.loadTab(ctx, tab); err != nil {
		return c.fail(ctx, fmt.Sprintf("loading %s", tab), err)
	}
	return nil
}

// Search stores the term for the tab and, when that tab is visible,
// re-fetches and re-renders it through the filter.
func (c *AdminController) Search(ctx context.Context, tab Tab, term string) error {
	if !validTab(tab, adminTabs) {
		return pkgerrors.New(pkgerrors.CodeValidation, fmt.Sprintf("unknown tab %q", tab))
	}
	c.state.setSearch(tab, term)
	if c.state.ActiveTab != tab {
		return nil
	}
	if err := c.loadTab(ctx, tab); err != nil {
		return c.fail(ctx, fmt.Sprintf("loading %s", tab), err)
	}
	return nil
}

func (c *AdminController) loadTab(ctx context.Context, tab Tab) error {
	switch tab {
	case TabProducts:
		return c.loadProducts(ctx)
	case TabCategories:
		return c.loadCategories(ctx)
	case TabSuppliers:
		return c.loadSuppliers(ctx)
	case TabUsers:
		return c.loadUsers(ctx)
	case TabPurchases:
		return c.loadPurchases(ctx)
	case TabSales:
		return c.loadSales(ctx)
	case TabNotifications:
		return c.loadNotifications(ctx)
	default:
		return pkgerrors.New(pkgerrors.CodeValidation, fmt.Sprintf("unknown tab %q", tab))
	}
}

func (c *AdminController) loadProducts(ctx context.Context) error {
	products, err := c.backend.ListProducts(ctx)
	if err != nil {
		return err
	}
	products = filterRows(products, c.state.search(TabProducts), productSearchFields)
	rows := make([]Row, 0, len(products))
	for _, p := range products {
		rows = append(rows, productRow(p))
	}
	c.renderer.RenderTable(TabProducts, Table{Columns: productColumns, Rows: rows})
	return nil
}

func (c *AdminController) loadCategories(ctx context.Context) error {
	categories, err := c.backend.ListCategories(ctx)
	if err != nil {
		return err
	}
	categories = filterRows(categories, c.state.search(TabCategories), categorySearchFields)
	rows := make([]Row, 0, len(categories))
	for _, cat := range categories {
		rows = append(rows, categoryRow(cat))
	}
	c.renderer.RenderTable(TabCategories, Table{Columns: categoryColumns, Rows: rows})
	return nil
}

func (c *AdminController) loadSuppliers(ctx context.Context) error {
	suppliers, err := c.backend.ListSuppliers(ctx)
	if err != nil {
		return err
	}
	suppliers = filterRows(suppliers, c.state.search(TabSuppliers), supplierSearchFields)
	rows := make([]Row, 0, len(suppliers))
	for _, s := range suppliers {
		rows = append(rows, supplierRow(s))
	}
	c.renderer.RenderTable(TabSuppliers, Table{Columns: supplierColumns, Rows: rows})
	return nil
}

func (c *AdminController) loadUsers(ctx context.Context) error {
	users, err := c.backend.ListUsers(ctx)
	if err != nil {
		return err
	}
	users = filterRows(users, c.state.search(TabUsers), userSearchFields)
	rows := make([]Row, 0, len(users))
	for _, u := range users {
		rows = append(rows, userRow(u))
	}
	c.renderer.RenderTable(TabUsers, Table{Columns: userColumns, Rows: rows})
	return nil
}

func (c *AdminController) loadPurchases(ctx context.Context) error {
	purchases, err := c.backend.ListPurchases(ctx)
	if err != nil {
		return err
	}
	purchases = filterRows(purchases, c.state.search(TabPurchases), purchaseSearchFields)
	rows := make([]Row, 0, len(purchases))
	for _, p := range purchases {
		rows = append(rows, purchaseRow(p))
	}
	c.renderer.RenderTable(TabPurchases, Table{Columns: purchaseColumns, Rows: rows})
	return nil
}

func (c *AdminController) loadSales(ctx context.Context) error {
	sales, err := c.backend.ListSales(ctx)
	if err != nil {
		return err
	}
	sales = filterRows(sales, c.state.search(TabSales), saleSearchFields)
	rows := make([]Row, 0, len(sales))
	for _, s := range sales {
		rows = append(rows, saleRow(s))
	}
	c.renderer.RenderTable(TabSales, Table{Columns: saleColumns, Rows: rows})
	return nil
}

func (c *AdminController) loadNotifications(ctx context.Context) error {
	notifications, err := c.backend.ListNotifications(ctx)
	if err != nil {
		return err
	}
	notifications = filterRows(notifications, c.state.search(TabNotifications), notificationSearchFields)
	rows := make([]Row, 0, len(notifications))
	for _, n := range notifications {
		rows = append(rows, notificationRow(n))
	}
	c.renderer.RenderTable(TabNotifications, Table{Columns: notificationColumns, Rows: rows})
	return nil
}

// loadOverview fetches the three source collections concurrently and renders
// the recomputed counters.
func (c *AdminController) loadOverview(ctx context.Context) error {
	var (
		products  []api.Product
		sales     []api.Sale
		suppliers []api.Supplier
	)
	group, gctx := errgroup.WithContext(ctx)
	group.Go(func() error {
		var err error
		products, err = c.backend.ListProducts(gctx)
		return err
	})
	group.Go(func() error {
		var err error
		sales, err = c.backend.ListSales(gctx)
		return err
	})
	group.Go(func() error {
		var err error
		suppliers, err = c.backend.ListSuppliers(gctx)
		return err
	})
	if err := group.Wait(); err != nil {
		return err
	}
	c.renderer.RenderOverview(overviewFrom(products, sales, suppliers))
	return nil
}

// SaveProduct creates or updates depending on the form's ID field, then
// refreshes the products tab and the overview counters.
func (c *AdminController) SaveProduct(ctx context.Context, form ProductForm) error {
	id, update, err := idField(form.ID)
	if err != nil {
		return c.fail(ctx, "saving product", err)
	}
	payload, err := form.payload()
	if err != nil {
		return c.fail(ctx, "saving product", err)
	}
	if update {
		_, err = c.backend.UpdateProduct(ctx, id, payload)
	} else {
		_, err = c.backend.CreateProduct(ctx, payload)
	}
	if err != nil {
		return c.fail(ctx, "saving product", err)
	}
	c.renderer.CloseModal("product")
	c.renderer.ShowSuccess("Product saved successfully!")
	if err := c.loadProducts(ctx); err != nil {
		return c.fail(ctx, "loading products", err)
	}
	if err := c.loadOverview(ctx); err != nil {
		return c.fail(ctx, "loading overview", err)
	}
	return nil
}

func (c *AdminController) SaveCategory(ctx context.Context, form CategoryForm) error {
	id, update, err := idField(form.ID)
	if err != nil {
		return c.fail(ctx, "saving category", err)
	}
	payload := form.payload()
	if update {
		_, err = c.backend.UpdateCategory(ctx, id, payload)
	} else {
		_, err = c.backend.CreateCategory(ctx, payload)
	}
	if err != nil {
		return c.fail(ctx, "saving category", err)
	}
	c.renderer.CloseModal("category")
	c.renderer.ShowSuccess("Category saved successfully!")
	if err := c.loadCategories(ctx); err != nil {
		return c.fail(ctx, "loading categories", err)
	}
	return nil
}

func (c *AdminController) SaveSupplier(ctx context.Context, form SupplierForm) error {
	id, update, err := idField(form.ID)
	if err != nil {
		return c.fail(ctx, "saving supplier", err)
	}
	payload := form.payload()
	if update {
		_, err = c.backend.UpdateSupplier(ctx, id, payload)
	} else {
		_, err = c.backend.CreateSupplier(ctx, payload)
	}
	if err != nil {
		return c.fail(ctx, "saving supplier", err)
	}
	c.renderer.CloseModal("supplier")
	c.renderer.ShowSuccess("Supplier saved successfully!")
	if err := c.loadSuppliers(ctx); err != nil {
		return c.fail(ctx, "loading suppliers", err)
	}
	if err := c.loadOverview(ctx); err != nil {
		return c.fail(ctx, "loading overview", err)
	}
	return nil
}

func (c *AdminController) SaveUser(ctx context.Context, form UserForm) error {
	id, update, err := idField(form.ID)
	if err != nil {
		return c.fail(ctx, "saving user", err)
	}
	payload := form.payload()
	if update {
		_, err = c.backend.UpdateUser(ctx, id, payload)
	} else {
		_, err = c.backend.CreateUser(ctx, payload)
	}
	if err != nil {
		return c.fail(ctx, "saving user", err)
	}
	c.renderer.CloseModal("user")
	c.renderer.ShowSuccess("User saved successfully!")
	if err := c.loadUsers(ctx); err != nil {
		return c.fail(ctx, "loading users", err)
	}
	return nil
}

// SavePurchase creates a purchase order on an empty ID. With an ID present
// only the status can change; the other fields are immutable after creation.
func (c *AdminController) SavePurchase(ctx context.Context, form PurchaseForm) error {
	id, update, err := idField(form.ID)
	if err != nil {
		return c.fail(ctx, "saving purchase", err)
	}
	if update {
		err = c.backend.UpdatePurchaseStatus(ctx, id, form.Status)
	} else {
		var payload api.PurchaseCreatePayload
		payload, err = form.payload()
		if err != nil {
			return c.fail(ctx, "saving purchase", err)
		}
		_, err = c.backend.CreatePurchase(ctx, payload)
	}
	if err != nil {
		return c.fail(ctx, "saving purchase", err)
	}
	c.renderer.CloseModal("purchase")
	c.renderer.ShowSuccess("Purchase saved successfully!")
	if err := c.loadPurchases(ctx); err != nil {
		return c.fail(ctx, "loading purchases", err)
	}
	return nil
}

// SaveSale only ever updates. Sales are recorded from the staff console;
// the admin dashboard corrects existing ones.
func (c *AdminController) SaveSale(ctx context.Context, form SaleForm) error {
	id, update, err := idField(form.ID)
	if err != nil {
		return c.fail(ctx, "saving sale", err)
	}
	if !update {
		return c.fail(ctx, "saving sale", pkgerrors.New(pkgerrors.CodeValidation, "sale id required"))
	}
	payload, err := form.updatePayload()
	if err != nil {
		return c.fail(ctx, "saving sale", err)
	}
	if _, err := c.backend.UpdateSale(ctx, id, payload); err != nil {
		return c.fail(ctx, "saving sale", err)
	}
	c.renderer.CloseModal("sale")
	c.renderer.ShowSuccess("Sale saved successfully!")
	if err := c.loadSales(ctx); err != nil {
		return c.fail(ctx, "loading sales", err)
	}
	if err := c.loadOverview(ctx); err != nil {
		return c.fail(ctx, "loading overview", err)
	}
	return nil
}

// UpdateStock adjusts a single product's quantity without touching the rest
// of the record.
func (c *AdminController) UpdateStock(ctx context.Context, productID, quantity int) error {
	if err := c.backend.UpdateProductStock(ctx, productID, quantity); err != nil {
		return c.fail(ctx, "updating stock", err)
	}
	c.renderer.CloseModal("stock")
	c.renderer.ShowSuccess("Stock updated successfully!")
	if err := c.loadProducts(ctx); err != nil {
		return c.fail(ctx, "loading products", err)
	}
	if err := c.loadOverview(ctx); err != nil {
		return c.fail(ctx, "loading overview", err)
	}
	return nil
}

func (c *AdminController) DeleteProduct(ctx context.Context, id int) error {
	if !c.prompter.Confirm("Are you sure you want to delete this product?") {
		return nil
	}
	if err := c.backend.DeleteProduct(ctx, id); err != nil {
		return c.fail(ctx, "deleting product", err)
	}
	if err := c.loadProducts(ctx); err != nil {
		return c.fail(ctx, "loading products", err)
	}
	if err := c.loadOverview(ctx); err != nil {
		return c.fail(ctx, "loading overview", err)
	}
	return nil
}

func (c *AdminController) DeleteCategory(ctx context.Context, id int) error {
	if !c.prompter.Confirm("Are you sure you want to delete this category?") {
		return nil
	}
	if err := c.backend.DeleteCategory(ctx, id); err != nil {
		return c.fail(ctx, "deleting category", err)
	}
	if err := c.loadCategories(ctx); err != nil {
		return c.fail(ctx, "loading categories", err)
	}
	return nil
}

func (c *AdminController) DeleteSupplier(ctx context.Context, id int) error {
	if !c.prompter.Confirm("Are you sure you want to delete this supplier?") {
		return nil
	}
	if err := c.backend.DeleteSupplier(ctx, id); err != nil {
		return c.fail(ctx, "deleting supplier", err)
	}
	if err := c.loadSuppliers(ctx); err != nil {
		return c.fail(ctx, "loading suppliers", err)
	}
	if err := c.loadOverview(ctx); err != nil {
		return c.fail(ctx, "loading overview", err)
	}
	return nil
}

func (c *AdminController) DeleteUser(ctx context.Context, id int) error {
	if !c.prompter.Confirm("Are you sure you want to delete this user?") {
		return nil
	}
	if err := c.backend.DeleteUser(ctx, id); err != nil {
		return c.fail(ctx, "deleting user", err)
	}
	if err := c.loadUsers(ctx); err != nil {
		return c.fail(ctx, "loading users", err)
	}
	return nil
}

func (c *AdminController) DeletePurchase(ctx context.Context, id int) error {
	if !c.prompter.Confirm("Are you sure you want to delete this purchase?") {
		return nil
	}
	if err := c.backend.DeletePurchase(ctx, id); err != nil {
		return c.fail(ctx, "deleting purchase", err)
	}
	if err := c.loadPurchases(ctx); err != nil {
		return c.fail(ctx, "loading purchases", err)
	}
	return nil
}

func (c *AdminController) DeleteSale(ctx context.Context, id int) error {
	if !c.prompter.Confirm("Are you sure you want to delete this sale?") {
		return nil
	}
	if err := c.backend.DeleteSale(ctx, id); err != nil {
		return c.fail(ctx, "deleting sale", err)
	}
	if err := c.loadSales(ctx); err != nil {
		return c.fail(ctx, "loading sales", err)
	}
	if err := c.loadOverview(ctx); err != nil {
		return c.fail(ctx, "loading overview", err)
	}
	return nil
}

func (c *AdminController) DeleteNotification(ctx context.Context, id int) error {
	if !c.prompter.Confirm("Are you sure you want to delete this notification?") {
		return nil
	}
	if err := c.backend.DeleteNotification(ctx, id); err != nil {
		return c.fail(ctx, "deleting notification", err)
	}
	if err := c.loadNotifications(ctx); err != nil {
		return c.fail(ctx, "loading notifications", err)
	}
	return nil
}

// MarkNotificationRead is fire-and-forget from the user's point of view: a
// failure is logged but never alerted, and the list refreshes either way.
func (c *AdminController) MarkNotificationRead(ctx context.Context, id int) error {
	if err := c.backend.MarkNotificationRead(ctx, id); err != nil {
		c.logg.Error(ctx, "mark notification read", err)
	}
	if err := c.loadNotifications(ctx); err != nil {
		return c.fail(ctx, "loading notifications", err)
	}
	return nil
}

// EditProduct pre-fills the product form from the current server copy and
// pushes fresh dropdown options for the category and supplier selects.
func (c *AdminController) EditProduct(ctx context.Context, id int) (*ProductForm, error) {
	products, err := c.backend.ListProducts(ctx)
	if err != nil {
		return nil, c.fail(ctx, "loading product details", err)
	}
	var found *api.Product
	for i := range products {
		if products[i].ProductID == id {
			found = &products[i]
			break
		}
	}
	if found == nil {
		return nil, c.fail(ctx, "loading product details", pkgerrors.New(pkgerrors.CodeNotFound, fmt.Sprintf("product %d not found", id)))
	}
	if err := c.loadProductOptions(ctx); err != nil {
		return nil, c.fail(ctx, "loading product details", err)
	}
	return &ProductForm{
		ID:           fmt.Sprintf("%d", found.ProductID),
		Name:         found.ProductName,
		CategoryID:   fmt.Sprintf("%d", found.CategoryID),
		SupplierID:   fmt.Sprintf("%d", found.SupplierID),
		Stock:        fmt.Sprintf("%d", found.QuantityInStock),
		ReorderLevel: fmt.Sprintf("%d", found.ReorderLevel),
		Price:        fmt.Sprintf("%g", found.UnitPrice),
	}, nil
}

// NewProductForm readies an empty product form, populating the dropdowns.
func (c *AdminController) NewProductForm(ctx context.Context) (*ProductForm, error) {
	if err := c.loadProductOptions(ctx); err != nil {
		return nil, c.fail(ctx, "loading product options", err)
	}
	return &ProductForm{}, nil
}

func (c *AdminController) loadProductOptions(ctx context.Context) error {
	var (
		categories []api.Category
		suppliers  []api.Supplier
	)
	group, gctx := errgroup.WithContext(ctx)
	group.Go(func() error {
		var err error
		categories, err = c.backend.ListCategories(gctx)
		return err
	})
	group.Go(func() error {
		var err error
		suppliers, err = c.backend.ListSuppliers(gctx)
		return err
	})
	if err := group.Wait(); err != nil {
		return err
	}
	categoryOptions := make([]Option, 0, len(categories))
	for _, cat := range categories {
		categoryOptions = append(categoryOptions, categoryOption(cat))
	}
	supplierOptions := make([]Option, 0, len(suppliers))
	for _, s := range suppliers {
		supplierOptions = append(supplierOptions, supplierOption(s))
	}
	c.renderer.RenderOptions("product-category", categoryOptions)
	c.renderer.RenderOptions("product-supplier", supplierOptions)
	return nil
}

// NewPurchaseForm readies an empty purchase form with fresh product and
// supplier dropdowns.
func (c *AdminController) NewPurchaseForm(ctx context.Context) (*PurchaseForm, error) {
	if err := c.loadPurchaseOptions(ctx); err != nil {
		return nil, c.fail(ctx, "loading purchase options", err)
	}
	return &PurchaseForm{Status: "Pending"}, nil
}

func (c *AdminController) loadPurchaseOptions(ctx context.Context) error {
	var (
		products  []api.Product
		suppliers []api.Supplier
	)
	group, gctx := errgroup.WithContext(ctx)
	group.Go(func() error {
		var err error
		products, err = c.backend.ListProducts(gctx)
		return err
	})
	group.Go(func() error {
		var err error
		suppliers, err = c.backend.ListSuppliers(gctx)
		return err
	})
	if err := group.Wait(); err != nil {
		return err
	}
	productOptions := make([]Option, 0, len(products))
	for _, p := range products {
		productOptions = append(productOptions, productOption(p))
	}
	supplierOptions := make([]Option, 0, len(suppliers))
	for _, s := range suppliers {
		supplierOptions = append(supplierOptions, supplierOption(s))
	}
	c.renderer.RenderOptions("purchase-product", productOptions)
	c.renderer.RenderOptions("purchase-supplier", supplierOptions)
	return nil
}

func (c *AdminController) EditCategory(ctx context.Context, id int) (*CategoryForm, error) {
	categories, err := c.backend.ListCategories(ctx)
	if err != nil {
		return nil, c.fail(ctx, "loading category details", err)
	}
	for _, cat := range categories {
		if cat.CategoryID == id {
			return &CategoryForm{ID: fmt.Sprintf("%d", cat.CategoryID), Name: cat.CategoryName}, nil
		}
	}
	return nil, c.fail(ctx, "loading category details", pkgerrors.New(pkgerrors.CodeNotFound, fmt.Sprintf("category %d not found", id)))
}

func (c *AdminController) EditSupplier(ctx context.Context, id int) (*SupplierForm, error) {
	suppliers, err := c.backend.ListSuppliers(ctx)
	if err != nil {
		return nil, c.fail(ctx, "loading supplier details", err)
	}
	for _, s := range suppliers {
		if s.SupplierID == id {
			return &SupplierForm{
				ID:      fmt.Sprintf("%d", s.SupplierID),
				Name:    s.SupplierName,
				Email:   s.ContactEmail,
				Phone:   s.Phone,
				Address: s.Address,
			}, nil
		}
	}
	return nil, c.fail(ctx, "loading supplier details", pkgerrors.New(pkgerrors.CodeNotFound, fmt.Sprintf("supplier %d not found", id)))
}

// EditUser never carries the password back; the form field stays blank and
// the backend keeps the stored hash unless a new value is submitted.
func (c *AdminController) EditUser(ctx context.Context, id int) (*UserForm, error) {
	users, err := c.backend.ListUsers(ctx)
	if err != nil {
		return nil, c.fail(ctx, "loading user details", err)
	}
	for _, u := range users {
		if u.UserID == id {
			return &UserForm{ID: fmt.Sprintf("%d", u.UserID), Username: u.Username, Role: u.Role}, nil
		}
	}
	return nil, c.fail(ctx, "loading user details", pkgerrors.New(pkgerrors.CodeNotFound, fmt.Sprintf("user %d not found", id)))
}

func (c *AdminController) EditPurchase(ctx context.Context, id int) (*PurchaseForm, error) {
	purchases, err := c.backend.ListPurchases(ctx)
	if err != nil {
		return nil, c.fail(ctx, "loading purchase details", err)
	}
	for _, p := range purchases {
		if p.PurchaseID == id {
			return &PurchaseForm{
				ID:         fmt.Sprintf("%d", p.PurchaseID),
				ProductID:  fmt.Sprintf("%d", p.ProductID),
				SupplierID: fmt.Sprintf("%d", p.SupplierID),
				Quantity:   fmt.Sprintf("%d", p.QuantityPurchased),
				Price:      fmt.Sprintf("%g", p.PurchasePrice),
				Status:     p.Status,
			}, nil
		}
	}
	return nil, c.fail(ctx, "loading purchase details", pkgerrors.New(pkgerrors.CodeNotFound, fmt.Sprintf("purchase %d not found", id)))
}

func (c *AdminController) EditSale(ctx context.Context, id int) (*SaleForm, error) {
	sales, err := c.backend.ListSales(ctx)
	if err != nil {
		return nil, c.fail(ctx, "loading sale details", err)
	}
	products, err := c.backend.ListProducts(ctx)
	if err != nil {
		return nil, c.fail(ctx, "loading sale details", err)
	}
	options := make([]Option, 0, len(products))
	for _, p := range products {
		options = append(options, productOption(p))
	}
	c.renderer.RenderOptions("sale-product", options)
	for _, s := range sales {
		if s.SaleID == id {
			return &SaleForm{
				ID:        fmt.Sprintf("%d", s.SaleID),
				ProductID: fmt.Sprintf("%d", s.ProductID),
				Quantity:  fmt.Sprintf("%d", s.QuantitySold),
				Price:     fmt.Sprintf("%g", s.SalePrice),
			}, nil
		}
	}
	return nil, c.fail(ctx, "loading sale details", pkgerrors.New(pkgerrors.CodeNotFound, fmt.Sprintf("sale %d not found", id)))
}

// Logout clears the stored session and returns to the login screen. A failed
// clear still navigates; the stale file only matters on the next start.
func (c *AdminController) Logout(ctx context.Context) {
	if err := c.sessions.Clear(); err != nil {
		c.logg.Error(ctx, "clear session", err)
	}
	c.renderer.Navigate(NavigateLogin)
}

// Collections reports the channels this controller wants realtime events
// for.
func (c *AdminController) Collections() []string {
	return adminCollections
}

// HandleRealtime refreshes the overview counters and the active tab when any
// watched collection changes server-side. Events for other collections are
// ignored.
func (c *AdminController) HandleRealtime(ctx context.Context, collection string) {
	if !watches(adminCollections, collection) {
		return
	}
	ctx = c.logg.WithCollection(ctx, collection)
	c.logg.Debug(ctx, "realtime refresh")
	if err := c.loadOverview(ctx); err != nil {
		c.logg.Error(ctx, "realtime overview refresh", err)
	}
	if err := c.loadTab(ctx, c.state.ActiveTab); err != nil {
		c.logg.Error(ctx, "realtime tab refresh", err)
	}
}

// fail logs the failure and alerts a generic action message. The server's
// own error text stays in the log; the login screen is the only surface that
// shows it.
func (c *AdminController) fail(ctx context.Context, op string, err error) error {
	c.logg.Error(ctx, op, err)
	c.renderer.ShowAlert("Error " + op)
	return err
}
