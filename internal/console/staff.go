package console

import (
	"context"
	"fmt"

	"github.com/stockroomhq/console/internal/api"
	pkgerrors "github.com/stockroomhq/console/pkg/errors"
	"github.com/stockroomhq/console/pkg/logger"
)

var staffTabs = []Tab{
	TabRecordSale,
	TabViewProducts,
	TabSalesHistory,
	TabNotifications,
}

// StaffController drives the point-of-sale console: record a sale, browse
// the read-only product list, review sale history, and watch the
// notification feed. There is no search box on this surface.
type StaffController struct {
	backend  Backend
	renderer Renderer
	sessions sessionStore
	logg     *logger.Logger
	state    *State
}

// StaffParams collects the dependencies for NewStaff.
type StaffParams struct {
	Backend  Backend
	Renderer Renderer
	Sessions sessionStore
	Logger   *logger.Logger
	User     api.User
}

func NewStaff(p StaffParams) (*StaffController, error) {
	if p.Backend == nil {
		return nil, fmt.Errorf("backend required")
	}
	if p.Renderer == nil {
		return nil, fmt.Errorf("renderer required")
	}
	if p.Sessions == nil {
		return nil, fmt.Errorf("session store required")
	}
	if p.Logger == nil {
		return nil, fmt.Errorf("logger required")
	}
	if p.User.Role != api.RoleStaff {
		return nil, pkgerrors.New(pkgerrors.CodeForbidden, fmt.Sprintf("role %q cannot open the staff console", p.User.Role))
	}
	state := newState(TabRecordSale, staffTabs)
	state.User = p.User
	return &StaffController{
		backend:  p.Backend,
		renderer: p.Renderer,
		sessions: p.Sessions,
		logg:     p.Logger,
		state:    state,
	}, nil
}

// Start opens the default record-sale tab with a fresh product dropdown.
func (c *StaffController) Start(ctx context.Context) error {
	ctx = c.logg.WithUser(ctx, c.state.User.Username)
	return c.ActivateTab(ctx, TabRecordSale)
}

func (c *StaffController) ActivateTab(ctx context.Context, tab Tab) error {
	if !validTab(tab, staffTabs) {
		return pkgerrors.New(pkgerrors.CodeValidation, fmt.Sprintf("unknown tab %q", tab))
	}
	c.state.ActiveTab = tab
	ctx = c.logg.WithTab(ctx, string(tab))
	if err := c.loadTab(ctx, tab); err != nil {
		return c.fail(ctx, fmt.Sprintf("loading %s", tab), err)
	}
	return nil
}

func (c *StaffController) loadTab(ctx context.Context, tab Tab) error {
	switch tab {
	case TabRecordSale:
		return c.loadSaleOptions(ctx)
	case TabViewProducts:
		return c.loadProducts(ctx)
	case TabSalesHistory:
		return c.loadSales(ctx)
	case TabNotifications:
		return c.loadNotifications(ctx)
	default:
		return pkgerrors.New(pkgerrors.CodeValidation, fmt.Sprintf("unknown tab %q", tab))
	}
}

// loadSaleOptions refreshes the product dropdown on the record-sale form so
// the stock shown next to each product name stays current.
func (c *StaffController) loadSaleOptions(ctx context.Context) error {
	products, err := c.backend.ListProducts(ctx)
	if err != nil {
		return err
	}
	options := make([]Option, 0, len(products))
	for _, p := range products {
		options = append(options, saleProductOption(p))
	}
	c.renderer.RenderOptions("sale-product", options)
	return nil
}

func (c *StaffController) loadProducts(ctx context.Context) error {
	products, err := c.backend.ListProducts(ctx)
	if err != nil {
		return err
	}
	rows := make([]Row, 0, len(products))
	for _, p := range products {
		rows = append(rows, staffProductRow(p))
	}
	c.renderer.RenderTable(TabViewProducts, Table{Columns: staffProductColumns, Rows: rows})
	return nil
}

func (c *StaffController) loadSales(ctx context.Context) error {
	sales, err := c.backend.ListSales(ctx)
	if err != nil {
		return err
	}
	rows := make([]Row, 0, len(sales))
	for _, s := range sales {
		rows = append(rows, staffSaleRow(s))
	}
	c.renderer.RenderTable(TabSalesHistory, Table{Columns: staffSaleColumns, Rows: rows})
	return nil
}

func (c *StaffController) loadNotifications(ctx context.Context) error {
	notifications, err := c.backend.ListNotifications(ctx)
	if err != nil {
		return err
	}
	cards := make([]Card, 0, len(notifications))
	for _, n := range notifications {
		cards = append(cards, notificationCard(n))
	}
	c.renderer.RenderCards(TabNotifications, cards)
	return nil
}

// RecordSale submits a new sale attributed to the signed-in user, then
// refreshes the product dropdown so the new stock level shows immediately.
func (c *StaffController) RecordSale(ctx context.Context, form SaleForm) error {
	payload, err := form.createPayload(c.state.User.UserID)
	if err != nil {
		return c.fail(ctx, "recording sale", err)
	}
	if _, err := c.backend.CreateSale(ctx, payload); err != nil {
		return c.fail(ctx, "recording sale", err)
	}
	c.renderer.ResetForm("sale")
	c.renderer.ShowSuccess("Sale recorded successfully!")
	if err := c.loadSaleOptions(ctx); err != nil {
		return c.fail(ctx, "loading products", err)
	}
	// A sale can push a product under its reorder level, so the feed is
	// refreshed eagerly instead of waiting for the realtime event.
	if err := c.loadNotifications(ctx); err != nil {
		return c.fail(ctx, "loading notifications", err)
	}
	return nil
}

func (c *StaffController) Logout(ctx context.Context) {
	if err := c.sessions.Clear(); err != nil {
		c.logg.Error(ctx, "clear session", err)
	}
	c.renderer.Navigate(NavigateLogin)
}

func (c *StaffController) Collections() []string {
	return staffCollections
}

// HandleRealtime refreshes the active tab and, on stock-affecting changes,
// the sale product dropdown. Collections this console does not show are
// ignored.
func (c *StaffController) HandleRealtime(ctx context.Context, collection string) {
	if !watches(staffCollections, collection) {
		return
	}
	ctx = c.logg.WithCollection(ctx, collection)
	c.logg.Debug(ctx, "realtime refresh")
	if err := c.loadTab(ctx, c.state.ActiveTab); err != nil {
		c.logg.Error(ctx, "realtime tab refresh", err)
	}
	if c.state.ActiveTab != TabRecordSale && (collection == "products" || collection == "sales") {
		if err := c.loadSaleOptions(ctx); err != nil {
			c.logg.Error(ctx, "realtime dropdown refresh", err)
		}
	}
}

func (c *StaffController) fail(ctx context.Context, op string, err error) error {
	c.logg.Error(ctx, op, err)
	c.renderer.ShowAlert("Error " + op)
	return err
}
