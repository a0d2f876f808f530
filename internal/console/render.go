package console

// Row is the view model for one table row: pre-formatted cells plus the
// actions the UI should offer for it.
type Row struct {
	Cells   []string
	Actions []string
}

const (
	ActionEdit       = "edit"
	ActionDelete     = "delete"
	ActionMarkAsRead = "markAsRead"
)

// Table pairs column headers with view-model rows.
type Table struct {
	Columns []string
	Rows    []Row
}

// Card is the view model for the staff notification feed.
type Card struct {
	Title  string
	Body   string
	Footer string
	Unread bool
}

// Overview carries the derived summary counters. They are recomputed from
// full collection scans, never stored.
type Overview struct {
	TotalProducts  int
	TotalSales     int
	TotalSuppliers int
	LowStockCount  int
}

// Option is one entry of a form dropdown.
type Option struct {
	Value string
	Label string
}

// Navigation targets handed to Renderer.Navigate.
const (
	NavigateLogin = "login"
	NavigateAdmin = "admin-dashboard"
	NavigateStaff = "staff-dashboard"
)

// Renderer is the presentation surface. Controllers push fully formatted
// view models through it and never touch presentation concerns themselves.
type Renderer interface {
	RenderTable(tab Tab, table Table)
	RenderCards(tab Tab, cards []Card)
	RenderOverview(overview Overview)
	RenderOptions(field string, options []Option)
	CloseModal(name string)
	ResetForm(name string)
	ShowAlert(message string)
	ShowSuccess(message string)
	ShowLoginError(message string)
	Navigate(target string)
}

// Prompter supplies the blocking confirmation step that guards deletes.
type Prompter interface {
	Confirm(message string) bool
}
