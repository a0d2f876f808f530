// Package console holds the per-role view controllers: tab state, client-side
// filtering, form marshalling, and the refresh fan-out driven by realtime
// events. Rendering itself lives behind the Renderer interface.
package console

import (
	"strings"

	"github.com/stockroomhq/console/internal/api"
)

// Tab identifies one panel of a dashboard. Exactly one tab is active per
// controller at any time.
type Tab string

const (
	TabProducts      Tab = "products"
	TabCategories    Tab = "categories"
	TabSuppliers     Tab = "suppliers"
	TabUsers         Tab = "users"
	TabPurchases     Tab = "purchases"
	TabSales         Tab = "sales"
	TabNotifications Tab = "notifications"

	TabRecordSale   Tab = "recordSale"
	TabViewProducts Tab = "viewProducts"
	TabSalesHistory Tab = "salesHistory"
)

// State is the whole mutable state of one controller: the active tab, the
// per-tab search terms, and the signed-in user. No other client-side state
// survives a refresh; every activation re-fetches.
type State struct {
	ActiveTab   Tab
	SearchTerms map[Tab]string
	User        api.User
}

func newState(initial Tab, tabs []Tab) *State {
	terms := make(map[Tab]string, len(tabs))
	for _, tab := range tabs {
		terms[tab] = ""
	}
	return &State{
		ActiveTab:   initial,
		SearchTerms: terms,
	}
}

func (s *State) search(tab Tab) string {
	return s.SearchTerms[tab]
}

func (s *State) setSearch(tab Tab, term string) {
	s.SearchTerms[tab] = strings.ToLower(term)
}

func validTab(tab Tab, tabs []Tab) bool {
	for _, candidate := range tabs {
		if candidate == tab {
			return true
		}
	}
	return false
}
