package console

// Realtime event dispatch. Collection names on the wire match the admin tab
// identifiers one to one; the maps below decide which stored-collection
// changes each role reacts to.

var adminCollections = []string{
	"products",
	"categories",
	"suppliers",
	"users",
	"purchases",
	"sales",
	"notifications",
}

var staffCollections = []string{
	"products",
	"sales",
	"notifications",
}

func watches(collections []string, collection string) bool {
	for _, candidate := range collections {
		if candidate == collection {
			return true
		}
	}
	return false
}
