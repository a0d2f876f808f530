package api

// Wire types for the inventory backend. Field names are part of the backend
// contract and must not be renamed: entity attributes are capitalized, while
// the sale and purchase create payloads use lower-camel keys.

type Product struct {
	ProductID       int     `json:"ProductID"`
	ProductName     string  `json:"ProductName"`
	CategoryID      int     `json:"CategoryID"`
	SupplierID      int     `json:"SupplierID"`
	CategoryName    string  `json:"CategoryName"`
	SupplierName    string  `json:"SupplierName"`
	QuantityInStock int     `json:"QuantityInStock"`
	ReorderLevel    int     `json:"ReorderLevel"`
	UnitPrice       float64 `json:"UnitPrice"`
}

// LowStock reports whether the product is at or below its reorder level.
// Display-only; the backend owns the real threshold logic.
func (p Product) LowStock() bool {
	return p.QuantityInStock <= p.ReorderLevel
}

type Category struct {
	CategoryID   int    `json:"CategoryID"`
	CategoryName string `json:"CategoryName"`
}

type Supplier struct {
	SupplierID   int    `json:"SupplierID"`
	SupplierName string `json:"SupplierName"`
	ContactEmail string `json:"ContactEmail"`
	Phone        string `json:"Phone"`
	Address      string `json:"Address"`
}

type User struct {
	UserID   int    `json:"UserID"`
	Username string `json:"Username"`
	Role     string `json:"Role"`
}

const (
	RoleAdmin = "Admin"
	RoleStaff = "Staff"
)

type Purchase struct {
	PurchaseID        int     `json:"PurchaseID"`
	ProductID         int     `json:"ProductID"`
	SupplierID        int     `json:"SupplierID"`
	ProductName       string  `json:"ProductName"`
	SupplierName      string  `json:"SupplierName"`
	QuantityPurchased int     `json:"QuantityPurchased"`
	PurchasePrice     float64 `json:"PurchasePrice"`
	Status            string  `json:"Status"`
	PurchaseDate      string  `json:"PurchaseDate"`
}

type Sale struct {
	SaleID       int     `json:"SaleID"`
	ProductID    int     `json:"ProductID"`
	UserID       int     `json:"UserID"`
	ProductName  string  `json:"ProductName"`
	Username     string  `json:"Username"`
	QuantitySold int     `json:"QuantitySold"`
	SalePrice    float64 `json:"SalePrice"`
	SaleDate     string  `json:"SaleDate"`
}

type Notification struct {
	NotificationID int    `json:"NotificationID"`
	Message        string `json:"Message"`
	ProductID      int    `json:"ProductID"`
	ProductName    string `json:"ProductName"`
	IsRead         bool   `json:"IsRead"`
	CreatedAt      string `json:"CreatedAt"`
}

type ProductPayload struct {
	ProductName     string  `json:"ProductName" validate:"required"`
	CategoryID      int     `json:"CategoryID" validate:"required"`
	SupplierID      int     `json:"SupplierID" validate:"required"`
	QuantityInStock int     `json:"QuantityInStock" validate:"gte=0"`
	ReorderLevel    int     `json:"ReorderLevel" validate:"gte=0"`
	UnitPrice       float64 `json:"UnitPrice" validate:"gte=0"`
}

type CategoryPayload struct {
	CategoryName string `json:"CategoryName" validate:"required"`
}

type SupplierPayload struct {
	SupplierName string `json:"SupplierName" validate:"required"`
	ContactEmail string `json:"ContactEmail" validate:"omitempty,email"`
	Phone        string `json:"Phone"`
	Address      string `json:"Address"`
}

// UserPayload carries the write-only password on create and update.
type UserPayload struct {
	Username string `json:"Username" validate:"required"`
	Password string `json:"Password"`
	Role     string `json:"Role" validate:"required,oneof=Admin Staff"`
}

// PurchaseCreatePayload uses the backend's lower-camel create contract.
// Status is server-assigned on create.
type PurchaseCreatePayload struct {
	ProductID         int     `json:"productID" validate:"required"`
	SupplierID        int     `json:"supplierID" validate:"required"`
	QuantityPurchased int     `json:"quantityPurchased" validate:"gt=0"`
	PurchasePrice     float64 `json:"purchasePrice" validate:"gte=0"`
}

// SaleCreatePayload uses the backend's lower-camel create contract.
type SaleCreatePayload struct {
	ProductID    int     `json:"productID" validate:"required"`
	QuantitySold int     `json:"quantitySold" validate:"gt=0"`
	SalePrice    float64 `json:"salePrice" validate:"gte=0"`
	UserID       int     `json:"userID" validate:"required"`
}

// SaleUpdatePayload is the capitalized shape used by admin edits.
type SaleUpdatePayload struct {
	ProductID    int     `json:"ProductID" validate:"required"`
	QuantitySold int     `json:"QuantitySold" validate:"gt=0"`
	SalePrice    float64 `json:"SalePrice" validate:"gte=0"`
}

type Credentials struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type LoginResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	User    User   `json:"user"`
}
