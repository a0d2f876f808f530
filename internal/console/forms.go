package console

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/stockroomhq/console/internal/api"
	pkgerrors "github.com/stockroomhq/console/pkg/errors"
)

// Form types mirror what arrives from input fields: everything is a string
// until it is coerced here. A populated ID marks an update; an empty ID a
// create.

type ProductForm struct {
	ID           string
	Name         string
	CategoryID   string
	SupplierID   string
	Stock        string
	ReorderLevel string
	Price        string
}

func (f ProductForm) payload() (api.ProductPayload, error) {
	categoryID, err := intField("CategoryID", f.CategoryID)
	if err != nil {
		return api.ProductPayload{}, err
	}
	supplierID, err := intField("SupplierID", f.SupplierID)
	if err != nil {
		return api.ProductPayload{}, err
	}
	stock, err := intField("QuantityInStock", f.Stock)
	if err != nil {
		return api.ProductPayload{}, err
	}
	reorder, err := intField("ReorderLevel", f.ReorderLevel)
	if err != nil {
		return api.ProductPayload{}, err
	}
	price, err := floatField("UnitPrice", f.Price)
	if err != nil {
		return api.ProductPayload{}, err
	}
	return api.ProductPayload{
		ProductName:     strings.TrimSpace(f.Name),
		CategoryID:      categoryID,
		SupplierID:      supplierID,
		QuantityInStock: stock,
		ReorderLevel:    reorder,
		UnitPrice:       price,
	}, nil
}

type CategoryForm struct {
	ID   string
	Name string
}

func (f CategoryForm) payload() api.CategoryPayload {
	return api.CategoryPayload{CategoryName: strings.TrimSpace(f.Name)}
}

type SupplierForm struct {
	ID      string
	Name    string
	Email   string
	Phone   string
	Address string
}

func (f SupplierForm) payload() api.SupplierPayload {
	return api.SupplierPayload{
		SupplierName: strings.TrimSpace(f.Name),
		ContactEmail: strings.TrimSpace(f.Email),
		Phone:        strings.TrimSpace(f.Phone),
		Address:      strings.TrimSpace(f.Address),
	}
}

type UserForm struct {
	ID       string
	Username string
	Password string
	Role     string
}

func (f UserForm) payload() api.UserPayload {
	return api.UserPayload{
		Username: strings.TrimSpace(f.Username),
		Password: f.Password,
		Role:     strings.TrimSpace(f.Role),
	}
}

type PurchaseForm struct {
	ID         string
	ProductID  string
	SupplierID string
	Quantity   string
	Price      string
	Status     string
}

func (f PurchaseForm) payload() (api.PurchaseCreatePayload, error) {
	productID, err := intField("productID", f.ProductID)
	if err != nil {
		return api.PurchaseCreatePayload{}, err
	}
	supplierID, err := intField("supplierID", f.SupplierID)
	if err != nil {
		return api.PurchaseCreatePayload{}, err
	}
	quantity, err := intField("quantityPurchased", f.Quantity)
	if err != nil {
		return api.PurchaseCreatePayload{}, err
	}
	price, err := floatField("purchasePrice", f.Price)
	if err != nil {
		return api.PurchaseCreatePayload{}, err
	}
	return api.PurchaseCreatePayload{
		ProductID:         productID,
		SupplierID:        supplierID,
		QuantityPurchased: quantity,
		PurchasePrice:     price,
	}, nil
}

type SaleForm struct {
	ID        string
	ProductID string
	Quantity  string
	Price     string
}

func (f SaleForm) updatePayload() (api.SaleUpdatePayload, error) {
	productID, err := intField("ProductID", f.ProductID)
	if err != nil {
		return api.SaleUpdatePayload{}, err
	}
	quantity, err := intField("QuantitySold", f.Quantity)
	if err != nil {
		return api.SaleUpdatePayload{}, err
	}
	price, err := floatField("SalePrice", f.Price)
	if err != nil {
		return api.SaleUpdatePayload{}, err
	}
	return api.SaleUpdatePayload{
		ProductID:    productID,
		QuantitySold: quantity,
		SalePrice:    price,
	}, nil
}

func (f SaleForm) createPayload(userID int) (api.SaleCreatePayload, error) {
	productID, err := intField("productID", f.ProductID)
	if err != nil {
		return api.SaleCreatePayload{}, err
	}
	quantity, err := intField("quantitySold", f.Quantity)
	if err != nil {
		return api.SaleCreatePayload{}, err
	}
	price, err := floatField("salePrice", f.Price)
	if err != nil {
		return api.SaleCreatePayload{}, err
	}
	return api.SaleCreatePayload{
		ProductID:    productID,
		QuantitySold: quantity,
		SalePrice:    price,
		UserID:       userID,
	}, nil
}

// idField distinguishes create from update: empty means create.
func idField(value string) (int, bool, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return 0, false, nil
	}
	id, err := strconv.Atoi(trimmed)
	if err != nil {
		return 0, false, pkgerrors.New(pkgerrors.CodeValidation, fmt.Sprintf("invalid id %q", value))
	}
	return id, true, nil
}

func intField(name, value string) (int, error) {
	parsed, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return 0, pkgerrors.New(pkgerrors.CodeValidation, fmt.Sprintf("invalid %s value %q", name, value))
	}
	return parsed, nil
}

func floatField(name, value string) (float64, error) {
	parsed, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
	if err != nil {
		return 0, pkgerrors.New(pkgerrors.CodeValidation, fmt.Sprintf("invalid %s value %q", name, value))
	}
	return parsed, nil
}
