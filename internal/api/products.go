package api

import (
	"context"
	"fmt"
	"net/http"
)

const productsResource = "products"

// ListProducts fetches the full product collection.
func (c *Client) ListProducts(ctx context.Context) ([]Product, error) {
	var products []Product
	if err := c.do(ctx, productsResource, http.MethodGet, "/products", nil, &products); err != nil {
		return nil, err
	}
	return products, nil
}

func (c *Client) CreateProduct(ctx context.Context, payload ProductPayload) (*Product, error) {
	if err := validatePayload(payload); err != nil {
		return nil, err
	}
	var created Product
	if err := c.do(ctx, productsResource, http.MethodPost, "/products", payload, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (c *Client) UpdateProduct(ctx context.Context, id int, payload ProductPayload) (*Product, error) {
	if err := validatePayload(payload); err != nil {
		return nil, err
	}
	var updated Product
	if err := c.do(ctx, productsResource, http.MethodPut, fmt.Sprintf("/products/%d", id), payload, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

// UpdateProductStock adjusts only the stock quantity.
func (c *Client) UpdateProductStock(ctx context.Context, id, quantity int) error {
	body := struct {
		QuantityInStock int `json:"QuantityInStock"`
	}{QuantityInStock: quantity}
	return c.do(ctx, productsResource, http.MethodPut, fmt.Sprintf("/products/%d/stock", id), body, nil)
}

func (c *Client) DeleteProduct(ctx context.Context, id int) error {
	return c.do(ctx, productsResource, http.MethodDelete, fmt.Sprintf("/products/%d", id), nil, nil)
}
