package api

import (
	"context"
	"fmt"
	"net/http"
)

const salesResource = "sales"

func (c *Client) ListSales(ctx context.Context) ([]Sale, error) {
	var sales []Sale
	if err := c.do(ctx, salesResource, http.MethodGet, "/sales", nil, &sales); err != nil {
		return nil, err
	}
	return sales, nil
}

// CreateSale records a sale on behalf of the acting staff user.
func (c *Client) CreateSale(ctx context.Context, payload SaleCreatePayload) (*Sale, error) {
	if err := validatePayload(payload); err != nil {
		return nil, err
	}
	var created Sale
	if err := c.do(ctx, salesResource, http.MethodPost, "/sales", payload, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (c *Client) UpdateSale(ctx context.Context, id int, payload SaleUpdatePayload) (*Sale, error) {
	if err := validatePayload(payload); err != nil {
		return nil, err
	}
	var updated Sale
	if err := c.do(ctx, salesResource, http.MethodPut, fmt.Sprintf("/sales/%d", id), payload, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

func (c *Client) DeleteSale(ctx context.Context, id int) error {
	return c.do(ctx, salesResource, http.MethodDelete, fmt.Sprintf("/sales/%d", id), nil, nil)
}
