package api

import (
	"context"
	"fmt"
	"net/http"
)

const suppliersResource = "suppliers"

func (c *Client) ListSuppliers(ctx context.Context) ([]Supplier, error) {
	var suppliers []Supplier
	if err := c.do(ctx, suppliersResource, http.MethodGet, "/suppliers", nil, &suppliers); err != nil {
		return nil, err
	}
	return suppliers, nil
}

func (c *Client) CreateSupplier(ctx context.Context, payload SupplierPayload) (*Supplier, error) {
	if err := validatePayload(payload); err != nil {
		return nil, err
	}
	var created Supplier
	if err := c.do(ctx, suppliersResource, http.MethodPost, "/suppliers", payload, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (c *Client) UpdateSupplier(ctx context.Context, id int, payload SupplierPayload) (*Supplier, error) {
	if err := validatePayload(payload); err != nil {
		return nil, err
	}
	var updated Supplier
	if err := c.do(ctx, suppliersResource, http.MethodPut, fmt.Sprintf("/suppliers/%d", id), payload, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

func (c *Client) DeleteSupplier(ctx context.Context, id int) error {
	return c.do(ctx, suppliersResource, http.MethodDelete, fmt.Sprintf("/suppliers/%d", id), nil, nil)
}
