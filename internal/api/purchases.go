package api

import (
	"context"
	"fmt"
	"net/http"
)

const purchasesResource = "purchases"

func (c *Client) ListPurchases(ctx context.Context) ([]Purchase, error) {
	var purchases []Purchase
	if err := c.do(ctx, purchasesResource, http.MethodGet, "/purchases", nil, &purchases); err != nil {
		return nil, err
	}
	return purchases, nil
}

func (c *Client) CreatePurchase(ctx context.Context, payload PurchaseCreatePayload) (*Purchase, error) {
	if err := validatePayload(payload); err != nil {
		return nil, err
	}
	var created Purchase
	if err := c.do(ctx, purchasesResource, http.MethodPost, "/purchases", payload, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// UpdatePurchaseStatus is the only mutation allowed on an existing purchase.
func (c *Client) UpdatePurchaseStatus(ctx context.Context, id int, status string) error {
	body := struct {
		Status string `json:"Status"`
	}{Status: status}
	return c.do(ctx, purchasesResource, http.MethodPut, fmt.Sprintf("/purchases/%d/status", id), body, nil)
}

func (c *Client) DeletePurchase(ctx context.Context, id int) error {
	return c.do(ctx, purchasesResource, http.MethodDelete, fmt.Sprintf("/purchases/%d", id), nil, nil)
}
