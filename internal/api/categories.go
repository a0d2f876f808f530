package api

import (
	"context"
	"fmt"
	"net/http"
)

const categoriesResource = "categories"

func (c *Client) ListCategories(ctx context.Context) ([]Category, error) {
	var categories []Category
	if err := c.do(ctx, categoriesResource, http.MethodGet, "/categories", nil, &categories); err != nil {
		return nil, err
	}
	return categories, nil
}

func (c *Client) CreateCategory(ctx context.Context, payload CategoryPayload) (*Category, error) {
	if err := validatePayload(payload); err != nil {
		return nil, err
	}
	var created Category
	if err := c.do(ctx, categoriesResource, http.MethodPost, "/categories", payload, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (c *Client) UpdateCategory(ctx context.Context, id int, payload CategoryPayload) (*Category, error) {
	if err := validatePayload(payload); err != nil {
		return nil, err
	}
	var updated Category
	if err := c.do(ctx, categoriesResource, http.MethodPut, fmt.Sprintf("/categories/%d", id), payload, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

func (c *Client) DeleteCategory(ctx context.Context, id int) error {
	return c.do(ctx, categoriesResource, http.MethodDelete, fmt.Sprintf("/categories/%d", id), nil, nil)
}
