package api

import (
	"context"
	"fmt"
	"net/http"
)

const usersResource = "users"

// Login authenticates against the backend. A failed login is not a request
// error: the backend answers 2xx with success=false and a message.
func (c *Client) Login(ctx context.Context, creds Credentials) (*LoginResponse, error) {
	if err := validatePayload(creds); err != nil {
		return nil, err
	}
	var resp LoginResponse
	if err := c.do(ctx, usersResource, http.MethodPost, "/users/login", creds, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) ListUsers(ctx context.Context) ([]User, error) {
	var users []User
	if err := c.do(ctx, usersResource, http.MethodGet, "/users", nil, &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (c *Client) CreateUser(ctx context.Context, payload UserPayload) (*User, error) {
	if err := validatePayload(payload); err != nil {
		return nil, err
	}
	var created User
	if err := c.do(ctx, usersResource, http.MethodPost, "/users", payload, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (c *Client) UpdateUser(ctx context.Context, id int, payload UserPayload) (*User, error) {
	if err := validatePayload(payload); err != nil {
		return nil, err
	}
	var updated User
	if err := c.do(ctx, usersResource, http.MethodPut, fmt.Sprintf("/users/%d", id), payload, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

func (c *Client) DeleteUser(ctx context.Context, id int) error {
	return c.do(ctx, usersResource, http.MethodDelete, fmt.Sprintf("/users/%d", id), nil, nil)
}
