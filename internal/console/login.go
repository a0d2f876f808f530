package console

import (
	"context"
	"fmt"

	"github.com/stockroomhq/console/internal/api"
	pkgerrors "github.com/stockroomhq/console/pkg/errors"
	"github.com/stockroomhq/console/pkg/logger"
)

// genericLoginFailure is shown when the backend could not be reached at all.
// Rejections carry the server's own message instead.
const genericLoginFailure = "Login failed. Please try again."

type authenticator interface {
	Login(ctx context.Context, creds api.Credentials) (*api.LoginResponse, error)
}

// LoginController runs the credential exchange and routes the signed-in user
// to the dashboard matching their role.
type LoginController struct {
	auth     authenticator
	renderer Renderer
	sessions sessionStore
	logg     *logger.Logger
}

// LoginParams collects the dependencies for NewLogin.
type LoginParams struct {
	Auth     authenticator
	Renderer Renderer
	Sessions sessionStore
	Logger   *logger.Logger
}

func NewLogin(p LoginParams) (*LoginController, error) {
	if p.Auth == nil {
		return nil, fmt.Errorf("authenticator required")
	}
	if p.Renderer == nil {
		return nil, fmt.Errorf("renderer required")
	}
	if p.Sessions == nil {
		return nil, fmt.Errorf("session store required")
	}
	if p.Logger == nil {
		return nil, fmt.Errorf("logger required")
	}
	return &LoginController{
		auth:     p.Auth,
		renderer: p.Renderer,
		sessions: p.Sessions,
		logg:     p.Logger,
	}, nil
}

// Submit exchanges the credentials. On success the user record is persisted
// and the controller navigates by role; on rejection the inline error shows
// the server's message and the login screen stays put.
func (c *LoginController) Submit(ctx context.Context, username, password string) (*api.User, error) {
	resp, err := c.auth.Login(ctx, api.Credentials{Username: username, Password: password})
	if err != nil {
		c.logg.Error(ctx, "login", err)
		c.renderer.ShowLoginError(genericLoginFailure)
		return nil, err
	}
	if !resp.Success {
		message := resp.Message
		if message == "" {
			message = genericLoginFailure
		}
		c.renderer.ShowLoginError(message)
		return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, message)
	}
	if err := c.sessions.Save(resp.User); err != nil {
		c.logg.Error(ctx, "save session", err)
	}
	switch resp.User.Role {
	case api.RoleAdmin:
		c.renderer.Navigate(NavigateAdmin)
	case api.RoleStaff:
		c.renderer.Navigate(NavigateStaff)
	default:
		c.renderer.ShowLoginError(genericLoginFailure)
		return nil, pkgerrors.New(pkgerrors.CodeForbidden, fmt.Sprintf("unknown role %q", resp.User.Role))
	}
	return &resp.User, nil
}
