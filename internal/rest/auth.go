package rest

import (
	"context"

	"github.com/go-faster/errors"

	"github.com/velora-jewels/storefront-go/internal/domain/user"
	"github.com/velora-jewels/storefront-go/internal/gateway"
	"github.com/velora-jewels/storefront-go/internal/session"
)

var _ session.AuthService = (*AuthClient)(nil)

// AuthClient talks to the authentication service.
type AuthClient struct {
	api *gateway.Client
}

// NewAuthClient returns an AuthClient using the given gateway.
func NewAuthClient(api *gateway.Client) *AuthClient {
	return &AuthClient{api: api}
}

// Login exchanges credentials for a token and identity.
func (c *AuthClient) Login(ctx context.Context, creds session.Credentials) (*session.AuthResponse, error) {
	var out session.AuthResponse
	if err := c.api.Post(ctx, "/auth/login", creds, &out); err != nil {
		return nil, errors.Wrap(err, "login")
	}
	return &out, nil
}

// Register creates an account and returns the new session.
func (c *AuthClient) Register(ctx context.Context, reg session.Registration) (*session.AuthResponse, error) {
	var out session.AuthResponse
	if err := c.api.Post(ctx, "/auth/register", reg, &out); err != nil {
		return nil, errors.Wrap(err, "register")
	}
	return &out, nil
}

// Profile fetches the authenticated user's profile.
func (c *AuthClient) Profile(ctx context.Context) (*user.User, error) {
	var out user.User
	if err := c.api.Get(ctx, "/auth/profile", nil, &out); err != nil {
		return nil, errors.Wrap(err, "get profile")
	}
	return &out, nil
}
