package rest

import (
	"context"
	"fmt"
	"net/http"

	"github.com/fleetadm/fleetadm/pkg/api/types/envelope"
	"github.com/fleetadm/fleetadm/pkg/api/types/users"
)

// Login posts the credentials to the single login endpoint.
//
// The request is unauthenticated on purpose: a stale bearer token
// must not color a fresh login, and a 401 here means wrong
// credentials, not an expired session.
func (c *client) Login(ctx context.Context, username, password string) (users.LoginData, error) {
	body, err := c.do(
		ctx, http.MethodPost,
		c.apipath("api", "usuarios", "login"),
		users.LoginRequest{Username: username, Password: password},
		false,
	)
	if err != nil {
		return users.LoginData{}, fmt.Errorf("login: %w", err)
	}

	data, _, err := envelope.Unmarshal[users.LoginData](body)
	if err != nil {
		return users.LoginData{}, fmt.Errorf("login: %w", err)
	}
	return data, nil
}

// VerifyToken probes an endpoint requiring authentication. Any 2xx
// means the token is still good.
func (c *client) VerifyToken(ctx context.Context) error {
	if _, err := c.do(ctx, http.MethodGet, c.apipath("api", "usuarios"), nil, true); err != nil {
		return fmt.Errorf("verify token: %w", err)
	}
	return nil
}
