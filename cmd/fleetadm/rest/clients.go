package rest

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"github.com/fleetadm/fleetadm/pkg/api/types/clients"
	"github.com/fleetadm/fleetadm/pkg/api/types/envelope"
)

func (c *client) ListClients(ctx context.Context) ([]clients.Detail, int, error) {
	body, err := c.do(ctx, http.MethodGet, c.apipath("api", "clientes"), nil, true)
	if err != nil {
		return nil, 0, fmt.Errorf("list clients: %w", err)
	}

	data, count, err := envelope.Unmarshal[[]clients.Detail](body)
	if err != nil {
		return nil, 0, fmt.Errorf("list clients: %w", err)
	}
	return data, countOr(count, len(data)), nil
}

func (c *client) GetClient(ctx context.Context, id int) (clients.Detail, error) {
	body, err := c.do(ctx, http.MethodGet, c.apipath("api", "clientes", strconv.Itoa(id)), nil, true)
	if err != nil {
		return clients.Detail{}, fmt.Errorf("get client %d: %w", id, err)
	}

	data, _, err := envelope.Unmarshal[clients.Detail](body)
	if err != nil {
		return clients.Detail{}, fmt.Errorf("get client %d: %w", id, err)
	}
	return data, nil
}

func (c *client) CreateClient(ctx context.Context, draft clients.Draft) (clients.Detail, error) {
	body, err := c.do(ctx, http.MethodPost, c.apipath("api", "clientes"), draft, true)
	if err != nil {
		return clients.Detail{}, fmt.Errorf("create client: %w", err)
	}

	data, _, err := envelope.Unmarshal[clients.Detail](body)
	if err != nil {
		return clients.Detail{}, fmt.Errorf("create client: %w", err)
	}
	return data, nil
}

func (c *client) UpdateClient(ctx context.Context, id int, draft clients.Draft) (clients.Detail, error) {
	body, err := c.do(ctx, http.MethodPut, c.apipath("api", "clientes", strconv.Itoa(id)), draft, true)
	if err != nil {
		return clients.Detail{}, fmt.Errorf("update client %d: %w", id, err)
	}

	data, _, err := envelope.Unmarshal[clients.Detail](body)
	if err != nil {
		return clients.Detail{}, fmt.Errorf("update client %d: %w", id, err)
	}
	return data, nil
}

func (c *client) DeleteClient(ctx context.Context, id int) error {
	_, err := c.do(ctx, http.MethodDelete, c.apipath("api", "clientes", strconv.Itoa(id)), nil, true)
	if err != nil {
		return fmt.Errorf("delete client %d: %w", id, err)
	}
	return nil
}

// countOr unwraps the optional server count.
func countOr(count *int, fallback int) int {
	if count == nil {
		return fallback
	}
	return *count
}
