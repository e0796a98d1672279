package rest

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"github.com/fleetadm/fleetadm/pkg/api/types/envelope"
	"github.com/fleetadm/fleetadm/pkg/api/types/routes"
)

func (c *client) ListRoutes(ctx context.Context) ([]routes.Detail, int, error) {
	body, err := c.do(ctx, http.MethodGet, c.apipath("api", "rutas"), nil, true)
	if err != nil {
		return nil, 0, fmt.Errorf("list routes: %w", err)
	}

	data, count, err := envelope.Unmarshal[[]routes.Detail](body)
	if err != nil {
		return nil, 0, fmt.Errorf("list routes: %w", err)
	}
	return data, countOr(count, len(data)), nil
}

func (c *client) GetRoute(ctx context.Context, id int) (routes.Detail, error) {
	body, err := c.do(ctx, http.MethodGet, c.apipath("api", "rutas", strconv.Itoa(id)), nil, true)
	if err != nil {
		return routes.Detail{}, fmt.Errorf("get route %d: %w", id, err)
	}

	data, _, err := envelope.Unmarshal[routes.Detail](body)
	if err != nil {
		return routes.Detail{}, fmt.Errorf("get route %d: %w", id, err)
	}
	return data, nil
}

func (c *client) CreateRoute(ctx context.Context, draft routes.Draft) (routes.Detail, error) {
	body, err := c.do(ctx, http.MethodPost, c.apipath("api", "rutas"), draft, true)
	if err != nil {
		return routes.Detail{}, fmt.Errorf("create route: %w", err)
	}

	data, _, err := envelope.Unmarshal[routes.Detail](body)
	if err != nil {
		return routes.Detail{}, fmt.Errorf("create route: %w", err)
	}
	return data, nil
}

func (c *client) UpdateRoute(ctx context.Context, id int, draft routes.Draft) (routes.Detail, error) {
	body, err := c.do(ctx, http.MethodPut, c.apipath("api", "rutas", strconv.Itoa(id)), draft, true)
	if err != nil {
		return routes.Detail{}, fmt.Errorf("update route %d: %w", id, err)
	}

	data, _, err := envelope.Unmarshal[routes.Detail](body)
	if err != nil {
		return routes.Detail{}, fmt.Errorf("update route %d: %w", id, err)
	}
	return data, nil
}

func (c *client) DeleteRoute(ctx context.Context, id int) error {
	_, err := c.do(ctx, http.MethodDelete, c.apipath("api", "rutas", strconv.Itoa(id)), nil, true)
	if err != nil {
		return fmt.Errorf("delete route %d: %w", id, err)
	}
	return nil
}
