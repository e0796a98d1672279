package rest

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"github.com/fleetadm/fleetadm/pkg/api/types/envelope"
	"github.com/fleetadm/fleetadm/pkg/api/types/trucks"
)

func (c *client) ListTrucks(ctx context.Context) ([]trucks.Detail, int, error) {
	body, err := c.do(ctx, http.MethodGet, c.apipath("api", "camiones"), nil, true)
	if err != nil {
		return nil, 0, fmt.Errorf("list trucks: %w", err)
	}

	data, count, err := envelope.Unmarshal[[]trucks.Detail](body)
	if err != nil {
		return nil, 0, fmt.Errorf("list trucks: %w", err)
	}
	return data, countOr(count, len(data)), nil
}

func (c *client) GetTruck(ctx context.Context, id int) (trucks.Detail, error) {
	body, err := c.do(ctx, http.MethodGet, c.apipath("api", "camiones", strconv.Itoa(id)), nil, true)
	if err != nil {
		return trucks.Detail{}, fmt.Errorf("get truck %d: %w", id, err)
	}

	data, _, err := envelope.Unmarshal[trucks.Detail](body)
	if err != nil {
		return trucks.Detail{}, fmt.Errorf("get truck %d: %w", id, err)
	}
	return data, nil
}

func (c *client) CreateTruck(ctx context.Context, draft trucks.Draft) (trucks.Detail, error) {
	body, err := c.do(ctx, http.MethodPost, c.apipath("api", "camiones"), draft, true)
	if err != nil {
		return trucks.Detail{}, fmt.Errorf("create truck: %w", err)
	}

	data, _, err := envelope.Unmarshal[trucks.Detail](body)
	if err != nil {
		return trucks.Detail{}, fmt.Errorf("create truck: %w", err)
	}
	return data, nil
}

func (c *client) UpdateTruck(ctx context.Context, id int, draft trucks.Draft) (trucks.Detail, error) {
	body, err := c.do(ctx, http.MethodPut, c.apipath("api", "camiones", strconv.Itoa(id)), draft, true)
	if err != nil {
		return trucks.Detail{}, fmt.Errorf("update truck %d: %w", id, err)
	}

	data, _, err := envelope.Unmarshal[trucks.Detail](body)
	if err != nil {
		return trucks.Detail{}, fmt.Errorf("update truck %d: %w", id, err)
	}
	return data, nil
}

func (c *client) DeleteTruck(ctx context.Context, id int) error {
	_, err := c.do(ctx, http.MethodDelete, c.apipath("api", "camiones", strconv.Itoa(id)), nil, true)
	if err != nil {
		return fmt.Errorf("delete truck %d: %w", id, err)
	}
	return nil
}
