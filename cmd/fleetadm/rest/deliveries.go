package rest

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/fleetadm/fleetadm/pkg/api/types/clients"
	"github.com/fleetadm/fleetadm/pkg/api/types/deliveries"
	"github.com/fleetadm/fleetadm/pkg/api/types/envelope"
	apierr "github.com/fleetadm/fleetadm/pkg/api/types/errors"
)

func (c *client) ListDeliveries(ctx context.Context) ([]deliveries.Detail, int, error) {
	return c.listDeliveries(ctx, c.apipath("api", "repartos"))
}

func (c *client) ListDeliveriesByTruck(ctx context.Context, truckId int) ([]deliveries.Detail, int, error) {
	return c.listDeliveries(ctx, c.apipath("api", "repartos", "camion", strconv.Itoa(truckId)))
}

func (c *client) ListDeliveriesByRoute(ctx context.Context, routeId int) ([]deliveries.Detail, int, error) {
	return c.listDeliveries(ctx, c.apipath("api", "repartos", "ruta", strconv.Itoa(routeId)))
}

func (c *client) listDeliveries(ctx context.Context, url string) ([]deliveries.Detail, int, error) {
	body, err := c.do(ctx, http.MethodGet, url, nil, true)
	if err != nil {
		return nil, 0, fmt.Errorf("list deliveries: %w", err)
	}

	data, count, err := envelope.Unmarshal[[]deliveries.Detail](body)
	if err != nil {
		return nil, 0, fmt.Errorf("list deliveries: %w", err)
	}
	return data, countOr(count, len(data)), nil
}

func (c *client) GetDelivery(ctx context.Context, id int) (deliveries.Detail, error) {
	body, err := c.do(ctx, http.MethodGet, c.apipath("api", "repartos", strconv.Itoa(id)), nil, true)
	if err != nil {
		return deliveries.Detail{}, fmt.Errorf("get delivery %d: %w", id, err)
	}

	data, _, err := envelope.Unmarshal[deliveries.Detail](body)
	if err != nil {
		return deliveries.Detail{}, fmt.Errorf("get delivery %d: %w", id, err)
	}
	return data, nil
}

func (c *client) CreateDelivery(ctx context.Context, draft deliveries.Draft) (deliveries.Detail, error) {
	body, err := c.do(ctx, http.MethodPost, c.apipath("api", "repartos"), draft, true)
	if err != nil {
		return deliveries.Detail{}, fmt.Errorf("create delivery: %w", err)
	}

	data, _, err := envelope.Unmarshal[deliveries.Detail](body)
	if err != nil {
		return deliveries.Detail{}, fmt.Errorf("create delivery: %w", err)
	}
	return data, nil
}

func (c *client) UpdateDelivery(ctx context.Context, id int, draft deliveries.Draft) (deliveries.Detail, error) {
	body, err := c.do(ctx, http.MethodPut, c.apipath("api", "repartos", strconv.Itoa(id)), draft, true)
	if err != nil {
		return deliveries.Detail{}, fmt.Errorf("update delivery %d: %w", id, err)
	}

	data, _, err := envelope.Unmarshal[deliveries.Detail](body)
	if err != nil {
		return deliveries.Detail{}, fmt.Errorf("update delivery %d: %w", id, err)
	}
	return data, nil
}

func (c *client) DeleteDelivery(ctx context.Context, id int) error {
	_, err := c.do(ctx, http.MethodDelete, c.apipath("api", "repartos", strconv.Itoa(id)), nil, true)
	if err != nil {
		return fmt.Errorf("delete delivery %d: %w", id, err)
	}
	return nil
}

func (c *client) DeliveryClients(ctx context.Context, id int) ([]clients.Detail, error) {
	body, err := c.do(
		ctx, http.MethodGet,
		c.apipath("api", "repartos", strconv.Itoa(id), "clientes"), nil, true,
	)
	if err != nil {
		// servers without this endpoint respond 404; that is not a
		// failure, there is just nothing to show.
		if errors.Is(err, apierr.ErrNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("clients of delivery %d: %w", id, err)
	}

	data, _, err := envelope.Unmarshal[[]clients.Detail](body)
	if err != nil {
		return nil, fmt.Errorf("clients of delivery %d: %w", id, err)
	}
	return data, nil
}
