// Package delivery wires the delivery resource into the command
// tree. Deliveries get two extra views on top of the usual command
// set: a listing folded into one row per (truck, route) pair, and the
// clients attached to one delivery.
package delivery

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/fleetadm/fleetadm/cmd/fleetadm/rest"
	"github.com/fleetadm/fleetadm/cmd/fleetadm/subcommands/resource"
	"github.com/fleetadm/fleetadm/pkg/api/types/deliveries"
	"github.com/fleetadm/fleetadm/pkg/store"
	"github.com/youta-t/flarc"
)

// loader picks which server-side listing backs the store.
type loader func(ctx context.Context) ([]deliveries.Detail, int, error)

type service struct {
	client rest.FleetClient
	load   loader
}

func (s service) List(ctx context.Context) ([]deliveries.Detail, int, error) {
	if s.load != nil {
		return s.load(ctx)
	}
	return s.client.ListDeliveries(ctx)
}

func (s service) Create(ctx context.Context, item deliveries.Detail) (deliveries.Detail, error) {
	return s.client.CreateDelivery(ctx, deliveries.DraftOf(item))
}

func (s service) Update(ctx context.Context, id int, item deliveries.Detail) (deliveries.Detail, error) {
	return s.client.UpdateDelivery(ctx, id, deliveries.DraftOf(item))
}

func (s service) Remove(ctx context.Context, id int) error {
	return s.client.DeleteDelivery(ctx, id)
}

func descriptor() resource.Descriptor[deliveries.Detail] {
	return resource.Descriptor[deliveries.Detail]{
		Singular: "delivery",
		Plural:   "deliveries",
		Config: store.Config[deliveries.Detail]{
			Entity: "delivery",
			ID:     func(d deliveries.Detail) int { return d.Id },
			Search: []store.Field[deliveries.Detail]{
				{Name: "cliente", Weight: 2, Value: func(d deliveries.Detail) string { return d.ClientName }},
				{Name: "camion", Weight: 1.5, Value: func(d deliveries.Detail) string { return d.TruckName }},
				{Name: "ruta", Weight: 1.5, Value: func(d deliveries.Detail) string { return d.RouteName }},
				{Name: "fecha", Weight: 0.5, Value: func(d deliveries.Detail) string { return d.Date }},
			},
			Compare: map[string]func(a, b deliveries.Detail) int{
				"cliente": func(a, b deliveries.Detail) int {
					return strings.Compare(strings.ToLower(a.ClientName), strings.ToLower(b.ClientName))
				},
				"camion": func(a, b deliveries.Detail) int {
					return strings.Compare(strings.ToLower(a.TruckName), strings.ToLower(b.TruckName))
				},
				"ruta": func(a, b deliveries.Detail) int {
					return strings.Compare(strings.ToLower(a.RouteName), strings.ToLower(b.RouteName))
				},
				"fecha": func(a, b deliveries.Detail) int {
					return strings.Compare(a.Date, b.Date)
				},
				"id": func(a, b deliveries.Detail) int { return a.Id - b.Id },
			},
			Columns: []store.Column[deliveries.Detail]{
				{Header: "id", Raw: true, Value: func(d deliveries.Detail) string { return strconv.Itoa(d.Id) }},
				{Header: "cliente_id", Raw: true, Value: func(d deliveries.Detail) string { return strconv.Itoa(d.ClientId) }},
				{Header: "cliente", Value: func(d deliveries.Detail) string { return d.ClientName }},
				{Header: "camion_id", Raw: true, Value: func(d deliveries.Detail) string { return strconv.Itoa(d.TruckId) }},
				{Header: "camion", Value: func(d deliveries.Detail) string { return d.TruckName }},
				{Header: "ruta_id", Raw: true, Value: func(d deliveries.Detail) string { return strconv.Itoa(d.RouteId) }},
				{Header: "ruta", Value: func(d deliveries.Detail) string { return d.RouteName }},
				{Header: "fecha", Value: func(d deliveries.Detail) string { return d.Date }},
			},

			// new deliveries are shown first, like the server's feed
			Prepend: true,
		},
		Filters: map[string]func(deliveries.Detail) string{
			"fecha":      func(d deliveries.Detail) string { return d.Date },
			"camion_id":  func(d deliveries.Detail) string { return strconv.Itoa(d.TruckId) },
			"ruta_id":    func(d deliveries.Detail) string { return strconv.Itoa(d.RouteId) },
			"cliente_id": func(d deliveries.Detail) string { return strconv.Itoa(d.ClientId) },
		},
		NewService: func(client rest.FleetClient) store.Service[deliveries.Detail] {
			return service{client: client}
		},
		Get: func(ctx context.Context, client rest.FleetClient, id int) (deliveries.Detail, error) {
			return client.GetDelivery(ctx, id)
		},
	}
}

func New() (flarc.Command, error) {
	d := descriptor()

	list, err := NewList(d)
	if err != nil {
		return nil, err
	}
	show, err := resource.NewShow(d)
	if err != nil {
		return nil, err
	}
	add, err := resource.NewAdd(d)
	if err != nil {
		return nil, err
	}
	update, err := resource.NewUpdate(d)
	if err != nil {
		return nil, err
	}
	rm, err := resource.NewRm(d)
	if err != nil {
		return nil, err
	}
	clients, err := NewClients(d)
	if err != nil {
		return nil, err
	}

	return flarc.NewCommandGroup(
		fmt.Sprintf("Manage %s.", d.Plural),
		struct{}{},
		flarc.WithSubcommand("list", list),
		flarc.WithSubcommand("show", show),
		flarc.WithSubcommand("add", add),
		flarc.WithSubcommand("update", update),
		flarc.WithSubcommand("rm", rm),
		flarc.WithSubcommand("clients", clients),
	)
}
