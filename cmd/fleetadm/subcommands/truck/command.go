// Package truck wires the truck resource into the command tree.
package truck

import (
	"context"
	"strconv"
	"strings"

	"github.com/fleetadm/fleetadm/cmd/fleetadm/rest"
	"github.com/fleetadm/fleetadm/cmd/fleetadm/subcommands/resource"
	"github.com/fleetadm/fleetadm/pkg/api/types/trucks"
	"github.com/fleetadm/fleetadm/pkg/store"
	"github.com/youta-t/flarc"
)

type service struct {
	client rest.FleetClient
}

func (s service) List(ctx context.Context) ([]trucks.Detail, int, error) {
	return s.client.ListTrucks(ctx)
}

func (s service) Create(ctx context.Context, item trucks.Detail) (trucks.Detail, error) {
	return s.client.CreateTruck(ctx, trucks.DraftOf(item))
}

func (s service) Update(ctx context.Context, id int, item trucks.Detail) (trucks.Detail, error) {
	return s.client.UpdateTruck(ctx, id, trucks.DraftOf(item))
}

func (s service) Remove(ctx context.Context, id int) error {
	return s.client.DeleteTruck(ctx, id)
}

func descriptor() resource.Descriptor[trucks.Detail] {
	return resource.Descriptor[trucks.Detail]{
		Singular: "truck",
		Plural:   "trucks",
		Config: store.Config[trucks.Detail]{
			ID: func(t trucks.Detail) int { return t.Id },
			Search: []store.Field[trucks.Detail]{
				{Name: "nombre", Weight: 2, Value: func(t trucks.Detail) string { return t.Name }},
				{Name: "patente", Weight: 1.5, Value: func(t trucks.Detail) string { return t.Plate }},
			},
			Compare: map[string]func(a, b trucks.Detail) int{
				"nombre": func(a, b trucks.Detail) int {
					return strings.Compare(strings.ToLower(a.Name), strings.ToLower(b.Name))
				},
				"patente": func(a, b trucks.Detail) int {
					return strings.Compare(a.Plate, b.Plate)
				},
				"capacidad": func(a, b trucks.Detail) int {
					switch {
					case a.Capacity < b.Capacity:
						return -1
					case b.Capacity < a.Capacity:
						return 1
					default:
						return 0
					}
				},
				"estado": func(a, b trucks.Detail) int {
					return strings.Compare(a.Status, b.Status)
				},
				"id": func(a, b trucks.Detail) int { return a.Id - b.Id },
			},
			Columns: []store.Column[trucks.Detail]{
				{Header: "id", Raw: true, Value: func(t trucks.Detail) string { return strconv.Itoa(t.Id) }},
				{Header: "nombre", Value: func(t trucks.Detail) string { return t.Name }},
				{Header: "patente", Value: func(t trucks.Detail) string { return t.Plate }},
				{Header: "capacidad", Raw: true, Value: func(t trucks.Detail) string {
					return strconv.FormatFloat(t.Capacity, 'f', -1, 64)
				}},
				{Header: "estado", Value: func(t trucks.Detail) string { return t.Status }},
			},
		},
		Filters: map[string]func(trucks.Detail) string{
			"estado": func(t trucks.Detail) string { return t.Status },
		},
		NewService: func(client rest.FleetClient) store.Service[trucks.Detail] {
			return service{client: client}
		},
		Get: func(ctx context.Context, client rest.FleetClient, id int) (trucks.Detail, error) {
			return client.GetTruck(ctx, id)
		},
	}
}

func New() (flarc.Command, error) {
	return resource.NewGroup(descriptor())
}
