// Package route wires the route resource into the command tree.
package route

import (
	"context"
	"strconv"
	"strings"

	"github.com/fleetadm/fleetadm/cmd/fleetadm/rest"
	"github.com/fleetadm/fleetadm/cmd/fleetadm/subcommands/resource"
	"github.com/fleetadm/fleetadm/pkg/api/types/routes"
	"github.com/fleetadm/fleetadm/pkg/store"
	"github.com/youta-t/flarc"
)

type service struct {
	client rest.FleetClient
}

func (s service) List(ctx context.Context) ([]routes.Detail, int, error) {
	return s.client.ListRoutes(ctx)
}

func (s service) Create(ctx context.Context, item routes.Detail) (routes.Detail, error) {
	return s.client.CreateRoute(ctx, routes.DraftOf(item))
}

func (s service) Update(ctx context.Context, id int, item routes.Detail) (routes.Detail, error) {
	return s.client.UpdateRoute(ctx, id, routes.DraftOf(item))
}

func (s service) Remove(ctx context.Context, id int) error {
	return s.client.DeleteRoute(ctx, id)
}

func descriptor() resource.Descriptor[routes.Detail] {
	return resource.Descriptor[routes.Detail]{
		Singular: "route",
		Plural:   "routes",
		Config: store.Config[routes.Detail]{
			ID: func(r routes.Detail) int { return r.Id },
			Search: []store.Field[routes.Detail]{
				{Name: "nombre", Weight: 2, Value: func(r routes.Detail) string { return r.Name }},
				{Name: "origen", Weight: 1, Value: func(r routes.Detail) string { return r.Origin }},
				{Name: "destino", Weight: 1, Value: func(r routes.Detail) string { return r.Destination }},
				{Name: "descripcion", Weight: 0.5, Value: func(r routes.Detail) string { return r.Description }},
			},
			Compare: map[string]func(a, b routes.Detail) int{
				"nombre": func(a, b routes.Detail) int {
					return strings.Compare(strings.ToLower(a.Name), strings.ToLower(b.Name))
				},
				"origen": func(a, b routes.Detail) int {
					return strings.Compare(strings.ToLower(a.Origin), strings.ToLower(b.Origin))
				},
				"destino": func(a, b routes.Detail) int {
					return strings.Compare(strings.ToLower(a.Destination), strings.ToLower(b.Destination))
				},
				"distancia": func(a, b routes.Detail) int {
					switch {
					case a.Distance < b.Distance:
						return -1
					case b.Distance < a.Distance:
						return 1
					default:
						return 0
					}
				},
				"estado": func(a, b routes.Detail) int {
					return strings.Compare(a.Status, b.Status)
				},
				"id": func(a, b routes.Detail) int { return a.Id - b.Id },
			},
			Columns: []store.Column[routes.Detail]{
				{Header: "id", Raw: true, Value: func(r routes.Detail) string { return strconv.Itoa(r.Id) }},
				{Header: "nombre", Value: func(r routes.Detail) string { return r.Name }},
				{Header: "descripcion", Value: func(r routes.Detail) string { return r.Description }},
				{Header: "origen", Value: func(r routes.Detail) string { return r.Origin }},
				{Header: "destino", Value: func(r routes.Detail) string { return r.Destination }},
				{Header: "distancia", Raw: true, Value: func(r routes.Detail) string {
					return strconv.FormatFloat(r.Distance, 'f', -1, 64)
				}},
				{Header: "estado", Value: func(r routes.Detail) string { return r.Status }},
			},
		},
		Filters: map[string]func(routes.Detail) string{
			"estado": func(r routes.Detail) string { return r.Status },
		},
		NewService: func(client rest.FleetClient) store.Service[routes.Detail] {
			return service{client: client}
		},
		Get: func(ctx context.Context, client rest.FleetClient, id int) (routes.Detail, error) {
			return client.GetRoute(ctx, id)
		},
	}
}

func New() (flarc.Command, error) {
	return resource.NewGroup(descriptor())
}
