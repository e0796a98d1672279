// Package client wires the client (customer) resource into the
// command tree.
package client

import (
	"context"
	"strconv"
	"strings"

	"github.com/fleetadm/fleetadm/cmd/fleetadm/rest"
	"github.com/fleetadm/fleetadm/cmd/fleetadm/subcommands/resource"
	"github.com/fleetadm/fleetadm/pkg/api/types/clients"
	"github.com/fleetadm/fleetadm/pkg/store"
	"github.com/youta-t/flarc"
)

type service struct {
	client rest.FleetClient
}

func (s service) List(ctx context.Context) ([]clients.Detail, int, error) {
	return s.client.ListClients(ctx)
}

func (s service) Create(ctx context.Context, item clients.Detail) (clients.Detail, error) {
	return s.client.CreateClient(ctx, clients.DraftOf(item))
}

func (s service) Update(ctx context.Context, id int, item clients.Detail) (clients.Detail, error) {
	return s.client.UpdateClient(ctx, id, clients.DraftOf(item))
}

func (s service) Remove(ctx context.Context, id int) error {
	return s.client.DeleteClient(ctx, id)
}

func descriptor() resource.Descriptor[clients.Detail] {
	return resource.Descriptor[clients.Detail]{
		Singular: "client",
		Plural:   "clients",
		Config: store.Config[clients.Detail]{
			ID: func(c clients.Detail) int { return c.Id },
			Search: []store.Field[clients.Detail]{
				{Name: "nombre", Weight: 2, Value: func(c clients.Detail) string { return c.Name }},
				{Name: "razonsocial", Weight: 1.5, Value: func(c clients.Detail) string { return c.LegalName }},
				{Name: "direccion", Weight: 1, Value: func(c clients.Detail) string { return c.Address }},
				{Name: "telefono", Weight: 0.5, Value: func(c clients.Detail) string { return c.Phone }},
				{Name: "email", Weight: 0.5, Value: func(c clients.Detail) string { return c.Email }},
			},
			Compare: map[string]func(a, b clients.Detail) int{
				"nombre": func(a, b clients.Detail) int {
					return strings.Compare(strings.ToLower(a.Name), strings.ToLower(b.Name))
				},
				"razonsocial": func(a, b clients.Detail) int {
					return strings.Compare(strings.ToLower(a.LegalName), strings.ToLower(b.LegalName))
				},
				"codigoalte": func(a, b clients.Detail) int {
					return strings.Compare(a.Code, b.Code)
				},
				"estado": func(a, b clients.Detail) int {
					return strings.Compare(a.Status, b.Status)
				},
				"id": func(a, b clients.Detail) int { return a.Id - b.Id },
			},
			Columns: []store.Column[clients.Detail]{
				{Header: "id", Raw: true, Value: func(c clients.Detail) string { return strconv.Itoa(c.Id) }},
				{Header: "codigoalte", Value: func(c clients.Detail) string { return c.Code }},
				{Header: "nombre", Value: func(c clients.Detail) string { return c.Name }},
				{Header: "razonsocial", Value: func(c clients.Detail) string { return c.LegalName }},
				{Header: "direccion", Value: func(c clients.Detail) string { return c.Address }},
				{Header: "telefono", Value: func(c clients.Detail) string { return c.Phone }},
				{Header: "rut", Value: func(c clients.Detail) string { return c.Rut }},
				{Header: "email", Value: func(c clients.Detail) string { return c.Email }},
				{Header: "estado", Value: func(c clients.Detail) string { return c.Status }},
				{Header: "latitud", Raw: true, Value: func(c clients.Detail) string {
					return strconv.FormatFloat(c.Latitude, 'f', -1, 64)
				}},
				{Header: "longitud", Raw: true, Value: func(c clients.Detail) string {
					return strconv.FormatFloat(c.Longitude, 'f', -1, 64)
				}},
			},
		},
		Filters: map[string]func(clients.Detail) string{
			"estado": func(c clients.Detail) string { return c.Status },
		},
		NewService: func(client rest.FleetClient) store.Service[clients.Detail] {
			return service{client: client}
		},
		Get: func(ctx context.Context, client rest.FleetClient, id int) (clients.Detail, error) {
			return client.GetClient(ctx, id)
		},
	}
}

func New() (flarc.Command, error) {
	return resource.NewGroup(descriptor())
}
