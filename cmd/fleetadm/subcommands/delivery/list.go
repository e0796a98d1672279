package delivery

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strconv"
	"strings"

	"github.com/fleetadm/fleetadm/cmd/fleetadm/config/preferences"
	krest "github.com/fleetadm/fleetadm/cmd/fleetadm/rest"
	"github.com/fleetadm/fleetadm/cmd/fleetadm/session"
	"github.com/fleetadm/fleetadm/cmd/fleetadm/subcommands/common"
	"github.com/fleetadm/fleetadm/cmd/fleetadm/subcommands/resource"
	"github.com/fleetadm/fleetadm/pkg/api/types/deliveries"
	"github.com/fleetadm/fleetadm/pkg/notify"
	"github.com/fleetadm/fleetadm/pkg/store"
	"github.com/youta-t/flarc"
)

type ListFlags struct {
	Truck int  `flag:"truck" metavar:"TRUCK_ID" help:"List only deliveries assigned to this truck."`
	Route int  `flag:"route" metavar:"ROUTE_ID" help:"List only deliveries driving this route."`
	Raw   bool `flag:"raw" help:"List individual delivery records instead of the grouped view."`

	Search  string `flag:"search" alias:"s" help:"Narrow the listing to records matching this term."`
	Filter  string `flag:"filter" metavar:"KEY=VALUE" help:"Keep only records whose field KEY equals VALUE exactly."`
	Sort    string `flag:"sort" metavar:"FIELD" help:"Field to sort by."`
	Order   string `flag:"order" metavar:"asc|desc" help:"Sort direction. Default: asc."`
	Page    int    `flag:"page" help:"Page to show, starting at 1."`
	PerPage int    `flag:"per-page" help:"Records per page."`
	Output  string `flag:"output" alias:"o" metavar:"csv|json" help:"Write an export instead of the paged listing."`
	Export  string `flag:"export" metavar:"DIR" help:"With --output, write the export to a dated file under DIR."`
}

func (f ListFlags) view() resource.ListFlags {
	return resource.ListFlags{
		Search:  f.Search,
		Filter:  f.Filter,
		Sort:    f.Sort,
		Order:   f.Order,
		Page:    f.Page,
		PerPage: f.PerPage,
		Output:  f.Output,
		Export:  f.Export,
	}
}

func NewList(d resource.Descriptor[deliveries.Detail]) (flarc.Command, error) {
	return flarc.NewCommand(
		"List deliveries.",
		ListFlags{},
		flarc.Args{},
		common.NewTask(ListTask(d)),
		flarc.WithDescription(`
Fetch deliveries from the server and show one page of them, folded
into one row per truck and route pair with the clients each pair
serves. --raw lists the individual delivery records instead.

--truck and --route move the narrowing to the server; the rest of the
flags work like the listings of the other resources.

Example
-------

	{{ .Command }} --truck 9
	{{ .Command }} --raw --route 5 --output csv --export ./reports
`),
	)
}

func ListTask(d resource.Descriptor[deliveries.Detail]) common.Task[ListFlags] {
	return func(
		ctx context.Context,
		logger *log.Logger,
		prefs *preferences.Preferences,
		sess *session.Session,
		client krest.FleetClient,
		sink notify.Sink,
		cl flarc.Commandline[ListFlags],
		params []any,
	) error {
		flags := cl.Flags()

		if flags.Truck != 0 && flags.Route != 0 {
			return fmt.Errorf("%w: --truck and --route narrow differently; pass one", flarc.ErrUsage)
		}

		var load loader
		switch {
		case flags.Truck != 0:
			load = func(ctx context.Context) ([]deliveries.Detail, int, error) {
				return client.ListDeliveriesByTruck(ctx, flags.Truck)
			}
		case flags.Route != 0:
			load = func(ctx context.Context) ([]deliveries.Detail, int, error) {
				return client.ListDeliveriesByRoute(ctx, flags.Route)
			}
		}

		if !flags.Raw {
			return listGrouped(ctx, client, load, prefs, sink, cl, flags)
		}

		st := store.New(
			d.Config, service{client: client, load: load},
			store.WithSink[deliveries.Detail](sink),
			store.WithItemsPerPage[deliveries.Detail](prefs.ItemsPerPage),
		)
		st.Load(ctx)
		if err := st.Err(); err != nil {
			return err
		}

		if err := resource.ApplyView(st, d, prefs, flags.view()); err != nil {
			return err
		}
		return resource.Output(d, st, sink, cl.Stdout(), flags.view())
	}
}

// groupService derives the grouped listing from the raw one. Groups
// only exist client-side, so they cannot be written back.
type groupService struct {
	load loader
}

func (s groupService) List(ctx context.Context) ([]deliveries.Group, int, error) {
	ds, _, err := s.load(ctx)
	if err != nil {
		return nil, 0, err
	}
	groups := deliveries.GroupDeliveries(ds)
	return groups, len(groups), nil
}

func (s groupService) Create(ctx context.Context, item deliveries.Group) (deliveries.Group, error) {
	return item, errors.New("delivery groups are derived records")
}

func (s groupService) Update(ctx context.Context, id int, item deliveries.Group) (deliveries.Group, error) {
	return item, errors.New("delivery groups are derived records")
}

func (s groupService) Remove(ctx context.Context, id int) error {
	return errors.New("delivery groups are derived records")
}

func stopNames(g deliveries.Group) string {
	names := make([]string, 0, len(g.Clients))
	for _, stop := range g.Clients {
		names = append(names, stop.ClientName)
	}
	return strings.Join(names, "; ")
}

func groupDescriptor() resource.Descriptor[deliveries.Group] {
	return resource.Descriptor[deliveries.Group]{
		Singular: "delivery-group",
		Plural:   "delivery groups",
		Config: store.Config[deliveries.Group]{
			Entity: "delivery-group",
			// groups have no numeric id; the truck id stands in for
			// the mutations the listing never performs
			ID: func(g deliveries.Group) int { return g.TruckId },
			Search: []store.Field[deliveries.Group]{
				{Name: "camion", Weight: 2, Value: func(g deliveries.Group) string { return g.TruckName }},
				{Name: "ruta", Weight: 2, Value: func(g deliveries.Group) string { return g.RouteName }},
				{Name: "clientes", Weight: 1, Value: stopNames},
			},
			Compare: map[string]func(a, b deliveries.Group) int{
				"camion": func(a, b deliveries.Group) int {
					return strings.Compare(strings.ToLower(a.TruckName), strings.ToLower(b.TruckName))
				},
				"ruta": func(a, b deliveries.Group) int {
					return strings.Compare(strings.ToLower(a.RouteName), strings.ToLower(b.RouteName))
				},
				"total_clientes": func(a, b deliveries.Group) int {
					return a.TotalClients - b.TotalClients
				},
				"id": func(a, b deliveries.Group) int {
					return strings.Compare(a.Key, b.Key)
				},
			},
			Columns: []store.Column[deliveries.Group]{
				{Header: "id", Value: func(g deliveries.Group) string { return g.Key }},
				{Header: "camion_id", Raw: true, Value: func(g deliveries.Group) string { return strconv.Itoa(g.TruckId) }},
				{Header: "camion", Value: func(g deliveries.Group) string { return g.TruckName }},
				{Header: "ruta_id", Raw: true, Value: func(g deliveries.Group) string { return strconv.Itoa(g.RouteId) }},
				{Header: "ruta", Value: func(g deliveries.Group) string { return g.RouteName }},
				{Header: "total_clientes", Raw: true, Value: func(g deliveries.Group) string { return strconv.Itoa(g.TotalClients) }},
				{Header: "clientes", Value: stopNames},
			},
		},
		Filters: map[string]func(deliveries.Group) string{
			"camion_id": func(g deliveries.Group) string { return strconv.Itoa(g.TruckId) },
			"ruta_id":   func(g deliveries.Group) string { return strconv.Itoa(g.RouteId) },
		},
	}
}

func listGrouped(
	ctx context.Context,
	client krest.FleetClient,
	load loader,
	prefs *preferences.Preferences,
	sink notify.Sink,
	cl flarc.Commandline[ListFlags],
	flags ListFlags,
) error {
	if load == nil {
		load = client.ListDeliveries
	}

	d := groupDescriptor()
	st := store.New(
		d.Config, groupService{load: load},
		store.WithSink[deliveries.Group](sink),
		store.WithItemsPerPage[deliveries.Group](prefs.ItemsPerPage),
	)
	st.Load(ctx)
	if err := st.Err(); err != nil {
		return err
	}

	if err := resource.ApplyView(st, d, prefs, flags.view()); err != nil {
		return err
	}
	return resource.Output(d, st, sink, cl.Stdout(), flags.view())
}
