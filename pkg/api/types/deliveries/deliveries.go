package deliveries

import (
	"fmt"

	"github.com/fleetadm/fleetadm/pkg/utils/cmp"
)

// Detail is one delivery assignment as the server returns it: one
// client served by one truck driving one route.
type Detail struct {
	Id         int    `json:"id"`
	ClientId   int    `json:"cliente_id"`
	ClientName string `json:"cliente_nombre"`
	TruckId    int    `json:"camion_id"`
	TruckName  string `json:"camion_nombre"`
	RouteId    int    `json:"ruta_id"`
	RouteName  string `json:"ruta_nombre"`
	Date       string `json:"fecha"`
}

func (a Detail) Equal(b Detail) bool {
	return a == b
}

// Draft is the payload to create or update a delivery.
type Draft struct {
	ClientId int    `json:"cliente_id,omitempty"`
	TruckId  int    `json:"camion_id,omitempty"`
	RouteId  int    `json:"ruta_id,omitempty"`
	Date     string `json:"fecha,omitempty"`
}

// DraftOf projects a record into the payload resubmitting it.
func DraftOf(d Detail) Draft {
	return Draft{
		ClientId: d.ClientId,
		TruckId:  d.TruckId,
		RouteId:  d.RouteId,
		Date:     d.Date,
	}
}

// Stop is one client served within a Group.
type Stop struct {
	DeliveryId int    `json:"id"`
	ClientId   int    `json:"cliente_id"`
	ClientName string `json:"cliente_nombre"`
}

// Group aggregates the deliveries sharing one (truck, route) pair.
//
// Groups are not stored server-side. They are recomputed from the raw
// delivery list on every load.
type Group struct {
	Key          string `json:"id"`
	TruckId      int    `json:"camion_id"`
	TruckName    string `json:"camion_nombre"`
	RouteId      int    `json:"ruta_id"`
	RouteName    string `json:"ruta_nombre"`
	Clients      []Stop `json:"clientes"`
	TotalClients int    `json:"total_clientes"`
}

func (a Group) Equal(b Group) bool {
	return a.Key == b.Key &&
		a.TruckId == b.TruckId &&
		a.TruckName == b.TruckName &&
		a.RouteId == b.RouteId &&
		a.RouteName == b.RouteName &&
		a.TotalClients == b.TotalClients &&
		cmp.SliceEq(a.Clients, b.Clients)
}

// GroupKey is the identity of the group holding d.
func GroupKey(d Detail) string {
	return fmt.Sprintf("%d-%d", d.TruckId, d.RouteId)
}

// GroupDeliveries folds raw delivery records into Groups, keyed by
// (truck, route). Group order is the order of first occurrence in ds;
// clients keep the raw record order within each group.
func GroupDeliveries(ds []Detail) []Group {
	index := map[string]int{}
	groups := []Group{}

	for _, d := range ds {
		key := GroupKey(d)
		at, ok := index[key]
		if !ok {
			at = len(groups)
			index[key] = at
			groups = append(groups, Group{
				Key:       key,
				TruckId:   d.TruckId,
				TruckName: d.TruckName,
				RouteId:   d.RouteId,
				RouteName: d.RouteName,
			})
		}

		groups[at].Clients = append(groups[at].Clients, Stop{
			DeliveryId: d.Id,
			ClientId:   d.ClientId,
			ClientName: d.ClientName,
		})
		groups[at].TotalClients = len(groups[at].Clients)
	}

	return groups
}
