// Package resource builds the list/show/add/update/rm command set
// shared by every entity from one descriptor.
package resource

import (
	"context"
	"fmt"

	"github.com/fleetadm/fleetadm/cmd/fleetadm/rest"
	"github.com/fleetadm/fleetadm/pkg/store"
	"github.com/youta-t/flarc"
)

// Descriptor is everything entity-specific the shared commands need.
type Descriptor[E any] struct {
	// Singular and Plural name the entity in help text, filenames and
	// notifications: "client" / "clients".
	Singular string
	Plural   string

	// Config drives searching, sorting and export of the entity
	// store. Its Entity field may be left empty; Singular is used.
	Config store.Config[E]

	// Filters maps --filter keys to the field read for the exact
	// match.
	Filters map[string]func(E) string

	// NewService binds the store to the server.
	NewService func(client rest.FleetClient) store.Service[E]

	// Get fetches one record by id, for show.
	Get func(ctx context.Context, client rest.FleetClient, id int) (E, error)
}

func (d Descriptor[E]) storeConfig() store.Config[E] {
	conf := d.Config
	if conf.Entity == "" {
		conf.Entity = d.Singular
	}
	return conf
}

// NewGroup assembles the whole command set for one entity.
func NewGroup[E any](d Descriptor[E]) (flarc.Command, error) {
	list, err := NewList(d)
	if err != nil {
		return nil, err
	}
	show, err := NewShow(d)
	if err != nil {
		return nil, err
	}
	add, err := NewAdd(d)
	if err != nil {
		return nil, err
	}
	update, err := NewUpdate(d)
	if err != nil {
		return nil, err
	}
	rm, err := NewRm(d)
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
	)
}
