package resource

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fleetadm/fleetadm/cmd/fleetadm/config/preferences"
	krest "github.com/fleetadm/fleetadm/cmd/fleetadm/rest"
	"github.com/fleetadm/fleetadm/cmd/fleetadm/session"
	"github.com/fleetadm/fleetadm/cmd/fleetadm/subcommands/common"
	"github.com/fleetadm/fleetadm/pkg/notify"
	"github.com/fleetadm/fleetadm/pkg/store"
	"github.com/youta-t/flarc"
)

type ListFlags struct {
	Search  string `flag:"search" alias:"s" help:"Narrow the listing to records matching this term."`
	Filter  string `flag:"filter" metavar:"KEY=VALUE" help:"Keep only records whose field KEY equals VALUE exactly."`
	Sort    string `flag:"sort" metavar:"FIELD" help:"Field to sort by."`
	Order   string `flag:"order" metavar:"asc|desc" help:"Sort direction. Default: asc."`
	Page    int    `flag:"page" help:"Page to show, starting at 1."`
	PerPage int    `flag:"per-page" help:"Records per page."`
	Output  string `flag:"output" alias:"o" metavar:"csv|json" help:"Write an export instead of the paged listing."`
	Export  string `flag:"export" metavar:"DIR" help:"With --output, write the export to a dated file under DIR."`
}

// Listing is the shape of the default output.
type Listing[E any] struct {
	Items      []E `json:"items"`
	Page       int `json:"page"`
	TotalPages int `json:"totalPages"`
	Count      int `json:"count"`
}

func NewList[E any](d Descriptor[E]) (flarc.Command, error) {
	return flarc.NewCommand(
		fmt.Sprintf("List %s.", d.Plural),
		ListFlags{},
		flarc.Args{},
		common.NewTask(ListTask(d)),
		flarc.WithDescription(fmt.Sprintf(`
Fetch all %s from the server and show one page of them.

Searching, filtering and sorting compose: --search ranks matching
records, --filter keeps only exact matches, --sort orders what is
left. Preferences supply defaults for anything not flagged.

With --output the full selection is written as csv or json instead of
the paged listing; --export DIR puts it into a dated file under DIR.

Example
-------

	{{ .Command }} --search Sur --filter estado=Activo --sort nombre --page 2
`, d.Plural)),
	)
}

func ListTask[E any](d Descriptor[E]) common.Task[ListFlags] {
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

		st := store.New(
			d.storeConfig(), d.NewService(client),
			store.WithSink[E](sink),
			store.WithItemsPerPage[E](prefs.ItemsPerPage),
		)

		st.Load(ctx)
		if err := st.Err(); err != nil {
			return err
		}

		if err := ApplyView(st, d, prefs, flags); err != nil {
			return err
		}

		return Output(d, st, sink, cl.Stdout(), flags)
	}
}

// Output writes the store's view: the paged listing as JSON by
// default, the whole selection when an export format is flagged.
func Output[E any](
	d Descriptor[E], st *store.Store[E],
	sink notify.Sink, out io.Writer, flags ListFlags,
) error {
	if flags.Output != "" {
		format, err := store.ParseFormat(flags.Output)
		if err != nil {
			return fmt.Errorf("%w: %s", flarc.ErrUsage, err)
		}
		if flags.Export == "" {
			return st.Export(out, format)
		}

		name := filepath.Join(flags.Export, store.Filename(d.Singular, time.Now(), format))
		f, err := os.Create(name)
		if err != nil {
			return fmt.Errorf("cannot create export file: %w", err)
		}
		defer f.Close()
		if err := st.Export(f, format); err != nil {
			return err
		}
		sink.Success("exported %s to %s", d.Plural, name)
		return nil
	}

	enc := json.NewEncoder(out)
	enc.SetIndent("", "    ")
	return enc.Encode(Listing[E]{
		Items:      st.Page(),
		Page:       st.CurrentPage(),
		TotalPages: st.TotalPages(),
		Count:      len(st.View()),
	})
}

// ApplyView folds preferences and list flags into the store's view,
// flags winning over preferences.
func ApplyView[E any](
	st *store.Store[E], d Descriptor[E],
	prefs *preferences.Preferences, flags ListFlags,
) error {
	ep := prefs.For(d.Singular)

	if flags.PerPage > 0 {
		st.SetItemsPerPage(flags.PerPage)
	}

	if flags.Search != "" {
		st.SetSearchTerm(flags.Search)
	}

	filter := flags.Filter
	if filter == "" && ep.Status != "" {
		filter = "estado=" + ep.Status
	}
	if filter != "" {
		key, value, ok := strings.Cut(filter, "=")
		if !ok {
			return fmt.Errorf("%w: --filter needs KEY=VALUE, got %q", flarc.ErrUsage, filter)
		}
		field, ok := d.Filters[key]
		if !ok {
			return fmt.Errorf("%w: unknown filter key %q", flarc.ErrUsage, key)
		}
		st.SetFilter(key, func(item E) bool { return field(item) == value })
	}

	sortBy, order := flags.Sort, flags.Order
	if sortBy == "" {
		sortBy = ep.SortBy
		if order == "" {
			order = ep.SortOrder
		}
	}
	if sortBy == "" && order != "" {
		return fmt.Errorf("%w: --order needs --sort", flarc.ErrUsage)
	}
	if sortBy != "" {
		if order == "" {
			order = string(store.Asc)
		}
		if order != string(store.Asc) && order != string(store.Desc) {
			return fmt.Errorf("%w: --order must be asc or desc, got %q", flarc.ErrUsage, order)
		}
		st.SetSorting(sortBy, store.Order(order))
	}

	if flags.Page > 0 {
		st.SetPage(flags.Page)
	}
	return nil
}
