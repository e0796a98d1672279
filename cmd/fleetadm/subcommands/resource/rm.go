package resource

import (
	"context"
	"fmt"
	"log"
	"strconv"

	"github.com/fleetadm/fleetadm/cmd/fleetadm/config/preferences"
	krest "github.com/fleetadm/fleetadm/cmd/fleetadm/rest"
	"github.com/fleetadm/fleetadm/cmd/fleetadm/session"
	"github.com/fleetadm/fleetadm/cmd/fleetadm/subcommands/common"
	"github.com/fleetadm/fleetadm/pkg/notify"
	"github.com/fleetadm/fleetadm/pkg/store"
	"github.com/youta-t/flarc"
)

func NewRm[E any](d Descriptor[E]) (flarc.Command, error) {
	return flarc.NewCommand(
		fmt.Sprintf("Remove a %s by id.", d.Singular),
		struct{}{},
		flarc.Args{
			{
				Name: ARG_ID, Required: true,
				Help: fmt.Sprintf("Id of the %s to remove", d.Singular),
			},
		},
		common.NewTask(RmTask(d)),
	)
}

func RmTask[E any](d Descriptor[E]) common.Task[struct{}] {
	return func(
		ctx context.Context,
		logger *log.Logger,
		prefs *preferences.Preferences,
		sess *session.Session,
		client krest.FleetClient,
		sink notify.Sink,
		cl flarc.Commandline[struct{}],
		params []any,
	) error {
		rawId := cl.Args()[ARG_ID][0]
		id, err := strconv.Atoi(rawId)
		if err != nil {
			return fmt.Errorf("%w: %s id should be a number, got %q", flarc.ErrUsage, d.Singular, rawId)
		}

		st := store.New(d.storeConfig(), d.NewService(client), store.WithSink[E](sink))
		if err := st.RemoveOne(ctx, id); err != nil {
			return err
		}

		fmt.Fprintf(cl.Stdout(), "removed %s %d\n", d.Singular, id)
		return nil
	}
}
