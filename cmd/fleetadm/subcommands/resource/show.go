package resource

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strconv"

	"github.com/fleetadm/fleetadm/cmd/fleetadm/config/preferences"
	krest "github.com/fleetadm/fleetadm/cmd/fleetadm/rest"
	"github.com/fleetadm/fleetadm/cmd/fleetadm/session"
	"github.com/fleetadm/fleetadm/cmd/fleetadm/subcommands/common"
	"github.com/fleetadm/fleetadm/pkg/notify"
	"github.com/youta-t/flarc"
)

const ARG_ID = "ID"

func NewShow[E any](d Descriptor[E]) (flarc.Command, error) {
	return flarc.NewCommand(
		fmt.Sprintf("Show one %s by id.", d.Singular),
		struct{}{},
		flarc.Args{
			{
				Name: ARG_ID, Required: true,
				Help: fmt.Sprintf("Id of the %s to show", d.Singular),
			},
		},
		common.NewTask(ShowTask(d)),
	)
}

func ShowTask[E any](d Descriptor[E]) common.Task[struct{}] {
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

		item, err := d.Get(ctx, client, id)
		if err != nil {
			return fmt.Errorf("%w: %s id:%d", err, d.Singular, id)
		}

		enc := json.NewEncoder(cl.Stdout())
		enc.SetIndent("", "    ")
		return enc.Encode(item)
	}
}
