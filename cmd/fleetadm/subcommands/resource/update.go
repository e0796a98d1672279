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
	"github.com/fleetadm/fleetadm/pkg/store"
	"github.com/youta-t/flarc"
)

func NewUpdate[E any](d Descriptor[E]) (flarc.Command, error) {
	return flarc.NewCommand(
		fmt.Sprintf("Update a %s by id.", d.Singular),
		struct{}{},
		flarc.Args{
			{
				Name: ARG_ID, Required: true,
				Help: fmt.Sprintf("Id of the %s to update", d.Singular),
			},
			{
				Name: ARG_FILE, Required: true,
				Help: "JSON file with the new field values. Pass - to read stdin",
			},
		},
		common.NewTask(UpdateTask(d)),
	)
}

func UpdateTask[E any](d Descriptor[E]) common.Task[struct{}] {
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
		args := cl.Args()

		rawId := args[ARG_ID][0]
		id, err := strconv.Atoi(rawId)
		if err != nil {
			return fmt.Errorf("%w: %s id should be a number, got %q", flarc.ErrUsage, d.Singular, rawId)
		}

		item, err := readRecord[E](args[ARG_FILE][0], cl.Stdin())
		if err != nil {
			return fmt.Errorf("fail to read %s: %w", d.Singular, err)
		}

		st := store.New(d.storeConfig(), d.NewService(client), store.WithSink[E](sink))
		updated, err := st.UpdateOne(ctx, id, item)
		if err != nil {
			return err
		}

		enc := json.NewEncoder(cl.Stdout())
		enc.SetIndent("", "    ")
		return enc.Encode(updated)
	}
}
