package delivery

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
	"github.com/fleetadm/fleetadm/cmd/fleetadm/subcommands/resource"
	"github.com/fleetadm/fleetadm/pkg/api/types/clients"
	"github.com/fleetadm/fleetadm/pkg/api/types/deliveries"
	"github.com/fleetadm/fleetadm/pkg/notify"
	"github.com/youta-t/flarc"
)

const ARG_DELIVERY_ID = "DELIVERY_ID"

func NewClients(d resource.Descriptor[deliveries.Detail]) (flarc.Command, error) {
	return flarc.NewCommand(
		"List the clients attached to one delivery.",
		struct{}{},
		flarc.Args{
			{
				Name: ARG_DELIVERY_ID, Required: true,
				Help: "Id of the delivery",
			},
		},
		common.NewTask(ClientsTask()),
		flarc.WithDescription(`
Ask the server which clients one delivery serves.

Not every server offers this listing. When it does not, the result is
an empty list, not an error.
`),
	)
}

func ClientsTask() common.Task[struct{}] {
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
		rawId := cl.Args()[ARG_DELIVERY_ID][0]
		id, err := strconv.Atoi(rawId)
		if err != nil {
			return fmt.Errorf("%w: delivery id should be a number, got %q", flarc.ErrUsage, rawId)
		}

		found, err := client.DeliveryClients(ctx, id)
		if err != nil {
			return err
		}
		if found == nil {
			sink.Info("this server does not list clients per delivery")
			found = []clients.Detail{}
		}

		enc := json.NewEncoder(cl.Stdout())
		enc.SetIndent("", "    ")
		return enc.Encode(found)
	}
}
