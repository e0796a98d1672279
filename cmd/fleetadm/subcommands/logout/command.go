// Package logout drops the stored credentials.
package logout

import (
	"context"
	"fmt"
	"log"

	"github.com/fleetadm/fleetadm/cmd/fleetadm/config/preferences"
	krest "github.com/fleetadm/fleetadm/cmd/fleetadm/rest"
	"github.com/fleetadm/fleetadm/cmd/fleetadm/session"
	"github.com/fleetadm/fleetadm/cmd/fleetadm/subcommands/common"
	"github.com/fleetadm/fleetadm/pkg/notify"
	"github.com/youta-t/flarc"
)

func New() (flarc.Command, error) {
	return flarc.NewCommand(
		"Log out from the fleet server.",
		struct{}{},
		flarc.Args{},
		common.NewTask(Task()),
	)
}

func Task() common.Task[struct{}] {
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
		sess.Logout()
		fmt.Fprintln(cl.Stdout(), "logged out")
		return nil
	}
}
