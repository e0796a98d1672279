// Package whoami shows the logged-in user.
package whoami

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"time"

	"github.com/fleetadm/fleetadm/cmd/fleetadm/config/preferences"
	krest "github.com/fleetadm/fleetadm/cmd/fleetadm/rest"
	"github.com/fleetadm/fleetadm/cmd/fleetadm/session"
	"github.com/fleetadm/fleetadm/cmd/fleetadm/subcommands/common"
	"github.com/fleetadm/fleetadm/pkg/api/types/users"
	"github.com/fleetadm/fleetadm/pkg/notify"
	"github.com/youta-t/flarc"
)

type Whoami struct {
	User users.Detail `json:"usuario"`

	// TokenExpiry is null when the token does not carry an expiry.
	TokenExpiry *time.Time `json:"token_expira"`
}

func New() (flarc.Command, error) {
	return flarc.NewCommand(
		"Show who is logged in.",
		struct{}{},
		flarc.Args{},
		common.NewTask(Task()),
		flarc.WithDescription(`
Show the stored user and when the token expires.

The token is also checked against the server; a revoked one drops the
stored credentials.
`),
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
		if !sess.Verify(ctx, client) {
			return errors.New("not logged in. try `fleetadm login`")
		}

		user, _ := sess.User()
		out := Whoami{User: user}
		if exp, ok := sess.TokenExpiry(); ok {
			out.TokenExpiry = &exp
		}

		enc := json.NewEncoder(cl.Stdout())
		enc.SetIndent("", "    ")
		return enc.Encode(out)
	}
}
