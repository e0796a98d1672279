package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path"

	subclient "github.com/fleetadm/fleetadm/cmd/fleetadm/subcommands/client"
	subcommon "github.com/fleetadm/fleetadm/cmd/fleetadm/subcommands/common"
	subdelivery "github.com/fleetadm/fleetadm/cmd/fleetadm/subcommands/delivery"
	subinit "github.com/fleetadm/fleetadm/cmd/fleetadm/subcommands/initialize"
	"github.com/fleetadm/fleetadm/cmd/fleetadm/subcommands/logger"
	sublogin "github.com/fleetadm/fleetadm/cmd/fleetadm/subcommands/login"
	sublogout "github.com/fleetadm/fleetadm/cmd/fleetadm/subcommands/logout"
	subroute "github.com/fleetadm/fleetadm/cmd/fleetadm/subcommands/route"
	subtruck "github.com/fleetadm/fleetadm/cmd/fleetadm/subcommands/truck"
	subver "github.com/fleetadm/fleetadm/cmd/fleetadm/subcommands/version"
	subwhoami "github.com/fleetadm/fleetadm/cmd/fleetadm/subcommands/whoami"
	"github.com/fleetadm/fleetadm/pkg/utils/try"
	"github.com/youta-t/flarc"
)

func main() {
	name := path.Base(os.Args[0])
	logger := logger.Default()
	logger.SetPrefix(fmt.Sprintf("[%s] ", name))

	ctx, cancel := signal.NotifyContext(
		context.Background(), os.Interrupt, os.Kill,
	)
	defer cancel()

	cf := try.To(subcommon.Flags()).OrFatal(logger)
	init := try.To(subinit.New()).OrFatal(logger)
	login := try.To(sublogin.New()).OrFatal(logger)
	logout := try.To(sublogout.New()).OrFatal(logger)
	whoami := try.To(subwhoami.New()).OrFatal(logger)
	client := try.To(subclient.New()).OrFatal(logger)
	truck := try.To(subtruck.New()).OrFatal(logger)
	route := try.To(subroute.New()).OrFatal(logger)
	delivery := try.To(subdelivery.New()).OrFatal(logger)
	version := try.To(subver.New()).OrFatal(logger)

	fleetadm := try.To(
		flarc.NewCommandGroup(
			"Fleet management commandline interface",
			cf,
			flarc.WithSubcommand("init", init),
			flarc.WithSubcommand("login", login),
			flarc.WithSubcommand("logout", logout),
			flarc.WithSubcommand("whoami", whoami),
			flarc.WithSubcommand("client", client),
			flarc.WithSubcommand("truck", truck),
			flarc.WithSubcommand("route", route),
			flarc.WithSubcommand("delivery", delivery),
			flarc.WithSubcommand("version", version),
		),
	).OrFatal(logger)

	os.Exit(flarc.Run(ctx, fleetadm, flarc.WithHelp(true)))
}
