// Package initialize registers a server profile, the first step of
// any fleetadm setup.
package initialize

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/fleetadm/fleetadm/cmd/fleetadm/config/profiles"
	"github.com/fleetadm/fleetadm/cmd/fleetadm/subcommands/common"
	"github.com/youta-t/flarc"
)

const ARG_SERVER_URL = "SERVER_URL"

type Flags struct {
	Ca string `flag:"ca" metavar:"FILE" help:"PEM certificate of the server's CA, when it is not publicly signed."`
}

func New() (flarc.Command, error) {
	return flarc.NewCommand(
		"Register a fleet server profile.",
		Flags{},
		flarc.Args{
			{
				Name: ARG_SERVER_URL, Required: true,
				Help: "Base URL of the fleet server, scheme included.",
			},
		},
		common.NewTaskWithCommonFlag(Task()),
		flarc.WithDescription(`
Point a profile at a fleet server and save it into the profile store.

The profile name is given by "--profile" (default: "default"). Every
other command reads the server address from that profile.

Example
-------

	{{ .Command }} https://fleet.example.com
	{{ .Command }} --ca ./fleet-ca.crt https://fleet.internal:8443
`),
	)
}

func Task() common.FleetTaskWithCommonFlag[Flags] {
	return func(
		ctx context.Context,
		logger *log.Logger,
		commonFlag common.CommonFlags,
		cl flarc.Commandline[Flags],
		params []any,
	) error {
		serverUrl := cl.Args()[ARG_SERVER_URL][0]

		newProf := &profiles.FleetProfile{ApiRoot: serverUrl}
		if caFile := cl.Flags().Ca; caFile != "" {
			pem, err := os.ReadFile(caFile)
			if err != nil {
				return fmt.Errorf("fail to read CA file (%s): %w", caFile, err)
			}
			newProf.Cert.CA = base64.StdEncoding.EncodeToString(pem)
		}
		if err := newProf.Verify(); err != nil {
			return fmt.Errorf("%w: %w", flarc.ErrUsage, err)
		}

		profStore, err := profiles.LoadProfileStore(commonFlag.ProfileStore)
		if errors.Is(err, profiles.ErrProfileStoreNotFound) {
			profStore = profiles.ProfileStore{}
		} else if err != nil {
			return fmt.Errorf("fail to load profile store (%s): %w", commonFlag.ProfileStore, err)
		}

		profStore[commonFlag.Profile] = newProf
		if err := profStore.Save(commonFlag.ProfileStore); err != nil {
			return fmt.Errorf("fail to save profile store (%s): %w", commonFlag.ProfileStore, err)
		}

		fmt.Fprintf(
			cl.Stdout(), "profile %q now points at %s\n",
			commonFlag.Profile, serverUrl,
		)
		return nil
	}
}
