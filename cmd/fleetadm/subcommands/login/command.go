// Package login exchanges user credentials for a token and stores it
// for the other commands.
package login

import (
	"bufio"
	"context"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/fleetadm/fleetadm/cmd/fleetadm/config/preferences"
	krest "github.com/fleetadm/fleetadm/cmd/fleetadm/rest"
	"github.com/fleetadm/fleetadm/cmd/fleetadm/session"
	"github.com/fleetadm/fleetadm/cmd/fleetadm/subcommands/common"
	"github.com/fleetadm/fleetadm/pkg/notify"
	"github.com/youta-t/flarc"
	"golang.org/x/term"
)

type Flags struct {
	User          string `flag:"user" alias:"u" metavar:"USERNAME" help:"Username to log in as."`
	PasswordStdin bool   `flag:"password-stdin" help:"Read the password from stdin instead of prompting."`
	Session       bool   `flag:"session" help:"Keep the credentials only until the OS clears its temp dir."`
}

func New() (flarc.Command, error) {
	return flarc.NewCommand(
		"Log in to the fleet server.",
		Flags{},
		flarc.Args{},
		common.NewTask(Task()),
		flarc.WithDescription(`
Authenticate against the fleet server of the selected profile and
store the token for the following commands.

By default the token is written under your home directory and
survives reboots. With --session it is written under the OS temp dir
instead and is gone after a cleanup or restart.

The password is prompted on the terminal; pipe it in with
--password-stdin for scripts.

Example
-------

	{{ .Command }} -u admin
	echo -n "$FLEET_PASSWORD" | {{ .Command }} -u admin --password-stdin
`),
	)
}

func Task() common.Task[Flags] {
	return func(
		ctx context.Context,
		logger *log.Logger,
		prefs *preferences.Preferences,
		sess *session.Session,
		client krest.FleetClient,
		sink notify.Sink,
		cl flarc.Commandline[Flags],
		params []any,
	) error {
		flags := cl.Flags()

		username := flags.User
		if username == "" {
			return fmt.Errorf("%w: --user is required", flarc.ErrUsage)
		}

		password, err := readPassword(cl, flags.PasswordStdin)
		if err != nil {
			return fmt.Errorf("fail to read password: %w", err)
		}
		if password == "" {
			return fmt.Errorf("%w: password is empty", flarc.ErrUsage)
		}

		if err := sess.Login(ctx, client, username, password, !flags.Session); err != nil {
			return err
		}

		user, _ := sess.User()
		fmt.Fprintf(cl.Stdout(), "logged in as %s\n", user.Username)
		return nil
	}
}

func readPassword(cl flarc.Commandline[Flags], fromStdin bool) (string, error) {
	if fromStdin {
		line, err := bufio.NewReader(cl.Stdin()).ReadString('\n')
		if err != nil && line == "" {
			return "", err
		}
		return strings.TrimRight(line, "\r\n"), nil
	}

	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		return "", fmt.Errorf("stdin is not a terminal; use --password-stdin")
	}

	fmt.Fprint(cl.Stderr(), "Password: ")
	raw, err := term.ReadPassword(fd)
	fmt.Fprintln(cl.Stderr())
	if err != nil {
		return "", err
	}
	return string(raw), nil
}
