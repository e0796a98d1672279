package common

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/fleetadm/fleetadm/cmd/fleetadm/config/credentials"
	"github.com/fleetadm/fleetadm/cmd/fleetadm/config/preferences"
	"github.com/fleetadm/fleetadm/cmd/fleetadm/config/profiles"
	krest "github.com/fleetadm/fleetadm/cmd/fleetadm/rest"
	"github.com/fleetadm/fleetadm/cmd/fleetadm/session"
	"github.com/fleetadm/fleetadm/pkg/notify"
	"github.com/youta-t/flarc"
)

type FleetTaskWithCommonFlag[T any] func(
	ctx context.Context,
	logger *log.Logger,
	commonFlag CommonFlags,
	cl flarc.Commandline[T],
	params []any,
) error

func NewTaskWithCommonFlag[T any](task FleetTaskWithCommonFlag[T]) flarc.Task[T] {
	return func(ctx context.Context, cl flarc.Commandline[T], pos []any) error {
		var commonFlag CommonFlags
		found := false
		newpos := make([]any, 0, len(pos))
		for _, p := range pos {
			switch v := p.(type) {
			case CommonFlags:
				found = true
				commonFlag = v
			default:
				newpos = append(newpos, p)
			}
		}
		if !found {
			return errors.New("programming error: common flags not found")
		}

		logger := log.New(cl.Stderr(), "", log.LstdFlags)
		logger.SetPrefix(fmt.Sprintf("[%s] ", cl.Fullname()))

		return task(
			ctx,
			logger,
			commonFlag,
			cl,
			newpos,
		)
	}
}

// Task is a command body with the full toolchain injected: the user's
// preferences, the restored session, the client against the selected
// profile and the notification sink.
type Task[T any] func(
	ctx context.Context,
	logger *log.Logger,
	prefs *preferences.Preferences,
	sess *session.Session,
	client krest.FleetClient,
	sink notify.Sink,
	cl flarc.Commandline[T],
	params []any,
) error

func NewTask[T any](task Task[T]) flarc.Task[T] {

	return NewTaskWithCommonFlag(func(
		ctx context.Context,
		logger *log.Logger,
		commonFlag CommonFlags,
		cl flarc.Commandline[T],
		params []any,
	) error {
		profile, err := profiles.LoadProfileStore(commonFlag.ProfileStore)
		if err != nil {
			if errors.Is(err, os.ErrNotExist) || errors.Is(err, profiles.ErrProfileStoreNotFound) {
				return fmt.Errorf(
					"%w: fleet profile store (%s) is not found. Please try `fleetadm init` first",
					err, commonFlag.ProfileStore,
				)
			}
			return fmt.Errorf(
				"%w: failed to load fleet profile store (%s)",
				err, commonFlag.ProfileStore,
			)
		}
		prof, ok := profile[commonFlag.Profile]
		if !ok {
			return fmt.Errorf(
				"profile '%s' not found in the profile store (%s)",
				commonFlag.Profile, commonFlag.ProfileStore,
			)
		}

		prefs, err := preferences.Load(commonFlag.Preferences)
		if err != nil {
			return fmt.Errorf("%w: failed to load preferences (%s)", err, commonFlag.Preferences)
		}

		sink := notify.Muted(
			notify.Console(cl.Stderr()),
			prefs.Notifications.Success,
			true,
			prefs.Notifications.Info,
			true,
		)

		sess := session.New(
			commonFlag.CredentialsPath(),
			credentials.SessionPath(),
			session.WithSink(sink),
		)
		sess.Restore()

		client, err := krest.NewClient(prof, sess, krest.WithSink(sink))
		if err != nil {
			return fmt.Errorf(
				"%w: failed to create fleet client. Your profile (%s in %s) can be broken.\n\nRemove it and try `fleetadm init` again",
				err, commonFlag.Profile, commonFlag.ProfileStore,
			)
		}
		return task(ctx, logger, prefs, sess, client, sink, cl, params)
	})
}
