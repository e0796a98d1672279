package initialize_test

import (
	"context"
	"errors"
	"io"
	"path/filepath"
	"testing"

	"github.com/fleetadm/fleetadm/cmd/fleetadm/config/profiles"
	"github.com/fleetadm/fleetadm/cmd/fleetadm/subcommands/common"
	"github.com/fleetadm/fleetadm/cmd/fleetadm/subcommands/initialize"
	"github.com/fleetadm/fleetadm/cmd/fleetadm/subcommands/internal/commandline"
	"github.com/fleetadm/fleetadm/cmd/fleetadm/subcommands/logger"
	"github.com/fleetadm/fleetadm/pkg/utils/try"
	"github.com/youta-t/flarc"
)

func TestInitTask(t *testing.T) {
	t.Run("it registers a new profile", func(t *testing.T) {
		storePath := filepath.Join(t.TempDir(), "profile")

		testee := initialize.Task()
		if err := testee(
			context.Background(), logger.Null(),
			common.CommonFlags{Profile: "default", ProfileStore: storePath},
			commandline.MockCommandline[initialize.Flags]{
				Fullname_: "fleetadm init",
				Stdout_:   io.Discard,
				Stderr_:   io.Discard,
				Flags_:    initialize.Flags{},
				Args_: map[string][]string{
					initialize.ARG_SERVER_URL: {"https://fleet.example.com"},
				},
			},
			[]any{},
		); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		profStore := try.To(profiles.LoadProfileStore(storePath)).OrFatal(t)
		prof, ok := profStore["default"]
		if !ok {
			t.Fatal("profile is not saved")
		}
		if prof.ApiRoot != "https://fleet.example.com" {
			t.Errorf("wrong apiRoot: %s", prof.ApiRoot)
		}
	})

	t.Run("it keeps other profiles in the store", func(t *testing.T) {
		storePath := filepath.Join(t.TempDir(), "profile")
		existing := profiles.ProfileStore{
			"staging": &profiles.FleetProfile{ApiRoot: "https://staging.example.com"},
		}
		if err := existing.Save(storePath); err != nil {
			t.Fatal(err)
		}

		testee := initialize.Task()
		if err := testee(
			context.Background(), logger.Null(),
			common.CommonFlags{Profile: "default", ProfileStore: storePath},
			commandline.MockCommandline[initialize.Flags]{
				Fullname_: "fleetadm init",
				Stdout_:   io.Discard,
				Stderr_:   io.Discard,
				Flags_:    initialize.Flags{},
				Args_: map[string][]string{
					initialize.ARG_SERVER_URL: {"https://fleet.example.com"},
				},
			},
			[]any{},
		); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		profStore := try.To(profiles.LoadProfileStore(storePath)).OrFatal(t)
		if len(profStore) != 2 {
			t.Errorf("wrong profiles: %v", profStore)
		}
		if _, ok := profStore["staging"]; !ok {
			t.Error("staging profile is dropped")
		}
	})

	t.Run("it rejects non-URL server addresses", func(t *testing.T) {
		storePath := filepath.Join(t.TempDir(), "profile")

		testee := initialize.Task()
		actual := testee(
			context.Background(), logger.Null(),
			common.CommonFlags{Profile: "default", ProfileStore: storePath},
			commandline.MockCommandline[initialize.Flags]{
				Fullname_: "fleetadm init",
				Stdout_:   io.Discard,
				Stderr_:   io.Discard,
				Flags_:    initialize.Flags{},
				Args_: map[string][]string{
					initialize.ARG_SERVER_URL: {"not a url"},
				},
			},
			[]any{},
		)
		if !errors.Is(actual, flarc.ErrUsage) {
			t.Errorf("wrong error: %v", actual)
		}
		if _, err := profiles.LoadProfileStore(storePath); !errors.Is(err, profiles.ErrProfileStoreNotFound) {
			t.Error("no profile should be saved")
		}
	})
}
