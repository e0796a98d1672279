package resource

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/fleetadm/fleetadm/cmd/fleetadm/config/preferences"
	krest "github.com/fleetadm/fleetadm/cmd/fleetadm/rest"
	"github.com/fleetadm/fleetadm/cmd/fleetadm/session"
	"github.com/fleetadm/fleetadm/cmd/fleetadm/subcommands/common"
	"github.com/fleetadm/fleetadm/pkg/notify"
	"github.com/fleetadm/fleetadm/pkg/store"
	"github.com/youta-t/flarc"
)

const ARG_FILE = "FILE"

func NewAdd[E any](d Descriptor[E]) (flarc.Command, error) {
	return flarc.NewCommand(
		fmt.Sprintf("Register a new %s.", d.Singular),
		struct{}{},
		flarc.Args{
			{
				Name: ARG_FILE, Required: true,
				Help: fmt.Sprintf("JSON file describing the %s. Pass - to read stdin", d.Singular),
			},
		},
		common.NewTask(AddTask(d)),
		flarc.WithDescription(fmt.Sprintf(`
Send a new %[1]s to the server and show the record it stored.

Example
-------

	{{ .Command }} new-%[1]s.json
	cat new-%[1]s.json | {{ .Command }} -
`, d.Singular)),
	)
}

func AddTask[E any](d Descriptor[E]) common.Task[struct{}] {
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
		item, err := readRecord[E](cl.Args()[ARG_FILE][0], cl.Stdin())
		if err != nil {
			return fmt.Errorf("fail to read %s: %w", d.Singular, err)
		}

		st := store.New(d.storeConfig(), d.NewService(client), store.WithSink[E](sink))
		created, err := st.Add(ctx, item)
		if err != nil {
			return err
		}

		enc := json.NewEncoder(cl.Stdout())
		enc.SetIndent("", "    ")
		return enc.Encode(created)
	}
}

func readRecord[E any](name string, stdin io.Reader) (E, error) {
	var item E

	var buf []byte
	var err error
	if name == "-" {
		buf, err = io.ReadAll(stdin)
	} else {
		buf, err = os.ReadFile(name)
	}
	if err != nil {
		return item, err
	}

	if err := json.Unmarshal(buf, &item); err != nil {
		return item, err
	}
	return item, nil
}
