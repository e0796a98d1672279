package delivery_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"testing"

	"github.com/fleetadm/fleetadm/cmd/fleetadm/config/preferences"
	"github.com/fleetadm/fleetadm/cmd/fleetadm/rest/mock"
	"github.com/fleetadm/fleetadm/cmd/fleetadm/subcommands/delivery"
	"github.com/fleetadm/fleetadm/cmd/fleetadm/subcommands/internal/commandline"
	"github.com/fleetadm/fleetadm/cmd/fleetadm/subcommands/logger"
	apiclients "github.com/fleetadm/fleetadm/pkg/api/types/clients"
	"github.com/fleetadm/fleetadm/pkg/notify"
	"github.com/fleetadm/fleetadm/pkg/utils/cmp"
	"github.com/youta-t/flarc"
)

func TestClientsTask(t *testing.T) {
	served := []apiclients.Detail{
		{Id: 4, Name: "Almacen Central", Status: apiclients.StatusActive},
		{Id: 6, Name: "Bodega Sur", Status: apiclients.StatusActive},
	}

	type when struct {
		deliveryId string
		found      []apiclients.Detail
		err        error
	}
	type then struct {
		err    error
		called []int
		items  []apiclients.Detail
	}

	theory := func(when when, then then) func(*testing.T) {
		return func(t *testing.T) {
			client := mock.New(t)
			client.Impl.DeliveryClients = func(ctx context.Context, id int) ([]apiclients.Detail, error) {
				return when.found, when.err
			}

			stdout := new(bytes.Buffer)
			testee := delivery.ClientsTask()
			actual := testee(
				context.Background(), logger.Null(), preferences.Default(),
				newSession(t), client, notify.Discard(),
				commandline.MockCommandline[struct{}]{
					Fullname_: "fleetadm delivery clients",
					Stdout_:   stdout,
					Stderr_:   io.Discard,
					Flags_:    struct{}{},
					Args_:     map[string][]string{delivery.ARG_DELIVERY_ID: {when.deliveryId}},
				},
				[]any{},
			)

			if !cmp.SliceEq(client.Calls.DeliveryClients, then.called) {
				t.Errorf("wrong delivery ids queried: %v", client.Calls.DeliveryClients)
			}
			if then.err != nil {
				if !errors.Is(actual, then.err) {
					t.Errorf("wrong error: (actual, expected) = (%v, %v)", actual, then.err)
				}
				return
			}
			if actual != nil {
				t.Fatalf("unexpected error: %v", actual)
			}

			items := []apiclients.Detail{}
			if err := json.Unmarshal(stdout.Bytes(), &items); err != nil {
				t.Fatalf("output is not a client list: %v", err)
			}
			if !cmp.SliceEqWith(items, then.items, apiclients.Detail.Equal) {
				t.Errorf("wrong clients: (actual, expected) = (%v, %v)", items, then.items)
			}
		}
	}

	t.Run("it lists the clients of the delivery", theory(
		when{deliveryId: "3", found: served},
		then{called: []int{3}, items: served},
	))
	t.Run("a server without the listing yields an empty list", theory(
		when{deliveryId: "3", found: nil},
		then{called: []int{3}, items: []apiclients.Detail{}},
	))
	t.Run("it surfaces server failures", theory(
		when{deliveryId: "3", err: context.DeadlineExceeded},
		then{called: []int{3}, err: context.DeadlineExceeded},
	))
	t.Run("it rejects non-numeric ids", theory(
		when{deliveryId: "three"},
		then{called: []int{}, err: flarc.ErrUsage},
	))
}
