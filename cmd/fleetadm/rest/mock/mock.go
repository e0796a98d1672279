package mock

import (
	"context"
	"testing"

	"github.com/fleetadm/fleetadm/cmd/fleetadm/rest"
	apiclients "github.com/fleetadm/fleetadm/pkg/api/types/clients"
	apideliveries "github.com/fleetadm/fleetadm/pkg/api/types/deliveries"
	apiroutes "github.com/fleetadm/fleetadm/pkg/api/types/routes"
	apitrucks "github.com/fleetadm/fleetadm/pkg/api/types/trucks"
	apiusers "github.com/fleetadm/fleetadm/pkg/api/types/users"
)

func New(t *testing.T) *mockFleetClient {
	return &mockFleetClient{t: t}
}

type LoginArgs struct {
	Username string
	Password string
}

type mockFleetClient struct {
	t    *testing.T
	Impl struct {
		ListClients  func(ctx context.Context) ([]apiclients.Detail, int, error)
		GetClient    func(ctx context.Context, id int) (apiclients.Detail, error)
		CreateClient func(ctx context.Context, draft apiclients.Draft) (apiclients.Detail, error)
		UpdateClient func(ctx context.Context, id int, draft apiclients.Draft) (apiclients.Detail, error)
		DeleteClient func(ctx context.Context, id int) error

		ListTrucks  func(ctx context.Context) ([]apitrucks.Detail, int, error)
		GetTruck    func(ctx context.Context, id int) (apitrucks.Detail, error)
		CreateTruck func(ctx context.Context, draft apitrucks.Draft) (apitrucks.Detail, error)
		UpdateTruck func(ctx context.Context, id int, draft apitrucks.Draft) (apitrucks.Detail, error)
		DeleteTruck func(ctx context.Context, id int) error

		ListRoutes  func(ctx context.Context) ([]apiroutes.Detail, int, error)
		GetRoute    func(ctx context.Context, id int) (apiroutes.Detail, error)
		CreateRoute func(ctx context.Context, draft apiroutes.Draft) (apiroutes.Detail, error)
		UpdateRoute func(ctx context.Context, id int, draft apiroutes.Draft) (apiroutes.Detail, error)
		DeleteRoute func(ctx context.Context, id int) error

		ListDeliveries        func(ctx context.Context) ([]apideliveries.Detail, int, error)
		ListDeliveriesByTruck func(ctx context.Context, truckId int) ([]apideliveries.Detail, int, error)
		ListDeliveriesByRoute func(ctx context.Context, routeId int) ([]apideliveries.Detail, int, error)
		GetDelivery           func(ctx context.Context, id int) (apideliveries.Detail, error)
		CreateDelivery        func(ctx context.Context, draft apideliveries.Draft) (apideliveries.Detail, error)
		UpdateDelivery        func(ctx context.Context, id int, draft apideliveries.Draft) (apideliveries.Detail, error)
		DeleteDelivery        func(ctx context.Context, id int) error
		DeliveryClients       func(ctx context.Context, id int) ([]apiclients.Detail, error)

		Login       func(ctx context.Context, username, password string) (apiusers.LoginData, error)
		VerifyToken func(ctx context.Context) error
	}
	Calls struct {
		ListClients  int
		GetClient    []int
		CreateClient []apiclients.Draft
		UpdateClient []int
		DeleteClient []int

		ListTrucks  int
		GetTruck    []int
		CreateTruck []apitrucks.Draft
		UpdateTruck []int
		DeleteTruck []int

		ListRoutes  int
		GetRoute    []int
		CreateRoute []apiroutes.Draft
		UpdateRoute []int
		DeleteRoute []int

		ListDeliveries        int
		ListDeliveriesByTruck []int
		ListDeliveriesByRoute []int
		GetDelivery           []int
		CreateDelivery        []apideliveries.Draft
		UpdateDelivery        []int
		DeleteDelivery        []int
		DeliveryClients       []int

		Login       []LoginArgs
		VerifyToken int
	}
}

var _ rest.FleetClient = &mockFleetClient{}

func (m *mockFleetClient) ListClients(ctx context.Context) ([]apiclients.Detail, int, error) {
	m.t.Helper()
	m.Calls.ListClients += 1
	if m.Impl.ListClients == nil {
		m.t.Fatal("ListClients is not ready to be called")
	}
	return m.Impl.ListClients(ctx)
}

func (m *mockFleetClient) GetClient(ctx context.Context, id int) (apiclients.Detail, error) {
	m.t.Helper()
	m.Calls.GetClient = append(m.Calls.GetClient, id)
	if m.Impl.GetClient == nil {
		m.t.Fatal("GetClient is not ready to be called")
	}
	return m.Impl.GetClient(ctx, id)
}

func (m *mockFleetClient) CreateClient(ctx context.Context, draft apiclients.Draft) (apiclients.Detail, error) {
	m.t.Helper()
	m.Calls.CreateClient = append(m.Calls.CreateClient, draft)
	if m.Impl.CreateClient == nil {
		m.t.Fatal("CreateClient is not ready to be called")
	}
	return m.Impl.CreateClient(ctx, draft)
}

func (m *mockFleetClient) UpdateClient(ctx context.Context, id int, draft apiclients.Draft) (apiclients.Detail, error) {
	m.t.Helper()
	m.Calls.UpdateClient = append(m.Calls.UpdateClient, id)
	if m.Impl.UpdateClient == nil {
		m.t.Fatal("UpdateClient is not ready to be called")
	}
	return m.Impl.UpdateClient(ctx, id, draft)
}

func (m *mockFleetClient) DeleteClient(ctx context.Context, id int) error {
	m.t.Helper()
	m.Calls.DeleteClient = append(m.Calls.DeleteClient, id)
	if m.Impl.DeleteClient == nil {
		m.t.Fatal("DeleteClient is not ready to be called")
	}
	return m.Impl.DeleteClient(ctx, id)
}

func (m *mockFleetClient) ListTrucks(ctx context.Context) ([]apitrucks.Detail, int, error) {
	m.t.Helper()
	m.Calls.ListTrucks += 1
	if m.Impl.ListTrucks == nil {
		m.t.Fatal("ListTrucks is not ready to be called")
	}
	return m.Impl.ListTrucks(ctx)
}

func (m *mockFleetClient) GetTruck(ctx context.Context, id int) (apitrucks.Detail, error) {
	m.t.Helper()
	m.Calls.GetTruck = append(m.Calls.GetTruck, id)
	if m.Impl.GetTruck == nil {
		m.t.Fatal("GetTruck is not ready to be called")
	}
	return m.Impl.GetTruck(ctx, id)
}

func (m *mockFleetClient) CreateTruck(ctx context.Context, draft apitrucks.Draft) (apitrucks.Detail, error) {
	m.t.Helper()
	m.Calls.CreateTruck = append(m.Calls.CreateTruck, draft)
	if m.Impl.CreateTruck == nil {
		m.t.Fatal("CreateTruck is not ready to be called")
	}
	return m.Impl.CreateTruck(ctx, draft)
}

func (m *mockFleetClient) UpdateTruck(ctx context.Context, id int, draft apitrucks.Draft) (apitrucks.Detail, error) {
	m.t.Helper()
	m.Calls.UpdateTruck = append(m.Calls.UpdateTruck, id)
	if m.Impl.UpdateTruck == nil {
		m.t.Fatal("UpdateTruck is not ready to be called")
	}
	return m.Impl.UpdateTruck(ctx, id, draft)
}

func (m *mockFleetClient) DeleteTruck(ctx context.Context, id int) error {
	m.t.Helper()
	m.Calls.DeleteTruck = append(m.Calls.DeleteTruck, id)
	if m.Impl.DeleteTruck == nil {
		m.t.Fatal("DeleteTruck is not ready to be called")
	}
	return m.Impl.DeleteTruck(ctx, id)
}

func (m *mockFleetClient) ListRoutes(ctx context.Context) ([]apiroutes.Detail, int, error) {
	m.t.Helper()
	m.Calls.ListRoutes += 1
	if m.Impl.ListRoutes == nil {
		m.t.Fatal("ListRoutes is not ready to be called")
	}
	return m.Impl.ListRoutes(ctx)
}

func (m *mockFleetClient) GetRoute(ctx context.Context, id int) (apiroutes.Detail, error) {
	m.t.Helper()
	m.Calls.GetRoute = append(m.Calls.GetRoute, id)
	if m.Impl.GetRoute == nil {
		m.t.Fatal("GetRoute is not ready to be called")
	}
	return m.Impl.GetRoute(ctx, id)
}

func (m *mockFleetClient) CreateRoute(ctx context.Context, draft apiroutes.Draft) (apiroutes.Detail, error) {
	m.t.Helper()
	m.Calls.CreateRoute = append(m.Calls.CreateRoute, draft)
	if m.Impl.CreateRoute == nil {
		m.t.Fatal("CreateRoute is not ready to be called")
	}
	return m.Impl.CreateRoute(ctx, draft)
}

func (m *mockFleetClient) UpdateRoute(ctx context.Context, id int, draft apiroutes.Draft) (apiroutes.Detail, error) {
	m.t.Helper()
	m.Calls.UpdateRoute = append(m.Calls.UpdateRoute, id)
	if m.Impl.UpdateRoute == nil {
		m.t.Fatal("UpdateRoute is not ready to be called")
	}
	return m.Impl.UpdateRoute(ctx, id, draft)
}

func (m *mockFleetClient) DeleteRoute(ctx context.Context, id int) error {
	m.t.Helper()
	m.Calls.DeleteRoute = append(m.Calls.DeleteRoute, id)
	if m.Impl.DeleteRoute == nil {
		m.t.Fatal("DeleteRoute is not ready to be called")
	}
	return m.Impl.DeleteRoute(ctx, id)
}

func (m *mockFleetClient) ListDeliveries(ctx context.Context) ([]apideliveries.Detail, int, error) {
	m.t.Helper()
	m.Calls.ListDeliveries += 1
	if m.Impl.ListDeliveries == nil {
		m.t.Fatal("ListDeliveries is not ready to be called")
	}
	return m.Impl.ListDeliveries(ctx)
}

func (m *mockFleetClient) ListDeliveriesByTruck(ctx context.Context, truckId int) ([]apideliveries.Detail, int, error) {
	m.t.Helper()
	m.Calls.ListDeliveriesByTruck = append(m.Calls.ListDeliveriesByTruck, truckId)
	if m.Impl.ListDeliveriesByTruck == nil {
		m.t.Fatal("ListDeliveriesByTruck is not ready to be called")
	}
	return m.Impl.ListDeliveriesByTruck(ctx, truckId)
}

func (m *mockFleetClient) ListDeliveriesByRoute(ctx context.Context, routeId int) ([]apideliveries.Detail, int, error) {
	m.t.Helper()
	m.Calls.ListDeliveriesByRoute = append(m.Calls.ListDeliveriesByRoute, routeId)
	if m.Impl.ListDeliveriesByRoute == nil {
		m.t.Fatal("ListDeliveriesByRoute is not ready to be called")
	}
	return m.Impl.ListDeliveriesByRoute(ctx, routeId)
}

func (m *mockFleetClient) GetDelivery(ctx context.Context, id int) (apideliveries.Detail, error) {
	m.t.Helper()
	m.Calls.GetDelivery = append(m.Calls.GetDelivery, id)
	if m.Impl.GetDelivery == nil {
		m.t.Fatal("GetDelivery is not ready to be called")
	}
	return m.Impl.GetDelivery(ctx, id)
}

func (m *mockFleetClient) CreateDelivery(ctx context.Context, draft apideliveries.Draft) (apideliveries.Detail, error) {
	m.t.Helper()
	m.Calls.CreateDelivery = append(m.Calls.CreateDelivery, draft)
	if m.Impl.CreateDelivery == nil {
		m.t.Fatal("CreateDelivery is not ready to be called")
	}
	return m.Impl.CreateDelivery(ctx, draft)
}

func (m *mockFleetClient) UpdateDelivery(ctx context.Context, id int, draft apideliveries.Draft) (apideliveries.Detail, error) {
	m.t.Helper()
	m.Calls.UpdateDelivery = append(m.Calls.UpdateDelivery, id)
	if m.Impl.UpdateDelivery == nil {
		m.t.Fatal("UpdateDelivery is not ready to be called")
	}
	return m.Impl.UpdateDelivery(ctx, id, draft)
}

func (m *mockFleetClient) DeleteDelivery(ctx context.Context, id int) error {
	m.t.Helper()
	m.Calls.DeleteDelivery = append(m.Calls.DeleteDelivery, id)
	if m.Impl.DeleteDelivery == nil {
		m.t.Fatal("DeleteDelivery is not ready to be called")
	}
	return m.Impl.DeleteDelivery(ctx, id)
}

func (m *mockFleetClient) DeliveryClients(ctx context.Context, id int) ([]apiclients.Detail, error) {
	m.t.Helper()
	m.Calls.DeliveryClients = append(m.Calls.DeliveryClients, id)
	if m.Impl.DeliveryClients == nil {
		m.t.Fatal("DeliveryClients is not ready to be called")
	}
	return m.Impl.DeliveryClients(ctx, id)
}

func (m *mockFleetClient) Login(ctx context.Context, username, password string) (apiusers.LoginData, error) {
	m.t.Helper()
	m.Calls.Login = append(m.Calls.Login, LoginArgs{Username: username, Password: password})
	if m.Impl.Login == nil {
		m.t.Fatal("Login is not ready to be called")
	}
	return m.Impl.Login(ctx, username, password)
}

func (m *mockFleetClient) VerifyToken(ctx context.Context) error {
	m.t.Helper()
	m.Calls.VerifyToken += 1
	if m.Impl.VerifyToken == nil {
		m.t.Fatal("VerifyToken is not ready to be called")
	}
	return m.Impl.VerifyToken(ctx)
}
