package rest

import (
	"context"
	"crypto/tls"
	"crypto/x509"
	"encoding/base64"
	"fmt"
	"net/http"
	"strings"
	"time"

	kprof "github.com/fleetadm/fleetadm/cmd/fleetadm/config/profiles"
	"github.com/fleetadm/fleetadm/cmd/fleetadm/session"
	"github.com/fleetadm/fleetadm/pkg/api/types/clients"
	"github.com/fleetadm/fleetadm/pkg/api/types/deliveries"
	"github.com/fleetadm/fleetadm/pkg/api/types/routes"
	"github.com/fleetadm/fleetadm/pkg/api/types/trucks"
	"github.com/fleetadm/fleetadm/pkg/api/types/users"
	"github.com/fleetadm/fleetadm/pkg/notify"
	"github.com/fleetadm/fleetadm/pkg/utils"
)

// RequestTimeout bounds every request, matching the server's own
// expectations for interactive use.
const RequestTimeout = 10 * time.Second

// FleetClient talks to one fleet management server.
//
// List methods return the records plus the server-side total count,
// which may exceed the slice length when the server paginates.
type FleetClient interface {
	ListClients(ctx context.Context) ([]clients.Detail, int, error)
	GetClient(ctx context.Context, id int) (clients.Detail, error)
	CreateClient(ctx context.Context, draft clients.Draft) (clients.Detail, error)
	UpdateClient(ctx context.Context, id int, draft clients.Draft) (clients.Detail, error)
	DeleteClient(ctx context.Context, id int) error

	ListTrucks(ctx context.Context) ([]trucks.Detail, int, error)
	GetTruck(ctx context.Context, id int) (trucks.Detail, error)
	CreateTruck(ctx context.Context, draft trucks.Draft) (trucks.Detail, error)
	UpdateTruck(ctx context.Context, id int, draft trucks.Draft) (trucks.Detail, error)
	DeleteTruck(ctx context.Context, id int) error

	ListRoutes(ctx context.Context) ([]routes.Detail, int, error)
	GetRoute(ctx context.Context, id int) (routes.Detail, error)
	CreateRoute(ctx context.Context, draft routes.Draft) (routes.Detail, error)
	UpdateRoute(ctx context.Context, id int, draft routes.Draft) (routes.Detail, error)
	DeleteRoute(ctx context.Context, id int) error

	ListDeliveries(ctx context.Context) ([]deliveries.Detail, int, error)

	// ListDeliveriesByTruck and ListDeliveriesByRoute use the
	// server-side filtered endpoints instead of filtering locally.
	ListDeliveriesByTruck(ctx context.Context, truckId int) ([]deliveries.Detail, int, error)
	ListDeliveriesByRoute(ctx context.Context, routeId int) ([]deliveries.Detail, int, error)

	GetDelivery(ctx context.Context, id int) (deliveries.Detail, error)
	CreateDelivery(ctx context.Context, draft deliveries.Draft) (deliveries.Detail, error)
	UpdateDelivery(ctx context.Context, id int, draft deliveries.Draft) (deliveries.Detail, error)
	DeleteDelivery(ctx context.Context, id int) error

	// DeliveryClients lists the clients attached to one delivery.
	// The endpoint is optional server-side; a 404 means "not offered"
	// and yields (nil, nil), not an error.
	DeliveryClients(ctx context.Context, id int) ([]clients.Detail, error)

	// Login exchanges credentials for a token. It does not mutate the
	// session; that is the caller's decision.
	Login(ctx context.Context, username, password string) (users.LoginData, error)

	// VerifyToken asks the server whether the current token is still
	// accepted.
	VerifyToken(ctx context.Context) error
}

type client struct {
	httpclient *http.Client
	api        string
	session    *session.Session
	sink       notify.Sink
}

type Option func(*client)

// WithSink routes per-request info and warnings to sink.
func WithSink(sink notify.Sink) Option {
	return func(c *client) { c.sink = sink }
}

// NewClient makes a FleetClient for the given profile. The session
// supplies the bearer token and absorbs 401 responses.
//
// If the profile is invalid, ErrProfileInvalid is returned.
func NewClient(prof *kprof.FleetProfile, sess *session.Session, options ...Option) (FleetClient, error) {
	if err := prof.Verify(); err != nil {
		return nil, err
	}
	httpclient := &http.Client{Timeout: RequestTimeout}

	if prof.Cert.CA != "" {
		hc, err := trustCa(httpclient, []string{prof.Cert.CA})
		if err != nil {
			return nil, err
		}
		httpclient = hc
	}

	c := &client{
		httpclient: httpclient,
		api:        strings.TrimSuffix(prof.ApiRoot, "/"),
		session:    sess,
		sink:       notify.Discard(),
	}
	for _, opt := range options {
		opt(c)
	}

	return c, nil
}

// build URL with path
func (c *client) apipath(path ...string) string {
	path = utils.Map(path, func(p string) string {
		return strings.TrimPrefix(strings.TrimSuffix(p, "/"), "/")
	})

	return strings.Join(append([]string{c.api}, path...), "/")
}

func trustCa(hc *http.Client, cacerts []string) (*http.Client, error) {
	if len(cacerts) <= 0 {
		return hc, nil
	}

	if hc.Transport == nil {
		hc.Transport = http.DefaultTransport
	}

	tran, ok := hc.Transport.(*http.Transport)
	if !ok {
		return nil, fmt.Errorf("failed to add ca cert")
	}
	tran = tran.Clone()

	tcc := tran.TLSClientConfig.Clone()
	if tcc == nil {
		tcc = &tls.Config{}
	}

	rootcas := tcc.RootCAs
	if rootcas == nil {
		rootcas = x509.NewCertPool()
		tcc.RootCAs = rootcas
	}
	for _, ca := range cacerts {
		bin, err := base64.StdEncoding.DecodeString(ca)
		if err != nil {
			return nil, err
		}

		if !rootcas.AppendCertsFromPEM(bin) {
			return nil, fmt.Errorf("failed to add cert")
		}
	}

	tran.TLSClientConfig = tcc
	hc.Transport = tran
	return hc, nil
}
