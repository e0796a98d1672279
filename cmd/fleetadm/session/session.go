// Package session tracks who is logged in and keeps the stored
// credentials in line with that.
package session

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/fleetadm/fleetadm/cmd/fleetadm/config/credentials"
	apierr "github.com/fleetadm/fleetadm/pkg/api/types/errors"
	"github.com/fleetadm/fleetadm/pkg/api/types/users"
	"github.com/fleetadm/fleetadm/pkg/notify"
	"github.com/golang-jwt/jwt/v5"
)

type State int

const (
	Anonymous State = iota
	Authenticating
	Authenticated
	Invalid
)

func (s State) String() string {
	switch s {
	case Anonymous:
		return "anonymous"
	case Authenticating:
		return "authenticating"
	case Authenticated:
		return "authenticated"
	case Invalid:
		return "invalid"
	default:
		return fmt.Sprintf("unknown (%d)", int(s))
	}
}

var ErrInvalidCredentials = errors.New("username or password is wrong")
var ErrServiceUnavailable = errors.New("cannot log in now")

// Authenticator exchanges a username and password for a token.
type Authenticator interface {
	Login(ctx context.Context, username, password string) (users.LoginData, error)
}

// Verifier checks the current token against the server.
type Verifier interface {
	VerifyToken(ctx context.Context) error
}

// Session is the login state of this process.
//
// Not safe for concurrent use; commands drive it from one goroutine.
type Session struct {
	state State
	token string
	user  users.Detail

	durablePath string
	sessionPath string

	sink notify.Sink
}

type Option func(*Session)

func WithSink(sink notify.Sink) Option {
	return func(s *Session) { s.sink = sink }
}

// New makes an Anonymous session backed by the two credential tiers.
func New(durablePath, sessionPath string, options ...Option) *Session {
	s := &Session{
		state:       Anonymous,
		durablePath: durablePath,
		sessionPath: sessionPath,
		sink:        notify.Discard(),
	}
	for _, opt := range options {
		opt(s)
	}
	return s
}

func (s *Session) State() State { return s.state }

// Token returns the bearer token, empty unless Authenticated.
func (s *Session) Token() string { return s.token }

func (s *Session) User() (users.Detail, bool) {
	return s.user, s.state == Authenticated
}

// Login authenticates against auth and, on success, persists the
// credentials. durable selects the tier surviving reboots; otherwise
// they live only as long as the OS temp dir.
func (s *Session) Login(
	ctx context.Context, auth Authenticator,
	username, password string, durable bool,
) error {
	s.state = Authenticating

	data, err := auth.Login(ctx, username, password)
	if err != nil {
		s.state = Invalid
		s.token = ""
		s.user = users.Detail{}
		if errors.Is(err, apierr.ErrUnauthorized) {
			return fmt.Errorf("%w: %s", ErrInvalidCredentials, err)
		}
		return fmt.Errorf("%w: %s", ErrServiceUnavailable, err)
	}

	s.state = Authenticated
	s.token = data.Token
	s.user = data.User

	target, other := s.durablePath, s.sessionPath
	if !durable {
		target, other = s.sessionPath, s.durablePath
	}
	// the fresh login must win any later Restore, whichever tier it
	// lives in.
	if err := credentials.Purge(other); err != nil {
		s.sink.Warning("cannot drop old credentials: %s", err)
	}
	if err := credentials.Save(target, credentials.Credentials{
		Token: data.Token, User: data.User,
	}); err != nil {
		s.sink.Warning("logged in, but cannot store credentials: %s", err)
		return nil
	}

	s.sink.Success("logged in as %s", data.User.Username)
	return nil
}

// Logout drops the stored credentials of both tiers and resets to
// Anonymous. It never fails.
func (s *Session) Logout() {
	credentials.Purge(s.durablePath)
	credentials.Purge(s.sessionPath)
	s.state = Anonymous
	s.token = ""
	s.user = users.Detail{}
}

// Verify asks the server whether the token is still accepted.
//
// Only a definite rejection tears the session down. Any other failure
// keeps the session as it is and reports true, so that a flaky
// network does not log the user out.
func (s *Session) Verify(ctx context.Context, v Verifier) bool {
	if s.state != Authenticated {
		return false
	}

	err := v.VerifyToken(ctx)
	if err == nil {
		return true
	}
	if errors.Is(err, apierr.ErrUnauthorized) {
		s.Expire()
		return false
	}
	return true
}

// Restore picks up stored credentials, durable tier first. Corrupt
// entries and tokens already past their exp claim are purged in
// passing; when nothing usable is found the session stays Anonymous.
func (s *Session) Restore() {
	for _, path := range []string{s.durablePath, s.sessionPath} {
		creds, err := credentials.Load(path)
		if errors.Is(err, credentials.ErrNotFound) {
			continue
		}
		if err != nil {
			credentials.Purge(path)
			continue
		}
		if expired(creds.Token) {
			credentials.Purge(path)
			continue
		}

		s.state = Authenticated
		s.token = creds.Token
		s.user = creds.User
		return
	}
}

// Expire is the server-said-no entry point. It tears the session down
// once; calling it again is a no-op.
func (s *Session) Expire() {
	if s.state == Anonymous || s.state == Invalid {
		return
	}

	s.state = Invalid
	s.token = ""
	s.user = users.Detail{}
	credentials.Purge(s.durablePath)
	credentials.Purge(s.sessionPath)
	s.sink.Warning("session expired. log in again")
}

// TokenExpiry reads the exp claim of the current token. Zero time and
// false when there is no token or it carries no readable exp.
//
// The signature is not checked here. Validation is the server's
// business; this is only for display and for purging stale tokens.
func (s *Session) TokenExpiry() (time.Time, bool) {
	return tokenExpiry(s.token)
}

func tokenExpiry(token string) (time.Time, bool) {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return time.Time{}, false
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}, false
	}
	return exp.Time, true
}

func expired(token string) bool {
	exp, ok := tokenExpiry(token)
	return ok && exp.Before(time.Now())
}
