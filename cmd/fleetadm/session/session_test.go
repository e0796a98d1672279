package session_test

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/fleetadm/fleetadm/cmd/fleetadm/config/credentials"
	"github.com/fleetadm/fleetadm/cmd/fleetadm/session"
	apierr "github.com/fleetadm/fleetadm/pkg/api/types/errors"
	"github.com/fleetadm/fleetadm/pkg/api/types/users"
)

type mockAuth struct {
	Impl struct {
		Login       func(ctx context.Context, username, password string) (users.LoginData, error)
		VerifyToken func(ctx context.Context) error
	}
}

var _ session.Authenticator = &mockAuth{}
var _ session.Verifier = &mockAuth{}

func (m *mockAuth) Login(ctx context.Context, username, password string) (users.LoginData, error) {
	if m.Impl.Login == nil {
		panic("Login is not ready to be called")
	}
	return m.Impl.Login(ctx, username, password)
}

func (m *mockAuth) VerifyToken(ctx context.Context) error {
	if m.Impl.VerifyToken == nil {
		panic("VerifyToken is not ready to be called")
	}
	return m.Impl.VerifyToken(ctx)
}

// jwtWithExp builds an unsigned-but-shaped JWT carrying only an exp
// claim. The signature is never checked locally.
func jwtWithExp(exp time.Time) string {
	header := base64.RawURLEncoding.EncodeToString([]byte(`{"alg":"HS256","typ":"JWT"}`))
	payload := base64.RawURLEncoding.EncodeToString(
		[]byte(fmt.Sprintf(`{"exp":%d}`, exp.Unix())),
	)
	return header + "." + payload + ".c2ln"
}

func newSession(t *testing.T) (*session.Session, string, string) {
	t.Helper()
	dir := t.TempDir()
	durable := filepath.Join(dir, "credentials")
	sess := filepath.Join(dir, "session")
	return session.New(durable, sess), durable, sess
}

func TestLogin(t *testing.T) {
	ctx := context.Background()
	admin := users.Detail{Id: 1, Username: "admin", Name: "Admin"}

	t.Run("a successful login authenticates and persists durably", func(t *testing.T) {
		s, durable, _ := newSession(t)
		auth := &mockAuth{}
		auth.Impl.Login = func(_ context.Context, username, password string) (users.LoginData, error) {
			if username != "admin" || password != "secret" {
				t.Errorf("unexpected credentials: %s / %s", username, password)
			}
			return users.LoginData{User: admin, Token: "token-1"}, nil
		}

		if err := s.Login(ctx, auth, "admin", "secret", true); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if s.State() != session.Authenticated {
			t.Errorf("unexpected state: %s", s.State())
		}
		if s.Token() != "token-1" {
			t.Errorf("unexpected token: %s", s.Token())
		}
		if u, ok := s.User(); !ok || !u.Equal(admin) {
			t.Errorf("unexpected user: %+v (%v)", u, ok)
		}

		stored, err := credentials.Load(durable)
		if err != nil {
			t.Fatalf("credentials not persisted: %v", err)
		}
		if stored.Token != "token-1" {
			t.Errorf("unexpected stored token: %s", stored.Token)
		}
	})

	t.Run("a session-scoped login persists to the session tier only", func(t *testing.T) {
		s, durable, sessPath := newSession(t)
		auth := &mockAuth{}
		auth.Impl.Login = func(context.Context, string, string) (users.LoginData, error) {
			return users.LoginData{User: admin, Token: "token-2"}, nil
		}

		if err := s.Login(ctx, auth, "admin", "secret", false); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if _, err := credentials.Load(sessPath); err != nil {
			t.Errorf("session tier not written: %v", err)
		}
		if _, err := credentials.Load(durable); !errors.Is(err, credentials.ErrNotFound) {
			t.Errorf("durable tier unexpectedly written: %v", err)
		}
	})

	t.Run("a rejected login is ErrInvalidCredentials and state Invalid", func(t *testing.T) {
		s, _, _ := newSession(t)
		auth := &mockAuth{}
		auth.Impl.Login = func(context.Context, string, string) (users.LoginData, error) {
			return users.LoginData{}, apierr.NewHTTPError(401, "Credenciales invalidas")
		}

		err := s.Login(ctx, auth, "admin", "wrong", true)
		if !errors.Is(err, session.ErrInvalidCredentials) {
			t.Errorf("unexpected error: %v", err)
		}
		if s.State() != session.Invalid {
			t.Errorf("unexpected state: %s", s.State())
		}
		if s.Token() != "" {
			t.Errorf("token survived a failed login: %s", s.Token())
		}
	})

	t.Run("an unreachable server is ErrServiceUnavailable", func(t *testing.T) {
		s, _, _ := newSession(t)
		auth := &mockAuth{}
		auth.Impl.Login = func(context.Context, string, string) (users.LoginData, error) {
			return users.LoginData{}, apierr.ErrConnection
		}

		err := s.Login(ctx, auth, "admin", "secret", true)
		if !errors.Is(err, session.ErrServiceUnavailable) {
			t.Errorf("unexpected error: %v", err)
		}
	})
}

func TestLogout(t *testing.T) {
	ctx := context.Background()

	t.Run("logout purges both tiers and resets to Anonymous", func(t *testing.T) {
		s, durable, sessPath := newSession(t)
		auth := &mockAuth{}
		auth.Impl.Login = func(context.Context, string, string) (users.LoginData, error) {
			return users.LoginData{User: users.Detail{Username: "admin"}, Token: "t"}, nil
		}
		if err := s.Login(ctx, auth, "admin", "secret", true); err != nil {
			t.Fatal(err)
		}
		if err := credentials.Save(sessPath, credentials.Credentials{Token: "t2"}); err != nil {
			t.Fatal(err)
		}

		s.Logout()

		if s.State() != session.Anonymous {
			t.Errorf("unexpected state: %s", s.State())
		}
		for _, path := range []string{durable, sessPath} {
			if _, err := os.Stat(path); !os.IsNotExist(err) {
				t.Errorf("credentials left behind at %s", path)
			}
		}
	})
}

func TestVerify(t *testing.T) {
	ctx := context.Background()

	authenticated := func(t *testing.T) (*session.Session, string) {
		s, durable, _ := newSession(t)
		auth := &mockAuth{}
		auth.Impl.Login = func(context.Context, string, string) (users.LoginData, error) {
			return users.LoginData{User: users.Detail{Username: "admin"}, Token: "t"}, nil
		}
		if err := s.Login(ctx, auth, "admin", "secret", true); err != nil {
			t.Fatal(err)
		}
		return s, durable
	}

	t.Run("an accepted token keeps the session", func(t *testing.T) {
		s, _ := authenticated(t)
		v := &mockAuth{}
		v.Impl.VerifyToken = func(context.Context) error { return nil }

		if !s.Verify(ctx, v) {
			t.Error("verify rejected a valid session")
		}
		if s.State() != session.Authenticated {
			t.Errorf("unexpected state: %s", s.State())
		}
	})

	t.Run("a rejected token tears the session down", func(t *testing.T) {
		s, durable := authenticated(t)
		v := &mockAuth{}
		v.Impl.VerifyToken = func(context.Context) error {
			return apierr.NewHTTPError(401, "token vencido")
		}

		if s.Verify(ctx, v) {
			t.Error("verify accepted a rejected session")
		}
		if s.State() != session.Invalid {
			t.Errorf("unexpected state: %s", s.State())
		}
		if _, err := os.Stat(durable); !os.IsNotExist(err) {
			t.Error("credentials left behind after rejection")
		}
	})

	t.Run("any other failure fails open and keeps the session", func(t *testing.T) {
		s, _ := authenticated(t)
		v := &mockAuth{}
		v.Impl.VerifyToken = func(context.Context) error { return apierr.ErrTimeout }

		if !s.Verify(ctx, v) {
			t.Error("verify failed closed on a transport error")
		}
		if s.State() != session.Authenticated || s.Token() != "t" {
			t.Errorf("session lost on a transport error: %s", s.State())
		}
	})

	t.Run("an anonymous session does not call the server", func(t *testing.T) {
		s, _, _ := newSession(t)
		if s.Verify(ctx, &mockAuth{}) {
			t.Error("anonymous session verified")
		}
	})
}

func TestRestore(t *testing.T) {
	t.Run("the durable tier wins over the session tier", func(t *testing.T) {
		s, durable, sessPath := newSession(t)
		if err := credentials.Save(durable, credentials.Credentials{
			Token: "durable-token", User: users.Detail{Username: "durable"},
		}); err != nil {
			t.Fatal(err)
		}
		if err := credentials.Save(sessPath, credentials.Credentials{
			Token: "session-token", User: users.Detail{Username: "session"},
		}); err != nil {
			t.Fatal(err)
		}

		s.Restore()

		if s.Token() != "durable-token" {
			t.Errorf("unexpected token: %s", s.Token())
		}
		if s.State() != session.Authenticated {
			t.Errorf("unexpected state: %s", s.State())
		}
	})

	t.Run("a corrupt durable entry is purged and the session tier used", func(t *testing.T) {
		s, durable, sessPath := newSession(t)
		if err := os.MkdirAll(filepath.Dir(durable), 0700); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(durable, []byte("}{ broken"), 0600); err != nil {
			t.Fatal(err)
		}
		if err := credentials.Save(sessPath, credentials.Credentials{
			Token: "session-token",
		}); err != nil {
			t.Fatal(err)
		}

		s.Restore()

		if s.Token() != "session-token" {
			t.Errorf("unexpected token: %s", s.Token())
		}
		if _, err := os.Stat(durable); !os.IsNotExist(err) {
			t.Error("corrupt entry not purged")
		}
	})

	t.Run("with nothing stored, the session stays Anonymous", func(t *testing.T) {
		s, _, _ := newSession(t)
		s.Restore()
		if s.State() != session.Anonymous {
			t.Errorf("unexpected state: %s", s.State())
		}
	})

	t.Run("a token past its exp claim is purged without a network call", func(t *testing.T) {
		s, durable, _ := newSession(t)
		if err := credentials.Save(durable, credentials.Credentials{
			Token: jwtWithExp(time.Now().Add(-time.Hour)),
		}); err != nil {
			t.Fatal(err)
		}

		s.Restore()

		if s.State() != session.Anonymous {
			t.Errorf("unexpected state: %s", s.State())
		}
		if _, err := os.Stat(durable); !os.IsNotExist(err) {
			t.Error("expired entry not purged")
		}
	})

	t.Run("a token with a future exp claim restores", func(t *testing.T) {
		s, durable, _ := newSession(t)
		token := jwtWithExp(time.Now().Add(time.Hour))
		if err := credentials.Save(durable, credentials.Credentials{Token: token}); err != nil {
			t.Fatal(err)
		}

		s.Restore()

		if s.Token() != token {
			t.Errorf("unexpected token: %s", s.Token())
		}
		if exp, ok := s.TokenExpiry(); !ok || !exp.After(time.Now()) {
			t.Errorf("unexpected expiry: %v (%v)", exp, ok)
		}
	})
}

func TestExpire(t *testing.T) {
	ctx := context.Background()

	t.Run("expire tears down once and is a no-op afterwards", func(t *testing.T) {
		s, durable, _ := newSession(t)
		auth := &mockAuth{}
		auth.Impl.Login = func(context.Context, string, string) (users.LoginData, error) {
			return users.LoginData{User: users.Detail{Username: "admin"}, Token: "t"}, nil
		}
		if err := s.Login(ctx, auth, "admin", "secret", true); err != nil {
			t.Fatal(err)
		}

		s.Expire()
		if s.State() != session.Invalid || s.Token() != "" {
			t.Errorf("session not torn down: %s / %q", s.State(), s.Token())
		}
		if _, err := os.Stat(durable); !os.IsNotExist(err) {
			t.Error("credentials left behind")
		}

		s.Expire()
		if s.State() != session.Invalid {
			t.Errorf("second expire changed state: %s", s.State())
		}
	})
}
