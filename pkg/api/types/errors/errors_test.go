package errors_test

import (
	"errors"
	"testing"

	apierr "github.com/fleetadm/fleetadm/pkg/api/types/errors"
)

func TestHTTPError(t *testing.T) {
	type When struct {
		code    int
		message string
	}
	type Then struct {
		sentinel error
		message  string
	}

	theory := func(when When, then Then) func(*testing.T) {
		return func(t *testing.T) {
			err := apierr.NewHTTPError(when.code, when.message)

			if then.sentinel != nil && !errors.Is(err, then.sentinel) {
				t.Errorf("error %v does not match sentinel %v", err, then.sentinel)
			}
			if actual := err.Error(); actual != then.message {
				t.Errorf("message: actual %q, expected %q", actual, then.message)
			}
		}
	}

	t.Run("401 classifies as unauthorized", theory(
		When{code: 401, message: "Token invalido"},
		Then{sentinel: apierr.ErrUnauthorized, message: "Token invalido (status 401)"},
	))
	t.Run("403 classifies as unauthorized", theory(
		When{code: 403, message: "Acceso denegado"},
		Then{sentinel: apierr.ErrUnauthorized, message: "Acceso denegado (status 403)"},
	))
	t.Run("404 classifies as not found", theory(
		When{code: 404, message: ""},
		Then{sentinel: apierr.ErrNotFound, message: "server responded 404"},
	))
	t.Run("500 classifies as server error", theory(
		When{code: 500, message: "Error interno"},
		Then{sentinel: apierr.ErrServer, message: "Error interno (status 500)"},
	))
	t.Run("422 stays unclassified", theory(
		When{code: 422, message: "Datos invalidos"},
		Then{sentinel: nil, message: "Datos invalidos (status 422)"},
	))

	t.Run("422 does not match the other sentinels", func(t *testing.T) {
		err := apierr.NewHTTPError(422, "Datos invalidos")
		for _, sentinel := range []error{
			apierr.ErrUnauthorized, apierr.ErrNotFound, apierr.ErrServer,
			apierr.ErrTimeout, apierr.ErrConnection,
		} {
			if errors.Is(err, sentinel) {
				t.Errorf("error %v unexpectedly matches %v", err, sentinel)
			}
		}
	})
}
