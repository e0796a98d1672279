package profiles_test

import (
	_ "embed"
	"encoding/base64"
	"errors"
	"os"
	"path/filepath"
	"testing"

	prof "github.com/fleetadm/fleetadm/cmd/fleetadm/config/profiles"
)

//go:embed testdata/ca.crt
var cacertfile []byte

func TestConfig(t *testing.T) {
	t.Run("unmarshalling works well", func(t *testing.T) {
		conf, err := prof.Unmarshall([]byte(`
profname:
    apiRoot: "https://fleet.example.com"
    cert:
        ca: BASE64_ENCODED_CERT
`))
		if err != nil {
			t.Fatalf("failed to unmarshal.: %+v", err)
		}
		p, ok := conf["profname"]
		if !ok {
			t.Fatal("config has not profile")
		}

		if p.ApiRoot != "https://fleet.example.com" {
			t.Errorf("apiRoot unmatch: %s", p.ApiRoot)
		}
		if p.Cert.CA != "BASE64_ENCODED_CERT" {
			t.Errorf("cert.ca unmatch: %s", p.Cert.CA)
		}
	})
}

func TestFleetProfile(t *testing.T) {
	t.Run("verify profile", func(t *testing.T) {
		for name, testcase := range map[string]struct {
			prof      *prof.FleetProfile
			toBeValid error
		}{
			"all value is valid, it is valid": {
				prof: &prof.FleetProfile{
					ApiRoot: "https://fleet.example.com",
					Cert: prof.FleetCert{
						CA: base64.StdEncoding.EncodeToString(cacertfile),
					},
				},
				toBeValid: nil,
			},
			"no CA cert is ok": {
				prof: &prof.FleetProfile{
					ApiRoot: "https://fleet.example.com",
					Cert:    prof.FleetCert{CA: ""},
				},
				toBeValid: nil,
			},
			"when api url is broken, it is not valid": {
				prof: &prof.FleetProfile{
					ApiRoot: "not url",
					Cert:    prof.FleetCert{},
				},
				toBeValid: prof.ErrProfileInvalid,
			},
			"when CA cert is not PEM, it is not valid": {
				prof: &prof.FleetProfile{
					ApiRoot: "https://fleet.example.com",
					Cert: prof.FleetCert{
						CA: base64.StdEncoding.EncodeToString([]byte("broken cert")),
					},
				},
				toBeValid: prof.ErrProfileInvalid,
			},
		} {
			t.Run(name, func(t *testing.T) {
				if !errors.Is(testcase.prof.Verify(), testcase.toBeValid) {
					t.Errorf(
						"profile verification wrong. toBeValid?(=%v) content = %+v",
						testcase.toBeValid, testcase.prof,
					)
				}
			})
		}
	})
}

func TestSaveLoad(t *testing.T) {
	t.Run("a saved store loads back with the same content", func(t *testing.T) {
		dir := t.TempDir()
		path := filepath.Join(dir, "conf", "profile")

		saved := prof.ProfileStore{
			"default": &prof.FleetProfile{ApiRoot: "https://fleet.example.com"},
		}
		if err := saved.Save(path); err != nil {
			t.Fatalf("failed to save: %v", err)
		}

		loaded, err := prof.LoadProfileStore(path)
		if err != nil {
			t.Fatalf("failed to load: %v", err)
		}
		p, ok := loaded["default"]
		if !ok {
			t.Fatal("saved profile is not found")
		}
		if p.ApiRoot != "https://fleet.example.com" {
			t.Errorf("apiRoot unmatch: %s", p.ApiRoot)
		}

		info, err := os.Stat(path)
		if err != nil {
			t.Fatalf("failed to stat: %v", err)
		}
		if mode := info.Mode().Perm(); mode != 0600 {
			t.Errorf("unexpected permission: %o", mode)
		}
	})

	t.Run("loading a missing file is ErrProfileStoreNotFound", func(t *testing.T) {
		_, err := prof.LoadProfileStore(filepath.Join(t.TempDir(), "no-such-file"))
		if !errors.Is(err, prof.ErrProfileStoreNotFound) {
			t.Errorf("unexpected error: %v", err)
		}
	})
}
