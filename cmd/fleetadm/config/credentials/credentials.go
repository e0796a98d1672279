// Package credentials persists the session token and its owner.
//
// There are two tiers. The durable tier lives under the fleetadm
// config dir and survives reboots. The session tier lives in the OS
// temp dir, named per user, and goes away with it. Both are plain
// YAML saved with owner-only permission.
package credentials

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/fleetadm/fleetadm/cmd/fleetadm/config/open"
	"github.com/fleetadm/fleetadm/pkg/api/types/users"
	"github.com/hectane/go-acl"
	yaml "gopkg.in/yaml.v3"
)

var ErrNotFound = errors.New("credentials are not found")
var ErrCorrupt = errors.New("credentials are corrupt")

// Credentials is one stored login.
type Credentials struct {
	Token string       `yaml:"token"`
	User  users.Detail `yaml:"user"`
}

// DurablePath is the location of the durable tier under home.
func DurablePath(home string) string {
	return filepath.Join(home, ".fleetadm", "credentials")
}

// SessionPath is the location of the session tier, distinct per OS
// user.
func SessionPath() string {
	return filepath.Join(
		os.TempDir(),
		fmt.Sprintf("fleetadm-%s.session", strconv.Itoa(os.Getuid())),
	)
}

// Load reads credentials from path.
//
// A missing file is ErrNotFound. An unreadable or incomplete file is
// ErrCorrupt; the caller decides whether to purge it.
func Load(path string) (Credentials, error) {
	buf, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Credentials{}, fmt.Errorf("%w at %s", ErrNotFound, path)
		}
		return Credentials{}, err
	}

	creds := Credentials{}
	if err := yaml.Unmarshal(buf, &creds); err != nil {
		return Credentials{}, fmt.Errorf("%w at %s: %s", ErrCorrupt, path, err)
	}
	if creds.Token == "" {
		return Credentials{}, fmt.Errorf("%w at %s: token is empty", ErrCorrupt, path)
	}
	return creds, nil
}

// Save writes credentials to path with owner-only permission.
func Save(path string, creds Credentials) error {
	if err := os.MkdirAll(filepath.Dir(path), os.FileMode(0700)); err != nil {
		return err
	}

	f, err := open.NewSafeFile(path)
	if err != nil {
		return err
	}
	defer f.Close()

	// In case of a pre-existing file with loose permissions.
	if err := acl.Chmod(path, os.FileMode(0600)); err != nil {
		return err
	}

	buf, err := yaml.Marshal(creds)
	if err != nil {
		return err
	}
	_, err = f.Write(buf)
	return err
}

// Purge removes the stored credentials at path. Removing what is not
// there is not an error.
func Purge(path string) error {
	err := os.Remove(path)
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}
