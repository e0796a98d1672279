// Package preferences holds the user's defaults for listing and
// notifications, read from a YAML file under the fleetadm config dir.
package preferences

import (
	"os"
	"path/filepath"

	yaml "gopkg.in/yaml.v3"
)

// EntityPrefs are per-resource listing defaults, applied when the
// corresponding flags are absent.
type EntityPrefs struct {
	SortBy    string `yaml:"sortBy,omitempty"`
	SortOrder string `yaml:"sortOrder,omitempty"`
	Status    string `yaml:"status,omitempty"`
}

type Notifications struct {
	Success bool `yaml:"success"`
	Info    bool `yaml:"info"`
}

type Preferences struct {
	ItemsPerPage  int                    `yaml:"itemsPerPage"`
	Entities      map[string]EntityPrefs `yaml:"entities,omitempty"`
	Notifications Notifications          `yaml:"notifications"`
}

// Default returns the preferences used when no file exists.
func Default() *Preferences {
	return &Preferences{
		ItemsPerPage: 10,
		Notifications: Notifications{
			Success: true,
			Info:    false,
		},
	}
}

// Path is the location of the preferences file under home.
func Path(home string) string {
	return filepath.Join(home, ".fleetadm", "preferences")
}

// For returns the listing defaults of one entity, zero when none are
// set.
func (p *Preferences) For(entity string) EntityPrefs {
	if p.Entities == nil {
		return EntityPrefs{}
	}
	return p.Entities[entity]
}

// Load reads preferences from filepath. A missing file yields
// Default.
func Load(filepath string) (*Preferences, error) {
	prefs := Default()

	content, err := os.ReadFile(filepath)
	if err != nil {
		return prefs, nil
	}

	if err := yaml.Unmarshal(content, prefs); err != nil {
		return nil, err
	}
	if prefs.ItemsPerPage <= 0 {
		prefs.ItemsPerPage = Default().ItemsPerPage
	}
	return prefs, nil
}
