package preferences_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/fleetadm/fleetadm/cmd/fleetadm/config/preferences"
)

func TestLoad(t *testing.T) {
	t.Run("a preferences file is read with entity defaults", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "preferences")
		content := `
itemsPerPage: 25
entities:
    client:
        sortBy: nombre
        sortOrder: desc
        status: Activo
notifications:
    success: false
    info: true
`
		if err := os.WriteFile(path, []byte(content), 0600); err != nil {
			t.Fatal(err)
		}

		prefs, err := preferences.Load(path)
		if err != nil {
			t.Fatalf("failed to load: %v", err)
		}

		if prefs.ItemsPerPage != 25 {
			t.Errorf("itemsPerPage unmatch: %d", prefs.ItemsPerPage)
		}
		client := prefs.For("client")
		if client.SortBy != "nombre" || client.SortOrder != "desc" || client.Status != "Activo" {
			t.Errorf("client prefs unmatch: %+v", client)
		}
		if prefs.Notifications.Success || !prefs.Notifications.Info {
			t.Errorf("notifications unmatch: %+v", prefs.Notifications)
		}
	})

	t.Run("a missing file yields the defaults", func(t *testing.T) {
		prefs, err := preferences.Load(filepath.Join(t.TempDir(), "no-such-file"))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if prefs.ItemsPerPage != 10 {
			t.Errorf("itemsPerPage unmatch: %d", prefs.ItemsPerPage)
		}
		if !prefs.Notifications.Success || prefs.Notifications.Info {
			t.Errorf("notifications unmatch: %+v", prefs.Notifications)
		}
		if got := prefs.For("truck"); got != (preferences.EntityPrefs{}) {
			t.Errorf("unexpected entity prefs: %+v", got)
		}
	})

	t.Run("a broken file is an error", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "preferences")
		if err := os.WriteFile(path, []byte("items: ["), 0600); err != nil {
			t.Fatal(err)
		}
		if _, err := preferences.Load(path); err == nil {
			t.Error("error expected, but got nil")
		}
	})

	t.Run("a non-positive page size falls back to the default", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "preferences")
		if err := os.WriteFile(path, []byte("itemsPerPage: 0\n"), 0600); err != nil {
			t.Fatal(err)
		}

		prefs, err := preferences.Load(path)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if prefs.ItemsPerPage != 10 {
			t.Errorf("itemsPerPage unmatch: %d", prefs.ItemsPerPage)
		}
	})
}
