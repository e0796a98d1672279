package notify_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/fleetadm/fleetadm/pkg/notify"
)

func TestConsole(t *testing.T) {
	noColor := color.NoColor
	color.NoColor = true
	defer func() { color.NoColor = noColor }()

	t.Run("each level writes one tagged line", func(t *testing.T) {
		out := new(bytes.Buffer)
		sink := notify.Console(out)

		sink.Success("cliente %q creado", "Almacen Sur")
		sink.Error("no se pudo guardar")
		sink.Info("GET /api/clientes")
		sink.Warning("sesion expirada")

		expected := []string{
			`[ok] cliente "Almacen Sur" creado`,
			"[error] no se pudo guardar",
			"[info] GET /api/clientes",
			"[warn] sesion expirada",
		}
		actual := strings.Split(strings.TrimRight(out.String(), "\n"), "\n")
		if len(actual) != len(expected) {
			t.Fatalf("unexpected output:\n%s", out.String())
		}
		for i := range expected {
			if actual[i] != expected[i] {
				t.Errorf("line %d: actual %q, expected %q", i, actual[i], expected[i])
			}
		}
	})
}

func TestMuted(t *testing.T) {
	noColor := color.NoColor
	color.NoColor = true
	defer func() { color.NoColor = noColor }()

	t.Run("muted levels are dropped, the rest pass through", func(t *testing.T) {
		out := new(bytes.Buffer)
		sink := notify.Muted(notify.Console(out), false, true, false, true)

		sink.Success("dropped")
		sink.Info("dropped")
		sink.Error("kept error")
		sink.Warning("kept warning")

		actual := out.String()
		if strings.Contains(actual, "dropped") {
			t.Errorf("muted message leaked:\n%s", actual)
		}
		if !strings.Contains(actual, "[error] kept error") {
			t.Errorf("error message missing:\n%s", actual)
		}
		if !strings.Contains(actual, "[warn] kept warning") {
			t.Errorf("warning message missing:\n%s", actual)
		}
	})
}

func TestDiscard(t *testing.T) {
	// just should not panic.
	sink := notify.Discard()
	sink.Success("s")
	sink.Error("e")
	sink.Info("i")
	sink.Warning("w")
}
