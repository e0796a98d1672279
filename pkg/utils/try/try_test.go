package try_test

import (
	"errors"
	"testing"

	"github.com/fleetadm/fleetadm/pkg/utils/try"
)

type fataler struct {
	fatal [][]any
}

func (f *fataler) Fatal(args ...any) {
	f.fatal = append(f.fatal, args)
}

func TestTry(t *testing.T) {
	t.Run("when it does not have error,", func(t *testing.T) {
		testee := try.To(42, nil)

		t.Run("Get returns the value", func(t *testing.T) {
			actual, err := testee.Get()
			if err != nil {
				t.Fatal(err)
			}
			if actual != 42 {
				t.Errorf("unexpected value: %d", actual)
			}
		})
		t.Run("OrFatal returns the value without Fatal", func(t *testing.T) {
			f := &fataler{}
			if actual := testee.OrFatal(f); actual != 42 {
				t.Errorf("unexpected value: %d", actual)
			}
			if len(f.fatal) != 0 {
				t.Error("Fatal is called, unexpectedly")
			}
		})
		t.Run("OrDefault returns the value", func(t *testing.T) {
			if actual := testee.OrDefault(-1); actual != 42 {
				t.Errorf("unexpected value: %d", actual)
			}
		})
	})

	t.Run("when it has error,", func(t *testing.T) {
		expectedErr := errors.New("fake error")
		testee := try.To(0, expectedErr)

		t.Run("Get returns the error", func(t *testing.T) {
			_, err := testee.Get()
			if !errors.Is(err, expectedErr) {
				t.Errorf("unexpected error: %v", err)
			}
		})
		t.Run("OrFatal calls Fatal", func(t *testing.T) {
			f := &fataler{}
			testee.OrFatal(f)
			if len(f.fatal) != 1 {
				t.Errorf("Fatal is called %d times", len(f.fatal))
			}
		})
		t.Run("OrDefault returns the default value", func(t *testing.T) {
			if actual := testee.OrDefault(-1); actual != -1 {
				t.Errorf("unexpected value: %d", actual)
			}
		})
	})
}
