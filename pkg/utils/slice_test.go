package utils_test

import (
	"strconv"
	"testing"

	"github.com/fleetadm/fleetadm/pkg/utils"
	"github.com/fleetadm/fleetadm/pkg/utils/cmp"
)

func TestMap(t *testing.T) {
	t.Run("it maps each element", func(t *testing.T) {
		actual := utils.Map([]int{1, 2, 3}, strconv.Itoa)
		if !cmp.SliceEq(actual, []string{"1", "2", "3"}) {
			t.Errorf("unexpected result: %v", actual)
		}
	})
	t.Run("it maps empty slice to empty slice", func(t *testing.T) {
		actual := utils.Map([]int{}, strconv.Itoa)
		if len(actual) != 0 {
			t.Errorf("unexpected result: %v", actual)
		}
	})
}

func TestFilter(t *testing.T) {
	t.Run("it passes only matching elements", func(t *testing.T) {
		actual := utils.Filter(
			[]int{1, 2, 3, 4, 5, 6},
			func(v int) bool { return v%2 == 0 },
		)
		if !cmp.SliceEq(actual, []int{2, 4, 6}) {
			t.Errorf("unexpected result: %v", actual)
		}
	})
	t.Run("it returns empty slice when nothing matches", func(t *testing.T) {
		actual := utils.Filter(
			[]int{1, 3, 5},
			func(v int) bool { return v%2 == 0 },
		)
		if len(actual) != 0 {
			t.Errorf("unexpected result: %v", actual)
		}
	})
}

func TestFirst(t *testing.T) {
	t.Run("it finds the first matching element", func(t *testing.T) {
		actual, ok := utils.First(
			[]string{"alpha", "beta", "gamma"},
			func(v string) bool { return len(v) == 5 },
		)
		if !ok || actual != "alpha" {
			t.Errorf("unexpected result: %s (found=%v)", actual, ok)
		}
	})
	t.Run("it reports missing element", func(t *testing.T) {
		_, ok := utils.First(
			[]string{"alpha", "beta"},
			func(v string) bool { return v == "delta" },
		)
		if ok {
			t.Error("found unexpected element")
		}
	})
}

func TestIndexOf(t *testing.T) {
	if idx := utils.IndexOf([]int{9, 8, 7}, func(v int) bool { return v == 8 }); idx != 1 {
		t.Errorf("unexpected index: %d", idx)
	}
	if idx := utils.IndexOf([]int{9, 8, 7}, func(v int) bool { return v == 42 }); idx != -1 {
		t.Errorf("unexpected index: %d", idx)
	}
}

func TestToMap(t *testing.T) {
	type record struct {
		id   int
		name string
	}

	actual := utils.ToMap(
		[]record{{1, "a"}, {2, "b"}, {2, "c"}},
		func(r record) int { return r.id },
	)

	if len(actual) != 2 {
		t.Fatalf("unexpected size: %d", len(actual))
	}
	if actual[1].name != "a" {
		t.Errorf("unexpected value for key 1: %+v", actual[1])
	}
	if actual[2].name != "c" {
		t.Errorf("latter value should take over: %+v", actual[2])
	}
}
