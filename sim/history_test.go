package sim

import (
	"reflect"
	"testing"
)

func TestHistoryWrapsAround(t *testing.T) {
	h := NewHistory[int](3)
	if _, ok := h.Latest(); ok {
		t.Fatalf("empty history returned a value")
	}
	for i := 1; i <= 5; i++ {
		h.Add(i)
	}
	if h.Len() != 3 {
		t.Fatalf("expected 3 values, got %d", h.Len())
	}
	if got := h.Values(); !reflect.DeepEqual(got, []int{3, 4, 5}) {
		t.Fatalf("expected the newest values oldest first, got %v", got)
	}
	if v, ok := h.Latest(); !ok || v != 5 {
		t.Fatalf("expected latest value 5, got %d", v)
	}

	h.Clear()
	if h.Len() != 0 || len(h.Values()) != 0 {
		t.Fatalf("clear left values behind")
	}
}

func TestHistoryMinimumCapacity(t *testing.T) {
	h := NewHistory[float64](0)
	h.Add(1)
	h.Add(2)
	if got := h.Values(); !reflect.DeepEqual(got, []float64{2}) {
		t.Fatalf("expected a single value, got %v", got)
	}
}
