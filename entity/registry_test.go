package entity

import (
	"testing"

	"github.com/google/uuid"
)

type mockScannable struct{ scans int }

func (m *mockScannable) OnScanned() { m.scans++ }
func (m *mockScannable) ScanInfo() string { return "a rock" }
func (m *mockScannable) ScanType() ScanType { return ScanTypeEnvironment }

type mockItem struct {
	mockScannable
	held bool
}

func (m *mockItem) Name() string { return "thing" }
func (m *mockItem) CanBePickedUp() bool { return !m.held }
func (m *mockItem) PickUp(uuid.UUID) { m.held = true }
func (m *mockItem) Release() { m.held = false }

func TestRegistryResolvesCapabilities(t *testing.T) {
	r := NewRegistry()
	r.Register(1, &mockScannable{})
	r.Register(2, &mockItem{})
	r.Register(3, "not an entity")

	if _, ok := r.Scannable(1); !ok {
		t.Fatalf("expected handle 1 to be scannable")
	}
	if _, ok := r.Pickupable(1); ok {
		t.Fatalf("handle 1 should not be pickupable")
	}
	if _, ok := r.Scannable(2); !ok {
		t.Fatalf("expected handle 2 to be scannable")
	}
	if _, ok := r.Pickupable(2); !ok {
		t.Fatalf("expected handle 2 to be pickupable")
	}
	if _, ok := r.Scannable(3); ok {
		t.Fatalf("handle 3 should have no capabilities")
	}
	if _, ok := r.Object(3); !ok {
		t.Fatalf("expected raw object for handle 3")
	}
	if _, ok := r.Scannable(99); ok {
		t.Fatalf("unknown handle resolved")
	}
}

func TestRegistryUnregister(t *testing.T) {
	r := NewRegistry()
	r.Register(1, &mockItem{})
	r.Register(0, &mockItem{})
	if r.Len() != 1 {
		t.Fatalf("expected the zero handle to be rejected, got %d entries", r.Len())
	}
	r.Unregister(1)
	if _, ok := r.Pickupable(1); ok {
		t.Fatalf("expected handle 1 to be gone")
	}
}

func TestScanTypeString(t *testing.T) {
	if ScanTypeHazard.String() != "hazard" || ScanType(200).String() != "unknown" {
		t.Fatalf("unexpected scan type names")
	}
}
