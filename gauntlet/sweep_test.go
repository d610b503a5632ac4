package gauntlet

import (
	"testing"

	"github.com/ethaniccc/float32-cube/cube"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/scout/entity"
	"github.com/oomph-ac/scout/world"
)

type mockTarget struct{ scans int }

func (m *mockTarget) OnScanned() { m.scans++ }
func (m *mockTarget) ScanInfo() string { return "target" }
func (m *mockTarget) ScanType() entity.ScanType { return entity.ScanTypeUnknown }

const tick = 1.0 / 60.0

var eye = mgl32.Vec3{0, 1, 0}

type scene struct {
	world    *world.World
	registry *entity.Registry
}

func newScene() *scene {
	return &scene{world: world.New(nil), registry: entity.NewRegistry()}
}

// place adds a scannable half metre cube centred at pos.
func (sc *scene) place(h world.Handle, pos mgl32.Vec3) *mockTarget {
	target := &mockTarget{}
	sc.world.Add(world.Body{Handle: h, Layer: world.LayerItem, Box: cube.Box(-0.25, -0.25, -0.25, 0.25, 0.25, 0.25).Translate(pos)})
	sc.registry.Register(h, target)
	return target
}

func (sc *scene) scanner(p Params, self world.Handle) (*Scanner, *recorder) {
	s := New(p, sc.world, sc.registry, self)
	r := &recorder{}
	s.Handle(r)
	return s, r
}

func advance(s *Scanner, seconds float64) {
	for i := 0; i < int(seconds/tick+0.5); i++ {
		s.Tick(tick)
	}
}

func TestSweepNotifiesOncePerSweep(t *testing.T) {
	sc := newScene()
	target := sc.place(1, mgl32.Vec3{0, 1, 5})
	s, r := sc.scanner(DefaultParams(), world.NoHandle)

	if !s.Scan(eye, forward) {
		t.Fatalf("expected scan to be accepted")
	}
	advance(s, 1.1)
	if target.scans != 1 {
		t.Fatalf("expected target to be notified once, got %d", target.scans)
	}
	if !s.Highlighted(1) || len(r.started) != 1 {
		t.Fatalf("expected target to be highlighted once")
	}
	if s.ActiveSweeps() != 0 {
		t.Fatalf("sweep should have finished, %d still active", s.ActiveSweeps())
	}
}

func TestSweepRejectsOutsideConeAndRange(t *testing.T) {
	sc := newScene()
	wide := sc.place(1, mgl32.Vec3{4, 1, 3})
	far := sc.place(2, mgl32.Vec3{0, 1, 25})
	behind := sc.place(3, mgl32.Vec3{0, 1, -4})
	s, _ := sc.scanner(DefaultParams(), world.NoHandle)

	s.Scan(eye, forward)
	advance(s, 1.1)
	if wide.scans != 0 || far.scans != 0 || behind.scans != 0 {
		t.Fatalf("targets outside the cone were notified: wide=%d far=%d behind=%d", wide.scans, far.scans, behind.scans)
	}
}

func TestSweepSkipsSelfAndNonScannables(t *testing.T) {
	sc := newScene()
	self := sc.place(7, mgl32.Vec3{0, 1, 1})
	sc.world.Add(world.Body{Handle: 8, Layer: world.LayerEnvironment, Box: cube.Box(-1, 0, 3, 1, 2, 4)})
	s, r := sc.scanner(DefaultParams(), 7)

	s.Scan(eye, forward)
	advance(s, 1.1)
	if self.scans != 0 {
		t.Fatalf("the scanning actor must not scan itself")
	}
	if len(r.started) != 0 {
		t.Fatalf("expected no highlights, got %v", r.started)
	}
}

func TestSweepRespectsDetectLayers(t *testing.T) {
	sc := newScene()
	target := &mockTarget{}
	sc.world.Add(world.Body{Handle: 4, Layer: world.LayerPlayer, Box: cube.Box(-0.3, 0, 4, 0.3, 2, 4.6)})
	sc.registry.Register(4, target)
	s, _ := sc.scanner(DefaultParams(), world.NoHandle)

	s.Scan(eye, forward)
	advance(s, 1.1)
	if target.scans != 0 {
		t.Fatalf("target on an undetected layer was scanned")
	}
}

func TestHighlightExpiry(t *testing.T) {
	sc := newScene()
	target := sc.place(1, mgl32.Vec3{0, 1, 3})
	s, r := sc.scanner(DefaultParams(), world.NoHandle)

	s.Scan(eye, forward)
	advance(s, 2)
	if !s.Highlighted(1) {
		t.Fatalf("expected target to be highlighted")
	}
	if progress, ok := s.HighlightProgress(1); !ok || progress <= 0 || progress >= 1 {
		t.Fatalf("unexpected highlight progress %f", progress)
	}

	// A sweep while the target is still highlighted must not notify it again.
	s.Scan(eye, forward)
	advance(s, 1.1)
	if target.scans != 1 {
		t.Fatalf("highlighted target was notified again: %d", target.scans)
	}

	advance(s, 3)
	if s.Highlighted(1) || len(r.ended) != 1 {
		t.Fatalf("expected highlight to expire after its duration")
	}

	s.Scan(eye, forward)
	advance(s, 1.1)
	if target.scans != 2 {
		t.Fatalf("expected a new sweep to notify the target again, got %d", target.scans)
	}
}

func TestConcurrentSweeps(t *testing.T) {
	p := DefaultParams()
	p.ScanCooldown = 0.1
	sc := newScene()
	s, r := sc.scanner(p, world.NoHandle)

	s.Scan(eye, forward)
	advance(s, 0.2)
	s.Scan(eye, mgl32.Vec3{1, 0, 0})
	if s.ActiveSweeps() != 2 || r.sweeps != 2 {
		t.Fatalf("expected two sweeps in flight, got %d", s.ActiveSweeps())
	}
	advance(s, 1.1)
	if s.ActiveSweeps() != 0 {
		t.Fatalf("expected all sweeps to finish, got %d", s.ActiveSweeps())
	}
}

func TestCloseStopsNotifications(t *testing.T) {
	sc := newScene()
	target := sc.place(1, mgl32.Vec3{0, 1, 15})
	near := sc.place(2, mgl32.Vec3{0, 1, 2})
	s, r := sc.scanner(DefaultParams(), world.NoHandle)

	s.Scan(eye, forward)
	advance(s, 0.3)
	if near.scans != 1 {
		t.Fatalf("expected the near target to be found before closing")
	}
	s.Close()
	s.Close()
	advance(s, 6)

	if target.scans != 0 || len(r.ended) != 0 {
		t.Fatalf("closed scanner kept notifying: scans=%d ended=%v", target.scans, r.ended)
	}
	if s.Scan(eye, forward) || s.CanScan() {
		t.Fatalf("closed scanner accepted a scan")
	}
	if s.ActiveSweeps() != 0 || s.Highlighted(2) {
		t.Fatalf("close should drop sweeps and highlights")
	}
}
