package input

import (
	"sync"
	"testing"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

func TestDrainClearsEdges(t *testing.T) {
	b := NewBuffer()
	b.SetMove(mgl32.Vec2{0, 1})
	b.SetSprint(true)
	b.PressJump()
	b.PressScan()
	b.ToggleCrouch()
	b.SelectSlot(2)

	s := b.Drain()
	if !s.Jump || !s.Scan || !s.CrouchToggle || s.Slot != 2 {
		t.Fatalf("expected button presses in the first snapshot: %+v", s)
	}
	if s.Interact || s.Throw || s.Use {
		t.Fatalf("unexpected button presses: %+v", s)
	}

	s = b.Drain()
	if s.Jump || s.Scan || s.CrouchToggle || s.Slot != NoSlot {
		t.Fatalf("button presses must only be reported once: %+v", s)
	}
	if s.Move != (mgl32.Vec2{0, 1}) || !s.Sprint {
		t.Fatalf("axes should carry over: %+v", s)
	}
}

func TestMoveClampedAndSanitised(t *testing.T) {
	b := NewBuffer()
	b.SetMove(mgl32.Vec2{3, 4})
	if l := b.Drain().Move.Len(); l < 0.999 || l > 1.001 {
		t.Fatalf("expected move to be clamped to 1, got %f", l)
	}
	b.SetMove(mgl32.Vec2{math32.NaN(), 1})
	if m := b.Drain().Move; m != (mgl32.Vec2{}) {
		t.Fatalf("expected invalid move to be dropped, got %v", m)
	}
}

func TestLookAccumulates(t *testing.T) {
	b := NewBuffer()
	b.AddLook(mgl32.Vec2{1, 2})
	b.AddLook(mgl32.Vec2{3, -1})
	b.AddLook(mgl32.Vec2{math32.Inf(1), 0})
	if l := b.Drain().Look; l != (mgl32.Vec2{4, 1}) {
		t.Fatalf("expected accumulated look delta, got %v", l)
	}
	if l := b.Drain().Look; l != (mgl32.Vec2{}) {
		t.Fatalf("look delta should reset after a drain, got %v", l)
	}
}

func TestNegativeSlotIgnored(t *testing.T) {
	b := NewBuffer()
	b.SelectSlot(1)
	b.SelectSlot(-3)
	if s := b.Drain(); s.Slot != 1 {
		t.Fatalf("expected slot 1, got %d", s.Slot)
	}
}

func TestConcurrentWriters(t *testing.T) {
	b := NewBuffer()
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				b.AddLook(mgl32.Vec2{1, 0})
				b.PressJump()
			}
		}()
	}
	wg.Wait()
	if s := b.Drain(); s.Look.X() != 800 || !s.Jump {
		t.Fatalf("lost input from concurrent writers: %+v", s)
	}
}

func TestMovement(t *testing.T) {
	s := Snapshot{Move: mgl32.Vec2{1, 0}, Look: mgl32.Vec2{0, 2}, Jump: true, Sprint: true, CrouchToggle: true}
	in := s.Movement()
	if in.Move != s.Move || in.Look != s.Look || !in.Jump || !in.Sprint || !in.CrouchToggle {
		t.Fatalf("movement input does not match snapshot: %+v", in)
	}
}
