// Package input collects device input between simulation steps.
package input

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/scout/game"
	"github.com/oomph-ac/scout/locomotion"
	"github.com/sasha-s/go-deadlock"
)

// NoSlot is the Slot of a snapshot in which no slot was selected.
const NoSlot = -1

// Snapshot is the input of one simulation step.
type Snapshot struct {
	// Move is the movement axis, clamped to a magnitude of 1.
	Move mgl32.Vec2
	// Look is the look delta accumulated since the previous snapshot.
	Look   mgl32.Vec2
	Sprint bool

	Jump         bool
	CrouchToggle bool
	Interact     bool
	Scan         bool
	Throw        bool
	Use          bool
	// Slot is the inventory slot selected since the previous snapshot, or NoSlot.
	Slot int
}

// Movement returns the part of the snapshot that drives locomotion.
func (s Snapshot) Movement() locomotion.Input {
	return locomotion.Input{
		Move:         s.Move,
		Look:         s.Look,
		Jump:         s.Jump,
		Sprint:       s.Sprint,
		CrouchToggle: s.CrouchToggle,
	}
}

// Buffer is safe for use by an input goroutine while the simulation drains it. Axes keep
// their last value, look deltas add up and button presses are kept until the next Drain.
type Buffer struct {
	mu deadlock.Mutex
	s  Snapshot
}

// NewBuffer ...
func NewBuffer() *Buffer {
	return &Buffer{s: Snapshot{Slot: NoSlot}}
}

// SetMove sets the movement axis.
func (b *Buffer) SetMove(v mgl32.Vec2) {
	if !finite(v) {
		v = mgl32.Vec2{}
	}
	b.mu.Lock()
	b.s.Move = game.ClampMagnitude2(v, 1)
	b.mu.Unlock()
}

// AddLook adds a look delta.
func (b *Buffer) AddLook(v mgl32.Vec2) {
	if !finite(v) {
		return
	}
	b.mu.Lock()
	b.s.Look = b.s.Look.Add(v)
	b.mu.Unlock()
}

// SetSprint ...
func (b *Buffer) SetSprint(held bool) {
	b.mu.Lock()
	b.s.Sprint = held
	b.mu.Unlock()
}

// PressJump ...
func (b *Buffer) PressJump() {
	b.press(func(s *Snapshot) { s.Jump = true })
}

// ToggleCrouch ...
func (b *Buffer) ToggleCrouch() {
	b.press(func(s *Snapshot) { s.CrouchToggle = true })
}

// PressInteract ...
func (b *Buffer) PressInteract() {
	b.press(func(s *Snapshot) { s.Interact = true })
}

// PressScan ...
func (b *Buffer) PressScan() {
	b.press(func(s *Snapshot) { s.Scan = true })
}

// PressThrow ...
func (b *Buffer) PressThrow() {
	b.press(func(s *Snapshot) { s.Throw = true })
}

// PressUse ...
func (b *Buffer) PressUse() {
	b.press(func(s *Snapshot) { s.Use = true })
}

// SelectSlot records a slot selection. Negative slots are ignored; slots beyond the
// inventory are rejected by the inventory itself.
func (b *Buffer) SelectSlot(i int) {
	if i < 0 {
		return
	}
	b.press(func(s *Snapshot) { s.Slot = i })
}

// Drain returns the input collected since the last call and clears button presses and
// look deltas. Move and sprint carry over to the next snapshot.
func (b *Buffer) Drain() Snapshot {
	b.mu.Lock()
	defer b.mu.Unlock()

	s := b.s
	b.s = Snapshot{Move: s.Move, Sprint: s.Sprint, Slot: NoSlot}
	return s
}

func (b *Buffer) press(f func(s *Snapshot)) {
	b.mu.Lock()
	f(&b.s)
	b.mu.Unlock()
}

func finite(v mgl32.Vec2) bool {
	for _, f := range v {
		if math32.IsNaN(f) || math32.IsInf(f, 0) {
			return false
		}
	}
	return true
}
