// Package gauntlet implements the scanning gadget: a heat-limited scan action that
// sweeps an expanding cone through the world and highlights what it discovers.
package gauntlet

import (
	"math"

	"github.com/elliotchance/orderedmap/v2"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/scout/entity"
	"github.com/oomph-ac/scout/game"
	"github.com/oomph-ac/scout/world"
)

// Targets resolves the scannable capability behind a world handle. *entity.Registry
// implements it.
type Targets interface {
	Scannable(h world.Handle) (entity.Scannable, bool)
}

// Scanner is the scan and heat state machine of one gauntlet. A Scanner is driven by
// Scan and Tick and is not safe for concurrent use.
type Scanner struct {
	params  Params
	querier world.Querier
	targets Targets
	handler Handler
	// self is the handle of the scanning actor, which is never a candidate.
	self world.Handle

	now float64

	heat         float32
	overheated   bool
	overheatEnd  float64
	lastScanTime float64

	sweeps     []*sweep
	highlights *orderedmap.OrderedMap[world.Handle, *highlight]

	closed bool
}

// New returns an idle Scanner with no heat. q and t may be nil, in which case sweeps
// discover nothing.
func New(params Params, q world.Querier, t Targets, self world.Handle) *Scanner {
	return &Scanner{
		params:       params,
		querier:      q,
		targets:      t,
		handler:      NopHandler{},
		self:         self,
		lastScanTime: math.Inf(-1),
		highlights:   orderedmap.NewOrderedMap[world.Handle, *highlight](),
	}
}

// Handle sets the handler receiving the scanner's events. A nil handler resets it to
// a NopHandler.
func (s *Scanner) Handle(h Handler) {
	if h == nil {
		h = NopHandler{}
	}
	s.handler = h
}

// Scan attempts a scan from origin along forward. It returns false, without changing
// any state, while the scan cooldown runs, while the gauntlet is overheated or when
// forward has no direction.
func (s *Scanner) Scan(origin, forward mgl32.Vec3) bool {
	if s.closed {
		return false
	}
	s.expireOverheat()
	if !s.CanScan() {
		return false
	}
	dir, ok := game.Normalize(forward)
	if !ok {
		return false
	}

	s.lastScanTime = s.now
	s.addHeat(s.params.HeatPerScan)
	s.startSweep(origin, dir)
	return true
}

// Tick advances the scanner clock by dt seconds, decaying heat and progressing sweeps
// and highlights. Non-positive or non-finite deltas only re-evaluate timers.
func (s *Scanner) Tick(dt float64) {
	if s.closed {
		return
	}
	if !(dt > 0) || math.IsInf(dt, 0) {
		dt = 0
	}
	s.now += dt

	s.expireOverheat()
	s.decay(dt)
	s.tickHighlights(dt)
	s.tickSweeps(dt)
}

// Close abandons every sweep and highlight without notifying anyone. Scan and Tick
// do nothing after Close.
func (s *Scanner) Close() {
	if s.closed {
		return
	}
	s.closed = true
	s.sweeps = nil
	s.highlights = orderedmap.NewOrderedMap[world.Handle, *highlight]()
}

// Closed ...
func (s *Scanner) Closed() bool {
	return s.closed
}

// CanScan returns true if a scan would currently be accepted.
func (s *Scanner) CanScan() bool {
	return !s.closed && !s.overheated && s.now >= s.lastScanTime+s.params.ScanCooldown
}

// ScanCooldownRemaining returns the seconds left until the cooldown allows a scan.
func (s *Scanner) ScanCooldownRemaining() float64 {
	return max(0, s.lastScanTime+s.params.ScanCooldown-s.now)
}

// Now returns the scanner clock.
func (s *Scanner) Now() float64 {
	return s.now
}
