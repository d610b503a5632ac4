package gauntlet

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/scout/game"
	"github.com/oomph-ac/scout/world"
)

// sweep is one in-flight cone sweep. The cone is fixed at the origin and direction the
// scan was started with.
type sweep struct {
	origin  mgl32.Vec3
	forward mgl32.Vec3

	elapsed  float64
	duration float64

	// seen holds every handle the sweep already made contact with.
	seen map[world.Handle]struct{}
}

func (s *Scanner) startSweep(origin, forward mgl32.Vec3) {
	s.sweeps = append(s.sweeps, &sweep{
		origin:   origin,
		forward:  forward,
		duration: s.params.SweepDuration,
		seen:     make(map[world.Handle]struct{}),
	})
	s.handler.HandleSweepStart(origin, forward)
}

// ActiveSweeps returns the amount of sweeps still in flight.
func (s *Scanner) ActiveSweeps() int {
	return len(s.sweeps)
}

func (s *Scanner) tickSweeps(dt float64) {
	if len(s.sweeps) == 0 {
		return
	}
	active := s.sweeps[:0]
	for _, sw := range s.sweeps {
		sw.elapsed += dt
		progress := float32(1)
		if sw.duration > 0 {
			progress = float32(min(sw.elapsed/sw.duration, 1))
		}
		s.sweepStep(sw, progress)
		if progress < 1 {
			active = append(active, sw)
		}
	}
	clear(s.sweeps[len(active):])
	s.sweeps = active
}

// sweepVolume returns the query sphere of a sweep at the progress passed.
func (s *Scanner) sweepVolume(sw *sweep, progress float32) (centre mgl32.Vec3, radius float32) {
	p := s.params
	dist := p.SweepMinRadius + (p.ScanRange-p.SweepMinRadius)*progress
	halfAngle := mgl32.DegToRad(p.ConeAngle / 2)
	return sw.origin.Add(sw.forward.Mul(dist)), max(p.SweepMinRadius, dist*math32.Tan(halfAngle))
}

func (s *Scanner) sweepStep(sw *sweep, progress float32) {
	if s.querier == nil || s.targets == nil {
		return
	}
	centre, radius := s.sweepVolume(sw, progress)
	for _, hit := range s.querier.OverlapSphere(centre, radius, s.params.DetectLayers) {
		if hit.Handle == s.self {
			continue
		}
		if _, ok := sw.seen[hit.Handle]; ok {
			continue
		}
		sw.seen[hit.Handle] = struct{}{}
		if s.Highlighted(hit.Handle) || !s.inCone(sw, hit.Position) {
			continue
		}
		target, ok := s.targets.Scannable(hit.Handle)
		if !ok {
			continue
		}
		target.OnScanned()
		s.startHighlight(hit.Handle, target)
	}
}

// inCone returns true if pos lies within range of the sweep origin and within half the
// cone angle of its direction.
func (s *Scanner) inCone(sw *sweep, pos mgl32.Vec3) bool {
	toTarget := pos.Sub(sw.origin)
	if toTarget.Len() > s.params.ScanRange {
		return false
	}
	return game.AngleBetween(sw.forward, toTarget) <= s.params.ConeAngle/2
}
