package gauntlet

import (
	"github.com/oomph-ac/scout/entity"
	"github.com/oomph-ac/scout/world"
)

type highlight struct {
	elapsed  float64
	duration float64
}

func (h *highlight) progress() float64 {
	if h.duration <= 0 {
		return 1
	}
	return min(h.elapsed/h.duration, 1)
}

func (s *Scanner) startHighlight(h world.Handle, target entity.Scannable) {
	s.highlights.Set(h, &highlight{duration: s.params.HighlightDuration})
	s.handler.HandleHighlightStart(h, target)
}

// Highlighted returns true while the target with the handle passed is highlighted.
func (s *Scanner) Highlighted(h world.Handle) bool {
	_, ok := s.highlights.Get(h)
	return ok
}

// HighlightProgress returns how far the highlight of a target has run, from 0 to 1.
func (s *Scanner) HighlightProgress(h world.Handle) (float64, bool) {
	hl, ok := s.highlights.Get(h)
	if !ok {
		return 0, false
	}
	return hl.progress(), true
}

// Highlights returns the handles of every highlighted target, oldest first.
func (s *Scanner) Highlights() []world.Handle {
	return s.highlights.Keys()
}

func (s *Scanner) tickHighlights(dt float64) {
	if s.highlights.Len() == 0 {
		return
	}
	var expired []world.Handle
	for _, h := range s.highlights.Keys() {
		hl, _ := s.highlights.Get(h)
		hl.elapsed += dt
		if hl.elapsed >= hl.duration {
			expired = append(expired, h)
		}
	}
	for _, h := range expired {
		s.highlights.Delete(h)
		s.handler.HandleHighlightEnd(h)
	}
}
