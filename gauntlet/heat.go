package gauntlet

import "github.com/oomph-ac/scout/game"

// Heat returns the current heat.
func (s *Scanner) Heat() float32 {
	return s.heat
}

// HeatPercentage returns the heat as a fraction of MaxHeat.
func (s *Scanner) HeatPercentage() float32 {
	if s.params.MaxHeat <= 0 {
		return 0
	}
	return s.heat / s.params.MaxHeat
}

// Overheated returns true while scans are locked out by an overheat.
func (s *Scanner) Overheated() bool {
	return s.overheated
}

// OverheatTimeRemaining returns the seconds left until an overheat ends.
func (s *Scanner) OverheatTimeRemaining() float64 {
	if !s.overheated {
		return 0
	}
	return max(0, s.overheatEnd-s.now)
}

func (s *Scanner) addHeat(amount float32) {
	s.heat = game.ClampFloat(s.heat+amount, 0, s.params.MaxHeat)
	if s.heat >= s.params.MaxHeat && !s.overheated {
		s.overheated = true
		s.overheatEnd = s.now + s.params.OverheatDuration
		s.handler.HandleOverheat()
	}
}

// decay cools the gauntlet down linearly. An overheated gauntlet holds its heat
// until the overheat ends.
func (s *Scanner) decay(dt float64) {
	if s.overheated || dt == 0 {
		return
	}
	s.heat = game.ClampFloat(s.heat-s.params.HeatDecayRate*float32(dt), 0, s.params.MaxHeat)
}

func (s *Scanner) expireOverheat() {
	if !s.overheated || s.now < s.overheatEnd {
		return
	}
	s.overheated = false
	s.heat = game.ClampFloat(s.params.HeatAfterOverheat, 0, s.params.MaxHeat)
	s.handler.HandleCooledDown()
}
