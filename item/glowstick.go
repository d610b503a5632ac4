package item

import (
	"github.com/oomph-ac/scout/entity"
	"github.com/oomph-ac/scout/game"
)

// Glowstick lights up the first time it is thrown. The light fades linearly from
// Intensity to nothing over LightDuration seconds.
type Glowstick struct {
	base

	NoiseRadius   float32
	LightDuration float64
	Intensity     float32

	activated bool
	elapsed   float64
}

// NewGlowstick ...
func NewGlowstick() *Glowstick {
	return &Glowstick{
		base: base{
			name:     "Glowstick",
			info:     "A chemical light. Throw it to light up the area.",
			scanType: entity.ScanTypeItem,
		},
		NoiseRadius:   game.DefaultGlowstickNoiseRadius,
		LightDuration: game.DefaultGlowstickDuration,
		Intensity:     game.DefaultGlowstickIntensity,
	}
}

// OnThrown ...
func (g *Glowstick) OnThrown() float32 {
	g.mu.Lock()
	if !g.activated {
		g.activated = true
		g.elapsed = 0
	}
	g.mu.Unlock()
	return g.NoiseRadius
}

// Tick advances the light timer.
func (g *Glowstick) Tick(dt float64) {
	if !(dt > 0) {
		return
	}
	g.mu.Lock()
	if g.activated && g.elapsed < g.LightDuration {
		g.elapsed += dt
	}
	g.mu.Unlock()
}

// Lit returns true while the glowstick emits light.
func (g *Glowstick) Lit() bool {
	return g.LightIntensity() > 0
}

// LightIntensity returns the current intensity of the light.
func (g *Glowstick) LightIntensity() float32 {
	g.mu.Lock()
	defer g.mu.Unlock()
	if !g.activated || g.LightDuration <= 0 {
		return 0
	}
	remaining := g.LightDuration - g.elapsed
	if remaining <= 0 {
		return 0
	}
	return g.Intensity * float32(remaining/g.LightDuration)
}
