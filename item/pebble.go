package item

import (
	"github.com/oomph-ac/scout/entity"
	"github.com/oomph-ac/scout/game"
)

// Pebble is a throwable stone. It breaks when it lands, making noise that carries
// NoiseRadius metres.
type Pebble struct {
	base

	NoiseRadius float32
	broken      bool
}

// NewPebble ...
func NewPebble() *Pebble {
	return &Pebble{
		base: base{
			name:     "Pebble",
			info:     "A small stone. Throw it to make a distraction.",
			scanType: entity.ScanTypeItem,
		},
		NoiseRadius: game.DefaultPebbleNoiseRadius,
	}
}

// CanBePickedUp ...
func (p *Pebble) CanBePickedUp() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return !p.held && !p.broken
}

// OnThrown ...
func (p *Pebble) OnThrown() float32 {
	p.mu.Lock()
	p.broken = true
	p.mu.Unlock()
	return p.NoiseRadius
}

// Broken returns true once the pebble has been thrown.
func (p *Pebble) Broken() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.broken
}
