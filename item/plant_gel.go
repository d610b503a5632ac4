package item

import (
	"github.com/oomph-ac/scout/entity"
	"github.com/oomph-ac/scout/game"
)

// PlantGel is a consumable sample that restores health and some stamina.
type PlantGel struct {
	base

	HealthRestore float32
	Stamina       float32
	consumed      bool
}

// NewPlantGel ...
func NewPlantGel() *PlantGel {
	return &PlantGel{
		base: base{
			name:     "Plant Gel",
			info:     "A healing gel harvested from local flora.",
			scanType: entity.ScanTypeItem,
		},
		HealthRestore: game.DefaultPlantGelRestore,
		Stamina:       game.DefaultPlantGelStamina,
	}
}

// CanBePickedUp ...
func (p *PlantGel) CanBePickedUp() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return !p.held && !p.consumed
}

// Consume ...
func (p *PlantGel) Consume() float32 {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.consumed {
		return 0
	}
	p.consumed = true
	p.held = false
	return p.HealthRestore
}

// Consumed returns true once the gel has been used.
func (p *PlantGel) Consumed() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.consumed
}

// StaminaRestore ...
func (p *PlantGel) StaminaRestore() float32 {
	return p.Stamina
}
