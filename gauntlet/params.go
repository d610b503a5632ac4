package gauntlet

import (
	"github.com/oomph-ac/scout/game"
	"github.com/oomph-ac/scout/world"
)

// Params is the flat tuning set of a Scanner. Durations are in seconds, distances in
// metres and angles in degrees.
type Params struct {
	MaxHeat       float32
	HeatPerScan   float32
	HeatDecayRate float32

	OverheatDuration float64
	ScanCooldown     float64
	// HeatAfterOverheat is the heat the scanner is left at when an overheat ends.
	HeatAfterOverheat float32

	ScanRange float32
	// ConeAngle is the full opening angle of the scan cone.
	ConeAngle      float32
	SweepDuration  float64
	SweepMinRadius float32

	HighlightDuration float64
	// DetectLayers are the layers a sweep collects candidates from.
	DetectLayers world.LayerMask
}

// DefaultParams returns the shipped tuning.
func DefaultParams() Params {
	return Params{
		MaxHeat:           game.DefaultMaxHeat,
		HeatPerScan:       game.DefaultHeatPerScan,
		HeatDecayRate:     game.DefaultHeatDecayRate,
		OverheatDuration:  game.DefaultOverheatDuration,
		ScanCooldown:      game.DefaultScanCooldown,
		HeatAfterOverheat: game.HeatAfterOverheat,
		ScanRange:         game.DefaultScanRange,
		ConeAngle:         game.DefaultScanConeAngle,
		SweepDuration:     game.DefaultSweepDuration,
		SweepMinRadius:    game.DefaultSweepMinRadius,
		HighlightDuration: game.DefaultHighlightDuration,
		DetectLayers:      world.MaskOf(world.LayerDefault, world.LayerItem, world.LayerEnvironment),
	}
}
