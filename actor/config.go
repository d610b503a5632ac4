package actor

import (
	"github.com/oomph-ac/scout/game"
	"github.com/oomph-ac/scout/gauntlet"
	"github.com/oomph-ac/scout/interact"
	"github.com/oomph-ac/scout/locomotion"
	"github.com/sirupsen/logrus"
)

// Config holds everything needed to create an Actor.
type Config struct {
	// Log is the logger the actor writes to. If nil, the standard logrus logger is used.
	Log *logrus.Logger

	Locomotion locomotion.Params
	Gauntlet   gauntlet.Params
	Interact   interact.Params

	MaxHealth    float32
	MaxRadiation float32

	// TraceMovement forwards the step trace of the locomotion controller to the log at
	// trace level.
	TraceMovement bool
}

// DefaultConfig returns a Config with the shipped tuning of every component.
func DefaultConfig() Config {
	return Config{
		Locomotion:   locomotion.DefaultParams(),
		Gauntlet:     gauntlet.DefaultParams(),
		Interact:     interact.DefaultParams(),
		MaxHealth:    game.DefaultMaxHealth,
		MaxRadiation: game.DefaultMaxRadiation,
	}
}
