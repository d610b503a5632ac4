// Package settings loads the tunable values of the simulation from a TOML or YAML file.
package settings

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ethaniccc/float32-cube/cube"
	"github.com/oomph-ac/scout/actor"
	"github.com/oomph-ac/scout/game"
	"github.com/oomph-ac/scout/hazard"
	"github.com/oomph-ac/scout/oerror"
	"github.com/oomph-ac/scout/sim"
	"github.com/pelletier/go-toml"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

// Settings contains everything that can be configured for a simulation.
type Settings struct {
	Log struct {
		// Level is a logrus level name such as "info" or "debug".
		Level string
	}
	Sentry struct {
		// DSN enables error reporting when set.
		DSN         string
		Environment string
	}
	Host struct {
		FixedStep    float64
		MaxFrameTime float64
		Workers      int
		FrameHistory int
	}
	Movement struct {
		WalkSpeed          float64
		SprintSpeed        float64
		CrouchSpeedFactor  float64
		JumpHeight         float64
		Gravity            float64
		AirControl         float64
		AirMomentumDecay   float64
		CoyoteTime         float64
		LandingCooldown    float64
		MaxSlopeAngle      float64
		MaxStamina         float64
		StaminaDrain       float64
		StaminaRegen       float64
		ExhaustionCooldown float64
		LookSensitivity    float64
		MaxPitch           float64
		// TraceSteps logs every movement step at trace level.
		TraceSteps bool
	}
	Gauntlet struct {
		MaxHeat           float64
		HeatPerScan       float64
		HeatDecayRate     float64
		OverheatDuration  float64
		ScanCooldown      float64
		ScanRange         float64
		ConeAngle         float64
		SweepDuration     float64
		HighlightDuration float64
	}
	Interaction struct {
		Range         float64
		ThrowDistance float64
		DropDistance  float64
		ThrowNoise    float64
		Slots         int
	}
	Vitals struct {
		MaxHealth    float64
		MaxRadiation float64
	}
	Hazard struct {
		Interval float64
		Amount   float64
	}
}

// DefaultSettings returns the shipped settings.
func DefaultSettings() Settings {
	s := Settings{}
	s.Log.Level = "info"
	s.Sentry.Environment = "development"

	host := sim.DefaultConfig()
	s.Host.FixedStep = host.FixedStep
	s.Host.MaxFrameTime = host.MaxFrameTime
	s.Host.FrameHistory = host.FrameHistory

	conf := actor.DefaultConfig()
	m := conf.Locomotion
	s.Movement.WalkSpeed = float64(m.WalkSpeed)
	s.Movement.SprintSpeed = float64(m.SprintSpeed)
	s.Movement.CrouchSpeedFactor = float64(m.CrouchSpeedFactor)
	s.Movement.JumpHeight = float64(m.JumpHeight)
	s.Movement.Gravity = float64(m.Gravity)
	s.Movement.AirControl = float64(m.AirControl)
	s.Movement.AirMomentumDecay = float64(m.AirMomentumDecay)
	s.Movement.CoyoteTime = m.CoyoteTime
	s.Movement.LandingCooldown = m.LandingCooldown
	s.Movement.MaxSlopeAngle = float64(m.MaxSlopeAngle)
	s.Movement.MaxStamina = float64(m.MaxStamina)
	s.Movement.StaminaDrain = float64(m.StaminaDrain)
	s.Movement.StaminaRegen = float64(m.StaminaRegen)
	s.Movement.ExhaustionCooldown = m.ExhaustionCooldown
	s.Movement.LookSensitivity = float64(m.LookSensitivity)
	s.Movement.MaxPitch = float64(m.MaxPitch)

	g := conf.Gauntlet
	s.Gauntlet.MaxHeat = float64(g.MaxHeat)
	s.Gauntlet.HeatPerScan = float64(g.HeatPerScan)
	s.Gauntlet.HeatDecayRate = float64(g.HeatDecayRate)
	s.Gauntlet.OverheatDuration = g.OverheatDuration
	s.Gauntlet.ScanCooldown = g.ScanCooldown
	s.Gauntlet.ScanRange = float64(g.ScanRange)
	s.Gauntlet.ConeAngle = float64(g.ConeAngle)
	s.Gauntlet.SweepDuration = g.SweepDuration
	s.Gauntlet.HighlightDuration = g.HighlightDuration

	i := conf.Interact
	s.Interaction.Range = float64(i.Range)
	s.Interaction.ThrowDistance = float64(i.ThrowDistance)
	s.Interaction.DropDistance = float64(i.DropDistance)
	s.Interaction.ThrowNoise = float64(i.ThrowNoise)
	s.Interaction.Slots = i.Slots

	s.Vitals.MaxHealth = float64(conf.MaxHealth)
	s.Vitals.MaxRadiation = float64(conf.MaxRadiation)

	s.Hazard.Interval = game.DefaultRadiationInterval
	s.Hazard.Amount = float64(game.DefaultRadiationAmount)
	return s
}

// Validate returns an error describing the first invalid value found.
func (s Settings) Validate() error {
	if _, err := logrus.ParseLevel(s.Log.Level); err != nil {
		return oerror.New("log level: %v", err)
	}
	switch {
	case !(s.Host.FixedStep > 0):
		return oerror.New("host fixed step must be positive, got %v", s.Host.FixedStep)
	case s.Host.MaxFrameTime < s.Host.FixedStep:
		return oerror.New("host max frame time %v is shorter than the fixed step %v", s.Host.MaxFrameTime, s.Host.FixedStep)
	case s.Host.Workers < 0:
		return oerror.New("host workers cannot be negative, got %d", s.Host.Workers)
	case s.Movement.Gravity >= 0:
		return oerror.New("movement gravity must point down, got %v", s.Movement.Gravity)
	case s.Movement.MaxStamina <= 0:
		return oerror.New("movement max stamina must be positive, got %v", s.Movement.MaxStamina)
	case s.Movement.MaxPitch <= 0 || s.Movement.MaxPitch > 90:
		return oerror.New("movement max pitch must be within (0, 90], got %v", s.Movement.MaxPitch)
	case s.Gauntlet.MaxHeat <= 0:
		return oerror.New("gauntlet max heat must be positive, got %v", s.Gauntlet.MaxHeat)
	case s.Gauntlet.HeatPerScan < 0 || s.Gauntlet.HeatDecayRate < 0:
		return oerror.New("gauntlet heat rates cannot be negative")
	case s.Gauntlet.ConeAngle <= 0 || s.Gauntlet.ConeAngle >= 180:
		return oerror.New("gauntlet cone angle must be within (0, 180), got %v", s.Gauntlet.ConeAngle)
	case s.Gauntlet.SweepDuration <= 0:
		return oerror.New("gauntlet sweep duration must be positive, got %v", s.Gauntlet.SweepDuration)
	case s.Interaction.Slots < 1:
		return oerror.New("interaction needs at least one slot, got %d", s.Interaction.Slots)
	case s.Vitals.MaxHealth <= 0 || s.Vitals.MaxRadiation <= 0:
		return oerror.New("vitals maxima must be positive")
	case s.Hazard.Interval <= 0:
		return oerror.New("hazard interval must be positive, got %v", s.Hazard.Interval)
	}
	return nil
}

// LogLevel returns the parsed log level, falling back to info.
func (s Settings) LogLevel() logrus.Level {
	lvl, err := logrus.ParseLevel(s.Log.Level)
	if err != nil {
		return logrus.InfoLevel
	}
	return lvl
}

// HostConfig returns the host timing described by the settings.
func (s Settings) HostConfig(log *logrus.Logger) sim.Config {
	return sim.Config{
		Log:          log,
		FixedStep:    s.Host.FixedStep,
		MaxFrameTime: s.Host.MaxFrameTime,
		Workers:      s.Host.Workers,
		FrameHistory: s.Host.FrameHistory,
	}
}

// ActorConfig returns the actor tuning described by the settings. Values that cannot be
// configured keep their defaults.
func (s Settings) ActorConfig(log *logrus.Logger) actor.Config {
	conf := actor.DefaultConfig()
	conf.Log = log
	conf.TraceMovement = s.Movement.TraceSteps

	m := &conf.Locomotion
	m.WalkSpeed = float32(s.Movement.WalkSpeed)
	m.SprintSpeed = float32(s.Movement.SprintSpeed)
	m.CrouchSpeedFactor = float32(s.Movement.CrouchSpeedFactor)
	m.JumpHeight = float32(s.Movement.JumpHeight)
	m.Gravity = float32(s.Movement.Gravity)
	m.AirControl = float32(s.Movement.AirControl)
	m.AirMomentumDecay = float32(s.Movement.AirMomentumDecay)
	m.CoyoteTime = s.Movement.CoyoteTime
	m.LandingCooldown = s.Movement.LandingCooldown
	m.MaxSlopeAngle = float32(s.Movement.MaxSlopeAngle)
	m.MaxStamina = float32(s.Movement.MaxStamina)
	m.StaminaDrain = float32(s.Movement.StaminaDrain)
	m.StaminaRegen = float32(s.Movement.StaminaRegen)
	m.ExhaustionCooldown = s.Movement.ExhaustionCooldown
	m.LookSensitivity = float32(s.Movement.LookSensitivity)
	m.MaxPitch = float32(s.Movement.MaxPitch)

	g := &conf.Gauntlet
	g.MaxHeat = float32(s.Gauntlet.MaxHeat)
	g.HeatPerScan = float32(s.Gauntlet.HeatPerScan)
	g.HeatDecayRate = float32(s.Gauntlet.HeatDecayRate)
	g.OverheatDuration = s.Gauntlet.OverheatDuration
	g.ScanCooldown = s.Gauntlet.ScanCooldown
	g.ScanRange = float32(s.Gauntlet.ScanRange)
	g.ConeAngle = float32(s.Gauntlet.ConeAngle)
	g.SweepDuration = s.Gauntlet.SweepDuration
	g.HighlightDuration = s.Gauntlet.HighlightDuration

	i := &conf.Interact
	i.Range = float32(s.Interaction.Range)
	i.ThrowDistance = float32(s.Interaction.ThrowDistance)
	i.DropDistance = float32(s.Interaction.DropDistance)
	i.ThrowNoise = float32(s.Interaction.ThrowNoise)
	i.Slots = s.Interaction.Slots

	conf.MaxHealth = float32(s.Vitals.MaxHealth)
	conf.MaxRadiation = float32(s.Vitals.MaxRadiation)
	return conf
}

// NewZone returns a radiation zone covering box with the configured exposure.
func (s Settings) NewZone(box cube.BBox) *hazard.Zone {
	z := hazard.NewZone(box)
	z.Interval = s.Hazard.Interval
	z.Amount = float32(s.Hazard.Amount)
	return z
}

// SaveDefault will create and save the default settings file. If the file already exists,
// it will return an error.
func SaveDefault(path string) error {
	if _, err := os.Stat(path); err == nil {
		return errors.New("settings file already exists")
	} else if !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed checking settings file: %w", err)
	}
	return Save(path, DefaultSettings())
}

// Save encodes s in the format matching the extension of path and writes it.
func Save(path string, s Settings) error {
	data, err := encode(path, s)
	if err != nil {
		return fmt.Errorf("failed encoding settings: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed writing settings file: %w", err)
	}
	return nil
}

// Load will load the settings from the file at path and validate them. Values missing
// from the file keep their defaults.
func Load(path string) (Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Settings{}, fmt.Errorf("error reading settings: %w", err)
	}
	s := DefaultSettings()
	if err := decode(path, data, &s); err != nil {
		return Settings{}, fmt.Errorf("error decoding settings: %w", err)
	}
	if err := s.Validate(); err != nil {
		return Settings{}, fmt.Errorf("invalid settings in %s: %w", path, err)
	}
	return s, nil
}

func encode(path string, s Settings) ([]byte, error) {
	switch format(path) {
	case "toml":
		return toml.Marshal(s)
	case "yaml":
		return yaml.Marshal(s)
	}
	return nil, oerror.New("unsupported settings format %q", filepath.Ext(path))
}

func decode(path string, data []byte, s *Settings) error {
	switch format(path) {
	case "toml":
		return toml.Unmarshal(data, s)
	case "yaml":
		return yaml.Unmarshal(data, s)
	}
	return oerror.New("unsupported settings format %q", filepath.Ext(path))
}

func format(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return "toml"
	case ".yaml", ".yml":
		return "yaml"
	}
	return ""
}
