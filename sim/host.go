// Package sim drives every actor, hazard and item of a world on a fixed time step.
package sim

import (
	"sync"

	"github.com/elliotchance/orderedmap/v2"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/google/uuid"
	"github.com/oomph-ac/scout/actor"
	"github.com/oomph-ac/scout/assert"
	"github.com/oomph-ac/scout/entity"
	"github.com/oomph-ac/scout/game"
	"github.com/oomph-ac/scout/hazard"
	"github.com/oomph-ac/scout/input"
	"github.com/oomph-ac/scout/oerror"
	"github.com/oomph-ac/scout/worker"
	"github.com/oomph-ac/scout/world"
	"github.com/sasha-s/go-deadlock"
	"github.com/sirupsen/logrus"
)

// Config holds the timing of a Host.
type Config struct {
	// Log is the logger of the host and the default logger of its actors.
	Log *logrus.Logger
	// FixedStep is the duration of one simulation step in seconds.
	FixedStep float64
	// MaxFrameTime is the longest frame Step accepts. Longer frames are clamped so a
	// stall does not make the host run a burst of steps.
	MaxFrameTime float64
	// Workers is the amount of actors ticked at once. Zero uses one per CPU.
	Workers int
	// FrameHistory is the amount of frames kept for frame time statistics.
	FrameHistory int
}

// DefaultConfig ...
func DefaultConfig() Config {
	return Config{
		FixedStep:    game.DefaultFixedStep,
		MaxFrameTime: game.DefaultMaxFrameTime,
		FrameHistory: 120,
	}
}

// Ticker is an item with its own timer, such as a glowstick.
type Ticker interface {
	Tick(dt float64)
}

type member struct {
	actor *actor.Actor
	input *input.Buffer
}

// Host owns a world and everything simulated in it.
type Host struct {
	conf     Config
	log      *logrus.Logger
	world    *world.World
	registry *entity.Registry
	pool     *worker.Pool

	mu          deadlock.Mutex
	actors      *orderedmap.OrderedMap[uuid.UUID, member]
	zones       []*hazard.Zone
	tickers     *orderedmap.OrderedMap[world.Handle, Ticker]
	accumulator float64
	now         float64
	steps       uint64
	frames      *History[float64]
	closed      bool
}

// NewHost creates a host with an empty world.
func NewHost(conf Config) (*Host, error) {
	if !(conf.FixedStep > 0) {
		return nil, oerror.New("fixed step must be positive, got %v", conf.FixedStep)
	}
	if !(conf.MaxFrameTime >= conf.FixedStep) {
		return nil, oerror.New("max frame time %v is shorter than the fixed step %v", conf.MaxFrameTime, conf.FixedStep)
	}
	if conf.Log == nil {
		conf.Log = logrus.StandardLogger()
	}
	pool, err := worker.NewPool(conf.Workers, conf.Log)
	if err != nil {
		return nil, err
	}
	return &Host{
		conf:     conf,
		log:      conf.Log,
		world:    world.New(conf.Log),
		registry: entity.NewRegistry(),
		pool:     pool,
		actors:   orderedmap.NewOrderedMap[uuid.UUID, member](),
		tickers:  orderedmap.NewOrderedMap[world.Handle, Ticker](),
		frames:   NewHistory[float64](conf.FrameHistory),
	}, nil
}

// World ...
func (h *Host) World() *world.World {
	return h.world
}

// Registry ...
func (h *Host) Registry() *entity.Registry {
	return h.registry
}

// Spawn creates an actor with its feet at pos and returns it with the input buffer
// that drives it.
func (h *Host) Spawn(conf actor.Config, pos mgl32.Vec3) (*actor.Actor, *input.Buffer) {
	if conf.Log == nil {
		conf.Log = h.log
	}
	a := actor.New(conf, h.world, h.registry, pos)
	buf := input.NewBuffer()

	h.mu.Lock()
	h.actors.Set(a.ID(), member{actor: a, input: buf})
	h.mu.Unlock()

	h.log.Infof("spawned actor %s at %v", a.ID(), pos)
	return a, buf
}

// Despawn closes and removes the actor with the id passed.
func (h *Host) Despawn(id uuid.UUID) bool {
	h.mu.Lock()
	m, ok := h.actors.Get(id)
	if ok {
		h.actors.Delete(id)
		for _, z := range h.zones {
			z.Forget(id)
		}
	}
	h.mu.Unlock()

	if !ok {
		return false
	}
	_ = m.actor.Close()
	h.log.Infof("despawned actor %s", id)
	return true
}

// Actor ...
func (h *Host) Actor(id uuid.UUID) (*actor.Actor, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	m, ok := h.actors.Get(id)
	return m.actor, ok
}

// Actors returns every actor in the order they were spawned.
func (h *Host) Actors() []*actor.Actor {
	h.mu.Lock()
	defer h.mu.Unlock()
	actors := make([]*actor.Actor, 0, h.actors.Len())
	for _, id := range h.actors.Keys() {
		m, _ := h.actors.Get(id)
		actors = append(actors, m.actor)
	}
	return actors
}

// AddZone ...
func (h *Host) AddZone(z *hazard.Zone) {
	h.mu.Lock()
	h.zones = append(h.zones, z)
	h.mu.Unlock()
}

// AddItem puts an item into the world with the body passed. Items implementing Ticker
// are ticked every step for as long as they stay registered.
func (h *Host) AddItem(body world.Body, item any) {
	h.world.Add(body)
	h.registry.Register(body.Handle, item)
	if t, ok := item.(Ticker); ok {
		h.mu.Lock()
		h.tickers.Set(body.Handle, t)
		h.mu.Unlock()
	}
}

// Step advances the host by a frame of dt seconds, running as many fixed steps as fit
// into the time accumulated so far. It returns the amount of steps run.
func (h *Host) Step(dt float64) int {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.closed || !(dt > 0) {
		return 0
	}
	dt = min(dt, h.conf.MaxFrameTime)
	h.frames.Add(dt)

	h.accumulator += dt
	n := 0
	// The epsilon keeps frames that are an exact multiple of the step from losing a
	// step to rounding.
	for h.accumulator+1e-9 >= h.conf.FixedStep {
		h.tick(h.conf.FixedStep)
		h.accumulator = max(0, h.accumulator-h.conf.FixedStep)
		n++
	}
	assert.IsTrue(h.accumulator < h.conf.FixedStep, "accumulator %v left a full step of %v", h.accumulator, h.conf.FixedStep)
	return n
}

// tick runs one fixed step. Actors are ticked concurrently and only afterwards do
// hazards and items advance.
func (h *Host) tick(dt float64) {
	members := make([]member, 0, h.actors.Len())
	for _, id := range h.actors.Keys() {
		m, _ := h.actors.Get(id)
		members = append(members, m)
	}

	var wg sync.WaitGroup
	for _, m := range members {
		snapshot := m.input.Drain()
		a := m.actor
		wg.Add(1)
		h.pool.Submit(func() {
			defer wg.Done()
			defer worker.Recover(a.Log(), map[string]string{"actor": a.ID().String()})
			a.Tick(snapshot, dt)
		})
	}
	wg.Wait()

	for _, z := range h.zones {
		z.Tick(dt)
		for _, m := range members {
			if amount, ok := z.Expose(m.actor.ID(), m.actor.BBox()); ok {
				m.actor.IncreaseRadiation(amount)
			}
		}
	}

	for _, hd := range h.tickers.Keys() {
		if _, ok := h.registry.Object(hd); !ok {
			h.tickers.Delete(hd)
			continue
		}
		t, _ := h.tickers.Get(hd)
		t.Tick(dt)
	}

	h.now += dt
	h.steps++
}

// FixedStep returns the duration of one simulation step in seconds.
func (h *Host) FixedStep() float64 {
	return h.conf.FixedStep
}

// Now returns the simulated time in seconds.
func (h *Host) Now() float64 {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.now
}

// Steps returns the amount of fixed steps run.
func (h *Host) Steps() uint64 {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.steps
}

// AverageFPS returns the frame rate over the recent frames passed to Step.
func (h *Host) AverageFPS() float64 {
	h.mu.Lock()
	defer h.mu.Unlock()
	mean := game.Mean(h.frames.Values())
	if mean == 0 {
		return 0
	}
	return 1 / mean
}

// FrameTimePercentile returns the p-th percentile of the recent frame times.
func (h *Host) FrameTimePercentile(p float64) float64 {
	h.mu.Lock()
	defer h.mu.Unlock()
	return game.Percentile(h.frames.Values(), p)
}

// Close closes every actor and stops the worker pool. Calling Close more than once is
// a no-op.
func (h *Host) Close() error {
	h.mu.Lock()
	if h.closed {
		h.mu.Unlock()
		return nil
	}
	h.closed = true
	members := make([]member, 0, h.actors.Len())
	for _, id := range h.actors.Keys() {
		m, _ := h.actors.Get(id)
		members = append(members, m)
	}
	h.mu.Unlock()

	for _, m := range members {
		_ = m.actor.Close()
	}
	h.pool.Release()
	h.log.Infof("host closed after %d steps", h.Steps())
	return nil
}
