// Package actor composes the per-actor systems of the simulation: movement, the scanning
// gauntlet, item interaction and vitals.
package actor

import (
	"github.com/ethaniccc/float32-cube/cube"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/google/uuid"
	"github.com/oomph-ac/scout/entity"
	"github.com/oomph-ac/scout/game"
	"github.com/oomph-ac/scout/gauntlet"
	"github.com/oomph-ac/scout/input"
	"github.com/oomph-ac/scout/interact"
	"github.com/oomph-ac/scout/locomotion"
	"github.com/oomph-ac/scout/world"
	"github.com/sasha-s/go-deadlock"
	"github.com/sirupsen/logrus"
	"go.uber.org/atomic"
)

// World is everything an actor needs from the world it lives in. *world.World
// implements it.
type World interface {
	interact.World
	world.Resolver
	SetBox(h world.Handle, box cube.BBox)
}

// Actor is a single first-person explorer. All of its state changes happen inside Tick,
// so different actors may be ticked concurrently.
type Actor struct {
	id     uuid.UUID
	handle world.Handle
	log    *logrus.Entry
	conf   Config
	w      World

	mu        deadlock.Mutex
	mover     *locomotion.Controller
	gauntlet  *gauntlet.Scanner
	items     *interact.Handler
	health    float32
	radiation float32

	hMu deadlock.RWMutex
	h   Handler

	closed atomic.Bool
}

// New creates an actor with its feet at pos and adds its body to the world.
func New(conf Config, w World, registry *entity.Registry, pos mgl32.Vec3) *Actor {
	if conf.Log == nil {
		conf.Log = logrus.StandardLogger()
	}
	id := uuid.New()
	a := &Actor{
		id:     id,
		handle: world.HandleFromName(id.String()),
		log:    conf.Log.WithField("actor", id.String()),
		conf:   conf,
		w:      w,
		health: conf.MaxHealth,
		h:      NopHandler{},
	}
	a.mover = locomotion.New(conf.Locomotion, w, w, pos)
	if conf.TraceMovement {
		a.mover.Debugf = a.log.Tracef
	}
	a.gauntlet = gauntlet.New(conf.Gauntlet, w, registry, a.handle)
	a.items = interact.NewHandler(conf.Interact, id, w, registry)

	w.Add(world.Body{Handle: a.handle, Layer: world.LayerPlayer, Box: a.mover.BBox(), Tag: "player"})
	return a
}

// ID ...
func (a *Actor) ID() uuid.UUID {
	return a.id
}

// Handle returns the handle of the actor's body in the world.
func (a *Actor) Handle() world.Handle {
	return a.handle
}

// Log ...
func (a *Actor) Log() *logrus.Entry {
	return a.log
}

// SetHandler sets the handler receiving the actor's events. A nil handler resets it to
// a NopHandler.
func (a *Actor) SetHandler(h Handler) {
	if h == nil {
		h = NopHandler{}
	}
	a.mu.Lock()
	a.mover.Handle(h)
	a.gauntlet.Handle(h)
	a.mu.Unlock()

	a.hMu.Lock()
	a.h = h
	a.hMu.Unlock()
}

// Tick advances the actor by dt seconds using the input snapshot passed. It does nothing
// once the actor is closed.
func (a *Actor) Tick(s input.Snapshot, dt float64) {
	if a.closed.Load() {
		return
	}
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.closed.Load() {
		return
	}

	a.mover.Update(s.Movement(), float32(dt))
	a.w.SetBox(a.handle, a.mover.BBox())

	eye, look := a.mover.EyePosition(), a.mover.LookDirection()
	if s.Scan {
		if a.gauntlet.Scan(eye, look) {
			params := NewParams()
			params.Set("heat", a.gauntlet.Heat())
			params.Set("overheated", a.gauntlet.Overheated())
			a.log.Debugf("scan %s", FormatParams(params))
		}
	}
	a.gauntlet.Tick(dt)

	if s.Slot != input.NoSlot {
		a.items.Inventory().Select(s.Slot)
	}
	a.items.Update(eye, look)
	if s.Interact {
		a.apply(a.items.Interact(eye, look), eye)
	}
	if s.Throw {
		a.apply(a.items.Throw(eye, look), eye)
	}
	if s.Use {
		a.apply(a.items.Use(), eye)
	}
}

// apply reports the result of an interaction to the handler and log.
func (a *Actor) apply(res interact.Result, eye mgl32.Vec3) {
	if res.Action == interact.ActionNone {
		return
	}
	params := NewParams()
	params.Set("item", res.Slot.Item.Name())
	params.Set("handle", uint64(res.Slot.Handle))

	h := a.handler()
	switch res.Action {
	case interact.ActionPickUp:
		h.HandlePickUp(res.Slot)
	case interact.ActionDrop:
		params.Set("pos", res.Position)
		h.HandleDrop(res.Slot, res.Position)
	case interact.ActionThrow:
		params.Set("pos", res.Position)
		params.Set("noise", res.Noise)
		h.HandleNoise(eye, a.conf.Interact.ThrowNoise)
		h.HandleThrow(res.Slot, res.Position)
		if res.Noise > 0 {
			h.HandleNoise(res.Position, res.Noise)
		}
	case interact.ActionConsume:
		restored := a.heal(res.Restored)
		params.Set("restored", restored)
		if res.Stamina > 0 {
			a.mover.RestoreStamina(res.Stamina)
			params.Set("stamina", res.Stamina)
		}
		h.HandleConsume(res.Slot, restored)
	}
	a.log.Debugf("%s %s", res.Action, FormatParams(params))
}

// IncreaseRadiation adds radiation to the actor, up to its maximum, and shakes its
// screen.
func (a *Actor) IncreaseRadiation(amount float32) {
	if !(amount > 0) || a.closed.Load() {
		return
	}
	a.mu.Lock()
	a.radiation = game.ClampFloat(a.radiation+amount, 0, a.conf.MaxRadiation)
	total := a.radiation
	a.mu.Unlock()

	h := a.handler()
	h.HandleRadiation(amount, total)
	h.HandleScreenShake()
}

// Heal restores health up to the maximum and returns the amount actually restored.
func (a *Actor) Heal(amount float32) float32 {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.heal(amount)
}

func (a *Actor) heal(amount float32) float32 {
	if !(amount > 0) {
		return 0
	}
	before := a.health
	a.health = game.ClampFloat(a.health+amount, 0, a.conf.MaxHealth)
	return a.health - before
}

// Damage removes health, down to zero.
func (a *Actor) Damage(amount float32) {
	if !(amount > 0) {
		return
	}
	a.mu.Lock()
	a.health = game.ClampFloat(a.health-amount, 0, a.conf.MaxHealth)
	a.mu.Unlock()
}

// Health ...
func (a *Actor) Health() float32 {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.health
}

// Radiation ...
func (a *Actor) Radiation() float32 {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.radiation
}

// Position returns the position of the actor's feet.
func (a *Actor) Position() mgl32.Vec3 {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.mover.Position()
}

// BBox ...
func (a *Actor) BBox() cube.BBox {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.mover.BBox()
}

// Teleport moves the actor's feet to pos.
func (a *Actor) Teleport(pos mgl32.Vec3) {
	a.mu.Lock()
	a.mover.Teleport(pos)
	a.w.SetBox(a.handle, a.mover.BBox())
	a.mu.Unlock()
}

// Status returns a summary of the actor's state for logging.
func (a *Actor) Status() *Params {
	a.mu.Lock()
	defer a.mu.Unlock()

	params := NewParams()
	params.Set("pos", game.RoundVec32(a.mover.Position(), 2))
	params.Set("ground", a.mover.State().GroundState)
	params.Set("stamina", game.Round32(a.mover.Stamina(), 1))
	params.Set("heat", game.Round32(a.gauntlet.Heat(), 1))
	params.Set("health", a.health)
	params.Set("radiation", a.radiation)
	if held, ok := a.items.Inventory().Held(); ok {
		params.Set("held", held.Item.Name())
	}
	return params
}

// Locomotion returns the movement controller of the actor. It must not be used while
// the actor is being ticked.
func (a *Actor) Locomotion() *locomotion.Controller {
	return a.mover
}

// Gauntlet returns the scanner of the actor. It must not be used while the actor is
// being ticked.
func (a *Actor) Gauntlet() *gauntlet.Scanner {
	return a.gauntlet
}

// Items returns the interaction handler of the actor. It must not be used while the
// actor is being ticked.
func (a *Actor) Items() *interact.Handler {
	return a.items
}

// Closed ...
func (a *Actor) Closed() bool {
	return a.closed.Load()
}

// Close stops the actor: in-flight sweeps and highlights are dropped without further
// events and its body leaves the world. Calling Close more than once is a no-op.
func (a *Actor) Close() error {
	if a.closed.Swap(true) {
		return nil
	}
	a.mu.Lock()
	a.gauntlet.Close()
	a.w.Remove(a.handle)
	a.mu.Unlock()

	a.log.Debug("closed")
	return nil
}

func (a *Actor) handler() Handler {
	a.hMu.RLock()
	defer a.hMu.RUnlock()
	return a.h
}
