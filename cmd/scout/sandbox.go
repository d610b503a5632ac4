package main

import (
	"time"

	"github.com/ethaniccc/float32-cube/cube"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/scout/actor"
	"github.com/oomph-ac/scout/entity"
	"github.com/oomph-ac/scout/input"
	"github.com/oomph-ac/scout/interact"
	"github.com/oomph-ac/scout/item"
	"github.com/oomph-ac/scout/settings"
	"github.com/oomph-ac/scout/sim"
	"github.com/oomph-ac/scout/world"
	"github.com/sirupsen/logrus"
)

// cue is a scripted input applied once the simulated time reaches at.
type cue struct {
	at   float64
	name string
	do   func(in *input.Buffer)
}

type sandbox struct {
	log   *logrus.Logger
	host  *sim.Host
	actor *actor.Actor
	input *input.Buffer
	cues  []cue
}

// newSandbox builds a small test level: a floor, a wall, a raised ledge, a ramp and a
// radiation pocket, with one of every item lying around.
func newSandbox(s settings.Settings, log *logrus.Logger) (*sandbox, error) {
	host, err := sim.NewHost(s.HostConfig(log))
	if err != nil {
		return nil, err
	}
	w := host.World()

	static := func(name string, box cube.BBox) {
		w.Add(world.Body{Handle: world.HandleFromName(name), Layer: world.LayerEnvironment, Box: box, Solid: true, Tag: name})
	}
	static("floor", cube.Box(-40, -1, -40, 40, 0, 40))
	static("north_wall", cube.Box(-40, 0, 30, 40, 6, 31))
	static("ledge", cube.Box(4, 0, 8, 10, 1, 14))
	w.Add(world.Body{
		Handle:    world.HandleFromName("ramp"),
		Layer:     world.LayerEnvironment,
		Box:       cube.Box(-10, 0, 8, -4, 0.5, 14),
		Solid:     true,
		Tag:       "ramp",
		TopNormal: mgl32.Vec3{0, 1, -0.3},
	})

	addItem := func(name string, pos mgl32.Vec3, obj any) {
		body := world.Body{
			Handle: world.HandleFromName(name),
			Layer:  world.LayerItem,
			Box:    cube.Box(-0.1, 0, -0.1, 0.1, 0.2, 0.1).Translate(pos),
			Tag:    name,
		}
		host.AddItem(body, obj)
	}
	addItem("pebble", mgl32.Vec3{0, 0, 4}, item.NewPebble())
	addItem("glowstick", mgl32.Vec3{1, 0, 6}, item.NewGlowstick())
	addItem("plant_gel", mgl32.Vec3{-1, 0, 6}, item.NewPlantGel())
	host.AddZone(s.NewZone(cube.Box(-3, 0, 16, 3, 3, 22)))

	a, in := host.Spawn(s.ActorConfig(log), mgl32.Vec3{})
	a.SetHandler(&logHandler{log: a.Log()})

	sb := &sandbox{log: log, host: host, actor: a, input: in}
	sb.cues = []cue{
		{at: 0.5, name: "walk forward", do: func(in *input.Buffer) { in.SetMove(mgl32.Vec2{0, 1}) }},
		{at: 1.0, name: "scan", do: func(in *input.Buffer) { in.PressScan() }},
		{at: 1.2, name: "stop", do: func(in *input.Buffer) { in.SetMove(mgl32.Vec2{}) }},
		{at: 1.3, name: "look down", do: func(in *input.Buffer) { in.AddLook(mgl32.Vec2{0, -300}) }},
		{at: 1.5, name: "pick up", do: func(in *input.Buffer) { in.PressInteract() }},
		{at: 1.7, name: "look up", do: func(in *input.Buffer) { in.AddLook(mgl32.Vec2{0, 300}) }},
		{at: 2.0, name: "throw", do: func(in *input.Buffer) { in.PressThrow() }},
		{at: 2.2, name: "select slot 1", do: func(in *input.Buffer) { in.SelectSlot(1) }},
		{at: 2.3, name: "sprint", do: func(in *input.Buffer) {
			in.SetMove(mgl32.Vec2{0, 1})
			in.SetSprint(true)
		}},
		{at: 3.0, name: "jump", do: func(in *input.Buffer) { in.PressJump() }},
		{at: 3.6, name: "scan", do: func(in *input.Buffer) { in.PressScan() }},
		{at: 4.0, name: "walk", do: func(in *input.Buffer) { in.SetSprint(false) }},
		{at: 4.6, name: "stand in radiation", do: func(in *input.Buffer) { in.SetMove(mgl32.Vec2{}) }},
		{at: 7.0, name: "crouch", do: func(in *input.Buffer) { in.ToggleCrouch() }},
		{at: 7.5, name: "stand up", do: func(in *input.Buffer) { in.ToggleCrouch() }},
		{at: 8.0, name: "turn around", do: func(in *input.Buffer) {
			in.AddLook(mgl32.Vec2{1800, 0})
			in.SetMove(mgl32.Vec2{0, 1})
		}},
		{at: 10.0, name: "stop", do: func(in *input.Buffer) { in.SetMove(mgl32.Vec2{}) }},
	}
	return sb, nil
}

// run steps the host for duration simulated seconds, applying cues and logging the
// actor's status every second.
func (sb *sandbox) run(duration float64, realtime bool) {
	frame := sb.host.FixedStep()
	var ticker *time.Ticker
	if realtime {
		ticker = time.NewTicker(time.Duration(frame * float64(time.Second)))
		defer ticker.Stop()
	}

	next, lastReport := 0, -1
	for sb.host.Now() < duration {
		for next < len(sb.cues) && sb.cues[next].at <= sb.host.Now() {
			sb.log.Infof("cue %q at %.2fs", sb.cues[next].name, sb.host.Now())
			sb.cues[next].do(sb.input)
			next++
		}
		if ticker != nil {
			<-ticker.C
		}
		sb.host.Step(frame)

		if second := int(sb.host.Now()); second != lastReport {
			lastReport = second
			sb.log.Infof("t=%ds %s", second, actor.FormatParams(sb.actor.Status()))
		}
	}
	sb.log.Infof("simulated %.2fs in %d steps, %.1f fps (p95 frame %.4fs)",
		sb.host.Now(), sb.host.Steps(), sb.host.AverageFPS(), sb.host.FrameTimePercentile(95))
}

// logHandler logs every event of an actor.
type logHandler struct {
	actor.NopHandler
	log *logrus.Entry
}

func (h *logHandler) HandleLand(impactSpeed float32) {
	h.log.Debugf("landed at %.2f m/s", impactSpeed)
}

func (h *logHandler) HandleJump() {
	h.log.Debug("jumped")
}

func (h *logHandler) HandleSweepStart(origin, forward mgl32.Vec3) {
	h.log.Infof("scan sweep from %v towards %v", origin, forward)
}

func (h *logHandler) HandleOverheat() {
	h.log.Warn("gauntlet overheated")
}

func (h *logHandler) HandleCooledDown() {
	h.log.Info("gauntlet cooled down")
}

func (h *logHandler) HandleHighlightStart(hd world.Handle, target entity.Scannable) {
	params := actor.NewParams()
	params.Set("handle", uint64(hd))
	params.Set("type", target.ScanType())
	params.Set("info", target.ScanInfo())
	h.log.Infof("discovered %s", actor.FormatParams(params))
}

func (h *logHandler) HandlePickUp(slot interact.Slot) {
	h.log.Infof("picked up %s", slot.Item.Name())
}

func (h *logHandler) HandleDrop(slot interact.Slot, pos mgl32.Vec3) {
	h.log.Infof("dropped %s at %v", slot.Item.Name(), pos)
}

func (h *logHandler) HandleThrow(slot interact.Slot, pos mgl32.Vec3) {
	h.log.Infof("threw %s, landed at %v", slot.Item.Name(), pos)
}

func (h *logHandler) HandleConsume(slot interact.Slot, restored float32) {
	h.log.Infof("consumed %s, restored %.0f health", slot.Item.Name(), restored)
}

func (h *logHandler) HandleNoise(pos mgl32.Vec3, radius float32) {
	h.log.Debugf("noise at %v audible within %.1fm", pos, radius)
}

func (h *logHandler) HandleRadiation(amount, total float32) {
	h.log.Warnf("radiation +%.0f (total %.0f)", amount, total)
}
