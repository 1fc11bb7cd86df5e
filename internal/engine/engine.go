package engine

import (
	"github.com/hearthlab/cavern-core/internal/audio"
	"github.com/hearthlab/cavern-core/internal/bitflags"
	"github.com/hearthlab/cavern-core/internal/bullet"
	"github.com/hearthlab/cavern-core/internal/caret"
	"github.com/hearthlab/cavern-core/internal/constants"
	"github.com/hearthlab/cavern-core/internal/fixedpoint"
	"github.com/hearthlab/cavern-core/internal/frame"
	"github.com/hearthlab/cavern-core/internal/input"
	"github.com/hearthlab/cavern-core/internal/npc"
	"github.com/hearthlab/cavern-core/internal/player"
	"github.com/hearthlab/cavern-core/internal/save"
	"github.com/hearthlab/cavern-core/internal/stage"
	"github.com/hearthlab/cavern-core/internal/state"
	"github.com/hearthlab/cavern-core/internal/tsc"
	"github.com/hearthlab/cavern-core/internal/water"
)

// Scripts bundles the three concurrently-steppable TSC VMs named in
// §4.3: the stage's scene script, the global inventory script
// (ArmsItem.tsc), and the stage-select menu script. start_script
// resolves scene → global → stage-select, matching Resolve below.
type Scripts struct {
	Scene       *tsc.VM
	Global      *tsc.VM
	StageSelect *tsc.VM
}

// Resolve finds which VM owns event, in the source's scene → global →
// inventory → stage-select precedence (§4.3). Global doubles as the
// "inventory" script named in the spec since ArmsItem.tsc is the one
// file backing both concepts in the original engine.
func (s *Scripts) Resolve(event uint16) *tsc.VM {
	for _, vm := range []*tsc.VM{s.Scene, s.Global, s.StageSelect} {
		if vm == nil {
			continue
		}
		if _, ok := vm.Programs[event]; ok {
			return vm
		}
	}
	return nil
}

// Tick steps every non-nil VM once. Multiple scripts can be mid-execution
// at once (e.g. a looping global ambient script alongside a one-shot
// scene cutscene); each VM's own state machine decides whether it
// actually does anything this call.
func (s *Scripts) Tick() error {
	for _, vm := range []*tsc.VM{s.Scene, s.Global, s.StageSelect} {
		if vm == nil {
			continue
		}
		if err := vm.Tick(); err != nil {
			return err
		}
	}
	return nil
}

// Suspended reports whether any running VM currently wants the outer loop
// to halt simulation (§4.3 "Suspension contract").
func (s *Scripts) Suspended() bool {
	for _, vm := range []*tsc.VM{s.Scene, s.Global, s.StageSelect} {
		if vm != nil && vm.Suspend {
			return true
		}
	}
	return false
}

// Engine is the composition root binding every subsystem package into the
// single frame-loop contract described in §6: new_game/load_game/
// save_game/tick/draw/feed_input/reload_resources. It holds no gameplay
// logic of its own beyond the tick ordering fixed by §4.1.
type Engine struct {
	State   *state.SharedGameState
	Stage   *stage.Stage
	NPCs    *npc.List
	Dispatch npc.Dispatch
	Bullets *bullet.List
	Carets  *caret.List
	Water   *water.Renderer
	Scripts Scripts

	Players      [2]*player.Player
	Controllers  [2]input.Controller
	BulletTable  bullet.Table

	// Sound is the opaque audio boundary TSC's <SOU/<CMU/<FMU opcodes
	// call through (§1, §6); defaults to a discarding NullManager so a
	// headless engine never needs a host to set one.
	Sound audio.SoundManager

	// CameraFocus, when non-nil, overrides player tracking for the
	// camera's Update target (§3 Frame.update_target); a TSC <FOM/<FOB
	// opcode sets it, a stage transition or explicit un-focus clears it.
	CameraFocus *frame.PointTarget

	// PendingTransition is set by a <TRA opcode and cleared once the host
	// observes and actions it via TakeTransition.
	PendingTransition *PendingTransition

	// PendingNumberPopups accumulates <NUM requests between draw calls;
	// DrainNumberPopups lets the host fold them into its own fx.NumberPopup
	// pool (the core doesn't own popup display lifetime, §1 rendering
	// boundary).
	PendingNumberPopups []*numberPopupRequest

	frameTime float64
}

// TakeTransition returns and clears any pending stage transition request,
// or nil if none is pending. A host calls this once per tick after Tick.
func (e *Engine) TakeTransition() *PendingTransition {
	t := e.PendingTransition
	e.PendingTransition = nil
	return t
}

// DrainNumberPopups returns and clears all <NUM requests queued since the
// last call.
func (e *Engine) DrainNumberPopups() []*numberPopupRequest {
	p := e.PendingNumberPopups
	e.PendingNumberPopups = nil
	return p
}

// New constructs an Engine around the given constants and RNG seeds. The
// stage/scripts/players are attached separately via NewGame/LoadGame since
// §6 draws a hard line between "engine exists" and "a game is in
// progress" (the title/stage-select screens run with no active map).
func New(consts *constants.EngineConstants, gameSeed, effectSeed int32) *Engine {
	return &Engine{
		State:       state.New(consts, gameSeed, effectSeed),
		NPCs:        npc.NewList(),
		Dispatch:    npc.DefaultDispatch(),
		Bullets:     bullet.NewList(),
		Carets:      caret.NewList(),
		BulletTable: bullet.Table{},
		Sound:       audio.NullManager{},
	}
}

// NewGame resets all per-run state and enters the constants-configured
// new-game stage/event (game_consts.new_game_stage/new_game_event),
// matching the source's State::new_game.
func (e *Engine) NewGame(st *stage.Stage, scripts Scripts) {
	e.Stage = st
	e.Scripts = scripts
	e.NPCs = npc.NewList()
	e.Bullets = bullet.NewList()
	e.Carets = caret.NewList()
	e.CameraFocus = nil
	e.PendingTransition = nil
	e.State.EnterStage()
	if st != nil && st.Map != nil {
		e.Water = water.Initialize(st.Map, st.Data.BackgroundType)
	}
	if e.Scripts.Global != nil {
		_ = e.Scripts.Global.Start(e.State.Constants.Game.NewGameEvent)
	}
	e.wireScriptHooks()
}

// LoadGame reconstructs player state from a decoded save record, applying
// it after the stage's implicit "load" event the way the source re-enters
// the TSC VM at the saved map (§4.7).
func (e *Engine) LoadGame(rec *save.Record, st *stage.Stage, scripts Scripts, consts *constants.PlayerConsts) *GameError {
	if rec == nil {
		return Wrap(ErrInvalidValue, "nil save record", nil)
	}
	e.NewGame(st, scripts)
	p := player.New(consts, fixedpoint.Subpixel(rec.PlayerX), fixedpoint.Subpixel(rec.PlayerY))
	p.VelX, p.VelY = fixedpoint.Subpixel(rec.PlayerVelX), fixedpoint.Subpixel(rec.PlayerVelY)
	p.Life = rec.Life
	p.MaxLife = rec.MaxLife
	e.State.Difficulty = rec.Difficulty
	for _, w := range rec.Weapons {
		p.Weapons = append(p.Weapons, player.WeaponSlot{WeaponID: w.WeaponID, Ammo: w.Ammo, MaxAmmo: w.MaxAmmo, Experience: w.Experience})
	}
	for _, id := range rec.InventoryItems {
		p.GiveItem(id)
	}
	e.Players[0] = p
	e.wireScriptHooks()
	if rec.GameFlags != nil {
		flagBytes := make([]byte, (rec.GameFlags.Len()+7)/8)
		rec.GameFlags.CopyTo(flagBytes)
		e.State.Flags.Game.CopyFrom(flagBytes)
	}
	return nil
}

// SaveGame captures the current simulation state into a save record. The
// caller encodes it with internal/save.Encode; engine only knows how to
// read its own subsystems, not the on-disk byte layout (§4.7 separation).
func (e *Engine) SaveGame(slot int) *save.Record {
	rec := &save.Record{Difficulty: e.State.Difficulty}
	if p := e.Players[0]; p != nil {
		rec.PlayerX, rec.PlayerY = int32(p.X), int32(p.Y)
		rec.PlayerVelX, rec.PlayerVelY = int32(p.VelX), int32(p.VelY)
		rec.Life, rec.MaxLife = p.Life, p.MaxLife
		for _, w := range p.Weapons {
			rec.Weapons = append(rec.Weapons, save.WeaponRecord{
				WeaponID: w.WeaponID, Level: uint8(w.Level()), Experience: w.Experience,
				MaxAmmo: w.MaxAmmo, Ammo: w.Ammo,
			})
		}
		if p.Items != nil {
			for id := 0; id < player.ItemSlotCount; id++ {
				if p.Items.Get(id) {
					rec.InventoryItems = append(rec.InventoryItems, uint16(id))
				}
			}
		}
	}
	gameFlags := bitflags.New(bitflags.GameFlagCount, "game_flags")
	flagBytes := make([]byte, (bitflags.GameFlagCount+7)/8)
	e.State.Flags.Game.CopyTo(flagBytes)
	gameFlags.CopyFrom(flagBytes)
	rec.GameFlags = gameFlags
	return rec
}

// FeedInput attaches a controller for player index 0 or 1 (two-player
// support is optional; player 2 may be nil, §3 Player).
func (e *Engine) FeedInput(playerIndex int, c input.Controller) {
	if playerIndex < 0 || playerIndex >= len(e.Controllers) {
		return
	}
	e.Controllers[playerIndex] = c
}

// ReloadResources is a host-facing no-op at the core level: the core
// never owns textures/samples itself (§1 "opaque readers"), so reloading
// them is entirely the host's responsibility. It exists only so the core
// exposes the full §6 surface for the host to call.
func (e *Engine) ReloadResources() {}

// Tick advances the simulation exactly one fixed step, in the order fixed
// by §4.1: TSC step (may suspend) → if simulation enabled: controller
// triggers → NPC AI+physics → bullets → player physics/collision →
// carets → water → camera.
func (e *Engine) Tick() error {
	e.State.Tick()

	if err := e.Scripts.Tick(); err != nil {
		return Wrap(ErrParse, "tsc step failed", err)
	}

	simulating := e.State.Control.TickWorld && !e.Scripts.Suspended()
	if simulating {
		for _, c := range e.Controllers {
			if c != nil {
				c.UpdateTrigger()
			}
		}

		if e.Stage != nil && e.Stage.Map != nil {
			ctx := &npc.TickContext{List: e.NPCs, EffectRNG: e.State.EffectRNG, Carets: e.Carets}
			if p := e.livePlayer(); p != nil {
				ctx.Player = npcPlayerView{p: p}
			}
			e.NPCs.Tick(ctx, e.Dispatch)
			e.NPCs.Each(func(n *npc.NPC) {
				n.DisplayX, n.DisplayY = n.X, n.Y
				npc.Integrate(n, e.Stage.Map)
			})

			e.Bullets.Tick(e.Stage.Map)

			for i, p := range e.Players {
				if p == nil {
					continue
				}
				physics := &e.State.Constants.Player
				dx := p.VelX
				c := e.Controllers[i]
				if c != nil {
					dx = fixedpoint.Subpixel(c.MoveAnalogX() * float64(physics.AirPhysics.MaxMove))
				}
				p.Integrate(e.Stage.Map, physics, physics.AirPhysics.GravityAir, dx, p.VelY)
				p.TickInvincibility()
			}
		}
	}

	// Carets animate regardless of suspension (§4.3 suspension contract:
	// "carets still animate, camera still interpolates for draw" even
	// while a <MSG box or cutscene halts the rest of the tick), so this
	// call sits outside the simulating gate above. Ordered after the
	// collision pass and before water, per §4.1's "collision pass → carets
	// tick → water columns tick".
	e.Carets.Tick()

	if simulating && e.Water != nil {
		e.Water.Tick()
	}

	if e.Stage != nil && e.Stage.Map != nil {
		var target frame.Target
		if e.CameraFocus != nil {
			target = *e.CameraFocus
		} else if p := e.livePlayer(); p != nil {
			target = p
		}
		if target != nil {
			e.State.Camera.Update(target)
		}
		viewW := fixedpoint.FromPixels(320)
		viewH := fixedpoint.FromPixels(240)
		e.State.Camera.Clamp(
			fixedpoint.Subpixel(e.Stage.Map.Width)*e.Stage.Map.TileSize*0x200,
			fixedpoint.Subpixel(e.Stage.Map.Height)*e.Stage.Map.TileSize*0x200,
			viewW, viewH,
		)
	}

	return nil
}

// npcPlayerView adapts *player.Player to npc.PlayerView. It exists as a
// separate type because Player exposes Direction as a field, not a
// method, so it cannot satisfy the interface directly.
type npcPlayerView struct{ p *player.Player }

func (v npcPlayerView) Position() (x, y fixedpoint.Subpixel) { return v.p.Position() }
func (v npcPlayerView) Direction() fixedpoint.Direction      { return v.p.Direction }

func (e *Engine) livePlayer() *player.Player {
	for _, p := range e.Players {
		if p != nil {
			return p
		}
	}
	return nil
}

// DrawState is the frame-agnostic snapshot a rendering host reads once
// per rendered frame (§1 "the core calls a frame-agnostic draw
// interface"); it carries interpolation-ready data but no draw calls —
// the core never touches pixels.
type DrawState struct {
	FrameTime float64
	CameraX, CameraY fixedpoint.Subpixel
	NPCCount, BulletCount, CaretCount int
}

// Draw builds the read-only snapshot for frameTime ∈ [0,1), the fraction
// of the next tick elapsed (§4.5). It performs no rendering itself.
func (e *Engine) Draw(frameTime float64) DrawState {
	e.frameTime = frameTime
	camX, camY := e.State.Camera.ApplyShake(e.State.EffectRNG)
	return DrawState{
		FrameTime:   frameTime,
		CameraX:     camX,
		CameraY:     camY,
		NPCCount:    e.NPCs.Count(),
		BulletCount: e.Bullets.Count(),
		CaretCount:  e.Carets.Count(),
	}
}
