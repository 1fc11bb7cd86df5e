package engine

import (
	"testing"

	"github.com/hearthlab/cavern-core/internal/caret"
	"github.com/hearthlab/cavern-core/internal/constants"
	"github.com/hearthlab/cavern-core/internal/fixedpoint"
	"github.com/hearthlab/cavern-core/internal/player"
	"github.com/hearthlab/cavern-core/internal/stage"
	"github.com/hearthlab/cavern-core/internal/tsc"
)

func flatStage(w, h int) *stage.Stage {
	grid := &stage.TileGrid{Width: w, Height: h, Tiles: make([]byte, w*h)}
	attrs := &stage.AttrBank{}
	return &stage.Stage{
		Data: stage.StageData{TileSize: 16},
		Map:  &stage.Map{Width: w, Height: h, TileSize: 16, Foreground: grid, Attrs: attrs},
	}
}

func newTestEngine() *Engine {
	consts := constants.Build(constants.VariantFreeware)
	return New(consts, 1, 2)
}

func TestNewGameResetsRunState(t *testing.T) {
	e := newTestEngine()
	st := flatStage(20, 15)
	e.NewGame(st, Scripts{})

	if e.Stage != st {
		t.Fatalf("NewGame did not attach stage")
	}
	if e.NPCs.Count() != 0 || e.Bullets.Count() != 0 || e.Carets.Count() != 0 {
		t.Fatalf("NewGame should start with empty entity lists")
	}
}

func TestTickAdvancesWithNoPlayer(t *testing.T) {
	e := newTestEngine()
	e.NewGame(flatStage(20, 15), Scripts{})

	for i := 0; i < 5; i++ {
		if err := e.Tick(); err != nil {
			t.Fatalf("Tick() error at step %d: %v", i, err)
		}
	}
	if e.State.TickCount != 5 {
		t.Fatalf("TickCount = %d, want 5", e.State.TickCount)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	e := newTestEngine()
	st := flatStage(20, 15)
	e.NewGame(st, Scripts{})

	rec := e.SaveGame(0)
	if rec.GameFlags == nil {
		t.Fatalf("SaveGame produced a record with nil GameFlags")
	}
	e.State.Flags.Game.Set(42, true)

	rec2 := e.SaveGame(0)
	if !rec2.GameFlags.Get(42) {
		t.Fatalf("SaveGame did not capture flag 42")
	}

	consts := &e.State.Constants.Player
	if err := e.LoadGame(rec2, st, Scripts{}, consts); err != nil {
		t.Fatalf("LoadGame: %v", err)
	}
	if !e.State.Flags.Game.Get(42) {
		t.Fatalf("LoadGame did not restore flag 42")
	}
	if e.Players[0] == nil {
		t.Fatalf("LoadGame did not attach a player")
	}
}

func TestSaveLoadRoundTripPreservesWeaponsAndItems(t *testing.T) {
	e := newTestEngine()
	st := flatStage(20, 15)
	e.NewGame(st, Scripts{})

	consts := &e.State.Constants.Player
	e.Players[0] = player.New(consts, 0, 0)
	e.Players[0].GiveWeapon(2, 50)
	e.Players[0].GiveItem(7)

	rec := e.SaveGame(0)
	if len(rec.Weapons) != 1 || rec.Weapons[0].WeaponID != 2 || rec.Weapons[0].Ammo != 50 {
		t.Fatalf("expected saved weapon 2/50, got %+v", rec.Weapons)
	}
	found := false
	for _, id := range rec.InventoryItems {
		if id == 7 {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected item 7 in saved inventory, got %+v", rec.InventoryItems)
	}

	if err := e.LoadGame(rec, st, Scripts{}, consts); err != nil {
		t.Fatalf("LoadGame: %v", err)
	}
	if !e.Players[0].HasWeapon(2) {
		t.Fatal("expected weapon 2 restored after load")
	}
	if !e.Players[0].HasItem(7) {
		t.Fatal("expected item 7 restored after load")
	}
}

func TestScriptHooksWiringGrantsItemThroughVM(t *testing.T) {
	e := newTestEngine()
	st := flatStage(20, 15)

	programs, err := tsc.Parse("#0001\n<IT+0003<END")
	if err != nil {
		t.Fatal(err)
	}
	scene := tsc.New(tsc.SelectorScene, programs, e.State.Flags)
	e.NewGame(st, Scripts{Scene: scene})

	consts := &e.State.Constants.Player
	e.Players[0] = player.New(consts, 0, 0)
	e.wireScriptHooks()

	if err := scene.Start(1); err != nil {
		t.Fatal(err)
	}
	if err := scene.Tick(); err != nil {
		t.Fatal(err)
	}
	if !e.Players[0].HasItem(3) {
		t.Fatal("expected <IT+ to reach the live player through wired hooks")
	}
}

func TestCaretsTickWhileScriptsSuspended(t *testing.T) {
	e := newTestEngine()
	st := flatStage(20, 15)

	programs, err := tsc.Parse("#0001\n<MSGHi<END")
	if err != nil {
		t.Fatal(err)
	}
	scene := tsc.New(tsc.SelectorScene, programs, e.State.Flags)
	e.NewGame(st, Scripts{Scene: scene})

	if !e.Carets.Create(0, 0, caret.KindGunshotSmoke, fixedpoint.Right) {
		t.Fatal("expected caret arena to accept a spawn")
	}
	scene.Suspend = true
	if !e.Scripts.Suspended() {
		t.Fatal("expected Scripts.Suspended() to report true")
	}

	if err := e.Tick(); err != nil {
		t.Fatalf("Tick: %v", err)
	}

	var counter uint16
	e.Carets.Each(func(c *caret.Caret) { counter = c.AnimCounter })
	if counter == 0 {
		t.Fatal("expected caret to animate even while scripts are suspended")
	}
}

func TestDrawIsSideEffectFree(t *testing.T) {
	e := newTestEngine()
	e.NewGame(flatStage(20, 15), Scripts{})
	before := e.State.TickCount
	_ = e.Draw(0.5)
	if e.State.TickCount != before {
		t.Fatalf("Draw must not advance simulation state")
	}
}
