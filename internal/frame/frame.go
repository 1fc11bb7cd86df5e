// Package frame implements the camera: target tracking with a wait
// divisor, screen-bounds clamping, and quake/super-quake shake, grounded
// on frame.rs's Frame::update / immediate_update.
package frame

import (
	"github.com/hearthlab/cavern-core/internal/fixedpoint"
	"github.com/hearthlab/cavern-core/internal/randgen"
)

// Target is anything the camera can track (the player, a cutscene focus
// point). X/Y are subpixel world coordinates.
type Target interface {
	CameraTarget() (x, y fixedpoint.Subpixel)
}

// PointTarget is a fixed camera focus point, the Target implementation
// used when update_target is a manual focus rather than a live entity
// (§3 Frame.update_target's Player/NPC/Boss union collapses to a single
// coordinate pair either way by the time Update reads it) — this is what
// TSC's <FOM/<FOB camera-focus opcodes hand the camera.
type PointTarget struct{ X, Y fixedpoint.Subpixel }

// CameraTarget implements Target.
func (p PointTarget) CameraTarget() (fixedpoint.Subpixel, fixedpoint.Subpixel) { return p.X, p.Y }

// Frame is the camera: its (X, Y) is the subpixel world position of the
// top-left corner of the viewport.
type Frame struct {
	X, Y fixedpoint.Subpixel

	// wait is the tracking smoothing divisor: each tick the camera closes
	// 1/wait of the remaining distance to its target, matching the
	// source's `self.x += (target_x - self.x) / self.wait`.
	wait int32

	shakeIntensity int32
	shakeTicks     int32
	shakeOffsetX   fixedpoint.Subpixel
	shakeOffsetY   fixedpoint.Subpixel
}

// New creates a camera with the given tracking smoothness. wait=1 snaps
// immediately; larger values lag more (the source defaults wait to 16).
func New(wait int32) *Frame {
	if wait <= 0 {
		wait = 16
	}
	return &Frame{wait: wait}
}

// Update advances the camera one tick toward target's position.
func (f *Frame) Update(target Target) {
	tx, ty := target.CameraTarget()
	f.X += (tx - f.X) / fixedpoint.Subpixel(f.wait)
	f.Y += (ty - f.Y) / fixedpoint.Subpixel(f.wait)
	f.tickShake()
}

// ImmediateUpdate snaps the camera directly onto target, used on stage
// transitions where tracking lag would show the wrong room momentarily.
func (f *Frame) ImmediateUpdate(target Target) {
	f.X, f.Y = target.CameraTarget()
	f.tickShake()
}

// Clamp restricts the camera's top-left corner so the viewport never shows
// past the stage bounds, given the stage size and viewport size in
// subpixels (§ camera "screen clamp").
func (f *Frame) Clamp(stageW, stageH, viewW, viewH fixedpoint.Subpixel) {
	maxX := stageW - viewW
	maxY := stageH - viewH
	if maxX < 0 {
		maxX = 0
	}
	if maxY < 0 {
		maxY = 0
	}
	if f.X < 0 {
		f.X = 0
	} else if f.X > maxX {
		f.X = maxX
	}
	if f.Y < 0 {
		f.Y = 0
	} else if f.Y > maxY {
		f.Y = maxY
	}
}

// Quake starts a screen shake of the given intensity for ticks frames.
// SuperQuake (a stronger preset) is just Quake with a larger intensity —
// the source distinguishes them only by the caller's chosen constant.
func (f *Frame) Quake(intensity int32, ticks int32) {
	if intensity > f.shakeIntensity {
		f.shakeIntensity = intensity
	}
	if ticks > f.shakeTicks {
		f.shakeTicks = ticks
	}
}

// shakeRange bounds the per-axis random jitter, matching the source's
// effect_rng.range(-0x300..0x300) before intensity scaling.
const shakeRange = 0x300

func (f *Frame) tickShake() {
	if f.shakeTicks <= 0 {
		f.shakeOffsetX, f.shakeOffsetY = 0, 0
		f.shakeIntensity = 0
		return
	}
	f.shakeTicks--
}

// ApplyShake rolls this tick's shake offset using effectRNG (the dedicated
// cosmetic-RNG stream, §8 invariant: shake must never consume game_rng) and
// returns the viewport origin including shake.
func (f *Frame) ApplyShake(effectRNG randgen.RNG) (x, y fixedpoint.Subpixel) {
	if f.shakeTicks <= 0 || f.shakeIntensity <= 0 {
		return f.X, f.Y
	}
	dx := effectRNG.Range(-shakeRange, shakeRange) * f.shakeIntensity / 4
	dy := effectRNG.Range(-shakeRange, shakeRange) * f.shakeIntensity / 4
	f.shakeOffsetX = fixedpoint.Subpixel(dx)
	f.shakeOffsetY = fixedpoint.Subpixel(dy)
	return f.X + f.shakeOffsetX, f.Y + f.shakeOffsetY
}

// Shaking reports whether a quake is currently in progress.
func (f *Frame) Shaking() bool { return f.shakeTicks > 0 }
