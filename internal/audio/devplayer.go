package audio

import (
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

// devSampleRate matches the teacher's audio package default (48kHz,
// 100ms speaker buffer) rather than one of the original engine's lower
// vanilla-era rates, since this player exists for development/test
// playback, not bit-exact Organya reproduction.
const devSampleRate = beep.SampleRate(48000)

// sfxTone maps an sfx id to a short tone so a developer running the engine
// with a DevPlayer attached can actually hear something distinct per
// cue, without owning any of the original PixTone synthesis parameters
// (those stay entirely out of scope, §1).
func sfxTone(id uint16) (freqHz float64, duration time.Duration) {
	freqHz = 220.0 + float64(id%24)*40.0
	duration = 80 * time.Millisecond
	return
}

// songTone derives a held drone frequency per song id, just enough to
// tell "a song is playing" apart from silence during manual testing.
func songTone(id uint16) float64 {
	return 110.0 + float64(id%12)*20.0
}

// toneStreamer is a minimal sine-wave beep.Streamer, grounded on the
// teacher's audio/effects.go NewOscillator but trimmed to the one
// waveform this player needs.
type toneStreamer struct {
	freq   float64
	phase  float64
	sr     beep.SampleRate
	remain int // -1 means "play until stopped" (song drones)
}

func (t *toneStreamer) Stream(samples [][2]float64) (n int, ok bool) {
	step := t.freq / float64(t.sr)
	for i := range samples {
		if t.remain == 0 {
			return i, i > 0
		}
		v := math.Sin(2 * math.Pi * t.phase) * 0.2
		samples[i][0], samples[i][1] = v, v
		t.phase += step
		if t.phase >= 1 {
			t.phase -= 1
		}
		if t.remain > 0 {
			t.remain--
		}
		n++
	}
	return n, true
}

func (t *toneStreamer) Err() error { return nil }

// DevPlayer is a concrete SoundManager that actually emits audible tones
// through the system speaker via gopxl/beep, for development and manual
// QA — it satisfies the opaque interface §1/§6 describe without pulling
// in the real Organya/PixTone/ogg decoders the original engine uses.
type DevPlayer struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
	song        *beep.Ctrl
}

// NewDevPlayer constructs a DevPlayer with its mixer idle until Start.
func NewDevPlayer() *DevPlayer {
	return &DevPlayer{mixer: &beep.Mixer{}}
}

// Start initializes the speaker backend. Safe to call more than once; a
// headless test run that never calls Start gets PlaySfx/PlaySong calls
// that return without queueing anything.
func (d *DevPlayer) Start() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.initialized {
		return nil
	}
	if err := speaker.Init(devSampleRate, devSampleRate.N(100*time.Millisecond)); err != nil {
		return err
	}
	speaker.Play(d.mixer)
	d.initialized = true
	return nil
}

// PlaySfx enqueues a short one-shot tone for sfx id.
func (d *DevPlayer) PlaySfx(id uint16) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if !d.initialized {
		return
	}
	freq, dur := sfxTone(id)
	s := &toneStreamer{freq: freq, sr: devSampleRate, remain: devSampleRate.N(dur)}
	d.mixer.Add(s)
}

// PlaySong replaces any currently-drone with a held tone for song id.
func (d *DevPlayer) PlaySong(id uint16) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if !d.initialized {
		return
	}
	if d.song != nil {
		d.song.Paused = true
	}
	s := &toneStreamer{freq: songTone(id), sr: devSampleRate, remain: -1}
	ctrl := &beep.Ctrl{Streamer: s}
	d.song = ctrl
	d.mixer.Add(ctrl)
}

// StopSong silences the current song drone, if any.
func (d *DevPlayer) StopSong() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.song != nil {
		d.song.Paused = true
	}
}

// SetOrganyaParam is a no-op here: the dev player has no multi-track
// Organya mix to steer, only a single drone per song id.
func (d *DevPlayer) SetOrganyaParam(track int, volume, pan float64) {}

var _ SoundManager = (*DevPlayer)(nil)
