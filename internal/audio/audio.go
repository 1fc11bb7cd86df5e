// Package audio defines the opaque SoundManager boundary the core issues
// play_sfx/play_song calls through (§1 "Audio engine ... the core issues
// play_sfx(id), play_song(id) and sample parameter uploads") and ships one
// concrete, non-authoritative implementation for development and tests.
// The real Organya/PixTone/ogg engine is explicitly out of scope; nothing
// here decodes or synthesizes the original sample formats.
package audio

// SoundManager is the interface the simulation core calls into. It never
// blocks: enqueue calls return immediately and the actual mixing happens
// on audio's own thread/goroutine, matching §5's "no shared mutable state
// with the audio thread is exposed to gameplay logic".
type SoundManager interface {
	PlaySfx(id uint16)
	PlaySong(id uint16)
	StopSong()
	SetOrganyaParam(track int, volume, pan float64)
}

// NullManager discards every call; used when a host runs headless (the
// default for cmd/headless-sim) or in tests that don't care about audio.
type NullManager struct{}

func (NullManager) PlaySfx(uint16)                          {}
func (NullManager) PlaySong(uint16)                         {}
func (NullManager) StopSong()                                {}
func (NullManager) SetOrganyaParam(int, float64, float64)    {}

var _ SoundManager = NullManager{}
