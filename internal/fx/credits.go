package fx

// IllustrationPhase is the end-credits illustration panel's fade state,
// ported from IllustrationState in credits.rs. The panel's horizontal
// slide offset in screen pixels is kept beside it in Credits.illustrationX.
type IllustrationPhase uint8

const (
	IllustrationHidden IllustrationPhase = iota
	IllustrationFadeIn
	IllustrationShown
	IllustrationFadeOut
)

// illustrationSlideSpeed matches the source's 40px/sec slide rate.
const illustrationSlideSpeed = 40.0

// illustrationHiddenX is the off-screen rest position a fade-out settles
// at before the phase flips to Hidden.
const illustrationHiddenX = -160.0

// CastLine is one line of the credits roll: a cast portrait plus the
// caption scrolling alongside it (CreditsVM's per-line record).
type CastLine struct {
	CastID int
	PosX   float64
	PosY   float64
	Text   string
}

// Credits drives the end-credits illustration fade and holds the
// currently-scrolling cast lines, ported from Credits in credits.rs
// (rendering, which the source interleaves directly into this type's
// draw method, stays in the engine's render boundary instead).
type Credits struct {
	Phase          IllustrationPhase
	illustrationX  float64
	Lines          []CastLine
}

// NewCredits returns a Credits state with the illustration hidden and no
// cast lines queued.
func NewCredits() *Credits { return &Credits{Phase: IllustrationHidden} }

// FadeIn starts the illustration panel sliding onto screen from the left.
func (c *Credits) FadeIn() {
	c.Phase = IllustrationFadeIn
	c.illustrationX = -160.0
}

// FadeOut starts the illustration panel sliding back off screen.
func (c *Credits) FadeOut() {
	c.Phase = IllustrationFadeOut
}

// IllustrationX returns the panel's current horizontal offset.
func (c *Credits) IllustrationX() float64 { return c.illustrationX }

// Tick advances the illustration fade by one tick's worth of slide
// distance, given the engine's current ticks-per-second (the source
// scales its per-draw-call update by frame_time instead; ticking once
// per simulation step keeps this deterministic like every other
// subsystem rather than frame-rate dependent).
func (c *Credits) Tick(tps float64) {
	if tps <= 0 {
		tps = 50
	}
	step := illustrationSlideSpeed / tps

	switch c.Phase {
	case IllustrationFadeIn:
		c.illustrationX += step
		if c.illustrationX >= 0.0 {
			c.illustrationX = 0
			c.Phase = IllustrationShown
		}
	case IllustrationFadeOut:
		c.illustrationX -= step
		if c.illustrationX <= illustrationHiddenX {
			c.illustrationX = illustrationHiddenX
			c.Phase = IllustrationHidden
		}
	}
}

// SetLines replaces the currently-scrolling cast roll.
func (c *Credits) SetLines(lines []CastLine) { c.Lines = lines }

// AdvanceScroll moves every cast line upward by dy, the credits screen's
// constant vertical scroll rate.
func (c *Credits) AdvanceScroll(dy float64) {
	for i := range c.Lines {
		c.Lines[i].PosY -= dy
	}
}
