package main

const (
	ringEase       = 0.14
	dotGlyph       = "•"
	ringGlyphSmall = "◦"
	ringGlyphLarge = "○"
)

// cursorFollower mirrors the site's two-part custom cursor: the dot snaps to
// the pointer on every motion event, while the ring eases toward it by 14%
// of the remaining distance per frame. The ring position is kept in floats
// so sub-cell progress survives between frames; it converges asymptotically
// and never formally terminates.
type cursorFollower struct {
	enabled bool
	visible bool

	dotX, dotY   int
	ringX, ringY float64
	hovering     bool
}

func newCursorFollower(enabled bool) *cursorFollower {
	return &cursorFollower{enabled: enabled, ringX: -1, ringY: -1}
}

// Move records a pointer position. The dot moves immediately.
func (c *cursorFollower) Move(x, y int) {
	if !c.enabled {
		return
	}
	c.dotX, c.dotY = x, y
	c.visible = true
	if c.ringX < 0 {
		c.ringX, c.ringY = float64(x), float64(y)
	}
}

// Frame advances the ring one animation frame toward the dot.
func (c *cursorFollower) Frame() {
	if !c.enabled || !c.visible {
		return
	}
	c.ringX += (float64(c.dotX) - c.ringX) * ringEase
	c.ringY += (float64(c.dotY) - c.ringY) * ringEase
}

// Hide is called on terminal blur, Show on focus; the site fades both
// halves out when the pointer leaves the viewport.
func (c *cursorFollower) Hide() { c.visible = false }
func (c *cursorFollower) Show() {
	if c.enabled {
		c.visible = true
	}
}

// SetHover marks the pointer as being over an interactive element, which
// renders the ring enlarged.
func (c *cursorFollower) SetHover(on bool) { c.hovering = on }

// RingCell returns the ring's nearest terminal cell.
func (c *cursorFollower) RingCell() (int, int) {
	return int(c.ringX + 0.5), int(c.ringY + 0.5)
}

func (c *cursorFollower) glyph() string {
	if c.hovering {
		return ringGlyphLarge
	}
	return ringGlyphSmall
}
