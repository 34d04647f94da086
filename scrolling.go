package main

import (
	"math"
	"time"
)

const (
	// One terminal row stands in for roughly 20px of the page, so the
	// site's 60px navbar threshold becomes 3 rows.
	navScrollThreshold = 3
	navDebounce        = 20 * time.Millisecond
	smoothScrollTime   = 420 * time.Millisecond
	frameRate          = 30
	frameInterval      = time.Second / frameRate
)

// activeSection returns the id of the last section in document order whose
// top offset is at or above the scan line (YOffset plus 30% of the viewport
// height). Later sections deliberately overwrite earlier ones when several
// qualify. Returns "" when no section qualifies.
func activeSection(sections []*node, yOffset, viewHeight int) string {
	scan := yOffset + viewHeight*3/10
	current := ""
	for _, s := range sections {
		if s.top <= scan {
			current = s.id
		}
	}
	return current
}

// scrollAnim animates the viewport offset toward a target with an ease-out
// cubic curve. Step is fed frame ticks; it reports the new offset and
// whether the animation has finished.
type scrollAnim struct {
	from, to float64
	elapsed  time.Duration
	dur      time.Duration
	active   bool
}

func (a *scrollAnim) start(from, to int, dur time.Duration) {
	a.from, a.to = float64(from), float64(to)
	a.elapsed = 0
	a.dur = dur
	a.active = true
}

func (a *scrollAnim) step(dt time.Duration) (offset int, done bool) {
	if !a.active {
		return int(a.to), true
	}
	a.elapsed += dt
	if a.elapsed >= a.dur {
		a.active = false
		return int(a.to), true
	}
	t := float64(a.elapsed) / float64(a.dur)
	eased := 1 - math.Pow(1-t, 3)
	return int(math.Round(a.from + (a.to-a.from)*eased)), false
}
