package main

import (
	"strconv"
	"strings"
	"time"
)

const (
	revealThreshold = 0.2
	gaugeThreshold  = 0.4
	revealStagger   = 90 * time.Millisecond
	counterStep     = 38 * time.Millisecond
	counterDivisor  = 35
)

// intersector is the terminal analogue of an IntersectionObserver: it tracks
// a set of nodes and reports each one exactly once, the first time its
// visible fraction crosses the threshold. Fired nodes are unobserved, so
// scrolling an element back out and in again never re-triggers it.
type intersector struct {
	threshold float64
	watched   []*node
}

func newIntersector(threshold float64, nodes []*node) *intersector {
	return &intersector{threshold: threshold, watched: nodes}
}

// check returns the nodes whose visible fraction within the viewport window
// [yOffset, yOffset+viewHeight) meets the threshold, removing them from the
// watch set.
func (o *intersector) check(yOffset, viewHeight int) []*node {
	var fired []*node
	var keep []*node
	for _, n := range o.watched {
		if visibleFraction(n, yOffset, viewHeight) >= o.threshold {
			fired = append(fired, n)
		} else {
			keep = append(keep, n)
		}
	}
	o.watched = keep
	return fired
}

// unwatch drops a node that was satisfied some other way, e.g. a staggered
// sibling reveal.
func (o *intersector) unwatch(target *node) {
	var keep []*node
	for _, n := range o.watched {
		if n != target {
			keep = append(keep, n)
		}
	}
	o.watched = keep
}

func (o *intersector) watching(target *node) bool {
	for _, n := range o.watched {
		if n == target {
			return true
		}
	}
	return false
}

func visibleFraction(n *node, yOffset, viewHeight int) float64 {
	if n.height <= 0 {
		return 0
	}
	top, bottom := n.top, n.top+n.height
	winTop, winBottom := yOffset, yOffset+viewHeight
	overlapTop := max(top, winTop)
	overlapBottom := min(bottom, winBottom)
	if overlapBottom <= overlapTop {
		return 0
	}
	return float64(overlapBottom-overlapTop) / float64(n.height)
}

// staggerSiblings returns the not-yet-visible reveal siblings of n within
// the same parent, in document order. The caller schedules each one with an
// incremental 90ms delay and unwatches it so the observer cannot fire it a
// second time.
func staggerSiblings(n *node, o *intersector) []*node {
	var out []*node
	for _, sib := range n.siblings() {
		if sib.hasClass("reveal") && !sib.hasClass("visible") && o.watching(sib) {
			out = append(out, sib)
		}
	}
	return out
}

// counterAnim animates a stat from 0 to its parsed integer target in steps
// of ceil(target/35) every 38ms, clamping at the target and preserving any
// non-digit suffix like "+" or "%".
type counterAnim struct {
	target  int
	step    int
	current int
	suffix  string
	done    bool
}

func newCounterAnim(text string) *counterAnim {
	digits := text
	suffix := ""
	for i, r := range text {
		if r < '0' || r > '9' {
			digits, suffix = text[:i], text[i:]
			break
		}
	}
	target, err := strconv.Atoi(strings.TrimSpace(digits))
	if err != nil || target <= 0 {
		return &counterAnim{suffix: suffix, done: true}
	}
	step := (target + counterDivisor - 1) / counterDivisor
	return &counterAnim{target: target, step: step, suffix: suffix}
}

// Tick advances the counter one step. It reports false once the target has
// been reached and no further ticks should be scheduled.
func (c *counterAnim) Tick() bool {
	if c.done {
		return false
	}
	c.current += c.step
	if c.current >= c.target {
		c.current = c.target
		c.done = true
	}
	return !c.done
}

// Finish jumps straight to the target, for reduced motion.
func (c *counterAnim) Finish() {
	c.current = c.target
	c.done = true
}

func (c *counterAnim) Text() string {
	return strconv.Itoa(c.current) + c.suffix
}
