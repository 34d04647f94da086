package main

import (
	"math"
	"testing"
)

func TestCursorDotSnapsRingEases(t *testing.T) {
	c := newCursorFollower(true)
	c.Move(10, 10)
	if c.dotX != 10 || c.dotY != 10 {
		t.Fatal("expected the dot to snap to the pointer")
	}
	// First movement seeds the ring at the pointer.
	if c.ringX != 10 || c.ringY != 10 {
		t.Fatal("expected the ring to start at the first pointer position")
	}

	c.Move(20, 10)
	c.Frame()
	want := 10 + (20-10)*ringEase
	if math.Abs(c.ringX-want) > 1e-9 {
		t.Fatalf("expected ring x %v after one frame, got %v", want, c.ringX)
	}

	// The ring converges toward the dot but never passes it.
	for i := 0; i < 200; i++ {
		c.Frame()
		if c.ringX > 20 {
			t.Fatalf("ring overshot the pointer: %v", c.ringX)
		}
	}
	if math.Abs(c.ringX-20) > 0.01 {
		t.Fatalf("expected ring to converge near 20, got %v", c.ringX)
	}
}

func TestCursorDisabledIgnoresInput(t *testing.T) {
	c := newCursorFollower(false)
	c.Move(5, 5)
	if c.visible {
		t.Fatal("a disabled cursor must never become visible")
	}
	c.Show()
	if c.visible {
		t.Fatal("Show must not enable a disabled cursor")
	}
}

func TestCursorBlurHidesFocusShows(t *testing.T) {
	c := newCursorFollower(true)
	c.Move(3, 3)
	c.Hide()
	if c.visible {
		t.Fatal("expected blur to hide the cursor")
	}
	c.Show()
	if !c.visible {
		t.Fatal("expected focus to show the cursor again")
	}
}

func TestCursorHoverEnlargesRing(t *testing.T) {
	c := newCursorFollower(true)
	if c.glyph() != ringGlyphSmall {
		t.Fatal("expected the small ring by default")
	}
	c.SetHover(true)
	if c.glyph() != ringGlyphLarge {
		t.Fatal("expected the enlarged ring while hovering")
	}
	c.SetHover(false)
	if c.glyph() != ringGlyphSmall {
		t.Fatal("expected the ring to shrink after hover ends")
	}
}
