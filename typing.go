package main

import "time"

const (
	typeSpeed   = 95 * time.Millisecond
	deleteSpeed = 55 * time.Millisecond
	phraseHold  = 2000 * time.Millisecond
)

// typer is the hero-line typewriter: types a phrase rune by rune, holds at
// the full phrase, deletes back to empty, then advances to the next phrase
// and repeats forever.
type typer struct {
	phrases  []string
	word     int
	char     int
	deleting bool
}

func newTyper(phrases []string) *typer {
	return &typer{phrases: phrases}
}

// Text returns the currently displayed portion of the active phrase.
func (t *typer) Text() string {
	if len(t.phrases) == 0 {
		return ""
	}
	runes := []rune(t.phrases[t.word])
	if t.char > len(runes) {
		t.char = len(runes)
	}
	return string(runes[:t.char])
}

// Advance steps the animation once and returns the delay until the next
// step. The returned delay is phraseHold exactly when a phrase has just
// been completed.
func (t *typer) Advance() time.Duration {
	if len(t.phrases) == 0 {
		return phraseHold
	}
	runes := []rune(t.phrases[t.word])

	if t.deleting {
		if t.char > 0 {
			t.char--
			return deleteSpeed
		}
		t.deleting = false
		t.word = (t.word + 1) % len(t.phrases)
		return typeSpeed
	}

	if t.char < len(runes) {
		t.char++
		if t.char == len(runes) {
			t.deleting = true
			return phraseHold
		}
		return typeSpeed
	}

	// Zero-length phrase: move straight on.
	t.word = (t.word + 1) % len(t.phrases)
	return typeSpeed
}
