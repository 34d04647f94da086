package main

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

func testModel(t *testing.T) *model {
	t.Helper()
	cfg := DefaultConfig()
	m := newModel(cfg)
	m.now = func() time.Time { return time.Date(2026, 8, 29, 12, 0, 0, 0, time.UTC) }
	m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	return m
}

func TestModelStartupRevealsTopOfPage(t *testing.T) {
	m := testModel(t)

	hero := find(m.page.root, "#hero-typed")
	if hero == nil {
		t.Fatal("missing hero node")
	}
	if !hero.hasClass("visible") {
		t.Error("expected the hero to reveal on the startup pass")
	}

	// Cards far below the fold stay hidden until scrolled to.
	cards := findAll(find(m.page.root, "#projects"), "card")
	hidden := 0
	for _, c := range cards {
		if !c.hasClass("visible") {
			hidden++
		}
	}
	if hidden == 0 {
		t.Error("expected below-the-fold cards to stay hidden at startup")
	}
}

func TestModelScrollTriggersObserversOnce(t *testing.T) {
	m := testModel(t)
	// Shrink the window so the skills section sits below the fold.
	m.Update(tea.WindowSizeMsg{Width: 100, Height: 8})
	skills := find(m.page.root, "#skills")

	before := len(m.gauges.watched)
	if before == 0 {
		t.Fatal("expected unfired gauges below the fold")
	}
	m.vp.SetYOffset(skills.top)
	m.afterScroll()
	after := len(m.gauges.watched)
	if after >= before {
		t.Fatal("expected scrolling the skills section into view to fire gauges")
	}

	// Leaving and returning must not re-fire anything.
	m.vp.SetYOffset(0)
	m.afterScroll()
	m.vp.SetYOffset(skills.top)
	m.afterScroll()
	if len(m.gauges.watched) != after {
		t.Error("expected gauges to stay unobserved after their first fire")
	}
}

func TestModelNavScrolledState(t *testing.T) {
	m := testModel(t)
	if m.scrolled {
		t.Fatal("expected unscrolled state at the top")
	}

	m.vp.SetYOffset(navScrollThreshold + 1)
	m.scanNav()
	if !m.scrolled {
		t.Error("expected the scrolled state past the threshold")
	}

	m.vp.SetYOffset(navScrollThreshold)
	m.scanNav()
	if m.scrolled {
		t.Error("expected the scrolled state to clear at the threshold")
	}
}

func TestModelActiveSectionFollowsScroll(t *testing.T) {
	m := testModel(t)

	m.scanNav()
	if m.active != "home" {
		t.Fatalf("expected home active at the top, got %q", m.active)
	}

	contact := find(m.page.root, "#contact")
	m.vp.SetYOffset(contact.top)
	m.scanNav()
	if m.active != "contact" {
		t.Fatalf("expected contact active at its offset, got %q", m.active)
	}
}

func TestModelMenuLocksScroll(t *testing.T) {
	m := testModel(t)
	m.vp.SetYOffset(10)

	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'m'}})
	if !m.menuOpen {
		t.Fatal("expected the menu to open")
	}

	before := m.vp.YOffset
	m.Update(tea.MouseMsg{Action: tea.MouseActionPress, Button: tea.MouseButtonWheelDown})
	if m.vp.YOffset != before {
		t.Error("expected page scroll to be locked while the menu is open")
	}

	m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if m.menuOpen {
		t.Error("expected esc to close the menu")
	}
}

func TestModelMenuSelectionScrolls(t *testing.T) {
	m := testModel(t)
	m.reduced = true // selection jumps instantly under reduced motion

	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'m'}})
	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'j'}})
	m.Update(tea.KeyMsg{Type: tea.KeyEnter})

	if m.menuOpen {
		t.Fatal("expected selecting a link to close the menu")
	}
	about := find(m.page.root, "#about")
	if m.vp.YOffset != about.top-headerHeight {
		t.Errorf("expected jump to about (offset %d), got %d", about.top-headerHeight, m.vp.YOffset)
	}
}

func TestModelFormSubmitLifecycle(t *testing.T) {
	m := testModel(t)
	m.form.inputs[0].SetValue("Zach")
	m.form.inputs[1].SetValue("foo@bar.com")
	m.form.inputs[2].SetValue("hello there")

	cmd := m.submitForm()
	if cmd == nil {
		t.Fatal("expected a scheduled send for a valid submit")
	}
	if !m.form.sending {
		t.Fatal("expected the sending state")
	}

	m.Update(formSentMsg{})
	if m.form.sending {
		t.Error("expected the control restored after the simulated send")
	}
	if m.form.note == "" {
		t.Error("expected the success indicator after the send")
	}
	if m.form.inputs[0].Value() != "" {
		t.Error("expected the form to reset after the send")
	}

	m.Update(formNoteHideMsg{})
	if m.form.note != "" {
		t.Error("expected the success indicator to hide")
	}
}

func TestModelFormInvalidSubmitSchedulesNothing(t *testing.T) {
	m := testModel(t)
	m.form.inputs[1].SetValue("foo@bar")

	if cmd := m.submitForm(); cmd != nil {
		t.Fatal("expected no send for an invalid submit")
	}
	if m.form.focus != 0 {
		t.Errorf("expected focus on the first invalid field, got %d", m.form.focus)
	}
}

func TestModelCounterMessageChain(t *testing.T) {
	m := testModel(t)
	stat := find(m.page.root, "#stat-0")
	c := m.counters[stat]
	if c == nil {
		t.Fatal("missing counter for stat-0")
	}

	m.Update(counterTickMsg{stat})
	if c.current == 0 {
		t.Error("expected the counter to advance on its tick")
	}
	for i := 0; i < 100; i++ {
		m.Update(counterTickMsg{stat})
	}
	if c.current != c.target {
		t.Errorf("expected the counter to clamp at %d, got %d", c.target, c.current)
	}
}

func TestModelStaggeredRevealMessage(t *testing.T) {
	m := testModel(t)
	card := findAll(find(m.page.root, "#projects"), "card")[1]
	if card.hasClass("visible") {
		t.Skip("layout put the card above the fold")
	}

	m.Update(revealNowMsg{card})
	if !card.hasClass("visible") {
		t.Error("expected the staggered reveal to mark the node visible")
	}
}

func TestModelBackToTop(t *testing.T) {
	m := testModel(t)
	if m.backToTopVisible() {
		t.Fatal("indicator must be hidden at the top")
	}

	m.vp.SetYOffset(m.vp.Height + 1)
	if !m.backToTopVisible() {
		t.Fatal("expected the indicator past one viewport height")
	}

	m.reduced = true
	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'t'}})
	if m.vp.YOffset != 0 {
		t.Errorf("expected back-to-top to land at 0, got %d", m.vp.YOffset)
	}
}

func TestModelMouseMotionDrivesCursor(t *testing.T) {
	m := testModel(t)
	m.Update(tea.MouseMsg{Action: tea.MouseActionMotion, Button: tea.MouseButtonNone, X: 12, Y: 8})
	if !m.cursor.visible {
		t.Fatal("expected the cursor to appear on motion")
	}
	if m.cursor.dotX != 12 || m.cursor.dotY != 8 {
		t.Error("expected the dot at the pointer cell")
	}

	m.Update(tea.BlurMsg{})
	if m.cursor.visible {
		t.Error("expected blur to hide the cursor")
	}
	m.Update(tea.FocusMsg{})
	if !m.cursor.visible {
		t.Error("expected focus to show the cursor")
	}
}

func TestModelReducedMotionStartsTerminal(t *testing.T) {
	cfg := DefaultConfig()
	cfg.ReducedMotion = true
	m := newModel(cfg)
	m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})

	for _, n := range findAll(m.page.root, ".reveal") {
		if !n.hasClass("visible") {
			t.Fatalf("expected every reveal node visible under reduced motion, %q is not", n.id)
		}
	}
	for _, c := range m.counters {
		if !c.done {
			t.Fatal("expected counters to start at their terminal value")
		}
	}
	if m.cursor.enabled {
		t.Error("expected the cursor follower to be disabled")
	}
	if m.typedText() != "> "+cfg.Phrases[0] {
		t.Errorf("expected the static first phrase, got %q", m.typedText())
	}
}

func TestModelViewRenders(t *testing.T) {
	m := testModel(t)
	out := m.View()
	if out == "" {
		t.Fatal("expected view output")
	}

	m.menuOpen = true
	if m.View() == out {
		t.Error("expected the menu overlay to change the frame")
	}
}
