package main

import (
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	xansi "github.com/charmbracelet/x/ansi"
)

const (
	mobileBreakpoint = 72
	headerHeight     = 1
	footerHeight     = 1
)

type keyMap struct {
	quit        key.Binding
	down        key.Binding
	up          key.Binding
	top         key.Binding
	bottom      key.Binding
	nextSection key.Binding
	prevSection key.Binding
	menu        key.Binding
	backToTop   key.Binding
	toggleHelp  key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		down: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("j/↓", "scroll down"),
		),
		up: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("k/↑", "scroll up"),
		),
		top: key.NewBinding(
			key.WithKeys("g", "home"),
			key.WithHelp("g", "top"),
		),
		bottom: key.NewBinding(
			key.WithKeys("G", "end"),
			key.WithHelp("G", "bottom"),
		),
		nextSection: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next section"),
		),
		prevSection: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("shift+tab", "prev section"),
		),
		menu: key.NewBinding(
			key.WithKeys("m"),
			key.WithHelp("m", "menu"),
		),
		backToTop: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "back to top"),
		),
		toggleHelp: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.down, k.up, k.nextSection, k.menu, k.toggleHelp, k.quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.down, k.up, k.top, k.bottom},
		{k.nextSection, k.prevSection, k.menu, k.backToTop},
		{k.toggleHelp, k.quit},
	}
}

// Messages driving the timed behaviors.
type (
	frameMsg        time.Time
	navScanMsg      struct{}
	typeTickMsg     struct{}
	revealNowMsg    struct{ target *node }
	counterTickMsg  struct{ target *node }
	formSentMsg     struct{}
	formNoteHideMsg struct{}
)

type navHit struct {
	startX, endX int
	id           string
}

type model struct {
	cfg   *Config
	th    theme
	page  *page
	keys  keyMap
	help  help.Model
	vp    viewport.Model
	ready bool

	width, height int

	// send delivers debounced work back into the event loop. Set by main
	// after the program is constructed; tests set it directly.
	send      func(tea.Msg)
	scrollDeb *debounced[int]

	scrolled bool
	active   string
	navHits  []navHit

	menuOpen bool
	menuIdx  int

	typer    *typer
	cursor   *cursorFollower
	anim     scrollAnim
	reveals  *intersector
	gauges   *intersector
	bars     map[*node]*progress.Model
	counters map[*node]*counterAnim
	form     *contactForm
	spin     spinner.Model
	hovered  *node

	showHelp bool
	reduced  bool
	now      func() time.Time
	md       *glamour.TermRenderer
}

func newModel(cfg *Config) *model {
	p := buildPage()
	m := &model{
		cfg:      cfg,
		th:       newTheme(cfg.Accent),
		page:     p,
		keys:     newKeyMap(),
		help:     help.New(),
		typer:    newTyper(cfg.Phrases),
		cursor:   newCursorFollower(cfg.Mouse && !cfg.ReducedMotion),
		reduced:  cfg.ReducedMotion,
		now:      time.Now,
		bars:     map[*node]*progress.Model{},
		counters: map[*node]*counterAnim{},
		send:     func(tea.Msg) {},
	}

	m.reveals = newIntersector(revealThreshold, findAll(p.root, ".reveal"))
	gaugeNodes := append(findAll(p.root, string(kindBar)), findAll(p.root, string(kindStat))...)
	m.gauges = newIntersector(gaugeThreshold, gaugeNodes)

	for _, n := range findAll(p.root, string(kindBar)) {
		bar := progress.New(progress.WithGradient(string(m.th.accent), "252"), progress.WithWidth(30))
		m.bars[n] = &bar
	}
	for _, n := range findAll(p.root, string(kindStat)) {
		m.counters[n] = newCounterAnim(n.text)
	}

	m.form = newContactForm(findAll(p.root, string(kindField)))
	m.spin = spinner.New(spinner.WithSpinner(spinner.Dot))

	m.scrollDeb = newDebounced(navDebounce, func(int) {
		m.send(navScanMsg{})
	})

	if r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(80)); err == nil {
		m.md = r
	}

	if m.reduced {
		// Accessibility override: everything lands in its terminal state
		// immediately and the decorative animation never starts.
		for _, n := range findAll(p.root, ".reveal") {
			n.addClass("visible")
		}
		for _, c := range m.counters {
			c.Finish()
		}
	}

	return m
}

func (m *model) Init() tea.Cmd {
	cmds := []tea.Cmd{m.spin.Tick}
	if !m.reduced {
		cmds = append(cmds, tea.Tick(typeSpeed, func(time.Time) tea.Msg { return typeTickMsg{} }))
	}
	if m.cursor.enabled {
		cmds = append(cmds, frameTick())
	}
	return tea.Batch(cmds...)
}

func frameTick() tea.Cmd {
	return tea.Tick(frameInterval, func(t time.Time) tea.Msg { return frameMsg(t) })
}

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.vp = viewport.New(msg.Width, max(1, msg.Height-headerHeight-footerHeight))
		m.ready = true
		m.syncDocument()
		// Startup pass: the site runs its scroll handler once on load.
		m.scanNav()
		cmds = append(cmds, m.checkObservers()...)

	case tea.KeyMsg:
		if cmd := m.handleKey(msg); cmd != nil {
			cmds = append(cmds, cmd)
		}

	case tea.MouseMsg:
		if cmd := m.handleMouse(msg); cmd != nil {
			cmds = append(cmds, cmd)
		}

	case tea.FocusMsg:
		m.cursor.Show()

	case tea.BlurMsg:
		m.cursor.Hide()

	case frameMsg:
		m.cursor.Frame()
		if m.anim.active {
			offset, _ := m.anim.step(frameInterval)
			m.vp.SetYOffset(offset)
			m.onScroll()
			cmds = append(cmds, m.checkObservers()...)
		}
		if m.cursor.enabled || m.anim.active {
			cmds = append(cmds, frameTick())
		}

	case navScanMsg:
		m.scanNav()

	case typeTickMsg:
		delay := m.typer.Advance()
		m.syncDocument()
		cmds = append(cmds, tea.Tick(delay, func(time.Time) tea.Msg { return typeTickMsg{} }))

	case revealNowMsg:
		msg.target.addClass("visible")
		m.syncDocument()

	case counterTickMsg:
		if c := m.counters[msg.target]; c != nil && c.Tick() {
			n := msg.target
			cmds = append(cmds, tea.Tick(counterStep, func(time.Time) tea.Msg { return counterTickMsg{n} }))
		}
		m.syncDocument()

	case formSentMsg:
		m.form.Sent()
		m.syncDocument()
		cmds = append(cmds, tea.Tick(successVisible, func(time.Time) tea.Msg { return formNoteHideMsg{} }))

	case formNoteHideMsg:
		m.form.HideNote()
		m.syncDocument()

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		cmds = append(cmds, cmd)

	case progress.FrameMsg:
		for _, bar := range m.bars {
			updated, cmd := bar.Update(msg)
			*bar = updated.(progress.Model)
			cmds = append(cmds, cmd)
		}
		m.syncDocument()
	}

	return m, tea.Batch(cmds...)
}

func (m *model) handleKey(msg tea.KeyMsg) tea.Cmd {
	if m.menuOpen {
		return m.handleMenuKey(msg)
	}

	// A focused form field swallows most keys.
	if m.form.focus >= 0 {
		switch msg.String() {
		case "esc":
			m.form.Blur()
			return nil
		case "tab":
			m.form.Focus((m.form.focus + 1) % len(m.form.inputs))
			return nil
		case "shift+tab":
			m.form.Focus((m.form.focus + len(m.form.inputs) - 1) % len(m.form.inputs))
			return nil
		case "enter":
			return m.submitForm()
		case "ctrl+c":
			return tea.Quit
		default:
			var cmd tea.Cmd
			m.form.inputs[m.form.focus], cmd = m.form.inputs[m.form.focus].Update(msg)
			m.form.Touched()
			m.syncDocument()
			return cmd
		}
	}

	switch {
	case key.Matches(msg, m.keys.quit):
		m.scrollDeb.Stop()
		return tea.Quit
	case key.Matches(msg, m.keys.down):
		m.vp.LineDown(1)
		return m.afterScroll()
	case key.Matches(msg, m.keys.up):
		m.vp.LineUp(1)
		return m.afterScroll()
	case key.Matches(msg, m.keys.top):
		return m.smoothScrollTo(0)
	case key.Matches(msg, m.keys.bottom):
		return m.smoothScrollTo(m.maxOffset())
	case key.Matches(msg, m.keys.nextSection):
		return m.jumpSection(1)
	case key.Matches(msg, m.keys.prevSection):
		return m.jumpSection(-1)
	case key.Matches(msg, m.keys.menu):
		m.menuOpen = true
		m.menuIdx = 0
		return nil
	case key.Matches(msg, m.keys.backToTop):
		return m.smoothScrollTo(0)
	case key.Matches(msg, m.keys.toggleHelp):
		m.showHelp = !m.showHelp
		m.help.ShowAll = m.showHelp
		return nil
	case msg.String() == "enter":
		if m.hovered != nil {
			return m.activateNode(m.hovered)
		}
		return nil
	}

	// Number keys jump straight to a section.
	if s := msg.String(); len(s) == 1 && s[0] >= '1' && s[0] <= '9' {
		idx := int(s[0] - '1')
		if idx < len(m.page.sections) {
			return m.scrollToSection(m.page.sections[idx].id)
		}
	}
	return nil
}

func (m *model) handleMenuKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "esc", "m", "q":
		m.menuOpen = false
	case "j", "down", "tab":
		m.menuIdx = (m.menuIdx + 1) % len(m.page.sections)
	case "k", "up", "shift+tab":
		m.menuIdx = (m.menuIdx + len(m.page.sections) - 1) % len(m.page.sections)
	case "enter":
		id := m.page.sections[m.menuIdx].id
		m.menuOpen = false
		return m.scrollToSection(id)
	case "ctrl+c":
		return tea.Quit
	}
	return nil
}

func (m *model) handleMouse(msg tea.MouseMsg) tea.Cmd {
	if !m.ready {
		return nil
	}

	// Motion with no button held: move the cursor follower and refresh
	// hover state.
	if msg.Action == tea.MouseActionMotion && msg.Button == tea.MouseButtonNone {
		m.cursor.Move(msg.X, msg.Y)
		if !m.reduced {
			m.updateHover(msg.X, msg.Y)
		}
		return nil
	}

	// Page scroll is locked while the menu overlay is open.
	if m.menuOpen {
		return nil
	}

	switch msg.Button {
	case tea.MouseButtonWheelUp:
		m.vp.LineUp(3)
		return m.afterScroll()
	case tea.MouseButtonWheelDown:
		m.vp.LineDown(3)
		return m.afterScroll()
	case tea.MouseButtonLeft:
		if msg.Action != tea.MouseActionPress {
			return nil
		}
		return m.handleClick(msg.X, msg.Y)
	}
	return nil
}

func (m *model) handleClick(x, y int) tea.Cmd {
	// Header row: nav links, or the hamburger below the breakpoint.
	if y == 0 {
		if m.width < mobileBreakpoint {
			m.menuOpen = true
			m.menuIdx = 0
			return nil
		}
		for _, hit := range m.navHits {
			if x >= hit.startX && x < hit.endX {
				return m.scrollToSection(hit.id)
			}
		}
		return nil
	}
	// Footer row: the back-to-top indicator lives at the right edge.
	if y == m.height-1 {
		if m.backToTopVisible() && x >= m.width-12 {
			return m.smoothScrollTo(0)
		}
		return nil
	}

	n := m.nodeAt(y)
	if n == nil {
		m.form.Blur()
		return nil
	}
	return m.activateNode(n)
}

func (m *model) activateNode(n *node) tea.Cmd {
	switch n.kind {
	case kindField:
		for i, f := range m.form.fields {
			if f == n {
				m.form.Focus(i)
			}
		}
		m.syncDocument()
		return nil
	case kindButton:
		return m.submitForm()
	default:
		return nil
	}
}

func (m *model) submitForm() tea.Cmd {
	ok, focusField := m.form.Submit()
	if !ok {
		if focusField >= 0 {
			m.form.Focus(focusField)
		}
		m.syncDocument()
		return nil
	}
	m.form.Blur()
	m.syncDocument()
	return tea.Tick(sendDelay, func(time.Time) tea.Msg { return formSentMsg{} })
}

// updateHover resolves which interactive element the pointer is over and
// feeds the result to the cursor ring and the card tilt styling.
func (m *model) updateHover(x, y int) {
	var over *node
	overNav := false
	if y == 0 {
		for _, hit := range m.navHits {
			if x >= hit.startX && x < hit.endX {
				overNav = true
			}
		}
	} else if y >= headerHeight && y < m.height-footerHeight {
		over = m.nodeAt(y)
	}
	if over != m.hovered {
		m.hovered = over
		m.syncDocument()
	}
	m.cursor.SetHover(overNav || over != nil)
}

// nodeAt maps a screen row to the interactive node at that document line.
func (m *model) nodeAt(y int) *node {
	line := m.vp.YOffset + y - headerHeight
	for _, kind := range []string{string(kindCard), string(kindField), string(kindButton)} {
		for _, n := range findAll(m.page.root, kind) {
			if line >= n.top && line < n.top+n.height {
				return n
			}
		}
	}
	return nil
}

func (m *model) afterScroll() tea.Cmd {
	m.anim.active = false
	m.onScroll()
	return tea.Batch(m.checkObservers()...)
}

// onScroll mirrors the site's scroll listener: the nav recompute is
// debounced 20ms, delivered back into the event loop via send.
func (m *model) onScroll() {
	m.scrollDeb.Call(m.vp.YOffset)
}

// scanNav applies the scrolled state and the active-section highlight.
func (m *model) scanNav() {
	m.scrolled = m.vp.YOffset > navScrollThreshold
	m.active = activeSection(m.page.sections, m.vp.YOffset, m.vp.Height)
}

// checkObservers runs both intersection sets against the current window and
// fires whatever newly crossed its threshold.
func (m *model) checkObservers() []tea.Cmd {
	if !m.ready {
		return nil
	}
	var cmds []tea.Cmd

	for _, n := range m.reveals.check(m.vp.YOffset, m.vp.Height) {
		n.addClass("visible")
		// Stagger the not-yet-visible siblings by 90ms increments.
		for i, sib := range staggerSiblings(n, m.reveals) {
			m.reveals.unwatch(sib)
			target := sib
			delay := revealStagger * time.Duration(i+1)
			cmds = append(cmds, tea.Tick(delay, func(time.Time) tea.Msg { return revealNowMsg{target} }))
		}
	}

	for _, n := range m.gauges.check(m.vp.YOffset, m.vp.Height) {
		switch n.kind {
		case kindBar:
			if bar := m.bars[n]; bar != nil && !m.reduced {
				pct, _ := strconv.Atoi(n.data["percent"])
				cmds = append(cmds, bar.SetPercent(float64(pct)/100))
			}
		case kindStat:
			if c := m.counters[n]; c != nil && !c.done {
				target := n
				cmds = append(cmds, tea.Tick(counterStep, func(time.Time) tea.Msg { return counterTickMsg{target} }))
			}
		}
	}

	m.syncDocument()
	return cmds
}

func (m *model) scrollToSection(id string) tea.Cmd {
	s := find(m.page.root, "#"+id)
	if s == nil {
		return nil
	}
	// Offset by the navbar height, same as the site's anchor handling.
	target := s.top - headerHeight
	if target < 0 {
		target = 0
	}
	return m.smoothScrollTo(target)
}

func (m *model) smoothScrollTo(target int) tea.Cmd {
	if target > m.maxOffset() {
		target = m.maxOffset()
	}
	if m.reduced {
		m.vp.SetYOffset(target)
		m.scanNav()
		return tea.Batch(m.checkObservers()...)
	}
	m.anim.start(m.vp.YOffset, target, smoothScrollTime)
	if m.cursor.enabled {
		return nil // frame chain already running
	}
	return frameTick()
}

func (m *model) jumpSection(dir int) tea.Cmd {
	ids := make([]string, len(m.page.sections))
	cur := 0
	for i, s := range m.page.sections {
		ids[i] = s.id
		if s.id == m.active {
			cur = i
		}
	}
	next := (cur + dir + len(ids)) % len(ids)
	return m.scrollToSection(ids[next])
}

func (m *model) maxOffset() int {
	total := m.vp.TotalLineCount()
	if total <= m.vp.Height {
		return 0
	}
	return total - m.vp.Height
}

func (m *model) backToTopVisible() bool {
	return m.ready && m.vp.YOffset > m.vp.Height
}

// syncDocument re-renders the page tree into the viewport, refreshing the
// recorded geometry as a side effect.
func (m *model) syncDocument() {
	if !m.ready {
		return
	}
	ctx := renderCtx{
		width:     m.width,
		th:        m.th,
		hovered:   m.hovered,
		typedLine: m.typedText(),
		barView:   m.barView,
		statText:  m.statText,
		fieldView: m.fieldView,
		sending:   m.form.sending,
		sendLabel: m.spin.View() + " Sending...",
		formNote:  m.form.note,
		year:      m.now().Year(),
		markdown:  m.renderMarkdown,
	}
	lines := renderPage(m.page, ctx)
	m.vp.SetContent(strings.Join(lines, "\n"))
}

func (m *model) typedText() string {
	if m.reduced && len(m.cfg.Phrases) > 0 {
		return "> " + m.cfg.Phrases[0]
	}
	return "> " + m.typer.Text() + "█"
}

func (m *model) barView(n *node) string {
	bar := m.bars[n]
	if bar == nil {
		return ""
	}
	if m.reduced {
		pct, _ := strconv.Atoi(n.data["percent"])
		return bar.ViewAs(float64(pct) / 100)
	}
	return bar.View()
}

func (m *model) statText(n *node) string {
	if c := m.counters[n]; c != nil {
		return c.Text()
	}
	return n.text
}

func (m *model) fieldView(n *node) string {
	for i, f := range m.form.fields {
		if f == n {
			return m.form.inputs[i].View()
		}
	}
	return ""
}

func (m *model) renderMarkdown(src string) string {
	if m.md == nil {
		return src
	}
	out, err := m.md.Render(src)
	if err != nil {
		return src
	}
	return out
}

func (m *model) View() string {
	if !m.ready {
		return "loading..."
	}

	header := m.renderNav()
	body := m.vp.View()
	footer := m.renderFooterBar()
	frame := header + "\n" + body + "\n" + footer

	if m.menuOpen {
		frame = overlayCenter(frame, m.renderMenu(), m.width, m.height)
	}

	if m.cursor.enabled && m.cursor.visible {
		lines := splitLinesN(frame, m.height)
		rx, ry := m.cursor.RingCell()
		overlayGlyph(lines, m.th.cursorRing.Render(m.cursor.glyph()), m.width, rx, ry)
		overlayGlyph(lines, m.th.cursorDot.Render(dotGlyph), m.width, m.cursor.dotX, m.cursor.dotY)
		frame = strings.Join(lines, "\n")
	}
	return frame
}

// renderNav draws the header bar and records the clickable x-range of each
// link for mouse hit testing.
func (m *model) renderNav() string {
	barStyle := m.th.navBar
	if m.scrolled {
		barStyle = m.th.navScrolled
	}

	logo := m.th.statValue.Render("[zach]")
	if m.width < mobileBreakpoint {
		m.navHits = nil
		line := logo + "  " + m.th.navLink.Render("☰ menu (m)")
		return barStyle.Width(m.width).Render(line)
	}

	var b strings.Builder
	b.WriteString(logo)
	x := xansi.StringWidth(logo) + 1 // +1 for nav bar padding
	b.WriteString(" ")
	x++

	hits := m.navHits[:0]
	for _, s := range m.page.sections {
		style := m.th.navLink
		if s.id == m.active {
			style = m.th.navActive
		}
		label := style.Render(s.id)
		w := xansi.StringWidth(label)
		hits = append(hits, navHit{startX: x, endX: x + w, id: s.id})
		b.WriteString(label)
		x += w
	}
	m.navHits = hits
	return barStyle.Width(m.width).Render(b.String())
}

func (m *model) renderFooterBar() string {
	left := m.help.View(m.keys)
	right := ""
	if m.backToTopVisible() {
		right = m.th.navActive.Render("↑ top (t)")
	}
	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right) - 2
	if gap < 1 {
		gap = 1
	}
	return m.th.helpBar.Render(left + strings.Repeat(" ", gap) + right)
}

func (m *model) renderMenu() string {
	var b strings.Builder
	b.WriteString(m.th.statValue.Render("navigate") + "\n\n")
	for i, s := range m.page.sections {
		cursor := "  "
		style := m.th.navLink
		if i == m.menuIdx {
			cursor = "> "
			style = m.th.navActive
		}
		b.WriteString(cursor + style.Render(s.id) + "\n")
	}
	b.WriteString("\n" + m.th.faint.Render("enter to jump · esc to close"))
	return m.th.menuPanel.Render(b.String())
}

