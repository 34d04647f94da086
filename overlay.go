package main

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	xansi "github.com/charmbracelet/x/ansi"
)

// ANSI-aware overlay compositing: the cursor glyphs and the mobile menu
// panel are painted over the already-rendered frame without disturbing the
// layout underneath.

// overlayAt splices fgLines into bgLines at cell (x, y), clipping to the
// frame width w. Both slices hold styled lines.
func overlayAt(bgLines []string, fgLines []string, w, x, y, fgW int) {
	if fgW <= 0 {
		return
	}
	if x < 0 {
		x = 0
	}
	if y < 0 {
		y = 0
	}
	for i := 0; i < len(fgLines) && y+i < len(bgLines); i++ {
		bgLine := bgLines[y+i]
		left := xansi.Cut(bgLine, 0, x)
		right := xansi.Cut(bgLine, x+fgW, w)

		fgLine := fgLines[i]
		if n := xansi.StringWidth(fgLine); n < fgW {
			fgLine += strings.Repeat(" ", fgW-n)
		} else if n > fgW {
			fgLine = xansi.Cut(fgLine, 0, fgW)
		}

		bgLines[y+i] = left + fgLine + right
	}
}

// overlayCenter dims the frame and centers fg on top of it.
func overlayCenter(bg, fg string, w, h int) string {
	bgLines := splitLinesN(dimBackground(bg), h)
	fgLines := strings.Split(fg, "\n")
	fgW := 0
	for _, ln := range fgLines {
		if n := xansi.StringWidth(ln); n > fgW {
			fgW = n
		}
	}
	if fgW > w {
		fgW = w
	}
	x := (w - fgW) / 2
	y := (h - len(fgLines)) / 2
	overlayAt(bgLines, fgLines, w, x, y, fgW)
	return strings.Join(bgLines, "\n")
}

// overlayGlyph paints a single-cell glyph at (x, y).
func overlayGlyph(bgLines []string, glyph string, w, x, y int) {
	if y < 0 || y >= len(bgLines) || x < 0 || x >= w {
		return
	}
	overlayAt(bgLines, []string{glyph}, w, x, y, 1)
}

// dimBackground is the scrim behind the mobile menu: layout-identical,
// visibly pushed back.
func dimBackground(s string) string {
	return lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Faint(true).Render(s)
}

// splitLinesN splits s into lines padded or clipped to exactly n entries.
func splitLinesN(s string, n int) []string {
	lines := strings.Split(s, "\n")
	if len(lines) > n {
		lines = lines[:n]
	}
	for len(lines) < n {
		lines = append(lines, "")
	}
	return lines
}
