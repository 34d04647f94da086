package main

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"
)

// renderCtx carries everything the document renderer needs from the model:
// dynamic widget views, hover state, and the current typing-effect line.
// The renderer itself stays a pure tree walk.
type renderCtx struct {
	width   int
	th      theme
	hovered *node

	typedLine string
	barView   func(n *node) string
	statText  func(n *node) string
	fieldView func(n *node) string
	sending   bool
	sendLabel string
	formNote  string
	year      int
	markdown  func(string) string
}

// renderPage walks the tree into styled lines and records each node's line
// offset and height as it goes. Reveal-marked nodes that have not yet gained
// the visible class keep their height but render blank, so the geometry the
// observers read stays stable while elements are still hidden.
func renderPage(p *page, ctx renderCtx) []string {
	var lines []string
	for _, section := range p.root.children {
		section.top = len(lines)
		if len(section.children) == 0 {
			// Leaf at the top level, the footer line.
			lines = append(lines, renderNode(section, ctx)...)
		}
		for _, child := range section.children {
			child.top = len(lines)
			out := renderNode(child, ctx)
			child.height = len(out)
			if child.hasClass("reveal") && !child.hasClass("visible") {
				out = blankLines(len(out))
			}
			lines = append(lines, out...)
		}
		if section.kind == kindSection {
			lines = append(lines, "") // breathing room between sections
		}
		section.height = len(lines) - section.top
	}
	return lines
}

func renderNode(n *node, ctx renderCtx) []string {
	w := contentWidth(ctx.width)
	switch n.kind {
	case kindHeading:
		return []string{"", ctx.th.heading.Render("· " + n.text)}
	case kindParagraph:
		return strings.Split(ctx.th.body.Render(wordwrap.String(n.text, w)), "\n")
	case kindMarkdown:
		if ctx.markdown != nil {
			return strings.Split(strings.TrimRight(ctx.markdown(n.text), "\n"), "\n")
		}
		return strings.Split(wordwrap.String(n.text, w), "\n")
	case kindTyped:
		return []string{ctx.th.statValue.Render(ctx.typedLine)}
	case kindCard:
		return renderCard(n, ctx, w)
	case kindBar:
		label := ctx.th.body.Render(n.text)
		bar := ""
		if ctx.barView != nil {
			bar = ctx.barView(n)
		}
		return []string{lipgloss.NewStyle().Width(16).Render(label) + " " + bar}
	case kindStat:
		value := n.text
		if ctx.statText != nil {
			value = ctx.statText(n)
		}
		return []string{ctx.th.statValue.Render(value) + " " + ctx.th.faint.Render(n.data["label"])}
	case kindField:
		return renderField(n, ctx)
	case kindButton:
		if ctx.sending {
			out := ctx.th.buttonBusy.Render(ctx.sendLabel)
			return append(strings.Split(out, "\n"), noteLine(ctx)...)
		}
		style := ctx.th.button
		if n == ctx.hovered {
			style = style.Bold(true)
		}
		return append(strings.Split(style.Render(n.text), "\n"), noteLine(ctx)...)
	case kindSpacer:
		lines, _ := strconv.Atoi(n.data["lines"])
		return blankLines(lines)
	case kindFooter:
		return []string{"", ctx.th.footer.Render("© " + yearString(ctx.year) + " Zach Kordas-Potter · built in Go, rendered in your terminal")}
	default:
		return nil
	}
}

func renderCard(n *node, ctx renderCtx, w int) []string {
	// Hover swaps the card to the accent border and title, the terminal
	// stand-in for the site's tilt effect.
	box, title := ctx.th.card, ctx.th.cardTitle
	if n == ctx.hovered {
		box, title = ctx.th.cardHover, ctx.th.cardHoverTtl
	}
	var b strings.Builder
	b.WriteString(title.Render(n.text))
	if dates := n.data["dates"]; dates != "" {
		b.WriteString("  " + ctx.th.faint.Render(dates))
	}
	b.WriteString("\n" + wordwrap.String(n.data["blurb"], w-4))
	if tags := n.data["tags"]; tags != "" {
		b.WriteString("\n" + ctx.th.faint.Render(tags))
	}
	return strings.Split(box.Width(w).Render(b.String()), "\n")
}

func renderField(n *node, ctx renderCtx) []string {
	label := ctx.th.fieldLabel.Render(n.text)
	if n.hasClass("invalid") {
		label = ctx.th.fieldInvalid.Render(ctx.th.fieldLabel.Render(n.text))
	}
	input := ""
	if ctx.fieldView != nil {
		input = ctx.fieldView(n)
	}
	return []string{label + input}
}

func noteLine(ctx renderCtx) []string {
	if ctx.formNote == "" {
		return nil
	}
	return []string{ctx.th.success.Render(ctx.formNote)}
}

func contentWidth(w int) int {
	w -= 2
	if w > 88 {
		w = 88
	}
	if w < 20 {
		w = 20
	}
	return w
}

func blankLines(n int) []string {
	out := make([]string, n)
	return out
}

func yearString(y int) string {
	if y <= 0 {
		return ""
	}
	return strconv.Itoa(y)
}
