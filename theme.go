package main

import "github.com/charmbracelet/lipgloss"

// theme holds every style the renderer uses. Accent is configurable so the
// terminal edition can match whatever the site's palette is doing this month.
type theme struct {
	accent lipgloss.Color

	heading      lipgloss.Style
	body         lipgloss.Style
	faint        lipgloss.Style
	navBar       lipgloss.Style
	navScrolled  lipgloss.Style
	navLink      lipgloss.Style
	navActive    lipgloss.Style
	card         lipgloss.Style
	cardHover    lipgloss.Style
	cardTitle    lipgloss.Style
	cardHoverTtl lipgloss.Style
	statValue    lipgloss.Style
	fieldLabel   lipgloss.Style
	fieldInvalid lipgloss.Style
	button       lipgloss.Style
	buttonBusy   lipgloss.Style
	success      lipgloss.Style
	footer       lipgloss.Style
	cursorDot    lipgloss.Style
	cursorRing   lipgloss.Style
	menuPanel    lipgloss.Style
	helpBar      lipgloss.Style
}

func newTheme(accent string) theme {
	if accent == "" {
		accent = "205"
	}
	ac := lipgloss.Color(accent)
	border := lipgloss.RoundedBorder()

	return theme{
		accent:       ac,
		heading:      lipgloss.NewStyle().Bold(true).Foreground(ac),
		body:         lipgloss.NewStyle(),
		faint:        lipgloss.NewStyle().Faint(true),
		navBar:       lipgloss.NewStyle().Padding(0, 1),
		navScrolled:  lipgloss.NewStyle().Padding(0, 1).Background(lipgloss.Color("236")),
		navLink:      lipgloss.NewStyle().Padding(0, 1).Faint(true),
		navActive:    lipgloss.NewStyle().Padding(0, 1).Bold(true).Foreground(ac).Underline(true),
		card:         lipgloss.NewStyle().Border(border).BorderForeground(lipgloss.Color("240")).Padding(0, 1),
		cardHover:    lipgloss.NewStyle().Border(border).BorderForeground(ac).Padding(0, 1),
		cardTitle:    lipgloss.NewStyle().Bold(true),
		cardHoverTtl: lipgloss.NewStyle().Bold(true).Foreground(ac),
		statValue:    lipgloss.NewStyle().Bold(true).Foreground(ac),
		fieldLabel:   lipgloss.NewStyle().Width(10),
		fieldInvalid: lipgloss.NewStyle().Foreground(lipgloss.Color("196")),
		button:       lipgloss.NewStyle().Border(border).BorderForeground(ac).Padding(0, 2),
		buttonBusy:   lipgloss.NewStyle().Border(border).BorderForeground(lipgloss.Color("240")).Padding(0, 2).Faint(true),
		success:      lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Bold(true),
		footer:       lipgloss.NewStyle().Faint(true).Padding(0, 1),
		cursorDot:    lipgloss.NewStyle().Foreground(ac).Bold(true),
		cursorRing:   lipgloss.NewStyle().Foreground(ac),
		menuPanel:    lipgloss.NewStyle().Border(lipgloss.DoubleBorder()).BorderForeground(ac).Padding(1, 3),
		helpBar:      lipgloss.NewStyle().Faint(true).Padding(0, 1),
	}
}
