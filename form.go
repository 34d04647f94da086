package main

import (
	"regexp"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
)

const (
	sendDelay      = 1800 * time.Millisecond
	successVisible = 5000 * time.Millisecond
)

// emailRe is deliberately loose: something@something.tld, same check the
// site runs before letting a submission through.
var emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

func validEmail(s string) bool {
	return emailRe.MatchString(s)
}

// validateContact is shared by the terminal form and the web contact
// endpoint. It returns the indexes of fields that failed, in order:
// 0=name, 1=email, 2=message.
func validateContact(name, email, message string) []int {
	var bad []int
	if strings.TrimSpace(name) == "" {
		bad = append(bad, 0)
	}
	if strings.TrimSpace(email) == "" || !validEmail(strings.TrimSpace(email)) {
		bad = append(bad, 1)
	}
	if strings.TrimSpace(message) == "" {
		bad = append(bad, 2)
	}
	return bad
}

// contactForm owns the three inputs, the invalid markers, and the
// sending/success lifecycle. All timing is driven by the event loop;
// the form only flips state.
type contactForm struct {
	fields  []*node
	inputs  []textinput.Model
	focus   int
	sending bool
	note    string
}

func newContactForm(fields []*node) *contactForm {
	f := &contactForm{fields: fields, focus: -1}
	placeholders := []string{"your name", "you@example.com", "say hello"}
	for i := range fields {
		ti := textinput.New()
		ti.Placeholder = placeholders[i%len(placeholders)]
		ti.CharLimit = 280
		ti.Width = 40
		f.inputs = append(f.inputs, ti)
	}
	return f
}

func (f *contactForm) Focus(i int) {
	if i < 0 || i >= len(f.inputs) {
		return
	}
	for j := range f.inputs {
		f.inputs[j].Blur()
	}
	f.inputs[i].Focus()
	f.focus = i
}

func (f *contactForm) Blur() {
	for j := range f.inputs {
		f.inputs[j].Blur()
	}
	f.focus = -1
}

// Touched clears the invalid marker on the focused field; the site does the
// same on the first input event after a failed submit.
func (f *contactForm) Touched() {
	if f.focus >= 0 && f.focus < len(f.fields) {
		f.fields[f.focus].removeClass("invalid")
	}
}

// Submit validates the fields. On failure it marks the offenders invalid
// and returns the index of the field to focus (the email field when the
// email is the problem). On success it enters the sending state.
func (f *contactForm) Submit() (ok bool, focusField int) {
	if f.sending || len(f.inputs) < 3 {
		return false, -1
	}
	for _, n := range f.fields {
		n.removeClass("invalid")
	}
	bad := validateContact(f.inputs[0].Value(), f.inputs[1].Value(), f.inputs[2].Value())
	if len(bad) > 0 {
		for _, i := range bad {
			f.fields[i].addClass("invalid")
		}
		return false, bad[0]
	}
	f.sending = true
	return true, -1
}

// Sent completes the simulated submission: reset every field, restore the
// control, and surface the success line.
func (f *contactForm) Sent() {
	for i := range f.inputs {
		f.inputs[i].Reset()
	}
	f.sending = false
	f.note = "Thanks for your message! I'll get back to you soon."
}

func (f *contactForm) HideNote() { f.note = "" }

func (f *contactForm) Values() (name, email, message string) {
	return f.inputs[0].Value(), f.inputs[1].Value(), f.inputs[2].Value()
}
