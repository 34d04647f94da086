package main

import (
	"strconv"
	"strings"
)

// The page is a small retained tree of nodes, the terminal stand-in for the
// DOM the site proper hangs its behavior off. Class membership is the only
// persistent state store: "visible", "active", "scrolled", "open" and
// "invalid" all live here and drive styling at render time.

type nodeKind string

const (
	kindSection   nodeKind = "section"
	kindHeading   nodeKind = "heading"
	kindParagraph nodeKind = "paragraph"
	kindMarkdown  nodeKind = "markdown"
	kindTyped     nodeKind = "typed"
	kindCard      nodeKind = "card"
	kindBar       nodeKind = "bar"
	kindStat      nodeKind = "stat"
	kindField     nodeKind = "field"
	kindButton    nodeKind = "button"
	kindSpacer    nodeKind = "spacer"
	kindFooter    nodeKind = "footer"
)

type node struct {
	kind     nodeKind
	id       string
	classes  map[string]bool
	data     map[string]string
	text     string
	children []*node
	parent   *node

	// Geometry recorded by the last render pass: first document line and
	// height in lines. The nav scan and the intersection checks read these.
	top    int
	height int
}

func newNode(kind nodeKind, id string) *node {
	return &node{kind: kind, id: id, classes: map[string]bool{}, data: map[string]string{}}
}

func (n *node) addClass(c string)      { n.classes[c] = true }
func (n *node) removeClass(c string)   { delete(n.classes, c) }
func (n *node) hasClass(c string) bool { return n.classes[c] }

func (n *node) append(children ...*node) *node {
	for _, c := range children {
		c.parent = n
		n.children = append(n.children, c)
	}
	return n
}

// siblings returns the other children of n's parent, in document order.
func (n *node) siblings() []*node {
	if n.parent == nil {
		return nil
	}
	var out []*node
	for _, c := range n.parent.children {
		if c != n {
			out = append(out, c)
		}
	}
	return out
}

// matches reports whether the node matches a selector: "#id" by id,
// ".class" by class membership, anything else by kind name.
func (n *node) matches(selector string) bool {
	switch {
	case strings.HasPrefix(selector, "#"):
		return n.id == selector[1:]
	case strings.HasPrefix(selector, "."):
		return n.hasClass(selector[1:])
	default:
		return string(n.kind) == selector
	}
}

// find returns the first node under root (inclusive) matching the selector,
// or nil. Depth-first, document order.
func find(root *node, selector string) *node {
	if root == nil {
		return nil
	}
	if root.matches(selector) {
		return root
	}
	for _, c := range root.children {
		if m := find(c, selector); m != nil {
			return m
		}
	}
	return nil
}

// findAll returns every node under root (inclusive) matching the selector,
// in document order.
func findAll(root *node, selector string) []*node {
	if root == nil {
		return nil
	}
	var out []*node
	var walk func(*node)
	walk = func(n *node) {
		if n.matches(selector) {
			out = append(out, n)
		}
		for _, c := range n.children {
			walk(c)
		}
	}
	walk(root)
	return out
}

type page struct {
	root     *node
	sections []*node
}

// buildPage assembles the document tree from the content definitions.
// Every decorative element carries the reveal class; the observers flip
// them visible as they scroll in.
func buildPage() *page {
	root := newNode("root", "")

	home := newNode(kindSection, "home")
	hero := newNode(kindTyped, "hero-typed")
	hero.addClass("reveal")
	intro := newNode(kindParagraph, "")
	intro.text = "Hi, I'm Zach. Welcome to the terminal edition of my portfolio."
	intro.addClass("reveal")
	// The hero fills some vertical space the way the site's full-height
	// landing section does.
	spacer := newNode(kindSpacer, "")
	spacer.data["lines"] = "8"
	home.append(newNode(kindHeading, "").withText("Zach Kordas-Potter"), hero, intro, spacer)

	about := newNode(kindSection, "about")
	aboutMD := newNode(kindMarkdown, "about-text")
	aboutMD.text = AboutMe
	aboutMD.addClass("reveal")
	about.append(newNode(kindHeading, "").withText("About"), aboutMD)

	skills := newNode(kindSection, "skills")
	skills.append(newNode(kindHeading, "").withText("Skills"))
	for _, s := range Skills {
		bar := newNode(kindBar, "skill-"+strings.ToLower(strings.Fields(s.Name)[0]))
		bar.text = s.Name
		bar.data["percent"] = strconv.Itoa(s.Percent)
		skills.append(bar)
	}
	for i, s := range Stats {
		stat := newNode(kindStat, "stat-"+strconv.Itoa(i))
		stat.text = s.Value
		stat.data["label"] = s.Label
		skills.append(stat)
	}

	projects := newNode(kindSection, "projects")
	projects.append(newNode(kindHeading, "").withText("Projects"))
	for _, p := range Projects {
		card := newNode(kindCard, "project-"+p.Title)
		card.text = p.Title
		card.data["blurb"] = p.Blurb
		card.data["tags"] = strings.Join(p.Tags, " · ")
		card.addClass("reveal")
		projects.append(card)
	}

	experience := newNode(kindSection, "experience")
	experience.append(newNode(kindHeading, "").withText("Experience"))
	for _, w := range WorkHistory {
		card := positionCard(w)
		experience.append(card)
	}
	experience.append(newNode(kindHeading, "").withText("Education"))
	for _, e := range Education {
		experience.append(positionCard(e))
	}

	contact := newNode(kindSection, "contact")
	// Trailing space keeps the section scrollable far enough for the nav
	// scan line to reach its top, like the site's full-height sections.
	tail := newNode(kindSpacer, "")
	tail.data["lines"] = "12"
	contact.append(
		newNode(kindHeading, "").withText("Contact"),
		fieldNode("name", "Name", true),
		fieldNode("email", "Email", true),
		fieldNode("message", "Message", true),
		newNode(kindButton, "send").withText("Send Message"),
		tail,
	)

	footer := newNode(kindFooter, "footer")

	root.append(home, about, skills, projects, experience, contact, footer)

	return &page{
		root:     root,
		sections: findAll(root, string(kindSection)),
	}
}

func positionCard(p Position) *node {
	card := newNode(kindCard, "")
	card.text = p.Title + " — " + p.Org
	card.data["dates"] = p.Start + " – " + p.End
	card.data["blurb"] = "• " + strings.Join(p.Bullets, "\n• ")
	card.addClass("reveal")
	return card
}

func fieldNode(id, label string, required bool) *node {
	f := newNode(kindField, id)
	f.text = label
	if required {
		f.data["required"] = "true"
	}
	return f
}

func (n *node) withText(t string) *node {
	n.text = t
	return n
}
