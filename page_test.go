package main

import "testing"

func TestFindBySelector(t *testing.T) {
	p := buildPage()

	if n := find(p.root, "#about"); n == nil || n.id != "about" {
		t.Fatal("expected to find the about section by id")
	}
	if n := find(p.root, ".reveal"); n == nil || !n.hasClass("reveal") {
		t.Fatal("expected to find the first reveal-marked node")
	}
	if n := find(p.root, "button"); n == nil || n.kind != kindButton {
		t.Fatal("expected to find the submit button by kind")
	}
	if n := find(p.root, "#nope"); n != nil {
		t.Fatalf("expected nil for a missing id, got %v", n.id)
	}
	if n := find(nil, "#about"); n != nil {
		t.Fatal("expected nil root to fail soft")
	}
}

func TestFindAllScopedToRoot(t *testing.T) {
	p := buildPage()

	all := findAll(p.root, "field")
	if len(all) != 3 {
		t.Fatalf("expected 3 form fields, got %d", len(all))
	}

	// Scoped lookup: searching under one section must not see another's
	// children.
	skills := find(p.root, "#skills")
	if got := findAll(skills, "bar"); len(got) != len(Skills) {
		t.Fatalf("expected %d skill bars under #skills, got %d", len(Skills), len(got))
	}
	contact := find(p.root, "#contact")
	if got := findAll(contact, "bar"); len(got) != 0 {
		t.Fatalf("expected no bars under #contact, got %d", len(got))
	}
}

func TestPageSectionsInDocumentOrder(t *testing.T) {
	p := buildPage()
	want := []string{"home", "about", "skills", "projects", "experience", "contact"}
	if len(p.sections) != len(want) {
		t.Fatalf("expected %d sections, got %d", len(want), len(p.sections))
	}
	for i, id := range want {
		if p.sections[i].id != id {
			t.Errorf("section %d = %q, want %q", i, p.sections[i].id, id)
		}
	}
}

func TestSiblings(t *testing.T) {
	p := buildPage()
	cards := findAll(find(p.root, "#projects"), "card")
	if len(cards) < 2 {
		t.Fatal("expected multiple project cards")
	}
	sibs := cards[0].siblings()
	for _, s := range sibs {
		if s == cards[0] {
			t.Fatal("a node must not be its own sibling")
		}
	}
	// The section heading shares the parent, so the count is the other
	// cards plus one.
	if len(sibs) != len(cards) {
		t.Fatalf("expected %d siblings, got %d", len(cards), len(sibs))
	}
}

func TestNodeClasses(t *testing.T) {
	n := newNode(kindCard, "x")
	n.addClass("visible")
	if !n.hasClass("visible") {
		t.Fatal("expected class to be present after addClass")
	}
	n.removeClass("visible")
	if n.hasClass("visible") {
		t.Fatal("expected class to be gone after removeClass")
	}
}

func TestRenderPageRecordsGeometry(t *testing.T) {
	p := buildPage()
	ctx := renderCtx{width: 80, th: newTheme(""), typedLine: "> test", year: 2026}
	lines := renderPage(p, ctx)
	if len(lines) == 0 {
		t.Fatal("expected rendered output")
	}

	prevEnd := 0
	for _, s := range p.sections {
		if s.top < prevEnd {
			t.Fatalf("section %q top %d overlaps previous end %d", s.id, s.top, prevEnd)
		}
		if s.height <= 0 {
			t.Fatalf("section %q has no recorded height", s.id)
		}
		prevEnd = s.top + s.height
	}

	// Hidden reveal nodes keep their height but render blank.
	for _, n := range findAll(p.root, ".reveal") {
		if n.hasClass("visible") {
			continue
		}
		for i := n.top; i < n.top+n.height && i < len(lines); i++ {
			if lines[i] != "" {
				t.Fatalf("expected hidden reveal node %q to render blank at line %d", n.id, i)
			}
		}
	}
}
