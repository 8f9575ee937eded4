package view

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

func TestRenderZeroSizeShowsPlaceholder(t *testing.T) {
	if got := Render(ViewState{}); got != "Loading..." {
		t.Fatalf("Render = %q, want Loading...", got)
	}
	if got := Render(ViewState{EmptyPlaceholder: "wait"}); got != "wait" {
		t.Fatalf("Render = %q, want wait", got)
	}
}

func TestRenderComposesSections(t *testing.T) {
	out := ansi.Strip(Render(ViewState{
		Width:   60,
		Height:  10,
		Header:  "HEADER",
		Sidebar: "side",
		Body:    "body",
		Footer:  "FOOTER",
		Bg:      lipgloss.Color(""),
	}))

	for _, want := range []string{"HEADER", "side", "body", "FOOTER"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected %q in output: %q", want, out)
		}
	}
	if h := lipgloss.Height(out); h != 10 {
		t.Errorf("height = %d, want 10", h)
	}
}

func TestClipLines(t *testing.T) {
	out := ClipLines("abcdef\nxyz\nthird", 3, 2)
	lines := strings.Split(ansi.Strip(out), "\n")
	if len(lines) != 2 {
		t.Fatalf("lines = %d, want 2", len(lines))
	}
	if lines[0] != "abc" {
		t.Errorf("line 0 = %q, want abc", lines[0])
	}
}

func TestLineTruncates(t *testing.T) {
	out := ansi.Strip(Line(5, lipgloss.NewStyle(), "abcdefgh"))
	if lipgloss.Width(out) != 5 {
		t.Errorf("width = %d, want 5: %q", lipgloss.Width(out), out)
	}
	if !strings.HasSuffix(strings.TrimSpace(out), "…") {
		t.Errorf("expected ellipsis: %q", out)
	}
}

func TestRenderSidebar(t *testing.T) {
	items := []SidebarItem{
		{Group: "Table", Name: "Default"},
		{Group: "Table", Name: "Sortable"},
		{Group: "Field", Name: "Default"},
	}
	out := ansi.Strip(RenderSidebar(items, 1, plainSidebarStyles()))

	if strings.Count(out, "Table") != 1 {
		t.Errorf("expected one Table heading: %q", out)
	}
	if !strings.Contains(out, "› Sortable") {
		t.Errorf("expected active marker on Sortable: %q", out)
	}
	if !strings.Contains(out, "Field") {
		t.Errorf("expected Field heading: %q", out)
	}
}

func TestRenderActions(t *testing.T) {
	out := ansi.Strip(RenderActions(ActionsViewState{Title: "Actions", TitleSt: lipgloss.NewStyle(), EntrySt: lipgloss.NewStyle(), EmptySt: lipgloss.NewStyle()}))
	if !strings.Contains(out, NoActionsText) {
		t.Errorf("expected empty text: %q", out)
	}

	out = ansi.Strip(RenderActions(ActionsViewState{
		Title:   "Actions",
		Entries: []string{"one", "two", "three"},
		Max:     2,
		TitleSt: lipgloss.NewStyle(),
		EntrySt: lipgloss.NewStyle(),
		EmptySt: lipgloss.NewStyle(),
	}))
	if strings.Contains(out, "one") {
		t.Errorf("oldest entry should be dropped: %q", out)
	}
	if !strings.Contains(out, "two") || !strings.Contains(out, "three") {
		t.Errorf("expected newest entries: %q", out)
	}
}

func plainSidebarStyles() SidebarStyles {
	return SidebarStyles{
		Group:  lipgloss.NewStyle(),
		Item:   lipgloss.NewStyle(),
		Active: lipgloss.NewStyle(),
		Box:    lipgloss.NewStyle(),
	}
}
