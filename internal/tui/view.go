package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/javiermolinar/widgetkit/internal/tui/view"
)

// View renders the catalog: story list, active story, actions log and help.
func (m Model) View() string {
	return view.Render(m.viewState())
}

func (m Model) viewState() view.ViewState {
	return view.ViewState{
		Width:            m.width,
		Height:           m.height,
		Header:           m.renderHeader(),
		Sidebar:          m.renderSidebar(),
		Body:             m.renderBody(),
		Footer:           m.renderFooter(),
		Bg:               m.styles.colorBg,
		EmptyPlaceholder: "Loading...",
	}
}

func (m Model) renderHeader() string {
	title := m.styles.TitleStyle.Render("widgetkit")
	sub := m.styles.SubtitleStyle.Render(m.theme.Name + " theme")
	return lipgloss.JoinHorizontal(lipgloss.Top, title, sub) + "\n"
}

func (m Model) renderSidebar() string {
	entries := m.entries()
	items := make([]view.SidebarItem, len(entries))
	for i, e := range entries {
		items[i] = view.SidebarItem{Group: e.Group, Name: e.Name}
	}
	return view.RenderSidebar(items, m.active, m.styles.Sidebar)
}

func (m Model) renderBody() string {
	active := m.activeStory()
	parts := []string{
		m.styles.StoryTitleStyle.Render(active.Entry().Title()),
		m.styles.StoryBodyStyle.Render(active.View()),
		view.RenderActions(view.ActionsViewState{
			Title:   "Actions",
			Entries: m.actions.Entries(),
			Max:     maxActions,
			Width:   m.bodyWidth(),
			TitleSt: m.styles.ActionsTitleStyle,
			EntrySt: m.styles.ActionEntryStyle,
			EmptySt: m.styles.ActionEmptyStyle,
		}),
	}
	return strings.Join(parts, "\n")
}

func (m Model) renderFooter() string {
	var lines []string
	switch {
	case m.searching:
		lines = append(lines, m.styles.SearchStyle.Render(m.search.View()))
	case m.err != nil:
		lines = append(lines, m.styles.ErrorStyle.Render("error: "+m.err.Error()))
	case m.statusMsg != "":
		lines = append(lines, m.styles.StatusStyle.Render(m.statusMsg))
	}
	keys := helpKeys{global: m.keys, story: m.activeStory().Bindings()}
	lines = append(lines, " "+m.help.View(keys))
	return strings.Join(lines, "\n")
}
