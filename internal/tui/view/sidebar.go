package view

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// SidebarItem is one entry of the story list.
type SidebarItem struct {
	Group string
	Name  string
}

// SidebarStyles styles the story list.
type SidebarStyles struct {
	Group  lipgloss.Style
	Item   lipgloss.Style
	Active lipgloss.Style
	Box    lipgloss.Style
}

// RenderSidebar renders items grouped under their group headings, marking active.
func RenderSidebar(items []SidebarItem, active int, styles SidebarStyles) string {
	var b strings.Builder
	group := ""
	for i, item := range items {
		if item.Group != group {
			if group != "" {
				b.WriteString("\n")
			}
			group = item.Group
			b.WriteString(styles.Group.Render(group))
			b.WriteString("\n")
		}
		if i == active {
			b.WriteString(styles.Active.Render("› " + item.Name))
		} else {
			b.WriteString(styles.Item.Render("  " + item.Name))
		}
		if i < len(items)-1 {
			b.WriteString("\n")
		}
	}
	return styles.Box.Render(b.String())
}
