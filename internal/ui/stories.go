package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/javiermolinar/widgetkit/internal/tui"
)

func (a *App) storiesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stories",
		Short: "List catalog stories",
		Long: `List the stories available in the component catalog, grouped by widget.

Example:
  widgetkit stories`,
		Run: func(cmd *cobra.Command, _ []string) {
			printStories(cmd.OutOrStdout(), tui.StoryTitles())
		},
	}
}

// printStories prints "Group/Name" titles grouped under their group.
func printStories(w io.Writer, titles []string) {
	group := ""
	for _, title := range titles {
		g, name, ok := strings.Cut(title, "/")
		if !ok {
			g, name = "", title
		}
		if g != group {
			if group != "" {
				fmt.Fprintln(w)
			}
			group = g
			fmt.Fprintln(w, formatGroup(g))
		}
		fmt.Fprintf(w, "  %s\n", name)
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, formatMuted(fmt.Sprintf("%d stories", len(titles))))
}
