package ui

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/javiermolinar/widgetkit/internal/config"
	"github.com/javiermolinar/widgetkit/internal/tui"
	"github.com/javiermolinar/widgetkit/internal/user"
)

var (
	// Version is set at build time
	Version = "dev"
	// Commit is set at build time
	Commit = "none"
)

// App holds the CLI application state.
type App struct {
	repo   user.Repository
	config *config.Config
	root   *cobra.Command
	debug  bool // Enable debug logging
	owned  bool // repo was opened by the App and must be closed
}

// NewApp creates a new CLI application with the given repository and config.
// A nil repo is opened lazily from the configured database path.
func NewApp(repo user.Repository, cfg *config.Config) *App {
	if cfg == nil {
		cfg = config.Default()
	}
	a := &App{repo: repo, config: cfg}

	a.root = &cobra.Command{
		Use:   "widgetkit",
		Short: "A catalog of terminal table and text field widgets",
		Long: `widgetkit hosts a sortable, selectable table and a text field
as bubbletea components.

Run without arguments to browse the component catalog.`,
		SilenceUsage: true,
		RunE: func(_ *cobra.Command, _ []string) error {
			return tui.RunWithDebug(a.repo, a.config, a.debug)
		},
	}

	a.root.PersistentFlags().BoolVar(&a.debug, "debug", false, "Enable debug logging (writes widgetkit-debug.log)")

	a.root.AddCommand(a.versionCmd())
	a.root.AddCommand(a.configCmd())
	a.root.AddCommand(a.storiesCmd())
	a.root.AddCommand(a.usersCmd())

	return a
}

func (a *App) versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "widgetkit %s (commit: %s)\n", Version, Commit)
		},
	}
}

// Execute runs the CLI application.
func (a *App) Execute() error {
	return a.root.Execute()
}

// SetArgs overrides the command line arguments, for tests.
func (a *App) SetArgs(args []string) {
	a.root.SetArgs(args)
}

// Close releases the repository if the App opened it.
func (a *App) Close() error {
	if a.owned && a.repo != nil {
		a.owned = false
		return a.repo.Close()
	}
	return nil
}

// getRepo returns the repository, opening and seeding the configured store on first use.
func (a *App) getRepo(cmd *cobra.Command) (user.Repository, error) {
	if a.repo != nil {
		return a.repo, nil
	}
	repo, _, err := tui.OpenSeededRepo(cmd.Context(), a.config.Storage.DBPath)
	if err != nil {
		return nil, err
	}
	a.repo = repo
	a.owned = true
	return repo, nil
}
