package ui

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/x/ansi"
	"github.com/spf13/cobra"

	"github.com/javiermolinar/widgetkit/internal/tui"
	"github.com/javiermolinar/widgetkit/internal/tui/datatable"
	"github.com/javiermolinar/widgetkit/internal/user"
)

// ErrUnknownColumn is returned when --sort names a column that cannot be sorted.
var ErrUnknownColumn = errors.New("unknown or unsortable column")

func (a *App) usersCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "users",
		Short: "Manage the sample user store",
	}
	cmd.AddCommand(a.usersSeedCmd())
	cmd.AddCommand(a.usersListCmd())
	cmd.AddCommand(a.usersAddCmd())
	cmd.AddCommand(a.usersBrowseCmd())
	return cmd
}

func (a *App) usersSeedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Create the user store and insert sample users",
		Long: `Create the SQLite user store if needed and insert the sample users
when it is empty.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			repo, n, err := tui.OpenSeededRepo(cmd.Context(), a.config.Storage.DBPath)
			if err != nil {
				return err
			}
			defer func() { _ = repo.Close() }()

			out := cmd.OutOrStdout()
			if n == 0 {
				fmt.Fprintln(out, formatMuted("User store already has data; nothing seeded."))
				return nil
			}
			fmt.Fprintf(out, "%s %s\n", formatStats(fmt.Sprintf("Seeded %d users", n)), formatMuted(a.config.Storage.DBPath))
			return nil
		},
	}
}

func (a *App) usersAddCmd() *cobra.Command {
	var (
		age   int
		email string
	)

	cmd := &cobra.Command{
		Use:   "add <name>",
		Short: "Add a user",
		Args:  cobra.ExactArgs(1),
		Example: `  widgetkit users add "Dora" --age 41 --email dora@example.com`,
		RunE: func(cmd *cobra.Command, args []string) error {
			u := user.User{Name: args[0], Age: age, Email: email}
			if err := u.Validate(); err != nil {
				return err
			}

			repo, err := a.getRepo(cmd)
			if err != nil {
				return err
			}
			if err := repo.CreateUser(cmd.Context(), &u); err != nil {
				return fmt.Errorf("creating user: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Created user #%d: %s\n", u.ID, u.Name)
			return nil
		},
	}

	cmd.Flags().IntVar(&age, "age", 0, "Age in years")
	cmd.Flags().StringVar(&email, "email", "", "Email address")

	return cmd
}

func (a *App) usersListCmd() *cobra.Command {
	var (
		sortKey string
		desc    bool
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Print stored users",
		Long: `Print stored users as a table.

--sort orders by a sortable column (name or age); ties keep insertion order.`,
		Example: `  widgetkit users list
  widgetkit users list --sort age --desc`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			repo, err := a.getRepo(cmd)
			if err != nil {
				return err
			}
			users, err := repo.ListUsers(cmd.Context())
			if err != nil {
				return fmt.Errorf("listing users: %w", err)
			}

			rows, err := sortUsers(users, sortKey, desc)
			if err != nil {
				return err
			}
			if len(rows) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), datatable.EmptyText)
				return nil
			}
			printUsers(cmd.OutOrStdout(), rows, termWidth())
			return nil
		},
	}

	cmd.Flags().StringVar(&sortKey, "sort", "", "Sort by column (name, age)")
	cmd.Flags().BoolVar(&desc, "desc", false, "Sort descending")

	return cmd
}

func (a *App) usersBrowseCmd() *cobra.Command {
	var (
		mode string
		copyOut bool
	)

	cmd := &cobra.Command{
		Use:   "browse",
		Short: "Browse users in the table widget",
		Long: `Browse stored users in the sortable, selectable table.

Press q to accept the selection; it is printed on exit. ctrl+c aborts.`,
		Example: `  widgetkit users browse --mode multiple
  widgetkit users browse --mode single --copy`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			selMode, err := datatable.ParseSelectionMode(mode)
			if err != nil {
				return err
			}
			repo, err := a.getRepo(cmd)
			if err != nil {
				return err
			}

			selected, err := tui.RunBrowse(repo, a.config, selMode, a.debug)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if len(selected) == 0 {
				fmt.Fprintln(out, formatMuted("No users selected."))
				return nil
			}
			fmt.Fprintln(out, formatHeader(fmt.Sprintf("Selected %d user(s)", len(selected))))
			text := selectionText(selected)
			fmt.Fprintln(out, text)

			if copyOut {
				if err := clipboard.WriteAll(text); err != nil {
					return fmt.Errorf("copying to clipboard: %w", err)
				}
				fmt.Fprintln(out, formatStats("Copied to clipboard"))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&mode, "mode", "multiple", "Selection mode (none, single, multiple)")
	cmd.Flags().BoolVar(&copyOut, "copy", false, "Copy the selection to the clipboard")

	return cmd
}

// sortUsers orders users the way the table widget would after sorting by key.
func sortUsers(users []user.User, key string, desc bool) ([]user.User, error) {
	m := datatable.New(datatable.Props[user.User]{
		Data:    users,
		Columns: user.Columns(),
	})
	if key == "" || len(users) == 0 {
		return m.Rows(), nil
	}
	if !m.ClickHeader(strings.ToLower(key)) {
		return nil, fmt.Errorf("%w: %q", ErrUnknownColumn, key)
	}
	if desc {
		m.ClickHeader(strings.ToLower(key))
	}
	return m.Rows(), nil
}

// printUsers prints users as aligned columns, truncating emails to fit width.
func printUsers(w io.Writer, users []user.User, width int) {
	nameW := len("Name")
	for _, u := range users {
		nameW = max(nameW, ansi.StringWidth(u.Name))
	}
	emailW := max(width-nameW-14, 10)

	fmt.Fprintf(w, "%s\n", formatHeader(fmt.Sprintf("%-4s %-*s %4s  %s", "ID", nameW, "Name", "Age", "Email")))
	for _, u := range users {
		fmt.Fprintf(w, "%-4d %-*s %4d  %s\n",
			u.ID,
			nameW, u.Name,
			u.Age,
			ansi.Truncate(u.Email, emailW, "…"),
		)
	}
}

// selectionText renders one user per line.
func selectionText(users []user.User) string {
	lines := make([]string, len(users))
	for i, u := range users {
		lines[i] = u.String()
	}
	return strings.Join(lines, "\n")
}
