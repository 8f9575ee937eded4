package integration

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/javiermolinar/widgetkit/internal/db"
	"github.com/javiermolinar/widgetkit/internal/tui/datatable"
	"github.com/javiermolinar/widgetkit/internal/user"
)

// openRepo creates a fresh repository for each test with automatic cleanup.
func openRepo(t *testing.T) *db.SQLite {
	t.Helper()
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")
	repo, err := db.New(dbPath)
	if err != nil {
		t.Fatalf("failed to open repo: %v", err)
	}
	t.Cleanup(func() { _ = repo.Close() })
	return repo
}

// createUser is a helper to validate and insert a user.
func createUser(t *testing.T, repo *db.SQLite, name string, age int, email string) user.User {
	t.Helper()
	u := user.User{Name: name, Age: age, Email: email}
	if err := u.Validate(); err != nil {
		t.Fatalf("invalid user: %v", err)
	}
	if err := repo.CreateUser(context.Background(), &u); err != nil {
		t.Fatalf("failed to insert user: %v", err)
	}
	return u
}

func loadTable(t *testing.T, repo *db.SQLite, mode datatable.SelectionMode, onChange func([]user.User)) datatable.Model[user.User] {
	t.Helper()
	users, err := repo.ListUsers(context.Background())
	if err != nil {
		t.Fatalf("failed to list users: %v", err)
	}
	return datatable.New(datatable.Props[user.User]{
		Data:              users,
		Columns:           user.Columns(),
		SelectionMode:     mode,
		OnSelectionChange: onChange,
	})
}

func names(users []user.User) []string {
	out := make([]string, len(users))
	for i, u := range users {
		out[i] = u.Name
	}
	return out
}

func equal(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestStoredUsers_SortByAge(t *testing.T) {
	repo := openRepo(t)
	createUser(t, repo, "Bob", 30, "bob@example.com")
	createUser(t, repo, "Ann", 30, "ann@example.com")
	createUser(t, repo, "Cid", 25, "cid@example.com")

	table := loadTable(t, repo, datatable.SelectNone, nil)
	if !table.ClickHeader("age") {
		t.Fatal("expected age to be sortable")
	}
	if got, want := names(table.Rows()), []string{"Cid", "Bob", "Ann"}; !equal(got, want) {
		t.Fatalf("ascending = %v, want %v", got, want)
	}

	table.ClickHeader("age")
	if got, want := names(table.Rows()), []string{"Bob", "Ann", "Cid"}; !equal(got, want) {
		t.Fatalf("descending = %v, want %v", got, want)
	}

	table.ClickHeader("age")
	if got, want := names(table.Rows()), []string{"Cid", "Bob", "Ann"}; !equal(got, want) {
		t.Fatalf("back to ascending = %v, want %v", got, want)
	}
}

func TestStoredUsers_EmailNotSortable(t *testing.T) {
	repo := openRepo(t)
	createUser(t, repo, "Zed", 20, "zed@example.com")
	createUser(t, repo, "Amy", 21, "amy@example.com")

	table := loadTable(t, repo, datatable.SelectNone, nil)
	if table.ClickHeader("email") {
		t.Fatal("email should not be sortable")
	}
	if _, ok := table.Sort(); ok {
		t.Fatal("sort should remain unset")
	}
	if got, want := names(table.Rows()), []string{"Zed", "Amy"}; !equal(got, want) {
		t.Fatalf("rows = %v, want %v", got, want)
	}
}

func TestStoredUsers_SelectionByID(t *testing.T) {
	repo := openRepo(t)
	alice := createUser(t, repo, "Alice", 25, "alice@example.com")
	bob := createUser(t, repo, "Bob", 30, "bob@example.com")

	var calls [][]user.User
	table := loadTable(t, repo, datatable.SelectMultiple, func(sel []user.User) {
		calls = append(calls, sel)
	})

	table.Toggle(alice.RowID())
	table.ClickHeader("name")
	table.ClickHeader("name")
	table.Toggle(bob.RowID())
	table.Toggle(alice.RowID())

	if len(calls) != 3 {
		t.Fatalf("callback calls = %d, want 3", len(calls))
	}
	if got, want := names(calls[1]), []string{"Alice", "Bob"}; !equal(got, want) {
		t.Fatalf("second call = %v, want %v", got, want)
	}
	if got, want := names(table.Selection()), []string{"Bob"}; !equal(got, want) {
		t.Fatalf("selection = %v, want %v", got, want)
	}
}

func TestSeed_OnlyWhenEmpty(t *testing.T) {
	repo := openRepo(t)
	ctx := context.Background()

	n, err := user.Seed(ctx, repo, user.Samples())
	if err != nil {
		t.Fatalf("seed: %v", err)
	}
	if n != 3 {
		t.Fatalf("seeded = %d, want 3", n)
	}

	n, err = user.Seed(ctx, repo, user.Samples())
	if err != nil {
		t.Fatalf("reseed: %v", err)
	}
	if n != 0 {
		t.Fatalf("reseeded = %d, want 0", n)
	}
}

func TestGetUser_NotFound(t *testing.T) {
	repo := openRepo(t)

	_, err := repo.GetUser(context.Background(), 42)
	if !errors.Is(err, user.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}
