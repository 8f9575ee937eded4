package db

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/javiermolinar/widgetkit/internal/user"
)

func TestCreateUser(t *testing.T) {
	repo := newTestRepo(t)

	u := &user.User{Name: "Ann", Age: 30, Email: "ann@example.com"}
	if err := repo.CreateUser(context.Background(), u); err != nil {
		t.Fatalf("CreateUser failed: %v", err)
	}
	if u.ID == 0 {
		t.Error("expected ID to be set after insert")
	}

	got, err := repo.GetUser(context.Background(), u.ID)
	if err != nil {
		t.Fatalf("GetUser failed: %v", err)
	}
	if *got != *u {
		t.Errorf("GetUser = %+v, want %+v", *got, *u)
	}
}

func TestCreateUser_Invalid(t *testing.T) {
	repo := newTestRepo(t)

	err := repo.CreateUser(context.Background(), &user.User{Name: ""})
	if !errors.Is(err, user.ErrEmptyName) {
		t.Fatalf("expected ErrEmptyName, got %v", err)
	}
}

func TestGetUser_NotFound(t *testing.T) {
	repo := newTestRepo(t)

	_, err := repo.GetUser(context.Background(), 999)
	if !errors.Is(err, user.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestListUsers_InsertionOrder(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	for _, name := range []string{"Bob", "Ann", "Cid"} {
		if err := repo.CreateUser(ctx, &user.User{Name: name, Age: 30}); err != nil {
			t.Fatalf("CreateUser(%s) failed: %v", name, err)
		}
	}

	users, err := repo.ListUsers(ctx)
	if err != nil {
		t.Fatalf("ListUsers failed: %v", err)
	}
	if len(users) != 3 {
		t.Fatalf("expected 3 users, got %d", len(users))
	}
	for i, want := range []string{"Bob", "Ann", "Cid"} {
		if users[i].Name != want {
			t.Errorf("users[%d] = %s, want %s", i, users[i].Name, want)
		}
	}
}

func TestListUsers_Empty(t *testing.T) {
	repo := newTestRepo(t)

	users, err := repo.ListUsers(context.Background())
	if err != nil {
		t.Fatalf("ListUsers failed: %v", err)
	}
	if len(users) != 0 {
		t.Errorf("expected no users, got %d", len(users))
	}
}

func TestSeed(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	n, err := user.Seed(ctx, repo, user.Samples())
	if err != nil {
		t.Fatalf("Seed failed: %v", err)
	}
	if n != len(user.Samples()) {
		t.Errorf("Seed inserted %d, want %d", n, len(user.Samples()))
	}

	n, err = user.Seed(ctx, repo, user.Samples())
	if err != nil {
		t.Fatalf("second Seed failed: %v", err)
	}
	if n != 0 {
		t.Errorf("second Seed inserted %d, want 0", n)
	}

	count, err := repo.CountUsers(ctx)
	if err != nil {
		t.Fatalf("CountUsers failed: %v", err)
	}
	if count != len(user.Samples()) {
		t.Errorf("CountUsers = %d, want %d", count, len(user.Samples()))
	}
}

func TestNew_ReopenKeepsData(t *testing.T) {
	path := filepath.Join(t.TempDir(), "users.db")
	repo, err := New(path)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if err := repo.CreateUser(context.Background(), &user.User{Name: "Ann"}); err != nil {
		t.Fatalf("CreateUser failed: %v", err)
	}
	_ = repo.Close()

	repo, err = New(path)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	defer func() { _ = repo.Close() }()

	count, err := repo.CountUsers(context.Background())
	if err != nil {
		t.Fatalf("CountUsers failed: %v", err)
	}
	if count != 1 {
		t.Errorf("CountUsers = %d, want 1", count)
	}
}

func newTestRepo(t *testing.T) *SQLite {
	t.Helper()

	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	repo, err := New(dbPath)
	if err != nil {
		t.Fatalf("failed to create test repo: %v", err)
	}

	t.Cleanup(func() {
		_ = repo.Close()
	})

	return repo
}
