package commands

import (
	"context"
	"errors"
	"testing"

	"github.com/javiermolinar/widgetkit/internal/user"
)

type fakeRepo struct {
	users []user.User
	err   error
}

func (f fakeRepo) CreateUser(ctx context.Context, u *user.User) error {
	return errors.New("not implemented")
}

func (f fakeRepo) GetUser(ctx context.Context, id int64) (*user.User, error) {
	return nil, errors.New("not implemented")
}

func (f fakeRepo) ListUsers(ctx context.Context) ([]user.User, error) {
	return f.users, f.err
}

func (f fakeRepo) CountUsers(ctx context.Context) (int, error) {
	return len(f.users), f.err
}

func (f fakeRepo) Close() error {
	return nil
}

func TestLoadUsers(t *testing.T) {
	repo := fakeRepo{users: user.Samples()}

	msg := LoadUsers(repo)()
	loaded, ok := msg.(UsersLoadedMsg)
	if !ok {
		t.Fatalf("expected UsersLoadedMsg, got %T", msg)
	}
	if len(loaded.Users) != len(user.Samples()) {
		t.Fatalf("users = %d, want %d", len(loaded.Users), len(user.Samples()))
	}
}

func TestLoadUsers_Error(t *testing.T) {
	boom := errors.New("boom")
	repo := fakeRepo{err: boom}

	msg := LoadUsers(repo)()
	errMsg, ok := msg.(ErrMsg)
	if !ok {
		t.Fatalf("expected ErrMsg, got %T", msg)
	}
	if !errors.Is(errMsg.Err, boom) {
		t.Fatalf("expected wrapped boom, got %v", errMsg.Err)
	}
}
