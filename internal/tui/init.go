package tui

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/javiermolinar/widgetkit/internal/db"
	"github.com/javiermolinar/widgetkit/internal/user"
)

// OpenRepo opens the user store at dbPath, creating its directory when needed.
func OpenRepo(dbPath string) (user.Repository, error) {
	if dbPath == "" {
		return nil, fmt.Errorf("db path is empty")
	}
	dbDir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dbDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}
	repo, err := db.New(dbPath)
	if err != nil {
		return nil, fmt.Errorf("initializing database: %w", err)
	}
	return repo, nil
}

// OpenSeededRepo opens the user store and inserts the sample users if it is empty.
func OpenSeededRepo(ctx context.Context, dbPath string) (user.Repository, int, error) {
	repo, err := OpenRepo(dbPath)
	if err != nil {
		return nil, 0, err
	}
	n, err := user.Seed(ctx, repo, user.Samples())
	if err != nil {
		_ = repo.Close()
		return nil, 0, fmt.Errorf("seeding users: %w", err)
	}
	return repo, n, nil
}

// existingRepo opens the store only if its file already exists.
func existingRepo(dbPath string) (user.Repository, error) {
	missing, err := pathMissing(dbPath)
	if err != nil {
		return nil, fmt.Errorf("checking db path: %w", err)
	}
	if missing {
		return nil, nil
	}
	return OpenRepo(dbPath)
}

func pathMissing(path string) (bool, error) {
	if path == "" {
		return true, nil
	}
	_, err := os.Stat(path)
	if err == nil {
		return false, nil
	}
	if os.IsNotExist(err) {
		return true, nil
	}
	return false, err
}
