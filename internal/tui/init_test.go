package tui

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenSeededRepo(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "widgetkit.db")
	ctx := context.Background()

	repo, n, err := OpenSeededRepo(ctx, path)
	require.NoError(t, err)
	assert.Equal(t, 3, n)
	require.NoError(t, repo.Close())

	repo, n, err = OpenSeededRepo(ctx, path)
	require.NoError(t, err)
	defer func() { _ = repo.Close() }()
	assert.Equal(t, 0, n, "second open should not reseed")

	users, err := repo.ListUsers(ctx)
	require.NoError(t, err)
	assert.Len(t, users, 3)
}

func TestExistingRepo(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.db")

	repo, err := existingRepo(path)
	require.NoError(t, err)
	assert.Nil(t, repo)

	_, err = OpenRepo("")
	assert.Error(t, err)
}
