package contract

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCheckRepository(t *testing.T) {
	ctx := context.Background()

	t.Run("marker directory passes without probing", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, os.Mkdir(filepath.Join(dir, ".git"), 0o755))
		client := &MockGitClient{}

		assert.NoError(t, CheckRepository(ctx, client, dir))
		client.AssertNotCalled(t, "IsInsideWorkTree", mock.Anything, mock.Anything)
	})

	t.Run("marker file passes for worktrees", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(dir, ".git"), []byte("gitdir: /elsewhere\n"), 0o644))
		assert.NoError(t, CheckRepository(ctx, &MockGitClient{}, dir))
	})

	t.Run("missing path", func(t *testing.T) {
		err := CheckRepository(ctx, &MockGitClient{}, filepath.Join(t.TempDir(), "nope"))
		assert.ErrorIs(t, err, ErrInvalidRepoPath)
	})

	t.Run("regular file", func(t *testing.T) {
		file := filepath.Join(t.TempDir(), "README.md")
		require.NoError(t, os.WriteFile(file, []byte("hi"), 0o644))
		err := CheckRepository(ctx, &MockGitClient{}, file)
		assert.ErrorIs(t, err, ErrInvalidRepoPath)
	})

	t.Run("probe confirms work tree", func(t *testing.T) {
		dir := t.TempDir()
		client := &MockGitClient{}
		client.On("IsInsideWorkTree", mock.Anything, dir).Return(true, nil)

		assert.NoError(t, CheckRepository(ctx, client, dir))
		client.AssertExpectations(t)
	})

	t.Run("probe says false", func(t *testing.T) {
		dir := t.TempDir()
		client := &MockGitClient{}
		client.On("IsInsideWorkTree", mock.Anything, dir).Return(false, nil)

		err := CheckRepository(ctx, client, dir)
		assert.ErrorIs(t, err, ErrNotRepository)
		assert.Contains(t, err.Error(), dir)
	})

	t.Run("probe fails", func(t *testing.T) {
		dir := t.TempDir()
		client := &MockGitClient{}
		client.On("IsInsideWorkTree", mock.Anything, dir).Return(false, errors.New("fatal: not a git repository"))

		assert.ErrorIs(t, CheckRepository(ctx, client, dir), ErrNotRepository)
	})
}
