package contract

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// Repository precondition errors. Both are fatal for a whole run.
var (
	ErrInvalidRepoPath = errors.New("repository path does not exist or is not a directory")
	ErrNotRepository   = errors.New("not a valid Git repository")
)

// gitMarker is the entry whose presence identifies a repository root without
// asking git.
const gitMarker = ".git"

// CheckRepository verifies that repoPath exists, is a directory and is a
// working Git repository. The marker check runs first; the git probe is
// only used when the marker is absent (e.g. a subdirectory of a work tree).
func CheckRepository(ctx context.Context, client GitClient, repoPath string) error {
	info, err := os.Stat(repoPath)
	if err != nil || !info.IsDir() {
		return fmt.Errorf("%w: %s", ErrInvalidRepoPath, repoPath)
	}

	if _, err := os.Stat(filepath.Join(repoPath, gitMarker)); err == nil {
		return nil
	}

	ok, err := client.IsInsideWorkTree(ctx, repoPath)
	if err != nil {
		Logger().WithError(err).WithField("repo", repoPath).Debug("git validity probe failed")
		return fmt.Errorf("%w: %s", ErrNotRepository, repoPath)
	}
	if !ok {
		return fmt.Errorf("%w: %s", ErrNotRepository, repoPath)
	}
	return nil
}
