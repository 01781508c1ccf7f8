package contract

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"

	"github.com/huangsam/consta/schema"
)

// LocalGitClient implements the GitClient interface by executing the
// local 'git' binary installed on the machine.
type LocalGitClient struct{}

var _ GitClient = &LocalGitClient{} // Compile-time check

// NewLocalGitClient creates a new instance of the local Git client.
func NewLocalGitClient() *LocalGitClient {
	return &LocalGitClient{}
}

// Run executes a git command and returns its stdout output.
// The command is killed when ctx is done.
func (c *LocalGitClient) Run(ctx context.Context, repoPath string, args ...string) ([]byte, error) {
	fullArgs := append([]string{"-C", repoPath}, args...)
	cmd := exec.CommandContext(ctx, "git", fullArgs...)
	out, err := cmd.Output()
	if ctxErr := ctx.Err(); ctxErr != nil {
		return nil, fmt.Errorf("git command in %q did not finish: %w", repoPath, ctxErr)
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		stderr := strings.TrimSpace(string(exitErr.Stderr))
		return nil, fmt.Errorf("git command failed in %q: %s: %w", repoPath, stderr, err)
	} else if err != nil {
		return nil, fmt.Errorf("git command failed: %w. Ensure Git is installed and available on your PATH", err)
	}
	return out, nil
}

// GetContributionLog implements the GitClient interface.
func (c *LocalGitClient) GetContributionLog(ctx context.Context, repoPath string, query schema.LogQuery) ([]byte, error) {
	return c.Run(ctx, repoPath, ContributionLogArgs(query)...)
}

// IsInsideWorkTree implements the GitClient interface.
func (c *LocalGitClient) IsInsideWorkTree(ctx context.Context, repoPath string) (bool, error) {
	out, err := c.Run(ctx, repoPath, "rev-parse", "--is-inside-work-tree")
	if err != nil {
		return false, err
	}
	return strings.TrimSpace(string(out)) == "true", nil
}

// ContributionLogArgs builds the git log arguments for a query.
// Filters are passed through verbatim and omitted when blank.
func ContributionLogArgs(query schema.LogQuery) []string {
	args := []string{
		"log",
		"--numstat",
		"--pretty=format:" + schema.LogHeaderFormat,
	}
	if strings.TrimSpace(query.Author) != "" {
		args = append(args, "--author="+query.Author)
	}
	if strings.TrimSpace(query.Since) != "" {
		args = append(args, "--since="+query.Since)
	}
	if strings.TrimSpace(query.Until) != "" {
		args = append(args, "--until="+query.Until)
	}
	return args
}
