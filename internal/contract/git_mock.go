package contract

import (
	"context"

	"github.com/huangsam/consta/schema"
	"github.com/stretchr/testify/mock"
)

// MockGitClient is a testify mock for the GitClient interface.
type MockGitClient struct {
	mock.Mock
}

var _ GitClient = &MockGitClient{} // Compile-time check

// Run implements the GitClient interface.
func (m *MockGitClient) Run(ctx context.Context, repoPath string, args ...string) ([]byte, error) {
	var mockArgs []any
	mockArgs = append(mockArgs, ctx, repoPath)
	for _, arg := range args {
		mockArgs = append(mockArgs, arg)
	}
	ret := m.Called(mockArgs...)
	output, _ := ret.Get(0).([]byte)
	return output, ret.Error(1)
}

// GetContributionLog implements the GitClient interface.
func (m *MockGitClient) GetContributionLog(ctx context.Context, repoPath string, query schema.LogQuery) ([]byte, error) {
	ret := m.Called(ctx, repoPath, query)
	output, _ := ret.Get(0).([]byte)
	return output, ret.Error(1)
}

// IsInsideWorkTree implements the GitClient interface.
func (m *MockGitClient) IsInsideWorkTree(ctx context.Context, repoPath string) (bool, error) {
	ret := m.Called(ctx, repoPath)
	return ret.Bool(0), ret.Error(1)
}
