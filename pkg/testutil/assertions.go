// pkg/testutil/assertions.go
// DEPENDENCIES: testify
// PURPOSE: Filesystem assertions shared by sync tests

package testutil

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// AssertSymlink checks path is a symlink pointing exactly at target
func AssertSymlink(t *testing.T, path, target string) {
	t.Helper()
	info, err := os.Lstat(path)
	require.NoError(t, err, "expected symlink at %s", path)
	require.True(t, info.Mode()&os.ModeSymlink != 0, "%s should be a symlink", path)

	got, err := os.Readlink(path)
	require.NoError(t, err)
	assert.Equal(t, target, got, "symlink %s target", path)
}

// AssertRegularFile checks path is a real file with the given content
func AssertRegularFile(t *testing.T, path, content string) {
	t.Helper()
	info, err := os.Lstat(path)
	require.NoError(t, err, "expected file at %s", path)
	require.True(t, info.Mode().IsRegular(), "%s should be a regular file", path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, content, string(data))
}

// AssertNotExists checks nothing (not even a dangling link) is at path
func AssertNotExists(t *testing.T, path string) {
	t.Helper()
	_, err := os.Lstat(path)
	assert.True(t, os.IsNotExist(err), "%s should not exist", path)
}
