// pkg/testutil/files.go
// DEPENDENCIES: testify
// PURPOSE: File and symlink helpers that fail the test on error

package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// CreateFile writes content to dir/name, creating parent directories
func CreateFile(t *testing.T, dir, name, content string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

// CreateSymlink creates link pointing to target, creating link's parent
func CreateSymlink(t *testing.T, target, link string) {
	t.Helper()

	require.NoError(t, os.MkdirAll(filepath.Dir(link), 0755))
	require.NoError(t, os.Symlink(target, link))
}

// SymlinkExists reports whether path is a symbolic link
func SymlinkExists(t *testing.T, path string) bool {
	t.Helper()

	info, err := os.Lstat(path)
	return err == nil && info.Mode()&os.ModeSymlink != 0
}

// ReadFile returns the content of path
func ReadFile(t *testing.T, path string) string {
	t.Helper()

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(content)
}

// AssertFileContent checks that path is a regular file holding expected
func AssertFileContent(t *testing.T, path, expected string) {
	t.Helper()

	info, err := os.Lstat(path)
	require.NoError(t, err, "file %s does not exist", path)
	require.True(t, info.Mode().IsRegular(), "%s is not a regular file", path)
	assert.Equal(t, expected, ReadFile(t, path), "content of %s", path)
}

// AssertSymlink checks that link is a symlink pointing to expectedTarget
func AssertSymlink(t *testing.T, link, expectedTarget string) {
	t.Helper()

	require.True(t, SymlinkExists(t, link), "symlink %s does not exist", link)
	target, err := os.Readlink(link)
	require.NoError(t, err)
	assert.Equal(t, expectedTarget, target, "target of %s", link)
}

// AssertNoFile checks that nothing, not even a dangling symlink, is at path
func AssertNoFile(t *testing.T, path string) {
	t.Helper()

	_, err := os.Lstat(path)
	assert.True(t, os.IsNotExist(err), "%s exists but should not", path)
}
