// pkg/testutil/environment.go
// DEPENDENCIES: pkg/paths, pkg/config, pkg/logging
// PURPOSE: Isolated dotfiles environments with a config file

package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/arthur-debert/dotm/pkg/config"
	"github.com/arthur-debert/dotm/pkg/logging"
	"github.com/arthur-debert/dotm/pkg/paths"
	"github.com/stretchr/testify/require"
)

// TestDistro is the distro id every test environment uses
const TestDistro = "testos"

// TestEnvironment holds temp directories standing in for the dotfiles
// directory, $HOME and dotm's data directory
type TestEnvironment struct {
	DotfilesRoot string
	HomeDir      string
	DataDir      string
	Paths        paths.Paths

	t *testing.T
}

// NewTestEnvironment creates the directories and points HOME, the data
// dir and the log file at them for the duration of the test
func NewTestEnvironment(t *testing.T) *TestEnvironment {
	t.Helper()

	base := t.TempDir()
	env := &TestEnvironment{
		DotfilesRoot: filepath.Join(base, "dotfiles"),
		HomeDir:      filepath.Join(base, "home"),
		DataDir:      filepath.Join(base, "data"),
		t:            t,
	}
	for _, dir := range []string{env.DotfilesRoot, env.HomeDir, env.DataDir} {
		require.NoError(t, os.MkdirAll(dir, 0755))
	}

	t.Setenv(paths.EnvHome, env.HomeDir)
	t.Setenv(paths.EnvDataDir, env.DataDir)
	t.Setenv(logging.EnvLogFile, filepath.Join(base, "dotm.log"))
	t.Setenv(paths.EnvDotfilesDir, "")
	t.Setenv(paths.EnvDistro, "")

	p, err := paths.New(env.DotfilesRoot, TestDistro)
	require.NoError(t, err)
	env.Paths = p
	return env
}

// WriteConfig writes dotm-<distro>.yaml into the dotfiles directory
func (e *TestEnvironment) WriteConfig(content string) string {
	e.t.Helper()
	return CreateFile(e.t, e.DotfilesRoot, "dotm-"+TestDistro+".yaml", content)
}

// LoadConfig writes content as the config file and loads it
func (e *TestEnvironment) LoadConfig(content string) *config.Config {
	e.t.Helper()

	e.WriteConfig(content)
	c, err := config.Load(config.LoadOptions{Paths: e.Paths})
	require.NoError(e.t, err)
	return c
}

// Dotfile writes a file into the dotfiles directory
func (e *TestEnvironment) Dotfile(name, content string) string {
	e.t.Helper()
	return CreateFile(e.t, e.DotfilesRoot, name, content)
}

// HomeFile writes a file into the home directory
func (e *TestEnvironment) HomeFile(name, content string) string {
	e.t.Helper()
	return CreateFile(e.t, e.HomeDir, name, content)
}
