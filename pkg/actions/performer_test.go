// pkg/actions/performer_test.go
// TEST TYPE: Integration Test
// DEPENDENCIES: Filesystem (temp dirs), /bin/sh
// PURPOSE: Test performing links, scripts and package installs

package actions

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/arthur-debert/dotm/pkg/config"
	"github.com/arthur-debert/dotm/pkg/errors"
	"github.com/arthur-debert/dotm/pkg/paths"
	"github.com/arthur-debert/dotm/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixture struct {
	root   string
	home   string
	backup string
	stdout *bytes.Buffer
	perf   *Performer
}

func newFixture(t *testing.T, dryRun bool, mutate ...func(*config.Conf)) *fixture {
	t.Helper()
	f := &fixture{
		root:   t.TempDir(),
		home:   t.TempDir(),
		stdout: &bytes.Buffer{},
	}
	f.backup = filepath.Join(t.TempDir(), "backup")
	t.Setenv("HOME", f.home)
	t.Setenv(paths.EnvDataDir, t.TempDir())

	p, err := paths.New(f.root, "arch")
	require.NoError(t, err)

	conf := config.DefaultConf()
	conf.Shell = "sh"
	conf.BackupDir = f.backup
	conf.PkgManagers.InstallCmds["fake"] = "echo %pkg >> installed.txt"
	conf.PkgManagers.InstallCmds["pct"] = "echo 100%% %pkg >> installed.txt"
	for _, m := range mutate {
		m(&conf)
	}

	f.perf = NewPerformer(Options{
		Conf:   conf,
		Paths:  p,
		DryRun: dryRun,
		Stdout: f.stdout,
		Stderr: &bytes.Buffer{},
	})
	return f
}

func (f *fixture) write(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

func TestPerform_Links(t *testing.T) {
	f := newFixture(t, false)
	f.write(t, filepath.Join(f.root, "zshrc"), "zsh config")

	action := types.NewLinksAction(types.Link{Source: "zshrc", Dests: []string{"~/.zshrc", "~/.config/zsh/zshrc"}})
	require.NoError(t, f.perf.Perform(context.Background(), action))

	for _, dest := range []string{filepath.Join(f.home, ".zshrc"), filepath.Join(f.home, ".config", "zsh", "zshrc")} {
		target, err := os.Readlink(dest)
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(f.root, "zshrc"), target)
	}
}

func TestPerform_LinksRelativeDest(t *testing.T) {
	f := newFixture(t, false)
	f.write(t, filepath.Join(f.root, "hosts"), "127.0.0.1 box")

	require.NoError(t, f.perf.Perform(context.Background(),
		types.NewLinksAction(types.Link{Source: "hosts", Dests: []string{"generated/hosts"}})))

	target, err := os.Readlink(filepath.Join(f.root, "generated", "hosts"))
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(f.root, "hosts"), target)
	assert.NoFileExists(t, filepath.Join(f.home, "generated", "hosts"))
}

func TestPerform_LinksReplaceSymlink(t *testing.T) {
	f := newFixture(t, false)
	f.write(t, filepath.Join(f.root, "vimrc"), "new")
	dest := filepath.Join(f.home, ".vimrc")
	require.NoError(t, os.Symlink("/somewhere/else", dest))

	require.NoError(t, f.perf.Perform(context.Background(),
		types.NewLinksAction(types.Link{Source: "vimrc", Dests: []string{dest}})))

	target, err := os.Readlink(dest)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(f.root, "vimrc"), target)
	assert.NoDirExists(t, f.backup, "symlinks are not backed up")
}

func TestPerform_LinksBackupExisting(t *testing.T) {
	f := newFixture(t, false)
	f.write(t, filepath.Join(f.root, "gitconfig"), "managed")
	dest := filepath.Join(f.home, ".gitconfig")
	action := types.NewLinksAction(types.Link{Source: "gitconfig", Dests: []string{dest}})

	f.write(t, dest, "first")
	require.NoError(t, f.perf.Perform(context.Background(), action))

	require.NoError(t, os.Remove(dest))
	f.write(t, dest, "second")
	require.NoError(t, f.perf.Perform(context.Background(), action))

	first, err := os.ReadFile(filepath.Join(f.backup, ".gitconfig"))
	require.NoError(t, err)
	assert.Equal(t, "first", string(first))

	second, err := os.ReadFile(filepath.Join(f.backup, ".gitconfig (1)"))
	require.NoError(t, err)
	assert.Equal(t, "second", string(second))

	target, err := os.Readlink(dest)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(f.root, "gitconfig"), target)
}

func TestPerform_Shell(t *testing.T) {
	f := newFixture(t, false)

	err := f.perf.Perform(context.Background(), types.NewShellAction("echo one > out.txt", "echo two >> out.txt", "echo $DOTM_DISTRO"))
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(f.root, "out.txt"))
	require.NoError(t, err)
	assert.Equal(t, "one\ntwo\n", string(data))
	assert.Equal(t, "arch\n", f.stdout.String())
}

func TestPerform_ShellFailures(t *testing.T) {
	tests := []struct {
		name    string
		script  string
		message string
	}{
		{"exit status", "exit 3", "Process exited with status code 3"},
		{"signal", "kill -9 $$", "Process terminated by a signal"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t, false)
			err := f.perf.Perform(context.Background(), types.NewShellAction(tt.script))
			require.Error(t, err)
			assert.Equal(t, errors.ErrCommandFailed, errors.GetErrorCode(err))
			assert.Equal(t, tt.message, errors.Message(err))
		})
	}
}

func TestPerform_ShellTimeout(t *testing.T) {
	f := newFixture(t, false, func(c *config.Conf) { c.CommandTimeout = 100 * time.Millisecond })

	start := time.Now()
	err := f.perf.Perform(context.Background(), types.NewShellAction("sleep 5"))
	require.Error(t, err)
	assert.Less(t, time.Since(start), 4*time.Second)
	assert.Equal(t, "Process terminated by a signal", errors.Message(err))
	assert.Equal(t, true, errors.GetErrorDetails(err)["timeout"])
}

func TestPerform_InTemp(t *testing.T) {
	f := newFixture(t, false)

	require.NoError(t, f.perf.Perform(context.Background(), types.NewInTempAction("pwd", "touch marker")))

	dir := strings.TrimSpace(f.stdout.String())
	assert.NotEqual(t, f.root, dir)
	assert.NoDirExists(t, dir, "temp dir is removed afterwards")
	assert.NoFileExists(t, filepath.Join(f.root, "marker"))
}

func TestPerform_Pkgs(t *testing.T) {
	f := newFixture(t, false)

	action := types.NewPkgsAction(
		types.PkgInstall{Manager: "fake", Packages: []string{"zsh", "git"}},
		types.PkgInstall{Manager: "pct", Packages: []string{"tmux"}},
	)
	require.NoError(t, f.perf.Perform(context.Background(), action))

	data, err := os.ReadFile(filepath.Join(f.root, "installed.txt"))
	require.NoError(t, err)
	assert.Equal(t, "zsh\ngit\n100% tmux\n", string(data))
}

func TestPerform_PkgsUnknownManagerRunsNothing(t *testing.T) {
	f := newFixture(t, false)

	action := types.NewPkgsAction(
		types.PkgInstall{Manager: "fake", Packages: []string{"zsh"}},
		types.PkgInstall{Manager: "brew", Packages: []string{"jq"}},
	)
	err := f.perf.Perform(context.Background(), action)
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrUnknownPkgManager))
	assert.NoFileExists(t, filepath.Join(f.root, "installed.txt"))
}

func TestPerform_Deps(t *testing.T) {
	f := newFixture(t, false)
	assert.NoError(t, f.perf.Perform(context.Background(), types.NewDepsAction("a", "b")))
	assert.Empty(t, f.stdout.String())
}

func TestPerform_DryRun(t *testing.T) {
	f := newFixture(t, true)
	dest := filepath.Join(f.home, ".zshrc")
	f.write(t, dest, "keep me")

	rule := &types.Rule{Name: "zsh", Actions: []types.Action{
		types.NewPkgsAction(types.PkgInstall{Manager: "fake", Packages: []string{"zsh"}}),
		types.NewLinksAction(types.Link{Source: "zshrc", Dests: []string{dest}}),
		types.NewShellAction("exit 1"),
		types.NewInTempAction("exit 1"),
	}}
	require.NoError(t, f.perf.PerformRule(context.Background(), rule))

	out := f.stdout.String()
	assert.Contains(t, out, "echo zsh >> installed.txt")
	assert.Contains(t, out, "Would link `"+dest+"` -> `"+filepath.Join(f.root, "zshrc")+"`")
	assert.Contains(t, out, "  exit 1")
	assert.Contains(t, out, "<temporary directory>")

	data, err := os.ReadFile(dest)
	require.NoError(t, err)
	assert.Equal(t, "keep me", string(data))
	assert.NoFileExists(t, filepath.Join(f.root, "installed.txt"))
}

func TestPerformRule_StopsAtFirstFailure(t *testing.T) {
	f := newFixture(t, false)

	rule := &types.Rule{Name: "broken", Actions: []types.Action{
		types.NewShellAction("echo before"),
		types.NewShellAction("exit 2"),
		types.NewShellAction("echo after"),
	}}
	err := f.perf.PerformRule(context.Background(), rule)
	require.Error(t, err)

	assert.Equal(t, errors.ErrActionExecute, errors.GetErrorCode(err))
	assert.Equal(t, "Failed to perform `shell` action: Process exited with status code 2", errors.Message(err))
	assert.Equal(t, 2, errors.GetErrorDetails(err)["index"])
	assert.Equal(t, "before\n", f.stdout.String())
}

func TestPerformRule_Cancelled(t *testing.T) {
	f := newFixture(t, false)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := f.perf.PerformRule(ctx, &types.Rule{Name: "x", Actions: []types.Action{types.NewShellAction("echo hi")}})
	assert.True(t, errors.IsErrorCode(err, errors.ErrAborted))
}

func TestPerformAt(t *testing.T) {
	f := newFixture(t, false)
	rule := &types.Rule{Name: "r", Actions: []types.Action{
		types.NewShellAction("echo first"),
		types.NewShellAction("echo second"),
	}}

	action, err := f.perf.PerformAt(context.Background(), rule, 2)
	require.NoError(t, err)
	assert.Equal(t, "echo second", action.Script)
	assert.Equal(t, "second\n", f.stdout.String())

	_, err = f.perf.PerformAt(context.Background(), rule, 3)
	require.Error(t, err)
	assert.Equal(t, errors.ErrIndexOutOfRange, errors.GetErrorCode(err))
	assert.Equal(t, "Index 3 is out of range (rule `r` has 2 actions)", errors.Message(err))
}

func TestExpandInstallCmd(t *testing.T) {
	tests := []struct {
		template string
		want     string
	}{
		{"pacman -S %pkg", "pacman -S zsh"},
		{"echo 100%%", "echo 100%"},
		{"%%pkg", "%pkg"},
		{"%pkg %pkg", "zsh zsh"},
		{"no vars", "no vars"},
		{"%p", "%p"},
	}
	for _, tt := range tests {
		t.Run(tt.template, func(t *testing.T) {
			assert.Equal(t, tt.want, ExpandInstallCmd(tt.template, "zsh"))
		})
	}
}
