// pkg/config/loader_test.go
// TEST TYPE: Integration Test
// DEPENDENCIES: Filesystem (temp dirs), koanf
// PURPOSE: Test config lookup, format parsing and layering

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/arthur-debert/dotm/pkg/errors"
	"github.com/arthur-debert/dotm/pkg/paths"
	"github.com/arthur-debert/dotm/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const yamlConfig = `
conf:
  shell: zsh
  backup_dir: backups
  command_timeout: 90s
  pkg_managers:
    install_cmds:
      pacman: sudo pacman -S --needed %pkg
      yay: yay -S %pkg
    deps:
      yay: [yay-bin]

rules:
  yay-bin:
    - in_temp:
        - git clone https://aur.archlinux.org/yay-bin.git
        - cd yay-bin && makepkg -si
  zsh:
    - pkgs:
        pacman: zsh zsh-completions
    - links:
        zshrc: ~/.zshrc
  nvim:
    deps: [zsh]
    post: [nvim-plugins]
    actions:
      - pkgs:
          yay: [neovim-git]
      - links:
          nvim: [~/.config/nvim]
      - shell: echo done
  nvim-plugins:
    - shell:
        - nvim --headless +PlugInstall +qa
  empty:
  all:
    - deps: zsh nvim
`

func setupDotfiles(t *testing.T, name, content string) paths.Paths {
	t.Helper()
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, name), []byte(content), 0644))

	t.Setenv(paths.EnvDataDir, filepath.Join(t.TempDir(), "data"))
	p, err := paths.New(root, "arch")
	require.NoError(t, err)
	return p
}

func TestLoad_YAML(t *testing.T) {
	p := setupDotfiles(t, "dotm-arch.yaml", yamlConfig)

	c, err := Load(LoadOptions{Paths: p})
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(p.DotfilesRoot(), "dotm-arch.yaml"), c.Source)
	assert.Equal(t, "zsh", c.Conf.Shell)
	assert.Equal(t, filepath.Join(p.DotfilesRoot(), "backups"), c.Conf.BackupDir)
	assert.Equal(t, 90*time.Second, c.Conf.CommandTimeout)
	assert.Equal(t, types.Identifiers{"yay-bin"}, c.Conf.PkgManagers.DepsOf("yay"))

	assert.Equal(t, types.Identifiers{"all", "empty", "nvim", "nvim-plugins", "yay-bin", "zsh"}, c.RuleNames())

	zsh, err := c.Rule("zsh")
	require.NoError(t, err)
	require.Len(t, zsh.Actions, 2)
	assert.Equal(t, types.NewPkgsAction(types.PkgInstall{Manager: "pacman", Packages: []string{"zsh", "zsh-completions"}}), zsh.Actions[0])
	assert.Equal(t, types.NewLinksAction(types.Link{Source: "zshrc", Dests: []string{"~/.zshrc"}}), zsh.Actions[1])

	nvim, err := c.Rule("nvim")
	require.NoError(t, err)
	assert.Equal(t, types.Identifiers{"zsh"}, nvim.Deps)
	assert.Equal(t, types.Identifiers{"nvim-plugins"}, nvim.PostDeps)
	require.Len(t, nvim.Actions, 3)
	assert.Equal(t, types.NewShellAction("echo done"), nvim.Actions[2])

	yay, err := c.Rule("yay-bin")
	require.NoError(t, err)
	assert.Equal(t, types.ActionInTemp, yay.Actions[0].Kind)
	assert.Equal(t, "git clone https://aur.archlinux.org/yay-bin.git\ncd yay-bin && makepkg -si", yay.Actions[0].Script)

	empty, err := c.Rule("empty")
	require.NoError(t, err)
	assert.Empty(t, empty.Actions)

	all, err := c.Rule("all")
	require.NoError(t, err)
	assert.Equal(t, types.NewDepsAction("zsh", "nvim"), all.Actions[0])
}

func TestLoad_DeclarationIncludesManagerDeps(t *testing.T) {
	p := setupDotfiles(t, "dotm-arch.yaml", yamlConfig)
	c, err := Load(LoadOptions{Paths: p})
	require.NoError(t, err)

	decl, err := c.Lookup("nvim")
	require.NoError(t, err)
	assert.Equal(t, types.Identifiers{"zsh", "yay-bin"}, decl.Deps)
	assert.Equal(t, types.Identifiers{"nvim-plugins"}, decl.PostDeps)

	_, err = c.Lookup("missing")
	assert.True(t, errors.IsErrorCode(err, errors.ErrUnknownRule))
}

func TestLoad_JSONAndTOML(t *testing.T) {
	t.Run("json", func(t *testing.T) {
		p := setupDotfiles(t, "dotm.json", `{
			"conf": {"pkg_managers": {"install_cmds": {"apt": "apt-get install -y %pkg"}}},
			"rules": {
				"git": [{"pkgs": {"apt": ["git"]}}],
				"dev": {"deps": ["git"], "actions": [{"shell": "make"}]}
			}
		}`)
		c, err := Load(LoadOptions{Paths: p})
		require.NoError(t, err)
		assert.Equal(t, "bash", c.Conf.Shell)
		assert.Equal(t, types.Identifiers{"dev", "git"}, c.RuleNames())

		dev, err := c.Rule("dev")
		require.NoError(t, err)
		assert.Equal(t, types.Identifiers{"git"}, dev.Deps)
	})

	t.Run("toml", func(t *testing.T) {
		p := setupDotfiles(t, "dotm-arch.toml", `
[conf]
shell = "sh"

[conf.pkg_managers.install_cmds]
pacman = "pacman -S %pkg"

[[rules.git]]
pkgs = { pacman = ["git"] }

[rules.dev]
deps = ["git"]
actions = [ { shell = ["make", "make install"] } ]
`)
		c, err := Load(LoadOptions{Paths: p})
		require.NoError(t, err)
		assert.Equal(t, "sh", c.Conf.Shell)

		git, err := c.Rule("git")
		require.NoError(t, err)
		require.Len(t, git.Actions, 1)
		assert.Equal(t, types.ActionPkgs, git.Actions[0].Kind)

		dev, err := c.Rule("dev")
		require.NoError(t, err)
		assert.Equal(t, "make\nmake install", dev.Actions[0].Script)
	})
}

func TestLoad_DistroFilePreferred(t *testing.T) {
	p := setupDotfiles(t, "dotm.yaml", "rules:\n  generic:\n")
	require.NoError(t, os.WriteFile(filepath.Join(p.DotfilesRoot(), "dotm-arch.yml"), []byte("rules:\n  arch:\n"), 0644))

	c, err := Load(LoadOptions{Paths: p})
	require.NoError(t, err)
	assert.Equal(t, types.Identifiers{"arch"}, c.RuleNames())
}

func TestLoad_ExplicitFile(t *testing.T) {
	p := setupDotfiles(t, "custom.yaml", "rules:\n  custom:\n")

	c, err := Load(LoadOptions{Paths: p, File: "custom.yaml"})
	require.NoError(t, err)
	assert.True(t, c.HasRule("custom"))

	_, err = Load(LoadOptions{Paths: p, File: "nope.yaml"})
	assert.True(t, errors.IsErrorCode(err, errors.ErrConfigNotFound))
}

func TestLoad_NotFound(t *testing.T) {
	p := setupDotfiles(t, "unrelated.txt", "")

	_, err := Load(LoadOptions{Paths: p})
	require.Error(t, err)
	assert.Equal(t, errors.ErrConfigNotFound, errors.GetErrorCode(err))
	assert.Len(t, errors.GetErrorDetails(err)["tried"], 2*len(Extensions))
}

func TestLoad_DefaultBackupDir(t *testing.T) {
	p := setupDotfiles(t, "dotm.yaml", "rules: {}\n")
	c, err := Load(LoadOptions{Paths: p})
	require.NoError(t, err)
	assert.Equal(t, p.DefaultBackupDir(), c.Conf.BackupDir)
}

func TestLoad_EnvOverrides(t *testing.T) {
	p := setupDotfiles(t, "dotm.yaml", "conf:\n  shell: bash\nrules:\n  git:\n    - pkgs:\n        apt: git\n")
	t.Setenv("DOTM_CONF__SHELL", "zsh")
	t.Setenv("DOTM_CONF__PKG_MANAGERS__INSTALL_CMDS__APT", "apt-get install %pkg")

	c, err := Load(LoadOptions{Paths: p})
	require.NoError(t, err)
	assert.Equal(t, "zsh", c.Conf.Shell)

	cmd, err := c.Conf.PkgManagers.InstallCmd("apt")
	require.NoError(t, err)
	assert.Equal(t, "apt-get install %pkg", cmd)
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		code    errors.ErrorCode
	}{
		{"malformed yaml", "rules: [unclosed", errors.ErrConfigParse},
		{"unknown action", "rules:\n  a:\n    - bogus: x\n", errors.ErrConfigParse},
		{"two keys in action", "rules:\n  a:\n    - shell: x\n      links: {a: b}\n", errors.ErrConfigParse},
		{"unknown long form key", "rules:\n  a:\n    depends: [b]\n", errors.ErrConfigParse},
		{"unknown conf key", "conf:\n  colour: red\n", errors.ErrConfigParse},
		{"bad timeout", "conf:\n  command_timeout: soon\n", errors.ErrConfigParse},
		{"undefined dep", "rules:\n  a:\n    deps: [b]\n", errors.ErrUnknownRule},
		{"undefined deps action", "rules:\n  a:\n    - deps: [ghost]\n", errors.ErrUnknownRule},
		{"undefined manager", "rules:\n  a:\n    - pkgs:\n        brew: jq\n", errors.ErrUnknownPkgManager},
		{"empty script", "rules:\n  a:\n    - shell: []\n", errors.ErrActionInvalid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := setupDotfiles(t, "dotm.yaml", tt.content)
			_, err := Load(LoadOptions{Paths: p})
			require.Error(t, err)
			assert.True(t, errors.IsErrorCode(err, tt.code), "got %v", err)
		})
	}
}

func TestFind(t *testing.T) {
	dir := t.TempDir()
	base := filepath.Join(dir, "dotm")
	require.NoError(t, os.WriteFile(base+".toml", []byte(""), 0644))
	require.NoError(t, os.WriteFile(base+".json", []byte("{}"), 0644))

	found, err := Find([]string{filepath.Join(dir, "dotm-void"), base})
	require.NoError(t, err)
	assert.Equal(t, base+".json", found)
}
