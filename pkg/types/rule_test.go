// pkg/types/rule_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: None
// PURPOSE: Test rule action indexing, declarations and action validation

package types_test

import (
	"testing"

	"github.com/arthur-debert/dotm/pkg/errors"
	"github.com/arthur-debert/dotm/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleRule() *types.Rule {
	return &types.Rule{
		Name:     "nvim",
		Deps:     types.Identifiers{"base"},
		PostDeps: types.Identifiers{"nvim-plugins"},
		Actions: []types.Action{
			types.NewPkgsAction(types.PkgInstall{Manager: "yay", Packages: []string{"neovim-git"}}),
			types.NewDepsAction("fonts", "base"),
			types.NewLinksAction(types.Link{Source: "nvim", Dests: []string{"~/.config/nvim"}}),
			types.NewShellAction("nvim --headless", "+q"),
		},
	}
}

func TestRule_Action(t *testing.T) {
	rule := sampleRule()

	first, err := rule.Action(1)
	require.NoError(t, err)
	assert.Equal(t, types.ActionPkgs, first.Kind)

	last, err := rule.Action(4)
	require.NoError(t, err)
	assert.Equal(t, "nvim --headless\n+q", last.Script)

	for _, n := range []int{0, 5, -1} {
		_, err := rule.Action(n)
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrIndexOutOfRange))
	}
}

func TestRule_Declaration(t *testing.T) {
	rule := sampleRule()
	managerDeps := func(mgr types.Identifier) types.Identifiers {
		if mgr == "yay" {
			return types.Identifiers{"yay"}
		}
		return nil
	}

	decl := rule.Declaration(managerDeps)
	assert.Equal(t, types.Identifiers{"base", "yay", "fonts"}, decl.Deps)
	assert.Equal(t, types.Identifiers{"nvim-plugins"}, decl.PostDeps)
	assert.False(t, decl.IsEmpty())

	withoutManagers := rule.Declaration(nil)
	assert.Equal(t, types.Identifiers{"base", "fonts"}, withoutManagers.Deps)

	assert.True(t, (&types.Rule{Name: "leaf"}).Declaration(nil).IsEmpty())
}

func TestAction_Validate(t *testing.T) {
	tests := []struct {
		name    string
		action  types.Action
		wantErr bool
	}{
		{name: "pkgs", action: types.NewPkgsAction(types.PkgInstall{Manager: "pacman", Packages: []string{"zsh"}})},
		{name: "pkgs_without_packages", action: types.NewPkgsAction(types.PkgInstall{Manager: "pacman"}), wantErr: true},
		{name: "shell", action: types.NewShellAction("echo hi")},
		{name: "empty_in_temp", action: types.NewInTempAction("  "), wantErr: true},
		{name: "links", action: types.NewLinksAction(types.Link{Source: "zshrc", Dests: []string{"~/.zshrc"}})},
		{name: "links_without_dest", action: types.NewLinksAction(types.Link{Source: "zshrc"}), wantErr: true},
		{name: "deps", action: types.NewDepsAction("a", "b")},
		{name: "unknown_kind", action: types.Action{Kind: "copy"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.action.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestAction_Describe(t *testing.T) {
	assert.Equal(t, "shell make (+1 lines)", types.NewShellAction("make", "make install").Describe())
	assert.Equal(t, "links zshrc -> ~/.zshrc", types.NewLinksAction(types.Link{Source: "zshrc", Dests: []string{"~/.zshrc"}}).Describe())
	assert.Equal(t, "pkgs pacman: zsh git", types.NewPkgsAction(types.PkgInstall{Manager: "pacman", Packages: []string{"zsh", "git"}}).Describe())
	assert.Equal(t, "deps a b", types.NewDepsAction("a", "b").Describe())
}

func TestParseActionKind(t *testing.T) {
	kind, err := types.ParseActionKind("in_temp")
	require.NoError(t, err)
	assert.Equal(t, types.ActionInTemp, kind)

	_, err = types.ParseActionKind("copy")
	assert.True(t, errors.IsErrorCode(err, errors.ErrActionInvalid))
}
