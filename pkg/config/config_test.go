// pkg/config/config_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: None
// PURPOSE: Test rule store access and validation of programmatically built configs

package config

import (
	"testing"

	"github.com/arthur-debert/dotm/pkg/errors"
	"github.com/arthur-debert/dotm/pkg/resolver"
	"github.com/arthur-debert/dotm/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rule(name string, deps []types.Identifier, actions ...types.Action) *types.Rule {
	return &types.Rule{Name: types.Identifier(name), Deps: deps, Actions: actions}
}

func TestNew(t *testing.T) {
	conf := DefaultConf()
	conf.PkgManagers.InstallCmds["apt"] = "apt-get install -y %pkg"
	conf.PkgManagers.Deps["apt"] = types.Identifiers{"sources"}

	c, err := New(conf,
		rule("sources", nil, types.NewShellAction("apt-get update")),
		rule("git", nil, types.NewPkgsAction(types.PkgInstall{Manager: "apt", Packages: []string{"git"}})),
	)
	require.NoError(t, err)
	assert.Equal(t, types.Identifiers{"git", "sources"}, c.RuleNames())

	decl, err := c.Declaration("git")
	require.NoError(t, err)
	assert.Equal(t, types.Identifiers{"sources"}, decl.Deps)

	order, err := resolver.Resolve([]types.Identifier{"git"}, c.Lookup)
	require.NoError(t, err)
	assert.Equal(t, types.Identifiers{"sources", "git"}, order)
}

func TestNew_Duplicate(t *testing.T) {
	_, err := New(DefaultConf(), rule("a", nil), rule("a", nil))
	assert.True(t, errors.IsErrorCode(err, errors.ErrConfigValidation))
}

func TestValidate(t *testing.T) {
	t.Run("empty shell", func(t *testing.T) {
		conf := DefaultConf()
		conf.Shell = " "
		_, err := New(conf)
		assert.True(t, errors.IsErrorCode(err, errors.ErrConfigValidation))
	})

	t.Run("manager deps must be defined", func(t *testing.T) {
		conf := DefaultConf()
		conf.PkgManagers.Deps["yay"] = types.Identifiers{"yay-bin"}
		_, err := New(conf)
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrUnknownRule))
		assert.Equal(t, "yay-bin", errors.GetErrorDetails(err)["rule"])
	})

	t.Run("post deps must be defined", func(t *testing.T) {
		r := rule("a", nil)
		r.PostDeps = types.Identifiers{"after"}
		_, err := New(DefaultConf(), r)
		assert.True(t, errors.IsErrorCode(err, errors.ErrUnknownRule))
	})

	t.Run("cycles are allowed in the store", func(t *testing.T) {
		_, err := New(DefaultConf(), rule("a", types.Identifiers{"b"}), rule("b", types.Identifiers{"a"}))
		assert.NoError(t, err)
	})
}

func TestRule_Unknown(t *testing.T) {
	c, err := New(DefaultConf())
	require.NoError(t, err)

	_, err = c.Rule("ghost")
	require.Error(t, err)
	assert.Equal(t, "Undefined rule: ghost", errors.Message(err))
}

func TestInstallCmd(t *testing.T) {
	pm := PkgManagers{InstallCmds: map[types.Identifier]string{"apt": "apt-get install %pkg", "blank": " "}}

	cmd, err := pm.InstallCmd("apt")
	require.NoError(t, err)
	assert.Equal(t, "apt-get install %pkg", cmd)

	for _, mgr := range []types.Identifier{"brew", "blank"} {
		_, err := pm.InstallCmd(mgr)
		require.Error(t, err)
		assert.Equal(t, errors.ErrUnknownPkgManager, errors.GetErrorCode(err))
	}
	assert.Equal(t, "Undefined package manager `brew`", errors.Message(mustErr(pm.InstallCmd("brew"))))
}

func mustErr(_ string, err error) error {
	return err
}
