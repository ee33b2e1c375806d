// pkg/commands/plan/plan_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: Filesystem (temp dirs)
// PURPOSE: Test plan output for resolved rules

package plan

import (
	"testing"

	"github.com/arthur-debert/dotm/pkg/errors"
	"github.com/arthur-debert/dotm/pkg/testutil"
	"github.com/arthur-debert/dotm/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const configYAML = `
conf:
  pkg_managers:
    install_cmds:
      apt: apt-get install %pkg
rules:
  base:
    - pkgs: { apt: [git, curl] }
  fonts:
    - shell:
        - fc-cache -f
        - echo done
  nvim:
    deps: [base, fonts]
    post: [plugins]
    actions:
      - links: { nvim: ~/.config/nvim }
  plugins:
    - shell: nvim --headless +q
`

func TestPlanRules(t *testing.T) {
	env := testutil.NewTestEnvironment(t)
	c := env.LoadConfig(configYAML)

	result, err := PlanRules(PlanRulesOptions{Config: c, Rules: []types.Identifier{"nvim", "nvim"}})
	require.NoError(t, err)

	assert.Equal(t, []types.Identifier{"nvim"}, result.Roots)
	require.Len(t, result.Steps, 4)

	assert.Equal(t, types.PlanStep{
		Position: 1,
		Rule:     "base",
		Deps:     types.Identifiers{},
		PostDeps: types.Identifiers{},
		Actions:  []string{"pkgs apt: git curl"},
	}, result.Steps[0])

	assert.Equal(t, types.PlanStep{
		Position: 2,
		Rule:     "fonts",
		Deps:     types.Identifiers{},
		PostDeps: types.Identifiers{},
		Actions:  []string{"shell fc-cache -f (+1 lines)"},
	}, result.Steps[1])

	assert.Equal(t, types.PlanStep{
		Position:  3,
		Rule:      "nvim",
		Deps:      types.Identifiers{"base", "fonts"},
		PostDeps:  types.Identifiers{"plugins"},
		Actions:   []string{"links nvim -> ~/.config/nvim"},
		Requested: true,
	}, result.Steps[2])

	assert.Equal(t, types.Identifier("plugins"), result.Steps[3].Rule)
	assert.False(t, result.Steps[3].Requested)
}

func TestPlanRules_Unknown(t *testing.T) {
	env := testutil.NewTestEnvironment(t)
	c := env.LoadConfig(configYAML)

	_, err := PlanRules(PlanRulesOptions{Config: c, Rules: []types.Identifier{"nope"}})
	assert.True(t, errors.IsErrorCode(err, errors.ErrUnknownRule))
}
