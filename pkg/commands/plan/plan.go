package plan

import (
	"github.com/arthur-debert/dotm/pkg/config"
	"github.com/arthur-debert/dotm/pkg/logging"
	"github.com/arthur-debert/dotm/pkg/resolver"
	"github.com/arthur-debert/dotm/pkg/types"
)

// PlanRulesOptions defines the options for the PlanRules command.
type PlanRulesOptions struct {
	Config *config.Config
	Rules  []types.Identifier
}

// PlanRules resolves the requested rules without performing anything
func PlanRules(opts PlanRulesOptions) (*types.PlanResult, error) {
	log := logging.GetLogger("commands.plan")
	log.Debug().Str("command", "PlanRules").Msg("Executing command")

	roots := types.Identifiers(opts.Rules).Unique()
	order, err := resolver.Resolve(roots, opts.Config.Lookup)
	if err != nil {
		return nil, err
	}

	result := &types.PlanResult{
		Roots: roots,
		Steps: make([]types.PlanStep, 0, len(order)),
	}

	for i, id := range order {
		rule, err := opts.Config.Rule(id)
		if err != nil {
			return nil, err
		}
		decl, err := opts.Config.Declaration(id)
		if err != nil {
			return nil, err
		}

		descriptions := make([]string, len(rule.Actions))
		for j, a := range rule.Actions {
			descriptions[j] = a.Describe()
		}

		result.Steps = append(result.Steps, types.PlanStep{
			Position:  i + 1,
			Rule:      id,
			Deps:      decl.Deps,
			PostDeps:  decl.PostDeps,
			Actions:   descriptions,
			Requested: roots.Contains(id),
		})
	}

	log.Info().Str("command", "PlanRules").Int("stepCount", len(result.Steps)).Msg("Command finished")
	return result, nil
}
