package list

import (
	"github.com/arthur-debert/dotm/pkg/config"
	"github.com/arthur-debert/dotm/pkg/logging"
	"github.com/arthur-debert/dotm/pkg/types"
)

// ListRulesOptions defines the options for the ListRules command.
type ListRulesOptions struct {
	Config *config.Config
}

// ListRules summarizes every defined rule, sorted by name
func ListRules(opts ListRulesOptions) (*types.ListRulesResult, error) {
	log := logging.GetLogger("commands.list")
	log.Debug().Str("command", "ListRules").Msg("Executing command")

	names := opts.Config.RuleNames()
	result := &types.ListRulesResult{
		Rules: make([]types.RuleInfo, 0, len(names)),
	}

	for _, name := range names {
		rule, err := opts.Config.Rule(name)
		if err != nil {
			return nil, err
		}
		decl, err := opts.Config.Declaration(name)
		if err != nil {
			return nil, err
		}
		result.Rules = append(result.Rules, types.RuleInfo{
			Name:     name,
			Deps:     decl.Deps,
			PostDeps: decl.PostDeps,
			Actions:  len(rule.Actions),
		})
	}

	log.Info().Str("command", "ListRules").Int("ruleCount", len(result.Rules)).Msg("Command finished")
	return result, nil
}
