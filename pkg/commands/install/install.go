package install

import (
	"context"
	"fmt"
	"io"

	"github.com/arthur-debert/dotm/pkg/actions"
	"github.com/arthur-debert/dotm/pkg/config"
	"github.com/arthur-debert/dotm/pkg/errors"
	"github.com/arthur-debert/dotm/pkg/logging"
	"github.com/arthur-debert/dotm/pkg/paths"
	"github.com/arthur-debert/dotm/pkg/resolver"
	"github.com/arthur-debert/dotm/pkg/types"
)

// InstallRulesOptions defines the options for the InstallRules command.
type InstallRulesOptions struct {
	Config *config.Config
	Paths  paths.Paths
	// Rules are the requested roots; their dependencies are pulled in
	Rules  []types.Identifier
	DryRun bool

	Messenger  types.Messenger
	Stdout     io.Writer
	Stderr     io.Writer
	FileSystem types.FS
}

// InstallRules resolves the requested rules and performs them in order.
// The first failing rule aborts the run; the result lists what was
// performed up to that point.
func InstallRules(ctx context.Context, opts InstallRulesOptions) (*types.InstallResult, error) {
	logger := logging.GetLogger("commands.install")
	logger.Debug().
		Strs("rules", types.Identifiers(opts.Rules).Strings()).
		Bool("dryRun", opts.DryRun).
		Msg("Executing command")

	messenger := opts.Messenger
	if messenger == nil {
		messenger = types.NopMessenger()
	}

	order, err := resolver.Resolve(opts.Rules, opts.Config.Lookup)
	if err != nil {
		return nil, err
	}

	result := &types.InstallResult{
		Order:     order,
		Performed: []types.Identifier{},
		DryRun:    opts.DryRun,
	}

	performer := actions.NewPerformer(actions.Options{
		Conf:   opts.Config.Conf,
		Paths:  opts.Paths,
		FS:     opts.FileSystem,
		DryRun: opts.DryRun,
		Stdout: opts.Stdout,
		Stderr: opts.Stderr,
	})

	for _, id := range order {
		rule, err := opts.Config.Rule(id)
		if err != nil {
			return result, err
		}

		messenger.Info(fmt.Sprintf("Performing `%s`...", id))
		if err := performer.PerformRule(ctx, rule); err != nil {
			logger.Error().Err(err).Str("rule", string(id)).Msg("Rule failed")
			return result, errors.Wrapf(err, errors.ErrActionExecute, "Failed to perform `%s`", id).
				WithDetail("rule", string(id))
		}
		result.Performed = append(result.Performed, id)
	}

	logger.Info().
		Str("command", "InstallRules").
		Int("ruleCount", len(result.Performed)).
		Msg("Command finished")
	return result, nil
}
