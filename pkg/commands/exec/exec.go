package exec

import (
	"context"
	"io"

	"github.com/arthur-debert/dotm/pkg/actions"
	"github.com/arthur-debert/dotm/pkg/config"
	"github.com/arthur-debert/dotm/pkg/logging"
	"github.com/arthur-debert/dotm/pkg/paths"
	"github.com/arthur-debert/dotm/pkg/types"
)

// ExecActionOptions defines the options for the ExecAction command.
type ExecActionOptions struct {
	Config *config.Config
	Paths  paths.Paths
	Rule   types.Identifier
	// Index counts from 1
	Index  int
	DryRun bool

	Stdout     io.Writer
	Stderr     io.Writer
	FileSystem types.FS
}

// ExecAction performs a single action of a rule, ignoring its dependencies
func ExecAction(ctx context.Context, opts ExecActionOptions) (*types.ExecResult, error) {
	log := logging.GetLogger("commands.exec")
	log.Debug().
		Str("rule", string(opts.Rule)).
		Int("index", opts.Index).
		Msg("Executing command")

	rule, err := opts.Config.Rule(opts.Rule)
	if err != nil {
		return nil, err
	}

	performer := actions.NewPerformer(actions.Options{
		Conf:   opts.Config.Conf,
		Paths:  opts.Paths,
		FS:     opts.FileSystem,
		DryRun: opts.DryRun,
		Stdout: opts.Stdout,
		Stderr: opts.Stderr,
	})

	action, err := performer.PerformAt(ctx, rule, opts.Index)
	if err != nil {
		return nil, err
	}

	return &types.ExecResult{
		Rule:   opts.Rule,
		Index:  opts.Index,
		Action: action.Describe(),
		DryRun: opts.DryRun,
	}, nil
}
