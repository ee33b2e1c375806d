package actions

import (
	"context"
	"io"
	"os"
	"time"

	"github.com/arthur-debert/dotm/pkg/config"
	"github.com/arthur-debert/dotm/pkg/errors"
	"github.com/arthur-debert/dotm/pkg/filesystem"
	"github.com/arthur-debert/dotm/pkg/logging"
	"github.com/arthur-debert/dotm/pkg/paths"
	"github.com/arthur-debert/dotm/pkg/types"
	"github.com/rs/zerolog"
)

// Options configures a Performer
type Options struct {
	Conf  config.Conf
	Paths paths.Paths
	// FS is used for backups; defaults to the OS filesystem
	FS     types.FS
	DryRun bool
	// Stdout and Stderr receive script output and dry-run descriptions
	Stdout io.Writer
	Stderr io.Writer
}

// Performer carries out rule actions
type Performer struct {
	logger zerolog.Logger

	shell       string
	backupDir   string
	pkgManagers config.PkgManagers
	timeout     time.Duration
	paths       paths.Paths
	fs          types.FS
	dryRun      bool
	stdout      io.Writer
	stderr      io.Writer
}

// NewPerformer creates a performer from the loaded conf section
func NewPerformer(opts Options) *Performer {
	p := &Performer{
		logger:      logging.GetLogger("actions.performer"),
		shell:       opts.Conf.Shell,
		backupDir:   opts.Conf.BackupDir,
		pkgManagers: opts.Conf.PkgManagers,
		timeout:     opts.Conf.CommandTimeout,
		paths:       opts.Paths,
		fs:          opts.FS,
		dryRun:      opts.DryRun,
		stdout:      opts.Stdout,
		stderr:      opts.Stderr,
	}
	if p.fs == nil {
		p.fs = filesystem.NewOS()
	}
	if p.shell == "" {
		p.shell = "bash"
	}
	if p.backupDir == "" {
		p.backupDir = opts.Paths.DefaultBackupDir()
	}
	if p.stdout == nil {
		p.stdout = os.Stdout
	}
	if p.stderr == nil {
		p.stderr = os.Stderr
	}
	return p
}

// DryRun reports whether actions are only described
func (p *Performer) DryRun() bool {
	return p.dryRun
}

// Perform runs a single action
func (p *Performer) Perform(ctx context.Context, action types.Action) error {
	if err := action.Validate(); err != nil {
		return err
	}

	p.logger.Debug().
		Str("kind", string(action.Kind)).
		Str("action", action.Describe()).
		Bool("dryRun", p.dryRun).
		Msg("Performing action")

	switch action.Kind {
	case types.ActionPkgs:
		return p.performPkgs(ctx, action.Pkgs)
	case types.ActionShell:
		return p.performShell(ctx, action.Script)
	case types.ActionInTemp:
		return p.performInTemp(ctx, action.Script)
	case types.ActionLinks:
		return p.performLinks(ctx, action.Links)
	case types.ActionDeps:
		// ordering only
		return nil
	default:
		return errors.Newf(errors.ErrActionInvalid, "Unknown action `%s`", action.Kind)
	}
}

// PerformRule runs the rule's actions in order and stops at the first failure
func (p *Performer) PerformRule(ctx context.Context, rule *types.Rule) error {
	done := logging.LogOperationStart(p.logger, "rule "+string(rule.Name))
	defer done()

	for i, action := range rule.Actions {
		if err := ctx.Err(); err != nil {
			return errors.Wrap(err, errors.ErrAborted, "Interrupted")
		}
		if err := p.Perform(ctx, action); err != nil {
			return wrapActionError(err, rule.Name, i+1, action)
		}
	}
	return nil
}

// PerformAt runs the nth action of rule, counting from 1
func (p *Performer) PerformAt(ctx context.Context, rule *types.Rule, n int) (types.Action, error) {
	action, err := rule.Action(n)
	if err != nil {
		return types.Action{}, err
	}
	if err := p.Perform(ctx, action); err != nil {
		return action, wrapActionError(err, rule.Name, n, action)
	}
	return action, nil
}

func wrapActionError(err error, rule types.Identifier, index int, action types.Action) error {
	return errors.Wrapf(err, errors.ErrActionExecute, "Failed to perform `%s` action", action.Kind).
		WithDetail("rule", string(rule)).
		WithDetail("index", index)
}
