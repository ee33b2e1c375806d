package actions

import (
	"context"
	stderrors "errors"
	"fmt"
	"os"
	"os/exec"
	"strings"
	"time"

	"github.com/arthur-debert/dotm/pkg/errors"
	"github.com/arthur-debert/dotm/pkg/logging"
)

// waitDelay bounds how long output is drained after the shell exits, so
// background children holding the pipes can't stall a rule
const waitDelay = 500 * time.Millisecond

func (p *Performer) performShell(ctx context.Context, script string) error {
	return p.runScript(ctx, script, p.paths.DotfilesRoot())
}

func (p *Performer) performInTemp(ctx context.Context, script string) error {
	if p.dryRun {
		return p.runScript(ctx, script, "<temporary directory>")
	}

	dir, err := os.MkdirTemp("", "dotm-")
	if err != nil {
		return errors.Wrap(err, errors.ErrFileAccess, "Failed to create temporary directory")
	}
	defer func() {
		if err := os.RemoveAll(dir); err != nil {
			p.logger.Warn().Err(err).Str("dir", dir).Msg("Failed to remove temporary directory")
		}
	}()

	return p.runScript(ctx, script, dir)
}

// runScript feeds script to the configured shell on stdin
func (p *Performer) runScript(ctx context.Context, script, dir string) error {
	if p.dryRun {
		_, _ = fmt.Fprintf(p.stdout, "Would run in `%s` with %s:\n%s\n", dir, p.shell, indent(script))
		return nil
	}

	argv := strings.Fields(p.shell)
	if len(argv) == 0 {
		return errors.New(errors.ErrConfigValidation, "conf.shell can't be empty")
	}

	if p.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, p.timeout)
		defer cancel()
	}

	logging.LogCommand(argv[0], argv[1:])
	p.logger.Debug().Str("dir", dir).Str("script", script).Msg("Running script")

	cmd := exec.CommandContext(ctx, argv[0], argv[1:]...)
	cmd.Dir = dir
	cmd.Stdin = strings.NewReader(script)
	cmd.Stdout = p.stdout
	cmd.Stderr = p.stderr
	cmd.WaitDelay = waitDelay
	cmd.Env = append(os.Environ(),
		"DOTM_DOTFILES_DIR="+p.paths.DotfilesRoot(),
		"DOTM_DISTRO="+p.paths.Distro(),
	)

	if err := cmd.Run(); err != nil {
		p.logger.Debug().Err(err).Str("shell", p.shell).Msg("Script failed")
		return processError(ctx, err)
	}
	return nil
}

// processError turns a failed run into the user facing exit message
func processError(ctx context.Context, err error) error {
	var exitErr *exec.ExitError
	if !stderrors.As(err, &exitErr) {
		return errors.Wrap(err, errors.ErrCommandFailed, "Failed to start process")
	}

	code := exitErr.ExitCode()
	if code < 0 {
		e := errors.New(errors.ErrCommandFailed, "Process terminated by a signal")
		if stderrors.Is(ctx.Err(), context.DeadlineExceeded) {
			e = e.WithDetail("timeout", true)
		}
		return e
	}
	return errors.Newf(errors.ErrCommandFailed, "Process exited with status code %d", code).
		WithDetail("exit_code", code)
}

func indent(s string) string {
	lines := strings.Split(s, "\n")
	for i, l := range lines {
		lines[i] = "  " + l
	}
	return strings.Join(lines, "\n")
}
