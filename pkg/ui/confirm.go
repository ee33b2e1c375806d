package ui

import (
	"os"

	"github.com/arthur-debert/dotm/pkg/errors"
	"github.com/arthur-debert/dotm/pkg/logging"
	"github.com/arthur-debert/dotm/pkg/types"
	"github.com/pterm/pterm"
)

// Replaced in tests
var (
	stdinIsTerminal = func() bool { return IsTerminal(os.Stdin) }
	prompter        = interactiveConfirm
)

// Confirm asks a yes/no question. The default answer is returned without
// prompting when noconfirm is set or stdin is not a terminal.
func Confirm(prompt string, defaultValue bool, noconfirm bool) (bool, error) {
	logger := logging.GetLogger("ui.confirm")

	if noconfirm || !stdinIsTerminal() {
		logger.Debug().
			Str("prompt", prompt).
			Bool("answer", defaultValue).
			Bool("noconfirm", noconfirm).
			Msg("Using default answer")
		return defaultValue, nil
	}

	answer, err := prompter(prompt, defaultValue)
	if err != nil {
		return false, err
	}
	logger.Debug().Str("prompt", prompt).Bool("answer", answer).Msg("User answered")
	return answer, nil
}

// ConfirmFunc binds noconfirm, giving the callback commands take
func ConfirmFunc(noconfirm bool) types.ConfirmFunc {
	return func(prompt string, defaultValue bool) (bool, error) {
		return Confirm(prompt, defaultValue, noconfirm)
	}
}

func interactiveConfirm(prompt string, defaultValue bool) (bool, error) {
	interrupted := false
	answer, err := pterm.DefaultInteractiveConfirm.
		WithDefaultValue(defaultValue).
		WithOnInterruptFunc(func() { interrupted = true }).
		Show(prompt)
	if interrupted {
		return false, errors.New(errors.ErrAborted, "Interrupted")
	}
	if err != nil {
		return false, errors.Wrap(err, errors.ErrAborted, "Failed to read answer")
	}
	return answer, nil
}
