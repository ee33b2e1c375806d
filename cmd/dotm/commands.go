package dotm

import (
	"fmt"
	"os"
	"strconv"

	"github.com/arthur-debert/dotm/cmd/dotm/commands/completion"
	"github.com/arthur-debert/dotm/internal/version"
	"github.com/arthur-debert/dotm/pkg/cobrax/topics"
	"github.com/arthur-debert/dotm/pkg/commands"
	"github.com/arthur-debert/dotm/pkg/config"
	"github.com/arthur-debert/dotm/pkg/errors"
	"github.com/arthur-debert/dotm/pkg/paths"
	"github.com/arthur-debert/dotm/pkg/style"
	"github.com/arthur-debert/dotm/pkg/types"
	"github.com/arthur-debert/dotm/pkg/ui"
	"github.com/spf13/cobra"
	"github.com/spf13/cobra/doc"
)

// app carries what the root command resolves for its subcommands
type app struct {
	settings config.Settings
}

func (a *app) loadPaths() (paths.Paths, error) {
	return paths.New(a.settings.DotDir, a.settings.Distro)
}

func (a *app) loadConfig() (*config.Config, paths.Paths, error) {
	p, err := a.loadPaths()
	if err != nil {
		return nil, nil, err
	}
	c, err := config.Load(config.LoadOptions{Paths: p, File: a.settings.Config})
	if err != nil {
		return nil, nil, err
	}
	return c, p, nil
}

func messenger(cmd *cobra.Command) types.Messenger {
	return style.NewPrinter(cmd.ErrOrStderr())
}

func render(cmd *cobra.Command, formatName string, result interface{}) error {
	format, err := ui.ParseFormat(formatName)
	if err != nil {
		return err
	}
	renderer, err := ui.NewRenderer(format, cmd.OutOrStdout())
	if err != nil {
		return err
	}
	return renderer.RenderResult(result)
}

func identifiers(args []string) ([]types.Identifier, error) {
	ids := make([]types.Identifier, 0, len(args))
	for _, arg := range args {
		id, err := types.NewIdentifier(arg)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}

// ruleNamesCompletion completes rule names from the config. Completion
// skips PersistentPreRunE, so settings are read here.
func ruleNamesCompletion(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	settings, err := config.LoadSettings(cmd.Flags())
	if err != nil {
		return nil, cobra.ShellCompDirectiveError
	}
	c, _, err := (&app{settings: settings}).loadConfig()
	if err != nil {
		return nil, cobra.ShellCompDirectiveError
	}
	return types.Identifiers(c.RuleNames()).Strings(), cobra.ShellCompDirectiveNoFileComp
}

func (a *app) wireInstall(cmd *cobra.Command) *cobra.Command {
	cmd.ValidArgsFunction = ruleNamesCompletion
	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		rules, err := identifiers(args)
		if err != nil {
			return err
		}
		c, p, err := a.loadConfig()
		if err != nil {
			return err
		}
		dryRun, _ := cmd.Flags().GetBool("dry-run")

		result, err := commands.InstallRules(cmd.Context(), commands.InstallRulesOptions{
			Config:    c,
			Paths:     p,
			Rules:     rules,
			DryRun:    dryRun,
			Messenger: messenger(cmd),
			Stdout:    cmd.OutOrStdout(),
			Stderr:    cmd.ErrOrStderr(),
		})
		if err != nil {
			return err
		}
		if dryRun {
			return render(cmd, "auto", result)
		}
		return nil
	}
	return cmd
}

func (a *app) wirePlan(cmd *cobra.Command) *cobra.Command {
	cmd.ValidArgsFunction = ruleNamesCompletion
	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		rules, err := identifiers(args)
		if err != nil {
			return err
		}
		c, _, err := a.loadConfig()
		if err != nil {
			return err
		}
		result, err := commands.PlanRules(commands.PlanRulesOptions{Config: c, Rules: rules})
		if err != nil {
			return err
		}
		format, _ := cmd.Flags().GetString("format")
		return render(cmd, format, result)
	}
	return cmd
}

func (a *app) wireExec(cmd *cobra.Command) *cobra.Command {
	cmd.ValidArgsFunction = func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		if len(args) > 0 {
			return nil, cobra.ShellCompDirectiveNoFileComp
		}
		return ruleNamesCompletion(cmd, args, toComplete)
	}
	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		rule, err := types.NewIdentifier(args[0])
		if err != nil {
			return err
		}
		index, err := strconv.Atoi(args[1])
		if err != nil {
			return errors.Newf(errors.ErrInvalidInput, MsgInvalidIndex, args[1]).WithDetail("index", args[1])
		}
		c, p, err := a.loadConfig()
		if err != nil {
			return err
		}
		dryRun, _ := cmd.Flags().GetBool("dry-run")

		result, err := commands.ExecAction(cmd.Context(), commands.ExecActionOptions{
			Config: c,
			Paths:  p,
			Rule:   rule,
			Index:  index,
			DryRun: dryRun,
			Stdout: cmd.OutOrStdout(),
			Stderr: cmd.ErrOrStderr(),
		})
		if err != nil {
			return err
		}
		if dryRun {
			return render(cmd, "auto", result)
		}
		return nil
	}
	return cmd
}

func (a *app) wireAdd(cmd *cobra.Command) *cobra.Command {
	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		p, err := a.loadPaths()
		if err != nil {
			return err
		}
		withName, _ := cmd.Flags().GetString("with-name")

		_, err = commands.AddFile(cmd.Context(), commands.AddFileOptions{
			Paths:     p,
			File:      args[0],
			WithName:  withName,
			Confirm:   ui.ConfirmFunc(a.settings.NoConfirm),
			Messenger: messenger(cmd),
		})
		return err
	}
	return cmd
}

func (a *app) wireList(cmd *cobra.Command) *cobra.Command {
	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		c, _, err := a.loadConfig()
		if err != nil {
			return err
		}
		result, err := commands.ListRules(commands.ListRulesOptions{Config: c})
		if err != nil {
			return err
		}
		format, _ := cmd.Flags().GetString("format")
		return render(cmd, format, result)
	}
	return cmd
}

func wireCompletion(cmd *cobra.Command) *cobra.Command {
	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		shell := completion.Shells[0]
		if len(args) > 0 {
			shell = args[0]
		}

		root, out := cmd.Root(), cmd.OutOrStdout()
		switch shell {
		case "zsh":
			return root.GenZshCompletion(out)
		case "fish":
			return root.GenFishCompletion(out, true)
		case "powershell":
			return root.GenPowerShellCompletionWithDesc(out)
		default:
			return root.GenBashCompletionV2(out, true)
		}
	}
	return cmd
}

func wireMan(cmd *cobra.Command) *cobra.Command {
	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		dir := args[0]
		if err := os.MkdirAll(dir, 0755); err != nil {
			return errors.Wrapf(err, errors.ErrFileAccess, "Failed to create `%s`", dir)
		}
		header := &doc.GenManHeader{
			Title:   "DOTM",
			Section: "1",
			Source:  "dotm " + version.Version,
			Manual:  "dotm manual",
		}
		if err := doc.GenManTree(cmd.Root(), header, dir); err != nil {
			return errors.Wrap(err, errors.ErrFileAccess, "Failed to generate man pages")
		}
		messenger(cmd).Info(fmt.Sprintf(MsgManWritten, dir))
		return nil
	}
	return cmd
}

func wireVersion(cmd *cobra.Command) *cobra.Command {
	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, MsgVersionLine, version.Version)
		fmt.Fprintf(out, MsgCommitLine, version.Commit)
		fmt.Fprintf(out, MsgBuiltLine, version.Date)
		return nil
	}
	return cmd
}

func wireTopics(cmd *cobra.Command, tm *topics.TopicManager) *cobra.Command {
	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		tm.PrintList(cmd.OutOrStdout(), cmd.Root().Name())
		return nil
	}
	return cmd
}
