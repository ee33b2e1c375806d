package dotm

import (
	"github.com/arthur-debert/dotm/cmd/dotm/commands/add"
	"github.com/arthur-debert/dotm/cmd/dotm/commands/completion"
	"github.com/arthur-debert/dotm/cmd/dotm/commands/exec"
	"github.com/arthur-debert/dotm/cmd/dotm/commands/install"
	"github.com/arthur-debert/dotm/cmd/dotm/commands/list"
	"github.com/arthur-debert/dotm/cmd/dotm/commands/man"
	"github.com/arthur-debert/dotm/cmd/dotm/commands/plan"
	topicscmd "github.com/arthur-debert/dotm/cmd/dotm/commands/topics"
	versioncmd "github.com/arthur-debert/dotm/cmd/dotm/commands/version"
	dotmtopics "github.com/arthur-debert/dotm/cmd/dotm/topics"
	"github.com/arthur-debert/dotm/internal/version"
	"github.com/arthur-debert/dotm/pkg/cobrax/topics"
	"github.com/arthur-debert/dotm/pkg/config"
	"github.com/arthur-debert/dotm/pkg/errors"
	"github.com/arthur-debert/dotm/pkg/logging"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	initTemplateFormatting()

	a := &app{}

	rootCmd := &cobra.Command{
		Use:     "dotm",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Version: version.Version,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			settings, err := config.LoadSettings(cmd.Flags())
			if err != nil {
				return err
			}
			a.settings = settings

			logging.SetupLogger(settings.Verbose)
			logging.LogCommand(cmd.CommandPath(), args)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			_ = cmd.Help()
			return errors.New(errors.ErrInvalidInput, MsgNoCommand)
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
	}

	// Global flags, read back through config.LoadSettings
	flags := rootCmd.PersistentFlags()
	flags.StringP("dotdir", "d", "", MsgFlagDotDir)
	flags.StringP("distro", "D", "", MsgFlagDistro)
	flags.StringP("config", "c", "", MsgFlagConfig)
	flags.BoolP("noconfirm", "y", false, MsgFlagNoConfirm)
	flags.CountP("verbose", "v", MsgFlagVerbose)

	rootCmd.AddGroup(&cobra.Group{ID: "core", Title: "Commands:"})
	rootCmd.AddGroup(&cobra.Group{ID: "misc", Title: "Misc:"})
	rootCmd.SetUsageTemplate(MsgUsageTemplate)

	rootCmd.AddCommand(
		a.wireInstall(install.NewCommand()),
		a.wirePlan(plan.NewCommand()),
		a.wireExec(exec.NewCommand()),
		a.wireAdd(add.NewCommand()),
		a.wireList(list.NewCommand()),
		wireCompletion(completion.NewCommand()),
		wireMan(man.NewCommand()),
		wireVersion(versioncmd.NewCommand()),
	)

	tm, err := topics.Initialize(rootCmd, dotmtopics.FS, topics.Options{
		Extensions: []string{".md", ".txt"},
		Renderer:   topics.NewGlamourRenderer(80),
	})
	if err != nil {
		log.Warn().Err(err).Msg("Help topics unavailable")
	} else {
		rootCmd.AddCommand(wireTopics(topicscmd.NewCommand(), tm))
	}

	return rootCmd
}
