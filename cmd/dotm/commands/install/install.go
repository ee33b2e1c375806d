package install

import (
	"github.com/spf13/cobra"
)

// NewCommand creates the install command. Its RunE is set by the root command.
func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "install <rules...>",
		Short:   MsgShort,
		Long:    MsgLong,
		Example: MsgExample,
		Args:    cobra.MinimumNArgs(1),
		GroupID: "core",
	}
	cmd.Flags().BoolP("dry-run", "n", false, MsgFlagDryRun)
	return cmd
}
