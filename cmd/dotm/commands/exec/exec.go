package exec

import (
	"github.com/spf13/cobra"
)

// NewCommand creates the exec command. Its RunE is set by the root command.
func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "exec <rule> <n>",
		Short:   MsgShort,
		Long:    MsgLong,
		Example: MsgExample,
		Args:    cobra.ExactArgs(2),
		GroupID: "core",
	}
	cmd.Flags().BoolP("dry-run", "n", false, MsgFlagDryRun)
	return cmd
}
