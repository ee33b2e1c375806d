package add

import (
	"github.com/spf13/cobra"
)

// NewCommand creates the add command. Its RunE is set by the root command.
func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "add <file>",
		Short:   MsgShort,
		Long:    MsgLong,
		Example: MsgExample,
		Args:    cobra.ExactArgs(1),
		GroupID: "core",
	}
	cmd.Flags().StringP("with-name", "o", "", MsgFlagWithName)
	return cmd
}
