package plan

import (
	"github.com/spf13/cobra"
)

// NewCommand creates the plan command. Its RunE is set by the root command.
func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "plan <rules...>",
		Short:   MsgShort,
		Long:    MsgLong,
		Example: MsgExample,
		Args:    cobra.MinimumNArgs(1),
		GroupID: "core",
	}
	cmd.Flags().StringP("format", "f", "auto", MsgFlagFormat)
	return cmd
}
