package list

import (
	"github.com/spf13/cobra"
)

// NewCommand creates the list command. Its RunE is set by the root command.
func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "list",
		Short:   MsgShort,
		Long:    MsgLong,
		Args:    cobra.NoArgs,
		GroupID: "core",
	}
	cmd.Flags().StringP("format", "f", "auto", MsgFlagFormat)
	return cmd
}
