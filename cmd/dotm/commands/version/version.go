package version

import (
	"github.com/spf13/cobra"
)

// NewCommand creates the version command. Its RunE is set by the root command.
func NewCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "version",
		Short:   MsgShort,
		Long:    MsgLong,
		Args:    cobra.NoArgs,
		GroupID: "misc",
	}
}
