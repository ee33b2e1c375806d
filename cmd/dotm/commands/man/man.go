package man

import (
	"github.com/spf13/cobra"
)

// NewCommand creates the man command. Its RunE is set by the root command.
func NewCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "man <dir>",
		Short:   MsgShort,
		Long:    MsgLong,
		Args:    cobra.ExactArgs(1),
		GroupID: "misc",
		Hidden:  true,
	}
}
