package completion

import (
	"github.com/spf13/cobra"
)

// Shells lists the supported shells, the first one is the default
var Shells = []string{"bash", "zsh", "fish", "powershell"}

// NewCommand creates the completion command. Its RunE is set by the root command.
func NewCommand() *cobra.Command {
	return &cobra.Command{
		Use:                   "completion [bash|zsh|fish|powershell]",
		Short:                 MsgShort,
		Long:                  MsgLong,
		DisableFlagsInUseLine: true,
		ValidArgs:             Shells,
		Args:                  cobra.MatchAll(cobra.MaximumNArgs(1), cobra.OnlyValidArgs),
		GroupID:               "misc",
	}
}
