package dotm

import (
	_ "embed"
	"strings"
)

// Short messages (one-liners)
const (
	MsgRootShort = "A rule based dotfiles installer"

	// Flag descriptions
	MsgFlagDotDir    = "Dotfiles directory (env DOTM_DOTFILES_DIR, default current directory)"
	MsgFlagDistro    = "Distribution id selecting the config file (default ID from /etc/os-release)"
	MsgFlagConfig    = "Config file to use instead of dotm-<distro>.* in the dotfiles directory"
	MsgFlagNoConfirm = "Never ask, take the default answer"
	MsgFlagVerbose   = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"

	// Status messages
	MsgManWritten   = "Man pages written to `%s`"
	MsgVersionLine  = "dotm version %s\n"
	MsgCommitLine   = "  commit: %s\n"
	MsgBuiltLine    = "  built:  %s\n"
	MsgNoCommand    = "No command specified"
	MsgInvalidIndex = "Invalid action index `%s`"
)

// Long messages from embedded files
var (
	//go:embed msgs/root-long.txt
	msgRootLongRaw string
	MsgRootLong    = strings.TrimSpace(msgRootLongRaw)

	//go:embed msgs/usage-template.txt
	msgUsageTemplateRaw string
	MsgUsageTemplate    = strings.TrimSpace(msgUsageTemplateRaw)
)
