package completion

// Message constants
const (
	MsgShort = "Generate shell completion script"
	MsgLong  = `Print a completion script for the given shell, bash by default.

Bash:
  $ source <(dotm completion bash)

Zsh:
  $ dotm completion zsh > "${fpath[1]}/_dotm"

Fish:
  $ dotm completion fish > ~/.config/fish/completions/dotm.fish

PowerShell:
  PS> dotm completion powershell | Out-String | Invoke-Expression`
)
