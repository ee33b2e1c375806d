package install

// Message constants
const (
	MsgShort = "Install rules and everything they depend on"
	MsgLong  = `Install resolves the given rules together with their dependencies and
post-dependencies, then performs every rule in order. A rule's actions run
one after another; the first failure stops the installation.

Dependencies always run before the rules that need them. Post-dependencies
run after the rule that names them.`

	MsgExample = `  # Install zsh and everything it needs
  dotm install zsh

  # Show what would run without changing anything
  dotm install --dry-run nvim tmux`

	MsgFlagDryRun = "Print what would be done without doing it"
)
