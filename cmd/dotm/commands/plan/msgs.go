package plan

// Message constants
const (
	MsgShort = "Show the order rules would be installed in"
	MsgLong  = `Plan resolves the given rules like install does, but only prints the
resulting order and the actions of every rule. Nothing is performed.`

	MsgExample = `  dotm plan nvim
  dotm plan --format yaml nvim tmux`

	MsgFlagFormat = "Output format: auto, term, text, json, yaml or toml"
)
