package list

// Message constants
const (
	MsgShort = "List the rules defined in the config"
	MsgLong  = "List prints every rule of the config file with its dependencies and post-dependencies."

	MsgFlagFormat = "Output format: auto, term, text, json, yaml or toml"
)
