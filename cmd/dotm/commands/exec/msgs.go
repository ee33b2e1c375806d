package exec

// Message constants
const (
	MsgShort = "Perform a single action of a rule"
	MsgLong  = `Exec performs the n-th action of a rule, counting from 1. Dependencies
are not resolved; only that action runs.`

	MsgExample = `  # Re-run the second action of the nvim rule
  dotm exec nvim 2`

	MsgFlagDryRun = "Print what would be done without doing it"
)
