package man

// Message constants
const (
	MsgShort = "Generate man pages"
	MsgLong  = "Generate a man page for every command into the given directory."
)
