// Package topics holds the help topics shown by `dotm help <topic>`
package topics

import "embed"

//go:embed *.md *.txt
var FS embed.FS
