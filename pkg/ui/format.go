package ui

import (
	"io"
	"os"
	"strings"

	"github.com/arthur-debert/dotm/pkg/errors"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
)

// Format represents the output format type
type Format int

const (
	// FormatAuto picks FormatTerminal or FormatText from the output's capabilities
	FormatAuto Format = iota
	// FormatTerminal renders styled text
	FormatTerminal
	// FormatText renders plain text
	FormatText
	FormatJSON
	FormatYAML
	FormatTOML
)

// String returns the string representation of the format
func (f Format) String() string {
	switch f {
	case FormatAuto:
		return "auto"
	case FormatTerminal:
		return "term"
	case FormatText:
		return "text"
	case FormatJSON:
		return "json"
	case FormatYAML:
		return "yaml"
	case FormatTOML:
		return "toml"
	default:
		return "unknown"
	}
}

// Formats lists the names accepted by ParseFormat, for flag help
var Formats = []string{"auto", "term", "text", "json", "yaml", "toml"}

// ParseFormat parses a string into a Format value
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "auto", "":
		return FormatAuto, nil
	case "term", "terminal":
		return FormatTerminal, nil
	case "text", "plain":
		return FormatText, nil
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	case "toml":
		return FormatTOML, nil
	default:
		return FormatAuto, errors.Newf(errors.ErrInvalidInput, "Unknown format `%s` (expected one of %s)",
			s, strings.Join(Formats, ", ")).WithDetail("format", s)
	}
}

// IsTerminal reports whether w is a terminal
func IsTerminal(w io.Writer) bool {
	file, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(file.Fd()) || isatty.IsCygwinTerminal(file.Fd())
}

// ColorEnabled reports whether styled output should be written to w.
// NO_COLOR, a pipe or a terminal without color support disable it.
func ColorEnabled(w io.Writer) bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	if !IsTerminal(w) {
		return false
	}
	return termenv.NewOutput(w).ColorProfile() != termenv.Ascii
}

// DetectFormat determines the text format for w
func DetectFormat(w io.Writer) Format {
	if ColorEnabled(w) {
		return FormatTerminal
	}
	return FormatText
}
