// Package style prints the short messages addressed to the user: progress
// notes, warnings and errors. They go to stderr so stdout stays clean for
// command results.
package style

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/arthur-debert/dotm/pkg/ui"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/indent"
	"github.com/muesli/reflow/wordwrap"
	"github.com/muesli/termenv"
)

// Width is the column messages are wrapped at
const Width = 80

// Level is the kind of a message
type Level int

const (
	LevelInfo Level = iota
	LevelWarning
	LevelError
)

// Prefix is the label printed before a message
func (l Level) Prefix() string {
	switch l {
	case LevelWarning:
		return "warning:"
	case LevelError:
		return "error:"
	default:
		return "info:"
	}
}

var (
	infoColor    = lipgloss.AdaptiveColor{Light: "#6C757D", Dark: "#ADB5BD"}
	warningColor = lipgloss.AdaptiveColor{Light: "#FFC107", Dark: "#FFD54F"}
	errorColor   = lipgloss.AdaptiveColor{Light: "#DC3545", Dark: "#FF6B7D"}
)

// Printer writes messages to a writer. It implements types.Messenger.
type Printer struct {
	mu       sync.Mutex
	w        io.Writer
	prefixes map[Level]lipgloss.Style
}

// NewPrinter creates a Printer for w, coloring prefixes when w is a color
// capable terminal and NO_COLOR is unset
func NewPrinter(w io.Writer) *Printer {
	return newPrinter(w, ui.ColorEnabled(w))
}

// NewPlainPrinter creates a Printer that never colors
func NewPlainPrinter(w io.Writer) *Printer {
	return newPrinter(w, false)
}

func newPrinter(w io.Writer, color bool) *Printer {
	r := lipgloss.NewRenderer(w)
	if !color {
		r.SetColorProfile(termenv.Ascii)
	}
	return &Printer{
		w: w,
		prefixes: map[Level]lipgloss.Style{
			LevelInfo:    r.NewStyle().Foreground(infoColor),
			LevelWarning: r.NewStyle().Foreground(warningColor).Bold(true),
			LevelError:   r.NewStyle().Foreground(errorColor).Bold(true),
		},
	}
}

// Print writes msg with the prefix of level. A message longer than Width
// starts on the next line and every line is indented by two spaces.
func (p *Printer) Print(level Level, msg string) {
	p.mu.Lock()
	defer p.mu.Unlock()

	prefix := p.prefixes[level].Render(level.Prefix())
	wrapped := strings.TrimRight(wordwrap.String(msg, Width), "\n")
	if strings.Contains(wrapped, "\n") {
		fmt.Fprintf(p.w, "%s\n%s\n", prefix, indent.String(wrapped, 2))
		return
	}
	fmt.Fprintf(p.w, "%s %s\n", prefix, wrapped)
}

func (p *Printer) Info(msg string)  { p.Print(LevelInfo, msg) }
func (p *Printer) Warn(msg string)  { p.Print(LevelWarning, msg) }
func (p *Printer) Error(msg string) { p.Print(LevelError, msg) }

var std = NewPrinter(os.Stderr)

// Default returns the stderr printer
func Default() *Printer { return std }

// Info prints an info message to stderr
func Info(format string, args ...interface{}) { std.Info(fmt.Sprintf(format, args...)) }

// Warn prints a warning to stderr
func Warn(format string, args ...interface{}) { std.Warn(fmt.Sprintf(format, args...)) }

// Error prints an error message to stderr
func Error(format string, args ...interface{}) { std.Error(fmt.Sprintf(format, args...)) }
