package output

import (
	"bytes"
	"embed"
	"fmt"
	"io"
	"os"
	"strings"
	"text/template"

	"github.com/arthur-debert/dotm/pkg/logging"
	"github.com/arthur-debert/dotm/pkg/types"
	"github.com/charmbracelet/lipgloss"
)

//go:embed templates/*.tmpl
var templatesFS embed.FS

// Renderer renders command results through Go templates. Templates call
// the `style` function with a semantic style name, which applies the
// matching lipgloss style or nothing in no-color mode.
type Renderer struct {
	templates *template.Template
	writer    io.Writer
	noColor   bool
	styles    Styles
	lip       *lipgloss.Renderer
}

// NewRenderer creates a Renderer writing to w with the default styles.
// NO_COLOR forces noColor.
func NewRenderer(w io.Writer, noColor bool) (*Renderer, error) {
	return NewRendererWithStyles(w, noColor, DefaultStyles())
}

// NewRendererWithStyles is NewRenderer with custom styles
func NewRendererWithStyles(w io.Writer, noColor bool, styles Styles) (*Renderer, error) {
	log := logging.GetLogger("output.Renderer")

	if os.Getenv("NO_COLOR") != "" {
		noColor = true
	}

	r := &Renderer{
		writer:  w,
		noColor: noColor,
		styles:  styles,
	}
	if !noColor {
		r.lip = lipgloss.NewRenderer(w)
		log.Debug().
			Str("colorProfile", fmt.Sprintf("%v", r.lip.ColorProfile())).
			Msg("Lipgloss renderer created")
	}

	tmpl, err := template.New("output").Funcs(r.funcs()).ParseFS(templatesFS, "templates/*.tmpl")
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}
	r.templates = tmpl
	return r, nil
}

func (r *Renderer) funcs() template.FuncMap {
	return template.FuncMap{
		"style": r.style,
		"str":   func(v interface{}) string { return fmt.Sprint(v) },
		"ids":   func(ids types.Identifiers) string { return ids.String() },
		"inc":   func(i int) int { return i + 1 },
		"plural": func(n int, word string) string {
			if n == 1 {
				return fmt.Sprintf("%d %s", n, word)
			}
			return fmt.Sprintf("%d %ss", n, word)
		},
	}
}

func (r *Renderer) style(name, text string) string {
	if r.noColor {
		return text
	}
	return r.styles.Get(name).Renderer(r.lip).Render(text)
}

// RenderResult picks the template matching the result type
func (r *Renderer) RenderResult(result interface{}) error {
	var name string
	switch result.(type) {
	case *types.PlanResult:
		name = "plan.tmpl"
	case *types.ListRulesResult:
		name = "list.tmpl"
	case *types.InstallResult:
		name = "install.tmpl"
	case *types.ExecResult:
		name = "exec.tmpl"
	case *types.AddResult:
		name = "add.tmpl"
	default:
		_, err := fmt.Fprintf(r.writer, "%+v\n", result)
		return err
	}
	return r.render(name, result)
}

func (r *Renderer) render(name string, data interface{}) error {
	log := logging.GetLogger("output.Renderer")

	var buf bytes.Buffer
	if err := r.templates.ExecuteTemplate(&buf, name, data); err != nil {
		return fmt.Errorf("failed to execute template %s: %w", name, err)
	}
	log.Trace().Str("template", name).Int("bytes", buf.Len()).Msg("Template executed")

	_, err := fmt.Fprintln(r.writer, strings.TrimRight(buf.String(), "\n"))
	return err
}
