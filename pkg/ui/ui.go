// Package ui renders command results in the format picked by the user and
// asks for confirmations.
package ui

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/arthur-debert/dotm/pkg/output"
	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Renderer is the common interface for all output renderers
type Renderer interface {
	// RenderResult renders a command result
	RenderResult(result interface{}) error
}

// NewRenderer creates a new renderer based on the specified format
func NewRenderer(format Format, w io.Writer) (Renderer, error) {
	switch format {
	case FormatAuto:
		return NewRenderer(DetectFormat(w), w)
	case FormatTerminal:
		return output.NewRenderer(w, false)
	case FormatText:
		return output.NewRenderer(w, true)
	case FormatJSON:
		return &jsonRenderer{w: w}, nil
	case FormatYAML:
		return &yamlRenderer{w: w}, nil
	case FormatTOML:
		return &tomlRenderer{w: w}, nil
	default:
		return nil, fmt.Errorf("unknown format: %v", format)
	}
}

type jsonRenderer struct{ w io.Writer }

func (r *jsonRenderer) RenderResult(result interface{}) error {
	encoder := json.NewEncoder(r.w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(result)
}

type yamlRenderer struct{ w io.Writer }

func (r *yamlRenderer) RenderResult(result interface{}) error {
	encoder := yaml.NewEncoder(r.w)
	encoder.SetIndent(2)
	if err := encoder.Encode(result); err != nil {
		return err
	}
	return encoder.Close()
}

type tomlRenderer struct{ w io.Writer }

func (r *tomlRenderer) RenderResult(result interface{}) error {
	return toml.NewEncoder(r.w).SetIndentTables(true).Encode(result)
}
