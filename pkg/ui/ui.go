// Package ui renders command results as rich terminal output, plain
// text, JSON or YAML.
package ui

import (
	"io"
	"os"

	"github.com/arthur-debert/sublsync/pkg/errors"
	"github.com/arthur-debert/sublsync/pkg/ui/json"
	"github.com/arthur-debert/sublsync/pkg/ui/terminal"
	"github.com/arthur-debert/sublsync/pkg/ui/text"
	"github.com/arthur-debert/sublsync/pkg/ui/yaml"
)

// Renderer is the common interface for all output renderers
type Renderer interface {
	// RenderHeader prints the resolved source and destination paths.
	// Structured renderers skip it, the paths are part of every result.
	RenderHeader(source, destination string) error

	// RenderResult renders a *types.SyncResult or *types.StatusReport
	RenderResult(result interface{}) error

	// RenderError renders an error with appropriate formatting
	RenderError(err error) error

	// RenderMessage renders a simple message
	RenderMessage(msg string) error
}

// Resolve turns FormatAuto into a concrete format for output
func Resolve(format Format, output io.Writer) Format {
	if format != FormatAuto {
		return format
	}
	if file, ok := output.(*os.File); ok {
		return DetectFormat(file)
	}
	return FormatText
}

// NewRenderer creates a new renderer based on the specified format.
// It detects terminal capabilities when format is Auto.
func NewRenderer(format Format, output io.Writer) (Renderer, error) {
	switch Resolve(format, output) {
	case FormatTerminal:
		return terminal.New(output), nil
	case FormatText:
		return text.New(output), nil
	case FormatJSON:
		return json.New(output), nil
	case FormatYAML:
		return yaml.New(output), nil
	default:
		return nil, errors.Newf(errors.ErrInvalidInput, "unknown format: %v", format)
	}
}
