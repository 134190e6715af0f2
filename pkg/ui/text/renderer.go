// Package text provides plain text output without any styling
package text

import (
	"fmt"
	"io"

	"github.com/arthur-debert/sublsync/pkg/types"
)

// Renderer provides plain text output without colors or styling
type Renderer struct {
	output io.Writer
}

// New creates a new text renderer
func New(output io.Writer) *Renderer {
	return &Renderer{output: output}
}

// RenderHeader prints the source and destination paths
func (r *Renderer) RenderHeader(source, destination string) error {
	_, err := fmt.Fprintf(r.output, "Source path: %s\nDestination path: %s\n", source, destination)
	return err
}

// RenderResult renders any result type as plain text
func (r *Renderer) RenderResult(result interface{}) error {
	switch v := result.(type) {
	case *types.SyncResult:
		return r.renderSync(v)
	case *types.StatusReport:
		return r.renderStatus(v)
	default:
		_, err := fmt.Fprintf(r.output, "%+v\n", result)
		return err
	}
}

func (r *Renderer) renderSync(result *types.SyncResult) error {
	for _, a := range result.Actions {
		msg := a.Message
		if msg == "" {
			msg = a.Operation.Description()
		}
		if _, err := fmt.Fprintln(r.output, msg); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(r.output, result.Summary())
	return err
}

func (r *Renderer) renderStatus(report *types.StatusReport) error {
	if len(report.Files) == 0 {
		_, err := fmt.Fprintln(r.output, "no tracked files")
		return err
	}
	for _, f := range report.Files {
		line := fmt.Sprintf("%-12s %-8s %s", f.State, f.Kind, f.Target)
		if f.LinkTarget != "" && f.State != types.StateLinked {
			line += " -> " + f.LinkTarget
		}
		if _, err := fmt.Fprintln(r.output, line); err != nil {
			return err
		}
	}
	if report.InSync() {
		_, err := fmt.Fprintln(r.output, "in sync")
		return err
	}
	return nil
}

// RenderError renders an error as plain text
func (r *Renderer) RenderError(err error) error {
	_, err2 := fmt.Fprintf(r.output, "Error: %v\n", err)
	return err2
}

// RenderMessage renders a simple message
func (r *Renderer) RenderMessage(msg string) error {
	_, err := fmt.Fprintln(r.output, msg)
	return err
}
