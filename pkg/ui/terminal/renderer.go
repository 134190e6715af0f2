// Package terminal provides rich terminal output with colors and styling
package terminal

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/arthur-debert/sublsync/pkg/style"
	"github.com/arthur-debert/sublsync/pkg/types"
	"github.com/pterm/pterm"
)

// Renderer provides rich terminal output using pterm and lipgloss styles
type Renderer struct {
	output io.Writer
}

// New creates a new terminal renderer
func New(w io.Writer) *Renderer {
	return &Renderer{output: w}
}

// RenderHeader prints the source and destination paths
func (r *Renderer) RenderHeader(source, destination string) error {
	_, err := fmt.Fprintf(r.output, "%s %s\n%s %s\n",
		style.TitleStyle.Render("Source path:"), style.PathStyle.Render(source),
		style.TitleStyle.Render("Destination path:"), style.PathStyle.Render(destination))
	return err
}

// RenderResult renders any result type with rich terminal formatting
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
		label := style.ActionStyle(a.Status).Sprint(fmt.Sprintf(" %-7s ", style.ActionLabel(a.Status)))
		if _, err := fmt.Fprintf(r.output, "%s %s\n", label, r.describe(result, a)); err != nil {
			return err
		}
	}

	summary := result.Summary()
	var line string
	switch {
	case result.Count(types.ActionError) > 0:
		line = pterm.Error.Sprint(summary)
	case result.Count(types.ActionConflict) > 0:
		line = pterm.Warning.Sprint(summary)
	case result.DryRun:
		line = pterm.Info.Sprint(summary)
	default:
		line = pterm.Success.Sprint(summary)
	}
	_, err := fmt.Fprintln(r.output, line)
	return err
}

// describe shortens paths relative to the trees they live in
func (r *Renderer) describe(result *types.SyncResult, a types.ActionResult) string {
	op := a.Operation
	target := relative(result.DestDir, op.Target)
	source := style.PathStyle.Render(relative(result.SourceDir, op.Source))

	switch op.Type {
	case types.OperationCreateDir:
		return style.PathStyle.Render(op.Target)
	case types.OperationAdopt:
		return fmt.Sprintf("%s into %s", style.KindStyle(op.Kind).Render(target), source)
	}

	line := fmt.Sprintf("%s -> %s", style.KindStyle(op.Kind).Render(target), source)
	switch a.Status {
	case types.ActionConflict, types.ActionError:
		line += "\n          " + style.MutedStyle.Render(a.Message)
	case types.ActionBackedUp:
		line += " " + style.MutedStyle.Render("(saved "+filepath.Base(a.BackupPath)+")")
	}
	return line
}

func (r *Renderer) renderStatus(report *types.StatusReport) error {
	if len(report.Files) == 0 {
		_, err := fmt.Fprintln(r.output, style.MutedStyle.Render("No tracked files"))
		return err
	}

	data := pterm.TableData{{"State", "Kind", "Name", "Points to"}}
	for _, f := range report.Files {
		name := relative(report.DestDir, f.Target)
		data = append(data, []string{
			style.StateStyle(f.State).Sprint(string(f.State)),
			style.KindStyle(f.Kind).Render(string(f.Kind)),
			name,
			f.LinkTarget,
		})
	}
	table, err := pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
	if err != nil {
		return err
	}
	if _, err := fmt.Fprintln(r.output, table); err != nil {
		return err
	}

	if report.InSync() {
		_, err = fmt.Fprintln(r.output, pterm.Success.Sprint("All tracked files are linked"))
	} else {
		_, err = fmt.Fprintln(r.output, pterm.Warning.Sprint("Run sublsync to link the remaining files"))
	}
	return err
}

// RenderError renders an error with its code
func (r *Renderer) RenderError(err error) error {
	_, werr := fmt.Fprintf(r.output, "%s %s\n", pterm.Error.Prefix.Text, style.ErrorStyle.Render(err.Error()))
	return werr
}

// RenderMessage renders a simple message
func (r *Renderer) RenderMessage(msg string) error {
	_, err := fmt.Fprintln(r.output, pterm.Info.Sprint(msg))
	return err
}

func relative(base, path string) string {
	rel, err := filepath.Rel(base, path)
	if base == "" || err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return path
	}
	return rel
}
