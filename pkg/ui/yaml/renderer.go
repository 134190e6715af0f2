// Package yaml provides machine-readable YAML output
package yaml

import (
	"io"

	"github.com/arthur-debert/sublsync/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Renderer writes each result as its own YAML document
type Renderer struct {
	output io.Writer
}

// New creates a new YAML renderer
func New(output io.Writer) *Renderer {
	return &Renderer{output: output}
}

// RenderHeader is a no-op, results carry their paths
func (r *Renderer) RenderHeader(source, destination string) error {
	return nil
}

// RenderResult renders any result type as a YAML document
func (r *Renderer) RenderResult(result interface{}) error {
	return r.encode(result)
}

// RenderError renders an error as a YAML document
func (r *Renderer) RenderError(err error) error {
	errorObj := map[string]interface{}{
		"error": err.Error(),
		"code":  string(errors.GetErrorCode(err)),
	}
	if details := errors.GetErrorDetails(err); len(details) > 0 {
		errorObj["details"] = details
	}
	return r.encode(errorObj)
}

// RenderMessage renders a simple message as a YAML document
func (r *Renderer) RenderMessage(msg string) error {
	return r.encode(map[string]string{"message": msg})
}

func (r *Renderer) encode(v interface{}) error {
	enc := yaml.NewEncoder(r.output)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return err
	}
	return enc.Close()
}
