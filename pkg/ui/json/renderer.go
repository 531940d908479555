// Package json provides machine-readable JSON output
package json

import (
	"encoding/json"
	"io"

	"github.com/arthur-debert/outliner/pkg/errors"
	"github.com/arthur-debert/outliner/pkg/outliner"
	"github.com/arthur-debert/outliner/pkg/ui/display"
)

// Renderer provides JSON output for machine consumption
type Renderer struct {
	encoder *json.Encoder
}

// New creates a new JSON renderer
func New(output io.Writer) *Renderer {
	encoder := json.NewEncoder(output)
	encoder.SetIndent("", "  ")
	return &Renderer{encoder: encoder}
}

func (r *Renderer) RenderScene(view *display.SceneView) error {
	return r.encoder.Encode(view)
}

func (r *Renderer) RenderRun(result *display.RunResult) error {
	if result.Reports == nil {
		result.Reports = []outliner.Report{}
	}
	return r.encoder.Encode(result)
}

func (r *Renderer) RenderReports(reports []outliner.Report) error {
	if reports == nil {
		reports = []outliner.Report{}
	}
	return r.encoder.Encode(map[string]interface{}{"reports": reports})
}

func (r *Renderer) RenderOperators(ops []display.OperatorInfo) error {
	return r.encoder.Encode(map[string]interface{}{"operators": ops})
}

// RenderError renders an error as JSON
func (r *Renderer) RenderError(err error) error {
	errorObj := map[string]interface{}{
		"error": err.Error(),
		"code":  errors.GetErrorCode(err),
	}
	if details := errors.GetErrorDetails(err); len(details) > 0 {
		errorObj["details"] = details
	}
	return r.encoder.Encode(errorObj)
}

// RenderMessage renders a simple message as JSON
func (r *Renderer) RenderMessage(msg string) error {
	return r.encoder.Encode(map[string]string{"message": msg})
}
