// Package ui renders outliner views as rich terminal output, plain text or
// JSON.
package ui

import (
	"io"
	"os"

	"github.com/arthur-debert/outliner/pkg/errors"
	"github.com/arthur-debert/outliner/pkg/outliner"
	"github.com/arthur-debert/outliner/pkg/ui/display"
	"github.com/arthur-debert/outliner/pkg/ui/json"
	"github.com/arthur-debert/outliner/pkg/ui/terminal"
	"github.com/arthur-debert/outliner/pkg/ui/text"
)

// Renderer is implemented by every output format.
type Renderer interface {
	// RenderScene renders the outliner of a scene.
	RenderScene(view *display.SceneView) error

	// RenderRun renders the reports of an operator run and the resulting
	// scene, when present.
	RenderRun(result *display.RunResult) error

	// RenderReports renders operator reports.
	RenderReports(reports []outliner.Report) error

	// RenderOperators renders an operator listing.
	RenderOperators(ops []display.OperatorInfo) error

	// RenderError renders an error with appropriate formatting
	RenderError(err error) error

	// RenderMessage renders a simple message
	RenderMessage(msg string) error
}

// NewRenderer creates a new renderer based on the specified format.
// It automatically detects terminal capabilities when format is Auto.
func NewRenderer(format Format, output io.Writer) (Renderer, error) {
	switch format {
	case FormatAuto:
		if file, ok := output.(*os.File); ok {
			return NewRenderer(DetectFormat(file), output)
		}
		return NewRenderer(FormatTerminal, output)
	case FormatTerminal:
		return terminal.New(output), nil
	case FormatText:
		return text.New(output), nil
	case FormatJSON:
		return json.New(output), nil
	default:
		return nil, errors.Newf(errors.ErrInvalidInput, "unknown format: %v", format)
	}
}
