// Package text provides plain text output without any styling
package text

import (
	"fmt"
	"io"
	"strings"

	"github.com/arthur-debert/outliner/pkg/errors"
	"github.com/arthur-debert/outliner/pkg/outliner"
	"github.com/arthur-debert/outliner/pkg/ui/display"
)

const indent = "  "

// Renderer provides plain text output without colors or styling
type Renderer struct {
	output io.Writer
}

// New creates a new text renderer
func New(output io.Writer) *Renderer {
	return &Renderer{output: output}
}

// RenderScene prints the header line and one indented line per element.
func (r *Renderer) RenderScene(view *display.SceneView) error {
	if _, err := fmt.Fprintf(r.output, "%s [%s, layer %s]\n", view.Scene, view.Mode, view.Layer); err != nil {
		return err
	}
	if len(view.Items) == 0 {
		_, err := fmt.Fprintln(r.output, indent+"(empty)")
		return err
	}
	for _, item := range view.Items {
		if err := r.renderItem(item, 1); err != nil {
			return err
		}
	}
	return nil
}

func (r *Renderer) renderItem(item *display.Item, depth int) error {
	if _, err := fmt.Fprintln(r.output, strings.Repeat(indent, depth)+item.Label()); err != nil {
		return err
	}
	for _, child := range item.Children {
		if err := r.renderItem(child, depth+1); err != nil {
			return err
		}
	}
	return nil
}

func (r *Renderer) RenderRun(result *display.RunResult) error {
	if err := r.RenderReports(result.Reports); err != nil {
		return err
	}
	if result.Scene == nil {
		return nil
	}
	return r.RenderScene(result.Scene)
}

func (r *Renderer) RenderReports(reports []outliner.Report) error {
	for _, rep := range reports {
		if _, err := fmt.Fprintf(r.output, "%s: %s\n", strings.ToUpper(string(rep.Level)), rep.Message); err != nil {
			return err
		}
	}
	return nil
}

func (r *Renderer) RenderOperators(ops []display.OperatorInfo) error {
	for _, op := range ops {
		status := ""
		if !op.Available {
			status = " (unavailable)"
		}
		if _, err := fmt.Fprintf(r.output, "%s%s\n%s%s: %s\n", op.ID, status, indent, op.Name, op.Description); err != nil {
			return err
		}
	}
	return nil
}

// RenderError renders an error as plain text
func (r *Renderer) RenderError(err error) error {
	code := errors.GetErrorCode(err)
	if code == errors.ErrUnknown {
		_, werr := fmt.Fprintf(r.output, "Error: %v\n", err)
		return werr
	}
	_, werr := fmt.Fprintf(r.output, "Error [%s]: %s\n", code, message(err))
	return werr
}

// RenderMessage renders a simple message
func (r *Renderer) RenderMessage(msg string) error {
	_, err := fmt.Fprintln(r.output, msg)
	return err
}

func message(err error) string {
	if e, ok := err.(*errors.OutlinerError); ok {
		if e.Wrapped != nil {
			return fmt.Sprintf("%s: %v", e.Message, e.Wrapped)
		}
		return e.Message
	}
	return err.Error()
}
