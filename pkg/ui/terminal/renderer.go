// Package terminal provides rich terminal output with colors and styling
package terminal

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss/tree"
	"github.com/pterm/pterm"

	"github.com/arthur-debert/outliner/pkg/errors"
	"github.com/arthur-debert/outliner/pkg/outliner"
	"github.com/arthur-debert/outliner/pkg/ui/display"
)

// Renderer draws the outliner as a lipgloss tree and reports with pterm
// prefixes.
type Renderer struct {
	output io.Writer
}

// New creates a new terminal renderer
func New(w io.Writer) *Renderer {
	return &Renderer{output: w}
}

func (r *Renderer) RenderScene(view *display.SceneView) error {
	header := headerStyle.Render(view.Scene) + " " +
		metaStyle.Render(fmt.Sprintf("%s · %s", view.Mode, view.Layer))

	t := tree.Root(header).
		Enumerator(tree.RoundedEnumerator).
		EnumeratorStyle(enumeratorStyle)
	for _, item := range view.Items {
		t.Child(itemTree(item))
	}
	if len(view.Items) == 0 {
		t.Child(metaStyle.Render("(empty)"))
	}

	_, err := fmt.Fprintln(r.output, t.String())
	return err
}

func itemTree(item *display.Item) any {
	label := itemLabel(item)
	if len(item.Children) == 0 {
		return label
	}
	t := tree.Root(label).
		Enumerator(tree.RoundedEnumerator).
		EnumeratorStyle(enumeratorStyle)
	for _, child := range item.Children {
		t.Child(itemTree(child))
	}
	return t
}

func itemLabel(item *display.Item) string {
	style := collectionStyle
	switch {
	case item.Disabled:
		style = disabledStyle
	case item.Selected:
		style = selectedStyle
	case item.IsObject():
		style = objectStyle
	}

	label := style.Render(item.Name)
	if item.Active {
		label = activeMarker + " " + label
	}
	if item.Group != "" {
		label += " " + metaStyle.Render("⟨"+item.Group+"⟩")
	}
	return label
}

func (r *Renderer) RenderRun(result *display.RunResult) error {
	if err := r.RenderReports(result.Reports); err != nil {
		return err
	}
	if result.Scene == nil {
		return nil
	}
	if len(result.Reports) > 0 {
		if _, err := fmt.Fprintln(r.output); err != nil {
			return err
		}
	}
	return r.RenderScene(result.Scene)
}

func (r *Renderer) RenderReports(reports []outliner.Report) error {
	for _, rep := range reports {
		printer := pterm.Info
		switch rep.Level {
		case outliner.ReportWarning:
			printer = pterm.Warning
		case outliner.ReportError:
			printer = pterm.Error
		}
		line := fmt.Sprintf("%s %s", printer.Prefix.Style.Sprint(" "+printer.Prefix.Text+" "),
			printer.MessageStyle.Sprint(rep.Message))
		if _, err := fmt.Fprintln(r.output, line); err != nil {
			return err
		}
	}
	return nil
}

func (r *Renderer) RenderOperators(ops []display.OperatorInfo) error {
	for _, op := range ops {
		id := operatorIDStyle.Render(op.ID)
		if !op.Available {
			id = unavailableStyle.Render(op.ID)
		}
		line := fmt.Sprintf("%s\n  %s %s", id, op.Name, metaStyle.Render(op.Description))
		if _, err := fmt.Fprintln(r.output, line); err != nil {
			return err
		}
	}
	return nil
}

// RenderError renders an error with its code
func (r *Renderer) RenderError(err error) error {
	msg := err.Error()
	if e, ok := err.(*errors.OutlinerError); ok {
		msg = fmt.Sprintf("%s %s", pterm.Error.MessageStyle.Sprint(string(e.Code)), e.Message)
		if e.Wrapped != nil {
			msg += ": " + e.Wrapped.Error()
		}
	}
	_, werr := fmt.Fprintf(r.output, "%s %s\n",
		pterm.Error.Prefix.Style.Sprint(" "+pterm.Error.Prefix.Text+" "), strings.TrimSpace(msg))
	return werr
}

// RenderMessage renders a simple message
func (r *Renderer) RenderMessage(msg string) error {
	_, err := fmt.Fprintf(r.output, "%s %s\n",
		pterm.Info.Prefix.Style.Sprint(" "+pterm.Info.Prefix.Text+" "), msg)
	return err
}
