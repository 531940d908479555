package ui_test

import (
	"bytes"
	"encoding/json"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/outliner/pkg/errors"
	"github.com/arthur-debert/outliner/pkg/outliner"
	"github.com/arthur-debert/outliner/pkg/ui"
	"github.com/arthur-debert/outliner/pkg/ui/display"
)

func sampleView() *display.SceneView {
	return &display.SceneView{
		Scene: "Scene",
		Layer: "View Layer",
		Mode:  "view_layer",
		Items: []*display.Item{
			{
				Name: "Props", Type: "layer_collection", Path: "View Layer/Props", Active: true,
				Children: []*display.Item{
					{Name: "Chairs", Type: "layer_collection", Path: "View Layer/Props/Chairs", Selected: true},
					{Name: "Crate", Type: "object", Path: "View Layer/Props/Crate"},
				},
			},
			{Name: "Lights", Type: "layer_collection", Path: "View Layer/Lights", Disabled: true},
		},
	}
}

func TestFormatString(t *testing.T) {
	assert.Equal(t, "auto", ui.FormatAuto.String())
	assert.Equal(t, "term", ui.FormatTerminal.String())
	assert.Equal(t, "text", ui.FormatText.String())
	assert.Equal(t, "json", ui.FormatJSON.String())
	assert.Equal(t, "unknown", ui.Format(999).String())
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		input    string
		expected ui.Format
		wantErr  bool
	}{
		{"", ui.FormatAuto, false},
		{"auto", ui.FormatAuto, false},
		{"TERM", ui.FormatTerminal, false},
		{"terminal", ui.FormatTerminal, false},
		{"plain", ui.FormatText, false},
		{"json", ui.FormatJSON, false},
		{"xml", ui.FormatAuto, true},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ui.ParseFormat(tt.input)
			if tt.wantErr {
				assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
				assert.Equal(t, []string{"auto", "term", "text", "json"}, errors.GetErrorDetails(err)["choices"])
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestDetectFormatNoColor(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	assert.Equal(t, ui.FormatText, ui.DetectFormat(os.Stdout))
}

func TestDetectFormatPipe(t *testing.T) {
	r, w, err := os.Pipe()
	require.NoError(t, err)
	defer r.Close()
	defer w.Close()

	assert.Equal(t, ui.FormatText, ui.DetectFormat(w))
}

func TestNewRenderer(t *testing.T) {
	for _, format := range []ui.Format{ui.FormatAuto, ui.FormatTerminal, ui.FormatText, ui.FormatJSON} {
		t.Run(format.String(), func(t *testing.T) {
			r, err := ui.NewRenderer(format, &bytes.Buffer{})
			require.NoError(t, err)
			assert.NotNil(t, r)
		})
	}

	_, err := ui.NewRenderer(ui.Format(999), &bytes.Buffer{})
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
}

func TestTextRenderScene(t *testing.T) {
	var buf bytes.Buffer
	r, err := ui.NewRenderer(ui.FormatText, &buf)
	require.NoError(t, err)

	require.NoError(t, r.RenderScene(sampleView()))

	assert.Equal(t, `Scene [view_layer, layer View Layer]
  Props (active)
    Chairs (selected)
    Crate (object)
  Lights (disabled)
`, buf.String())
}

func TestTextRenderRun(t *testing.T) {
	var buf bytes.Buffer
	r, err := ui.NewRenderer(ui.FormatText, &buf)
	require.NoError(t, err)

	require.NoError(t, r.RenderRun(&display.RunResult{
		Operator: "OUTLINER_OT_collections_delete",
		Reports: []outliner.Report{
			{Level: outliner.ReportWarning, Message: "careful"},
			{Level: outliner.ReportInfo, Message: "Deleted 1 collection(s)"},
		},
		Scene: &display.SceneView{Scene: "Scene", Layer: "View Layer", Mode: "collections"},
	}))

	assert.Equal(t, `WARNING: careful
INFO: Deleted 1 collection(s)
Scene [collections, layer View Layer]
  (empty)
`, buf.String())
}

func TestTextRenderError(t *testing.T) {
	var buf bytes.Buffer
	r, err := ui.NewRenderer(ui.FormatText, &buf)
	require.NoError(t, err)

	require.NoError(t, r.RenderError(errors.New(errors.ErrNotFound, "no such element")))
	assert.Equal(t, "Error [NOT_FOUND]: no such element\n", buf.String())
}

func TestTerminalRenderScene(t *testing.T) {
	var buf bytes.Buffer
	r, err := ui.NewRenderer(ui.FormatTerminal, &buf)
	require.NoError(t, err)

	require.NoError(t, r.RenderScene(sampleView()))

	out := buf.String()
	for _, name := range []string{"Scene", "Props", "Chairs", "Crate", "Lights", "●"} {
		assert.Contains(t, out, name)
	}
}

func TestTerminalRenderReports(t *testing.T) {
	var buf bytes.Buffer
	r, err := ui.NewRenderer(ui.FormatTerminal, &buf)
	require.NoError(t, err)

	require.NoError(t, r.RenderReports([]outliner.Report{
		{Level: outliner.ReportError, Message: "Operator not implemented yet"},
	}))
	assert.Contains(t, buf.String(), "ERROR")
	assert.Contains(t, buf.String(), "Operator not implemented yet")
}

func TestJSONRenderScene(t *testing.T) {
	var buf bytes.Buffer
	r, err := ui.NewRenderer(ui.FormatJSON, &buf)
	require.NoError(t, err)

	require.NoError(t, r.RenderScene(sampleView()))

	var got display.SceneView
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, *sampleView(), got)
}

func TestJSONRenderError(t *testing.T) {
	var buf bytes.Buffer
	r, err := ui.NewRenderer(ui.FormatJSON, &buf)
	require.NoError(t, err)

	require.NoError(t, r.RenderError(errors.New(errors.ErrPollFailed, "cannot run").WithDetail("operator", "x")))

	var got map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, "POLL_FAILED", got["code"])
	assert.Equal(t, map[string]interface{}{"operator": "x"}, got["details"])
}

func TestJSONRenderReportsEmpty(t *testing.T) {
	var buf bytes.Buffer
	r, err := ui.NewRenderer(ui.FormatJSON, &buf)
	require.NoError(t, err)

	require.NoError(t, r.RenderReports(nil))
	assert.JSONEq(t, `{"reports": []}`, buf.String())
}
