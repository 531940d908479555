package cli

import (
	"github.com/spf13/cobra"

	"github.com/arthur-debert/outliner/pkg/config"
	"github.com/arthur-debert/outliner/pkg/document"
	"github.com/arthur-debert/outliner/pkg/events"
	"github.com/arthur-debert/outliner/pkg/outliner"
	"github.com/arthur-debert/outliner/pkg/paths"
	"github.com/arthur-debert/outliner/pkg/scene"
	"github.com/arthur-debert/outliner/pkg/ui"
)

// app carries the state shared by all commands of one invocation.
type app struct {
	cfg       *config.Config
	file      string
	format    string
	verbosity int

	closeLog func()
}

// closeLogs releases the log file opened for this invocation.
func (a *app) closeLogs() {
	if a.closeLog != nil {
		a.closeLog()
		a.closeLog = nil
	}
}

func (a *app) documentPath() string {
	if a.file != "" {
		return paths.ExpandHome(a.file)
	}
	return a.cfg.Scene.DefaultFile
}

func (a *app) renderer(cmd *cobra.Command) (ui.Renderer, error) {
	name := a.format
	if name == "" {
		name = a.cfg.Output.Format
	}
	format, err := ui.ParseFormat(name)
	if err != nil {
		return nil, err
	}
	return ui.NewRenderer(format, cmd.OutOrStdout())
}

// session is an opened scene document.
type session struct {
	path  string
	scene *scene.Scene
	space *outliner.Space
	bus   *events.Bus
}

func (a *app) open() (*session, error) {
	path := a.documentPath()
	d, err := document.Load(path)
	if err != nil {
		return nil, err
	}
	sc, space, err := d.Scene()
	if err != nil {
		return nil, err
	}
	sc.CollectionPrefix = a.cfg.Naming.CollectionPrefix

	return &session{
		path:  path,
		scene: sc,
		space: space,
		bus:   events.NewBus(),
	}, nil
}

func (s *session) context() *outliner.Context {
	return outliner.NewContext(s.scene, s.space, s.bus)
}

func (s *session) save() error {
	return document.Save(s.path, document.FromScene(s.scene, s.space))
}

// reportedError is returned once an error has already been rendered, so
// that Execute only sets the exit status.
type reportedError struct {
	error
}

func (e reportedError) Unwrap() error {
	return e.error
}
