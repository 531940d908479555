package testutil

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/outliner/pkg/document"
	"github.com/arthur-debert/outliner/pkg/paths"
)

// SceneDocument is
//
//	Master Collection
//	├── Props (objects: Crate)
//	│   ├── Chairs
//	│   └── Tables
//	└── Lights
//
// with Props and Lights linked to the view layer, Lights active and two
// groups, Characters and Vehicles.
const SceneDocument = `id = "4a0c3b8e-7f5d-4a53-9d7e-0c2f3f1d9b10"
name = "Scene"
groups = ["Characters", "Vehicles"]
objects = ["Crate", "Lamp"]
active_layer = 0

[master]
name = "Master Collection"

[[master.children]]
name = "Props"
objects = ["Crate"]

[[master.children.children]]
name = "Chairs"

[[master.children.children]]
name = "Tables"

[[master.children]]
name = "Lights"

[[view_layers]]
name = "View Layer"
active = 3

[[view_layers.collections]]
name = "Props"

[[view_layers.collections]]
name = "Lights"

[outliner]
mode = "collections"
`

// TestEnvironment isolates the directories outliner reads and writes.
type TestEnvironment struct {
	t *testing.T

	ConfigDir string
	DataDir   string
	StateDir  string
}

// NewTestEnvironment points the outliner directories at fresh temporary
// directories for the duration of the test.
func NewTestEnvironment(t *testing.T) *TestEnvironment {
	t.Helper()

	root := t.TempDir()
	env := &TestEnvironment{
		t:         t,
		ConfigDir: filepath.Join(root, "config"),
		DataDir:   filepath.Join(root, "data"),
		StateDir:  filepath.Join(root, "state"),
	}
	t.Setenv(paths.EnvConfigDir, env.ConfigDir)
	t.Setenv(paths.EnvDataDir, env.DataDir)
	t.Setenv(paths.EnvStateDir, env.StateDir)
	return env
}

// DocumentPath is where the default scene document lives.
func (env *TestEnvironment) DocumentPath() string {
	return paths.DefaultDocument()
}

// WithDocument writes content as the default scene document.
func (env *TestEnvironment) WithDocument(content string) *TestEnvironment {
	env.t.Helper()
	WriteFile(env.t, env.DocumentPath(), content)
	return env
}

// WithScene writes SceneDocument as the default scene document.
func (env *TestEnvironment) WithScene() *TestEnvironment {
	env.t.Helper()
	return env.WithDocument(SceneDocument)
}

// WithConfig writes content as the user configuration file.
func (env *TestEnvironment) WithConfig(content string) *TestEnvironment {
	env.t.Helper()
	WriteFile(env.t, filepath.Join(env.ConfigDir, paths.ConfigFileName), content)
	return env
}

// Document loads the default scene document.
func (env *TestEnvironment) Document() *document.Document {
	env.t.Helper()

	d, err := document.Load(env.DocumentPath())
	require.NoError(env.t, err)
	return d
}
