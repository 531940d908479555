package cli_test

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/outliner/internal/cli"
	"github.com/arthur-debert/outliner/pkg/document"
	"github.com/arthur-debert/outliner/pkg/paths"
	"github.com/arthur-debert/outliner/pkg/testutil"
)

type result struct {
	code   int
	stdout string
	stderr string
}

// run executes the command line with text output unless a format is given.
func run(t *testing.T, args ...string) result {
	t.Helper()
	var stdout, stderr bytes.Buffer
	args = append([]string{"--format", "text"}, args...)
	code := cli.Execute(args, &stdout, &stderr)
	return result{code: code, stdout: stdout.String(), stderr: stderr.String()}
}

func childNames(c document.Collection) []string {
	var names []string
	for _, child := range c.Children {
		names = append(names, child.Name)
	}
	return names
}

func linkNames(d *document.Document) []string {
	var names []string
	for _, l := range d.ViewLayers[0].Collections {
		names = append(names, l.Name)
	}
	return names
}

func TestInit(t *testing.T) {
	env := testutil.NewTestEnvironment(t)

	res := run(t, "init", "--group", "Heroes")
	require.Equal(t, 0, res.code, res.stderr)
	assert.Contains(t, res.stdout, "Created scene document at "+env.DocumentPath())

	d := env.Document()
	assert.Equal(t, "Scene", d.Name)
	assert.Equal(t, "Master Collection", d.Master.Name)
	assert.Equal(t, []string{"Heroes"}, d.Groups)
	assert.Equal(t, "collections", d.Outliner.Mode)
	require.Len(t, d.ViewLayers, 1)
	assert.Equal(t, "View Layer", d.ViewLayers[0].Name)

	res = run(t, "init")
	assert.Equal(t, 1, res.code)
	assert.Contains(t, res.stderr, "ALREADY_EXISTS")

	res = run(t, "init", "--force", "--mode", "view_layer")
	require.Equal(t, 0, res.code, res.stderr)
	assert.Equal(t, "view_layer", env.Document().Outliner.Mode)
}

func TestInitUsesConfig(t *testing.T) {
	env := testutil.NewTestEnvironment(t)
	env.WithConfig(`[scene]
name = "Stage"
master_name = "Root"
groups = ["Cast"]

[outliner]
mode = "view_layer"
`)

	res := run(t, "init", "--group", "Crew")
	require.Equal(t, 0, res.code, res.stderr)

	d := env.Document()
	assert.Equal(t, "Stage", d.Name)
	assert.Equal(t, "Root", d.Master.Name)
	assert.Equal(t, []string{"Cast", "Crew"}, d.Groups)
	assert.Equal(t, "view_layer", d.Outliner.Mode)
}

func TestInitRejectsUnknownMode(t *testing.T) {
	env := testutil.NewTestEnvironment(t)

	res := run(t, "init", "--mode", "sideways")
	assert.Equal(t, 1, res.code)
	assert.Contains(t, res.stderr, "INVALID_INPUT")
	assert.False(t, testutil.FileExists(t, env.DocumentPath()))
}

func TestFileFlag(t *testing.T) {
	env := testutil.NewTestEnvironment(t)
	path := filepath.Join(t.TempDir(), "stage.yaml")

	res := run(t, "--file", path, "init")
	require.Equal(t, 0, res.code, res.stderr)
	assert.Contains(t, testutil.ReadFile(t, path), "master:")
	assert.False(t, testutil.FileExists(t, env.DocumentPath()))

	res = run(t, "--file", path, "show")
	require.Equal(t, 0, res.code, res.stderr)
	assert.Contains(t, res.stdout, "Master Collection")
}

func TestShow(t *testing.T) {
	testutil.NewTestEnvironment(t).WithScene()

	res := run(t, "show")
	require.Equal(t, 0, res.code, res.stderr)
	assert.Contains(t, res.stdout, "Scene [collections, layer View Layer]")
	assert.Contains(t, res.stdout, "\n  Master Collection\n")
	assert.Contains(t, res.stdout, "\n    Props\n")
	assert.Contains(t, res.stdout, "\n      Chairs\n")
	assert.Contains(t, res.stdout, "Crate (object)")

	res = run(t, "show", "--mode", "view_layer")
	require.Equal(t, 0, res.code, res.stderr)
	assert.Contains(t, res.stdout, "Scene [view_layer, layer View Layer]")
	assert.Contains(t, res.stdout, "Lights (active)")
	assert.NotContains(t, res.stdout, "Master Collection")
}

func TestShowJSON(t *testing.T) {
	testutil.NewTestEnvironment(t).WithScene()

	var stdout, stderr bytes.Buffer
	code := cli.Execute([]string{"--format", "json", "show"}, &stdout, &stderr)
	require.Equal(t, 0, code, stderr.String())

	var view struct {
		Scene string `json:"scene"`
		Mode  string `json:"mode"`
		Items []struct {
			Name string `json:"name"`
		} `json:"items"`
	}
	require.NoError(t, json.Unmarshal(stdout.Bytes(), &view))
	assert.Equal(t, "Scene", view.Scene)
	assert.Equal(t, "collections", view.Mode)
	require.Len(t, view.Items, 1)
	assert.Equal(t, "Master Collection", view.Items[0].Name)
}

func TestShowMissingDocument(t *testing.T) {
	testutil.NewTestEnvironment(t)

	res := run(t, "show")
	assert.Equal(t, 1, res.code)
	assert.Contains(t, res.stderr, "FILE_NOT_FOUND")
}

func TestSelect(t *testing.T) {
	env := testutil.NewTestEnvironment(t).WithScene()

	res := run(t, "select", "Master Collection/Props/Chairs")
	require.Equal(t, 0, res.code, res.stderr)
	assert.Contains(t, res.stdout, "Chairs (selected)")

	elements := env.Document().Outliner.Elements
	require.Len(t, elements, 1)
	assert.Equal(t, document.Element{
		Type:  "scene_collection",
		Path:  "Master Collection/Props/Chairs",
		Flags: []string{"selected"},
	}, elements[0])

	res = run(t, "select", "--clear", "Master Collection/Lights")
	require.Equal(t, 0, res.code, res.stderr)
	elements = env.Document().Outliner.Elements
	require.Len(t, elements, 1)
	assert.Equal(t, "Master Collection/Lights", elements[0].Path)

	res = run(t, "select", "--deselect", "Master Collection/Lights")
	require.Equal(t, 0, res.code, res.stderr)
	assert.Empty(t, env.Document().Outliner.Elements)

	res = run(t, "select", "Master Collection/Nowhere")
	assert.Equal(t, 1, res.code)
	assert.Contains(t, res.stderr, "NOT_FOUND")
}

func TestRun(t *testing.T) {
	t.Run("adds a collection", func(t *testing.T) {
		env := testutil.NewTestEnvironment(t).WithScene()

		res := run(t, "run", "OUTLINER_OT_collection_new")
		require.Equal(t, 0, res.code, res.stderr)
		assert.Contains(t, res.stdout, "INFO: Added collection Collection")

		d := env.Document()
		assert.Equal(t, []string{"Props", "Lights", "Collection"}, childNames(d.Master))
		assert.Equal(t, []string{"Props", "Lights", "Collection"}, linkNames(d))
	})

	t.Run("prefix may be left out", func(t *testing.T) {
		env := testutil.NewTestEnvironment(t).WithScene()

		res := run(t, "run", "collection_link", "--prop", "scene_collection=2")
		require.Equal(t, 0, res.code, res.stderr)
		assert.Equal(t, []string{"Props", "Lights", "Chairs"}, linkNames(env.Document()))
	})

	t.Run("invoke asks for a choice", func(t *testing.T) {
		env := testutil.NewTestEnvironment(t).WithScene()
		before := testutil.ReadFile(t, env.DocumentPath())

		res := run(t, "run", "collection_new", "-p", "type=group")
		assert.Equal(t, 1, res.code)
		assert.Contains(t, res.stdout, "ERROR: choose a group for the new collection")
		assert.Empty(t, res.stderr)
		assert.Equal(t, before, testutil.ReadFile(t, env.DocumentPath()))
	})

	t.Run("exec uses defaults", func(t *testing.T) {
		env := testutil.NewTestEnvironment(t).WithScene()

		res := run(t, "run", "collection_new", "-p", "type=group", "--exec")
		require.Equal(t, 0, res.code, res.stderr)

		master := env.Document().Master
		require.Len(t, master.Children, 3)
		assert.Equal(t, "Characters", master.Children[2].Name)
		assert.Equal(t, "group", master.Children[2].Type)
		assert.Equal(t, "Characters", master.Children[2].Group)
	})

	t.Run("unknown property", func(t *testing.T) {
		testutil.NewTestEnvironment(t).WithScene()

		res := run(t, "run", "collection_new", "-p", "bogus=1")
		assert.Equal(t, 1, res.code)
		assert.Contains(t, res.stdout, `ERROR: unknown property "bogus"`)
	})

	t.Run("malformed property", func(t *testing.T) {
		testutil.NewTestEnvironment(t).WithScene()

		res := run(t, "run", "collection_new", "-p", "bogus")
		assert.Equal(t, 1, res.code)
		assert.Contains(t, res.stderr, "INVALID_INPUT")
	})

	t.Run("unknown operator", func(t *testing.T) {
		testutil.NewTestEnvironment(t).WithScene()

		res := run(t, "run", "OUTLINER_OT_nothing")
		assert.Equal(t, 1, res.code)
		assert.Contains(t, res.stderr, "NOT_FOUND")
	})

	t.Run("not implemented operators never run", func(t *testing.T) {
		testutil.NewTestEnvironment(t).WithScene()

		res := run(t, "run", "collection_override_new")
		assert.Equal(t, 1, res.code)
		assert.Contains(t, res.stdout, "ERROR: OUTLINER_OT_collection_override_new cannot run in the current context")
	})
}

func TestLink(t *testing.T) {
	env := testutil.NewTestEnvironment(t).WithScene()

	res := run(t, "link", "Tables")
	require.Equal(t, 0, res.code, res.stderr)
	assert.Equal(t, []string{"Props", "Lights", "Tables"}, linkNames(env.Document()))

	res = run(t, "link", "Attic")
	assert.Equal(t, 1, res.code)
	assert.Contains(t, res.stderr, `no collection named "Attic"`)
}

func TestUnlink(t *testing.T) {
	t.Run("active collection", func(t *testing.T) {
		env := testutil.NewTestEnvironment(t).WithScene()

		res := run(t, "unlink")
		require.Equal(t, 0, res.code, res.stderr)
		assert.Equal(t, []string{"Props"}, linkNames(env.Document()))
	})

	t.Run("by name", func(t *testing.T) {
		env := testutil.NewTestEnvironment(t).WithScene()

		res := run(t, "unlink", "Props")
		require.Equal(t, 0, res.code, res.stderr)
		assert.Equal(t, []string{"Lights"}, linkNames(env.Document()))
	})

	t.Run("nested collections stay linked", func(t *testing.T) {
		env := testutil.NewTestEnvironment(t).WithScene()

		res := run(t, "unlink", "Chairs")
		assert.Equal(t, 1, res.code)
		assert.Contains(t, res.stdout, "cannot run in the current context")
		assert.Equal(t, []string{"Props", "Lights"}, linkNames(env.Document()))
	})
}

func TestNew(t *testing.T) {
	testutil.NewTestEnvironment(t).WithScene()

	res := run(t, "new", "--group", "Vehicles")
	require.Equal(t, 0, res.code, res.stderr)
	assert.Contains(t, res.stdout, "INFO: Added collection Vehicles")
	assert.Contains(t, res.stdout, "Vehicles (group: Vehicles)")

	res = run(t, "new", "--group", "Boats")
	assert.Equal(t, 1, res.code)
	assert.Contains(t, res.stderr, `no group named "Boats"`)
}

func TestDelete(t *testing.T) {
	t.Run("given paths", func(t *testing.T) {
		env := testutil.NewTestEnvironment(t).WithScene()

		res := run(t, "delete", "Master Collection/Props", "Master Collection/Props/Chairs")
		require.Equal(t, 0, res.code, res.stderr)
		assert.Contains(t, res.stdout, "INFO: Deleted 1 collection(s)")

		d := env.Document()
		assert.Equal(t, []string{"Lights"}, childNames(d.Master))
		assert.Equal(t, []string{"Lights"}, linkNames(d))
		assert.Empty(t, d.Outliner.Elements)
	})

	t.Run("stored selection", func(t *testing.T) {
		env := testutil.NewTestEnvironment(t).WithScene()
		require.Equal(t, 0, run(t, "select", "Master Collection/Lights").code)

		res := run(t, "delete")
		require.Equal(t, 0, res.code, res.stderr)
		assert.Equal(t, []string{"Props"}, childNames(env.Document().Master))
	})

	t.Run("master collection is kept", func(t *testing.T) {
		env := testutil.NewTestEnvironment(t).WithScene()

		res := run(t, "delete", "Master Collection")
		require.Equal(t, 0, res.code, res.stderr)
		assert.NotContains(t, res.stdout, "Deleted")
		assert.Equal(t, []string{"Props", "Lights"}, childNames(env.Document().Master))
	})
}

func TestActivate(t *testing.T) {
	env := testutil.NewTestEnvironment(t).WithScene()

	res := run(t, "activate", "Chairs")
	require.Equal(t, 0, res.code, res.stderr)
	assert.Equal(t, 1, env.Document().ViewLayers[0].Active)

	res = run(t, "activate", "Attic")
	assert.Equal(t, 1, res.code)
	assert.Contains(t, res.stderr, `no layer collection named "Attic" in layer "View Layer"`)
}

func TestToggle(t *testing.T) {
	env := testutil.NewTestEnvironment(t).WithScene()

	res := run(t, "toggle", "Props", "--disable")
	require.Equal(t, 0, res.code, res.stderr)
	assert.True(t, env.Document().ViewLayers[0].Collections[0].Disabled)

	res = run(t, "toggle", "Props", "--disable")
	assert.Equal(t, 1, res.code)
	assert.Contains(t, res.stdout, "ERROR: Layer collection Props already disabled")

	res = run(t, "toggle", "Chairs")
	require.Equal(t, 0, res.code, res.stderr)
	assert.Equal(t, []string{"Chairs"}, env.Document().ViewLayers[0].Collections[0].DisabledChildren)

	// No name toggles the active collection, Lights
	res = run(t, "toggle")
	require.Equal(t, 0, res.code, res.stderr)
	assert.True(t, env.Document().ViewLayers[0].Collections[1].Disabled)

	res = run(t, "toggle", "--enable", "--disable")
	assert.Equal(t, 1, res.code)
	assert.Contains(t, res.stderr, "enable")
}

func TestOperators(t *testing.T) {
	testutil.NewTestEnvironment(t)

	res := run(t, "operators")
	require.Equal(t, 0, res.code, res.stderr)
	assert.Contains(t, res.stdout, "OUTLINER_OT_collection_new (unavailable)")
	assert.Contains(t, res.stdout, "OUTLINER_OT_collections_delete (unavailable)")

	testutil.NewTestEnvironment(t).WithScene()

	res = run(t, "operators")
	require.Equal(t, 0, res.code, res.stderr)
	assert.Contains(t, res.stdout, "OUTLINER_OT_collection_new\n")
	assert.Contains(t, res.stdout, "OUTLINER_OT_collection_override_new (unavailable)")
}

func TestOperatorsJSON(t *testing.T) {
	testutil.NewTestEnvironment(t).WithScene()

	var stdout, stderr bytes.Buffer
	code := cli.Execute([]string{"--format", "json", "operators"}, &stdout, &stderr)
	require.Equal(t, 0, code, stderr.String())

	var out struct {
		Operators []struct {
			ID         string `json:"id"`
			Available  bool   `json:"available"`
			Properties []struct {
				Name    string `json:"name"`
				Choices []struct {
					Name string `json:"name"`
				} `json:"choices"`
			} `json:"properties"`
		} `json:"operators"`
	}
	require.NoError(t, json.Unmarshal(stdout.Bytes(), &out))
	require.Len(t, out.Operators, 11)

	for _, op := range out.Operators {
		if op.ID != "OUTLINER_OT_collection_link" {
			continue
		}
		assert.True(t, op.Available)
		require.Len(t, op.Properties, 1)
		require.Len(t, op.Properties[0].Choices, 5)
		assert.Equal(t, "Chairs", op.Properties[0].Choices[2].Name)
		return
	}
	t.Fatal("link operator not listed")
}

func TestExport(t *testing.T) {
	testutil.NewTestEnvironment(t).WithScene()

	res := run(t, "export")
	require.Equal(t, 0, res.code, res.stderr)
	assert.Contains(t, res.stdout, "[master]")

	res = run(t, "export", "--to", "yaml")
	require.Equal(t, 0, res.code, res.stderr)
	assert.Contains(t, res.stdout, "master:")

	res = run(t, "export", "--xml")
	require.Equal(t, 0, res.code, res.stderr)
	assert.Contains(t, res.stdout, `<collection name="Chairs"`)

	out := filepath.Join(t.TempDir(), "nested", "scene.yml")
	res = run(t, "export", "-o", out)
	require.Equal(t, 0, res.code, res.stderr)
	d, err := document.Load(out)
	require.NoError(t, err)
	assert.Equal(t, []string{"Props", "Lights"}, childNames(d.Master))

	res = run(t, "export", "--to", "json")
	assert.Equal(t, 1, res.code)
	assert.Contains(t, res.stderr, "INVALID_INPUT")
}

func TestConfig(t *testing.T) {
	env := testutil.NewTestEnvironment(t)

	res := run(t, "config")
	require.Equal(t, 0, res.code, res.stderr)
	assert.Contains(t, res.stdout, "[naming]")
	assert.Contains(t, res.stdout, `# collection_prefix = "Collection"`)

	res = run(t, "config", "--write")
	require.Equal(t, 0, res.code, res.stderr)
	assert.True(t, testutil.FileExists(t, filepath.Join(env.ConfigDir, paths.ConfigFileName)))

	res = run(t, "config", "--write")
	assert.Equal(t, 1, res.code)
	assert.Contains(t, res.stderr, "ALREADY_EXISTS")
}

func TestBrokenConfig(t *testing.T) {
	testutil.NewTestEnvironment(t).WithConfig("[output\n")

	res := run(t, "version")
	assert.Equal(t, 1, res.code)
	assert.Contains(t, res.stderr, "CONFIG_PARSE")
}

func TestVersion(t *testing.T) {
	testutil.NewTestEnvironment(t)

	res := run(t, "version")
	require.Equal(t, 0, res.code, res.stderr)
	assert.Contains(t, res.stdout, "outliner version dev")
}

func TestHelpTopics(t *testing.T) {
	testutil.NewTestEnvironment(t)

	res := run(t, "help", "topics")
	require.Equal(t, 0, res.code, res.stderr)
	for _, topic := range []string{"collections", "selection", "traversal", "view-layers", "OUTLINER_OT_collection_new"} {
		assert.Contains(t, res.stdout, "  "+topic+"\n")
	}

	res = run(t, "help", "traversal")
	require.Equal(t, 0, res.code, res.stderr)
	assert.Contains(t, res.stdout, "Traversal")

	res = run(t, "help", "OUTLINER_OT_collection_toggle")
	require.Equal(t, 0, res.code, res.stderr)
	assert.Contains(t, res.stdout, "Toggle Collection")
	assert.Contains(t, res.stdout, "collection_index")
}

func TestExecuteClosesLogFile(t *testing.T) {
	env := testutil.NewTestEnvironment(t).WithScene()
	logPath := filepath.Join(env.StateDir, paths.LogFileName)

	res := run(t, "-vv", "delete", "Master Collection/Props/Chairs")
	require.Equal(t, 0, res.code, res.stderr)
	logged := testutil.ReadFile(t, logPath)
	assert.Contains(t, logged, "Command started")
	assert.Contains(t, logged, "Operators run")

	log.Error().Msg("written after Execute returned")
	assert.NotContains(t, testutil.ReadFile(t, logPath), "written after Execute returned")
}
