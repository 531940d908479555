package outliner

import (
	"github.com/rs/zerolog"

	"github.com/arthur-debert/outliner/pkg/events"
	"github.com/arthur-debert/outliner/pkg/logging"
	"github.com/arthur-debert/outliner/pkg/scene"
	"github.com/arthur-debert/outliner/pkg/tree"
)

type deleteData struct {
	scene   *scene.Scene
	removed []string
	failed  []error
	logger  zerolog.Logger
}

// deleteSelected is the visitor of OUTLINER_OT_collections_delete.
func deleteSelected(n *TreeNode, data *deleteData) tree.Action {
	c := n.Payload.SceneCollection()
	if c == nil {
		return tree.SkipChildren
	}

	switch {
	case c == data.scene.Master:
		// Deleting several collections at once should not fail on the
		// master collection, so it is passed over silently.
	case !data.scene.Contains(c):
		data.logger.Debug().Str("collection", c.Name).Msg("Already removed with an ancestor")
	default:
		if err := data.scene.RemoveCollection(c); err != nil {
			data.failed = append(data.failed, err)
			break
		}
		data.removed = append(data.removed, c.Name)
		data.logger.Debug().Str("collection", c.Name).Msg("Collection removed")
	}
	return tree.Continue
}

// CollectionsDelete removes every selected collection of the outliner.
type CollectionsDelete struct{}

func (*CollectionsDelete) ID() string                { return "OUTLINER_OT_collections_delete" }
func (*CollectionsDelete) Name() string              { return "Delete" }
func (*CollectionsDelete) Description() string       { return "Delete selected overrides or collections" }
func (*CollectionsDelete) Properties() []PropertyDef { return nil }
func (*CollectionsDelete) Poll(ctx *Context) bool    { return ctx.Space != nil }

func (*CollectionsDelete) Exec(ctx *Context, _ *Properties) error {
	data := &deleteData{
		scene:  ctx.Scene,
		logger: logging.GetLogger("outliner"),
	}
	data.logger.Debug().Int("selected", ctx.Space.CountSelectedCollections()).Msg("Deleting selected collections")
	tree.Traverse(ctx.Space.Tree, tree.WithFlags[*Element](tree.FlagSelected), deleteSelected, data)

	for _, err := range data.failed {
		ctx.Reports.Add(ReportWarning, reportMessage(err))
	}
	if len(data.removed) > 0 {
		ctx.Reports.Addf(ReportInfo, "Deleted %d collection(s)", len(data.removed))
	}
	ctx.refreshSpace()

	ctx.tagSceneUpdate()
	ctx.notify(events.DataLayer)
	return nil
}
