package outliner

import (
	"github.com/arthur-debert/outliner/pkg/errors"
	"github.com/arthur-debert/outliner/pkg/events"
)

// CollectionSelect changes the active layer collection.
type CollectionSelect struct{}

func (*CollectionSelect) ID() string             { return "OUTLINER_OT_collection_select" }
func (*CollectionSelect) Name() string           { return "Select" }
func (*CollectionSelect) Description() string    { return "Change active collection or override" }
func (*CollectionSelect) Poll(ctx *Context) bool { return ctx.Layer != nil }

func (*CollectionSelect) Properties() []PropertyDef {
	return []PropertyDef{{
		Name:        "collection_index",
		Description: "Index of collection to select",
		Type:        PropertyInt,
		Default:     0,
		Min:         0,
	}}
}

func (*CollectionSelect) Exec(ctx *Context, props *Properties) error {
	if err := ctx.Layer.SetActive(props.Int("collection_index")); err != nil {
		return err
	}
	ctx.notify(events.DataLayer)
	return nil
}

// Toggle actions.
const (
	ActionDisable = "disable"
	ActionEnable  = "enable"
	ActionToggle  = "toggle"
)

// CollectionToggle enables or disables a layer collection.
type CollectionToggle struct{}

func (*CollectionToggle) ID() string             { return "OUTLINER_OT_collection_toggle" }
func (*CollectionToggle) Name() string           { return "Toggle Collection" }
func (*CollectionToggle) Description() string    { return "Enable or disable a layer collection" }
func (*CollectionToggle) Poll(ctx *Context) bool { return ctx.Layer != nil }

func (*CollectionToggle) Properties() []PropertyDef {
	return []PropertyDef{
		{
			Name:        "collection_index",
			Description: "Index of collection to toggle, -1 for the active one",
			Type:        PropertyInt,
			Default:     -1,
			Min:         -1,
		},
		{
			Name:        "action",
			Description: "Selection action to execute",
			Type:        PropertyEnum,
			Default:     ActionToggle,
			Items:       []string{ActionDisable, ActionEnable, ActionToggle},
		},
	}
}

func (*CollectionToggle) Exec(ctx *Context, props *Properties) error {
	lc := ctx.ActiveLayerCollection()
	if idx := props.Int("collection_index"); idx >= 0 {
		lc = ctx.Layer.LayerCollectionByIndex(idx)
	}
	if lc == nil {
		return errors.New(errors.ErrCancelled, "No layer collection to toggle")
	}

	action := props.Enum("action")
	if lc.Disabled() {
		if action == ActionDisable {
			return errors.Newf(errors.ErrCancelled, "Layer collection %s already disabled", lc.Name())
		}
		ctx.Layer.Enable(lc)
	} else {
		if action == ActionEnable {
			return errors.Newf(errors.ErrCancelled, "Layer collection %s already enabled", lc.Name())
		}
		ctx.Layer.Disable(lc)
	}
	ctx.refreshSpace()

	ctx.tagSceneUpdate()
	ctx.notify(events.DataObjectSelect)
	ctx.notify(events.DataLayerContent)
	return nil
}
