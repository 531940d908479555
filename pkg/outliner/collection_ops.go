package outliner

import (
	"github.com/arthur-debert/outliner/pkg/errors"
	"github.com/arthur-debert/outliner/pkg/events"
	"github.com/arthur-debert/outliner/pkg/scene"
)

// SceneCollectionItems lists every collection of sc in pre-order, the
// master collection first with value 0.
func SceneCollectionItems(sc *scene.Scene) []EnumItem {
	collections := sc.Collections()
	items := make([]EnumItem, len(collections))
	for i, c := range collections {
		items[i] = EnumItem{Value: i, Identifier: c.Name, Name: c.Name}
	}
	return items
}

// GroupItems lists the groups of sc by index.
func GroupItems(sc *scene.Scene) []EnumItem {
	items := make([]EnumItem, len(sc.Groups))
	for i, g := range sc.Groups {
		items[i] = EnumItem{Value: i, Identifier: g, Name: g}
	}
	return items
}

// CollectionLink links an existing collection to the active view layer.
type CollectionLink struct{}

func (*CollectionLink) ID() string          { return "OUTLINER_OT_collection_link" }
func (*CollectionLink) Name() string        { return "Add Collection" }
func (*CollectionLink) Description() string { return "Link a new collection to the active layer" }
func (*CollectionLink) Poll(ctx *Context) bool {
	return ctx.Layer != nil
}

func (*CollectionLink) Properties() []PropertyDef {
	return []PropertyDef{{
		Name:        "scene_collection",
		Description: "Scene collection to link, by position in the collection list",
		Type:        PropertyInt,
		Default:     0,
	}}
}

func (*CollectionLink) EnumItems(ctx *Context, property string) []EnumItem {
	if property != "scene_collection" {
		return nil
	}
	return SceneCollectionItems(ctx.Scene)
}

// Invoke links the master collection directly when it has no children.
// Otherwise the caller has to choose.
func (op *CollectionLink) Invoke(ctx *Context, props *Properties) error {
	if len(ctx.Scene.Master.Children) == 0 {
		props.SetInt("scene_collection", 0)
		return op.Exec(ctx, props)
	}
	if !props.IsSet("scene_collection") {
		names := make([]string, 0)
		for _, item := range SceneCollectionItems(ctx.Scene) {
			names = append(names, item.Name)
		}
		return errors.New(errors.ErrInvalidInput, "choose a scene collection to link").
			WithDetail("choices", names)
	}
	return op.Exec(ctx, props)
}

func (*CollectionLink) Exec(ctx *Context, props *Properties) error {
	c, err := ctx.Scene.CollectionByIndex(props.Int("scene_collection"))
	if err != nil {
		return err
	}

	ctx.Layer.Link(c)
	ctx.refreshSpace()

	ctx.tagSceneUpdate()
	ctx.notify(events.DataLayer)
	return nil
}

// CollectionUnlink unlinks the active layer collection from its layer.
type CollectionUnlink struct{}

func (*CollectionUnlink) ID() string                { return "OUTLINER_OT_collection_unlink" }
func (*CollectionUnlink) Name() string              { return "Unlink Collection" }
func (*CollectionUnlink) Description() string       { return "Unlink collection from the active layer" }
func (*CollectionUnlink) Properties() []PropertyDef { return nil }

// Poll is true only for collections linked directly to the active layer,
// not for nested ones.
func (*CollectionUnlink) Poll(ctx *Context) bool {
	lc := ctx.ActiveLayerCollection()
	return lc != nil && ctx.Layer.IsDirect(lc)
}

func (*CollectionUnlink) Exec(ctx *Context, _ *Properties) error {
	lc := ctx.ActiveLayerCollection()
	if lc == nil {
		return errors.New(errors.ErrCancelled, "Active element is not a collection")
	}

	if err := ctx.Layer.Unlink(lc); err != nil {
		return err
	}
	ctx.refreshSpace()

	ctx.tagSceneUpdate()
	ctx.notify(events.DataLayer)
	return nil
}

// CollectionNew adds a collection under the master collection and links it
// to the active layer.
type CollectionNew struct{}

func (*CollectionNew) ID() string   { return "OUTLINER_OT_collection_new" }
func (*CollectionNew) Name() string { return "New Collection" }
func (*CollectionNew) Description() string {
	return "Add a new collection to the scene, and link it to the active layer"
}
func (*CollectionNew) Poll(ctx *Context) bool { return ctx.Layer != nil }

func (*CollectionNew) Properties() []PropertyDef {
	return []PropertyDef{
		{
			Name:        "type",
			Description: "Type of collection to add",
			Type:        PropertyEnum,
			Default:     scene.CollectionTypeNone.String(),
			Items:       []string{scene.CollectionTypeNone.String(), scene.CollectionTypeGroup.String()},
		},
		{
			Name:        "group",
			Description: "Group to bind a group collection to, by position in the group list",
			Type:        PropertyInt,
			Default:     0,
		},
	}
}

func (*CollectionNew) EnumItems(ctx *Context, property string) []EnumItem {
	if property != "group" {
		return nil
	}
	return GroupItems(ctx.Scene)
}

// Invoke requires an explicit group choice for group collections.
func (op *CollectionNew) Invoke(ctx *Context, props *Properties) error {
	if props.Enum("type") == scene.CollectionTypeGroup.String() && !props.IsSet("group") {
		return errors.New(errors.ErrInvalidInput, "choose a group for the new collection").
			WithDetail("choices", ctx.Scene.Groups)
	}
	return op.Exec(ctx, props)
}

func (*CollectionNew) Exec(ctx *Context, props *Properties) error {
	typ, err := scene.ParseCollectionType(props.Enum("type"))
	if err != nil {
		return err
	}

	var name, group string
	if typ == scene.CollectionTypeGroup {
		idx := props.Int("group")
		if idx < 0 || idx >= len(ctx.Scene.Groups) {
			return errors.Newf(errors.ErrInvalidInput, "no group at index %d", idx)
		}
		group = ctx.Scene.Groups[idx]
		name = group
	}

	c, err := ctx.Scene.AddCollection(nil, typ, name)
	if err != nil {
		return err
	}
	if typ == scene.CollectionTypeGroup {
		if err := ctx.Scene.SetGroup(c, group); err != nil {
			return err
		}
		ctx.Tagger.TagID(ctx.Scene.ID)
	}

	ctx.Layer.Link(c)
	ctx.refreshSpace()
	ctx.Reports.Addf(ReportInfo, "Added collection %s", c.Name)

	ctx.Tagger.TagRelations()
	ctx.notify(events.DataLayer)
	return nil
}

// CollectionOverrideNew is reserved for collection overrides, which are
// not supported.
type CollectionOverrideNew struct{}

func (*CollectionOverrideNew) ID() string                { return "OUTLINER_OT_collection_override_new" }
func (*CollectionOverrideNew) Name() string              { return "New Override" }
func (*CollectionOverrideNew) Description() string       { return "Add a new override to the active collection" }
func (*CollectionOverrideNew) Properties() []PropertyDef { return nil }
func (*CollectionOverrideNew) Poll(*Context) bool        { return false }

func (op *CollectionOverrideNew) Invoke(*Context, *Properties) error {
	return errors.Newf(errors.ErrNotImplemented, "%s not implemented yet", op.ID())
}

func (op *CollectionOverrideNew) Exec(ctx *Context, props *Properties) error {
	return op.Invoke(ctx, props)
}
