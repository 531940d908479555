// Package display holds the format-neutral views rendered by pkg/ui.
package display

import (
	"fmt"
	"sort"
	"strings"

	"github.com/arthur-debert/outliner/pkg/outliner"
	"github.com/arthur-debert/outliner/pkg/scene"
	"github.com/arthur-debert/outliner/pkg/tree"
)

// Item is one element of the outliner as shown to users.
type Item struct {
	Name     string  `json:"name"`
	Type     string  `json:"type"`
	Path     string  `json:"path"`
	Selected bool    `json:"selected,omitempty"`
	Active   bool    `json:"active,omitempty"`
	Disabled bool    `json:"disabled,omitempty"`
	Group    string  `json:"group,omitempty"`
	Children []*Item `json:"children,omitempty"`
}

// IsObject reports whether the item is an object rather than a collection.
func (i *Item) IsObject() bool {
	return i.Type == string(outliner.TypeObject)
}

// Annotations lists the state markers of the item, e.g. "selected".
func (i *Item) Annotations() []string {
	var out []string
	if i.Active {
		out = append(out, "active")
	}
	if i.Selected {
		out = append(out, "selected")
	}
	if i.Disabled {
		out = append(out, "disabled")
	}
	if i.Group != "" {
		out = append(out, "group: "+i.Group)
	}
	if i.IsObject() {
		out = append(out, "object")
	}
	return out
}

// Label is the plain text label of the item.
func (i *Item) Label() string {
	notes := i.Annotations()
	if len(notes) == 0 {
		return i.Name
	}
	return fmt.Sprintf("%s (%s)", i.Name, strings.Join(notes, ", "))
}

// SceneView is the outliner of one scene.
type SceneView struct {
	Scene string  `json:"scene"`
	Layer string  `json:"layer"`
	Mode  string  `json:"mode"`
	Items []*Item `json:"items"`
}

// NewSceneView builds the view of space, which must have been rebuilt
// from sc.
func NewSceneView(sc *scene.Scene, space *outliner.Space) *SceneView {
	v := &SceneView{
		Scene: sc.Name,
		Mode:  string(space.Mode),
		Items: make([]*Item, 0, len(space.Tree)),
	}
	var active *scene.LayerCollection
	if layer := sc.Layer(); layer != nil {
		v.Layer = layer.Name
		active = layer.ActiveCollection()
	}
	for _, n := range space.Tree {
		v.Items = append(v.Items, newItem(n, active))
	}
	return v
}

func newItem(n *outliner.TreeNode, active *scene.LayerCollection) *Item {
	e := n.Payload
	item := &Item{
		Name:     e.Name,
		Type:     string(e.Type),
		Path:     e.Path,
		Selected: n.Has(tree.FlagSelected),
	}
	if c := e.SceneCollection(); c != nil {
		item.Group = c.Group
	}
	if lc := e.LayerCollection; lc != nil {
		item.Active = lc == active
		item.Disabled = lc.Disabled()
	}
	for _, child := range n.Children {
		item.Children = append(item.Children, newItem(child, active))
	}
	return item
}

// PropertyInfo describes an operator property.
type PropertyInfo struct {
	Name        string              `json:"name"`
	Type        string              `json:"type"`
	Description string              `json:"description,omitempty"`
	Default     interface{}         `json:"default"`
	Items       []string            `json:"items,omitempty"`
	Choices     []outliner.EnumItem `json:"choices,omitempty"`
}

// OperatorInfo describes an operator and whether it can run.
type OperatorInfo struct {
	ID          string         `json:"id"`
	Name        string         `json:"name"`
	Description string         `json:"description"`
	Available   bool           `json:"available"`
	Properties  []PropertyInfo `json:"properties,omitempty"`
}

// NewOperatorInfo describes op. With a nil ctx the operator is reported as
// unavailable and scene-dependent choices are left out.
func NewOperatorInfo(op outliner.Operator, ctx *outliner.Context) OperatorInfo {
	info := OperatorInfo{
		ID:          op.ID(),
		Name:        op.Name(),
		Description: op.Description(),
	}
	if ctx != nil {
		info.Available = op.Poll(ctx)
	}

	provider, dynamic := op.(outliner.EnumProvider)
	for _, def := range op.Properties() {
		p := PropertyInfo{
			Name:        def.Name,
			Type:        string(def.Type),
			Description: def.Description,
			Default:     def.Default,
			Items:       def.Items,
		}
		if dynamic && ctx != nil {
			p.Choices = provider.EnumItems(ctx, def.Name)
		}
		info.Properties = append(info.Properties, p)
	}
	return info
}

// NewOperatorInfos describes every operator, sorted by ID.
func NewOperatorInfos(ops []outliner.Operator, ctx *outliner.Context) []OperatorInfo {
	out := make([]OperatorInfo, 0, len(ops))
	for _, op := range ops {
		out = append(out, NewOperatorInfo(op, ctx))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// RunResult is the outcome of running one operator.
type RunResult struct {
	Operator string            `json:"operator"`
	Reports  []outliner.Report `json:"reports"`
	Scene    *SceneView        `json:"scene,omitempty"`
}
