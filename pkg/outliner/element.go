package outliner

import (
	"github.com/arthur-debert/outliner/pkg/scene"
	"github.com/arthur-debert/outliner/pkg/tree"
)

// ElementType classifies display tree elements.
type ElementType string

const (
	TypeSceneCollection ElementType = "scene_collection"
	TypeLayerCollection ElementType = "layer_collection"
	TypeObject          ElementType = "object"
)

// PathSeparator joins element names into paths.
const PathSeparator = scene.NameSeparator

// Element is the payload of a display tree node.
type Element struct {
	Type ElementType `json:"type"`
	Name string      `json:"name"`
	// Path is the slash separated chain of names from the root element.
	Path string `json:"path"`

	Collection      *scene.Collection      `json:"-"`
	LayerCollection *scene.LayerCollection `json:"-"`
}

// TreeNode is a node of the display tree.
type TreeNode = tree.Node[*Element]

// SceneCollection resolves the collection an element stands for. Objects
// resolve to nil.
func (e *Element) SceneCollection() *scene.Collection {
	switch e.Type {
	case TypeSceneCollection:
		return e.Collection
	case TypeLayerCollection:
		if e.LayerCollection != nil {
			return e.LayerCollection.Collection
		}
	}
	return nil
}

// key identifies an element in the tree store. Objects and collections may
// share a name, so the type is part of the key.
func (e *Element) key() string {
	return string(e.Type) + ":" + e.Path
}

func joinPath(parent, name string) string {
	if parent == "" {
		return name
	}
	return parent + PathSeparator + name
}

func newElementNode(e *Element) *TreeNode {
	return tree.NewNode(tree.Kind(e.Type), e)
}

func objectNodes(parent string, objects []string) []*TreeNode {
	nodes := make([]*TreeNode, 0, len(objects))
	for _, obj := range objects {
		nodes = append(nodes, newElementNode(&Element{
			Type: TypeObject,
			Name: obj,
			Path: joinPath(parent, obj),
		}))
	}
	return nodes
}

func collectionElementNode(c *scene.Collection, parent string) *TreeNode {
	path := joinPath(parent, c.Name)
	n := newElementNode(&Element{
		Type:       TypeSceneCollection,
		Name:       c.Name,
		Path:       path,
		Collection: c,
	})
	for _, child := range c.Children {
		n.Add(collectionElementNode(child, path))
	}
	return n.Add(objectNodes(path, c.Objects)...)
}

func layerElementNode(lc *scene.LayerCollection, parent string) *TreeNode {
	path := joinPath(parent, lc.Name())
	n := newElementNode(&Element{
		Type:            TypeLayerCollection,
		Name:            lc.Name(),
		Path:            path,
		LayerCollection: lc,
	})
	for _, child := range lc.Children {
		n.Add(layerElementNode(child, path))
	}
	return n.Add(objectNodes(path, lc.Collection.Objects)...)
}

// buildTree creates the display tree for a scene in the given mode.
func buildTree(sc *scene.Scene, mode DisplayMode) []*TreeNode {
	switch mode {
	case ModeViewLayer:
		layer := sc.Layer()
		if layer == nil {
			return nil
		}
		roots := make([]*TreeNode, 0, len(layer.Collections))
		for _, lc := range layer.Collections {
			roots = append(roots, layerElementNode(lc, layer.Name))
		}
		return roots
	default:
		return []*TreeNode{collectionElementNode(sc.Master, "")}
	}
}
