package scene

import (
	"github.com/arthur-debert/outliner/pkg/errors"
	"github.com/arthur-debert/outliner/pkg/tree"
)

// LayerFlag is per-layer state of a layer collection.
type LayerFlag uint8

const (
	LayerDisabled LayerFlag = 1 << iota
)

// LayerCollection is a collection as seen from one view layer.
type LayerCollection struct {
	Collection *Collection
	Flags      LayerFlag
	Children   []*LayerCollection
}

// Disabled reports whether the layer collection is disabled.
func (lc *LayerCollection) Disabled() bool {
	return lc.Flags&LayerDisabled != 0
}

// Name is the name of the referenced collection.
func (lc *LayerCollection) Name() string {
	return lc.Collection.Name
}

// LayerKind is the tree.Kind of nodes built from layer collections.
const LayerKind tree.Kind = "layer_collection"

// Node builds a snapshot tree node for lc and its descendants.
func (lc *LayerCollection) Node() *tree.Node[*LayerCollection] {
	n := tree.NewNode[*LayerCollection](LayerKind, lc)
	for _, child := range lc.Children {
		n.Add(child.Node())
	}
	return n
}

func newLayerCollection(c *Collection) *LayerCollection {
	lc := &LayerCollection{Collection: c}
	lc.sync(nil)
	return lc
}

// sync rebuilds the mirrored children of lc from its collection, keeping
// the flags of children whose collection is still present.
func (lc *LayerCollection) sync(previous map[string]LayerFlag) {
	if previous == nil {
		previous = make(map[string]LayerFlag)
	}
	for _, child := range lc.Children {
		child.collectFlags(previous)
	}

	children := make([]*LayerCollection, 0, len(lc.Collection.Children))
	for _, c := range lc.Collection.Children {
		child := &LayerCollection{Collection: c, Flags: previous[c.ID]}
		child.sync(previous)
		children = append(children, child)
	}
	lc.Children = children
}

func (lc *LayerCollection) collectFlags(into map[string]LayerFlag) {
	into[lc.Collection.ID] = lc.Flags
	for _, child := range lc.Children {
		child.collectFlags(into)
	}
}

// ViewLayer links collections of a scene and tracks the active one.
type ViewLayer struct {
	Name        string
	Collections []*LayerCollection
	// Active is the pre-order index of the active layer collection.
	Active int
}

// Tree returns a snapshot tree of the layer's collections.
func (l *ViewLayer) Tree() []*tree.Node[*LayerCollection] {
	roots := make([]*tree.Node[*LayerCollection], len(l.Collections))
	for i, lc := range l.Collections {
		roots[i] = lc.Node()
	}
	return roots
}

// LayerCollections returns every layer collection in pre-order.
func (l *ViewLayer) LayerCollections() []*LayerCollection {
	nodes := tree.Collect(l.Tree(), nil)
	out := make([]*LayerCollection, len(nodes))
	for i, n := range nodes {
		out[i] = n.Payload
	}
	return out
}

// LayerCollectionByIndex returns the layer collection at pre-order
// position i.
func (l *ViewLayer) LayerCollectionByIndex(i int) *LayerCollection {
	n := tree.At(l.Tree(), nil, i)
	if n == nil {
		return nil
	}
	return n.Payload
}

// IndexOf returns the pre-order position of lc, or -1.
func (l *ViewLayer) IndexOf(lc *LayerCollection) int {
	roots := l.Tree()
	target := tree.Find(roots, func(n *tree.Node[*LayerCollection]) bool { return n.Payload == lc })
	if target == nil {
		return -1
	}
	return tree.Index(roots, nil, target)
}

// ActiveCollection returns the active layer collection, or nil when the
// layer links nothing.
func (l *ViewLayer) ActiveCollection() *LayerCollection {
	return l.LayerCollectionByIndex(l.Active)
}

// SetActive makes the layer collection at index i active.
func (l *ViewLayer) SetActive(i int) error {
	if l.LayerCollectionByIndex(i) == nil {
		return errors.Newf(errors.ErrInvalidInput, "no layer collection at index %d", i).
			WithDetail("index", i)
	}
	l.Active = i
	return nil
}

// FindCollection returns the first layer collection referencing c.
func (l *ViewLayer) FindCollection(c *Collection) *LayerCollection {
	n := tree.Find(l.Tree(), func(n *tree.Node[*LayerCollection]) bool {
		return n.Payload.Collection == c
	})
	if n == nil {
		return nil
	}
	return n.Payload
}

// IsDirect reports whether lc is linked directly to the layer rather than
// nested under another layer collection.
func (l *ViewLayer) IsDirect(lc *LayerCollection) bool {
	for _, top := range l.Collections {
		if top == lc {
			return true
		}
	}
	return false
}

// Link links c to the layer as a new top-level layer collection.
func (l *ViewLayer) Link(c *Collection) *LayerCollection {
	lc := newLayerCollection(c)
	l.Collections = append(l.Collections, lc)
	return lc
}

// Unlink removes a directly linked layer collection.
func (l *ViewLayer) Unlink(lc *LayerCollection) error {
	for i, top := range l.Collections {
		if top == lc {
			l.Collections = append(l.Collections[:i], l.Collections[i+1:]...)
			l.clampActive()
			return nil
		}
	}
	return errors.Newf(errors.ErrNotFound, "collection %q is not linked directly to layer %q", lc.Name(), l.Name)
}

// Enable clears the disabled flag of lc.
func (l *ViewLayer) Enable(lc *LayerCollection) {
	lc.Flags &^= LayerDisabled
}

// Disable sets the disabled flag of lc.
func (l *ViewLayer) Disable(lc *LayerCollection) {
	lc.Flags |= LayerDisabled
}

// Sync rebuilds mirrored children after the collection hierarchy changed.
func (l *ViewLayer) Sync() {
	for _, lc := range l.Collections {
		lc.sync(nil)
	}
	l.clampActive()
}

func (l *ViewLayer) dropCollections(ids map[string]struct{}) {
	kept := l.Collections[:0]
	for _, lc := range l.Collections {
		if _, gone := ids[lc.Collection.ID]; !gone {
			kept = append(kept, lc)
		}
	}
	for i := len(kept); i < len(l.Collections); i++ {
		l.Collections[i] = nil
	}
	l.Collections = kept
}

func (l *ViewLayer) clampActive() {
	total := tree.Count(l.Tree(), nil)
	switch {
	case total == 0:
		l.Active = 0
	case l.Active >= total:
		l.Active = total - 1
	case l.Active < 0:
		l.Active = 0
	}
}
