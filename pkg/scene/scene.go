package scene

import (
	"slices"
	"strings"

	"github.com/google/uuid"

	"github.com/arthur-debert/outliner/pkg/errors"
	"github.com/arthur-debert/outliner/pkg/tree"
)

// Default names used when Options leave them empty.
const (
	DefaultMasterName       = "Master Collection"
	DefaultLayerName        = "View Layer"
	DefaultCollectionPrefix = "Collection"
)

// Options controls the names a new scene is created with.
type Options struct {
	MasterName       string
	LayerName        string
	CollectionPrefix string
}

func (o Options) withDefaults() Options {
	if o.MasterName == "" {
		o.MasterName = DefaultMasterName
	}
	if o.LayerName == "" {
		o.LayerName = DefaultLayerName
	}
	if o.CollectionPrefix == "" {
		o.CollectionPrefix = DefaultCollectionPrefix
	}
	return o
}

// Scene owns a collection hierarchy and the view layers that link into it.
type Scene struct {
	ID          string
	Name        string
	Master      *Collection
	Layers      []*ViewLayer
	Groups      []string
	Objects     []string
	ActiveLayer int

	// CollectionPrefix names collections added without an explicit name.
	CollectionPrefix string
}

// New creates a scene with a master collection and a single empty view
// layer.
func New(name string, opts Options) *Scene {
	opts = opts.withDefaults()
	s := &Scene{
		ID:               uuid.NewString(),
		Name:             name,
		Master:           NewCollection(opts.MasterName, CollectionTypeNone),
		CollectionPrefix: opts.CollectionPrefix,
	}
	s.AddLayer(opts.LayerName)
	return s
}

// AddLayer appends an empty view layer with a unique name.
func (s *Scene) AddLayer(name string) *ViewLayer {
	name = uniqueName(name, func(candidate string) bool {
		return slices.ContainsFunc(s.Layers, func(l *ViewLayer) bool { return l.Name == candidate })
	})
	l := &ViewLayer{Name: name}
	s.Layers = append(s.Layers, l)
	return l
}

// Layer returns the active view layer, or nil when the scene has none.
func (s *Scene) Layer() *ViewLayer {
	if s.ActiveLayer < 0 || s.ActiveLayer >= len(s.Layers) {
		return nil
	}
	return s.Layers[s.ActiveLayer]
}

// Tree returns a snapshot tree of the whole collection hierarchy rooted at
// the master collection.
func (s *Scene) Tree() []*tree.Node[*Collection] {
	return []*tree.Node[*Collection]{s.Master.Node()}
}

// Collections returns every collection in pre-order, master first.
func (s *Scene) Collections() []*Collection {
	nodes := tree.Collect(s.Tree(), nil)
	out := make([]*Collection, len(nodes))
	for i, n := range nodes {
		out[i] = n.Payload
	}
	return out
}

// CollectionByIndex returns the collection at pre-order position i, where
// the master collection is 0.
func (s *Scene) CollectionByIndex(i int) (*Collection, error) {
	n := tree.At(s.Tree(), nil, i)
	if n == nil {
		return nil, errors.Newf(errors.ErrInvalidInput, "no collection at index %d", i).
			WithDetail("index", i)
	}
	return n.Payload, nil
}

// FindCollection returns the first collection in pre-order with the given
// name.
func (s *Scene) FindCollection(name string) *Collection {
	n := tree.Find(s.Tree(), func(n *tree.Node[*Collection]) bool {
		return n.Payload.Name == name
	})
	if n == nil {
		return nil
	}
	return n.Payload
}

// Contains reports whether c is part of the scene's hierarchy.
func (s *Scene) Contains(c *Collection) bool {
	return s.Parent(c) != nil || c == s.Master
}

// Parent returns the collection holding c, or nil for the master
// collection and collections outside the scene.
func (s *Scene) Parent(c *Collection) *Collection {
	n := tree.Find(s.Tree(), func(n *tree.Node[*Collection]) bool {
		return slices.Contains(n.Payload.Children, c)
	})
	if n == nil {
		return nil
	}
	return n.Payload
}

// NameSeparator joins collection and object names into outliner element
// paths, so it cannot appear in either.
const NameSeparator = "/"

// CheckName reports an INVALID_INPUT error for names that are empty or
// contain NameSeparator.
func CheckName(name string) error {
	if name == "" {
		return errors.New(errors.ErrInvalidInput, "name cannot be empty")
	}
	if strings.Contains(name, NameSeparator) {
		return errors.Newf(errors.ErrInvalidInput, "name %q must not contain %q", name, NameSeparator).
			WithDetail("name", name)
	}
	return nil
}

func (s *Scene) nameTaken(name string) bool {
	return s.FindCollection(name) != nil
}

// AddCollection creates a collection under parent, or under the master
// collection when parent is nil. An empty name picks the scene's default
// prefix; names are made unique across the scene and must pass CheckName.
func (s *Scene) AddCollection(parent *Collection, typ CollectionType, name string) (*Collection, error) {
	if parent == nil {
		parent = s.Master
	}
	if !s.Contains(parent) {
		return nil, errors.Newf(errors.ErrNotFound, "collection %q is not part of scene %q", parent.Name, s.Name)
	}
	if name == "" {
		name = s.CollectionPrefix
		if name == "" {
			name = DefaultCollectionPrefix
		}
	}
	if err := CheckName(name); err != nil {
		return nil, err
	}

	c := NewCollection(uniqueName(name, s.nameTaken), typ)
	parent.Children = append(parent.Children, c)
	s.syncLayers()
	return c, nil
}

// SetGroup binds a group collection to one of the scene's groups.
func (s *Scene) SetGroup(c *Collection, group string) error {
	if c.Type != CollectionTypeGroup {
		return errors.Newf(errors.ErrInvalidInput, "collection %q is not a group collection", c.Name)
	}
	if !slices.Contains(s.Groups, group) {
		return errors.Newf(errors.ErrNotFound, "group %q does not exist", group)
	}
	c.Group = group
	return nil
}

// RemoveCollection removes c and its descendants from the scene and drops
// every layer collection that referenced one of them.
func (s *Scene) RemoveCollection(c *Collection) error {
	if c == s.Master {
		return errors.New(errors.ErrInvalidInput, "the master collection cannot be removed")
	}
	parent := s.Parent(c)
	if parent == nil {
		return errors.Newf(errors.ErrNotFound, "collection %q is not part of scene %q", c.Name, s.Name)
	}

	removed := c.subtreeIDs()
	parent.removeChild(c)
	for _, l := range s.Layers {
		l.dropCollections(removed)
	}
	s.syncLayers()
	return nil
}

func (s *Scene) syncLayers() {
	for _, l := range s.Layers {
		l.Sync()
	}
}
