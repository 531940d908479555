package outliner

import (
	"fmt"
	"sort"
	"strings"

	"github.com/arthur-debert/outliner/pkg/errors"
	"github.com/arthur-debert/outliner/pkg/scene"
	"github.com/arthur-debert/outliner/pkg/tree"
)

// DisplayMode selects what the display tree shows.
type DisplayMode string

const (
	// ModeCollections shows the scene's collection hierarchy.
	ModeCollections DisplayMode = "collections"
	// ModeViewLayer shows the collections linked to the active view layer.
	ModeViewLayer DisplayMode = "view_layer"
)

// ParseDisplayMode parses a display mode name. The empty string is
// ModeCollections.
func ParseDisplayMode(s string) (DisplayMode, error) {
	switch DisplayMode(strings.ToLower(s)) {
	case "", ModeCollections:
		return ModeCollections, nil
	case ModeViewLayer, "view_layers", "layer":
		return ModeViewLayer, nil
	default:
		return ModeCollections, errors.Newf(errors.ErrInvalidInput, "unknown display mode: %s", s)
	}
}

// Space is the state of one outliner: the display tree and the per-element
// flags that survive rebuilding it.
type Space struct {
	Mode DisplayMode
	Tree []*TreeNode

	// store maps element keys to their flags.
	store map[string]tree.Flag
}

// NewSpace creates an empty space.
func NewSpace(mode DisplayMode) *Space {
	return &Space{
		Mode:  mode,
		store: make(map[string]tree.Flag),
	}
}

// Rebuild recreates the display tree from the scene and restores stored
// flags onto the new nodes.
func (s *Space) Rebuild(sc *scene.Scene) {
	s.Tree = buildTree(sc, s.Mode)
	tree.Traverse(s.Tree, nil, func(n *TreeNode, store map[string]tree.Flag) tree.Action {
		n.Flags = store[n.Payload.key()]
		return tree.Continue
	}, s.store)
}

// Cleanup drops stored flags of elements that are no longer in the tree.
func (s *Space) Cleanup() {
	live := make(map[string]struct{})
	tree.Traverse(s.Tree, nil, func(n *TreeNode, live map[string]struct{}) tree.Action {
		live[n.Payload.key()] = struct{}{}
		return tree.Continue
	}, live)

	for key := range s.store {
		if _, ok := live[key]; !ok {
			delete(s.store, key)
		}
	}
}

// Find returns the first element in pre-order with the given path.
func (s *Space) Find(path string) *TreeNode {
	return tree.Find(s.Tree, func(n *TreeNode) bool {
		return n.Payload.Path == path
	})
}

// SetFlag sets or clears mask on the element at path.
func (s *Space) SetFlag(path string, mask tree.Flag, on bool) error {
	n := s.Find(path)
	if n == nil {
		return errors.Newf(errors.ErrNotFound, "no element at %q", path).
			WithDetail("path", path)
	}
	if on {
		n.Set(mask)
	} else {
		n.Clear(mask)
	}
	s.remember(n)
	return nil
}

func (s *Space) remember(n *TreeNode) {
	if n.Flags == 0 {
		delete(s.store, n.Payload.key())
		return
	}
	s.store[n.Payload.key()] = n.Flags
}

// Select adds the elements at paths to the selection.
func (s *Space) Select(paths ...string) error {
	for _, p := range paths {
		if err := s.SetFlag(p, tree.FlagSelected, true); err != nil {
			return err
		}
	}
	return nil
}

// Deselect removes the elements at paths from the selection.
func (s *Space) Deselect(paths ...string) error {
	for _, p := range paths {
		if err := s.SetFlag(p, tree.FlagSelected, false); err != nil {
			return err
		}
	}
	return nil
}

// DeselectAll clears the selection.
func (s *Space) DeselectAll() {
	tree.Traverse(s.Tree, tree.WithFlags[*Element](tree.FlagSelected),
		func(n *TreeNode, s *Space) tree.Action {
			n.Clear(tree.FlagSelected)
			s.remember(n)
			return tree.Continue
		}, s)
}

// Selected returns the selected elements in pre-order.
func (s *Space) Selected() []*Element {
	nodes := tree.Collect(s.Tree, tree.WithFlags[*Element](tree.FlagSelected))
	out := make([]*Element, len(nodes))
	for i, n := range nodes {
		out[i] = n.Payload
	}
	return out
}

// SelectedPaths returns the paths of the selected elements in pre-order.
func (s *Space) SelectedPaths() []string {
	selected := s.Selected()
	out := make([]string, len(selected))
	for i, e := range selected {
		out[i] = e.Path
	}
	return out
}

// CountSelectedCollections counts selected elements that stand for a
// collection.
func (s *Space) CountSelectedCollections() int {
	return tree.Count(s.Tree, tree.And(
		tree.WithFlags[*Element](tree.FlagSelected),
		func(n *TreeNode) bool { return n.Payload.SceneCollection() != nil },
	))
}

// StoredFlags returns the stored flags keyed by "type:path", sorted for
// stable persistence.
func (s *Space) StoredFlags() []StoredFlag {
	out := make([]StoredFlag, 0, len(s.store))
	for key, flags := range s.store {
		typ, path, _ := strings.Cut(key, ":")
		out = append(out, StoredFlag{Type: ElementType(typ), Path: path, Flags: flags})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Path != out[j].Path {
			return out[i].Path < out[j].Path
		}
		return out[i].Type < out[j].Type
	})
	return out
}

// RestoreFlags replaces the stored flags. Call Rebuild afterwards to apply
// them to the display tree.
func (s *Space) RestoreFlags(flags []StoredFlag) {
	s.store = make(map[string]tree.Flag, len(flags))
	for _, f := range flags {
		if f.Flags != 0 {
			s.store[(&Element{Type: f.Type, Path: f.Path}).key()] = f.Flags
		}
	}
}

// StoredFlag is one entry of the tree store.
type StoredFlag struct {
	Type  ElementType
	Path  string
	Flags tree.Flag
}

func (f StoredFlag) String() string {
	return fmt.Sprintf("%s:%s=%d", f.Type, f.Path, f.Flags)
}
