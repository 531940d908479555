package scene

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/arthur-debert/outliner/pkg/errors"
	"github.com/arthur-debert/outliner/pkg/tree"
)

// CollectionType distinguishes plain collections from collections bound to
// a group.
type CollectionType int

const (
	CollectionTypeNone CollectionType = iota
	CollectionTypeGroup
)

func (t CollectionType) String() string {
	switch t {
	case CollectionTypeNone:
		return "none"
	case CollectionTypeGroup:
		return "group"
	default:
		return "unknown"
	}
}

// ParseCollectionType parses the names produced by String. The empty string
// is CollectionTypeNone.
func ParseCollectionType(s string) (CollectionType, error) {
	switch strings.ToLower(s) {
	case "", "none":
		return CollectionTypeNone, nil
	case "group":
		return CollectionTypeGroup, nil
	default:
		return CollectionTypeNone, errors.Newf(errors.ErrInvalidInput, "unknown collection type: %s", s)
	}
}

// Collection groups objects and nested collections.
type Collection struct {
	ID       string
	Name     string
	Type     CollectionType
	Group    string
	Objects  []string
	Children []*Collection
}

// NewCollection creates a detached collection with a fresh ID.
func NewCollection(name string, typ CollectionType) *Collection {
	return &Collection{
		ID:   uuid.NewString(),
		Name: name,
		Type: typ,
	}
}

func (c *Collection) String() string {
	return c.Name
}

// Kind is the tree.Kind of nodes built from collections.
const Kind tree.Kind = "scene_collection"

// Node builds a tree node for c and its descendants. The node is a
// snapshot: edits to the collection tree are not reflected in it.
func (c *Collection) Node() *tree.Node[*Collection] {
	n := tree.NewNode[*Collection](Kind, c)
	for _, child := range c.Children {
		n.Add(child.Node())
	}
	return n
}

func (c *Collection) removeChild(child *Collection) bool {
	for i, existing := range c.Children {
		if existing == child {
			c.Children = append(c.Children[:i], c.Children[i+1:]...)
			return true
		}
	}
	return false
}

// subtreeIDs returns the IDs of c and all its descendants.
func (c *Collection) subtreeIDs() map[string]struct{} {
	ids := make(map[string]struct{})
	tree.Traverse([]*tree.Node[*Collection]{c.Node()}, nil,
		func(n *tree.Node[*Collection], ids map[string]struct{}) tree.Action {
			ids[n.Payload.ID] = struct{}{}
			return tree.Continue
		}, ids)
	return ids
}

// uniqueName returns base, or base with the first free numeric suffix.
func uniqueName(base string, taken func(string) bool) string {
	if !taken(base) {
		return base
	}
	for i := 1; ; i++ {
		candidate := fmt.Sprintf("%s.%03d", base, i)
		if !taken(candidate) {
			return candidate
		}
	}
}
