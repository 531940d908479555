package cli

import (
	"strings"

	"github.com/arthur-debert/outliner/pkg/errors"
	"github.com/arthur-debert/outliner/pkg/outliner"
	"github.com/arthur-debert/outliner/pkg/registry"
	"github.com/arthur-debert/outliner/pkg/scene"
)

// operatorPrefix may be left out when naming operators on the command line.
const operatorPrefix = "OUTLINER_OT_"

func lookupOperator(reg *registry.Registry[outliner.Operator], id string) (outliner.Operator, error) {
	if op, err := reg.Get(id); err == nil {
		return op, nil
	}
	op, err := reg.Get(operatorPrefix + strings.TrimPrefix(id, operatorPrefix))
	if err != nil {
		return nil, errors.Newf(errors.ErrNotFound, "unknown operator %q", id).
			WithDetail("operators", reg.List())
	}
	return op, nil
}

// collectionIndex is the position of the named collection in the scene
// collection list, the index the link operator takes.
func collectionIndex(sc *scene.Scene, name string) (int, error) {
	for i, c := range sc.Collections() {
		if c.Name == name {
			return i, nil
		}
	}
	return 0, errors.Newf(errors.ErrNotFound, MsgErrNoCollection, name)
}

// layerCollectionIndex is the pre-order index, in the active view layer,
// of the layer collection showing the named collection.
func layerCollectionIndex(sc *scene.Scene, name string) (int, error) {
	layer := sc.Layer()
	if c := sc.FindCollection(name); c != nil {
		if lc := layer.FindCollection(c); lc != nil {
			return layer.IndexOf(lc), nil
		}
	}
	return 0, errors.Newf(errors.ErrNotFound, MsgErrNoLayerCollection, name, layer.Name)
}

func groupIndex(sc *scene.Scene, name string) (int, error) {
	for i, g := range sc.Groups {
		if g == name {
			return i, nil
		}
	}
	return 0, errors.Newf(errors.ErrNotFound, MsgErrNoGroup, name).
		WithDetail("groups", sc.Groups)
}
