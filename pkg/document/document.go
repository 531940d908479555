package document

import (
	"github.com/arthur-debert/outliner/pkg/errors"
	"github.com/arthur-debert/outliner/pkg/outliner"
	"github.com/arthur-debert/outliner/pkg/scene"
	"github.com/arthur-debert/outliner/pkg/tree"
)

// Document is the persisted form of a scene and its outliner.
type Document struct {
	ID          string       `toml:"id,omitempty" yaml:"id,omitempty"`
	Name        string       `toml:"name" yaml:"name"`
	Groups      []string     `toml:"groups,omitempty" yaml:"groups,omitempty"`
	Objects     []string     `toml:"objects,omitempty" yaml:"objects,omitempty"`
	ActiveLayer int          `toml:"active_layer" yaml:"active_layer"`
	Master      Collection   `toml:"master" yaml:"master"`
	ViewLayers  []ViewLayer  `toml:"view_layers" yaml:"view_layers"`
	Outliner    OutlinerView `toml:"outliner" yaml:"outliner"`
}

// Collection is a collection and its descendants.
type Collection struct {
	Name     string       `toml:"name" yaml:"name"`
	Type     string       `toml:"type,omitempty" yaml:"type,omitempty"`
	Group    string       `toml:"group,omitempty" yaml:"group,omitempty"`
	Objects  []string     `toml:"objects,omitempty" yaml:"objects,omitempty"`
	Children []Collection `toml:"children,omitempty" yaml:"children,omitempty"`
}

// ViewLayer lists the collections linked to a layer.
type ViewLayer struct {
	Name        string `toml:"name" yaml:"name"`
	Active      int    `toml:"active" yaml:"active"`
	Collections []Link `toml:"collections,omitempty" yaml:"collections,omitempty"`
}

// Link is a collection linked to a view layer, by name.
type Link struct {
	Name     string `toml:"name" yaml:"name"`
	Disabled bool   `toml:"disabled,omitempty" yaml:"disabled,omitempty"`
	// DisabledChildren names nested layer collections that are disabled.
	DisabledChildren []string `toml:"disabled_children,omitempty" yaml:"disabled_children,omitempty"`
}

// OutlinerView is the persisted state of an outliner.
type OutlinerView struct {
	Mode     string    `toml:"mode" yaml:"mode"`
	Elements []Element `toml:"elements,omitempty" yaml:"elements,omitempty"`
}

// Element holds the flags of one display element.
type Element struct {
	Type  string   `toml:"type" yaml:"type"`
	Path  string   `toml:"path" yaml:"path"`
	Flags []string `toml:"flags" yaml:"flags"`
}

var flagNames = []struct {
	flag tree.Flag
	name string
}{
	{tree.FlagSelected, "selected"},
	{tree.FlagActive, "active"},
	{tree.FlagOpen, "open"},
}

func encodeFlags(f tree.Flag) []string {
	var out []string
	for _, fn := range flagNames {
		if f&fn.flag != 0 {
			out = append(out, fn.name)
		}
	}
	return out
}

func decodeFlags(names []string) (tree.Flag, error) {
	var f tree.Flag
next:
	for _, name := range names {
		for _, fn := range flagNames {
			if fn.name == name {
				f |= fn.flag
				continue next
			}
		}
		return 0, errors.Newf(errors.ErrInvalidInput, "unknown element flag %q", name)
	}
	return f, nil
}

// FromScene captures sc and the state of space. space may be nil.
func FromScene(sc *scene.Scene, space *outliner.Space) *Document {
	d := &Document{
		ID:          sc.ID,
		Name:        sc.Name,
		Groups:      append([]string(nil), sc.Groups...),
		Objects:     append([]string(nil), sc.Objects...),
		ActiveLayer: sc.ActiveLayer,
		Master:      fromCollection(sc.Master),
		Outliner:    OutlinerView{Mode: string(outliner.ModeCollections)},
	}

	for _, l := range sc.Layers {
		vl := ViewLayer{Name: l.Name, Active: l.Active}
		for _, lc := range l.Collections {
			vl.Collections = append(vl.Collections, fromLayerCollection(lc))
		}
		d.ViewLayers = append(d.ViewLayers, vl)
	}

	if space != nil {
		d.Outliner.Mode = string(space.Mode)
		for _, f := range space.StoredFlags() {
			d.Outliner.Elements = append(d.Outliner.Elements, Element{
				Type:  string(f.Type),
				Path:  f.Path,
				Flags: encodeFlags(f.Flags),
			})
		}
	}
	return d
}

func fromCollection(c *scene.Collection) Collection {
	out := Collection{
		Name:    c.Name,
		Group:   c.Group,
		Objects: append([]string(nil), c.Objects...),
	}
	if c.Type != scene.CollectionTypeNone {
		out.Type = c.Type.String()
	}
	for _, child := range c.Children {
		out.Children = append(out.Children, fromCollection(child))
	}
	return out
}

func fromLayerCollection(lc *scene.LayerCollection) Link {
	link := Link{Name: lc.Name(), Disabled: lc.Disabled()}
	tree.Traverse(lc.Node().Children, func(n *tree.Node[*scene.LayerCollection]) bool {
		return n.Payload.Disabled()
	}, func(n *tree.Node[*scene.LayerCollection], link *Link) tree.Action {
		link.DisabledChildren = append(link.DisabledChildren, n.Payload.Name())
		return tree.Continue
	}, &link)
	return link
}

// Scene rebuilds the scene and the outliner described by d.
func (d *Document) Scene() (*scene.Scene, *outliner.Space, error) {
	opts := scene.Options{MasterName: d.Master.Name}
	if len(d.ViewLayers) > 0 {
		opts.LayerName = d.ViewLayers[0].Name
	}
	sc := scene.New(d.Name, opts)
	if d.ID != "" {
		sc.ID = d.ID
	}
	sc.Groups = append([]string(nil), d.Groups...)
	sc.Objects = append([]string(nil), d.Objects...)
	if err := checkObjects(d.Master); err != nil {
		return nil, nil, err
	}
	sc.Master.Objects = append([]string(nil), d.Master.Objects...)

	for _, child := range d.Master.Children {
		if err := addCollection(sc, sc.Master, child); err != nil {
			return nil, nil, err
		}
	}

	for i, vl := range d.ViewLayers {
		layer := sc.Layers[0]
		if i > 0 {
			layer = sc.AddLayer(vl.Name)
		}
		if err := restoreLayer(sc, layer, vl); err != nil {
			return nil, nil, err
		}
	}
	if d.ActiveLayer < 0 || d.ActiveLayer >= len(sc.Layers) {
		return nil, nil, errors.Newf(errors.ErrDocumentLoad, "active layer %d out of range", d.ActiveLayer)
	}
	sc.ActiveLayer = d.ActiveLayer

	mode, err := outliner.ParseDisplayMode(d.Outliner.Mode)
	if err != nil {
		return nil, nil, errors.Wrap(err, errors.ErrDocumentLoad, "invalid outliner mode")
	}
	space := outliner.NewSpace(mode)
	flags := make([]outliner.StoredFlag, 0, len(d.Outliner.Elements))
	for _, e := range d.Outliner.Elements {
		f, err := decodeFlags(e.Flags)
		if err != nil {
			return nil, nil, errors.Wrapf(err, errors.ErrDocumentLoad, "element %s", e.Path)
		}
		flags = append(flags, outliner.StoredFlag{Type: outliner.ElementType(e.Type), Path: e.Path, Flags: f})
	}
	space.RestoreFlags(flags)
	space.Rebuild(sc)

	return sc, space, nil
}

func addCollection(sc *scene.Scene, parent *scene.Collection, doc Collection) error {
	typ, err := scene.ParseCollectionType(doc.Type)
	if err != nil {
		return errors.Wrapf(err, errors.ErrDocumentLoad, "collection %q", doc.Name)
	}
	if doc.Name == "" {
		return errors.New(errors.ErrDocumentLoad, "collection without a name")
	}
	if sc.FindCollection(doc.Name) != nil {
		return errors.Newf(errors.ErrDocumentLoad, "duplicate collection name %q", doc.Name)
	}
	if err := checkObjects(doc); err != nil {
		return err
	}

	c, err := sc.AddCollection(parent, typ, doc.Name)
	if err != nil {
		return errors.Wrapf(err, errors.ErrDocumentLoad, "collection %q", doc.Name)
	}
	c.Objects = append([]string(nil), doc.Objects...)
	if doc.Group != "" {
		if err := sc.SetGroup(c, doc.Group); err != nil {
			return errors.Wrapf(err, errors.ErrDocumentLoad, "collection %q", doc.Name)
		}
	}
	for _, child := range doc.Children {
		if err := addCollection(sc, c, child); err != nil {
			return err
		}
	}
	return nil
}

func checkObjects(doc Collection) error {
	for _, obj := range doc.Objects {
		if err := scene.CheckName(obj); err != nil {
			return errors.Wrapf(err, errors.ErrDocumentLoad, "object in collection %q", doc.Name)
		}
	}
	return nil
}

func restoreLayer(sc *scene.Scene, layer *scene.ViewLayer, doc ViewLayer) error {
	for _, link := range doc.Collections {
		c := sc.FindCollection(link.Name)
		if c == nil {
			return errors.Newf(errors.ErrDocumentLoad, "layer %q links unknown collection %q", doc.Name, link.Name)
		}
		lc := layer.Link(c)
		if link.Disabled {
			layer.Disable(lc)
		}
		roots := lc.Node().Children
		for _, name := range link.DisabledChildren {
			n := tree.Find(roots, func(n *tree.Node[*scene.LayerCollection]) bool {
				return n.Payload.Name() == name
			})
			if n == nil {
				return errors.Newf(errors.ErrDocumentLoad, "collection %q is not nested under %q", name, link.Name)
			}
			layer.Disable(n.Payload)
		}
	}

	if len(doc.Collections) > 0 {
		if err := layer.SetActive(doc.Active); err != nil {
			return errors.Wrapf(err, errors.ErrDocumentLoad, "layer %q", doc.Name)
		}
	}
	return nil
}
