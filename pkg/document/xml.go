package document

import (
	"io"
	"strconv"

	"github.com/beevik/etree"

	"github.com/arthur-debert/outliner/pkg/errors"
)

// ExportXML writes d as an XML tree of collections and view layers.
// Outliner state is not exported.
func ExportXML(w io.Writer, d *Document) error {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)

	root := doc.CreateElement("scene")
	root.CreateAttr("name", d.Name)
	if d.ID != "" {
		root.CreateAttr("id", d.ID)
	}

	for _, g := range d.Groups {
		root.CreateElement("group").CreateAttr("name", g)
	}
	for _, obj := range d.Objects {
		root.CreateElement("object").CreateAttr("name", obj)
	}
	writeCollection(root, d.Master)

	for i, vl := range d.ViewLayers {
		el := root.CreateElement("view-layer")
		el.CreateAttr("name", vl.Name)
		el.CreateAttr("active-collection", strconv.Itoa(vl.Active))
		if i == d.ActiveLayer {
			el.CreateAttr("active", "true")
		}
		for _, link := range vl.Collections {
			l := el.CreateElement("link")
			l.CreateAttr("collection", link.Name)
			if link.Disabled {
				l.CreateAttr("disabled", "true")
			}
			for _, name := range link.DisabledChildren {
				l.CreateElement("disabled").CreateAttr("collection", name)
			}
		}
	}

	doc.Indent(2)
	if _, err := doc.WriteTo(w); err != nil {
		return errors.Wrap(err, errors.ErrDocumentSave, "failed to write XML")
	}
	return nil
}

func writeCollection(parent *etree.Element, c Collection) {
	el := parent.CreateElement("collection")
	el.CreateAttr("name", c.Name)
	if c.Type != "" {
		el.CreateAttr("type", c.Type)
	}
	if c.Group != "" {
		el.CreateAttr("group", c.Group)
	}
	for _, obj := range c.Objects {
		el.CreateElement("object").CreateAttr("name", obj)
	}
	for _, child := range c.Children {
		writeCollection(el, child)
	}
}
