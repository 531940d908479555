package outliner

import (
	"fmt"

	"github.com/arthur-debert/outliner/pkg/events"
	"github.com/arthur-debert/outliner/pkg/scene"
)

// ReportLevel is the severity of a Report.
type ReportLevel string

const (
	ReportInfo    ReportLevel = "info"
	ReportWarning ReportLevel = "warning"
	ReportError   ReportLevel = "error"
)

// Report is a message an operator leaves for the user.
type Report struct {
	Level   ReportLevel `json:"level"`
	Message string      `json:"message"`
}

// Reports collects the reports of one or more operator runs.
type Reports struct {
	items []Report
}

// Add appends a report.
func (r *Reports) Add(level ReportLevel, message string) {
	r.items = append(r.items, Report{Level: level, Message: message})
}

// Addf appends a formatted report.
func (r *Reports) Addf(level ReportLevel, format string, args ...interface{}) {
	r.Add(level, fmt.Sprintf(format, args...))
}

// Items returns the collected reports in order.
func (r *Reports) Items() []Report {
	return append([]Report(nil), r.items...)
}

// HasErrors reports whether an error report was added.
func (r *Reports) HasErrors() bool {
	for _, item := range r.items {
		if item.Level == ReportError {
			return true
		}
	}
	return false
}

// Context is everything an operator may read or change.
type Context struct {
	Scene *scene.Scene
	// Layer is the view layer operators act on.
	Layer *scene.ViewLayer
	// Space is the outliner the operator was started from. It may be nil.
	Space    *Space
	Tagger   events.Tagger
	Notifier events.Notifier
	Reports  *Reports
}

// NewContext creates a context on the active layer of sc. bus receives
// both update tags and notifications.
func NewContext(sc *scene.Scene, space *Space, bus *events.Bus) *Context {
	return &Context{
		Scene:    sc,
		Layer:    sc.Layer(),
		Space:    space,
		Tagger:   bus,
		Notifier: bus,
		Reports:  &Reports{},
	}
}

// ActiveLayerCollection is the layer collection operators default to.
func (c *Context) ActiveLayerCollection() *scene.LayerCollection {
	if c.Layer == nil {
		return nil
	}
	return c.Layer.ActiveCollection()
}

// refreshSpace rebuilds the display tree after the scene changed and drops
// flags of elements that disappeared.
func (c *Context) refreshSpace() {
	if c.Space == nil {
		return
	}
	c.Space.Rebuild(c.Scene)
	c.Space.Cleanup()
}

func (c *Context) tagSceneUpdate() {
	c.Tagger.TagRelations()
	c.Tagger.TagID(c.Scene.ID)
}

func (c *Context) notify(data events.Data) {
	c.Notifier.Notify(events.Notification{
		Category:  events.CategoryScene,
		Data:      data,
		Reference: c.Scene.Name,
	})
}
