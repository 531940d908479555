package outliner

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/outliner/pkg/events"
	"github.com/arthur-debert/outliner/pkg/scene"
)

type fixture struct {
	scene  *scene.Scene
	space  *Space
	bus    *events.Bus
	ctx    *Context
	byName map[string]*scene.Collection
}

// newFixture builds
//
//	Master Collection
//	├── Props (objects: Crate)
//	│   ├── Chairs
//	│   └── Tables
//	└── Lights
//
// with Props and Lights linked to the view layer.
func newFixture(t *testing.T, mode DisplayMode) *fixture {
	t.Helper()
	sc := scene.New("Scene", scene.Options{})
	sc.Groups = []string{"Characters", "Vehicles"}
	byName := map[string]*scene.Collection{}

	add := func(parent *scene.Collection, name string) *scene.Collection {
		c, err := sc.AddCollection(parent, scene.CollectionTypeNone, name)
		require.NoError(t, err)
		byName[name] = c
		return c
	}
	props := add(nil, "Props")
	props.Objects = []string{"Crate"}
	add(props, "Chairs")
	add(props, "Tables")
	add(nil, "Lights")

	sc.Layer().Link(byName["Props"])
	sc.Layer().Link(byName["Lights"])

	space := NewSpace(mode)
	space.Rebuild(sc)
	bus := events.NewBus()

	return &fixture{
		scene:  sc,
		space:  space,
		bus:    bus,
		ctx:    NewContext(sc, space, bus),
		byName: byName,
	}
}

func (f *fixture) collectionNames() []string {
	var out []string
	for _, c := range f.scene.Collections() {
		out = append(out, c.Name)
	}
	return out
}
