package events

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBusRecordsInOrder(t *testing.T) {
	bus := NewBus()

	bus.TagRelations()
	bus.TagID("scene-1")
	bus.Notify(Notification{Category: CategoryScene, Data: DataLayer})

	events := bus.Events()
	require.Len(t, events, 3)
	assert.Equal(t, KindRelations, events[0].Kind)
	assert.Equal(t, Event{Kind: KindID, ID: "scene-1"}, events[1])
	assert.Equal(t, KindNotification, events[2].Kind)
	assert.Equal(t, []Notification{{Category: CategoryScene, Data: DataLayer}}, bus.Notifications())
}

func TestBusDrain(t *testing.T) {
	bus := NewBus()
	bus.TagRelations()

	assert.Len(t, bus.Drain(), 1)
	assert.Empty(t, bus.Events())
	assert.Empty(t, bus.Drain())
}

func TestNotificationString(t *testing.T) {
	assert.Equal(t, "scene|layer", Notification{Category: CategoryScene, Data: DataLayer}.String())
	assert.Equal(t, "scene|layer_content(Scene)",
		Notification{Category: CategoryScene, Data: DataLayerContent, Reference: "Scene"}.String())
}
