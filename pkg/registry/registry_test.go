package registry

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/outliner/pkg/errors"
)

type op struct {
	id   string
	name string
}

func TestRegister(t *testing.T) {
	reg := New[op]()

	require.NoError(t, reg.Register("OUTLINER_OT_collection_new", op{name: "New Collection"}))
	assert.True(t, reg.Has("OUTLINER_OT_collection_new"))
	assert.False(t, reg.Has("OUTLINER_OT_collection_link"))

	err := reg.Register("", op{})
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))

	err = reg.Register("OUTLINER_OT_collection_new", op{name: "Other"})
	assert.True(t, errors.IsErrorCode(err, errors.ErrAlreadyExists))
	assert.Equal(t, "OUTLINER_OT_collection_new", errors.GetErrorDetails(err)["id"])

	got, err := reg.Get("OUTLINER_OT_collection_new")
	require.NoError(t, err)
	assert.Equal(t, "New Collection", got.name, "a clash keeps the first item")
	assert.Equal(t, 1, reg.Count())
}

func TestGetMissing(t *testing.T) {
	reg := New[op]()

	got, err := reg.Get("OUTLINER_OT_collection_toggle")
	assert.True(t, errors.IsErrorCode(err, errors.ErrNotFound))
	assert.Zero(t, got)
}

func TestListAndValuesFollowIdentifierOrder(t *testing.T) {
	reg := New[op]()
	for _, id := range []string{"OUTLINER_OT_collection_unlink", "OUTLINER_OT_collection_link", "OUTLINER_OT_collections_delete"} {
		reg.MustRegister(id, op{id: id})
	}

	want := []string{"OUTLINER_OT_collection_link", "OUTLINER_OT_collection_unlink", "OUTLINER_OT_collections_delete"}
	assert.Equal(t, want, reg.List())

	var ids []string
	for _, v := range reg.Values() {
		ids = append(ids, v.id)
	}
	assert.Equal(t, want, ids)
}

func TestMustRegisterPanicsOnClash(t *testing.T) {
	reg := New[op]()
	reg.MustRegister("OUTLINER_OT_collection_select", op{})

	assert.Panics(t, func() { reg.MustRegister("OUTLINER_OT_collection_select", op{}) })
}

func TestConcurrentRegisterAndLookup(t *testing.T) {
	reg := New[op]()
	var wg sync.WaitGroup

	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			id := fmt.Sprintf("OUTLINER_OT_test_%02d", i)
			_ = reg.Register(id, op{id: id})
			_, _ = reg.Get(id)
			_ = reg.Values()
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 32, reg.Count())
}
