package errors_test

import (
	stderrors "errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/outliner/pkg/document"
	"github.com/arthur-debert/outliner/pkg/errors"
	"github.com/arthur-debert/outliner/pkg/events"
	"github.com/arthur-debert/outliner/pkg/outliner"
	"github.com/arthur-debert/outliner/pkg/scene"
	"github.com/arthur-debert/outliner/pkg/tree"
)

func TestSharedNodeIsInvalidTree(t *testing.T) {
	shared := tree.NewNode[string]("collection", "Props")
	root := tree.NewNode[string]("layer", "View Layer", shared, shared)

	visited := 0
	err := tree.TraverseChecked([]*tree.Node[string]{root}, nil,
		func(*tree.Node[string], *int) tree.Action { visited++; return tree.Continue }, &visited)

	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidTree))
	assert.Equal(t, "collection", errors.GetErrorDetails(err)["kind"])
	assert.Equal(t, "[INVALID_TREE] node reached twice during traversal", err.Error())
	assert.Equal(t, 2, visited)
}

func TestDocumentLoadWrapsDecodeError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scene.toml")
	require.NoError(t, os.WriteFile(path, []byte("name = \n"), 0644))

	_, err := document.Load(path)

	require.Error(t, err)
	assert.Equal(t, errors.ErrDocumentLoad, errors.GetErrorCode(err))

	var outErr *errors.OutlinerError
	require.True(t, stderrors.As(err, &outErr))
	require.NotNil(t, outErr.Wrapped)
	assert.Same(t, outErr.Wrapped, stderrors.Unwrap(err))
	assert.Equal(t, "[DOCUMENT_LOAD] failed to parse TOML: "+outErr.Wrapped.Error(), err.Error())
}

func TestDocumentLoadMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "absent.yaml")

	_, err := document.Load(path)

	assert.True(t, errors.IsErrorCode(err, errors.ErrFileNotFound))
	assert.False(t, stderrors.Is(err, fs.ErrNotExist), "missing documents are reported, not wrapped")
	assert.Equal(t, path, errors.GetErrorDetails(err)["path"])
}

func TestOperatorChoicesDetail(t *testing.T) {
	sc := scene.New("Scene", scene.Options{})
	sc.Groups = []string{"Characters", "Vehicles"}
	ctx := outliner.NewContext(sc, nil, events.NewBus())
	props := outliner.NewProperties().SetEnum("type", "group")

	err := outliner.Run(ctx, &outliner.CollectionNew{}, props, true)

	require.Error(t, err)
	assert.Equal(t, errors.ErrInvalidInput, errors.GetErrorCode(err))
	assert.Equal(t, []string{"Characters", "Vehicles"}, errors.GetErrorDetails(err)["choices"])
}

func TestIsMatchesByCode(t *testing.T) {
	err := errors.Wrapf(errors.New(errors.ErrInvalidTree, "node reached twice"),
		errors.ErrDocumentLoad, "collection %q", "Props")

	assert.True(t, stderrors.Is(err, errors.New(errors.ErrDocumentLoad, "")))
	assert.True(t, stderrors.Is(err, errors.New(errors.ErrInvalidTree, "")), "inner code is reachable")
	assert.False(t, stderrors.Is(err, errors.New(errors.ErrNotFound, "")))
	assert.Equal(t, errors.ErrDocumentLoad, errors.GetErrorCode(err))
}

func TestPlainErrors(t *testing.T) {
	plain := stderrors.New("boom")

	assert.Equal(t, errors.ErrUnknown, errors.GetErrorCode(plain))
	assert.Nil(t, errors.GetErrorDetails(plain))
	assert.False(t, errors.IsErrorCode(plain, errors.ErrUnknown))
	assert.Nil(t, errors.Wrap(nil, errors.ErrDocumentLoad, "unused"))
	assert.Nil(t, errors.Wrapf(nil, errors.ErrDocumentSave, "unused %d", 1))
}

func TestWithDetailsMerges(t *testing.T) {
	err := (&errors.OutlinerError{Code: errors.ErrNotFound, Message: "collection not found"}).
		WithDetail("name", "Props").
		WithDetails(map[string]interface{}{"scene": "Scene", "name": "Lights"})

	assert.Equal(t, map[string]interface{}{"name": "Lights", "scene": "Scene"}, err.Details)
}
