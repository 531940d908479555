package outliner

import (
	"github.com/arthur-debert/outliner/pkg/errors"
)

// stubOperator is registered so callers can discover the operator, but
// running it always fails.
type stubOperator struct {
	baseOperator
}

func (*stubOperator) Invoke(*Context, *Properties) error {
	return errors.New(errors.ErrNotImplemented, "Operator not implemented yet")
}

func (op *stubOperator) Exec(ctx *Context, props *Properties) error {
	return op.Invoke(ctx, props)
}

func newStub(id, name, description string) *stubOperator {
	return &stubOperator{baseOperator{id: id, name: name, description: description}}
}

func NewCollectionObjectsAdd() Operator {
	return newStub("OUTLINER_OT_collection_objects_add", "Add Objects", "Add selected objects to collection")
}

func NewCollectionObjectsRemove() Operator {
	return newStub("OUTLINER_OT_collection_objects_remove", "Remove Object", "Remove objects from collection")
}

func NewCollectionObjectsSelect() Operator {
	return newStub("OUTLINER_OT_collection_objects_select", "Select Objects", "Select collection objects")
}

func NewCollectionObjectsDeselect() Operator {
	return newStub("OUTLINER_OT_collection_objects_deselect", "Deselect Objects", "Deselect collection objects")
}
