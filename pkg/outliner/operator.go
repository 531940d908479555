package outliner

import (
	"github.com/arthur-debert/outliner/pkg/errors"
	"github.com/arthur-debert/outliner/pkg/logging"
	"github.com/arthur-debert/outliner/pkg/registry"
)

// Operator is a user command acting on a Context.
type Operator interface {
	// ID is the stable identifier, e.g. OUTLINER_OT_collection_new.
	ID() string
	// Name is the short label shown to users.
	Name() string
	Description() string
	Properties() []PropertyDef
	// Poll reports whether the operator can run in ctx.
	Poll(ctx *Context) bool
	Exec(ctx *Context, props *Properties) error
}

// Invoker is implemented by operators that behave differently when started
// interactively, before falling back to Exec.
type Invoker interface {
	Invoke(ctx *Context, props *Properties) error
}

// EnumItem is one choice of a dynamic enum property.
type EnumItem struct {
	Value      int    `json:"value"`
	Identifier string `json:"identifier"`
	Name       string `json:"name"`
}

// EnumProvider is implemented by operators whose property choices depend
// on the scene.
type EnumProvider interface {
	EnumItems(ctx *Context, property string) []EnumItem
}

// baseOperator carries the identifying strings shared by all operators.
type baseOperator struct {
	id          string
	name        string
	description string
	properties  []PropertyDef
}

func (b baseOperator) ID() string                { return b.id }
func (b baseOperator) Name() string              { return b.name }
func (b baseOperator) Description() string       { return b.description }
func (b baseOperator) Properties() []PropertyDef { return b.properties }
func (b baseOperator) Poll(*Context) bool        { return true }

// NewRegistry returns a registry holding every collection operator.
func NewRegistry() *registry.Registry[Operator] {
	reg := registry.New[Operator]()
	for _, op := range []Operator{
		&CollectionLink{},
		&CollectionUnlink{},
		&CollectionNew{},
		&CollectionOverrideNew{},
		&CollectionsDelete{},
		&CollectionSelect{},
		&CollectionToggle{},
		NewCollectionObjectsAdd(),
		NewCollectionObjectsRemove(),
		NewCollectionObjectsSelect(),
		NewCollectionObjectsDeselect(),
	} {
		reg.MustRegister(op.ID(), op)
	}
	return reg
}

// Run polls op, resolves props and executes it. When invoke is true and op
// implements Invoker, Invoke is used instead of Exec. Failures are also
// added to ctx.Reports as error reports.
func Run(ctx *Context, op Operator, props *Properties, invoke bool) error {
	logger := logging.GetLogger("outliner").With().Str("operator", op.ID()).Logger()
	done := logging.LogOperationStart(logger, op.ID())
	defer done()

	err := run(ctx, op, props, invoke)
	if err != nil {
		ctx.Reports.Add(ReportError, reportMessage(err))
		logger.Debug().Err(err).Msg("Operator cancelled")
	}
	return err
}

func run(ctx *Context, op Operator, props *Properties, invoke bool) error {
	if !op.Poll(ctx) {
		return errors.Newf(errors.ErrPollFailed, "%s cannot run in the current context", op.ID())
	}

	resolved, err := props.resolve(op.Properties())
	if err != nil {
		return err
	}

	if invoker, ok := op.(Invoker); ok && invoke {
		return invoker.Invoke(ctx, resolved)
	}
	return op.Exec(ctx, resolved)
}

func reportMessage(err error) string {
	if e, ok := err.(*errors.OutlinerError); ok && e.Wrapped == nil {
		return e.Message
	}
	return err.Error()
}
