package tree

import (
	"github.com/arthur-debert/outliner/pkg/errors"
)

// Action is returned by a Visitor to steer the traversal.
type Action int

const (
	// Continue descends into the children of the visited node.
	Continue Action = iota
	// SkipChildren leaves the subtree of the visited node out and moves on
	// to its next sibling.
	SkipChildren
)

func (a Action) String() string {
	switch a {
	case Continue:
		return "continue"
	case SkipChildren:
		return "skip_children"
	default:
		return "unknown"
	}
}

// Predicate selects the nodes handed to a Visitor.
type Predicate[T any] func(n *Node[T]) bool

// Visitor is invoked for every node accepted by the predicate. ctx is the
// value passed to Traverse, shared by every invocation of one walk.
type Visitor[T, C any] func(n *Node[T], ctx C) Action

// All accepts every node.
func All[T any]() Predicate[T] {
	return func(*Node[T]) bool { return true }
}

// WithFlags accepts nodes that have all bits of mask set. A zero mask
// accepts every node.
func WithFlags[T any](mask Flag) Predicate[T] {
	return func(n *Node[T]) bool { return n.Has(mask) }
}

// WithKind accepts nodes of the given kind.
func WithKind[T any](kind Kind) Predicate[T] {
	return func(n *Node[T]) bool { return n.Kind == kind }
}

// And accepts nodes accepted by every predicate.
func And[T any](preds ...Predicate[T]) Predicate[T] {
	return func(n *Node[T]) bool {
		for _, p := range preds {
			if p != nil && !p(n) {
				return false
			}
		}
		return true
	}
}

// Traverse walks roots depth-first in pre-order, children in stored order.
// Every reached node is tested against match (nil accepts all); accepted
// nodes are passed to visit together with ctx. When visit returns
// SkipChildren none of that node's descendants are reached. Rejected nodes
// are always descended into.
//
// Traverse assumes a finite acyclic tree. Use TraverseChecked when that
// is not guaranteed.
func Traverse[T, C any](roots []*Node[T], match Predicate[T], visit Visitor[T, C], ctx C) {
	_ = walk(roots, match, visit, ctx, nil)
}

// TraverseChecked behaves like Traverse but stops with an INVALID_TREE
// error when a node is reached a second time, which happens for cycles and
// for nodes shared between parents. Visitor invocations made before the
// repeat was found are not undone.
func TraverseChecked[T, C any](roots []*Node[T], match Predicate[T], visit Visitor[T, C], ctx C) error {
	return walk(roots, match, visit, ctx, make(map[*Node[T]]struct{}))
}

func walk[T, C any](roots []*Node[T], match Predicate[T], visit Visitor[T, C], ctx C, seen map[*Node[T]]struct{}) error {
	if visit == nil {
		return nil
	}
	if match == nil {
		match = All[T]()
	}

	stack := make([]*Node[T], 0, len(roots))
	stack = pushReversed(stack, roots)

	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if seen != nil {
			if _, ok := seen[n]; ok {
				return errors.New(errors.ErrInvalidTree, "node reached twice during traversal").
					WithDetail("kind", string(n.Kind))
			}
			seen[n] = struct{}{}
		}

		if match(n) && visit(n, ctx) == SkipChildren {
			continue
		}
		stack = pushReversed(stack, n.Children)
	}
	return nil
}

// pushReversed pushes nodes so the first one is popped first.
func pushReversed[T any](stack []*Node[T], nodes []*Node[T]) []*Node[T] {
	for i := len(nodes) - 1; i >= 0; i-- {
		if nodes[i] != nil {
			stack = append(stack, nodes[i])
		}
	}
	return stack
}
