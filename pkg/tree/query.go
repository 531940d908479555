package tree

// Count returns the number of nodes accepted by match.
func Count[T any](roots []*Node[T], match Predicate[T]) int {
	n := 0
	Traverse(roots, match, func(_ *Node[T], count *int) Action {
		*count++
		return Continue
	}, &n)
	return n
}

// Find returns the first node in pre-order accepted by match, or nil.
func Find[T any](roots []*Node[T], match Predicate[T]) *Node[T] {
	var found *Node[T]
	Traverse(roots, nil, func(n *Node[T], result **Node[T]) Action {
		if *result != nil {
			return SkipChildren
		}
		if match == nil || match(n) {
			*result = n
			return SkipChildren
		}
		return Continue
	}, &found)
	return found
}

// Collect returns the nodes accepted by match in pre-order.
func Collect[T any](roots []*Node[T], match Predicate[T]) []*Node[T] {
	var out []*Node[T]
	Traverse(roots, match, func(n *Node[T], acc *[]*Node[T]) Action {
		*acc = append(*acc, n)
		return Continue
	}, &out)
	return out
}

// Index returns the pre-order position of target among the nodes accepted
// by match, or -1.
func Index[T any](roots []*Node[T], match Predicate[T], target *Node[T]) int {
	type state struct {
		pos, found int
	}
	st := &state{found: -1}
	Traverse(roots, match, func(n *Node[T], st *state) Action {
		if st.found >= 0 {
			return SkipChildren
		}
		if n == target {
			st.found = st.pos
			return SkipChildren
		}
		st.pos++
		return Continue
	}, st)
	return st.found
}

// At returns the node at pre-order position i among the nodes accepted by
// match, or nil.
func At[T any](roots []*Node[T], match Predicate[T], i int) *Node[T] {
	if i < 0 {
		return nil
	}
	pos := 0
	return Find(roots, func(n *Node[T]) bool {
		if match != nil && !match(n) {
			return false
		}
		if pos == i {
			return true
		}
		pos++
		return false
	})
}
