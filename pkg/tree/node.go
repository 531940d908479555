package tree

// Flag is a bit set carried by every node.
type Flag uint32

const (
	FlagSelected Flag = 1 << iota
	FlagActive
	FlagOpen
)

// Kind classifies the payload of a node. The empty Kind is valid and means
// "unclassified".
type Kind string

// Node is an element of an ordered, rooted, multi-child tree.
type Node[T any] struct {
	Payload  T
	Kind     Kind
	Flags    Flag
	Children []*Node[T]
}

// NewNode creates a node with the given kind, payload and children.
func NewNode[T any](kind Kind, payload T, children ...*Node[T]) *Node[T] {
	return &Node[T]{
		Payload:  payload,
		Kind:     kind,
		Children: children,
	}
}

// Add appends children in order and returns the receiver.
func (n *Node[T]) Add(children ...*Node[T]) *Node[T] {
	n.Children = append(n.Children, children...)
	return n
}

// Has reports whether every bit of mask is set.
func (n *Node[T]) Has(mask Flag) bool {
	return n.Flags&mask == mask
}

// Set sets the bits of mask.
func (n *Node[T]) Set(mask Flag) {
	n.Flags |= mask
}

// Clear clears the bits of mask.
func (n *Node[T]) Clear(mask Flag) {
	n.Flags &^= mask
}
