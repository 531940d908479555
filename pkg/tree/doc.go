// Package tree provides the selective traversal used by the outliner.
//
// A tree is a set of ordered, rooted Node values. Traverse walks it
// depth-first in pre-order, hands every node accepted by a Predicate to a
// Visitor, and lets the visitor prune the subtree below the node it was
// given by returning SkipChildren. Nodes the predicate rejects are still
// descended into: only the visitor can stop descent.
//
// The traversal never creates, removes or reorders nodes. Visitors are free
// to change state elsewhere (the scene a node's payload points to, a
// counter in the context value) but must not edit the tree being walked.
package tree
