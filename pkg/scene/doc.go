// Package scene holds the collection hierarchy the outliner edits.
//
// A Scene owns a tree of collections rooted at its master collection and a
// list of view layers. Each view layer links a subset of the collections
// through layer collections, which mirror the subtree of the collection
// they reference and carry per-layer state such as the disabled flag.
//
// Nothing here is global: callers pass the scene and layer they operate on.
package scene
