// Package outliner implements the collection operators of an outliner
// panel on top of pkg/scene.
//
// A Space holds the display tree the user selects in. Operators receive an
// explicit Context naming the scene, view layer, space and the collaborators
// that are told about changes; they never look any of these up globally.
// Bulk operators such as OUTLINER_OT_collections_delete walk the display
// tree with tree.Traverse and act on the selected elements.
package outliner
