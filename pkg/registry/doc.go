// Package registry provides a generic, thread-safe registry keyed by
// name. The outliner uses it to look operators up by their identifier.
package registry
