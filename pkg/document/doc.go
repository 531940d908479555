// Package document persists a scene together with the state of the
// outliner showing it.
//
// Documents are stored as TOML or YAML, picked by file extension, and can be
// exported as XML for other tools.
package document
