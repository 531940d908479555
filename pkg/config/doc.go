// Package config loads the outliner configuration.
//
// Sources are layered, later ones winning: the embedded defaults, the user
// file at paths.ConfigFile(), and OUTLINER_* environment variables.
package config
