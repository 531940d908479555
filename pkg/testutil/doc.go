// Package testutil provides utilities for testing outliner commands.
//
// Key components:
//   - TestEnvironment: isolated config, data and state directories with a
//     scene document at the default location
//   - SceneDocument: the inline scene most command tests start from
//
// All test data should be defined inline, not in external files.
package testutil
