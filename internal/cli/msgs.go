package cli

import (
	_ "embed"
	"strings"
)

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort      = "Inspect and edit scene collections from the command line"
	MsgVersionShort   = "Print version information"
	MsgVersionLong    = "Print detailed version information including commit hash and build date"
	MsgInitShort      = "Create a new scene document"
	MsgShowShort      = "Show the outliner of the scene"
	MsgExportShort    = "Export the scene document"
	MsgSelectShort    = "Change the outliner selection"
	MsgOperatorsShort = "List collection operators"
	MsgRunShort       = "Run a collection operator"
	MsgConfigShort    = "Print a configuration template"
	MsgLinkShort      = "Link a collection to the active view layer"
	MsgUnlinkShort    = "Unlink a collection from the active view layer"
	MsgNewShort       = "Add a new collection and link it to the active view layer"
	MsgDeleteShort    = "Delete selected collections"
	MsgActivateShort  = "Make a layer collection active"
	MsgToggleShort    = "Enable or disable a layer collection"

	// Status messages
	MsgDocumentCreated = "Created scene document at %s"
	MsgSelectionSaved  = "Selection saved to %s"
	MsgConfigWritten   = "Wrote configuration template to %s"
	MsgVersionFormat   = "outliner version %s\n  commit: %s\n  built:  %s\n"

	// Flag descriptions
	MsgFlagVerbose  = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagFile     = "Scene document to use (.toml, .yaml or .yml)"
	MsgFlagFormat   = "Output format: auto, term, text or json"
	MsgFlagMode     = "Outliner display mode: collections or view_layer"
	MsgFlagForce    = "Overwrite an existing document"
	MsgFlagGroup    = "Group available to group collections (repeatable)"
	MsgFlagXML      = "Export as XML"
	MsgFlagTo       = "Document format when not exporting XML: toml or yaml"
	MsgFlagOutput   = "Write to this file instead of stdout"
	MsgFlagDeselect = "Remove the paths from the selection instead"
	MsgFlagClear    = "Clear the selection first"
	MsgFlagProp     = "Operator property as name=value (repeatable)"
	MsgFlagExec     = "Execute directly, skipping interactive checks"
	MsgFlagNewGroup = "Create a group collection bound to this group"
	MsgFlagEnable   = "Only enable the layer collection"
	MsgFlagDisable  = "Only disable the layer collection"
	MsgFlagWrite    = "Write the template to the user configuration file"

	// Error messages
	MsgErrNoCollection      = "no collection named %q"
	MsgErrNoLayerCollection = "no layer collection named %q in layer %q"
	MsgErrNoGroup           = "no group named %q"
	MsgErrDocumentExists    = "document %s already exists, use --force to overwrite"
	MsgErrConfigExists      = "configuration file %s already exists"
)

// Long messages from embedded files
var (
	//go:embed msgs/root-long.txt
	msgRootLongRaw string
	MsgRootLong    = strings.TrimSpace(msgRootLongRaw)

	//go:embed msgs/run-long.txt
	msgRunLongRaw string
	MsgRunLong    = strings.TrimSpace(msgRunLongRaw)

	//go:embed msgs/delete-long.txt
	msgDeleteLongRaw string
	MsgDeleteLong    = strings.TrimSpace(msgDeleteLongRaw)
)
