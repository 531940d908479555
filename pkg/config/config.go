package config

// Config is the complete outliner configuration.
type Config struct {
	Output   Output   `koanf:"output"`
	Scene    Scene    `koanf:"scene"`
	Naming   Naming   `koanf:"naming"`
	Outliner Outliner `koanf:"outliner"`
	Log      Log      `koanf:"log"`
}

// Output controls how commands print results.
type Output struct {
	Format string `koanf:"format"`
}

// Scene holds the defaults for new and opened documents.
type Scene struct {
	DefaultFile string   `koanf:"default_file"`
	Name        string   `koanf:"name"`
	MasterName  string   `koanf:"master_name"`
	LayerName   string   `koanf:"layer_name"`
	Groups      []string `koanf:"groups"`
}

// Naming holds naming rules for generated collections.
type Naming struct {
	CollectionPrefix string `koanf:"collection_prefix"`
}

// Outliner holds outliner display defaults.
type Outliner struct {
	Mode string `koanf:"mode"`
}

// Log controls logging.
type Log struct {
	Verbosity int `koanf:"verbosity"`
}

// OutputFormats lists the accepted values of output.format.
var OutputFormats = []string{"auto", "term", "text", "json"}
