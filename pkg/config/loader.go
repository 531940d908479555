package config

import (
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/arthur-debert/outliner/pkg/errors"
	"github.com/arthur-debert/outliner/pkg/logging"
	"github.com/arthur-debert/outliner/pkg/paths"
	"github.com/arthur-debert/outliner/pkg/scene"
)

// EnvPrefix prefixes environment variables read as configuration.
const EnvPrefix = "OUTLINER_"

// Load reads the configuration from the default user file location. When
// there is no config.toml, a config.yaml next to it is used instead.
func Load() (*Config, error) {
	path := paths.ConfigFile()
	if _, err := os.Stat(path); os.IsNotExist(err) {
		alt := strings.TrimSuffix(path, filepath.Ext(path)) + ".yaml"
		if _, err := os.Stat(alt); err == nil {
			path = alt
		}
	}
	return LoadFile(path)
}

// parserFor picks the koanf parser by file extension. TOML is the default.
func parserFor(path string) koanf.Parser {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return yaml.Parser()
	default:
		return toml.Parser()
	}
}

// LoadFile reads the configuration using path as the user file, in TOML or
// YAML by extension. A missing file is not an error.
func LoadFile(path string) (*Config, error) {
	logger := logging.GetLogger("config")
	k := koanf.New(".")

	// 1. Embedded defaults
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to load defaults")
	}

	// 2. User file
	if path != "" {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), parserFor(path)); err != nil {
				return nil, errors.Wrapf(err, errors.ErrConfigParse, "failed to load config from %s", path).
					WithDetail("path", path)
			}
			logger.Debug().Str("path", path).Msg("Loaded user config")
		} else if !os.IsNotExist(err) {
			return nil, errors.Wrapf(err, errors.ErrConfigLoad, "failed to stat %s", path)
		}
	}

	// 3. Env vars: OUTLINER_SCENE_MASTER_NAME sets scene.master_name
	err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.Replace(strings.ToLower(strings.TrimPrefix(s, EnvPrefix)), "_", ".", 1)
	}), nil)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load env vars")
	}

	return unmarshal(k)
}

// Default returns the embedded defaults only.
func Default() *Config {
	k := koanf.New(".")
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		panic("embedded defaults: " + err.Error())
	}
	cfg, err := unmarshal(k)
	if err != nil {
		panic("embedded defaults: " + err.Error())
	}
	return cfg
}

func unmarshal(k *koanf.Koanf) (*Config, error) {
	var cfg Config
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToSliceHookFunc(","),
				mapstructure.TextUnmarshallerHookFunc(),
			),
		},
	}
	if err := k.UnmarshalWithConf("", &cfg, unmarshalConf); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to unmarshal configuration")
	}

	if err := validate(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func validate(cfg *Config) error {
	cfg.Output.Format = strings.ToLower(cfg.Output.Format)
	if !slices.Contains(OutputFormats, cfg.Output.Format) {
		return errors.Newf(errors.ErrConfigParse, "output.format must be one of %s, got %q",
			strings.Join(OutputFormats, ", "), cfg.Output.Format)
	}
	if cfg.Log.Verbosity < 0 {
		return errors.Newf(errors.ErrConfigParse, "log.verbosity must not be negative, got %d", cfg.Log.Verbosity)
	}
	if strings.Contains(cfg.Naming.CollectionPrefix, scene.NameSeparator) {
		return errors.Newf(errors.ErrConfigParse, "naming.collection_prefix must not contain %q, got %q",
			scene.NameSeparator, cfg.Naming.CollectionPrefix)
	}
	if cfg.Scene.DefaultFile == "" {
		cfg.Scene.DefaultFile = paths.DefaultDocument()
	}
	cfg.Scene.DefaultFile = paths.ExpandHome(cfg.Scene.DefaultFile)
	return nil
}
