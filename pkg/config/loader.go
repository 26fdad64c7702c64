package config

import (
	_ "embed"
	stderrors "errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/arthur-debert/stashdot/pkg/errors"
	"github.com/arthur-debert/stashdot/pkg/logging"
	"github.com/arthur-debert/stashdot/pkg/paths"
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// EnvPrefix marks environment variables read as configuration
const EnvPrefix = "STASHDOT_"

// RootConfigNames are looked up, in order, in the dotfiles root. The
// first one found is loaded.
var RootConfigNames = []string{".stashdot.toml", "stashdot.toml"}

//go:embed embedded/defaults.toml
var defaultConfig []byte

// DefaultContent returns the embedded defaults file
func DefaultContent() string {
	return string(defaultConfig)
}

type rawBytesProvider struct{ bytes []byte }

func (r *rawBytesProvider) ReadBytes() ([]byte, error) { return r.bytes, nil }
func (r *rawBytesProvider) Read() (map[string]interface{}, error) {
	return nil, stderrors.New("not implemented")
}

// LoadOptions selects the optional configuration layers
type LoadOptions struct {
	// SourceRoot is searched for RootConfigNames; empty skips the layer
	SourceRoot string
	// File is an explicit configuration file; it must exist when set
	File string
}

// Load builds the effective configuration from all layers and validates it
func Load(opts LoadOptions) (*Config, error) {
	logger := logging.GetLogger("config")
	k := koanf.New(".")

	// 1. Embedded defaults
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to parse built-in defaults")
	}

	// 2. Root config in the dotfiles directory
	if opts.SourceRoot != "" {
		if path, ok := findRootConfig(opts.SourceRoot); ok {
			if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
				return nil, errors.Wrapf(err, errors.ErrConfigParse, "failed to load root config from %s", path)
			}
			logger.Debug().Str("path", path).Msg("Loaded root config")
		}
	}

	// 3. Explicit file
	if opts.File != "" {
		path, err := paths.Resolve(opts.File)
		if err != nil {
			return nil, err
		}
		if _, err := os.Stat(path); err != nil {
			return nil, errors.Wrapf(err, errors.ErrConfigLoad, "cannot read config file %s", path)
		}
		if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
			return nil, errors.Wrapf(err, errors.ErrConfigParse, "failed to load config from %s", path)
		}
		logger.Debug().Str("path", path).Msg("Loaded config file")
	}

	// 4. Env vars
	err := k.Load(env.ProviderWithValue(EnvPrefix, ".", envKeyValue), nil)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load environment variables")
	}

	// 5. Unmarshal
	var cfg Config
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToSliceHookFunc(","),
			),
		},
	}
	if err := k.UnmarshalWithConf("", &cfg, unmarshalConf); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to unmarshal configuration")
	}

	postProcess(&cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// envKeyValue maps STASHDOT_LINK__COMMAND to link.command. Empty
// variables and those that configure something other than the config
// tree are skipped.
func envKeyValue(name, value string) (string, interface{}) {
	if name == paths.EnvStateDir || value == "" {
		return "", nil
	}
	key := strings.ToLower(strings.TrimPrefix(name, EnvPrefix))
	return strings.ReplaceAll(key, "__", "."), value
}

func findRootConfig(sourceRoot string) (string, bool) {
	for _, name := range RootConfigNames {
		path := filepath.Join(sourceRoot, name)
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			return path, true
		}
	}
	return "", false
}

func postProcess(cfg *Config) {
	packages := make([]string, 0, len(cfg.Packages))
	for _, p := range cfg.Packages {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		packages = append(packages, paths.NormalizePackageName(p))
	}
	cfg.Packages = packages
}
