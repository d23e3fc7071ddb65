package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/blackwell-systems/libcat/internal/util"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// DefaultCatalogPath is used when no catalog path is configured.
const DefaultCatalogPath = "library.txt"

// DefaultPath returns the default config file path.
func DefaultPath() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "libcat", "config.yml")
}

// ResolvePath picks the config file: explicit path, then $LIBCAT_CONFIG,
// then the default location.
func ResolvePath(explicit string) string {
	if explicit != "" {
		return explicit
	}
	if p := os.Getenv("LIBCAT_CONFIG"); p != "" {
		return p
	}
	return DefaultPath()
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Catalog: CatalogConfig{Path: DefaultCatalogPath},
		Log:     LogConfig{Level: "warn", Format: "console"},
	}
}

// Load reads the config from disk and the environment. A missing config
// file is not an error; defaults apply.
func Load(path string) (*Config, error) {
	v := viper.New()

	def := Default()
	v.SetDefault("catalog.path", def.Catalog.Path)
	v.SetDefault("log.level", def.Log.Level)
	v.SetDefault("log.format", def.Log.Format)

	v.SetEnvPrefix("LIBCAT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetConfigFile(ResolvePath(path))
	v.SetConfigType("yaml")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.Is(err, os.ErrNotExist) && !errors.As(err, &notFound) {
			return nil, fmt.Errorf("reading config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	cfg.Catalog.Path = util.ExpandHome(cfg.Catalog.Path)
	return &cfg, nil
}

// Save writes the config as YAML to path, creating parent directories.
func Save(path string, cfg *Config) error {
	if err := util.EnsureDir(filepath.Dir(path)); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	enc := yaml.NewEncoder(f)
	enc.SetIndent(2)
	if err := enc.Encode(cfg); err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	return f.Close()
}
