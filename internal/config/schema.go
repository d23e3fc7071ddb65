package config

// Config is the top-level libcat configuration.
type Config struct {
	Catalog CatalogConfig `mapstructure:"catalog" yaml:"catalog"`
	Log     LogConfig     `mapstructure:"log" yaml:"log"`
}

// CatalogConfig locates the storage file.
type CatalogConfig struct {
	Path string `mapstructure:"path" yaml:"path"`
}

// LogConfig controls diagnostic logging on stderr.
type LogConfig struct {
	Level  string `mapstructure:"level" yaml:"level"`   // debug, info, warn, error
	Format string `mapstructure:"format" yaml:"format"` // "console" or "json"
}

// EffectiveCatalogPath returns the configured storage path or the default.
func (c *Config) EffectiveCatalogPath() string {
	if c.Catalog.Path != "" {
		return c.Catalog.Path
	}
	return DefaultCatalogPath
}
