package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	Database DatabaseConfig
	Log      LogConfig
	UI       UIConfig
}

// DatabaseConfig holds sqlite settings.
type DatabaseConfig struct {
	Path string
}

// LogConfig holds logging settings. The TUI owns the terminal, so logs go to
// a file.
type LogConfig struct {
	Path  string
	Level string
}

// UIConfig holds presentation settings.
type UIConfig struct {
	Featured    []string `mapstructure:"featured"`
	RowsPerPage int      `mapstructure:"rows_per_page"`
}

// DefaultFeatured is the featured-framework list used when the config file
// does not override it.
var DefaultFeatured = []string{
	"SWOT Analysis",
	"Business Model Canvas",
	"Porter's Five Forces",
	"Design Thinking",
	"Lean Management",
}

// Load reads configuration from file and env. Env var overrides use prefix
// STRATDECK_.
func Load() (Config, error) {
	v := viper.New()

	dataDir := filepath.Join(os.Getenv("HOME"), ".local", "share", "stratdeck")
	v.SetDefault("database.path", filepath.Join(dataDir, "catalog.db"))
	v.SetDefault("log.path", filepath.Join(dataDir, "stratdeck.log"))
	v.SetDefault("log.level", "info")
	v.SetDefault("ui.featured", DefaultFeatured)
	v.SetDefault("ui.rows_per_page", 12)

	v.SetConfigType("toml")

	cfgPath := os.Getenv("STRATDECK_CONFIG")
	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else {
		v.AddConfigPath(filepath.Join(os.Getenv("HOME"), ".config", "stratdeck"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("STRATDECK")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// read config file if present
	_ = v.ReadInConfig()

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	if c.UI.RowsPerPage < 5 {
		c.UI.RowsPerPage = 5
	}
	return c, nil
}
