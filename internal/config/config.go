package config

import (
	"strings"

	"github.com/rotisserie/eris"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/sells-group/stemmap/internal/dataset"
)

// Config holds the full application configuration.
type Config struct {
	Dataset   DatasetConfig   `yaml:"dataset" mapstructure:"dataset"`
	Regions   RegionsConfig   `yaml:"regions" mapstructure:"regions"`
	Declutter DeclutterConfig `yaml:"declutter" mapstructure:"declutter"`
	Cache     CacheConfig     `yaml:"cache" mapstructure:"cache"`
	Fetch     FetchConfig     `yaml:"fetch" mapstructure:"fetch"`
	Server    ServerConfig    `yaml:"server" mapstructure:"server"`
	Log       LogConfig       `yaml:"log" mapstructure:"log"`
}

// DatasetConfig locates and parses the records file.
type DatasetConfig struct {
	Source    string   `yaml:"source" mapstructure:"source"`
	Format    string   `yaml:"format" mapstructure:"format"`
	Sheet     string   `yaml:"sheet" mapstructure:"sheet"`
	Delimiter string   `yaml:"delimiter" mapstructure:"delimiter"`
	Encoding  string   `yaml:"encoding" mapstructure:"encoding"`
	Palette   []string `yaml:"palette" mapstructure:"palette"`
}

// RegionsConfig points at an optional region registry file. Empty uses the
// built-in Bolivia regions.
type RegionsConfig struct {
	Path string `yaml:"path" mapstructure:"path"`
}

// DeclutterConfig tunes marker spreading.
type DeclutterConfig struct {
	CoarseFactor  float64 `yaml:"coarse_factor" mapstructure:"coarse_factor"`
	FineFactor    float64 `yaml:"fine_factor" mapstructure:"fine_factor"`
	ZoomThreshold float64 `yaml:"zoom_threshold" mapstructure:"zoom_threshold"`
}

// CacheConfig sizes the category subset cache. Zero disables it.
type CacheConfig struct {
	MaxEntries int `yaml:"max_entries" mapstructure:"max_entries"`
}

// FetchConfig configures remote dataset downloads.
type FetchConfig struct {
	TimeoutSecs int     `yaml:"timeout_secs" mapstructure:"timeout_secs"`
	MaxRetries  int     `yaml:"max_retries" mapstructure:"max_retries"`
	RatePerSec  float64 `yaml:"rate_per_sec" mapstructure:"rate_per_sec"`
	UserAgent   string  `yaml:"user_agent" mapstructure:"user_agent"`
}

// ServerConfig configures the HTTP server.
type ServerConfig struct {
	Port        int      `yaml:"port" mapstructure:"port"`
	CORSOrigins []string `yaml:"cors_origins" mapstructure:"cors_origins"`
}

// LogConfig configures logging.
type LogConfig struct {
	Level  string `yaml:"level" mapstructure:"level"`
	Format string `yaml:"format" mapstructure:"format"`
}

// Load reads configuration from file and environment.
func Load() (*Config, error) {
	v := viper.New()

	// Config file
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	// Environment
	v.SetEnvPrefix("STEMMAP")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Defaults
	v.SetDefault("dataset.source", "Mujeres_STEM_Bolivia_corrected_coordinates.csv")
	v.SetDefault("dataset.format", "")
	v.SetDefault("dataset.sheet", "")
	v.SetDefault("dataset.delimiter", "")
	v.SetDefault("dataset.encoding", "")
	v.SetDefault("dataset.palette", dataset.Prism)
	v.SetDefault("regions.path", "")
	v.SetDefault("declutter.coarse_factor", 0.01)
	v.SetDefault("declutter.fine_factor", 0.001)
	v.SetDefault("declutter.zoom_threshold", 5)
	v.SetDefault("cache.max_entries", 64)
	v.SetDefault("fetch.timeout_secs", 30)
	v.SetDefault("fetch.max_retries", 3)
	v.SetDefault("fetch.rate_per_sec", 5)
	v.SetDefault("fetch.user_agent", "stemmap/1.0")
	v.SetDefault("server.port", 9090)
	v.SetDefault("server.cors_origins", []string{"*"})
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")

	// Read config file (optional)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, eris.Wrap(err, "config: read file")
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, eris.Wrap(err, "config: unmarshal")
	}

	return &cfg, nil
}

// InitLogger initializes the global zap logger.
func InitLogger(cfg LogConfig) error {
	var zapCfg zap.Config
	if cfg.Format == "console" {
		zapCfg = zap.NewDevelopmentConfig()
	} else {
		zapCfg = zap.NewProductionConfig()
	}

	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return eris.Wrap(err, "config: parse log level")
	}
	zapCfg.Level.SetLevel(level)

	logger, err := zapCfg.Build()
	if err != nil {
		return eris.Wrap(err, "config: build logger")
	}
	zap.ReplaceGlobals(logger)

	return nil
}
