package config

import (
	"path/filepath"
	"strings"

	"github.com/rotisserie/eris"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Config holds the full application configuration.
type Config struct {
	Server ServerConfig `yaml:"server" mapstructure:"server"`
	Data   DataConfig   `yaml:"data" mapstructure:"data"`
	Store  StoreConfig  `yaml:"store" mapstructure:"store"`
	CORS   CORSConfig   `yaml:"cors" mapstructure:"cors"`
	Log    LogConfig    `yaml:"log" mapstructure:"log"`
}

// ServerConfig configures the HTTP server.
type ServerConfig struct {
	Port int `yaml:"port" mapstructure:"port"`
}

// DataConfig locates the flat-file data layout on disk.
type DataConfig struct {
	Dir          string `yaml:"dir" mapstructure:"dir"`
	CommentsFile string `yaml:"comments_file" mapstructure:"comments_file"`
	UsersFile    string `yaml:"users_file" mapstructure:"users_file"`
	GeoJSONDir   string `yaml:"geojson_dir" mapstructure:"geojson_dir"`
	ActiveFile   string `yaml:"active_file" mapstructure:"active_file"`
}

// CommentsPath returns the path of the comment log file.
func (d DataConfig) CommentsPath() string {
	return filepath.Join(d.Dir, d.CommentsFile)
}

// UsersPath returns the path of the user credential file.
func (d DataConfig) UsersPath() string {
	return filepath.Join(d.Dir, d.UsersFile)
}

// GeoJSONPath returns the path of the GeoJSON catalog directory.
func (d DataConfig) GeoJSONPath() string {
	return filepath.Join(d.Dir, d.GeoJSONDir)
}

// ActivePath returns the path of the active-dataset pointer file.
func (d DataConfig) ActivePath() string {
	return filepath.Join(d.Dir, d.ActiveFile)
}

// StoreConfig configures the comment store backend.
type StoreConfig struct {
	Driver     string `yaml:"driver" mapstructure:"driver"`
	SQLitePath string `yaml:"sqlite_path" mapstructure:"sqlite_path"`
}

// CORSConfig configures cross-origin access to the API.
type CORSConfig struct {
	AllowedOrigins []string `yaml:"allowed_origins" mapstructure:"allowed_origins"`
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
	v.SetEnvPrefix("PROJECTMAP")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Defaults
	v.SetDefault("server.port", 3001)
	v.SetDefault("data.dir", "./data")
	v.SetDefault("data.comments_file", "comments.json")
	v.SetDefault("data.users_file", "users.json")
	v.SetDefault("data.geojson_dir", "geojson")
	v.SetDefault("data.active_file", "active_geojson.txt")
	v.SetDefault("store.driver", "file")
	v.SetDefault("store.sqlite_path", "projectmap.db")
	v.SetDefault("cors.allowed_origins", []string{"*"})
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
