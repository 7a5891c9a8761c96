// Package config is for app wide settings that are unmarshalled
// from Viper (see: /cmd)
package config

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to environment overrides, e.g. SEQANALYSER_SERVER_PORT.
const EnvPrefix = "SEQANALYSER"

// ServerConfig is settings for the HTTP server
type ServerConfig struct {
	Host         string        `mapstructure:"host"`
	Port         int           `mapstructure:"port"`
	ReadTimeout  time.Duration `mapstructure:"read-timeout"`
	WriteTimeout time.Duration `mapstructure:"write-timeout"`
	IdleTimeout  time.Duration `mapstructure:"idle-timeout"`
}

// Addr is the host:port the server binds to.
func (s ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// LogConfig is settings for logging
type LogConfig struct {
	// one of debug, info, warn, error
	Level string `mapstructure:"level"`
}

// UploadConfig is settings for uploaded files
type UploadConfig struct {
	// largest accepted upload body
	MaxBytes int64 `mapstructure:"max-bytes"`
}

// ParserConfig is settings for format dispatch
type ParserConfig struct {
	// send every non-CSV file name to the FASTA reader
	LegacyDispatch bool `mapstructure:"legacy-dispatch"`
}

// AnalysisConfig is settings for the per-sequence analyses
type AnalysisConfig struct {
	// width of the GC window scan
	WindowWidth int `mapstructure:"window-width"`
}

// SessionConfig is settings for the server's session store
type SessionConfig struct {
	// idle time after which a session is dropped, 0 keeps sessions forever
	TTL time.Duration `mapstructure:"ttl"`

	// most sessions kept at once, 0 means no limit
	MaxSessions int `mapstructure:"max"`
}

// Config is the root-level settings struct and is a mix
// of settings available in a config file, the environment,
// and those available from the command line
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Log      LogConfig      `mapstructure:"log"`
	Upload   UploadConfig   `mapstructure:"upload"`
	Parser   ParserConfig   `mapstructure:"parser"`
	Analysis AnalysisConfig `mapstructure:"analysis"`
	Session  SessionConfig  `mapstructure:"session"`
}

// SetDefaults registers every key with its default value.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("server.host", "localhost")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.read-timeout", 15*time.Second)
	v.SetDefault("server.write-timeout", 15*time.Second)
	v.SetDefault("server.idle-timeout", 60*time.Second)
	v.SetDefault("log.level", "info")
	v.SetDefault("upload.max-bytes", int64(32<<20))
	v.SetDefault("parser.legacy-dispatch", false)
	v.SetDefault("analysis.window-width", 10)
	v.SetDefault("session.ttl", 30*time.Minute)
	v.SetDefault("session.max", 1000)
}

// New returns a viper instance with defaults and environment overrides.
func New() *viper.Viper {
	v := viper.New()
	SetDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()
	return v
}

// Load reads the optional config file at path into v and decodes the result.
func Load(v *viper.Viper, path string) (*Config, error) {
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading config %s: %w", path, err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("decoding config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

// Validate checks values that would make the server unusable.
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port out of range: %d", c.Server.Port)
	}
	if c.Upload.MaxBytes <= 0 {
		return fmt.Errorf("upload.max-bytes must be positive")
	}
	if c.Analysis.WindowWidth <= 0 {
		return fmt.Errorf("analysis.window-width must be positive")
	}
	if c.Session.TTL < 0 {
		return fmt.Errorf("session.ttl must not be negative")
	}
	if c.Session.MaxSessions < 0 {
		return fmt.Errorf("session.max must not be negative")
	}
	return nil
}

// NewLogger builds a logger writing to w at the configured level. An
// unknown level falls back to info and is reported once.
func (l LogConfig) NewLogger(w io.Writer) *log.Logger {
	logger := log.NewWithOptions(w, log.Options{ReportTimestamp: true})

	switch strings.ToLower(l.Level) {
	case "debug":
		logger.SetLevel(log.DebugLevel)
	case "info", "":
		logger.SetLevel(log.InfoLevel)
	case "warn", "warning":
		logger.SetLevel(log.WarnLevel)
	case "error":
		logger.SetLevel(log.ErrorLevel)
	default:
		logger.SetLevel(log.InfoLevel)
		logger.Warn("unknown log level, defaulting to info", "provided", l.Level)
	}
	return logger
}
