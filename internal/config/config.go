package config

import (
	"encoding/json"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/vango-dev/vsel/internal/errors"
)

const (
	// ConfigFileName is the name of the configuration file.
	ConfigFileName = "vsel.json"

	// DefaultAddr is the default listen address for vsel serve.
	DefaultAddr = ":8080"

	// DefaultMaxBodyBytes limits request bodies and loaded documents.
	DefaultMaxBodyBytes = 4 << 20

	// DefaultNamespace is the default Prometheus namespace.
	DefaultNamespace = "vsel"

	// DefaultTracerName is the default OpenTelemetry tracer name.
	DefaultTracerName = "github.com/vango-dev/vsel"
)

// Config represents the complete vsel.json configuration.
type Config struct {
	// Server contains HTTP service configuration.
	Server ServerConfig `json:"server,omitempty"`

	// Metrics contains Prometheus collector configuration.
	Metrics MetricsConfig `json:"metrics,omitempty"`

	// Tracing contains OpenTelemetry configuration.
	Tracing TracingConfig `json:"tracing,omitempty"`

	// S3 contains settings for s3:// document sources.
	S3 S3Config `json:"s3,omitempty"`

	// Log contains logger configuration.
	Log LogConfig `json:"log,omitempty"`

	// configPath stores the path where the config was loaded from.
	configPath string
}

// ServerConfig contains HTTP service settings.
type ServerConfig struct {
	// Addr is the listen address (e.g., ":8080").
	Addr string `json:"addr,omitempty"`

	// ReadTimeout is the request read timeout (e.g., "10s").
	ReadTimeout string `json:"readTimeout,omitempty"`

	// WriteTimeout is the response write timeout (e.g., "30s").
	WriteTimeout string `json:"writeTimeout,omitempty"`

	// MaxBodyBytes limits the size of request bodies.
	MaxBodyBytes int64 `json:"maxBodyBytes,omitempty"`
}

// MetricsConfig contains Prometheus settings.
type MetricsConfig struct {
	// Namespace prefixes every metric name.
	Namespace string `json:"namespace,omitempty"`

	// Subsystem is inserted between namespace and metric name.
	Subsystem string `json:"subsystem,omitempty"`
}

// TracingConfig contains OpenTelemetry settings.
type TracingConfig struct {
	// TracerName is passed to otel.Tracer.
	TracerName string `json:"tracerName,omitempty"`
}

// S3Config contains S3 client settings.
type S3Config struct {
	// Region is the AWS region. Falls back to AWS_REGION.
	Region string `json:"region,omitempty"`

	// Endpoint overrides the S3 endpoint, for S3-compatible stores.
	Endpoint string `json:"endpoint,omitempty"`

	// PathStyle forces path-style bucket addressing.
	PathStyle bool `json:"pathStyle,omitempty"`
}

// LogConfig contains logger settings.
type LogConfig struct {
	// Level is one of debug, info, warn, error.
	Level string `json:"level,omitempty"`

	// Format is "text" or "json".
	Format string `json:"format,omitempty"`
}

// New creates a new Config with default values.
func New() *Config {
	return &Config{
		Server: ServerConfig{
			Addr:         DefaultAddr,
			ReadTimeout:  "10s",
			WriteTimeout: "30s",
			MaxBodyBytes: DefaultMaxBodyBytes,
		},
		Metrics: MetricsConfig{
			Namespace: DefaultNamespace,
		},
		Tracing: TracingConfig{
			TracerName: DefaultTracerName,
		},
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

// Load reads configuration from the specified directory.
// It looks for vsel.json in the directory.
func Load(dir string) (*Config, error) {
	configPath := filepath.Join(dir, ConfigFileName)
	return LoadFile(configPath)
}

// LoadFile reads configuration from the specified file path.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.New("E121").
				WithDetail("No vsel.json found in " + filepath.Dir(path)).
				WithSuggestion("Create vsel.json or run without --config to use defaults")
		}
		return nil, errors.New("E120").Wrap(err)
	}

	cfg := New()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, errors.New("E120").
			WithDetail("Failed to parse vsel.json: " + err.Error()).
			WithSuggestion("Check that vsel.json is valid JSON")
	}

	cfg.configPath = path
	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save writes the configuration to the file it was loaded from.
func (c *Config) Save() error {
	if c.configPath == "" {
		return errors.Newf(errors.CategoryConfig, "no config path set")
	}
	return c.SaveTo(c.configPath)
}

// SaveTo writes the configuration to the specified path.
func (c *Config) SaveTo(path string) error {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return errors.New("E120").Wrap(err)
	}

	data = append(data, '\n')

	if err := os.WriteFile(path, data, 0644); err != nil {
		return errors.New("E120").Wrap(err)
	}

	c.configPath = path
	return nil
}

// Path returns the path where the config was loaded from.
func (c *Config) Path() string {
	return c.configPath
}

// applyDefaults fills in default values for empty fields.
func (c *Config) applyDefaults() {
	if c.Server.Addr == "" {
		c.Server.Addr = DefaultAddr
	}
	if c.Server.ReadTimeout == "" {
		c.Server.ReadTimeout = "10s"
	}
	if c.Server.WriteTimeout == "" {
		c.Server.WriteTimeout = "30s"
	}
	if c.Server.MaxBodyBytes == 0 {
		c.Server.MaxBodyBytes = DefaultMaxBodyBytes
	}
	if c.Metrics.Namespace == "" {
		c.Metrics.Namespace = DefaultNamespace
	}
	if c.Tracing.TracerName == "" {
		c.Tracing.TracerName = DefaultTracerName
	}
	if c.S3.Region == "" {
		c.S3.Region = os.Getenv("AWS_REGION")
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if c.Log.Format == "" {
		c.Log.Format = "text"
	}
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.Server.MaxBodyBytes < 0 {
		return errors.New("E122").
			WithDetail("server.maxBodyBytes must not be negative")
	}
	for name, value := range map[string]string{
		"server.readTimeout":  c.Server.ReadTimeout,
		"server.writeTimeout": c.Server.WriteTimeout,
	} {
		if value == "" {
			continue
		}
		if d, err := time.ParseDuration(value); err != nil || d < 0 {
			return errors.New("E122").
				WithDetail(name + " must be a duration such as \"10s\", got " + `"` + value + `"`)
		}
	}
	if _, ok := parseLevel(c.Log.Level); !ok {
		return errors.New("E122").
			WithDetail("log.level must be one of debug, info, warn, error").
			WithSuggestion(`Set "level": "info"`)
	}
	switch c.Log.Format {
	case "", "text", "json":
	default:
		return errors.New("E122").
			WithDetail(`log.format must be "text" or "json"`)
	}
	return nil
}

// ReadTimeout returns the parsed server read timeout, or zero.
func (c *Config) ReadTimeout() time.Duration {
	d, _ := time.ParseDuration(c.Server.ReadTimeout)
	return d
}

// WriteTimeout returns the parsed server write timeout, or zero.
func (c *Config) WriteTimeout() time.Duration {
	d, _ := time.ParseDuration(c.Server.WriteTimeout)
	return d
}

// LogLevel returns the configured slog level, defaulting to Info.
func (c *Config) LogLevel() slog.Level {
	level, _ := parseLevel(c.Log.Level)
	return level
}

// Logger builds a slog.Logger writing to w with the configured level and
// format.
func (c *Config) Logger(w io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{Level: c.LogLevel()}
	if c.Log.Format == "json" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

func parseLevel(s string) (slog.Level, bool) {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug, true
	case "", "info":
		return slog.LevelInfo, true
	case "warn", "warning":
		return slog.LevelWarn, true
	case "error":
		return slog.LevelError, true
	default:
		return slog.LevelInfo, false
	}
}

// Exists checks if a config file exists in the given directory.
func Exists(dir string) bool {
	path := filepath.Join(dir, ConfigFileName)
	_, err := os.Stat(path)
	return err == nil
}

// LoadOrDefault loads vsel.json from dir when present and returns the
// defaults otherwise. An empty dir means the working directory.
func LoadOrDefault(dir string) (*Config, error) {
	if dir == "" {
		dir = "."
	}
	if !Exists(dir) {
		cfg := New()
		cfg.applyDefaults()
		return cfg, nil
	}
	return Load(dir)
}
