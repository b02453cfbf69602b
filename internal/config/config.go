package config

import (
	"errors"
	"io"
	"log/slog"
	"net"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/viper"

	tterrors "github.com/vango-dev/tooltip/internal/errors"
	"github.com/vango-dev/tooltip/pkg/tooltip"
)

const (
	// ConfigName is the base name of the configuration file.
	ConfigName = "tooltip"

	// EnvPrefix prefixes environment overrides.
	EnvPrefix = "tooltip"

	// DefaultPort is the default preview server port.
	DefaultPort = 7070

	// DefaultHost is the default preview server host.
	DefaultHost = "localhost"

	// DefaultSnapshotDir is where snapshots go when no bucket is set.
	DefaultSnapshotDir = "snapshots"
)

// Config is the complete project configuration.
type Config struct {
	// Tooltip overlays the tooltip's default config.
	Tooltip tooltip.Config `mapstructure:"tooltip"`

	// Strict returns malformed content errors instead of rendering an
	// empty tooltip.
	Strict bool `mapstructure:"strict"`

	Log      LogConfig      `mapstructure:"log"`
	Preview  PreviewConfig  `mapstructure:"preview"`
	Snapshot SnapshotConfig `mapstructure:"snapshot"`

	// configPath stores the path the config was loaded from.
	configPath string
}

// LogConfig configures the process logger.
type LogConfig struct {
	// Level is one of debug, info, warn, error.
	Level string `mapstructure:"level"`

	// Format is text or json.
	Format string `mapstructure:"format"`
}

// PreviewConfig configures the preview server.
type PreviewConfig struct {
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port"`

	// History is the number of live-update frames kept for reconnecting
	// clients.
	History int `mapstructure:"history"`
}

// SnapshotConfig configures where the preview server publishes snapshots.
type SnapshotConfig struct {
	Dir       string `mapstructure:"dir"`
	Bucket    string `mapstructure:"bucket"`
	Prefix    string `mapstructure:"prefix"`
	Region    string `mapstructure:"region"`
	Endpoint  string `mapstructure:"endpoint"`
	PathStyle bool   `mapstructure:"pathStyle"`
}

// New returns the default configuration.
func New() *Config {
	return &Config{
		Tooltip: tooltip.DefaultConfig(),
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
		Preview: PreviewConfig{
			Host:    DefaultHost,
			Port:    DefaultPort,
			History: 64,
		},
		Snapshot: SnapshotConfig{
			Dir: DefaultSnapshotDir,
		},
	}
}

// defaults flattens New() into viper keys. Every key that may come from
// the environment must have a default.
func defaults() map[string]any {
	d := New()
	return map[string]any{
		"tooltip.classPrefix":       d.Tooltip.ClassPrefix,
		"tooltip.iconContainerSize": d.Tooltip.IconContainerSize,
		"tooltip.rowMargin":         d.Tooltip.RowMargin,
		"tooltip.spacing":           d.Tooltip.Spacing,
		"tooltip.separator":         d.Tooltip.Separator,
		"strict":                    d.Strict,
		"log.level":                 d.Log.Level,
		"log.format":                d.Log.Format,
		"preview.host":              d.Preview.Host,
		"preview.port":              d.Preview.Port,
		"preview.history":           d.Preview.History,
		"snapshot.dir":              d.Snapshot.Dir,
		"snapshot.bucket":           d.Snapshot.Bucket,
		"snapshot.prefix":           d.Snapshot.Prefix,
		"snapshot.region":           d.Snapshot.Region,
		"snapshot.endpoint":         d.Snapshot.Endpoint,
		"snapshot.pathStyle":        d.Snapshot.PathStyle,
	}
}

// NewViper returns a viper instance with defaults and environment
// bindings. When path is empty, tooltip.yaml is searched for in the
// working directory.
func NewViper(path string) *viper.Viper {
	v := viper.New()
	for key, value := range defaults() {
		v.SetDefault(key, value)
	}
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName(ConfigName)
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()
	return v
}

// Load reads the configuration. An explicit path must exist; without one
// a missing tooltip.yaml means defaults plus environment.
func Load(path string) (*Config, error) {
	v := NewViper(path)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		switch {
		case path == "" && errors.As(err, &notFound):
		case path != "" && errors.Is(err, os.ErrNotExist):
			return nil, tterrors.New("T011").
				WithDetailf("no config file at %s", path).
				WithSuggestion("Check the --config path or remove the flag to use defaults")
		default:
			return nil, tterrors.New("T011").Wrap(err)
		}
	}

	cfg := New()
	if err := v.Unmarshal(cfg); err != nil {
		return nil, tterrors.New("T011").WithDetail("config values have the wrong type").Wrap(err)
	}
	cfg.configPath = v.ConfigFileUsed()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks that the configuration is usable.
func (c *Config) Validate() error {
	if err := c.Tooltip.Validate(); err != nil {
		return tterrors.New("T010").WithDetail("tooltip: " + err.Error())
	}
	if c.Preview.Port < 0 || c.Preview.Port > 65535 {
		return tterrors.New("T010").
			WithDetailf("preview.port must be between 0 and 65535, got %d", c.Preview.Port)
	}
	if _, err := parseLevel(c.Log.Level); err != nil {
		return tterrors.New("T010").WithDetail(err.Error()).
			WithSuggestion("Use one of: debug, info, warn, error")
	}
	switch c.Log.Format {
	case "text", "json":
	default:
		return tterrors.New("T010").WithDetailf("log.format must be text or json, got %q", c.Log.Format)
	}
	return nil
}

// Path returns the file the config was loaded from, if any.
func (c *Config) Path() string {
	return c.configPath
}

// PreviewAddress returns host:port for the preview server.
func (c *Config) PreviewAddress() string {
	return net.JoinHostPort(c.Preview.Host, strconv.Itoa(c.Preview.Port))
}

// PreviewURL returns the preview server's base URL.
func (c *Config) PreviewURL() string {
	return "http://" + c.PreviewAddress()
}

// SnapshotTarget returns the destination URI for a snapshot named name:
// s3://bucket/prefix/name when a bucket is configured, dir/name otherwise.
func (c *Config) SnapshotTarget(name string) string {
	if c.Snapshot.Bucket != "" {
		key := name
		if p := strings.Trim(c.Snapshot.Prefix, "/"); p != "" {
			key = p + "/" + name
		}
		return "s3://" + c.Snapshot.Bucket + "/" + key
	}
	return strings.TrimRight(c.Snapshot.Dir, "/") + "/" + name
}

// NewLogger builds the process logger described by the log section.
func (c *Config) NewLogger(w io.Writer) *slog.Logger {
	level, err := parseLevel(c.Log.Level)
	if err != nil {
		level = slog.LevelInfo
	}
	opts := &slog.HandlerOptions{Level: level}
	if c.Log.Format == "json" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

func parseLevel(s string) (slog.Level, error) {
	var level slog.Level
	err := level.UnmarshalText([]byte(s))
	return level, err
}
