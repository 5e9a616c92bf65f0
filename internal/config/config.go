package config

import (
	"errors"
	"fmt"
	"net"
	"strconv"
	"time"

	"github.com/kelseyhightower/envconfig"
	"github.com/spf13/viper"

	"github.com/jwalitptl/passmeter/pkg/logger"
)

// EnvPrefix prefixes every environment override, e.g. PASSMETER_API_PORT.
const EnvPrefix = "PASSMETER"

type Config struct {
	API       ListenConfig    `mapstructure:"api"`
	Form      ListenConfig    `mapstructure:"form"`
	Server    ServerConfig    `mapstructure:"server"`
	Log       LogConfig       `mapstructure:"log"`
	Metrics   MetricsConfig   `mapstructure:"metrics"`
	Generator GeneratorConfig `mapstructure:"generator"`
	CORS      CORSConfig      `mapstructure:"cors"`
}

type ListenConfig struct {
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port"`
}

// Addr returns host:port.
func (l ListenConfig) Addr() string {
	return net.JoinHostPort(l.Host, strconv.Itoa(l.Port))
}

type ServerConfig struct {
	ReadTimeout     time.Duration `mapstructure:"read_timeout" split_words:"true"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout" split_words:"true"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout" split_words:"true"`
	MaxBodyBytes    int64         `mapstructure:"max_body_bytes" split_words:"true"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

type MetricsConfig struct {
	Enabled   bool   `mapstructure:"enabled"`
	Path      string `mapstructure:"path"`
	Namespace string `mapstructure:"namespace"`
}

type GeneratorConfig struct {
	Length        int  `mapstructure:"length"`
	RequireStrong bool `mapstructure:"require_strong" split_words:"true"`
	MaxAttempts   int  `mapstructure:"max_attempts" split_words:"true"`
}

type CORSConfig struct {
	AllowOrigins []string `mapstructure:"allow_origins" split_words:"true"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("api.host", "127.0.0.1")
	v.SetDefault("api.port", 8000)
	v.SetDefault("form.host", "127.0.0.1")
	v.SetDefault("form.port", 8501)

	v.SetDefault("server.read_timeout", 5*time.Second)
	v.SetDefault("server.write_timeout", 10*time.Second)
	v.SetDefault("server.shutdown_timeout", 10*time.Second)
	v.SetDefault("server.max_body_bytes", 1<<20)

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", logger.FormatConsole)

	v.SetDefault("metrics.enabled", true)
	v.SetDefault("metrics.path", "/metrics")
	v.SetDefault("metrics.namespace", "passmeter")

	v.SetDefault("generator.length", 12)
	v.SetDefault("generator.require_strong", false)
	v.SetDefault("generator.max_attempts", 10)

	v.SetDefault("cors.allow_origins", []string{"*"})
}

// LoadConfig reads defaults, then an optional config file, then
// PASSMETER_* environment overrides. file may be empty, in which case
// config.yaml is searched for in . and ./config.
func LoadConfig(file string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	if file != "" {
		v.SetConfigFile(file)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if file != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := envconfig.Process(EnvPrefix, &config); err != nil {
		return nil, fmt.Errorf("failed to apply environment overrides: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

// Validate rejects configurations the servers cannot start with.
func (c *Config) Validate() error {
	for name, l := range map[string]ListenConfig{"api": c.API, "form": c.Form} {
		if l.Port < 1 || l.Port > 65535 {
			return fmt.Errorf("invalid config: %s.port %d out of range", name, l.Port)
		}
	}
	if c.Generator.Length < 1 {
		return fmt.Errorf("invalid config: generator.length must be positive, got %d", c.Generator.Length)
	}
	if c.Generator.MaxAttempts < 1 {
		return fmt.Errorf("invalid config: generator.max_attempts must be positive, got %d", c.Generator.MaxAttempts)
	}
	if c.Server.MaxBodyBytes < 1 {
		return fmt.Errorf("invalid config: server.max_body_bytes must be positive, got %d", c.Server.MaxBodyBytes)
	}
	if _, err := logger.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	if c.Log.Format != logger.FormatConsole && c.Log.Format != logger.FormatJSON {
		return fmt.Errorf("invalid config: log.format must be %q or %q, got %q",
			logger.FormatConsole, logger.FormatJSON, c.Log.Format)
	}
	return nil
}
