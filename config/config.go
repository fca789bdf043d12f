package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment Configuration
	Environment EnvironmentConfig

	// Server Configuration
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// Analytics backend
	Backend BackendConfig

	// Redis - Backend response cache (optional)
	Redis RedisConfig

	// Kafka - Derived alert stream (optional)
	Kafka KafkaConfig

	// Alert derivation thresholds
	Alerts AlertsConfig

	// Realtime alert push
	Realtime RealtimeConfig

	// Application state defaults
	App AppConfig
}

// EnvironmentConfig is the configuration for the deployment environment.
type EnvironmentConfig struct {
	Name string
}

// HTTPServerConfig is the configuration for the HTTP server
type HTTPServerConfig struct {
	Host string
	Port int
	Mode string

	// CORSOrigins are always allowed. Outside production localhost and private subnets are too.
	CORSOrigins []string
}

// LoggerConfig is the configuration for the logger
type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool

	FilePath   string
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
}

// BackendConfig selects between the remote analytics backend and generated data.
type BackendConfig struct {
	BaseURL   string
	UseMock   bool
	Timeout   time.Duration
	Retries   int
	RetryWait time.Duration
}

// RedisConfig is the configuration for Redis
type RedisConfig struct {
	Enabled  bool
	Host     string
	Port     int
	Password string
	DB       int
	CacheTTL time.Duration
}

// KafkaConfig is the configuration for Kafka
type KafkaConfig struct {
	Enabled bool
	Brokers []string
	Topic   string
}

// AlertsConfig holds the mention thresholds used to derive alerts from backend data.
type AlertsConfig struct {
	NegativeSpikeThreshold int
	VolumeThreshold        int
}

// RealtimeConfig configures the alert websocket stream.
type RealtimeConfig struct {
	Interval time.Duration
}

// AppConfig holds application-state defaults.
type AppConfig struct {
	DefaultBrand string
}

// Load loads configuration using Viper. A .env file in the working directory is read first if present.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("error reading .env file: %w", err)
	}

	v := viper.New()

	// Set config file name and paths
	v.SetConfigName("insight-config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./config")
	v.AddConfigPath(".")
	v.AddConfigPath("/etc/insight/")

	// Enable environment variable override
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults(v)

	// Read config file (optional - will use env vars if file not found)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = v.GetString("environment.name")
	cfg.HTTPServer.Host = v.GetString("http_server.host")
	cfg.HTTPServer.Port = v.GetInt("http_server.port")
	cfg.HTTPServer.Mode = v.GetString("http_server.mode")
	cfg.HTTPServer.CORSOrigins = v.GetStringSlice("http_server.cors_origins")

	// Logger
	cfg.Logger.Level = v.GetString("logger.level")
	cfg.Logger.Mode = v.GetString("logger.mode")
	cfg.Logger.Encoding = v.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = v.GetBool("logger.color_enabled")
	cfg.Logger.FilePath = v.GetString("logger.file_path")
	cfg.Logger.MaxSizeMB = v.GetInt("logger.max_size_mb")
	cfg.Logger.MaxBackups = v.GetInt("logger.max_backups")
	cfg.Logger.MaxAgeDays = v.GetInt("logger.max_age_days")

	// Backend
	cfg.Backend.BaseURL = strings.TrimRight(v.GetString("backend.base_url"), "/")
	cfg.Backend.UseMock = v.GetBool("backend.use_mock")
	cfg.Backend.Timeout = v.GetDuration("backend.timeout")
	cfg.Backend.Retries = v.GetInt("backend.retries")
	cfg.Backend.RetryWait = v.GetDuration("backend.retry_wait")

	// Redis
	cfg.Redis.Enabled = v.GetBool("redis.enabled")
	cfg.Redis.Host = v.GetString("redis.host")
	cfg.Redis.Port = v.GetInt("redis.port")
	cfg.Redis.Password = v.GetString("redis.password")
	cfg.Redis.DB = v.GetInt("redis.db")
	cfg.Redis.CacheTTL = v.GetDuration("redis.cache_ttl")

	// Kafka
	cfg.Kafka.Enabled = v.GetBool("kafka.enabled")
	cfg.Kafka.Brokers = v.GetStringSlice("kafka.brokers")
	cfg.Kafka.Topic = v.GetString("kafka.topic")

	// Alerts
	cfg.Alerts.NegativeSpikeThreshold = v.GetInt("alerts.negative_spike_threshold")
	cfg.Alerts.VolumeThreshold = v.GetInt("alerts.volume_threshold")

	cfg.Realtime.Interval = v.GetDuration("realtime.interval")
	cfg.App.DefaultBrand = v.GetString("app.default_brand")

	if err := validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	// Environment
	v.SetDefault("environment.name", "development")

	// HTTP Server
	v.SetDefault("http_server.host", "")
	v.SetDefault("http_server.port", 8080)
	v.SetDefault("http_server.mode", "debug")
	v.SetDefault("http_server.cors_origins", []string{})

	// Logger
	v.SetDefault("logger.level", "debug")
	v.SetDefault("logger.mode", "debug")
	v.SetDefault("logger.encoding", "console")
	v.SetDefault("logger.color_enabled", true)
	v.SetDefault("logger.file_path", "")

	// Backend
	v.SetDefault("backend.base_url", "http://localhost:8000")
	v.SetDefault("backend.use_mock", false)
	v.SetDefault("backend.timeout", "10s")
	v.SetDefault("backend.retries", 1)
	v.SetDefault("backend.retry_wait", "500ms")

	// Redis
	v.SetDefault("redis.enabled", false)
	v.SetDefault("redis.host", "localhost")
	v.SetDefault("redis.port", 6379)
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("redis.cache_ttl", "60s")

	// Kafka
	v.SetDefault("kafka.enabled", false)
	v.SetDefault("kafka.brokers", []string{"localhost:9092"})
	v.SetDefault("kafka.topic", "insight.alerts.derived")

	// Alerts
	v.SetDefault("alerts.negative_spike_threshold", 5)
	v.SetDefault("alerts.volume_threshold", 50)

	v.SetDefault("realtime.interval", "30s")
	v.SetDefault("app.default_brand", "TechStart Inc")
}

func validate(cfg *Config) error {
	if cfg.HTTPServer.Port <= 0 || cfg.HTTPServer.Port > 65535 {
		return fmt.Errorf("http_server.port must be between 1 and 65535")
	}

	if !cfg.Backend.UseMock && cfg.Backend.BaseURL == "" {
		return fmt.Errorf("backend.base_url is required unless backend.use_mock is set")
	}
	if cfg.Backend.Timeout <= 0 {
		return fmt.Errorf("backend.timeout must be greater than 0")
	}
	if cfg.Backend.Retries < 0 {
		return fmt.Errorf("backend.retries must not be negative")
	}

	if cfg.Redis.Enabled {
		if cfg.Redis.Host == "" {
			return fmt.Errorf("redis.host is required")
		}
		if cfg.Redis.Port == 0 {
			return fmt.Errorf("redis.port is required")
		}
	}

	if cfg.Kafka.Enabled {
		if len(cfg.Kafka.Brokers) == 0 {
			return fmt.Errorf("kafka.brokers must have at least one value")
		}
		if cfg.Kafka.Topic == "" {
			return fmt.Errorf("kafka.topic is required")
		}
	}

	if cfg.Alerts.NegativeSpikeThreshold < 0 || cfg.Alerts.VolumeThreshold < 0 {
		return fmt.Errorf("alerts thresholds must not be negative")
	}
	if cfg.Realtime.Interval <= 0 {
		return fmt.Errorf("realtime.interval must be greater than 0")
	}
	if cfg.App.DefaultBrand == "" {
		return fmt.Errorf("app.default_brand is required")
	}

	return nil
}
