package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/Delfictus/neuromorphic-demo-feed/internal/synth"
)

type Config struct {
	Environment   string           `mapstructure:"environment"`
	LogLevel      string           `mapstructure:"log_level"`
	Server        ServerConfig     `mapstructure:"server"`
	Synth         SynthConfig      `mapstructure:"synth"`
	StockAPI      StockAPIConfig   `mapstructure:"stock_api"`
	MetricsAPI    MetricsConfig    `mapstructure:"metrics_api"`
	MetricsStatic MetricsConfig    `mapstructure:"metrics_static"`
	Prometheus    PrometheusConfig `mapstructure:"prometheus"`
	Telemetry     TelemetryConfig  `mapstructure:"telemetry"`
}

type ServerConfig struct {
	AllowedOrigins  []string `mapstructure:"allowed_origins"`
	ShutdownTimeout string   `mapstructure:"shutdown_timeout"`
}

// SynthConfig seeds the per-listener random sources. Seed 0 means seed from
// the clock; any other value makes every snapshot sequence reproducible.
type SynthConfig struct {
	Seed int64 `mapstructure:"seed"`
}

type StockAPIConfig struct {
	Enabled             bool   `mapstructure:"enabled"`
	Port                int    `mapstructure:"port"`
	ServiceName         string `mapstructure:"service_name"`
	DefaultHistoryHours int    `mapstructure:"default_history_hours"`
	MaxHistoryHours     int    `mapstructure:"max_history_hours"`
}

// MetricsConfig covers both JSON metrics listeners; they differ only in
// port, jitter strategy and whether the extended routes are mounted.
type MetricsConfig struct {
	Enabled     bool   `mapstructure:"enabled"`
	Port        int    `mapstructure:"port"`
	ServiceName string `mapstructure:"service_name"`
	Jitter      string `mapstructure:"jitter"`
	Extended    bool   `mapstructure:"extended"`
}

// Strategy returns the parsed jitter strategy. Validation already
// guaranteed the value parses.
func (m MetricsConfig) Strategy() synth.Strategy {
	s, _ := synth.ParseStrategy(m.Jitter)
	return s
}

type PrometheusConfig struct {
	Enabled     bool   `mapstructure:"enabled"`
	Port        int    `mapstructure:"port"`
	ServiceName string `mapstructure:"service_name"`
	Jitter      string `mapstructure:"jitter"`
}

// Strategy returns the parsed jitter strategy. Validation already
// guaranteed the value parses.
func (p PrometheusConfig) Strategy() synth.Strategy {
	s, _ := synth.ParseStrategy(p.Jitter)
	return s
}

type TelemetryConfig struct {
	TracingEnabled          bool   `mapstructure:"tracing_enabled"`
	ResourceMonitorInterval string `mapstructure:"resource_monitor_interval"`
}

func Load() (*Config, error) {
	// Load .env into the process environment first so viper sees it.
	// The file is optional.
	_ = godotenv.Load()

	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./configs")
	viper.AddConfigPath(".")

	// Set default values
	setDefaults()

	// Enable environment variable support
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	// Read config file
	if err := viper.ReadInConfig(); err != nil {
		// Config file not found, use defaults and environment variables
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, err
	}

	// Normalize environment to lowercase for consistent comparison
	config.Environment = strings.ToLower(config.Environment)

	if err := config.validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

func (c *Config) validate() error {
	if !c.StockAPI.Enabled && !c.MetricsAPI.Enabled && !c.MetricsStatic.Enabled && !c.Prometheus.Enabled {
		return errors.New("no listeners enabled; enable at least one of stock_api, metrics_api, metrics_static, prometheus")
	}

	if c.Server.ShutdownTimeout != "" {
		if _, err := time.ParseDuration(c.Server.ShutdownTimeout); err != nil {
			return fmt.Errorf("invalid shutdown timeout duration: %w", err)
		}
	}
	if c.Telemetry.ResourceMonitorInterval != "" {
		if _, err := time.ParseDuration(c.Telemetry.ResourceMonitorInterval); err != nil {
			return fmt.Errorf("invalid resource monitor interval: %w", err)
		}
	}

	if c.StockAPI.DefaultHistoryHours < 1 || c.StockAPI.MaxHistoryHours < c.StockAPI.DefaultHistoryHours {
		return fmt.Errorf("invalid history hours bounds: default %d, max %d",
			c.StockAPI.DefaultHistoryHours, c.StockAPI.MaxHistoryHours)
	}

	for name, jitter := range map[string]string{
		"metrics_api":    c.MetricsAPI.Jitter,
		"metrics_static": c.MetricsStatic.Jitter,
		"prometheus":     c.Prometheus.Jitter,
	} {
		if _, err := synth.ParseStrategy(jitter); err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
	}

	return nil
}

// ShutdownTimeoutDuration returns the parsed shutdown timeout. Validation
// already guaranteed the value parses.
func (c *Config) ShutdownTimeoutDuration() time.Duration {
	d, _ := time.ParseDuration(c.Server.ShutdownTimeout)
	return d
}

// MonitorIntervalDuration returns the parsed resource monitor interval.
// Zero disables the monitor.
func (c *Config) MonitorIntervalDuration() time.Duration {
	d, _ := time.ParseDuration(c.Telemetry.ResourceMonitorInterval)
	return d
}

func setDefaults() {
	// Environment
	viper.SetDefault("environment", "development")
	viper.SetDefault("log_level", "info")

	// Server
	viper.SetDefault("server.allowed_origins", []string{"*"})
	viper.SetDefault("server.shutdown_timeout", "30s")

	// Synthesis
	viper.SetDefault("synth.seed", 0)

	// Stock API listener
	viper.SetDefault("stock_api.enabled", true)
	viper.SetDefault("stock_api.port", 3003)
	viper.SetDefault("stock_api.service_name", "demo-stock-api")
	viper.SetDefault("stock_api.default_history_hours", 24)
	viper.SetDefault("stock_api.max_history_hours", 8760)

	// Animated JSON metrics listener
	viper.SetDefault("metrics_api.enabled", true)
	viper.SetDefault("metrics_api.port", 3001)
	viper.SetDefault("metrics_api.service_name", "neuromorphic-trading-metrics")
	viper.SetDefault("metrics_api.jitter", string(synth.StrategyIndependent))
	viper.SetDefault("metrics_api.extended", true)

	// Static JSON metrics listener
	viper.SetDefault("metrics_static.enabled", true)
	viper.SetDefault("metrics_static.port", 3002)
	viper.SetDefault("metrics_static.service_name", "neuromorphic-trading-metrics")
	viper.SetDefault("metrics_static.jitter", string(synth.StrategyNone))
	viper.SetDefault("metrics_static.extended", false)

	// Prometheus exposition listener
	viper.SetDefault("prometheus.enabled", true)
	viper.SetDefault("prometheus.port", 9090)
	viper.SetDefault("prometheus.service_name", "neuromorphic-prometheus-metrics")
	viper.SetDefault("prometheus.jitter", string(synth.StrategyCorrelated))

	// Telemetry
	viper.SetDefault("telemetry.tracing_enabled", false)
	viper.SetDefault("telemetry.resource_monitor_interval", "5m")
}
