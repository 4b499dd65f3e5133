package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"os"
	"strings"
	"time"

	xutil "FinSignal/pkg/util"

	"github.com/creasty/defaults"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Environment string `yaml:"environment" default:"development"`
	Server      struct {
		Host            string        `yaml:"host" default:"0.0.0.0"`
		Port            int           `yaml:"port" default:"8050"`
		ReadTimeout     time.Duration `yaml:"read_timeout" default:"10s"`
		WriteTimeout    time.Duration `yaml:"write_timeout" default:"2m"`
		ShutdownTimeout time.Duration `yaml:"shutdown_timeout" default:"10s"`
		SlowThreshold   time.Duration `yaml:"slow_threshold" default:"10s"`
	} `yaml:"server"`
	Log struct {
		Level  string `yaml:"level" default:"info"`
		Format string `yaml:"format" default:"console"`
		Output string `yaml:"output" default:"stdout"`
	} `yaml:"log"`
	Metrics struct {
		Enabled bool `yaml:"enabled" default:"true"`
	} `yaml:"metrics"`
	TradingView struct {
		ScannerURL string        `yaml:"scanner_url" default:"https://scanner.tradingview.com"`
		Exchange   string        `yaml:"exchange" default:"BITGET"`
		Screener   string        `yaml:"screener" default:"crypto"`
		Timeout    time.Duration `yaml:"timeout" default:"30s"`
	} `yaml:"tradingview"`
	Bitget struct {
		BaseURL string        `yaml:"base_url" default:"https://api.bitget.com"`
		Timeout time.Duration `yaml:"timeout" default:"30s"`
	} `yaml:"bitget"`
	Risk struct {
		Fraction float64 `yaml:"fraction" default:"0.03"`
	} `yaml:"risk"`
	Dashboard Dashboard `yaml:"dashboard"`
	Watcher   struct {
		Enabled  bool          `yaml:"enabled"`
		Interval time.Duration `yaml:"interval" default:"60s"`
	} `yaml:"watcher"`
	Notify Notify `yaml:"notify"`
}

type Dashboard struct {
	DefaultSymbols   []string      `yaml:"default_symbols" default:"[\"BTCUSDT\",\"ETHUSDT\",\"SOLUSDT\"]"`
	DefaultTimeframe string        `yaml:"default_timeframe" default:"15m"`
	RefreshInterval  time.Duration `yaml:"refresh_interval" default:"60s"`
	RateLimit        struct {
		Capacity     float64 `yaml:"capacity" default:"30"`
		RefillPerSec float64 `yaml:"refill_per_sec" default:"0.5"`
	} `yaml:"rate_limit"`
}

type Notify struct {
	Browser bool `yaml:"browser" default:"true"`
	Webhook struct {
		Enabled bool          `yaml:"enabled"`
		URL     string        `yaml:"url"`
		Timeout time.Duration `yaml:"timeout" default:"10s"`
	} `yaml:"webhook"`
	Redis struct {
		Enabled  bool   `yaml:"enabled"`
		Addr     string `yaml:"addr" default:"localhost:6379"`
		Password string `yaml:"password"`
		DB       int    `yaml:"db"`
		Channel  string `yaml:"channel" default:"finsignal:signals"`
	} `yaml:"redis"`
	Kafka struct {
		Enabled     bool     `yaml:"enabled"`
		Brokers     []string `yaml:"brokers"`
		Topic       string   `yaml:"topic" default:"finsignal.signal-changes"`
		Compression string   `yaml:"compression" default:"gzip"`
	} `yaml:"kafka"`
}

var validTimeframes = map[string]struct{}{"1m": {}, "15m": {}, "1h": {}, "4h": {}, "1d": {}}

// Default returns a configuration with every default applied.
func Default() *Config {
	var c Config
	if err := defaults.Set(&c); err != nil {
		panic(fmt.Sprintf("config defaults: %v", err))
	}
	return &c
}

// Load reads and parses a YAML configuration file on top of the defaults.
func Load(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	c := Default()
	if err := yaml.Unmarshal(b, c); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	return c, nil
}

// LoadWithEnv loads .env files (missing files are ignored), then the YAML
// config, then applies environment overrides and validates the result.
func LoadWithEnv(path string, envFiles ...string) (*Config, error) {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	for _, f := range envFiles {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("load %s: %w", f, err)
		}
	}

	c, err := Load(path)
	if err != nil {
		return nil, err
	}
	c.applyEnv()

	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}
	return c, nil
}

func (c *Config) applyEnv() {
	if v := os.Getenv("FINSIGNAL_EXCHANGE"); v != "" {
		c.TradingView.Exchange = v
	}
	if v := os.Getenv("FINSIGNAL_SYMBOLS"); v != "" {
		c.Dashboard.DefaultSymbols = xutil.SplitSymbols(v)
	}
	if v := os.Getenv("FINSIGNAL_TIMEFRAME"); v != "" {
		c.Dashboard.DefaultTimeframe = v
	}
	if v := os.Getenv("SERVER_PORT"); v != "" {
		c.Server.Port = xutil.ParseIntDefault(v, c.Server.Port)
	}
	if v := os.Getenv("REDIS_ADDR"); v != "" {
		c.Notify.Redis.Addr = v
	}
	if v := os.Getenv("KAFKA_BROKERS"); v != "" {
		c.Notify.Kafka.Brokers = xutil.SplitCSV(v)
	}
	if v := os.Getenv("WEBHOOK_URL"); v != "" {
		c.Notify.Webhook.URL = v
	}
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.Environment == "" {
		return fmt.Errorf("environment is required")
	}
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be in 1..65535, got %d", c.Server.Port)
	}
	if strings.TrimSpace(c.TradingView.Exchange) == "" {
		return fmt.Errorf("tradingview.exchange is required")
	}
	if _, err := url.ParseRequestURI(c.TradingView.ScannerURL); err != nil {
		return fmt.Errorf("tradingview.scanner_url: %w", err)
	}
	if _, err := url.ParseRequestURI(c.Bitget.BaseURL); err != nil {
		return fmt.Errorf("bitget.base_url: %w", err)
	}
	if c.Risk.Fraction <= 0 || c.Risk.Fraction >= 1 {
		return fmt.Errorf("risk.fraction must be in (0, 1), got %v", c.Risk.Fraction)
	}
	if _, ok := validTimeframes[c.Dashboard.DefaultTimeframe]; !ok {
		return fmt.Errorf("dashboard.default_timeframe must be one of 1m, 15m, 1h, 4h, 1d, got '%s'", c.Dashboard.DefaultTimeframe)
	}
	if len(c.Dashboard.DefaultSymbols) == 0 {
		return fmt.Errorf("dashboard.default_symbols cannot be empty")
	}
	if c.Dashboard.RefreshInterval <= 0 {
		return fmt.Errorf("dashboard.refresh_interval must be positive")
	}
	if c.Watcher.Enabled && c.Watcher.Interval <= 0 {
		return fmt.Errorf("watcher.interval must be positive")
	}
	if c.Notify.Webhook.Enabled {
		if _, err := url.ParseRequestURI(c.Notify.Webhook.URL); err != nil {
			return fmt.Errorf("notify.webhook.url: %w", err)
		}
	}
	if c.Notify.Redis.Enabled && (c.Notify.Redis.Addr == "" || c.Notify.Redis.Channel == "") {
		return fmt.Errorf("notify.redis requires addr and channel")
	}
	if c.Notify.Kafka.Enabled && (len(c.Notify.Kafka.Brokers) == 0 || c.Notify.Kafka.Topic == "") {
		return fmt.Errorf("notify.kafka requires brokers and topic")
	}
	return nil
}
