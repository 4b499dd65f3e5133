package config

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
	"time"
)

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(p, []byte(body), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return p
}

func TestDefaults(t *testing.T) {
	c := Default()
	if c.Server.Port != 8050 || c.Server.ReadTimeout != 10*time.Second {
		t.Fatalf("unexpected server defaults %+v", c.Server)
	}
	if c.TradingView.Exchange != "BITGET" || c.TradingView.Timeout != 30*time.Second {
		t.Fatalf("unexpected tradingview defaults %+v", c.TradingView)
	}
	if c.Risk.Fraction != 0.03 {
		t.Fatalf("unexpected risk fraction %v", c.Risk.Fraction)
	}
	if !reflect.DeepEqual(c.Dashboard.DefaultSymbols, []string{"BTCUSDT", "ETHUSDT", "SOLUSDT"}) {
		t.Fatalf("unexpected default symbols %v", c.Dashboard.DefaultSymbols)
	}
	if c.Dashboard.DefaultTimeframe != "15m" || c.Dashboard.RefreshInterval != time.Minute {
		t.Fatalf("unexpected dashboard defaults %+v", c.Dashboard)
	}
	if !c.Notify.Browser || c.Watcher.Enabled {
		t.Fatalf("unexpected toggles browser=%v watcher=%v", c.Notify.Browser, c.Watcher.Enabled)
	}
	if err := c.Validate(); err != nil {
		t.Fatalf("defaults must validate: %v", err)
	}
}

func TestLoadOverridesDefaults(t *testing.T) {
	p := writeFile(t, "config.yaml", `
environment: production
server:
  port: 9000
metrics:
  enabled: false
notify:
  browser: false
dashboard:
  default_symbols: [XRPUSDT]
  default_timeframe: 4h
`)
	c, err := Load(p)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if c.Environment != "production" || c.Server.Port != 9000 {
		t.Fatalf("unexpected values %s/%d", c.Environment, c.Server.Port)
	}
	if c.Metrics.Enabled || c.Notify.Browser {
		t.Fatalf("explicit false must survive defaults")
	}
	if !reflect.DeepEqual(c.Dashboard.DefaultSymbols, []string{"XRPUSDT"}) {
		t.Fatalf("unexpected symbols %v", c.Dashboard.DefaultSymbols)
	}
	if c.Server.ShutdownTimeout != 10*time.Second {
		t.Fatalf("unset keys keep defaults, got %v", c.Server.ShutdownTimeout)
	}
}

func TestLoadWithEnv(t *testing.T) {
	p := writeFile(t, "config.yaml", "environment: staging\n")
	env := writeFile(t, ".env", "WEBHOOK_URL=https://hooks.example.com/x\n")

	t.Setenv("FINSIGNAL_EXCHANGE", "BINANCE")
	t.Setenv("FINSIGNAL_SYMBOLS", "btcusdt, adausdt")
	t.Setenv("FINSIGNAL_TIMEFRAME", "1h")
	t.Setenv("SERVER_PORT", "9100")
	t.Setenv("REDIS_ADDR", "redis:6379")
	t.Setenv("KAFKA_BROKERS", "k1:9092,k2:9092")
	t.Setenv("WEBHOOK_URL", "")
	os.Unsetenv("WEBHOOK_URL")

	c, err := LoadWithEnv(p, env, filepath.Join(t.TempDir(), "missing.env"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if c.TradingView.Exchange != "BINANCE" {
		t.Fatalf("exchange override: %s", c.TradingView.Exchange)
	}
	if !reflect.DeepEqual(c.Dashboard.DefaultSymbols, []string{"BTCUSDT", "ADAUSDT"}) {
		t.Fatalf("symbols override: %v", c.Dashboard.DefaultSymbols)
	}
	if c.Dashboard.DefaultTimeframe != "1h" || c.Server.Port != 9100 {
		t.Fatalf("timeframe/port override: %s/%d", c.Dashboard.DefaultTimeframe, c.Server.Port)
	}
	if c.Notify.Redis.Addr != "redis:6379" || !reflect.DeepEqual(c.Notify.Kafka.Brokers, []string{"k1:9092", "k2:9092"}) {
		t.Fatalf("broker overrides: %s %v", c.Notify.Redis.Addr, c.Notify.Kafka.Brokers)
	}
	if c.Notify.Webhook.URL != "https://hooks.example.com/x" {
		t.Fatalf(".env value not applied: %q", c.Notify.Webhook.URL)
	}
}

func TestLoadWithEnvRejectsInvalid(t *testing.T) {
	p := writeFile(t, "config.yaml", "dashboard:\n  default_timeframe: 2h\n")
	_, err := LoadWithEnv(p, filepath.Join(t.TempDir(), "none.env"))
	if err == nil || !strings.Contains(err.Error(), "default_timeframe") {
		t.Fatalf("expected timeframe validation error, got %v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(c *Config)
		want   string
	}{
		{"environment", func(c *Config) { c.Environment = "" }, "environment"},
		{"port", func(c *Config) { c.Server.Port = 70000 }, "server.port"},
		{"exchange", func(c *Config) { c.TradingView.Exchange = " " }, "exchange"},
		{"fraction", func(c *Config) { c.Risk.Fraction = 0 }, "risk.fraction"},
		{"symbols", func(c *Config) { c.Dashboard.DefaultSymbols = nil }, "default_symbols"},
		{"webhook", func(c *Config) { c.Notify.Webhook.Enabled = true }, "webhook.url"},
		{"redis", func(c *Config) {
			c.Notify.Redis.Enabled = true
			c.Notify.Redis.Channel = ""
		}, "notify.redis"},
		{"kafka", func(c *Config) { c.Notify.Kafka.Enabled = true }, "notify.kafka"},
	}
	for _, tt := range tests {
		c := Default()
		tt.mutate(c)
		err := c.Validate()
		if err == nil || !strings.Contains(err.Error(), tt.want) {
			t.Fatalf("%s: expected error containing %q, got %v", tt.name, tt.want, err)
		}
	}
}

func TestRepositoryConfigLoads(t *testing.T) {
	c, err := Load(filepath.Join("..", "..", "config", "config.yaml"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if err := c.Validate(); err != nil {
		t.Fatalf("shipped config must validate: %v", err)
	}
}
