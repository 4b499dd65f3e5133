package logger

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestNewRejectsBadLevel(t *testing.T) {
	if _, err := New(&Config{Level: "loud", Output: "stdout"}); err == nil {
		t.Fatalf("expected level error")
	}
}

func TestFileOutputJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app.log")
	l, err := New(&Config{Level: "debug", Format: "json", Output: path})
	if err != nil {
		t.Fatalf("new: %v", err)
	}

	l.Info("cycle done",
		String("timeframe", "15m"),
		Int("rendered", 3),
		Duration("elapsed_ms", 1500*time.Millisecond),
		Strings("symbols", []string{"BTCUSDT", "ETHUSDT"}),
		Bool("push", true),
	)
	l.Error("fetch failed", Error(errors.New("timeout")))

	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	out := string(b)
	for _, want := range []string{
		`"message":"cycle done"`,
		`"timeframe":"15m"`,
		`"rendered":3`,
		`"elapsed_ms":1500`,
		`"symbols":"BTCUSDT, ETHUSDT"`,
		`"push":true`,
		`"error":"timeout"`,
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("log output missing %s:\n%s", want, out)
		}
	}
}

func TestNop(t *testing.T) {
	l := Nop()
	l.Info("ignored")
	l.Error("ignored", Error(errors.New("x")))
}
