package repository

import "testing"

func TestNormalizeTimeframe(t *testing.T) {
	cases := map[string]Timeframe{
		"":    TF15m,
		"1m":  TF1m,
		"4h":  TF4h,
		"1d":  TF1d,
		"5m":  TF15m,
		"bad": TF15m,
	}
	for in, want := range cases {
		if got := NormalizeTimeframe(in, ""); got != want {
			t.Fatalf("NormalizeTimeframe(%q)=%q, expected %q", in, got, want)
		}
	}
}

func TestNormalizeTimeframeFallback(t *testing.T) {
	if got := NormalizeTimeframe("", TF1h); got != TF1h {
		t.Fatalf("expected fallback 1h, got %q", got)
	}
	if got := NormalizeTimeframe("4h", TF1h); got != TF4h {
		t.Fatalf("expected 4h, got %q", got)
	}
	if got := NormalizeTimeframe("bad", "2h"); got != TF15m {
		t.Fatalf("expected default for invalid fallback, got %q", got)
	}
}

func TestTimeframesOrderAndLabels(t *testing.T) {
	tfs := Timeframes()
	if len(tfs) != 5 {
		t.Fatalf("expected 5 timeframes, got %d", len(tfs))
	}
	if tfs[0] != TF1m || tfs[4] != TF1d {
		t.Fatalf("unexpected order %v", tfs)
	}
	if TF15m.Label() != "15 Minutes" {
		t.Fatalf("unexpected label %q", TF15m.Label())
	}
}
