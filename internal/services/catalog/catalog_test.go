package catalog

import "testing"

func TestOptionsSortedByLabel(t *testing.T) {
	opts := New().Options()
	if len(opts) != 35 {
		t.Fatalf("expected 35 symbols, got %d", len(opts))
	}
	for i := 1; i < len(opts); i++ {
		if opts[i-1].Label > opts[i].Label {
			t.Fatalf("not sorted at %d: %q > %q", i, opts[i-1].Label, opts[i].Label)
		}
	}
	if opts[0].Value != "ALGOUSDT" || opts[0].Label != "Algorand (ALGOUSDT)" {
		t.Fatalf("unexpected first option %+v", opts[0])
	}
}

func TestContains(t *testing.T) {
	c := New()
	if !c.Contains("BTCUSDT") || !c.Contains("solusdt") {
		t.Fatalf("expected catalog symbols")
	}
	if c.Contains("FOOUSDT") {
		t.Fatalf("unexpected symbol")
	}
}

func TestOptionsReturnsCopy(t *testing.T) {
	c := New()
	opts := c.Options()
	opts[0].Value = "X"
	if c.Options()[0].Value == "X" {
		t.Fatalf("Options must not expose internal slice")
	}
}
