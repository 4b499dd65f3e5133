package util

import (
	"reflect"
	"testing"
)

func TestParseIntDefault(t *testing.T) {
	if got := ParseIntDefault("", 8080); got != 8080 {
		t.Fatalf("empty: got %d", got)
	}
	if got := ParseIntDefault("x", 8080); got != 8080 {
		t.Fatalf("invalid: got %d", got)
	}
	if got := ParseIntDefault("9090", 8080); got != 9090 {
		t.Fatalf("valid: got %d", got)
	}
}

func TestSplitCSV(t *testing.T) {
	got := SplitCSV(" a, ,b,,c ")
	if !reflect.DeepEqual(got, []string{"a", "b", "c"}) {
		t.Fatalf("unexpected %v", got)
	}
	if got := SplitCSV(""); len(got) != 0 {
		t.Fatalf("expected empty, got %v", got)
	}
}

func TestSplitSymbols(t *testing.T) {
	got := SplitSymbols("btcusdt, ETHUSDT,BTCUSDT,solusdt")
	want := []string{"BTCUSDT", "ETHUSDT", "SOLUSDT"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}
