package lldp

import (
	"reflect"
	"testing"

	"github.com/bgeun31/nettools/internal/extract"
)

func TestNoiseFilter_Reject(t *testing.T) {
	f := DefaultNoiseFilter()

	tests := []struct {
		name string
		want bool
	}{
		{"Not-Advertised", true},
		{"UP", true},
		{"sep", true},
		{"September", true},
		{"Mar-12", true},
		{"core_dec_01", true},
		{"Decoder01", false},
		{"SwitchC", false},
		{"uplink-1", false},
		{"", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := f.Reject(tt.name); got != tt.want {
				t.Errorf("Reject(%q) = %v, want %v", tt.name, got, tt.want)
			}
		})
	}
}

func TestNoiseFilterFromRules(t *testing.T) {
	off := false
	f := NoiseFilterFromRules(extract.NoiseRules{Blacklist: []string{"junk"}, MonthFilter: &off})

	if !f.Reject("JUNK") {
		t.Error("custom blacklist not applied")
	}
	if f.Reject("September") || f.Reject("up") {
		t.Error("defaults should be replaced")
	}

	var zero NoiseFilter
	if zero.Reject("up") {
		t.Error("zero filter should reject nothing")
	}
}

func TestCompileFilters(t *testing.T) {
	filters := CompileFilters("AP*, \nSW(01\n\n")
	if len(filters) != 2 {
		t.Fatalf("got %d filters, want 2", len(filters))
	}
	if !filters[0].MatchString("XAP-9") {
		t.Error("wildcard filter should match")
	}
	if !filters[1].MatchString("SW(01") || filters[1].MatchString("SW01") {
		t.Error("invalid regex should fall back to literal match")
	}
	if CompileFilters("  ") != nil {
		t.Error("blank input should yield no filters")
	}
}

func TestParseOUIs(t *testing.T) {
	got := ParseOUIs("00:1b:21 Intel\n00-1B-21\n001b22\nnot an oui\n  AC:DE:48:00:11:22\n")
	want := []string{"001B21", "001B22", "ACDE48"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ParseOUIs() = %v, want %v", got, want)
	}
}

func TestCollectOUIs(t *testing.T) {
	got := CollectOUIs("x 00:1b:21:aa:bb:cc y ac:de:48:00:11:22 z 00:1B:21:00:00:01 short 00:11:22")
	want := []string{"001B21", "ACDE48"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("CollectOUIs() = %v, want %v", got, want)
	}
	if FormatOUI("001B21") != "00:1B:21" {
		t.Errorf("FormatOUI() = %q", FormatOUI("001B21"))
	}
}
