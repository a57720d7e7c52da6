package header

import (
	"strings"
	"testing"
)

func TestLocate_TableMarker(t *testing.T) {
	text := "Mainak Chhari\nsome noise\n| Earnings | Amount |\n| --- | --- |\n"
	region, cut := Locate(text)
	if !strings.HasPrefix(text[cut:], "\n| ") {
		t.Errorf("cut should land on the table marker, got %q", text[cut:])
	}
	if strings.Contains(region, "Earnings") {
		t.Errorf("header region should not include the table, got %q", region)
	}
}

func TestLocate_HeadingMarkers(t *testing.T) {
	tests := []struct {
		name string
		text string
		rest string
	}{
		{"level one", "intro\n# Salary Details\nbody", "\n# Salary Details\nbody"},
		{"level two", "intro\n## Deductions\nbody", "\n## Deductions\nbody"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, cut := Locate(tt.text)
			if tt.text[cut:] != tt.rest {
				t.Errorf("text[cut:] = %q, want %q", tt.text[cut:], tt.rest)
			}
		})
	}
}

func TestLocate_EarliestMarkerWins(t *testing.T) {
	text := "intro\n## heading\nmore\n| table |\n"
	region, _ := Locate(text)
	if region != "intro" {
		t.Errorf("expected region %q, got %q", "intro", region)
	}
}

func TestLocate_NoMarkers(t *testing.T) {
	text := "just a header\nwith two lines"
	region, cut := Locate(text)
	if region != text {
		t.Errorf("whole document should be the header region, got %q", region)
	}
	if cut != len(text) {
		t.Errorf("cut = %d, want %d", cut, len(text))
	}
}

func TestLocate_Deterministic(t *testing.T) {
	text := "a\n| b |\n## c\n"
	_, cut1 := Locate(text)
	_, cut2 := Locate(text)
	if cut1 != cut2 {
		t.Errorf("Locate must be deterministic: %d vs %d", cut1, cut2)
	}
}
