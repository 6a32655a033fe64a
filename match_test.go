package xparser

import (
	"testing"
)

func TestMatch(t *testing.T) {
	tests := []struct {
		pattern string
		key     string
		want    bool
	}{
		{"comp_a.*.comp_d.attribute", "comp_a.*.attribute", true},
		{"comp_a.comp_b.*.attribute", "comp_a.comp_b.*.comp_d.attribute", true},
		{"comp_a.?.?.comp_d.attribute", "comp_a.*.attribute", true},
		{"*color0", "URxvt*color0", true},
		{"*color0", "URxvt*color1", false},
		{"xterm.vt100.background", "xterm.vt100.background", true},
		{"xterm.vt100.background", "xterm.vt100.foreground", false},
	}
	for _, tc := range tests {
		got, err := Match(tc.pattern, tc.key)
		if err != nil {
			t.Fatalf("Match(%q, %q): %v", tc.pattern, tc.key, err)
		}
		if got != tc.want {
			t.Errorf("Match(%q, %q) = %v, want %v", tc.pattern, tc.key, got, tc.want)
		}
	}
}

func TestMatchErrs(t *testing.T) {
	// a wildcard cannot name an attribute
	for _, args := range [][2]string{
		{"comp_a.?", "comp_a.attribute"},
		{"comp_a.attribute", "comp_a.?"},
	} {
		if _, err := Match(args[0], args[1]); err == nil {
			t.Errorf("Match(%q, %q) accepted a wildcard attribute", args[0], args[1])
		}
	}
}
