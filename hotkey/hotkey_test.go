package hotkey

import (
	"reflect"
	"testing"
)

func TestKeyNameToRawcodes(t *testing.T) {
	tests := []struct {
		keyName  string
		expected []uint16
	}{
		// Modifier keys
		{"ctrl", []uint16{162, 163}},
		{"alt", []uint16{164, 165}},
		{"shift", []uint16{160, 161}},
		{"win", []uint16{91, 92}},
		{"cmd", []uint16{91, 92}},
		{"super", []uint16{91, 92}},

		// Letter keys
		{"c", []uint16{67}},
		{"q", []uint16{81}},
		{"z", []uint16{90}},

		// Number keys
		{"0", []uint16{48}},
		{"1", []uint16{49}},
		{"2", []uint16{50}},
		{"9", []uint16{57}},

		// Function keys
		{"f1", []uint16{112}},
		{"f9", []uint16{120}},
		{"f10", []uint16{121}},
		{"f12", []uint16{123}},
		{"f19", []uint16{130}},
		{"f20", []uint16{131}},
		{"f24", []uint16{135}},

		// Special keys
		{"space", []uint16{32}},
		{"enter", []uint16{13}},
		{"esc", []uint16{27}},
		{"pagedown", []uint16{34}},
		{"pgup", []uint16{33}},

		// Unknown key
		{"unknown", nil},
		{"f25", nil},
	}

	for _, tt := range tests {
		t.Run(tt.keyName, func(t *testing.T) {
			result := keyNameToRawcodes(tt.keyName)
			if !reflect.DeepEqual(result, tt.expected) {
				t.Errorf("keyNameToRawcodes(%q) = %v, expected %v", tt.keyName, result, tt.expected)
			}
		})
	}
}

func TestParseCombo(t *testing.T) {
	tests := []struct {
		combo    string
		expected []string
	}{
		{"ctrl+shift+1", []string{"ctrl", "shift", "1"}},
		{"Ctrl+Shift+C", []string{"ctrl", "shift", "c"}},
		{" ctrl + alt + q ", []string{"ctrl", "alt", "q"}},
		{"Win+E", []string{"cmd", "e"}},
		{"super+space", []string{"cmd", "space"}},
	}
	for _, tt := range tests {
		t.Run(tt.combo, func(t *testing.T) {
			if got := parseCombo(tt.combo); !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("parseCombo(%q) = %v, expected %v", tt.combo, got, tt.expected)
			}
		})
	}
}

func TestCompileRejectsInvalidBindings(t *testing.T) {
	if _, ok := compile(Binding{Combo: "ctrl+bogus", Action: func() {}}); ok {
		t.Error("binding with unmappable key should be rejected")
	}
	if _, ok := compile(Binding{Combo: "", Action: func() {}}); ok {
		t.Error("empty combo should be rejected")
	}
	if _, ok := compile(Binding{Combo: "ctrl+q", Action: nil}); ok {
		t.Error("binding without action should be rejected")
	}
}

func TestChordDetection(t *testing.T) {
	tb, ok := compile(Binding{Combo: "ctrl+shift+1", Action: func() {}})
	if !ok {
		t.Fatal("compile failed")
	}

	// Partial chords do not fire.
	if tb.handleKeyDown(162) {
		t.Error("ctrl alone must not fire")
	}
	if tb.handleKeyDown(160) {
		t.Error("ctrl+shift must not fire")
	}
	// Completing the chord fires once and resets.
	if !tb.handleKeyDown(49) {
		t.Error("full chord should fire")
	}
	if tb.handleKeyDown(49) {
		t.Error("chord must not re-fire without re-pressing all keys")
	}

	// Unrelated keys never fire.
	if tb.handleKeyDown(81) {
		t.Error("unrelated key must not fire")
	}
}

func TestChordReleaseAndRepress(t *testing.T) {
	fired := 0
	tb, ok := compile(Binding{Combo: "ctrl+q", Action: func() { fired++ }})
	if !ok {
		t.Fatal("compile failed")
	}

	press := func(codes ...uint16) {
		for _, c := range codes {
			if tb.handleKeyDown(c) {
				tb.action()
			}
		}
	}

	press(163, 81)
	tb.handleKeyUp(81)
	tb.handleKeyUp(163)
	press(162, 81)
	if fired != 2 {
		t.Errorf("chord fired %d times, want 2", fired)
	}

	// Right-variant modifier counts the same as the left one.
	tb.handleKeyUp(81)
	tb.handleKeyUp(162)
	press(163)
	press(81)
	if fired != 3 {
		t.Errorf("chord fired %d times, want 3", fired)
	}
}
