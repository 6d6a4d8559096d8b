// Package hotkey dispatches global key combinations to session commands.
package hotkey

import (
	"log"
	"strings"

	gohook "github.com/robotn/gohook"
)

// Binding maps a key combination like "ctrl+shift+1" to a command.
type Binding struct {
	Combo  string
	Action func()
}

type trackedKey struct {
	name     string
	rawcodes []uint16
	pressed  bool
}

type trackedBinding struct {
	combo  string
	action func()
	keys   []trackedKey
}

// Listen starts a goroutine consuming global keyboard events and invokes
// each binding's action when all of its keys are held. Actions run on the
// listener goroutine; they must not block indefinitely.
func Listen(bindings []Binding) {
	var tracked []trackedBinding
	for _, b := range bindings {
		tb, ok := compile(b)
		if !ok {
			log.Printf("ERROR: Invalid hotkey %q, skipping binding", b.Combo)
			continue
		}
		tracked = append(tracked, tb)
		log.Printf("Hotkey registered: %s", b.Combo)
	}
	if len(tracked) == 0 {
		log.Printf("ERROR: No valid hotkey bindings")
		return
	}

	go func() {
		defer func() {
			if r := recover(); r != nil {
				log.Printf("PANIC in hotkey goroutine: %v", r)
			}
		}()

		evChan := gohook.Start()
		if evChan == nil {
			log.Printf("ERROR: gohook.Start() returned nil channel")
			return
		}

		for ev := range evChan {
			switch ev.Kind {
			case gohook.KeyDown:
				for i := range tracked {
					if tracked[i].handleKeyDown(ev.Rawcode) {
						log.Printf("Hotkey activated: %s", tracked[i].combo)
						tracked[i].action()
					}
				}
			case gohook.KeyUp:
				for i := range tracked {
					tracked[i].handleKeyUp(ev.Rawcode)
				}
			}
		}
		log.Printf("Hotkey event channel closed")
	}()
}

func compile(b Binding) (trackedBinding, bool) {
	tb := trackedBinding{combo: b.Combo, action: b.Action}
	for _, name := range parseCombo(b.Combo) {
		rawcodes := keyNameToRawcodes(name)
		if len(rawcodes) == 0 {
			return trackedBinding{}, false
		}
		tb.keys = append(tb.keys, trackedKey{name: name, rawcodes: rawcodes})
	}
	if len(tb.keys) == 0 || b.Action == nil {
		return trackedBinding{}, false
	}
	return tb, true
}

// handleKeyDown records a press and reports whether the full combination
// is now held; on a match all key states reset so the action fires once
// per chord press.
func (tb *trackedBinding) handleKeyDown(rawcode uint16) bool {
	matched := false
	for i := range tb.keys {
		for _, rc := range tb.keys[i].rawcodes {
			if rawcode == rc {
				tb.keys[i].pressed = true
				matched = true
				break
			}
		}
	}
	if !matched {
		return false
	}
	for i := range tb.keys {
		if !tb.keys[i].pressed {
			return false
		}
	}
	for i := range tb.keys {
		tb.keys[i].pressed = false
	}
	return true
}

func (tb *trackedBinding) handleKeyUp(rawcode uint16) {
	for i := range tb.keys {
		for _, rc := range tb.keys[i].rawcodes {
			if rawcode == rc {
				tb.keys[i].pressed = false
				break
			}
		}
	}
}

// parseCombo normalizes a combination string like "Ctrl+Shift+1" into
// lowercase key names.
func parseCombo(combo string) []string {
	var keys []string
	for _, part := range strings.Split(strings.ToLower(combo), "+") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		if part == "win" || part == "cmd" || part == "super" {
			part = "cmd"
		}
		keys = append(keys, part)
	}
	return keys
}

// keyNameToRawcodes maps a key name to its virtual key codes; modifiers
// return both left and right variants.
func keyNameToRawcodes(keyName string) []uint16 {
	keyName = strings.ToLower(strings.TrimSpace(keyName))

	switch keyName {
	case "ctrl":
		return []uint16{162, 163} // VK_LCONTROL, VK_RCONTROL
	case "alt":
		return []uint16{164, 165} // VK_LMENU, VK_RMENU
	case "shift":
		return []uint16{160, 161} // VK_LSHIFT, VK_RSHIFT
	case "win", "cmd", "super":
		return []uint16{91, 92} // VK_LWIN, VK_RWIN
	case "space":
		return []uint16{32}
	case "enter", "return":
		return []uint16{13}
	case "esc", "escape":
		return []uint16{27}
	case "tab":
		return []uint16{9}
	case "backspace":
		return []uint16{8}
	case "delete", "del":
		return []uint16{46}
	case "insert", "ins":
		return []uint16{45}
	case "home":
		return []uint16{36}
	case "end":
		return []uint16{35}
	case "pageup", "pgup":
		return []uint16{33} // VK_PRIOR
	case "pagedown", "pgdn":
		return []uint16{34} // VK_NEXT
	case "left":
		return []uint16{37}
	case "up":
		return []uint16{38}
	case "right":
		return []uint16{39}
	case "down":
		return []uint16{40}
	}

	// Letters and digits map directly onto their VK codes.
	if len(keyName) == 1 {
		c := keyName[0]
		switch {
		case c >= 'a' && c <= 'z':
			return []uint16{uint16(c - 'a' + 'A')}
		case c >= '0' && c <= '9':
			return []uint16{uint16(c)}
		}
	}

	// Function keys F1-F24 start at VK_F1 (112).
	if strings.HasPrefix(keyName, "f") {
		switch keyName {
		case "f1", "f2", "f3", "f4", "f5", "f6", "f7", "f8", "f9":
			return []uint16{112 + uint16(keyName[1]-'1')}
		case "f10", "f11", "f12", "f13", "f14", "f15", "f16", "f17", "f18", "f19":
			return []uint16{121 + uint16(keyName[2]-'0')}
		case "f20", "f21", "f22", "f23", "f24":
			return []uint16{131 + uint16(keyName[2]-'0')}
		}
	}

	log.Printf("WARNING: Unknown key name '%s', cannot map to rawcode", keyName)
	return nil
}
