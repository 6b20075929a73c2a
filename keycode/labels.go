package keycode

import "fmt"

// DefaultLabels returns the display names of plain QMK/Vial key codes. The
// table is a fresh copy, callers may extend or replace entries.
func DefaultLabels() map[string]string {
	labels := map[string]string{
		"KC_ENTER": "Enter", "KC_ENT": "Enter",
		"KC_ESCAPE": "Esc", "KC_ESC": "Esc",
		"KC_BSPACE": "Bksp", "KC_BSPC": "Bksp", "KC_BACKSPACE": "Bksp",
		"KC_TAB":   "Tab",
		"KC_SPACE": "Space", "KC_SPC": "Space",
		"KC_MINUS": "-", "KC_MINS": "-",
		"KC_EQUAL": "=", "KC_EQL": "=",
		"KC_LBRACKET": "[", "KC_LBRC": "[", "KC_LEFT_BRACKET": "[",
		"KC_RBRACKET": "]", "KC_RBRC": "]", "KC_RIGHT_BRACKET": "]",
		"KC_BSLASH": "\\", "KC_BSLS": "\\", "KC_BACKSLASH": "\\",
		"KC_NONUS_HASH": "#", "KC_NUHS": "#",
		"KC_NONUS_BSLASH": "\\", "KC_NUBS": "\\",
		"KC_SCOLON": ";", "KC_SCLN": ";", "KC_SEMICOLON": ";",
		"KC_QUOTE": "'", "KC_QUOT": "'",
		"KC_GRAVE": "`", "KC_GRV": "`",
		"KC_COMMA": ",", "KC_COMM": ",",
		"KC_DOT":   ".",
		"KC_SLASH": "/", "KC_SLSH": "/",
		"KC_CAPSLOCK": "Caps", "KC_CAPS": "Caps", "KC_CAPS_LOCK": "Caps",
		"KC_PSCREEN": "Print\nScreen", "KC_PSCR": "Print\nScreen", "KC_PRINT_SCREEN": "Print\nScreen",
		"KC_SCROLLLOCK": "ScrLk", "KC_SCRL": "ScrLk",
		"KC_PAUSE": "Pause", "KC_PAUS": "Pause",
		"KC_APPLICATION": "Menu", "KC_APP": "Menu",

		"KC_LCTRL": "LCtrl", "KC_LCTL": "LCtrl",
		"KC_LSHIFT": "LShift", "KC_LSFT": "LShift",
		"KC_LALT": "LAlt", "KC_LOPT": "LAlt",
		"KC_LGUI": "LGui", "KC_LCMD": "LGui", "KC_LWIN": "LGui",
		"KC_RCTRL": "RCtrl", "KC_RCTL": "RCtrl",
		"KC_RSHIFT": "RShift", "KC_RSFT": "RShift",
		"KC_RALT": "RAlt", "KC_ROPT": "RAlt", "KC_ALGR": "RAlt",
		"KC_RGUI": "RGui", "KC_RCMD": "RGui", "KC_RWIN": "RGui",

		"KC_UP": "↑", "KC_DOWN": "↓", "KC_LEFT": "←", "KC_RIGHT": "→", "KC_RGHT": "→",
		"KC_HOME": "Home", "KC_END": "End",
		"KC_PGUP": "PgUp", "KC_PGDOWN": "PgDn", "KC_PGDN": "PgDn",
		"KC_INSERT": "Ins", "KC_INS": "Ins",
		"KC_DELETE": "Del", "KC_DEL": "Del",

		"KC_NUMLOCK": "NumLk", "KC_NUM": "NumLk",
		"KC_KP_DOT": ".", "KC_PDOT": ".",
		"KC_KP_SLASH": "/", "KC_PSLS": "/",
		"KC_KP_ASTERISK": "*", "KC_PAST": "*",
		"KC_KP_MINUS": "-", "KC_PMNS": "-",
		"KC_KP_PLUS": "+", "KC_PPLS": "+",
		"KC_KP_EQUAL": "=", "KC_PEQL": "=",
		"KC_KP_ENTER": "Enter", "KC_PENT": "Enter",

		"KC_MHEN": "MHEN", "KC_HENK": "HENK", "KC_KANA": "KANA",
		"KC_LANG1": "LANG1", "KC_LANG2": "LANG2", "KC_LNG1": "LANG1", "KC_LNG2": "LANG2",
		"KC_RO": "\\", "KC_INT1": "_", "KC_JYEN": "¥", "KC_INT3": "¥",

		"KC_MUTE": "Mute", "KC_AUDIO_MUTE": "Mute",
		"KC_VOLU": "Vol+", "KC_AUDIO_VOL_UP": "Vol+",
		"KC_VOLD": "Vol-", "KC_AUDIO_VOL_DOWN": "Vol-",
		"KC_MPLY": "Play", "KC_MEDIA_PLAY_PAUSE": "Play",
		"KC_MNXT": "Next", "KC_MEDIA_NEXT_TRACK": "Next",
		"KC_MPRV": "Prev", "KC_MEDIA_PREV_TRACK": "Prev",
		"KC_MSTP": "Stop",
		"KC_BRIU": "Bri+", "KC_BRID": "Bri-",

		"KC_MS_U": "M↑", "KC_MS_D": "M↓", "KC_MS_L": "M←", "KC_MS_R": "M→",
		"KC_BTN1": "Click1", "KC_BTN2": "Click2", "KC_BTN3": "Click3",
		"KC_WH_U": "Wh↑", "KC_WH_D": "Wh↓",
	}

	for c := 'A'; c <= 'Z'; c++ {
		labels["KC_"+string(c)] = string(c)
	}

	for d := '0'; d <= '9'; d++ {
		labels["KC_"+string(d)] = string(d)
		labels["KC_KP_"+string(d)] = string(d)
		labels["KC_P"+string(d)] = string(d)
	}

	for i := 1; i <= 24; i++ {
		labels[fmt.Sprintf("KC_F%d", i)] = fmt.Sprintf("F%d", i)
	}

	return labels
}

// DefaultSpecials returns firmware and behavior codes that render with the
// special key style.
func DefaultSpecials() map[string]string {
	return map[string]string{
		"QK_BOOT": "Boot", "RESET": "Boot", "QK_RBT": "Reboot",
		"QK_REP": "Rep", "QK_AREP": "ARep",
		"QK_LEAD": "Lead", "KC_LEAD": "Lead",
		"QK_GESC": "GEsc", "KC_GESC": "GEsc",
		"KC_LSPO": "(", "KC_RSPC": ")",
		"QK_CAPS_WORD_TOGGLE": "CapsW", "CW_TOGG": "CapsW",
		"RGB_TOG": "RGB", "RGB_MOD": "RGB+", "RGB_RMOD": "RGB-",
		"BL_TOGG": "BL", "BL_STEP": "BL+",
		"FN_MO13": "Fn1", "FN_MO23": "Fn2",
	}
}

// DefaultShifted maps an unshifted label to the character produced with
// Shift held on a US layout.
func DefaultShifted() map[string]string {
	return map[string]string{
		"1": "!", "2": "@", "3": "#", "4": "$", "5": "%",
		"6": "^", "7": "&", "8": "*", "9": "(", "0": ")",
		"-": "_", "=": "+", "[": "{", "]": "}", "\\": "|",
		";": ":", "'": "\"", "`": "~", ",": "<", ".": ">", "/": "?",
	}
}

var modifierNames = map[string]string{
	"LSFT": "LShift", "RSFT": "RShift", "SFT": "Shift", "S": "Shift",
	"LCTL": "LCtrl", "RCTL": "RCtrl", "CTL": "Ctrl", "C": "Ctrl",
	"LALT": "LAlt", "RALT": "RAlt", "ALT": "Alt", "A": "Alt", "LOPT": "LAlt", "ROPT": "RAlt",
	"LGUI": "LGui", "RGUI": "RGui", "GUI": "Gui", "G": "Gui",
	"LCMD": "LGui", "RCMD": "RGui", "LWIN": "LGui", "RWIN": "RGui",
}

// prefix drawn in front of a key wrapped in a non-shift modifier.
var modifierPrefixes = map[string]string{
	"Ctrl": "C+", "Alt": "A+", "Gui": "G+",
}

var layerFunctions = map[string]bool{
	"MO": true, "TO": true, "TG": true, "TT": true, "DF": true, "OSL": true, "PDF": true,
}
