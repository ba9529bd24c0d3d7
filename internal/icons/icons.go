// Package icons holds the glyphs used by the transport bar and step views.
package icons

// Style represents the icon style to use.
type Style string

const (
	StyleUnicode Style = "unicode"
	StyleASCII   Style = "ascii"
)

// Icons holds the glyphs for one style.
type Icons struct {
	Play    string
	Pause   string
	Start   string
	Back    string
	Next    string
	End     string
	Filled  string // progress bar, done part
	Empty   string // progress bar, remaining part
	Pointer string // marker under the active array cell
	Valid   string
	Invalid string
}

var (
	unicodeIcons = Icons{
		Play:    "▶",
		Pause:   "⏸",
		Start:   "⏮",
		Back:    "◀",
		Next:    "▶",
		End:     "⏭",
		Filled:  "▓",
		Empty:   "░",
		Pointer: "↑",
		Valid:   "✓",
		Invalid: "✗",
	}

	asciiIcons = Icons{
		Play:    ">",
		Pause:   "||",
		Start:   "|<",
		Back:    "<",
		Next:    ">",
		End:     ">|",
		Filled:  "#",
		Empty:   "-",
		Pointer: "^",
		Valid:   "ok",
		Invalid: "x",
	}

	current = unicodeIcons
)

// Init selects the icon style. Unknown styles fall back to unicode.
// Call this once at startup with the config value.
func Init(style string) {
	switch Style(style) {
	case StyleASCII:
		current = asciiIcons
	default:
		current = unicodeIcons
	}
}

// Current returns the active icon set.
func Current() Icons {
	return current
}

// Status returns the play or pause glyph for the playing state.
func Status(playing bool) string {
	if playing {
		return current.Play
	}
	return current.Pause
}
