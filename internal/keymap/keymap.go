package keymap

// Binding describes a single key binding.
type Binding struct {
	Action      Action
	Keys        []string
	Description string
	Context     string // "global", "player", "input"
}

// Contexts in display order.
const (
	ContextGlobal = "global"
	ContextPlayer = "player"
	ContextInput  = "input"
)

// All contains all key bindings for help generation.
var All = []Binding{
	// Global
	{ActionQuit, []string{"ctrl+c"}, "Quit application", ContextGlobal},
	{ActionToggleLanguage, []string{"ctrl+l"}, "Switch language", ContextGlobal},

	// Player
	{ActionPlayPause, []string{" "}, "Play/pause", ContextPlayer},
	{ActionStepForward, []string{"right", "l"}, "Next step", ContextPlayer},
	{ActionStepBack, []string{"left", "h"}, "Previous step", ContextPlayer},
	{ActionSeekStart, []string{"home", "g"}, "First step", ContextPlayer},
	{ActionSeekEnd, []string{"end", "G"}, "Last step", ContextPlayer},
	{ActionFaster, []string{"+", "="}, "Faster", ContextPlayer},
	{ActionSlower, []string{"-", "_"}, "Slower", ContextPlayer},
	{ActionQuery, []string{"r"}, "Range query", ContextPlayer},
	{ActionToggleLanguage, []string{"L"}, "Switch language", ContextPlayer},
	{ActionHelp, []string{"?"}, "Show help", ContextPlayer},
	{ActionBack, []string{"esc"}, "Back to input", ContextPlayer},
	{ActionQuit, []string{"q"}, "Quit application", ContextPlayer},

	// Input form
	{ActionNextField, []string{"tab", "down"}, "Next field", ContextInput},
	{ActionPrevField, []string{"shift+tab", "up"}, "Previous field", ContextInput},
	{ActionNextScreen, []string{"ctrl+n"}, "Next visualization", ContextInput},
	{ActionStart, []string{"enter"}, "Start", ContextInput},
	{ActionRandomize, []string{"ctrl+r"}, "Random values", ContextInput},
	{ActionSort, []string{"ctrl+s"}, "Sort list", ContextInput},
	{ActionQuit, []string{"esc"}, "Quit application", ContextInput},
}

// ByContext returns key bindings filtered by context.
func ByContext(context string) []Binding {
	var result []Binding
	for _, kb := range All {
		if kb.Context == context {
			result = append(result, kb)
		}
	}
	return result
}

// ForContext returns the global bindings followed by those of context,
// ready for a Resolver.
func ForContext(context string) []Binding {
	return append(ByContext(ContextGlobal), ByContext(context)...)
}
