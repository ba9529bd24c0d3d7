// Package keymap defines key bindings and action dispatch for the application.
package keymap

// Action represents a user-triggerable action.
type Action string

const (
	// Global actions
	ActionQuit           Action = "quit"
	ActionHelp           Action = "help"
	ActionToggleLanguage Action = "toggle_language"
	ActionBack           Action = "back"

	// Transport actions
	ActionPlayPause   Action = "play_pause"
	ActionStepForward Action = "step_forward"
	ActionStepBack    Action = "step_back"
	ActionSeekStart   Action = "seek_start"
	ActionSeekEnd     Action = "seek_end"
	ActionFaster      Action = "faster"
	ActionSlower      Action = "slower"

	// Input form actions
	ActionNextField  Action = "next_field"
	ActionPrevField  Action = "prev_field"
	ActionNextScreen Action = "next_screen" // cycle visualization
	ActionStart      Action = "start"       // enter - trace and play
	ActionRandomize  Action = "randomize"
	ActionSort       Action = "sort"

	// Range query
	ActionQuery Action = "query"
)
