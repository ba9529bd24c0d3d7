// Package helpbindings renders key binding help from the keymap with the
// bubbles help component.
package helpbindings

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"

	"github.com/llehouerou/stepviz/internal/keymap"
	"github.com/llehouerou/stepviz/internal/ui/styles"
)

// categoryLabels maps context names to display labels.
var categoryLabels = map[string]string{
	keymap.ContextGlobal: "Global",
	keymap.ContextPlayer: "Player",
	keymap.ContextInput:  "Input",
}

// columnSize is the number of bindings per column in the full view.
const columnSize = 6

// KeyMap adapts keymap bindings to help.KeyMap.
type KeyMap struct {
	bindings []key.Binding
}

// For collects the bindings of the given contexts, in order.
func For(contexts ...string) KeyMap {
	var km KeyMap
	for _, ctx := range contexts {
		for _, b := range keymap.ByContext(ctx) {
			km.bindings = append(km.bindings, toKey(b))
		}
	}
	return km
}

// Only keeps the first binding of each action in context (globals first),
// in the order of actions.
func Only(context string, actions ...keymap.Action) KeyMap {
	var km KeyMap
	bindings := keymap.ForContext(context)
	for _, a := range actions {
		for _, b := range bindings {
			if b.Action == a {
				km.bindings = append(km.bindings, toKey(b))
				break
			}
		}
	}
	return km
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return k.bindings
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	var cols [][]key.Binding
	for start := 0; start < len(k.bindings); start += columnSize {
		cols = append(cols, k.bindings[start:min(start+columnSize, len(k.bindings))])
	}
	return cols
}

func toKey(b keymap.Binding) key.Binding {
	return key.NewBinding(
		key.WithKeys(b.Keys...),
		key.WithHelp(DisplayKeys(b.Keys), b.Description),
	)
}

// DisplayKeys joins key names for display, spelling out the space key.
func DisplayKeys(keys []string) string {
	names := make([]string, len(keys))
	for i, k := range keys {
		if k == " " {
			k = "space"
		}
		names[i] = k
	}
	return strings.Join(names, "/")
}

func newHelp(width int) help.Model {
	st := styles.T().S()
	h := help.New()
	h.Width = width
	h.Styles.ShortKey = st.Key
	h.Styles.FullKey = st.Key
	h.Styles.ShortDesc = st.Muted
	h.Styles.FullDesc = st.Muted
	h.Styles.ShortSeparator = st.Subtle
	h.Styles.FullSeparator = st.Subtle
	h.Styles.Ellipsis = st.Subtle
	return h
}

// Short renders a single hint line, truncated to width.
func Short(km KeyMap, width int) string {
	return newHelp(width).ShortHelpView(km.ShortHelp())
}

// View renders the full help for contexts, one titled section per context.
func View(contexts []string, width int) string {
	st := styles.T().S()
	h := newHelp(width)

	sections := make([]string, 0, len(contexts)+1)
	sections = append(sections, st.Title.Render("Help"))
	for _, ctx := range contexts {
		km := For(ctx)
		if len(km.bindings) == 0 {
			continue
		}
		label := categoryLabels[ctx]
		if label == "" {
			label = ctx
		}
		sections = append(sections, st.Label.Render(label)+"\n"+h.FullHelpView(km.FullHelp()))
	}
	sections = append(sections, st.Subtle.Render("? or esc to close"))
	return strings.Join(sections, "\n\n")
}
