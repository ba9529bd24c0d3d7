package keymap

// Resolver maps the keys of one screen to actions.
type Resolver struct {
	context string
	actions map[string]Action
}

// NewResolver builds the resolver of a screen context from the global
// bindings followed by the context's own. A context binding overrides a
// global one on the same key.
func NewResolver(context string) *Resolver {
	r := &Resolver{context: context, actions: make(map[string]Action)}
	for _, b := range ForContext(context) {
		for _, key := range b.Keys {
			r.actions[key] = b.Action
		}
	}
	return r
}

// Context returns the screen context the resolver was built for.
func (r *Resolver) Context() string {
	return r.context
}

// Resolve returns the action bound to key, or "" when none is.
func (r *Resolver) Resolve(key string) Action {
	return r.actions[key]
}

// Is reports whether key triggers action.
func (r *Resolver) Is(key string, action Action) bool {
	a, ok := r.actions[key]
	return ok && a == action
}
