package keymap

import "slices"

// Resolver maps key strings to actions for a set of contexts.
type Resolver struct {
	byKey    map[string]Binding
	byAction map[Action][]string
}

// NewResolver indexes bindings. With contexts given, bindings from other
// contexts are left out. When two bindings share a key the first one wins.
func NewResolver(bindings []Binding, contexts ...string) *Resolver {
	r := &Resolver{
		byKey:    make(map[string]Binding),
		byAction: make(map[Action][]string),
	}
	for _, b := range bindings {
		if len(contexts) > 0 && !slices.Contains(contexts, b.Context) {
			continue
		}
		for _, k := range b.Keys {
			if _, taken := r.byKey[k]; !taken {
				r.byKey[k] = b
			}
			if !slices.Contains(r.byAction[b.Action], k) {
				r.byAction[b.Action] = append(r.byAction[b.Action], k)
			}
		}
	}
	return r
}

// Resolve returns the action bound to key, or "" if none.
func (r *Resolver) Resolve(key string) Action {
	return r.byKey[key].Action
}

// Lookup returns the full binding for key.
func (r *Resolver) Lookup(key string) (Binding, bool) {
	b, ok := r.byKey[key]
	return b, ok
}

// KeysFor returns the keys bound to an action in binding order.
func (r *Resolver) KeysFor(action Action) []string {
	return r.byAction[action]
}
