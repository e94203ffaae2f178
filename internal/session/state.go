// Package session holds the per-browser extraction result.
package session

// State is the application state of one session. It is a value: handlers
// receive it, derive a new one and hand it back to the Store.
type State struct {
	Snippet string
}

// HasResult reports whether a snippet is current.
func (s State) HasResult() bool {
	return s.Snippet != ""
}

// Apply returns the state after an extraction. A non-empty snippet replaces
// the current one wholesale; an empty one leaves s unchanged.
func (s State) Apply(snippet string) State {
	if snippet == "" {
		return s
	}
	return State{Snippet: snippet}
}
