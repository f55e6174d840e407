// Package session holds the process-local authenticated/anonymous flag that
// gates navigation. It is not a security boundary: nothing at the data layer
// checks it, and a restart resets it to Anonymous.
package session

import "sync"

// State is the session gate state.
type State string

const (
	Anonymous     State = "anonymous"
	Authenticated State = "authenticated"
)

type Gate struct {
	mu            sync.Mutex
	authenticated bool
}

func NewGate() *Gate {
	return &Gate{}
}

// Authenticate moves the gate to Authenticated.
func (g *Gate) Authenticate() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.authenticated = true
}

// Reset moves the gate back to Anonymous.
func (g *Gate) Reset() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.authenticated = false
}

func (g *Gate) State() State {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.authenticated {
		return Authenticated
	}
	return Anonymous
}
