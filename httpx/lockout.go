package httpx

import (
	"sync"
	"time"
)

// loginGuard tracks failed login attempts per username. It is owned by
// one credentials verifier instance; there is no package-level state.
type loginGuard struct {
	mu       sync.Mutex
	policy   LockoutPolicy
	attempts map[string]*attemptState
	now      func() time.Time
}

type attemptState struct {
	count       int
	firstFailed time.Time
	lockedUntil time.Time
}

func newLoginGuard(policy LockoutPolicy) *loginGuard {
	return &loginGuard{
		policy:   policy,
		attempts: map[string]*attemptState{},
		now:      time.Now,
	}
}

func (g *loginGuard) locked(username string) bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	st, ok := g.attempts[username]
	if !ok {
		return false
	}
	if st.lockedUntil.After(g.now()) {
		return true
	}
	if !st.lockedUntil.IsZero() {
		// lockout expired, start over
		delete(g.attempts, username)
	}
	return false
}

func (g *loginGuard) fail(username string) {
	if g.policy.MaxAttempts <= 0 {
		return
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	now := g.now()
	st, ok := g.attempts[username]
	if !ok || now.Sub(st.firstFailed) > g.policy.Window {
		st = &attemptState{firstFailed: now}
		g.attempts[username] = st
	}

	st.count++
	if st.count >= g.policy.MaxAttempts {
		st.lockedUntil = now.Add(g.policy.Window)
	}
}

func (g *loginGuard) reset(username string) {
	g.mu.Lock()
	defer g.mu.Unlock()
	delete(g.attempts, username)
}
