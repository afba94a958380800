package httpx

import (
	"testing"
	"time"
)

func testGuard() (*loginGuard, *time.Time) {
	now := time.Date(2025, 9, 1, 12, 0, 0, 0, time.UTC)
	g := newLoginGuard(LockoutPolicy{MaxAttempts: 3, Window: 15 * time.Minute})
	g.now = func() time.Time { return now }
	return g, &now
}

func TestLockoutAfterMaxAttempts(t *testing.T) {
	g, _ := testGuard()

	g.fail("admin")
	g.fail("admin")
	if g.locked("admin") {
		t.Fatal("locked before reaching the limit")
	}

	g.fail("admin")
	if !g.locked("admin") {
		t.Fatal("not locked after third failure")
	}
}

func TestLockoutExpires(t *testing.T) {
	g, now := testGuard()

	g.fail("admin")
	g.fail("admin")
	g.fail("admin")
	if !g.locked("admin") {
		t.Fatal("not locked")
	}

	*now = now.Add(16 * time.Minute)
	if g.locked("admin") {
		t.Fatal("still locked after the window passed")
	}
	// counter restarted: one more failure must not lock immediately
	g.fail("admin")
	if g.locked("admin") {
		t.Fatal("locked again after a single failure")
	}
}

func TestFailuresOutsideWindowDoNotAccumulate(t *testing.T) {
	g, now := testGuard()

	g.fail("admin")
	g.fail("admin")
	*now = now.Add(20 * time.Minute)
	g.fail("admin")
	if g.locked("admin") {
		t.Fatal("stale failures counted toward lockout")
	}
}

func TestResetClearsAttempts(t *testing.T) {
	g, _ := testGuard()

	g.fail("admin")
	g.fail("admin")
	g.reset("admin")
	g.fail("admin")
	if g.locked("admin") {
		t.Fatal("locked despite reset")
	}
}

func TestLockoutIsPerUsername(t *testing.T) {
	g, _ := testGuard()

	g.fail("admin")
	g.fail("admin")
	g.fail("admin")
	if g.locked("president") {
		t.Fatal("lockout leaked to another username")
	}
}

func TestDisabledPolicy(t *testing.T) {
	g := newLoginGuard(LockoutPolicy{})
	for i := 0; i < 100; i++ {
		g.fail("admin")
	}
	if g.locked("admin") {
		t.Fatal("disabled policy locked an account")
	}
}
