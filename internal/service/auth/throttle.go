package authservice

import (
	"fmt"
	"math"
	"sync"
	"time"
)

// ThrottleCooldownCapSeconds caps the exponential login cooldown.
const ThrottleCooldownCapSeconds = 30

type ThrottledError struct {
	WaitSeconds int
}

func (e *ThrottledError) Error() string {
	return fmt.Sprintf("too many failed attempts, retry in %d seconds", e.WaitSeconds)
}

type throttleState struct {
	failCount     int
	cooldownUntil time.Time
}

// loginThrottle tracks failed logins per username with an exponential
// cooldown of min(30, 2^failCount) seconds.
type loginThrottle struct {
	mu    sync.Mutex
	state map[string]*throttleState
}

func newLoginThrottle() *loginThrottle {
	return &loginThrottle{
		state: make(map[string]*throttleState),
	}
}

// WaitSeconds returns how many seconds the user must wait before the next
// attempt (0 if no cooldown), rounded up.
func (t *loginThrottle) WaitSeconds(username string) int {
	t.mu.Lock()
	defer t.mu.Unlock()

	s, ok := t.state[username]
	if !ok {
		return 0
	}
	if time.Now().Before(s.cooldownUntil) {
		return int(time.Until(s.cooldownUntil).Seconds()) + 1
	}
	return 0
}

func (t *loginThrottle) RecordFailed(username string) {
	t.mu.Lock()
	defer t.mu.Unlock()

	s, ok := t.state[username]
	if !ok {
		s = &throttleState{}
		t.state[username] = s
	}
	s.failCount++
	s.cooldownUntil = time.Now().Add(time.Duration(CooldownSecondsForFailCount(s.failCount)) * time.Second)
}

func (t *loginThrottle) RecordSuccess(username string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	delete(t.state, username)
}

// CooldownSecondsForFailCount returns min(30, 2^failCount).
func CooldownSecondsForFailCount(failCount int) int {
	s := int(math.Pow(2, float64(failCount)))
	if s > ThrottleCooldownCapSeconds {
		return ThrottleCooldownCapSeconds
	}
	return s
}
