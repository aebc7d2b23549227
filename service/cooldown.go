package service

import (
	"time"
)

// CooldownStatus reports whether a rate-limited action may run now.
type CooldownStatus struct {
	Allowed   bool
	Remaining time.Duration // exact wait left; only meaningful when blocked
}

// CheckCooldown applies a cooldown window to the time an action last ran.
// A nil last time means the action has never run; a non-positive window
// disables the cooldown entirely. When blocked, Remaining is the exact
// window - elapsed and is always positive.
func CheckCooldown(last *time.Time, now time.Time, window time.Duration) CooldownStatus {
	if last == nil || window <= 0 {
		return CooldownStatus{Allowed: true}
	}

	elapsed := now.Sub(*last)
	if elapsed >= window {
		return CooldownStatus{Allowed: true}
	}
	return CooldownStatus{Remaining: window - elapsed}
}
