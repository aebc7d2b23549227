package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCheckCooldown(t *testing.T) {
	now := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	window := 24 * time.Hour

	t.Run("never performed is allowed", func(t *testing.T) {
		status := CheckCooldown(nil, now, window)
		assert.True(t, status.Allowed)
		assert.Zero(t, status.Remaining)
	})

	t.Run("allowed exactly at window boundary", func(t *testing.T) {
		last := now.Add(-window)
		status := CheckCooldown(&last, now, window)
		assert.True(t, status.Allowed)
	})

	t.Run("allowed after window elapsed", func(t *testing.T) {
		last := now.Add(-window - time.Hour)
		status := CheckCooldown(&last, now, window)
		assert.True(t, status.Allowed)
	})

	t.Run("blocked with exact remaining", func(t *testing.T) {
		last := now.Add(-time.Hour)
		status := CheckCooldown(&last, now, window)
		assert.False(t, status.Allowed)
		assert.Equal(t, 23*time.Hour, status.Remaining)
	})

	t.Run("blocked just before boundary keeps positive remaining", func(t *testing.T) {
		last := now.Add(-window + time.Millisecond)
		status := CheckCooldown(&last, now, window)
		assert.False(t, status.Allowed)
		assert.Equal(t, time.Millisecond, status.Remaining)
		assert.Positive(t, status.Remaining)
	})

	t.Run("zero window disables cooldown", func(t *testing.T) {
		last := now
		status := CheckCooldown(&last, now, 0)
		assert.True(t, status.Allowed)
	})

	t.Run("windows are independent per timestamp", func(t *testing.T) {
		lastBeg := now.Add(-30 * time.Second)
		assert.False(t, CheckCooldown(&lastBeg, now, time.Minute).Allowed)
		assert.True(t, CheckCooldown(nil, now, 30*time.Second).Allowed)
	})
}
