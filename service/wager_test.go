package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveWager_Classic(t *testing.T) {
	t.Run("one loses", func(t *testing.T) {
		outcome := ResolveWager(10, 1, ClassicRules)
		assert.False(t, outcome.Won)
		assert.Equal(t, int64(-10), outcome.Delta)
		assert.Zero(t, outcome.Payout)
	})

	t.Run("two through six win double", func(t *testing.T) {
		for draw := 2; draw <= 6; draw++ {
			outcome := ResolveWager(10, draw, ClassicRules)
			assert.True(t, outcome.Won, "draw %d", draw)
			assert.Equal(t, int64(10), outcome.Delta, "draw %d", draw)
			assert.Equal(t, int64(20), outcome.Payout, "draw %d", draw)
		}
	})
}

func TestResolveWager_HighStakes(t *testing.T) {
	t.Run("one through three lose", func(t *testing.T) {
		for draw := 1; draw <= 3; draw++ {
			outcome := ResolveWager(10, draw, HighStakesRules)
			assert.False(t, outcome.Won, "draw %d", draw)
			assert.Equal(t, int64(-10), outcome.Delta, "draw %d", draw)
		}
	})

	t.Run("four through six win one and a half", func(t *testing.T) {
		for draw := 4; draw <= 6; draw++ {
			outcome := ResolveWager(10, draw, HighStakesRules)
			assert.True(t, outcome.Won, "draw %d", draw)
			assert.Equal(t, int64(5), outcome.Delta, "draw %d", draw)
			assert.Equal(t, int64(15), outcome.Payout, "draw %d", draw)
		}
	})

	t.Run("payout truncates to whole coins", func(t *testing.T) {
		// 1.5 * 7 = 10.5, truncated to 10
		outcome := ResolveWager(7, 5, HighStakesRules)
		assert.Equal(t, int64(10), outcome.Payout)
		assert.Equal(t, int64(3), outcome.Delta)
	})
}
