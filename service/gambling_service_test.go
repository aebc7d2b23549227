package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"coinbot/store"
)

func newGamblingFixture(t *testing.T, rng Rand, rules WagerRules, rollWindow time.Duration) (*gamblingService, AccountService) {
	t.Helper()
	accounts := NewAccountService(store.NewMemoryStore(), nopPublisher{}, 100)
	svc := NewGamblingService(accounts, rng, rules, rollWindow).(*gamblingService)
	return svc, accounts
}

func TestGamblingService_Roll_InvalidBet(t *testing.T) {
	ctx := context.Background()
	svc, accounts := newGamblingFixture(t, &fakeRand{values: []int{3}}, ClassicRules, 0)

	for _, bet := range []int64{0, -5} {
		_, err := svc.Roll(ctx, "123", bet)
		assert.ErrorIs(t, err, ErrInvalidBet, "bet %d", bet)
	}

	// The rejection happened before the account was ever touched.
	snapshot, err := accounts.Snapshot(ctx)
	require.NoError(t, err)
	assert.NotContains(t, snapshot, "123")
}

func TestGamblingService_Roll_InsufficientFunds(t *testing.T) {
	ctx := context.Background()
	svc, accounts := newGamblingFixture(t, &fakeRand{values: []int{3}}, ClassicRules, 0)

	_, err := svc.Roll(ctx, "123", 150)
	require.Error(t, err)

	var fundsErr *InsufficientFundsError
	require.True(t, errors.As(err, &fundsErr))
	assert.Equal(t, int64(50), fundsErr.Shortfall())

	acct, err := accounts.GetOrCreate(ctx, "123")
	require.NoError(t, err)
	assert.Equal(t, int64(100), acct.Balance)
	assert.Nil(t, acct.LastRoll)
}

func TestGamblingService_Roll_ClassicWin(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	// Intn(6) = 3 makes the draw a 4.
	svc, accounts := newGamblingFixture(t, &fakeRand{values: []int{3}}, ClassicRules, 0)
	svc.now = fixedClock(now)

	result, err := svc.Roll(ctx, "123", 10)
	require.NoError(t, err)
	assert.Equal(t, 4, result.Draw)
	assert.True(t, result.Won)
	assert.Equal(t, int64(10), result.Delta)
	assert.Equal(t, int64(20), result.Payout)
	assert.Equal(t, int64(110), result.NewBalance)

	acct, err := accounts.GetOrCreate(ctx, "123")
	require.NoError(t, err)
	assert.Equal(t, int64(110), acct.Balance)
	require.NotNil(t, acct.LastRoll)
	assert.True(t, acct.LastRoll.Equal(now))
}

func TestGamblingService_Roll_ClassicLoss(t *testing.T) {
	ctx := context.Background()
	// Intn(6) = 0 makes the draw a 1.
	svc, accounts := newGamblingFixture(t, &fakeRand{values: []int{0}}, ClassicRules, 0)

	result, err := svc.Roll(ctx, "123", 10)
	require.NoError(t, err)
	assert.Equal(t, 1, result.Draw)
	assert.False(t, result.Won)
	assert.Equal(t, int64(-10), result.Delta)
	assert.Equal(t, int64(90), result.NewBalance)

	acct, err := accounts.GetOrCreate(ctx, "123")
	require.NoError(t, err)
	assert.Equal(t, int64(90), acct.Balance)
}

func TestGamblingService_Roll_HighStakes(t *testing.T) {
	ctx := context.Background()

	t.Run("three loses", func(t *testing.T) {
		svc, _ := newGamblingFixture(t, &fakeRand{values: []int{2}}, HighStakesRules, 30*time.Second)
		result, err := svc.Roll(ctx, "123", 10)
		require.NoError(t, err)
		assert.Equal(t, 3, result.Draw)
		assert.False(t, result.Won)
		assert.Equal(t, int64(-10), result.Delta)
	})

	t.Run("five wins one and a half", func(t *testing.T) {
		svc, _ := newGamblingFixture(t, &fakeRand{values: []int{4}}, HighStakesRules, 30*time.Second)
		result, err := svc.Roll(ctx, "123", 10)
		require.NoError(t, err)
		assert.Equal(t, 5, result.Draw)
		assert.True(t, result.Won)
		assert.Equal(t, int64(5), result.Delta)
		assert.Equal(t, int64(105), result.NewBalance)
	})
}

func TestGamblingService_Roll_CooldownStartsAtResolution(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	svc, _ := newGamblingFixture(t, &fakeRand{values: []int{3}}, HighStakesRules, 30*time.Second)
	svc.now = fixedClock(now)

	_, err := svc.Roll(ctx, "123", 10)
	require.NoError(t, err)

	svc.now = fixedClock(now.Add(10 * time.Second))
	_, err = svc.Roll(ctx, "123", 10)
	require.Error(t, err)

	var cooldownErr *CooldownActiveError
	require.True(t, errors.As(err, &cooldownErr))
	assert.Equal(t, "roll", cooldownErr.Action)
	assert.Equal(t, 20*time.Second, cooldownErr.Remaining)

	svc.now = fixedClock(now.Add(30 * time.Second))
	_, err = svc.Roll(ctx, "123", 10)
	assert.NoError(t, err)
}

func TestGamblingService_Roll_NeverDrivesBalanceNegative(t *testing.T) {
	ctx := context.Background()
	svc, accounts := newGamblingFixture(t, &fakeRand{values: []int{0}}, ClassicRules, 0)

	// Lose everything, then try to bet again.
	result, err := svc.Roll(ctx, "123", 100)
	require.NoError(t, err)
	assert.Equal(t, int64(0), result.NewBalance)

	_, err = svc.Roll(ctx, "123", 1)
	var fundsErr *InsufficientFundsError
	require.True(t, errors.As(err, &fundsErr))
	assert.Equal(t, int64(1), fundsErr.Shortfall())

	snapshot, err := accounts.Snapshot(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(0), snapshot["123"].Balance)
}
