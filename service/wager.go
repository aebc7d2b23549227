package service

import (
	"math"
)

// WagerRules parameterizes the dice game: draws strictly above WinThreshold
// win, and a win pays floor(PayoutMultiplier * bet) back in total. Both game
// modes are the same algorithm with different constants.
type WagerRules struct {
	WinThreshold     int
	PayoutMultiplier float64
}

var (
	// ClassicRules: only a 1 loses, a win pays double.
	ClassicRules = WagerRules{WinThreshold: 1, PayoutMultiplier: 2.0}

	// HighStakesRules: 1-3 lose, a win pays 1.5x truncated to whole coins.
	HighStakesRules = WagerRules{WinThreshold: 3, PayoutMultiplier: 1.5}
)

// WagerOutcome is the resolved result of a single bet. Delta is the signed
// balance change; the engine never mutates a balance itself.
type WagerOutcome struct {
	Won    bool
	Payout int64 // total returned on a win, 0 on a loss
	Delta  int64
}

// ResolveWager scores one bet against a dice draw in [1,6]. The caller has
// already validated that the bet is positive and covered by the balance.
func ResolveWager(bet int64, draw int, rules WagerRules) WagerOutcome {
	if draw > rules.WinThreshold {
		payout := int64(math.Floor(rules.PayoutMultiplier * float64(bet)))
		return WagerOutcome{Won: true, Payout: payout, Delta: payout - bet}
	}
	return WagerOutcome{Delta: -bet}
}
