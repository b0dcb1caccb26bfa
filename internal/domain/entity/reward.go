package entity

import "github.com/shopspring/decimal"

// Reward is the amount credited for one play, in minor units per currency
type Reward struct {
	SC int64
	GC int64
}

// Balances returns the reward as a per-currency amount set
func (r Reward) Balances() Balances {
	return Balances{GC: r.GC, SC: r.SC}
}

// CalculateReward computes the reward for a play.
//
//	gross   = score * rate
//	penalty = penaltyUnits * rate
//	reward  = min(max(0, gross - penalty), cap)
//
// Each currency is computed independently and truncated to minor units, so the
// result is always within [0, cap]. Negative inputs count as zero.
func CalculateReward(cfg GameConfig, score, penaltyUnits int64) Reward {
	return Reward{
		SC: clampReward(score, penaltyUnits, cfg.SCRate, cfg.SCCap),
		GC: clampReward(score, penaltyUnits, cfg.GCRate, cfg.GCCap),
	}
}

func clampReward(score, penaltyUnits int64, rate decimal.Decimal, capCents int64) int64 {
	if score < 0 {
		score = 0
	}
	if penaltyUnits < 0 {
		penaltyUnits = 0
	}
	if capCents <= 0 || rate.Sign() <= 0 {
		return 0
	}

	gross := decimal.NewFromInt(score).Mul(rate)
	penalty := decimal.NewFromInt(penaltyUnits).Mul(rate)
	net := gross.Sub(penalty)
	if net.Sign() <= 0 {
		return 0
	}

	capValue := CentsToDecimal(capCents)
	if net.GreaterThan(capValue) {
		return capCents
	}

	cents, err := DecimalToCents(net)
	if err != nil {
		return capCents
	}
	return cents
}
