package reward

import (
	"math/rand/v2"

	"github.com/saradorri/economyengine/internal/domain"
)

// GuaranteedRoll is the roll reported when the pity counter forces a hit
const GuaranteedRoll = -1

const (
	rollRange         = 100
	hardModeRollRange = 85
)

// RNG is the randomness source of the calculator
type RNG interface {
	IntN(n int) int
	Int64N(n int64) int64
}

type globalRNG struct{}

func (globalRNG) IntN(n int) int       { return rand.IntN(n) }
func (globalRNG) Int64N(n int64) int64 { return rand.Int64N(n) }

// NewRNG returns a goroutine safe RNG backed by math/rand/v2
func NewRNG() RNG {
	return globalRNG{}
}

// Tier is the odds and payout ceiling of one classification
type Tier struct {
	Rate      int64
	MaxAmount int64
}

// Input is everything one evaluation depends on
type Input struct {
	Classification     domain.NPCClass
	HardMode           bool
	Misses             int
	BossEligible       bool
	Tier               Tier
	HardModeMultiplier float64
	RankMultiplier     float64
	PityThreshold      int
}

// Outcome is the result of one evaluation
type Outcome struct {
	Evaluated  bool
	Hit        bool
	Guaranteed bool
	Roll       int
	Amount     int64
	Reason     domain.Reason
	Misses     int
}

// Evaluate decides the reward of one kill. Boss classes without eligibility
// are not evaluated and leave the miss counter as it was.
func Evaluate(in Input, rng RNG) Outcome {
	out := Outcome{
		Reason: in.Classification.Reason(),
		Misses: in.Misses,
	}
	if in.Classification.IsBoss() && !in.BossEligible {
		return out
	}
	out.Evaluated = true

	if in.PityThreshold > 0 && in.Misses >= in.PityThreshold {
		out.Guaranteed = true
		out.Roll = GuaranteedRoll
	} else {
		span := rollRange
		if in.HardMode {
			span = hardModeRollRange
		}
		out.Roll = rng.IntN(span + 1)
	}

	out.Hit = out.Guaranteed || int64(out.Roll) < in.Tier.Rate
	if !out.Hit {
		out.Misses = in.Misses + 1
		return out
	}
	out.Misses = 0

	amount := in.Tier.MaxAmount
	if !out.Guaranteed {
		amount = 0
		if in.Tier.MaxAmount > 0 {
			amount = rng.Int64N(in.Tier.MaxAmount)
		}
	}
	out.Amount = applyMultipliers(amount, in)
	return out
}

func applyMultipliers(amount int64, in Input) int64 {
	if in.HardMode && in.HardModeMultiplier > 0 {
		amount = int64(float64(amount) * in.HardModeMultiplier)
	}
	rankMultiplier := in.RankMultiplier
	if rankMultiplier <= 0 {
		rankMultiplier = 1.0
	}
	return int64(float64(amount) * rankMultiplier)
}
