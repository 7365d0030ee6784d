package matching

import "math"

type Probability string

const (
	ProbabilityHigh   Probability = "high"
	ProbabilityMedium Probability = "medium"
	ProbabilityLow    Probability = "low"
)

// DefaultRateCeiling is the annual rate treated as the worst acceptable
// offer when the caller gives no maxInterestRate.
const DefaultRateCeiling = 24.0

// Factors feeding Score. Credit is only counted when set.
type Factors struct {
	AvailableFunds float64
	LoanAmount     float64
	InterestRate   float64
	RateCeiling    float64
	CreditScore    *int
}

// Score is the mean of the funds headroom, rate and (optional) credit
// components, each clamped to [0,1].
func Score(f Factors) float64 {
	ceiling := f.RateCeiling
	if ceiling <= 0 {
		ceiling = DefaultRateCeiling
	}

	parts := make([]float64, 0, 3)
	if f.LoanAmount > 0 {
		parts = append(parts, clamp01(f.AvailableFunds/f.LoanAmount-1))
	}
	parts = append(parts, clamp01((ceiling-f.InterestRate)/ceiling))
	if f.CreditScore != nil {
		parts = append(parts, clamp01(float64(*f.CreditScore-300)/600))
	}

	var sum float64
	for _, p := range parts {
		sum += p
	}
	return sum / float64(len(parts))
}

func Label(score float64) Probability {
	switch {
	case score >= 0.66:
		return ProbabilityHigh
	case score >= 0.33:
		return ProbabilityMedium
	}
	return ProbabilityLow
}

func clamp01(v float64) float64 {
	if math.IsNaN(v) {
		return 0
	}
	return math.Min(1, math.Max(0, v))
}
