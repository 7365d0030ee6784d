// Package finance holds the loan arithmetic shared by eligibility checks,
// loan scheduling and matching. Every function is pure.
package finance

import (
	"math"
	"strings"
)

const (
	DefaultAnnualRate = 12.0
	DefaultFOIR       = 0.40
)

// RiskCategory scales the affordable principal. Matching is case-insensitive.
type RiskCategory string

const (
	RiskLow    RiskCategory = "Low"
	RiskMedium RiskCategory = "Medium"
	RiskHigh   RiskCategory = "High"
)

// Multiplier returns 1.2 / 1.0 / 0.7 for Low / Medium / High and 1.0 otherwise.
func (r RiskCategory) Multiplier() float64 {
	switch strings.ToLower(strings.TrimSpace(string(r))) {
	case "low":
		return 1.2
	case "high":
		return 0.7
	default:
		return 1.0
	}
}

// Valid reports whether r is one of the known categories (case-insensitive).
func (r RiskCategory) Valid() bool {
	switch strings.ToLower(strings.TrimSpace(string(r))) {
	case "low", "medium", "high":
		return true
	}
	return false
}

// Params carries the optional eligibility inputs. Zero values pick the defaults.
type Params struct {
	MonthlyIncome      float64
	ExistingEMI        float64
	TenureMonths       int
	AnnualInterestRate float64
	FOIR               float64
	Risk               RiskCategory
}

// WithDefaults fills the optional fields that were left non-positive.
func (p Params) WithDefaults() Params {
	if p.ExistingEMI < 0 {
		p.ExistingEMI = 0
	}
	if p.AnnualInterestRate <= 0 {
		p.AnnualInterestRate = DefaultAnnualRate
	}
	if p.FOIR <= 0 {
		p.FOIR = DefaultFOIR
	}
	return p
}

// MaxLoanAmount is CalculateMaxLoanAmount over p after defaults are applied.
func MaxLoanAmount(p Params) int64 {
	p = p.WithDefaults()
	return CalculateMaxLoanAmount(p.MonthlyIncome, p.ExistingEMI, p.TenureMonths, p.AnnualInterestRate, p.FOIR, p.Risk)
}

// CalculateMaxLoanAmount returns the largest whole principal whose EMI fits in
// monthlyIncome*foir - existingEMI over tenureMonths, scaled by the risk
// multiplier. Any input that makes the result meaningless yields 0.
func CalculateMaxLoanAmount(monthlyIncome, existingEMI float64, tenureMonths int, annualInterestRate, foir float64, risk RiskCategory) int64 {
	if monthlyIncome <= 0 || tenureMonths <= 0 || isBad(monthlyIncome, existingEMI, annualInterestRate, foir) {
		return 0
	}
	if annualInterestRate < 0 {
		annualInterestRate = 0
	}
	emi := monthlyIncome*foir - existingEMI
	if emi <= 0 {
		return 0
	}

	r := monthlyRate(annualInterestRate)
	n := float64(tenureMonths)
	var principal float64
	if r == 0 {
		principal = emi * n
	} else {
		f := math.Pow(1+r, n)
		if math.IsInf(f, 1) {
			// (f-1)/f tends to 1 for very long tenures
			principal = emi / r
		} else {
			principal = emi * (f - 1) / (r * f)
		}
	}

	principal *= risk.Multiplier()
	if principal <= 0 || math.IsNaN(principal) {
		return 0
	}
	return whole(math.Floor(principal))
}

// maxWhole is 2^63, the first float64 outside the int64 range.
const maxWhole = float64(1 << 63)

// whole converts an already rounded positive amount, saturating at MaxInt64.
func whole(v float64) int64 {
	if v >= maxWhole {
		return math.MaxInt64
	}
	return int64(v)
}

func monthlyRate(annual float64) float64 { return annual / 12 / 100 }

func isBad(vs ...float64) bool {
	for _, v := range vs {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return true
		}
	}
	return false
}
