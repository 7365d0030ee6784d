package finance

import "math"

// emiTolerance absorbs float noise so an exact EMI is not pushed up by one.
const emiTolerance = 1e-9

// CalculateEMI returns the monthly installment for principal over tenureMonths,
// rounded up to the next whole unit. A zero rate spreads the principal evenly.
func CalculateEMI(principal float64, tenureMonths int, annualInterestRate float64) int64 {
	emi := emiFloat(principal, tenureMonths, annualInterestRate)
	if emi <= 0 {
		return 0
	}
	return whole(math.Ceil(emi - emiTolerance))
}

func emiFloat(principal float64, tenureMonths int, annualInterestRate float64) float64 {
	if principal <= 0 || tenureMonths <= 0 || isBad(principal, annualInterestRate) {
		return 0
	}
	if annualInterestRate < 0 {
		annualInterestRate = 0
	}
	r := monthlyRate(annualInterestRate)
	n := float64(tenureMonths)
	if r == 0 {
		return principal / n
	}
	f := math.Pow(1+r, n)
	if math.IsInf(f, 1) {
		return principal * r
	}
	return principal * r * f / (f - 1)
}
