package finance

import "github.com/shopspring/decimal"

// Installment is one row of an amortization schedule. Amounts are rounded to cents.
type Installment struct {
	Number    int             `json:"number"`
	EMI       decimal.Decimal `json:"emi"`
	Interest  decimal.Decimal `json:"interest"`
	Principal decimal.Decimal `json:"principal"`
	Balance   decimal.Decimal `json:"balance"`
}

// Schedule amortizes principal over tenureMonths. The last installment takes
// whatever is left so the closing balance is exactly zero.
func Schedule(principal float64, tenureMonths int, annualInterestRate float64) []Installment {
	if principal <= 0 || tenureMonths <= 0 || isBad(principal, annualInterestRate) {
		return nil
	}
	if annualInterestRate < 0 {
		annualInterestRate = 0
	}

	balance := decimal.NewFromFloat(principal).Round(2)
	rate := decimal.NewFromFloat(annualInterestRate).Div(decimal.NewFromInt(1200))
	emi := decimal.NewFromFloat(emiFloat(principal, tenureMonths, annualInterestRate)).Round(2)

	out := make([]Installment, 0, tenureMonths)
	for i := 1; i <= tenureMonths; i++ {
		interest := balance.Mul(rate).Round(2)
		pay := emi
		part := pay.Sub(interest)
		if i == tenureMonths || part.GreaterThan(balance) {
			part = balance
			pay = part.Add(interest)
		}
		balance = balance.Sub(part)
		out = append(out, Installment{
			Number:    i,
			EMI:       pay,
			Interest:  interest,
			Principal: part,
			Balance:   balance,
		})
		if balance.IsZero() {
			break
		}
	}
	return out
}

// TotalPayable sums the installments of a schedule.
func TotalPayable(s []Installment) decimal.Decimal {
	total := decimal.Zero
	for _, in := range s {
		total = total.Add(in.EMI)
	}
	return total
}
