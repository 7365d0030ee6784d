package eligibility

import "inclusionnet/pkg/finance"

type Input struct {
	MonthlyIncome float64 `json:"monthlyIncome" validate:"gt=0,lte=1000000000000"`
	ExistingEMI   float64 `json:"existingEMI" validate:"gte=0,lte=1000000000000"`
	TenureMonths  int     `json:"tenureMonths" validate:"gt=0,lte=480"`
	// nil picks the default rate; an explicit 0 is an interest-free loan
	AnnualInterestRate *float64 `json:"annualInterestRate" validate:"omitempty,gte=0,lte=100"`
	FOIR               float64  `json:"foir" validate:"gte=0,lte=1"`
	RiskCategory       string   `json:"riskCategory" validate:"omitempty,risk"`
}

func (in Input) params() finance.Params {
	p := finance.Params{
		MonthlyIncome: in.MonthlyIncome,
		ExistingEMI:   in.ExistingEMI,
		TenureMonths:  in.TenureMonths,
		FOIR:          in.FOIR,
		Risk:          finance.RiskCategory(in.RiskCategory),
	}.WithDefaults()
	if in.AnnualInterestRate != nil && *in.AnnualInterestRate >= 0 {
		p.AnnualInterestRate = *in.AnnualInterestRate
	}
	return p
}

// Result echoes the effective inputs so callers can see which defaults applied.
type Result struct {
	MaxLoanAmount      int64                `json:"maxLoanAmount"`
	EstimatedEMI       int64                `json:"estimatedEMI"`
	MaxAffordableEMI   float64              `json:"maxAffordableEMI"`
	MonthlyIncome      float64              `json:"monthlyIncome"`
	ExistingEMI        float64              `json:"existingEMI"`
	TenureMonths       int                  `json:"tenureMonths"`
	AnnualInterestRate float64              `json:"annualInterestRate"`
	FOIR               float64              `json:"foir"`
	RiskCategory       finance.RiskCategory `json:"riskCategory,omitempty"`
	Eligible           bool                 `json:"eligible"`
}
