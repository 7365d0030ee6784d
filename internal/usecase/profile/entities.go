package profile

import (
	"time"

	"inclusionnet/pkg/finance"
)

type BorrowerInput struct {
	MonthlyIncome float64 `json:"monthlyIncome" validate:"gt=0,lte=1000000000000,dec2"`
	ExistingEMI   float64 `json:"existingEMI" validate:"gte=0,lte=1000000000000,dec2"`
	CreditScore   *int    `json:"creditScore" validate:"omitempty,min=300,max=900"`
	RiskCategory  *string `json:"riskCategory" validate:"omitempty,risk"`
}

type LenderInput struct {
	AvailableFunds float64 `json:"availableFunds" validate:"gte=0,dec2"`
	InterestRate   float64 `json:"interestRate" validate:"gte=0,lte=100,dec2"`
}

type BorrowerDTO struct {
	ID            uint64               `json:"id"`
	UserID        uint64               `json:"userId"`
	MonthlyIncome float64              `json:"monthlyIncome"`
	ExistingEMI   float64              `json:"existingEMI"`
	CreditScore   *int                 `json:"creditScore"`
	RiskCategory  finance.RiskCategory `json:"riskCategory,omitempty"`
	UpdatedAt     time.Time            `json:"updatedAt"`
}

type LenderDTO struct {
	ID             uint64    `json:"id"`
	UserID         uint64    `json:"userId"`
	AvailableFunds float64   `json:"availableFunds"`
	InterestRate   float64   `json:"interestRate"`
	UpdatedAt      time.Time `json:"updatedAt"`
}
