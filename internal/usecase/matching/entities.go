package matching

import (
	"time"

	"inclusionnet/internal/domain/loan"
	"inclusionnet/pkg/cursor"
)

type LendersQuery struct {
	LoanID          uint64
	MaxInterestRate *float64
	Page            cursor.Params
}

type LoansQuery struct {
	MinCreditScore  *int
	MinTenureMonths *int
	MaxTenureMonths *int
	Page            cursor.Params
}

type LenderMatchDTO struct {
	ID               uint64      `json:"id"`
	UserID           uint64      `json:"userId"`
	Name             string      `json:"name"`
	AvailableFunds   float64     `json:"availableFunds"`
	InterestRate     float64     `json:"interestRate"`
	KYCStatus        string      `json:"kycStatus"`
	MatchScore       float64     `json:"matchScore"`
	MatchProbability Probability `json:"matchProbability"`
}

type LoanMatchDTO struct {
	ID               uint64      `json:"id"`
	BorrowerID       uint64      `json:"borrowerId"`
	LoanAmount       float64     `json:"loanAmount"`
	LoanTenureMonths int         `json:"loanTenureMonths"`
	LoanPurpose      string      `json:"loanPurpose"`
	CreditScore      *int        `json:"creditScore"`
	Status           loan.Status `json:"status"`
	CreatedAt        time.Time   `json:"createdAt"`
	MatchScore       float64     `json:"matchScore"`
	MatchProbability Probability `json:"matchProbability"`
}
