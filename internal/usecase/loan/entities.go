package loan

import (
	"time"

	domain "inclusionnet/internal/domain/loan"
	"inclusionnet/pkg/finance"
)

type CreateInput struct {
	LoanAmount       float64 `json:"loanAmount" validate:"gt=0,dec2"`
	LoanTenureMonths int     `json:"loanTenureMonths" validate:"gt=0,lte=480"`
	LoanPurpose      string  `json:"loanPurpose" validate:"required,max=255"`
}

type UpdateStatusInput struct {
	Status  domain.Status `json:"status" validate:"required,oneof=UNDER_REVIEW APPROVED REJECTED"`
	Remarks string        `json:"remarks" validate:"max=2000"`
}

type LoanDTO struct {
	ID               uint64        `json:"id"`
	BorrowerID       uint64        `json:"borrowerId"`
	LoanAmount       float64       `json:"loanAmount"`
	LoanTenureMonths int           `json:"loanTenureMonths"`
	LoanPurpose      string        `json:"loanPurpose"`
	CreditScore      *int          `json:"creditScore"`
	Status           domain.Status `json:"status"`
	AdminRemarks     *string       `json:"adminRemarks"`
	CreatedAt        time.Time     `json:"createdAt"`
	UpdatedAt        time.Time     `json:"updatedAt"`
}

func toDTO(a *domain.Application) LoanDTO {
	return LoanDTO{
		ID:               a.ID,
		BorrowerID:       a.BorrowerID,
		LoanAmount:       a.LoanAmount,
		LoanTenureMonths: a.LoanTenureMonths,
		LoanPurpose:      a.LoanPurpose,
		CreditScore:      a.CreditScore,
		Status:           a.Status,
		AdminRemarks:     a.AdminRemarks,
		CreatedAt:        a.CreatedAt,
		UpdatedAt:        a.UpdatedAt,
	}
}

type ScheduleDTO struct {
	LoanID             uint64                `json:"loanId"`
	Principal          float64               `json:"principal"`
	TenureMonths       int                   `json:"tenureMonths"`
	AnnualInterestRate float64               `json:"annualInterestRate"`
	EMI                int64                 `json:"emi"`
	TotalPayable       string                `json:"totalPayable"`
	Installments       []finance.Installment `json:"installments"`
}
