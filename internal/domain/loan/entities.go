package loan

import (
	"errors"
	"time"

	"inclusionnet/pkg/cursor"
)

var (
	ErrNotFound          = errors.New("loan application not found")
	ErrInvalidTransition = errors.New("invalid loan status transition")
	ErrOpenApplication   = errors.New("borrower already has an open loan application")
	ErrNotOwner          = errors.New("loan application belongs to another borrower")
)

type Status string

const (
	StatusPending     Status = "PENDING"
	StatusUnderReview Status = "UNDER_REVIEW"
	StatusApproved    Status = "APPROVED"
	StatusRejected    Status = "REJECTED"
)

func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusUnderReview, StatusApproved, StatusRejected:
		return true
	}
	return false
}

// CanTransitionTo encodes the admin review flow:
// PENDING -> UNDER_REVIEW | APPROVED | REJECTED, UNDER_REVIEW -> APPROVED | REJECTED.
func (s Status) CanTransitionTo(next Status) bool {
	switch s {
	case StatusPending:
		return next == StatusUnderReview || next == StatusApproved || next == StatusRejected
	case StatusUnderReview:
		return next == StatusApproved || next == StatusRejected
	}
	return false
}

// Open means the application is still awaiting an admin decision.
func (s Status) Open() bool { return s == StatusPending || s == StatusUnderReview }

type Application struct {
	ID               uint64    `gorm:"primaryKey;column:id" json:"id"`
	BorrowerID       uint64    `gorm:"not null;index:idx_loans_borrower" json:"borrowerId"`
	LoanAmount       float64   `gorm:"type:decimal(18,2);not null;index" json:"loanAmount"`
	LoanTenureMonths int       `gorm:"not null" json:"loanTenureMonths"`
	LoanPurpose      string    `gorm:"size:255;not null" json:"loanPurpose"`
	CreditScore      *int      `gorm:"index" json:"creditScore"`
	Status           Status    `gorm:"size:16;not null;index" json:"status"`
	AdminRemarks     *string   `gorm:"type:text" json:"adminRemarks"`
	CreatedAt        time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt        time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (Application) TableName() string { return "loan_applications" }

// Transition moves the application to next, recording remarks when given.
func (a *Application) Transition(next Status, remarks string) error {
	if !a.Status.CanTransitionTo(next) {
		return ErrInvalidTransition
	}
	a.Status = next
	if remarks != "" {
		a.AdminRemarks = &remarks
	}
	return nil
}

// Match selects loans a lender can fund. REJECTED loans are never returned.
type Match struct {
	MaxAmount       float64
	MinCreditScore  *int
	MinTenureMonths *int
	MaxTenureMonths *int
	Page            cursor.Params
}
