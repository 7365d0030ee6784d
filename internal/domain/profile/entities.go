package profile

import (
	"errors"
	"time"

	"inclusionnet/internal/domain/user"
	"inclusionnet/pkg/cursor"
	"inclusionnet/pkg/finance"
)

var (
	ErrNotFound          = errors.New("profile not found")
	ErrInsufficientFunds = errors.New("lender has insufficient available funds")
)

type BorrowerProfile struct {
	ID            uint64                `gorm:"primaryKey;column:id" json:"id"`
	UserID        uint64                `gorm:"not null;uniqueIndex:ux_borrower_profiles_user" json:"userId"`
	MonthlyIncome float64               `gorm:"type:decimal(18,2);not null" json:"monthlyIncome"`
	ExistingEMI   float64               `gorm:"column:existing_emi;type:decimal(18,2);not null" json:"existingEMI"`
	CreditScore   *int                  `json:"creditScore"`
	RiskCategory  *finance.RiskCategory `gorm:"size:16" json:"riskCategory"`
	CreatedAt     time.Time             `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt     time.Time             `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (BorrowerProfile) TableName() string { return "borrower_profiles" }

// Risk returns the category or "" when none was set.
func (p *BorrowerProfile) Risk() finance.RiskCategory {
	if p.RiskCategory == nil {
		return ""
	}
	return *p.RiskCategory
}

type LenderProfile struct {
	ID             uint64     `gorm:"primaryKey;column:id" json:"id"`
	UserID         uint64     `gorm:"not null;uniqueIndex:ux_lender_profiles_user" json:"userId"`
	AvailableFunds float64    `gorm:"type:decimal(18,2);not null;index" json:"availableFunds"`
	InterestRate   float64    `gorm:"type:decimal(6,2);not null" json:"interestRate"`
	User           *user.User `gorm:"foreignKey:UserID" json:"-"`
	CreatedAt      time.Time  `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt      time.Time  `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (LenderProfile) TableName() string { return "lender_profiles" }

// Reserve takes amount out of the available funds.
func (p *LenderProfile) Reserve(amount float64) error {
	if amount <= 0 {
		return nil
	}
	if p.AvailableFunds < amount {
		return ErrInsufficientFunds
	}
	p.AvailableFunds -= amount
	return nil
}

// LenderMatch selects lenders able to fund a loan. Only active, KYC-verified
// lenders qualify.
type LenderMatch struct {
	MinFunds        float64
	MaxInterestRate *float64
	Page            cursor.Params
}
