package kyc

import (
	"errors"
	"time"

	"inclusionnet/internal/domain/user"
)

var (
	ErrNotFound        = errors.New("kyc document not found")
	ErrAlreadyReviewed = errors.New("kyc document already reviewed")
)

type DocumentType string

const (
	DocPAN           DocumentType = "PAN"
	DocAadhaar       DocumentType = "AADHAAR"
	DocPassport      DocumentType = "PASSPORT"
	DocBankStatement DocumentType = "BANK_STATEMENT"
	DocSalarySlip    DocumentType = "SALARY_SLIP"
)

func (t DocumentType) Valid() bool {
	switch t {
	case DocPAN, DocAadhaar, DocPassport, DocBankStatement, DocSalarySlip:
		return true
	}
	return false
}

type Status string

const (
	StatusPending  Status = "PENDING"
	StatusVerified Status = "VERIFIED"
	StatusRejected Status = "REJECTED"
)

func (s Status) Valid() bool {
	return s == StatusPending || s == StatusVerified || s == StatusRejected
}

type Document struct {
	ID           uint64       `gorm:"primaryKey;column:id" json:"id"`
	UserID       uint64       `gorm:"not null;index" json:"userId"`
	DocumentType DocumentType `gorm:"size:32;not null" json:"documentType"`
	DocumentURL  string       `gorm:"column:document_url;type:text;not null" json:"documentUrl"`
	Status       Status       `gorm:"size:16;not null;index" json:"status"`
	Remarks      *string      `gorm:"type:text" json:"remarks"`
	ReviewedBy   *uint64      `json:"reviewedBy"`
	ReviewedAt   *time.Time   `json:"reviewedAt"`
	CreatedAt    time.Time    `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt    time.Time    `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (Document) TableName() string { return "kyc_documents" }

// Review settles a PENDING document and returns the status the owner's
// account should take on.
func (d *Document) Review(reviewer uint64, verified bool, remarks string, at time.Time) (user.KYCStatus, error) {
	if d.Status != StatusPending {
		return "", ErrAlreadyReviewed
	}
	d.Status = StatusRejected
	userStatus := user.KYCRejected
	if verified {
		d.Status = StatusVerified
		userStatus = user.KYCVerified
	}
	if remarks != "" {
		d.Remarks = &remarks
	}
	d.ReviewedBy = &reviewer
	at = at.UTC()
	d.ReviewedAt = &at
	return userStatus, nil
}
