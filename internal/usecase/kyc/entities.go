package kyc

import (
	"time"

	domain "inclusionnet/internal/domain/kyc"
)

type SubmitInput struct {
	DocumentType domain.DocumentType `json:"documentType" validate:"required,oneof=PAN AADHAAR PASSPORT BANK_STATEMENT SALARY_SLIP"`
	DocumentURL  string              `json:"documentUrl" validate:"required,url,max=2048"`
}

type ReviewInput struct {
	Remarks string `json:"remarks" validate:"max=2000"`
}

type DocumentDTO struct {
	ID           uint64              `json:"id"`
	UserID       uint64              `json:"userId"`
	DocumentType domain.DocumentType `json:"documentType"`
	DocumentURL  string              `json:"documentUrl"`
	Status       domain.Status       `json:"status"`
	Remarks      *string             `json:"remarks"`
	ReviewedBy   *uint64             `json:"reviewedBy"`
	ReviewedAt   *time.Time          `json:"reviewedAt"`
	CreatedAt    time.Time           `json:"createdAt"`
}

func toDTO(d *domain.Document) DocumentDTO {
	return DocumentDTO{
		ID:           d.ID,
		UserID:       d.UserID,
		DocumentType: d.DocumentType,
		DocumentURL:  d.DocumentURL,
		Status:       d.Status,
		Remarks:      d.Remarks,
		ReviewedBy:   d.ReviewedBy,
		ReviewedAt:   d.ReviewedAt,
		CreatedAt:    d.CreatedAt,
	}
}
