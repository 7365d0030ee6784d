package loanrequest

import (
	"time"

	domain "inclusionnet/internal/domain/loanrequest"
)

// CreateInput: borrowers name the lender, lenders leave LenderID empty.
type CreateInput struct {
	LoanApplicationID uint64 `json:"loanApplicationId" validate:"required"`
	LenderID          uint64 `json:"lenderId"`
	Message           string `json:"message" validate:"max=1000"`
}

type RequestDTO struct {
	ID                uint64        `json:"id"`
	LoanApplicationID uint64        `json:"loanApplicationId"`
	BorrowerID        uint64        `json:"borrowerId"`
	LenderID          uint64        `json:"lenderId"`
	InitiatorID       uint64        `json:"initiatorId"`
	Status            domain.Status `json:"status"`
	Message           string        `json:"message"`
	ChatOpen          bool          `json:"chatOpen"`
	CreatedAt         time.Time     `json:"createdAt"`
	UpdatedAt         time.Time     `json:"updatedAt"`
}

func toDTO(r *domain.Request) RequestDTO {
	return RequestDTO{
		ID:                r.ID,
		LoanApplicationID: r.LoanApplicationID,
		BorrowerID:        r.BorrowerID,
		LenderID:          r.LenderID,
		InitiatorID:       r.InitiatorID,
		Status:            r.Status,
		Message:           r.Message,
		ChatOpen:          r.ChatOpen(),
		CreatedAt:         r.CreatedAt,
		UpdatedAt:         r.UpdatedAt,
	}
}
