package chat

import "time"

type SendInput struct {
	Body string `json:"body" validate:"required,max=4000"`
}

type MessageDTO struct {
	ID            uint64    `json:"id"`
	LoanRequestID uint64    `json:"loanRequestId"`
	SenderID      uint64    `json:"senderId"`
	Body          string    `json:"body"`
	CreatedAt     time.Time `json:"createdAt"`
}
