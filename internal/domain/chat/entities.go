package chat

import (
	"context"
	"errors"
	"time"

	"inclusionnet/pkg/cursor"
)

var ErrLocked = errors.New("chat opens once the loan request is accepted")

type Message struct {
	ID            uint64    `gorm:"primaryKey;column:id" json:"id"`
	LoanRequestID uint64    `gorm:"not null;index" json:"loanRequestId"`
	SenderID      uint64    `gorm:"not null" json:"senderId"`
	Body          string    `gorm:"type:text;not null" json:"body"`
	CreatedAt     time.Time `gorm:"autoCreateTime" json:"createdAt"`
}

func (Message) TableName() string { return "chat_messages" }

type Repository interface {
	Create(ctx context.Context, m *Message) error
	// oldest first, at most p.Limit() rows
	List(ctx context.Context, loanRequestID uint64, p cursor.Params) ([]Message, error)
}
