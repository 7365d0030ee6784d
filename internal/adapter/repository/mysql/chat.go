package mysql

import (
	"context"

	"gorm.io/gorm"

	"inclusionnet/internal/domain/chat"
	"inclusionnet/pkg/cursor"
)

type ChatRepository struct{ db *gorm.DB }

func NewChatRepository(db *gorm.DB) *ChatRepository { return &ChatRepository{db: db} }

func (r *ChatRepository) Create(ctx context.Context, m *chat.Message) error {
	return r.db.WithContext(ctx).Create(m).Error
}

func (r *ChatRepository) List(ctx context.Context, loanRequestID uint64, p cursor.Params) ([]chat.Message, error) {
	var out []chat.Message
	q := r.db.WithContext(ctx).Where("loan_request_id = ?", loanRequestID)
	err := page(q, "id", p).Find(&out).Error
	return out, err
}
