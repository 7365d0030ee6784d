package chatmock

import (
	"context"
	"errors"

	domain "inclusionnet/internal/domain/chat"
	"inclusionnet/pkg/cursor"
)

var _ domain.Repository = (*Repo)(nil)

var errUnimplemented = errors.New("chatmock: method not implemented")

type Repo struct {
	CreateFn func(ctx context.Context, m *domain.Message) error
	ListFn   func(ctx context.Context, loanRequestID uint64, p cursor.Params) ([]domain.Message, error)
}

func (m *Repo) Create(ctx context.Context, msg *domain.Message) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, msg)
	}
	return nil
}

func (m *Repo) List(ctx context.Context, loanRequestID uint64, p cursor.Params) ([]domain.Message, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx, loanRequestID, p)
	}
	return nil, errUnimplemented
}
