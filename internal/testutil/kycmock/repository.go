package kycmock

import (
	"context"
	"errors"

	domain "inclusionnet/internal/domain/kyc"
	"inclusionnet/pkg/cursor"
)

var _ domain.Repository = (*Repo)(nil)

var errUnimplemented = errors.New("kycmock: method not implemented")

type Repo struct {
	CreateFn           func(ctx context.Context, d *domain.Document) error
	GetByIDForUpdateFn func(ctx context.Context, id uint64) (*domain.Document, error)
	SaveFn             func(ctx context.Context, d *domain.Document) error
	ListByUserFn       func(ctx context.Context, userID uint64) ([]domain.Document, error)
	ListByStatusFn     func(ctx context.Context, status *domain.Status, p cursor.Params) ([]domain.Document, error)
}

func (m *Repo) Create(ctx context.Context, d *domain.Document) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, d)
	}
	return nil
}

func (m *Repo) GetByIDForUpdate(ctx context.Context, id uint64) (*domain.Document, error) {
	if m.GetByIDForUpdateFn != nil {
		return m.GetByIDForUpdateFn(ctx, id)
	}
	return nil, errUnimplemented
}

func (m *Repo) Save(ctx context.Context, d *domain.Document) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, d)
	}
	return nil
}

func (m *Repo) ListByUser(ctx context.Context, userID uint64) ([]domain.Document, error) {
	if m.ListByUserFn != nil {
		return m.ListByUserFn(ctx, userID)
	}
	return nil, errUnimplemented
}

func (m *Repo) ListByStatus(ctx context.Context, status *domain.Status, p cursor.Params) ([]domain.Document, error) {
	if m.ListByStatusFn != nil {
		return m.ListByStatusFn(ctx, status, p)
	}
	return nil, errUnimplemented
}
