package loanmock

import (
	"context"
	"errors"

	domain "inclusionnet/internal/domain/loan"
	"inclusionnet/pkg/cursor"
)

var _ domain.Repository = (*Repo)(nil)

var errUnimplemented = errors.New("loanmock: method not implemented")

// Repo is a function-backed mock that satisfies domain.Repository.
// Unset getters return errUnimplemented, unset writers succeed.
type Repo struct {
	CreateFn            func(ctx context.Context, a *domain.Application) error
	GetByIDFn           func(ctx context.Context, id uint64) (*domain.Application, error)
	GetByIDForUpdateFn  func(ctx context.Context, id uint64) (*domain.Application, error)
	SaveFn              func(ctx context.Context, a *domain.Application) error
	GetOpenByBorrowerFn func(ctx context.Context, borrowerID uint64) (*domain.Application, error)
	ListByBorrowerFn    func(ctx context.Context, borrowerID uint64, p cursor.Params) ([]domain.Application, error)
	ListByStatusFn      func(ctx context.Context, status *domain.Status, p cursor.Params) ([]domain.Application, error)
	ListMatchingFn      func(ctx context.Context, m domain.Match) ([]domain.Application, error)
}

func (m *Repo) Create(ctx context.Context, a *domain.Application) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, a)
	}
	return nil
}

func (m *Repo) GetByID(ctx context.Context, id uint64) (*domain.Application, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	return nil, errUnimplemented
}

// GetByIDForUpdate falls back to GetByIDFn when no locking variant is set.
func (m *Repo) GetByIDForUpdate(ctx context.Context, id uint64) (*domain.Application, error) {
	if m.GetByIDForUpdateFn != nil {
		return m.GetByIDForUpdateFn(ctx, id)
	}
	return m.GetByID(ctx, id)
}

func (m *Repo) Save(ctx context.Context, a *domain.Application) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, a)
	}
	return nil
}

func (m *Repo) GetOpenByBorrower(ctx context.Context, borrowerID uint64) (*domain.Application, error) {
	if m.GetOpenByBorrowerFn != nil {
		return m.GetOpenByBorrowerFn(ctx, borrowerID)
	}
	return nil, domain.ErrNotFound
}

func (m *Repo) ListByBorrower(ctx context.Context, borrowerID uint64, p cursor.Params) ([]domain.Application, error) {
	if m.ListByBorrowerFn != nil {
		return m.ListByBorrowerFn(ctx, borrowerID, p)
	}
	return nil, errUnimplemented
}

func (m *Repo) ListByStatus(ctx context.Context, status *domain.Status, p cursor.Params) ([]domain.Application, error) {
	if m.ListByStatusFn != nil {
		return m.ListByStatusFn(ctx, status, p)
	}
	return nil, errUnimplemented
}

func (m *Repo) ListMatching(ctx context.Context, q domain.Match) ([]domain.Application, error) {
	if m.ListMatchingFn != nil {
		return m.ListMatchingFn(ctx, q)
	}
	return nil, errUnimplemented
}
