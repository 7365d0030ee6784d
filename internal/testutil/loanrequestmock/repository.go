package loanrequestmock

import (
	"context"
	"errors"
	"time"

	domain "inclusionnet/internal/domain/loanrequest"
)

var _ domain.Repository = (*Repo)(nil)

var errUnimplemented = errors.New("loanrequestmock: method not implemented")

type Repo struct {
	CreateFn               func(ctx context.Context, r *domain.Request) error
	GetByIDFn              func(ctx context.Context, id uint64) (*domain.Request, error)
	GetByIDForUpdateFn     func(ctx context.Context, id uint64) (*domain.Request, error)
	SaveFn                 func(ctx context.Context, r *domain.Request) error
	FindPendingFn          func(ctx context.Context, loanID, lenderID uint64) (*domain.Request, error)
	ListFn                 func(ctx context.Context, f domain.ListFilter) ([]domain.Request, error)
	HasAcceptedFn          func(ctx context.Context, loanID uint64) (bool, error)
	CancelPendingForLoanFn func(ctx context.Context, loanID, exceptID uint64) (int64, error)
	CancelStaleFn          func(ctx context.Context, cutoff time.Time) (int64, error)
}

func (m *Repo) Create(ctx context.Context, r *domain.Request) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, r)
	}
	return nil
}

func (m *Repo) GetByID(ctx context.Context, id uint64) (*domain.Request, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	return nil, errUnimplemented
}

func (m *Repo) GetByIDForUpdate(ctx context.Context, id uint64) (*domain.Request, error) {
	if m.GetByIDForUpdateFn != nil {
		return m.GetByIDForUpdateFn(ctx, id)
	}
	return m.GetByID(ctx, id)
}

func (m *Repo) Save(ctx context.Context, r *domain.Request) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, r)
	}
	return nil
}

func (m *Repo) FindPending(ctx context.Context, loanID, lenderID uint64) (*domain.Request, error) {
	if m.FindPendingFn != nil {
		return m.FindPendingFn(ctx, loanID, lenderID)
	}
	return nil, domain.ErrNotFound
}

func (m *Repo) List(ctx context.Context, f domain.ListFilter) ([]domain.Request, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx, f)
	}
	return nil, errUnimplemented
}

// HasAccepted reports false unless HasAcceptedFn is set.
func (m *Repo) HasAccepted(ctx context.Context, loanID uint64) (bool, error) {
	if m.HasAcceptedFn != nil {
		return m.HasAcceptedFn(ctx, loanID)
	}
	return false, nil
}

func (m *Repo) CancelPendingForLoan(ctx context.Context, loanID, exceptID uint64) (int64, error) {
	if m.CancelPendingForLoanFn != nil {
		return m.CancelPendingForLoanFn(ctx, loanID, exceptID)
	}
	return 0, nil
}

func (m *Repo) CancelStale(ctx context.Context, cutoff time.Time) (int64, error) {
	if m.CancelStaleFn != nil {
		return m.CancelStaleFn(ctx, cutoff)
	}
	return 0, errUnimplemented
}
