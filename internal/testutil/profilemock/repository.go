package profilemock

import (
	"context"
	"errors"

	domain "inclusionnet/internal/domain/profile"
)

var (
	_ domain.BorrowerRepository = (*BorrowerRepo)(nil)
	_ domain.LenderRepository   = (*LenderRepo)(nil)
)

var errUnimplemented = errors.New("profilemock: method not implemented")

type BorrowerRepo struct {
	CreateFn      func(ctx context.Context, p *domain.BorrowerProfile) error
	SaveFn        func(ctx context.Context, p *domain.BorrowerProfile) error
	GetByUserIDFn func(ctx context.Context, userID uint64) (*domain.BorrowerProfile, error)
}

func (m *BorrowerRepo) Create(ctx context.Context, p *domain.BorrowerProfile) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, p)
	}
	return nil
}

func (m *BorrowerRepo) Save(ctx context.Context, p *domain.BorrowerProfile) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, p)
	}
	return nil
}

// GetByUserID reports ErrNotFound when unset, i.e. the user has no profile.
func (m *BorrowerRepo) GetByUserID(ctx context.Context, userID uint64) (*domain.BorrowerProfile, error) {
	if m.GetByUserIDFn != nil {
		return m.GetByUserIDFn(ctx, userID)
	}
	return nil, domain.ErrNotFound
}

type LenderRepo struct {
	CreateFn               func(ctx context.Context, p *domain.LenderProfile) error
	SaveFn                 func(ctx context.Context, p *domain.LenderProfile) error
	GetByUserIDFn          func(ctx context.Context, userID uint64) (*domain.LenderProfile, error)
	GetByUserIDForUpdateFn func(ctx context.Context, userID uint64) (*domain.LenderProfile, error)
	ListMatchingFn         func(ctx context.Context, f domain.LenderMatch) ([]domain.LenderProfile, error)
}

func (m *LenderRepo) Create(ctx context.Context, p *domain.LenderProfile) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, p)
	}
	return nil
}

func (m *LenderRepo) Save(ctx context.Context, p *domain.LenderProfile) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, p)
	}
	return nil
}

func (m *LenderRepo) GetByUserID(ctx context.Context, userID uint64) (*domain.LenderProfile, error) {
	if m.GetByUserIDFn != nil {
		return m.GetByUserIDFn(ctx, userID)
	}
	return nil, domain.ErrNotFound
}

func (m *LenderRepo) GetByUserIDForUpdate(ctx context.Context, userID uint64) (*domain.LenderProfile, error) {
	if m.GetByUserIDForUpdateFn != nil {
		return m.GetByUserIDForUpdateFn(ctx, userID)
	}
	return m.GetByUserID(ctx, userID)
}

func (m *LenderRepo) ListMatching(ctx context.Context, f domain.LenderMatch) ([]domain.LenderProfile, error) {
	if m.ListMatchingFn != nil {
		return m.ListMatchingFn(ctx, f)
	}
	return nil, errUnimplemented
}
