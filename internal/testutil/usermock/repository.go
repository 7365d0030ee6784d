package usermock

import (
	"context"
	"errors"

	domain "inclusionnet/internal/domain/user"
)

var _ domain.Repository = (*Repo)(nil)

var errUnimplemented = errors.New("usermock: method not implemented")

type Repo struct {
	CreateFn          func(ctx context.Context, u *domain.User) error
	GetByIDFn         func(ctx context.Context, id uint64) (*domain.User, error)
	GetByEmailFn      func(ctx context.Context, email string) (*domain.User, error)
	SaveFn            func(ctx context.Context, u *domain.User) error
	UpdateKYCStatusFn func(ctx context.Context, id uint64, s domain.KYCStatus) error
}

func (m *Repo) Create(ctx context.Context, u *domain.User) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, u)
	}
	return nil
}

func (m *Repo) GetByID(ctx context.Context, id uint64) (*domain.User, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	return nil, errUnimplemented
}

func (m *Repo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	if m.GetByEmailFn != nil {
		return m.GetByEmailFn(ctx, email)
	}
	return nil, domain.ErrNotFound
}

func (m *Repo) Save(ctx context.Context, u *domain.User) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, u)
	}
	return nil
}

func (m *Repo) UpdateKYCStatus(ctx context.Context, id uint64, s domain.KYCStatus) error {
	if m.UpdateKYCStatusFn != nil {
		return m.UpdateKYCStatusFn(ctx, id, s)
	}
	return nil
}
