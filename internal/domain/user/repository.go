package user

import "context"

type Repository interface {
	Create(ctx context.Context, u *User) error
	GetByID(ctx context.Context, id uint64) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	Save(ctx context.Context, u *User) error
	UpdateKYCStatus(ctx context.Context, id uint64, s KYCStatus) error
}
