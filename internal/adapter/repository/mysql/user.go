package mysql

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"inclusionnet/internal/domain/user"
)

type UserRepository struct{ db *gorm.DB }

func NewUserRepository(db *gorm.DB) *UserRepository { return &UserRepository{db: db} }

func (r *UserRepository) Create(ctx context.Context, u *user.User) error {
	err := r.db.WithContext(ctx).Create(u).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return user.ErrEmailTaken
	}
	return err
}

func (r *UserRepository) Save(ctx context.Context, u *user.User) error {
	return r.db.WithContext(ctx).Save(u).Error
}

func (r *UserRepository) GetByID(ctx context.Context, id uint64) (*user.User, error) {
	var out user.User
	if err := r.db.WithContext(ctx).First(&out, id).Error; err != nil {
		return nil, notFound(err, user.ErrNotFound)
	}
	return &out, nil
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	var out user.User
	err := r.db.WithContext(ctx).Where("email = ?", user.NormalizeEmail(email)).First(&out).Error
	if err != nil {
		return nil, notFound(err, user.ErrNotFound)
	}
	return &out, nil
}

func (r *UserRepository) UpdateKYCStatus(ctx context.Context, id uint64, s user.KYCStatus) error {
	res := r.db.WithContext(ctx).Model(&user.User{}).Where("id = ?", id).Update("kyc_status", s)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return user.ErrNotFound
	}
	return nil
}
