package mysql

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"inclusionnet/internal/domain/profile"
	"inclusionnet/internal/domain/user"
)

type BorrowerProfileRepository struct{ db *gorm.DB }

func NewBorrowerProfileRepository(db *gorm.DB) *BorrowerProfileRepository {
	return &BorrowerProfileRepository{db: db}
}

func (r *BorrowerProfileRepository) Create(ctx context.Context, p *profile.BorrowerProfile) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *BorrowerProfileRepository) Save(ctx context.Context, p *profile.BorrowerProfile) error {
	return r.db.WithContext(ctx).Save(p).Error
}

func (r *BorrowerProfileRepository) GetByUserID(ctx context.Context, userID uint64) (*profile.BorrowerProfile, error) {
	var out profile.BorrowerProfile
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&out).Error; err != nil {
		return nil, notFound(err, profile.ErrNotFound)
	}
	return &out, nil
}

type LenderProfileRepository struct{ db *gorm.DB }

func NewLenderProfileRepository(db *gorm.DB) *LenderProfileRepository {
	return &LenderProfileRepository{db: db}
}

func (r *LenderProfileRepository) Create(ctx context.Context, p *profile.LenderProfile) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(p).Error
}

func (r *LenderProfileRepository) Save(ctx context.Context, p *profile.LenderProfile) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Save(p).Error
}

func (r *LenderProfileRepository) GetByUserID(ctx context.Context, userID uint64) (*profile.LenderProfile, error) {
	return r.getByUserID(r.db.WithContext(ctx), userID)
}

func (r *LenderProfileRepository) GetByUserIDForUpdate(ctx context.Context, userID uint64) (*profile.LenderProfile, error) {
	return r.getByUserID(forUpdate(r.db.WithContext(ctx)), userID)
}

func (r *LenderProfileRepository) getByUserID(db *gorm.DB, userID uint64) (*profile.LenderProfile, error) {
	var out profile.LenderProfile
	if err := db.Where("user_id = ?", userID).First(&out).Error; err != nil {
		return nil, notFound(err, profile.ErrNotFound)
	}
	return &out, nil
}

func (r *LenderProfileRepository) ListMatching(ctx context.Context, f profile.LenderMatch) ([]profile.LenderProfile, error) {
	q := r.db.WithContext(ctx).
		Select("lender_profiles.*").
		Joins("JOIN users ON users.id = lender_profiles.user_id").
		Where("users.kyc_status = ? AND users.is_active = ?", user.KYCVerified, true).
		Where("lender_profiles.available_funds >= ?", f.MinFunds)
	if f.MaxInterestRate != nil {
		q = q.Where("lender_profiles.interest_rate <= ?", *f.MaxInterestRate)
	}
	var out []profile.LenderProfile
	err := page(q, "lender_profiles.id", f.Page).Preload("User").Find(&out).Error
	return out, err
}
