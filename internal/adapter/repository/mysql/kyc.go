package mysql

import (
	"context"

	"gorm.io/gorm"

	"inclusionnet/internal/domain/kyc"
	"inclusionnet/pkg/cursor"
)

type KYCRepository struct{ db *gorm.DB }

func NewKYCRepository(db *gorm.DB) *KYCRepository { return &KYCRepository{db: db} }

func (r *KYCRepository) Create(ctx context.Context, d *kyc.Document) error {
	return r.db.WithContext(ctx).Create(d).Error
}

func (r *KYCRepository) Save(ctx context.Context, d *kyc.Document) error {
	return r.db.WithContext(ctx).Save(d).Error
}

func (r *KYCRepository) GetByIDForUpdate(ctx context.Context, id uint64) (*kyc.Document, error) {
	var out kyc.Document
	if err := forUpdate(r.db.WithContext(ctx)).First(&out, id).Error; err != nil {
		return nil, notFound(err, kyc.ErrNotFound)
	}
	return &out, nil
}

func (r *KYCRepository) ListByUser(ctx context.Context, userID uint64) ([]kyc.Document, error) {
	var out []kyc.Document
	err := r.db.WithContext(ctx).Where("user_id = ?", userID).Order("id DESC").Find(&out).Error
	return out, err
}

func (r *KYCRepository) ListByStatus(ctx context.Context, status *kyc.Status, p cursor.Params) ([]kyc.Document, error) {
	q := r.db.WithContext(ctx)
	if status != nil {
		q = q.Where("status = ?", *status)
	}
	var out []kyc.Document
	err := page(q, "id", p).Find(&out).Error
	return out, err
}
