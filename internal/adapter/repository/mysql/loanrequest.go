package mysql

import (
	"context"
	"time"

	"gorm.io/gorm"

	"inclusionnet/internal/domain/loanrequest"
)

type LoanRequestRepository struct{ db *gorm.DB }

func NewLoanRequestRepository(db *gorm.DB) *LoanRequestRepository {
	return &LoanRequestRepository{db: db}
}

func (r *LoanRequestRepository) Create(ctx context.Context, req *loanrequest.Request) error {
	return r.db.WithContext(ctx).Create(req).Error
}

func (r *LoanRequestRepository) Save(ctx context.Context, req *loanrequest.Request) error {
	return r.db.WithContext(ctx).Save(req).Error
}

func (r *LoanRequestRepository) GetByID(ctx context.Context, id uint64) (*loanrequest.Request, error) {
	return r.get(r.db.WithContext(ctx), id)
}

func (r *LoanRequestRepository) GetByIDForUpdate(ctx context.Context, id uint64) (*loanrequest.Request, error) {
	return r.get(forUpdate(r.db.WithContext(ctx)), id)
}

func (r *LoanRequestRepository) get(db *gorm.DB, id uint64) (*loanrequest.Request, error) {
	var out loanrequest.Request
	if err := db.First(&out, id).Error; err != nil {
		return nil, notFound(err, loanrequest.ErrNotFound)
	}
	return &out, nil
}

func (r *LoanRequestRepository) FindPending(ctx context.Context, loanID, lenderID uint64) (*loanrequest.Request, error) {
	var out loanrequest.Request
	err := r.db.WithContext(ctx).
		Where("loan_application_id = ? AND lender_id = ? AND status = ?", loanID, lenderID, loanrequest.StatusPending).
		First(&out).Error
	if err != nil {
		return nil, notFound(err, loanrequest.ErrNotFound)
	}
	return &out, nil
}

func (r *LoanRequestRepository) List(ctx context.Context, f loanrequest.ListFilter) ([]loanrequest.Request, error) {
	q := r.db.WithContext(ctx)
	switch f.Box {
	case loanrequest.BoxSent:
		q = q.Where("initiator_id = ?", f.UserID)
	case loanrequest.BoxReceived:
		q = q.Where("(borrower_id = ? OR lender_id = ?) AND initiator_id <> ?", f.UserID, f.UserID, f.UserID)
	default:
		q = q.Where("(borrower_id = ? OR lender_id = ?)", f.UserID, f.UserID)
	}
	if f.Status != nil {
		q = q.Where("status = ?", *f.Status)
	}
	var out []loanrequest.Request
	err := page(q, "id", f.Page).Find(&out).Error
	return out, err
}

func (r *LoanRequestRepository) HasAccepted(ctx context.Context, loanID uint64) (bool, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&loanrequest.Request{}).
		Where("loan_application_id = ? AND status = ?", loanID, loanrequest.StatusAccepted).
		Count(&n).Error
	return n > 0, err
}

func (r *LoanRequestRepository) CancelPendingForLoan(ctx context.Context, loanID, exceptID uint64) (int64, error) {
	res := r.db.WithContext(ctx).Model(&loanrequest.Request{}).
		Where("loan_application_id = ? AND id <> ? AND status = ?", loanID, exceptID, loanrequest.StatusPending).
		Update("status", loanrequest.StatusCancelled)
	return res.RowsAffected, res.Error
}

func (r *LoanRequestRepository) CancelStale(ctx context.Context, cutoff time.Time) (int64, error) {
	res := r.db.WithContext(ctx).Model(&loanrequest.Request{}).
		Where("status = ? AND created_at < ?", loanrequest.StatusPending, cutoff).
		Update("status", loanrequest.StatusCancelled)
	return res.RowsAffected, res.Error
}
