package mysql

import (
	"context"

	"gorm.io/gorm"

	"inclusionnet/internal/domain/loan"
	"inclusionnet/internal/domain/loanrequest"
	"inclusionnet/pkg/cursor"
)

type LoanRepository struct{ db *gorm.DB }

func NewLoanRepository(db *gorm.DB) *LoanRepository { return &LoanRepository{db: db} }

func (r *LoanRepository) Create(ctx context.Context, a *loan.Application) error {
	return r.db.WithContext(ctx).Create(a).Error
}

func (r *LoanRepository) Save(ctx context.Context, a *loan.Application) error {
	return r.db.WithContext(ctx).Save(a).Error
}

func (r *LoanRepository) GetByID(ctx context.Context, id uint64) (*loan.Application, error) {
	return r.get(r.db.WithContext(ctx), id)
}

func (r *LoanRepository) GetByIDForUpdate(ctx context.Context, id uint64) (*loan.Application, error) {
	return r.get(forUpdate(r.db.WithContext(ctx)), id)
}

func (r *LoanRepository) get(db *gorm.DB, id uint64) (*loan.Application, error) {
	var out loan.Application
	if err := db.First(&out, id).Error; err != nil {
		return nil, notFound(err, loan.ErrNotFound)
	}
	return &out, nil
}

func (r *LoanRepository) GetOpenByBorrower(ctx context.Context, borrowerID uint64) (*loan.Application, error) {
	var out loan.Application
	err := r.db.WithContext(ctx).
		Where("borrower_id = ? AND status IN ?", borrowerID, []loan.Status{loan.StatusPending, loan.StatusUnderReview}).
		Order("id DESC").
		First(&out).Error
	if err != nil {
		return nil, notFound(err, loan.ErrNotFound)
	}
	return &out, nil
}

func (r *LoanRepository) ListByBorrower(ctx context.Context, borrowerID uint64, p cursor.Params) ([]loan.Application, error) {
	var out []loan.Application
	q := r.db.WithContext(ctx).Where("borrower_id = ?", borrowerID)
	err := page(q, "id", p).Find(&out).Error
	return out, err
}

func (r *LoanRepository) ListByStatus(ctx context.Context, status *loan.Status, p cursor.Params) ([]loan.Application, error) {
	var out []loan.Application
	q := r.db.WithContext(ctx)
	if status != nil {
		q = q.Where("status = ?", *status)
	}
	err := page(q, "id", p).Find(&out).Error
	return out, err
}

func (r *LoanRepository) ListMatching(ctx context.Context, m loan.Match) ([]loan.Application, error) {
	q := r.db.WithContext(ctx).
		Where("loan_amount <= ? AND status <> ?", m.MaxAmount, loan.StatusRejected).
		Where("NOT EXISTS (SELECT 1 FROM loan_requests lr WHERE lr.loan_application_id = loan_applications.id AND lr.status = ?)",
			loanrequest.StatusAccepted)
	if m.MinCreditScore != nil {
		q = q.Where("credit_score >= ?", *m.MinCreditScore)
	}
	if m.MinTenureMonths != nil {
		q = q.Where("loan_tenure_months >= ?", *m.MinTenureMonths)
	}
	if m.MaxTenureMonths != nil {
		q = q.Where("loan_tenure_months <= ?", *m.MaxTenureMonths)
	}
	var out []loan.Application
	err := page(q, "id", m.Page).Find(&out).Error
	return out, err
}
