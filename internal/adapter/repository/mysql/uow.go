package mysql

import (
	"context"

	"gorm.io/gorm"

	"inclusionnet/internal/domain/loanrequest"
	"inclusionnet/internal/domain/uow"
)

type GormUoW struct{ db *gorm.DB }

func NewGormUoW(db *gorm.DB) *GormUoW { return &GormUoW{db: db} }

func reposFor(tx *gorm.DB) uow.Repos {
	return uow.Repos{
		Users:     &UserRepository{db: tx},
		Borrowers: &BorrowerProfileRepository{db: tx},
		Lenders:   &LenderProfileRepository{db: tx},
		Loans:     &LoanRepository{db: tx},
		Requests:  &LoanRequestRepository{db: tx},
		KYC:       &KYCRepository{db: tx},
	}
}

func (u *GormUoW) WithinTx(ctx context.Context, fn func(r uow.Repos) error) error {
	return u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(reposFor(tx))
	})
}

func (u *GormUoW) WithinRequestTx(ctx context.Context, requestID uint64, fn func(r uow.Repos, req *loanrequest.Request) error) error {
	return u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		r := reposFor(tx)
		// lock the request row up-front so concurrent decisions serialize
		req, err := r.Requests.GetByIDForUpdate(ctx, requestID)
		if err != nil {
			return err
		}
		return fn(r, req)
	})
}
