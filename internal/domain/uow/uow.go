package uow

import (
	"context"

	"inclusionnet/internal/domain/kyc"
	"inclusionnet/internal/domain/loan"
	"inclusionnet/internal/domain/loanrequest"
	"inclusionnet/internal/domain/profile"
	"inclusionnet/internal/domain/user"
)

// Repos are bound to the same transaction.
type Repos struct {
	Users     user.Repository
	Borrowers profile.BorrowerRepository
	Lenders   profile.LenderRepository
	Loans     loan.Repository
	Requests  loanrequest.Repository
	KYC       kyc.Repository
}

type UnitOfWork interface {
	// plain tx
	WithinTx(ctx context.Context, fn func(r Repos) error) error
	// convenience: lock the loan request first, then pass it in
	WithinRequestTx(ctx context.Context, requestID uint64, fn func(r Repos, req *loanrequest.Request) error) error
}
