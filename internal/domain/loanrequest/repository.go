package loanrequest

import (
	"context"
	"time"
)

type Repository interface {
	Create(ctx context.Context, r *Request) error
	GetByID(ctx context.Context, id uint64) (*Request, error)
	GetByIDForUpdate(ctx context.Context, id uint64) (*Request, error)
	Save(ctx context.Context, r *Request) error
	// ErrNotFound when no PENDING request exists for the pair
	FindPending(ctx context.Context, loanID, lenderID uint64) (*Request, error)
	List(ctx context.Context, f ListFilter) ([]Request, error)
	// reports whether the loan already has an ACCEPTED request
	HasAccepted(ctx context.Context, loanID uint64) (bool, error)
	// moves every other PENDING request of the loan to CANCELLED
	CancelPendingForLoan(ctx context.Context, loanID, exceptID uint64) (int64, error)
	// moves PENDING requests created before cutoff to CANCELLED
	CancelStale(ctx context.Context, cutoff time.Time) (int64, error)
}
