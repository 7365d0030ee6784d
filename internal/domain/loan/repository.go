package loan

import (
	"context"

	"inclusionnet/pkg/cursor"
)

type Repository interface {
	Create(ctx context.Context, a *Application) error
	GetByID(ctx context.Context, id uint64) (*Application, error)
	GetByIDForUpdate(ctx context.Context, id uint64) (*Application, error)
	Save(ctx context.Context, a *Application) error
	// most recent PENDING or UNDER_REVIEW application, ErrNotFound when none
	GetOpenByBorrower(ctx context.Context, borrowerID uint64) (*Application, error)

	// cursor queries return at most p.Limit() rows ordered by id asc
	ListByBorrower(ctx context.Context, borrowerID uint64, p cursor.Params) ([]Application, error)
	ListByStatus(ctx context.Context, status *Status, p cursor.Params) ([]Application, error)
	ListMatching(ctx context.Context, m Match) ([]Application, error)
}
