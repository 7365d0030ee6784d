package kyc

import (
	"context"

	"inclusionnet/pkg/cursor"
)

type Repository interface {
	Create(ctx context.Context, d *Document) error
	GetByIDForUpdate(ctx context.Context, id uint64) (*Document, error)
	Save(ctx context.Context, d *Document) error
	ListByUser(ctx context.Context, userID uint64) ([]Document, error)
	ListByStatus(ctx context.Context, status *Status, p cursor.Params) ([]Document, error)
}
