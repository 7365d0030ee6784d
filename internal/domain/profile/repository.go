package profile

import "context"

type BorrowerRepository interface {
	Create(ctx context.Context, p *BorrowerProfile) error
	Save(ctx context.Context, p *BorrowerProfile) error
	GetByUserID(ctx context.Context, userID uint64) (*BorrowerProfile, error)
}

type LenderRepository interface {
	Create(ctx context.Context, p *LenderProfile) error
	Save(ctx context.Context, p *LenderProfile) error
	GetByUserID(ctx context.Context, userID uint64) (*LenderProfile, error)
	// row lock (SELECT ... FOR UPDATE) for fund reservation
	GetByUserIDForUpdate(ctx context.Context, userID uint64) (*LenderProfile, error)
	// ordered by id asc, at most Page.Limit() rows, User preloaded
	ListMatching(ctx context.Context, f LenderMatch) ([]LenderProfile, error)
}
