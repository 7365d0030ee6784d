package kyc

import (
	"context"
	"errors"
	"strings"
	"time"

	domain "inclusionnet/internal/domain/kyc"
	"inclusionnet/internal/domain/uow"
	"inclusionnet/internal/domain/user"
	"inclusionnet/pkg/cursor"
)

var ErrInvalidDocument = errors.New("unsupported document type or empty document url")

type Usecase struct {
	repo domain.Repository
	uow  uow.UnitOfWork
	now  func() time.Time
}

func NewUsecase(r domain.Repository, u uow.UnitOfWork) *Usecase {
	return &Usecase{repo: r, uow: u, now: time.Now}
}

// Submit stores a document for review. The account moves to PENDING unless
// it is already VERIFIED.
func (u *Usecase) Submit(ctx context.Context, actor user.Actor, in SubmitInput) (*DocumentDTO, error) {
	if actor.Is(user.RoleAdmin) {
		return nil, user.ErrForbidden
	}
	docURL := strings.TrimSpace(in.DocumentURL)
	if !in.DocumentType.Valid() || docURL == "" {
		return nil, ErrInvalidDocument
	}

	d := &domain.Document{
		UserID:       actor.ID,
		DocumentType: in.DocumentType,
		DocumentURL:  docURL,
		Status:       domain.StatusPending,
	}
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		owner, err := r.Users.GetByID(ctx, actor.ID)
		if err != nil {
			return err
		}
		if err := r.KYC.Create(ctx, d); err != nil {
			return err
		}
		if owner.KYCStatus == user.KYCVerified {
			return nil
		}
		return r.Users.UpdateKYCStatus(ctx, owner.ID, user.KYCPending)
	})
	if err != nil {
		return nil, err
	}
	dto := toDTO(d)
	return &dto, nil
}

func (u *Usecase) ListMine(ctx context.Context, actor user.Actor) ([]DocumentDTO, error) {
	rows, err := u.repo.ListByUser(ctx, actor.ID)
	if err != nil {
		return nil, err
	}
	out := make([]DocumentDTO, 0, len(rows))
	for i := range rows {
		out = append(out, toDTO(&rows[i]))
	}
	return out, nil
}

func (u *Usecase) ListByStatus(ctx context.Context, status *domain.Status, p cursor.Params) (cursor.Page[DocumentDTO], error) {
	rows, err := u.repo.ListByStatus(ctx, status, p)
	if err != nil {
		return cursor.Page[DocumentDTO]{}, err
	}
	built := cursor.Build(rows, p.Take, func(d domain.Document) uint64 { return d.ID })
	return cursor.Map(built, func(d domain.Document) DocumentDTO { return toDTO(&d) }), nil
}

func (u *Usecase) Verify(ctx context.Context, actor user.Actor, id uint64, in ReviewInput) (*DocumentDTO, error) {
	return u.review(ctx, actor, id, true, in.Remarks)
}

func (u *Usecase) Reject(ctx context.Context, actor user.Actor, id uint64, in ReviewInput) (*DocumentDTO, error) {
	return u.review(ctx, actor, id, false, in.Remarks)
}

// review settles the document and mirrors the outcome on the owner's account
// in one transaction.
func (u *Usecase) review(ctx context.Context, actor user.Actor, id uint64, verified bool, remarks string) (*DocumentDTO, error) {
	if !actor.Is(user.RoleAdmin) {
		return nil, user.ErrForbidden
	}
	var out *domain.Document
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		d, err := r.KYC.GetByIDForUpdate(ctx, id)
		if err != nil {
			return err
		}
		status, err := d.Review(actor.ID, verified, strings.TrimSpace(remarks), u.now())
		if err != nil {
			return err
		}
		if err := r.KYC.Save(ctx, d); err != nil {
			return err
		}
		if err := r.Users.UpdateKYCStatus(ctx, d.UserID, status); err != nil {
			return err
		}
		out = d
		return nil
	})
	if err != nil {
		return nil, err
	}
	dto := toDTO(out)
	return &dto, nil
}
