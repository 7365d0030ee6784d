package loanrequest

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"inclusionnet/internal/domain/loan"
	domain "inclusionnet/internal/domain/loanrequest"
	"inclusionnet/internal/domain/profile"
	"inclusionnet/internal/domain/uow"
	"inclusionnet/internal/domain/user"
	"inclusionnet/internal/logger"
	"inclusionnet/pkg/cursor"
)

var (
	ErrLoanUnavailable   = errors.New("loan application is no longer open for funding")
	ErrLenderRequired    = errors.New("lenderId is required")
	ErrLenderUnavailable = errors.New("lender is not verified or has no lending profile")
)

type Usecase struct {
	repo domain.Repository
	uow  uow.UnitOfWork
	now  func() time.Time
	log  *slog.Logger
}

func NewUsecase(r domain.Repository, u uow.UnitOfWork) *Usecase {
	return &Usecase{repo: r, uow: u, now: time.Now, log: logger.WithComponent("loanrequest")}
}

// Create opens a PENDING request between a loan and a lender. Either side
// may initiate.
func (u *Usecase) Create(ctx context.Context, actor user.Actor, in CreateInput) (*RequestDTO, error) {
	var lenderID uint64
	switch actor.Role {
	case user.RoleBorrower:
		if in.LenderID == 0 {
			return nil, ErrLenderRequired
		}
		lenderID = in.LenderID
	case user.RoleLender:
		lenderID = actor.ID
	default:
		return nil, user.ErrForbidden
	}

	var out *domain.Request
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		a, err := r.Loans.GetByIDForUpdate(ctx, in.LoanApplicationID)
		if err != nil {
			return err
		}
		if actor.Is(user.RoleBorrower) && a.BorrowerID != actor.ID {
			return loan.ErrNotOwner
		}
		if err := loanOpen(ctx, r, a); err != nil {
			return err
		}
		if err := lenderAvailable(ctx, r, lenderID); err != nil {
			return err
		}

		_, err = r.Requests.FindPending(ctx, a.ID, lenderID)
		switch {
		case err == nil:
			return domain.ErrDuplicatePending
		case !errors.Is(err, domain.ErrNotFound):
			return err
		}

		req := &domain.Request{
			LoanApplicationID: a.ID,
			BorrowerID:        a.BorrowerID,
			LenderID:          lenderID,
			InitiatorID:       actor.ID,
			Status:            domain.StatusPending,
			Message:           strings.TrimSpace(in.Message),
		}
		if err := r.Requests.Create(ctx, req); err != nil {
			return err
		}
		out = req
		return nil
	})
	if err != nil {
		return nil, err
	}
	dto := toDTO(out)
	return &dto, nil
}

// loanOpen fails with ErrLoanUnavailable once the loan is rejected or already
// funded by an accepted request. Callers hold the loan row lock.
func loanOpen(ctx context.Context, r uow.Repos, a *loan.Application) error {
	if a.Status == loan.StatusRejected {
		return ErrLoanUnavailable
	}
	funded, err := r.Requests.HasAccepted(ctx, a.ID)
	if err != nil {
		return err
	}
	if funded {
		return ErrLoanUnavailable
	}
	return nil
}

func lenderAvailable(ctx context.Context, r uow.Repos, lenderID uint64) error {
	lu, err := r.Users.GetByID(ctx, lenderID)
	if errors.Is(err, user.ErrNotFound) {
		return ErrLenderUnavailable
	}
	if err != nil {
		return err
	}
	if lu.Role != user.RoleLender || !lu.IsActive || lu.KYCStatus != user.KYCVerified {
		return ErrLenderUnavailable
	}
	if _, err := r.Lenders.GetByUserID(ctx, lenderID); err != nil {
		if errors.Is(err, profile.ErrNotFound) {
			return ErrLenderUnavailable
		}
		return err
	}
	return nil
}

func (u *Usecase) Get(ctx context.Context, actor user.Actor, id uint64) (*RequestDTO, error) {
	req, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !actor.Is(user.RoleAdmin) && !req.IsParticipant(actor.ID) {
		return nil, domain.ErrNotParticipant
	}
	dto := toDTO(req)
	return &dto, nil
}

func (u *Usecase) List(ctx context.Context, actor user.Actor, box domain.Box, status *domain.Status, p cursor.Params) (cursor.Page[RequestDTO], error) {
	rows, err := u.repo.List(ctx, domain.ListFilter{UserID: actor.ID, Box: box, Status: status, Page: p})
	if err != nil {
		return cursor.Page[RequestDTO]{}, err
	}
	built := cursor.Build(rows, p.Take, func(r domain.Request) uint64 { return r.ID })
	return cursor.Map(built, func(r domain.Request) RequestDTO { return toDTO(&r) }), nil
}

// Accept settles the request and reserves the loan amount from the lender's
// funds. Every other pending request on the same loan is cancelled.
func (u *Usecase) Accept(ctx context.Context, actor user.Actor, id uint64) (*RequestDTO, error) {
	var out *domain.Request
	var cancelled int64
	err := u.uow.WithinRequestTx(ctx, id, func(r uow.Repos, req *domain.Request) error {
		if err := req.Accept(actor.ID); err != nil {
			return err
		}
		a, err := r.Loans.GetByIDForUpdate(ctx, req.LoanApplicationID)
		if err != nil {
			return err
		}
		if err := loanOpen(ctx, r, a); err != nil {
			return err
		}
		lp, err := r.Lenders.GetByUserIDForUpdate(ctx, req.LenderID)
		if err != nil {
			return err
		}
		if err := lp.Reserve(a.LoanAmount); err != nil {
			return err
		}
		if err := r.Lenders.Save(ctx, lp); err != nil {
			return err
		}
		if err := r.Requests.Save(ctx, req); err != nil {
			return err
		}
		cancelled, err = r.Requests.CancelPendingForLoan(ctx, req.LoanApplicationID, req.ID)
		if err != nil {
			return err
		}
		out = req
		return nil
	})
	if err != nil {
		return nil, err
	}
	if cancelled > 0 {
		u.log.InfoContext(ctx, "cancelled competing loan requests", "request_id", out.ID, "loan_id", out.LoanApplicationID, "count", cancelled)
	}
	dto := toDTO(out)
	return &dto, nil
}

func (u *Usecase) Reject(ctx context.Context, actor user.Actor, id uint64) (*RequestDTO, error) {
	return u.settle(ctx, id, func(req *domain.Request) error { return req.Reject(actor.ID) })
}

func (u *Usecase) Cancel(ctx context.Context, actor user.Actor, id uint64) (*RequestDTO, error) {
	return u.settle(ctx, id, func(req *domain.Request) error { return req.Cancel(actor.ID) })
}

func (u *Usecase) settle(ctx context.Context, id uint64, apply func(*domain.Request) error) (*RequestDTO, error) {
	var out *domain.Request
	err := u.uow.WithinRequestTx(ctx, id, func(r uow.Repos, req *domain.Request) error {
		if err := apply(req); err != nil {
			return err
		}
		if err := r.Requests.Save(ctx, req); err != nil {
			return err
		}
		out = req
		return nil
	})
	if err != nil {
		return nil, err
	}
	dto := toDTO(out)
	return &dto, nil
}

// ExpireStale cancels PENDING requests created more than olderThan ago.
func (u *Usecase) ExpireStale(ctx context.Context, olderThan time.Duration) (int64, error) {
	cutoff := u.now().UTC().Add(-olderThan)
	n, err := u.repo.CancelStale(ctx, cutoff)
	if err != nil {
		return 0, err
	}
	if n > 0 {
		u.log.InfoContext(ctx, "expired stale loan requests", "count", n, "cutoff", cutoff)
	}
	return n, nil
}
