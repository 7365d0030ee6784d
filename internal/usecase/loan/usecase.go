package loan

import (
	"context"
	"errors"
	"fmt"
	"strings"

	domain "inclusionnet/internal/domain/loan"
	"inclusionnet/internal/domain/profile"
	"inclusionnet/internal/domain/uow"
	"inclusionnet/internal/domain/user"
	"inclusionnet/pkg/cursor"
	"inclusionnet/pkg/finance"
)

var ErrInvalidInput = errors.New("invalid loan application input")

type Usecase struct {
	repo      domain.Repository
	borrowers profile.BorrowerRepository
	uow       uow.UnitOfWork
}

func NewUsecase(r domain.Repository, b profile.BorrowerRepository, u uow.UnitOfWork) *Usecase {
	return &Usecase{repo: r, borrowers: b, uow: u}
}

func (u *Usecase) Create(ctx context.Context, actor user.Actor, in CreateInput) (*LoanDTO, error) {
	if !actor.Is(user.RoleBorrower) {
		return nil, user.ErrForbidden
	}
	purpose := strings.TrimSpace(in.LoanPurpose)
	if in.LoanAmount <= 0 || in.LoanTenureMonths <= 0 || purpose == "" {
		return nil, ErrInvalidInput
	}

	// Block if the borrower already has an application awaiting review.
	open, err := u.repo.GetOpenByBorrower(ctx, actor.ID)
	switch {
	case err == nil:
		return nil, fmt.Errorf("%w: #%d", domain.ErrOpenApplication, open.ID)
	case !errors.Is(err, domain.ErrNotFound):
		return nil, err
	}

	a := &domain.Application{
		BorrowerID:       actor.ID,
		LoanAmount:       in.LoanAmount,
		LoanTenureMonths: in.LoanTenureMonths,
		LoanPurpose:      purpose,
		Status:           domain.StatusPending,
	}
	p, err := u.borrowers.GetByUserID(ctx, actor.ID)
	switch {
	case err == nil:
		a.CreditScore = p.CreditScore
	case !errors.Is(err, profile.ErrNotFound):
		return nil, err
	}

	if err := u.repo.Create(ctx, a); err != nil {
		return nil, err
	}
	dto := toDTO(a)
	return &dto, nil
}

// Get lets the owning borrower, any lender and admins read an application.
func (u *Usecase) Get(ctx context.Context, actor user.Actor, id uint64) (*LoanDTO, error) {
	a, err := u.load(ctx, actor, id)
	if err != nil {
		return nil, err
	}
	dto := toDTO(a)
	return &dto, nil
}

func (u *Usecase) load(ctx context.Context, actor user.Actor, id uint64) (*domain.Application, error) {
	a, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if actor.Is(user.RoleBorrower) && a.BorrowerID != actor.ID {
		return nil, domain.ErrNotOwner
	}
	return a, nil
}

func (u *Usecase) ListMine(ctx context.Context, actor user.Actor, p cursor.Params) (cursor.Page[LoanDTO], error) {
	rows, err := u.repo.ListByBorrower(ctx, actor.ID, p)
	if err != nil {
		return cursor.Page[LoanDTO]{}, err
	}
	return page(rows, p), nil
}

func (u *Usecase) ListByStatus(ctx context.Context, status *domain.Status, p cursor.Params) (cursor.Page[LoanDTO], error) {
	rows, err := u.repo.ListByStatus(ctx, status, p)
	if err != nil {
		return cursor.Page[LoanDTO]{}, err
	}
	return page(rows, p), nil
}

// UpdateStatus applies an admin decision under a row lock.
func (u *Usecase) UpdateStatus(ctx context.Context, actor user.Actor, id uint64, in UpdateStatusInput) (*LoanDTO, error) {
	if !actor.Is(user.RoleAdmin) {
		return nil, user.ErrForbidden
	}
	var out *domain.Application
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		a, err := r.Loans.GetByIDForUpdate(ctx, id)
		if err != nil {
			return err
		}
		if err := a.Transition(in.Status, strings.TrimSpace(in.Remarks)); err != nil {
			return err
		}
		if err := r.Loans.Save(ctx, a); err != nil {
			return err
		}
		out = a
		return nil
	})
	if err != nil {
		return nil, err
	}
	dto := toDTO(out)
	return &dto, nil
}

// Schedule amortizes the application at annualRate (default 12%).
func (u *Usecase) Schedule(ctx context.Context, actor user.Actor, id uint64, annualRate float64) (*ScheduleDTO, error) {
	a, err := u.load(ctx, actor, id)
	if err != nil {
		return nil, err
	}
	if annualRate <= 0 {
		annualRate = finance.DefaultAnnualRate
	}
	rows := finance.Schedule(a.LoanAmount, a.LoanTenureMonths, annualRate)
	return &ScheduleDTO{
		LoanID:             a.ID,
		Principal:          a.LoanAmount,
		TenureMonths:       a.LoanTenureMonths,
		AnnualInterestRate: annualRate,
		EMI:                finance.CalculateEMI(a.LoanAmount, a.LoanTenureMonths, annualRate),
		TotalPayable:       finance.TotalPayable(rows).StringFixed(2),
		Installments:       rows,
	}, nil
}

func page(rows []domain.Application, p cursor.Params) cursor.Page[LoanDTO] {
	built := cursor.Build(rows, p.Take, func(a domain.Application) uint64 { return a.ID })
	return cursor.Map(built, func(a domain.Application) LoanDTO { return toDTO(&a) })
}
