package matching

import (
	"context"
	"errors"
	"math"

	"inclusionnet/internal/domain/loan"
	"inclusionnet/internal/domain/profile"
	"inclusionnet/internal/domain/user"
	"inclusionnet/pkg/cursor"
)

var (
	ErrInvalidRange    = errors.New("minTenureMonths must not exceed maxTenureMonths")
	ErrLoanUnavailable = errors.New("rejected loan applications cannot be matched")
)

type Usecase struct {
	loans   loan.Repository
	lenders profile.LenderRepository
}

func NewUsecase(loans loan.Repository, lenders profile.LenderRepository) *Usecase {
	return &Usecase{loans: loans, lenders: lenders}
}

// MatchingLenders lists verified lenders whose funds cover the loan.
// Only the loan's borrower and admins may ask.
func (u *Usecase) MatchingLenders(ctx context.Context, actor user.Actor, q LendersQuery) (cursor.Page[LenderMatchDTO], error) {
	var empty cursor.Page[LenderMatchDTO]
	switch actor.Role {
	case user.RoleBorrower, user.RoleAdmin:
	default:
		return empty, user.ErrForbidden
	}

	a, err := u.loans.GetByID(ctx, q.LoanID)
	if err != nil {
		return empty, err
	}
	if actor.Is(user.RoleBorrower) && a.BorrowerID != actor.ID {
		return empty, loan.ErrNotOwner
	}
	if a.Status == loan.StatusRejected {
		return empty, ErrLoanUnavailable
	}

	rows, err := u.lenders.ListMatching(ctx, profile.LenderMatch{
		MinFunds:        a.LoanAmount,
		MaxInterestRate: q.MaxInterestRate,
		Page:            q.Page,
	})
	if err != nil {
		return empty, err
	}

	var ceiling float64
	if q.MaxInterestRate != nil {
		ceiling = *q.MaxInterestRate
	}
	page := cursor.Build(rows, q.Page.Take, func(p profile.LenderProfile) uint64 { return p.ID })
	return cursor.Map(page, func(p profile.LenderProfile) LenderMatchDTO {
		s := Score(Factors{
			AvailableFunds: p.AvailableFunds,
			LoanAmount:     a.LoanAmount,
			InterestRate:   p.InterestRate,
			RateCeiling:    ceiling,
		})
		dto := LenderMatchDTO{
			ID:               p.ID,
			UserID:           p.UserID,
			AvailableFunds:   p.AvailableFunds,
			InterestRate:     p.InterestRate,
			MatchScore:       round2(s),
			MatchProbability: Label(s),
		}
		if p.User != nil {
			dto.Name = p.User.Name
			dto.KYCStatus = string(p.User.KYCStatus)
		}
		return dto
	}), nil
}

// MatchingLoans lists loans the calling lender can fund in full.
func (u *Usecase) MatchingLoans(ctx context.Context, actor user.Actor, q LoansQuery) (cursor.Page[LoanMatchDTO], error) {
	var empty cursor.Page[LoanMatchDTO]
	if !actor.Is(user.RoleLender) {
		return empty, user.ErrForbidden
	}
	if q.MinTenureMonths != nil && q.MaxTenureMonths != nil && *q.MinTenureMonths > *q.MaxTenureMonths {
		return empty, ErrInvalidRange
	}

	lp, err := u.lenders.GetByUserID(ctx, actor.ID)
	if err != nil {
		return empty, err
	}

	rows, err := u.loans.ListMatching(ctx, loan.Match{
		MaxAmount:       lp.AvailableFunds,
		MinCreditScore:  q.MinCreditScore,
		MinTenureMonths: q.MinTenureMonths,
		MaxTenureMonths: q.MaxTenureMonths,
		Page:            q.Page,
	})
	if err != nil {
		return empty, err
	}

	page := cursor.Build(rows, q.Page.Take, func(a loan.Application) uint64 { return a.ID })
	return cursor.Map(page, func(a loan.Application) LoanMatchDTO {
		s := Score(Factors{
			AvailableFunds: lp.AvailableFunds,
			LoanAmount:     a.LoanAmount,
			InterestRate:   lp.InterestRate,
			CreditScore:    a.CreditScore,
		})
		return LoanMatchDTO{
			ID:               a.ID,
			BorrowerID:       a.BorrowerID,
			LoanAmount:       a.LoanAmount,
			LoanTenureMonths: a.LoanTenureMonths,
			LoanPurpose:      a.LoanPurpose,
			CreditScore:      a.CreditScore,
			Status:           a.Status,
			CreatedAt:        a.CreatedAt,
			MatchScore:       round2(s),
			MatchProbability: Label(s),
		}
	}), nil
}

func round2(v float64) float64 { return math.Round(v*100) / 100 }
