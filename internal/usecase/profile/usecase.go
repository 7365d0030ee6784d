package profile

import (
	"context"
	"errors"
	"strings"

	domain "inclusionnet/internal/domain/profile"
	"inclusionnet/internal/domain/user"
	"inclusionnet/pkg/finance"
)

type Usecase struct {
	borrowers domain.BorrowerRepository
	lenders   domain.LenderRepository
}

func NewUsecase(b domain.BorrowerRepository, l domain.LenderRepository) *Usecase {
	return &Usecase{borrowers: b, lenders: l}
}

// PutBorrower creates or replaces the caller's borrower profile.
func (u *Usecase) PutBorrower(ctx context.Context, actor user.Actor, in BorrowerInput) (*BorrowerDTO, error) {
	if !actor.Is(user.RoleBorrower) {
		return nil, user.ErrForbidden
	}
	p, err := u.borrowers.GetByUserID(ctx, actor.ID)
	isNew := errors.Is(err, domain.ErrNotFound)
	if err != nil && !isNew {
		return nil, err
	}
	if isNew {
		p = &domain.BorrowerProfile{UserID: actor.ID}
	}

	p.MonthlyIncome = in.MonthlyIncome
	p.ExistingEMI = in.ExistingEMI
	p.CreditScore = in.CreditScore
	p.RiskCategory = nil
	if in.RiskCategory != nil && strings.TrimSpace(*in.RiskCategory) != "" {
		rc := canonicalRisk(*in.RiskCategory)
		p.RiskCategory = &rc
	}

	if isNew {
		err = u.borrowers.Create(ctx, p)
	} else {
		err = u.borrowers.Save(ctx, p)
	}
	if err != nil {
		return nil, err
	}
	return toBorrowerDTO(p), nil
}

func (u *Usecase) GetBorrower(ctx context.Context, actor user.Actor) (*BorrowerDTO, error) {
	p, err := u.borrowers.GetByUserID(ctx, actor.ID)
	if err != nil {
		return nil, err
	}
	return toBorrowerDTO(p), nil
}

// PutLender creates or replaces the caller's lender profile.
func (u *Usecase) PutLender(ctx context.Context, actor user.Actor, in LenderInput) (*LenderDTO, error) {
	if !actor.Is(user.RoleLender) {
		return nil, user.ErrForbidden
	}
	p, err := u.lenders.GetByUserID(ctx, actor.ID)
	isNew := errors.Is(err, domain.ErrNotFound)
	if err != nil && !isNew {
		return nil, err
	}
	if isNew {
		p = &domain.LenderProfile{UserID: actor.ID}
	}
	p.AvailableFunds = in.AvailableFunds
	p.InterestRate = in.InterestRate

	if isNew {
		err = u.lenders.Create(ctx, p)
	} else {
		err = u.lenders.Save(ctx, p)
	}
	if err != nil {
		return nil, err
	}
	return toLenderDTO(p), nil
}

func (u *Usecase) GetLender(ctx context.Context, actor user.Actor) (*LenderDTO, error) {
	p, err := u.lenders.GetByUserID(ctx, actor.ID)
	if err != nil {
		return nil, err
	}
	return toLenderDTO(p), nil
}

// canonicalRisk stores "low" / "HIGH" as Low / High.
func canonicalRisk(s string) finance.RiskCategory {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "low":
		return finance.RiskLow
	case "medium":
		return finance.RiskMedium
	case "high":
		return finance.RiskHigh
	}
	return finance.RiskCategory(strings.TrimSpace(s))
}

func toBorrowerDTO(p *domain.BorrowerProfile) *BorrowerDTO {
	return &BorrowerDTO{
		ID:            p.ID,
		UserID:        p.UserID,
		MonthlyIncome: p.MonthlyIncome,
		ExistingEMI:   p.ExistingEMI,
		CreditScore:   p.CreditScore,
		RiskCategory:  p.Risk(),
		UpdatedAt:     p.UpdatedAt,
	}
}

func toLenderDTO(p *domain.LenderProfile) *LenderDTO {
	return &LenderDTO{
		ID:             p.ID,
		UserID:         p.UserID,
		AvailableFunds: p.AvailableFunds,
		InterestRate:   p.InterestRate,
		UpdatedAt:      p.UpdatedAt,
	}
}
