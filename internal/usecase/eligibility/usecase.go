package eligibility

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"strings"
	"time"

	"inclusionnet/internal/domain/profile"
	"inclusionnet/internal/domain/user"
	"inclusionnet/internal/logger"
	"inclusionnet/pkg/finance"
)

// Cache memoizes results. A nil Cache disables memoization.
type Cache interface {
	Get(ctx context.Context, key string, dst any) (bool, error)
	Set(ctx context.Context, key string, v any, ttl time.Duration) error
}

type Usecase struct {
	borrowers profile.BorrowerRepository
	cache     Cache
	ttl       time.Duration
	log       *slog.Logger
}

func NewUsecase(borrowers profile.BorrowerRepository, cache Cache, ttl time.Duration) *Usecase {
	return &Usecase{borrowers: borrowers, cache: cache, ttl: ttl, log: logger.WithComponent("eligibility")}
}

// Calculate never fails: cache errors are logged and the value is computed.
func (u *Usecase) Calculate(ctx context.Context, in Input) Result {
	p := in.params()
	key := cacheKey(p)

	if u.cache != nil {
		var cached Result
		found, err := u.cache.Get(ctx, key, &cached)
		if err != nil {
			u.log.WarnContext(ctx, "eligibility cache read failed", "err", err)
		} else if found {
			return cached
		}
	}

	maxAmount := finance.MaxLoanAmount(p)
	res := Result{
		MaxLoanAmount:      maxAmount,
		EstimatedEMI:       finance.CalculateEMI(float64(maxAmount), p.TenureMonths, p.AnnualInterestRate),
		MaxAffordableEMI:   math.Max(0, p.MonthlyIncome*p.FOIR-p.ExistingEMI),
		MonthlyIncome:      p.MonthlyIncome,
		ExistingEMI:        p.ExistingEMI,
		TenureMonths:       p.TenureMonths,
		AnnualInterestRate: p.AnnualInterestRate,
		FOIR:               p.FOIR,
		RiskCategory:       p.Risk,
		Eligible:           maxAmount > 0,
	}

	if u.cache != nil && u.ttl > 0 {
		if err := u.cache.Set(ctx, key, res, u.ttl); err != nil {
			u.log.WarnContext(ctx, "eligibility cache write failed", "err", err)
		}
	}
	return res
}

// ForBorrower runs Calculate with income, obligations and risk taken from the
// caller's borrower profile.
func (u *Usecase) ForBorrower(ctx context.Context, actor user.Actor, tenureMonths int, annualRate *float64) (Result, error) {
	p, err := u.borrowers.GetByUserID(ctx, actor.ID)
	if err != nil {
		return Result{}, err
	}
	return u.Calculate(ctx, Input{
		MonthlyIncome:      p.MonthlyIncome,
		ExistingEMI:        p.ExistingEMI,
		TenureMonths:       tenureMonths,
		AnnualInterestRate: annualRate,
		RiskCategory:       string(p.Risk()),
	}), nil
}

func cacheKey(p finance.Params) string {
	return fmt.Sprintf("%.2f:%.2f:%d:%.4f:%.4f:%s",
		p.MonthlyIncome, p.ExistingEMI, p.TenureMonths, p.AnnualInterestRate, p.FOIR,
		strings.ToLower(strings.TrimSpace(string(p.Risk))))
}
