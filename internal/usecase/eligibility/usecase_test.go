package eligibility

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"

	"inclusionnet/internal/domain/profile"
	"inclusionnet/internal/domain/user"
	"inclusionnet/internal/infrastructure/cache"
	"inclusionnet/internal/testutil/profilemock"
	"inclusionnet/pkg/finance"
)

func float64Ptr(v float64) *float64 { return &v }

func newStore(t *testing.T) (*miniredis.Miniredis, *cache.JSONStore) {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })
	return mr, cache.NewJSONStore(rdb, "elig:")
}

func TestCalculate_DefaultsAndMemoization(t *testing.T) {
	mr, store := newStore(t)
	uc := NewUsecase(&profilemock.BorrowerRepo{}, store, time.Minute)

	res := uc.Calculate(context.Background(), Input{MonthlyIncome: 50000, TenureMonths: 12})
	want := finance.CalculateMaxLoanAmount(50000, 0, 12, 12, 0.40, "")
	if res.MaxLoanAmount != want || !res.Eligible {
		t.Fatalf("max = %d, want %d", res.MaxLoanAmount, want)
	}
	if res.AnnualInterestRate != finance.DefaultAnnualRate || res.FOIR != finance.DefaultFOIR || res.MaxAffordableEMI != 20000 {
		t.Fatalf("defaults not echoed: %+v", res)
	}
	if res.EstimatedEMI > 20001 {
		t.Fatalf("estimated emi above budget: %d", res.EstimatedEMI)
	}
	if len(mr.Keys()) != 1 {
		t.Fatalf("expected one cache entry, got %v", mr.Keys())
	}

	// explicit defaults hit the same key
	again := uc.Calculate(context.Background(), Input{MonthlyIncome: 50000, TenureMonths: 12, AnnualInterestRate: float64Ptr(12), FOIR: 0.4})
	if again != res || len(mr.Keys()) != 1 {
		t.Fatalf("expected cache hit, keys=%v", mr.Keys())
	}
}

func TestCalculate_IneligibleAndCacheDown(t *testing.T) {
	mr, store := newStore(t)
	uc := NewUsecase(&profilemock.BorrowerRepo{}, store, time.Minute)
	mr.Close()

	res := uc.Calculate(context.Background(), Input{MonthlyIncome: 10000, ExistingEMI: 5000, TenureMonths: 12})
	if res.MaxLoanAmount != 0 || res.Eligible || res.MaxAffordableEMI != 0 {
		t.Fatalf("expected ineligible result, got %+v", res)
	}
}

func TestForBorrower(t *testing.T) {
	risk := finance.RiskLow
	repo := &profilemock.BorrowerRepo{
		GetByUserIDFn: func(_ context.Context, id uint64) (*profile.BorrowerProfile, error) {
			if id != 4 {
				return nil, profile.ErrNotFound
			}
			return &profile.BorrowerProfile{UserID: 4, MonthlyIncome: 80000, ExistingEMI: 5000, RiskCategory: &risk}, nil
		},
	}
	uc := NewUsecase(repo, nil, 0)

	res, err := uc.ForBorrower(context.Background(), user.Actor{ID: 4, Role: user.RoleBorrower}, 24, nil)
	if err != nil {
		t.Fatalf("ForBorrower: %v", err)
	}
	want := finance.CalculateMaxLoanAmount(80000, 5000, 24, 12, 0.40, finance.RiskLow)
	if res.MaxLoanAmount != want || res.RiskCategory != finance.RiskLow {
		t.Fatalf("got %+v, want max %d", res, want)
	}

	if _, err := uc.ForBorrower(context.Background(), user.Actor{ID: 5, Role: user.RoleBorrower}, 24, nil); !errors.Is(err, profile.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestCalculate_ExplicitZeroRate(t *testing.T) {
	uc := NewUsecase(&profilemock.BorrowerRepo{}, nil, 0)

	res := uc.Calculate(context.Background(), Input{MonthlyIncome: 50000, TenureMonths: 12, AnnualInterestRate: float64Ptr(0)})
	if res.AnnualInterestRate != 0 || res.MaxLoanAmount != 240000 {
		t.Fatalf("zero rate replaced by default: %+v", res)
	}
	if res.EstimatedEMI != 20000 {
		t.Fatalf("estimated emi = %d, want 20000", res.EstimatedEMI)
	}

	def := uc.Calculate(context.Background(), Input{MonthlyIncome: 50000, TenureMonths: 12})
	if def.AnnualInterestRate != finance.DefaultAnnualRate || def.MaxLoanAmount >= res.MaxLoanAmount {
		t.Fatalf("absent rate should use the default: %+v", def)
	}
}
