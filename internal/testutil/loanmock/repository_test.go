package loanmock

import (
	"context"
	"errors"
	"testing"

	domain "inclusionnet/internal/domain/loan"
)

func TestRepo_Defaults(t *testing.T) {
	m := &Repo{}
	ctx := context.Background()

	if err := m.Create(ctx, &domain.Application{}); err != nil {
		t.Fatalf("Create default: %v", err)
	}
	if _, err := m.GetByID(ctx, 1); !errors.Is(err, errUnimplemented) {
		t.Fatalf("GetByID default: %v", err)
	}
	if _, err := m.GetOpenByBorrower(ctx, 1); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("GetOpenByBorrower default: %v", err)
	}
}

func TestRepo_ForUpdateFallsBackToGetByID(t *testing.T) {
	want := &domain.Application{ID: 9}
	m := &Repo{GetByIDFn: func(context.Context, uint64) (*domain.Application, error) { return want, nil }}
	got, err := m.GetByIDForUpdate(context.Background(), 9)
	if err != nil || got != want {
		t.Fatalf("got %v, %v", got, err)
	}
}
