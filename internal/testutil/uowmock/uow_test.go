package uowmock

import (
	"context"
	"errors"
	"testing"

	"inclusionnet/internal/domain/loanrequest"
	"inclusionnet/internal/domain/uow"
	"inclusionnet/internal/testutil/loanmock"
	"inclusionnet/internal/testutil/loanrequestmock"
)

func TestUoW_Unimplemented(t *testing.T) {
	m := New()
	if err := m.WithinTx(context.Background(), func(uow.Repos) error { return nil }); !errors.Is(err, errUnimplemented) {
		t.Fatalf("WithinTx: %v", err)
	}
	if err := m.WithinRequestTx(context.Background(), 1, func(uow.Repos, *loanrequest.Request) error { return nil }); !errors.Is(err, errUnimplemented) {
		t.Fatalf("WithinRequestTx: %v", err)
	}
}

func TestPassthrough_ForwardsReposAndLocksRequest(t *testing.T) {
	ctx := context.Background()
	loans := &loanmock.Repo{}
	want := &loanrequest.Request{ID: 3}
	reqs := &loanrequestmock.Repo{
		GetByIDForUpdateFn: func(_ context.Context, id uint64) (*loanrequest.Request, error) {
			if id != 3 {
				t.Fatalf("locked id = %d", id)
			}
			return want, nil
		},
	}
	m := Passthrough(uow.Repos{Loans: loans, Requests: reqs})

	called := false
	err := m.WithinTx(ctx, func(r uow.Repos) error {
		called = true
		if r.Loans != loans {
			t.Fatalf("repos not forwarded")
		}
		return nil
	})
	if err != nil || !called {
		t.Fatalf("WithinTx err=%v called=%v", err, called)
	}

	sentinel := errors.New("inner")
	err = m.WithinRequestTx(ctx, 3, func(_ uow.Repos, got *loanrequest.Request) error {
		if got != want {
			t.Fatalf("request not forwarded")
		}
		return sentinel
	})
	if !errors.Is(err, sentinel) {
		t.Fatalf("inner error not propagated: %v", err)
	}
}
