package mysql

import (
	"context"
	"errors"
	"testing"
	"time"

	"inclusionnet/internal/domain/loan"
	"inclusionnet/internal/domain/loanrequest"
	"inclusionnet/internal/domain/profile"
	"inclusionnet/internal/domain/uow"
	"inclusionnet/internal/domain/user"
)

func TestGormUoW_WithinTx_Commit(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()
	guow := NewGormUoW(db)

	var created uint64
	err := guow.WithinTx(ctx, func(r uow.Repos) error {
		u := &user.User{Name: "n", Email: "commit@example.com", PasswordHash: "h", Role: user.RoleBorrower, KYCStatus: user.KYCNotSubmitted, IsActive: true}
		if err := r.Users.Create(ctx, u); err != nil {
			return err
		}
		created = u.ID
		return r.Borrowers.Create(ctx, &profile.BorrowerProfile{UserID: u.ID, MonthlyIncome: 1000})
	})
	if err != nil {
		t.Fatalf("WithinTx commit err: %v", err)
	}
	if _, err := NewBorrowerProfileRepository(db).GetByUserID(ctx, created); err != nil {
		t.Fatalf("profile not visible after commit: %v", err)
	}
}

func TestGormUoW_WithinTx_Rollback(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()
	guow := NewGormUoW(db)
	sentinel := errors.New("boom")

	err := guow.WithinTx(ctx, func(r uow.Repos) error {
		u := &user.User{Name: "n", Email: "rollback@example.com", PasswordHash: "h", Role: user.RoleLender, KYCStatus: user.KYCNotSubmitted, IsActive: true}
		if err := r.Users.Create(ctx, u); err != nil {
			return err
		}
		return sentinel
	})
	if !errors.Is(err, sentinel) {
		t.Fatalf("err = %v, want sentinel", err)
	}
	if _, err := NewUserRepository(db).GetByEmail(ctx, "rollback@example.com"); !errors.Is(err, user.ErrNotFound) {
		t.Fatalf("expected user absent after rollback, got %v", err)
	}
}

func TestGormUoW_WithinRequestTx(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()
	guow := NewGormUoW(db)

	b := seedUser(t, db, user.RoleBorrower, user.KYCVerified)
	l, _ := seedLender(t, db, user.KYCVerified, 1000, 10)
	a := seedLoan(t, db, b.ID, 400, 6, nil, loan.StatusApproved)
	req := seedRequest(t, db, a.ID, b.ID, l.ID, b.ID, loanrequest.StatusPending, time.Now().UTC())

	// commit: accept + reserve
	err := guow.WithinRequestTx(ctx, req.ID, func(r uow.Repos, locked *loanrequest.Request) error {
		if locked.ID != req.ID {
			t.Fatalf("wrong request passed: %+v", locked)
		}
		if err := locked.Accept(l.ID); err != nil {
			return err
		}
		lp, err := r.Lenders.GetByUserIDForUpdate(ctx, l.ID)
		if err != nil {
			return err
		}
		if err := lp.Reserve(a.LoanAmount); err != nil {
			return err
		}
		if err := r.Lenders.Save(ctx, lp); err != nil {
			return err
		}
		return r.Requests.Save(ctx, locked)
	})
	if err != nil {
		t.Fatalf("WithinRequestTx: %v", err)
	}
	got, _ := NewLoanRequestRepository(db).GetByID(ctx, req.ID)
	lp, _ := NewLenderProfileRepository(db).GetByUserID(ctx, l.ID)
	if got.Status != loanrequest.StatusAccepted || lp.AvailableFunds != 600 {
		t.Fatalf("after commit: status=%s funds=%v", got.Status, lp.AvailableFunds)
	}

	// missing request never reaches the callback
	err = guow.WithinRequestTx(ctx, 4242, func(uow.Repos, *loanrequest.Request) error {
		t.Fatalf("callback should not be called when request missing")
		return nil
	})
	if !errors.Is(err, loanrequest.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestGormUoW_WithinRequestTx_RollbackKeepsFunds(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()
	guow := NewGormUoW(db)

	b := seedUser(t, db, user.RoleBorrower, user.KYCVerified)
	l, _ := seedLender(t, db, user.KYCVerified, 1000, 10)
	a := seedLoan(t, db, b.ID, 400, 6, nil, loan.StatusApproved)
	req := seedRequest(t, db, a.ID, b.ID, l.ID, b.ID, loanrequest.StatusPending, time.Now().UTC())
	sentinel := errors.New("stop")

	_ = guow.WithinRequestTx(ctx, req.ID, func(r uow.Repos, locked *loanrequest.Request) error {
		lp, _ := r.Lenders.GetByUserIDForUpdate(ctx, l.ID)
		_ = lp.Reserve(400)
		if err := r.Lenders.Save(ctx, lp); err != nil {
			return err
		}
		_ = locked.Accept(l.ID)
		if err := r.Requests.Save(ctx, locked); err != nil {
			return err
		}
		return sentinel
	})

	got, _ := NewLoanRequestRepository(db).GetByID(ctx, req.ID)
	lp, _ := NewLenderProfileRepository(db).GetByUserID(ctx, l.ID)
	if got.Status != loanrequest.StatusPending || lp.AvailableFunds != 1000 {
		t.Fatalf("after rollback: status=%s funds=%v", got.Status, lp.AvailableFunds)
	}
}
