package mysql

import (
	"context"
	"errors"
	"testing"
	"time"

	"inclusionnet/internal/domain/kyc"
	"inclusionnet/internal/domain/user"
	"inclusionnet/pkg/cursor"
)

func TestKYCRepository_Flow(t *testing.T) {
	db := openTestDB(t)
	repo := NewKYCRepository(db)
	ctx := context.Background()

	u := seedUser(t, db, user.RoleLender, user.KYCPending)
	d1 := &kyc.Document{UserID: u.ID, DocumentType: kyc.DocPAN, DocumentURL: "https://files.example/pan.png", Status: kyc.StatusPending}
	d2 := &kyc.Document{UserID: u.ID, DocumentType: kyc.DocBankStatement, DocumentURL: "https://files.example/bank.pdf", Status: kyc.StatusPending}
	for _, d := range []*kyc.Document{d1, d2} {
		if err := repo.Create(ctx, d); err != nil {
			t.Fatalf("Create: %v", err)
		}
	}

	got, err := repo.GetByIDForUpdate(ctx, d1.ID)
	if err != nil {
		t.Fatalf("GetByIDForUpdate: %v", err)
	}
	if _, err := got.Review(1, true, "", time.Now()); err != nil {
		t.Fatal(err)
	}
	if err := repo.Save(ctx, got); err != nil {
		t.Fatalf("Save: %v", err)
	}

	mine, err := repo.ListByUser(ctx, u.ID)
	if err != nil || len(mine) != 2 || mine[0].ID != d2.ID {
		t.Fatalf("ListByUser newest first: %+v, %v", mine, err)
	}

	pending := kyc.StatusPending
	queue, err := repo.ListByStatus(ctx, &pending, cursor.New(0, 10))
	if err != nil || len(queue) != 1 || queue[0].ID != d2.ID {
		t.Fatalf("ListByStatus pending: %+v, %v", queue, err)
	}

	if _, err := repo.GetByIDForUpdate(ctx, 999); !errors.Is(err, kyc.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
