package mysql

import (
	"context"
	"testing"

	"inclusionnet/internal/domain/chat"
	"inclusionnet/pkg/cursor"
)

func TestChatRepository_CreateAndPage(t *testing.T) {
	db := openTestDB(t)
	repo := NewChatRepository(db)
	ctx := context.Background()

	var ids []uint64
	for i, body := range []string{"hi", "terms?", "12% ok"} {
		m := &chat.Message{LoanRequestID: 7, SenderID: uint64(1 + i%2), Body: body}
		if err := repo.Create(ctx, m); err != nil {
			t.Fatalf("Create: %v", err)
		}
		ids = append(ids, m.ID)
	}
	if err := repo.Create(ctx, &chat.Message{LoanRequestID: 8, SenderID: 1, Body: "other thread"}); err != nil {
		t.Fatal(err)
	}

	first, err := repo.List(ctx, 7, cursor.New(0, 2))
	if err != nil || len(first) != 3 || first[0].Body != "hi" {
		t.Fatalf("first page fetch: %+v, %v", first, err)
	}
	rest, _ := repo.List(ctx, 7, cursor.New(ids[1], 2))
	if len(rest) != 1 || rest[0].ID != ids[2] {
		t.Fatalf("second page: %+v", rest)
	}
}
