package kyc

import (
	"errors"
	"testing"
	"time"

	"inclusionnet/internal/domain/user"
)

func TestDocument_Review(t *testing.T) {
	at := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

	d := &Document{Status: StatusPending}
	got, err := d.Review(1, true, "", at)
	if err != nil || got != user.KYCVerified || d.Status != StatusVerified {
		t.Fatalf("verify: status=%s user=%s err=%v", d.Status, got, err)
	}
	if d.ReviewedBy == nil || *d.ReviewedBy != 1 || d.ReviewedAt == nil || !d.ReviewedAt.Equal(at) {
		t.Fatalf("review stamp not set: %+v", d)
	}
	if _, err := d.Review(1, false, "again", at); !errors.Is(err, ErrAlreadyReviewed) {
		t.Fatalf("second review: err = %v", err)
	}

	d = &Document{Status: StatusPending}
	got, err = d.Review(2, false, "blurry scan", at)
	if err != nil || got != user.KYCRejected || d.Status != StatusRejected {
		t.Fatalf("reject: status=%s user=%s err=%v", d.Status, got, err)
	}
	if d.Remarks == nil || *d.Remarks != "blurry scan" {
		t.Fatalf("remarks = %v", d.Remarks)
	}
}

func TestDocumentType_Valid(t *testing.T) {
	for _, dt := range []DocumentType{DocPAN, DocAadhaar, DocPassport, DocBankStatement, DocSalarySlip} {
		if !dt.Valid() {
			t.Fatalf("%s should be valid", dt)
		}
	}
	if DocumentType("DRIVING_LICENSE").Valid() {
		t.Fatal("unknown type accepted")
	}
}
