package mysql

import (
	"context"
	"fmt"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"inclusionnet/internal/domain/loan"
	"inclusionnet/internal/domain/profile"
	"inclusionnet/internal/domain/user"
)

// openTestDB creates an in-memory sqlite DB with the full schema. One
// connection keeps every query on the same in-memory database.
func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("sql db: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	if err := AutoMigrate(db); err != nil {
		t.Fatalf("auto-migrate: %v", err)
	}
	return db
}

var userSeq int

func seedUser(t *testing.T, db *gorm.DB, role user.Role, kyc user.KYCStatus) *user.User {
	t.Helper()
	userSeq++
	u := &user.User{
		Name:         fmt.Sprintf("user %d", userSeq),
		Email:        fmt.Sprintf("user%d@example.com", userSeq),
		PasswordHash: "x",
		Role:         role,
		KYCStatus:    kyc,
		IsActive:     true,
	}
	if err := NewUserRepository(db).Create(context.Background(), u); err != nil {
		t.Fatalf("seed user: %v", err)
	}
	return u
}

func seedLender(t *testing.T, db *gorm.DB, kyc user.KYCStatus, funds, rate float64) (*user.User, *profile.LenderProfile) {
	t.Helper()
	u := seedUser(t, db, user.RoleLender, kyc)
	p := &profile.LenderProfile{UserID: u.ID, AvailableFunds: funds, InterestRate: rate}
	if err := NewLenderProfileRepository(db).Create(context.Background(), p); err != nil {
		t.Fatalf("seed lender profile: %v", err)
	}
	return u, p
}

func seedLoan(t *testing.T, db *gorm.DB, borrowerID uint64, amount float64, tenure int, score *int, status loan.Status) *loan.Application {
	t.Helper()
	a := &loan.Application{
		BorrowerID:       borrowerID,
		LoanAmount:       amount,
		LoanTenureMonths: tenure,
		LoanPurpose:      "working capital",
		CreditScore:      score,
		Status:           status,
	}
	if err := NewLoanRepository(db).Create(context.Background(), a); err != nil {
		t.Fatalf("seed loan: %v", err)
	}
	return a
}

func intPtr(v int) *int { return &v }

func float64Ptr(v float64) *float64 { return &v }
