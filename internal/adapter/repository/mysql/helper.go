package mysql

import (
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"inclusionnet/internal/domain/chat"
	"inclusionnet/internal/domain/kyc"
	"inclusionnet/internal/domain/loan"
	"inclusionnet/internal/domain/loanrequest"
	"inclusionnet/internal/domain/profile"
	"inclusionnet/internal/domain/user"
	"inclusionnet/pkg/cursor"
)

// Models lists every persisted type in dependency order.
func Models() []any {
	return []any{
		&user.User{},
		&profile.BorrowerProfile{},
		&profile.LenderProfile{},
		&loan.Application{},
		&loanrequest.Request{},
		&kyc.Document{},
		&chat.Message{},
	}
}

func AutoMigrate(db *gorm.DB) error { return db.AutoMigrate(Models()...) }

// forUpdate adds SELECT ... FOR UPDATE; sqlite drops the clause.
func forUpdate(db *gorm.DB) *gorm.DB {
	return db.Clauses(clause.Locking{Strength: "UPDATE"})
}

// page applies keyset pagination on col (the table's id column).
func page(db *gorm.DB, col string, p cursor.Params) *gorm.DB {
	if p.After > 0 {
		db = db.Where(col+" > ?", p.After)
	}
	return db.Order(col + " ASC").Limit(p.Limit())
}

func notFound(err, domainErr error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domainErr
	}
	return err
}
