package user

import (
	"errors"
	"strings"
	"time"
)

var (
	ErrNotFound           = errors.New("user not found")
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrInactive           = errors.New("user is inactive")
	ErrForbidden          = errors.New("operation not permitted for this role")
)

type Role string

const (
	RoleBorrower Role = "BORROWER"
	RoleLender   Role = "LENDER"
	RoleAdmin    Role = "ADMIN"
)

// SelfService reports whether the role may be chosen at registration.
func (r Role) SelfService() bool { return r == RoleBorrower || r == RoleLender }

type KYCStatus string

const (
	KYCNotSubmitted KYCStatus = "NOT_SUBMITTED"
	KYCPending      KYCStatus = "PENDING"
	KYCVerified     KYCStatus = "VERIFIED"
	KYCRejected     KYCStatus = "REJECTED"
)

type User struct {
	ID           uint64    `gorm:"primaryKey;column:id" json:"id"`
	Name         string    `gorm:"size:120;not null" json:"name"`
	Email        string    `gorm:"size:191;not null;uniqueIndex:ux_users_email" json:"email"`
	PasswordHash string    `gorm:"size:100;not null" json:"-"`
	Role         Role      `gorm:"size:16;not null;index" json:"role"`
	KYCStatus    KYCStatus `gorm:"column:kyc_status;size:16;not null" json:"kycStatus"`
	IsActive     bool      `gorm:"not null" json:"isActive"`
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (User) TableName() string { return "users" }

// NormalizeEmail lowercases and trims so uniqueness is case-insensitive.
func NormalizeEmail(s string) string { return strings.ToLower(strings.TrimSpace(s)) }

// Actor is the authenticated caller of an operation.
type Actor struct {
	ID   uint64
	Role Role
}

func (a Actor) Is(r Role) bool { return a.Role == r }
