package auth

import (
	"context"
	"errors"
	"strings"
	"time"

	"inclusionnet/internal/domain/user"
	"inclusionnet/internal/logger"
)

var ErrRoleNotAllowed = errors.New("role cannot be self-registered")

type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(password, hash string) bool
}

type TokenIssuer interface {
	Issue(userID uint64, role user.Role) (string, time.Time, error)
}

type Usecase struct {
	users  user.Repository
	hasher PasswordHasher
	tokens TokenIssuer
}

func NewUsecase(users user.Repository, hasher PasswordHasher, tokens TokenIssuer) *Usecase {
	return &Usecase{users: users, hasher: hasher, tokens: tokens}
}

func (u *Usecase) Register(ctx context.Context, in RegisterInput) (*UserDTO, error) {
	if !in.Role.SelfService() {
		return nil, ErrRoleNotAllowed
	}
	email := user.NormalizeEmail(in.Email)
	_, err := u.users.GetByEmail(ctx, email)
	switch {
	case err == nil:
		return nil, user.ErrEmailTaken
	case !errors.Is(err, user.ErrNotFound):
		return nil, err
	}

	hash, err := u.hasher.Hash(in.Password)
	if err != nil {
		return nil, err
	}
	nu := &user.User{
		Name:         strings.TrimSpace(in.Name),
		Email:        email,
		PasswordHash: hash,
		Role:         in.Role,
		KYCStatus:    user.KYCNotSubmitted,
		IsActive:     true,
	}
	if err := u.users.Create(ctx, nu); err != nil {
		return nil, err
	}
	dto := toUserDTO(nu)
	return &dto, nil
}

func (u *Usecase) Login(ctx context.Context, in LoginInput) (*TokenDTO, error) {
	found, err := u.users.GetByEmail(ctx, user.NormalizeEmail(in.Email))
	if errors.Is(err, user.ErrNotFound) {
		return nil, user.ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}
	if !u.hasher.Verify(in.Password, found.PasswordHash) {
		return nil, user.ErrInvalidCredentials
	}
	if !found.IsActive {
		return nil, user.ErrInactive
	}
	tok, exp, err := u.tokens.Issue(found.ID, found.Role)
	if err != nil {
		return nil, err
	}
	return &TokenDTO{AccessToken: tok, TokenType: "Bearer", ExpiresAt: exp, User: toUserDTO(found)}, nil
}

func (u *Usecase) Me(ctx context.Context, actor user.Actor) (*UserDTO, error) {
	found, err := u.users.GetByID(ctx, actor.ID)
	if err != nil {
		return nil, err
	}
	dto := toUserDTO(found)
	return &dto, nil
}

// EnsureAdmin creates the bootstrap admin account unless the email is already taken.
func (u *Usecase) EnsureAdmin(ctx context.Context, name, email, password string) error {
	if strings.TrimSpace(password) == "" {
		logger.Warn("admin seed skipped: ADMIN_PASSWORD not set")
		return nil
	}
	email = user.NormalizeEmail(email)
	_, err := u.users.GetByEmail(ctx, email)
	switch {
	case err == nil:
		return nil
	case !errors.Is(err, user.ErrNotFound):
		return err
	}
	hash, err := u.hasher.Hash(password)
	if err != nil {
		return err
	}
	admin := &user.User{
		Name:         name,
		Email:        email,
		PasswordHash: hash,
		Role:         user.RoleAdmin,
		KYCStatus:    user.KYCVerified,
		IsActive:     true,
	}
	if err := u.users.Create(ctx, admin); err != nil {
		return err
	}
	logger.Info("admin account seeded", "user_id", admin.ID, "email", email)
	return nil
}
