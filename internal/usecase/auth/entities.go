package auth

import (
	"time"

	"inclusionnet/internal/domain/user"
)

type RegisterInput struct {
	Name     string    `json:"name" validate:"required,min=2,max=120"`
	Email    string    `json:"email" validate:"required,email,max=191"`
	Password string    `json:"password" validate:"required,min=8,max=72"`
	Role     user.Role `json:"role" validate:"required,oneof=BORROWER LENDER"`
}

type LoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type UserDTO struct {
	ID        uint64         `json:"id"`
	Name      string         `json:"name"`
	Email     string         `json:"email"`
	Role      user.Role      `json:"role"`
	KYCStatus user.KYCStatus `json:"kycStatus"`
	IsActive  bool           `json:"isActive"`
	CreatedAt time.Time      `json:"createdAt"`
}

type TokenDTO struct {
	AccessToken string    `json:"accessToken"`
	TokenType   string    `json:"tokenType"`
	ExpiresAt   time.Time `json:"expiresAt"`
	User        UserDTO   `json:"user"`
}

func toUserDTO(u *user.User) UserDTO {
	return UserDTO{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Role:      u.Role,
		KYCStatus: u.KYCStatus,
		IsActive:  u.IsActive,
		CreatedAt: u.CreatedAt,
	}
}
