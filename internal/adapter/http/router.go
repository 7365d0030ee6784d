package http

import (
	"time"

	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"

	mw "inclusionnet/internal/adapter/middleware"
	"inclusionnet/internal/domain/user"
)

type Routes struct {
	Health      *Handler
	Auth        *AuthHandler
	Profiles    *ProfileHandler
	Eligibility *EligibilityHandler
	Loans       *LoanHandler
	Requests    *LoanRequestHandler
	KYC         *KYCHandler
	Chat        *ChatHandler

	Tokens         mw.TokenParser
	Redis          *redis.Client
	IdempotencyTTL time.Duration
}

// Register mounts every route on e and installs the validator.
func Register(e *echo.Echo, r Routes) {
	e.Validator = NewValidator()
	e.GET("/health", r.Health.Health)

	api := e.Group("/api")
	api.POST("/auth/register", r.Auth.Register)
	api.POST("/auth/login", r.Auth.Login)

	authed := api.Group("", mw.Auth(r.Tokens))
	idem := mw.Idempotency(r.Redis, r.IdempotencyTTL)
	borrower := mw.RequireRole(user.RoleBorrower)
	lender := mw.RequireRole(user.RoleLender)
	admin := mw.RequireRole(user.RoleAdmin)

	authed.GET("/auth/me", r.Auth.Me)

	authed.PUT("/borrowers/me/profile", r.Profiles.PutBorrower, borrower)
	authed.GET("/borrowers/me/profile", r.Profiles.GetBorrower, borrower)
	authed.GET("/borrowers/me/eligibility", r.Eligibility.Mine, borrower)
	authed.PUT("/lenders/me/profile", r.Profiles.PutLender, lender)
	authed.GET("/lenders/me/profile", r.Profiles.GetLender, lender)
	authed.POST("/eligibility", r.Eligibility.Calculate)

	authed.POST("/loans", r.Loans.CreateLoan, borrower, idem)
	authed.GET("/loans/mine", r.Loans.ListMine, borrower)
	authed.GET("/loans/matching-loans", r.Loans.MatchingLoans, lender)
	authed.GET("/loans/:id", r.Loans.GetLoan)
	authed.GET("/loans/:id/schedule", r.Loans.Schedule)
	authed.GET("/loans/:id/matching-lenders", r.Loans.MatchingLenders)

	authed.POST("/loan-requests", r.Requests.Create, idem)
	authed.GET("/loan-requests", r.Requests.List)
	authed.GET("/loan-requests/:id", r.Requests.Get)
	authed.PATCH("/loan-requests/:id/accept", r.Requests.Accept, idem)
	authed.PATCH("/loan-requests/:id/reject", r.Requests.Reject, idem)
	authed.PATCH("/loan-requests/:id/cancel", r.Requests.Cancel, idem)
	authed.GET("/loan-requests/:id/messages", r.Chat.List)
	authed.POST("/loan-requests/:id/messages", r.Chat.Send)

	authed.POST("/kyc/documents", r.KYC.Submit)
	authed.GET("/kyc/documents/mine", r.KYC.ListMine)

	adm := authed.Group("/admin", admin)
	adm.GET("/loans", r.Loans.AdminList)
	adm.PATCH("/loans/:id/status", r.Loans.UpdateStatus)
	adm.GET("/kyc/documents", r.KYC.AdminList)
	adm.PATCH("/kyc/documents/:id/verify", r.KYC.Verify)
	adm.PATCH("/kyc/documents/:id/reject", r.KYC.Reject)
}
