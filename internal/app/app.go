// Package app wires repositories, use cases and HTTP handlers together.
package app

import (
	"context"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	httpadp "inclusionnet/internal/adapter/http"
	"inclusionnet/internal/adapter/repository/mysql"
	"inclusionnet/internal/config"
	"inclusionnet/internal/infrastructure/cache"
	"inclusionnet/internal/jobs"
	"inclusionnet/internal/security"
	"inclusionnet/internal/usecase/auth"
	"inclusionnet/internal/usecase/chat"
	"inclusionnet/internal/usecase/eligibility"
	"inclusionnet/internal/usecase/kyc"
	"inclusionnet/internal/usecase/loan"
	"inclusionnet/internal/usecase/loanrequest"
	"inclusionnet/internal/usecase/matching"
	"inclusionnet/internal/usecase/profile"
	"inclusionnet/pkg/id"
)

type App struct {
	Echo *echo.Echo
	Jobs *jobs.JobRunner
	Auth *auth.Usecase
}

func New(cfg *config.Config, db *gorm.DB, rdb *redis.Client) *App {
	users := mysql.NewUserRepository(db)
	borrowers := mysql.NewBorrowerProfileRepository(db)
	lenders := mysql.NewLenderProfileRepository(db)
	loans := mysql.NewLoanRepository(db)
	requests := mysql.NewLoanRequestRepository(db)
	docs := mysql.NewKYCRepository(db)
	messages := mysql.NewChatRepository(db)
	tx := mysql.NewGormUoW(db)

	tokens := security.NewTokenManager(cfg.JWTSecret, cfg.TokenTTL())
	authUC := auth.NewUsecase(users, security.NewHasher(cfg.BcryptCost), tokens)
	loanUC := loan.NewUsecase(loans, borrowers, tx)
	requestUC := loanrequest.NewUsecase(requests, tx)

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Use(
		middleware.RequestIDWithConfig(middleware.RequestIDConfig{Generator: id.NewID32}),
		middleware.Logger(),
		middleware.Recover(),
		middleware.CORSWithConfig(middleware.CORSConfig{
			AllowOrigins: cfg.AllowedOrigins,
			AllowHeaders: []string{
				echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization,
				"X-Idempotency-Key", "X-Request-At",
			},
		}),
	)

	httpadp.Register(e, httpadp.Routes{
		Health: httpadp.NewHandler(map[string]httpadp.Pinger{
			"db": func(ctx context.Context) error {
				sqlDB, err := db.DB()
				if err != nil {
					return err
				}
				return sqlDB.PingContext(ctx)
			},
			"redis": func(ctx context.Context) error { return rdb.Ping(ctx).Err() },
		}),
		Auth:     httpadp.NewAuthHandler(authUC),
		Profiles: httpadp.NewProfileHandler(profile.NewUsecase(borrowers, lenders)),
		Eligibility: httpadp.NewEligibilityHandler(eligibility.NewUsecase(
			borrowers, cache.NewJSONStore(rdb, "eligibility:"), cfg.EligibilityCacheTTL(),
		)),
		Loans:    httpadp.NewLoanHandler(loanUC, matching.NewUsecase(loans, lenders)),
		Requests: httpadp.NewLoanRequestHandler(requestUC),
		KYC:      httpadp.NewKYCHandler(kyc.NewUsecase(docs, tx)),
		Chat:     httpadp.NewChatHandler(chat.NewUsecase(messages, requests)),

		Tokens:         tokens,
		Redis:          rdb,
		IdempotencyTTL: cfg.IdempotencyTTL(),
	})

	return &App{
		Echo: e,
		Jobs: jobs.NewJobRunner(requestUC, cfg.RequestExpiry()),
		Auth: authUC,
	}
}
