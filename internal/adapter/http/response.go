package http

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"inclusionnet/internal/adapter/middleware"
	"inclusionnet/internal/domain/chat"
	"inclusionnet/internal/domain/kyc"
	"inclusionnet/internal/domain/loan"
	"inclusionnet/internal/domain/loanrequest"
	"inclusionnet/internal/domain/profile"
	"inclusionnet/internal/domain/user"
	"inclusionnet/internal/logger"
	authuc "inclusionnet/internal/usecase/auth"
	chatuc "inclusionnet/internal/usecase/chat"
	kycuc "inclusionnet/internal/usecase/kyc"
	loanuc "inclusionnet/internal/usecase/loan"
	requc "inclusionnet/internal/usecase/loanrequest"
	matchuc "inclusionnet/internal/usecase/matching"
	"inclusionnet/pkg/cursor"
)

type envelope struct {
	Data any `json:"data"`
}

func respond(c echo.Context, code int, v any) error {
	return c.JSON(code, envelope{Data: v})
}

func fail(c echo.Context, code int, msg string, details ...FieldError) error {
	return c.JSON(code, ErrorResponse{Error: msg, Details: details})
}

var errorStatus = []struct {
	status int
	errs   []error
}{
	{http.StatusBadRequest, []error{
		cursor.ErrInvalidCursor, cursor.ErrInvalidTake, loanuc.ErrInvalidInput, kycuc.ErrInvalidDocument,
		chatuc.ErrEmptyMessage, matchuc.ErrInvalidRange, requc.ErrLenderRequired, authuc.ErrRoleNotAllowed,
	}},
	{http.StatusUnauthorized, []error{user.ErrInvalidCredentials}},
	{http.StatusForbidden, []error{
		user.ErrForbidden, user.ErrInactive, loan.ErrNotOwner, loanrequest.ErrNotParticipant,
		loanrequest.ErrNotCounterparty, loanrequest.ErrNotInitiator, chat.ErrLocked,
	}},
	{http.StatusNotFound, []error{
		user.ErrNotFound, profile.ErrNotFound, loan.ErrNotFound, loanrequest.ErrNotFound, kyc.ErrNotFound,
	}},
	{http.StatusConflict, []error{
		loan.ErrInvalidTransition, loan.ErrOpenApplication, loanrequest.ErrInvalidTransition,
		loanrequest.ErrDuplicatePending, profile.ErrInsufficientFunds, kyc.ErrAlreadyReviewed,
		user.ErrEmailTaken, requc.ErrLoanUnavailable, matchuc.ErrLoanUnavailable,
	}},
	{http.StatusUnprocessableEntity, []error{requc.ErrLenderUnavailable}},
}

// statusFor maps domain errors to HTTP codes; anything unknown is a 500.
func statusFor(err error) int {
	for _, group := range errorStatus {
		for _, target := range group.errs {
			if errors.Is(err, target) {
				return group.status
			}
		}
	}
	return http.StatusInternalServerError
}

func writeError(c echo.Context, err error) error {
	code := statusFor(err)
	if code == http.StatusInternalServerError {
		logger.ErrorContext(c.Request().Context(), "request failed",
			"method", c.Request().Method, "path", c.Path(), "err", err)
		return fail(c, code, "internal server error")
	}
	return fail(c, code, err.Error())
}

// bindValid binds the body into dst and validates it, writing the 400 itself.
// ok is false when the response has been written.
func bindValid(c echo.Context, dst any) (ok bool, err error) {
	if err := c.Bind(dst); err != nil {
		return false, fail(c, http.StatusBadRequest, "invalid body")
	}
	if err := c.Validate(dst); err != nil {
		return false, fail(c, http.StatusBadRequest, "validation failed", ToFieldErrors(err)...)
	}
	return true, nil
}

func actor(c echo.Context) user.Actor {
	a, _ := middleware.ActorFrom(c)
	return a
}

func pathID(c echo.Context, name string) (uint64, bool) {
	v, err := strconv.ParseUint(c.Param(name), 10, 64)
	return v, err == nil && v > 0
}

func pageParams(c echo.Context) (cursor.Params, error) {
	return cursor.Parse(c.QueryParam("cursorId"), c.QueryParam("take"))
}

// queryFloat returns nil for an absent value.
func queryFloat(c echo.Context, name string) (*float64, error) {
	raw := strings.TrimSpace(c.QueryParam(name))
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || v < 0 {
		return nil, errors.New(name + " must be a non-negative number")
	}
	return &v, nil
}

func queryInt(c echo.Context, name string) (*int, error) {
	raw := strings.TrimSpace(c.QueryParam(name))
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v < 0 {
		return nil, errors.New(name + " must be a non-negative integer")
	}
	return &v, nil
}
