package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"inclusionnet/internal/usecase/eligibility"
)

type EligibilityHandler struct{ uc *eligibility.Usecase }

func NewEligibilityHandler(uc *eligibility.Usecase) *EligibilityHandler {
	return &EligibilityHandler{uc: uc}
}

// Calculate takes every input from the body.
func (h *EligibilityHandler) Calculate(c echo.Context) error {
	var in eligibility.Input
	if ok, err := bindValid(c, &in); !ok {
		return err
	}
	return respond(c, http.StatusOK, h.uc.Calculate(c.Request().Context(), in))
}

// Mine reads income and obligations from the caller's borrower profile.
func (h *EligibilityHandler) Mine(c echo.Context) error {
	tenure, err := queryInt(c, "tenureMonths")
	if err != nil {
		return fail(c, http.StatusBadRequest, err.Error())
	}
	if tenure == nil || *tenure == 0 {
		return fail(c, http.StatusBadRequest, "tenureMonths is required")
	}
	rate, err := queryFloat(c, "annualInterestRate")
	if err != nil {
		return fail(c, http.StatusBadRequest, err.Error())
	}
	if rate != nil && (*rate < 0 || *rate > 100) {
		return fail(c, http.StatusBadRequest, "annualInterestRate must be between 0 and 100")
	}
	res, err := h.uc.ForBorrower(c.Request().Context(), actor(c), *tenure, rate)
	if err != nil {
		return writeError(c, err)
	}
	return respond(c, http.StatusOK, res)
}
