package http

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	domain "inclusionnet/internal/domain/loan"
	"inclusionnet/internal/usecase/loan"
	"inclusionnet/internal/usecase/matching"
)

type LoanHandler struct {
	uc    *loan.Usecase
	match *matching.Usecase
}

func NewLoanHandler(uc *loan.Usecase, match *matching.Usecase) *LoanHandler {
	return &LoanHandler{uc: uc, match: match}
}

func (h *LoanHandler) CreateLoan(c echo.Context) error {
	var in loan.CreateInput
	if ok, err := bindValid(c, &in); !ok {
		return err
	}
	dto, err := h.uc.Create(c.Request().Context(), actor(c), in)
	if err != nil {
		return writeError(c, err)
	}
	return respond(c, http.StatusCreated, dto)
}

func (h *LoanHandler) GetLoan(c echo.Context) error {
	id, ok := pathID(c, "id")
	if !ok {
		return fail(c, http.StatusBadRequest, "invalid loan id")
	}
	dto, err := h.uc.Get(c.Request().Context(), actor(c), id)
	if err != nil {
		return writeError(c, err)
	}
	return respond(c, http.StatusOK, dto)
}

func (h *LoanHandler) ListMine(c echo.Context) error {
	p, err := pageParams(c)
	if err != nil {
		return writeError(c, err)
	}
	page, err := h.uc.ListMine(c.Request().Context(), actor(c), p)
	if err != nil {
		return writeError(c, err)
	}
	return respond(c, http.StatusOK, page)
}

func (h *LoanHandler) Schedule(c echo.Context) error {
	id, ok := pathID(c, "id")
	if !ok {
		return fail(c, http.StatusBadRequest, "invalid loan id")
	}
	rate, err := queryFloat(c, "annualInterestRate")
	if err != nil {
		return fail(c, http.StatusBadRequest, err.Error())
	}
	var annual float64
	if rate != nil {
		annual = *rate
	}
	dto, err := h.uc.Schedule(c.Request().Context(), actor(c), id, annual)
	if err != nil {
		return writeError(c, err)
	}
	return respond(c, http.StatusOK, dto)
}

// AdminList filters by ?status= when given.
func (h *LoanHandler) AdminList(c echo.Context) error {
	var status *domain.Status
	if raw := strings.ToUpper(strings.TrimSpace(c.QueryParam("status"))); raw != "" {
		s := domain.Status(raw)
		if !s.Valid() {
			return fail(c, http.StatusBadRequest, "invalid status")
		}
		status = &s
	}
	p, err := pageParams(c)
	if err != nil {
		return writeError(c, err)
	}
	page, err := h.uc.ListByStatus(c.Request().Context(), status, p)
	if err != nil {
		return writeError(c, err)
	}
	return respond(c, http.StatusOK, page)
}

func (h *LoanHandler) UpdateStatus(c echo.Context) error {
	id, ok := pathID(c, "id")
	if !ok {
		return fail(c, http.StatusBadRequest, "invalid loan id")
	}
	var in loan.UpdateStatusInput
	if ok, err := bindValid(c, &in); !ok {
		return err
	}
	dto, err := h.uc.UpdateStatus(c.Request().Context(), actor(c), id, in)
	if err != nil {
		return writeError(c, err)
	}
	return respond(c, http.StatusOK, dto)
}

func (h *LoanHandler) MatchingLenders(c echo.Context) error {
	id, ok := pathID(c, "id")
	if !ok {
		return fail(c, http.StatusBadRequest, "invalid loan id")
	}
	maxRate, err := queryFloat(c, "maxInterestRate")
	if err != nil {
		return fail(c, http.StatusBadRequest, err.Error())
	}
	p, err := pageParams(c)
	if err != nil {
		return writeError(c, err)
	}
	page, err := h.match.MatchingLenders(c.Request().Context(), actor(c), matching.LendersQuery{
		LoanID:          id,
		MaxInterestRate: maxRate,
		Page:            p,
	})
	if err != nil {
		return writeError(c, err)
	}
	return respond(c, http.StatusOK, page)
}

func (h *LoanHandler) MatchingLoans(c echo.Context) error {
	var q matching.LoansQuery
	var err error
	if q.MinCreditScore, err = queryInt(c, "minCreditScore"); err != nil {
		return fail(c, http.StatusBadRequest, err.Error())
	}
	if q.MinTenureMonths, err = queryInt(c, "minTenureMonths"); err != nil {
		return fail(c, http.StatusBadRequest, err.Error())
	}
	if q.MaxTenureMonths, err = queryInt(c, "maxTenureMonths"); err != nil {
		return fail(c, http.StatusBadRequest, err.Error())
	}
	if q.Page, err = pageParams(c); err != nil {
		return writeError(c, err)
	}
	page, err := h.match.MatchingLoans(c.Request().Context(), actor(c), q)
	if err != nil {
		return writeError(c, err)
	}
	return respond(c, http.StatusOK, page)
}
