package http

import (
	"context"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	domain "inclusionnet/internal/domain/loanrequest"
	"inclusionnet/internal/domain/user"
	"inclusionnet/internal/usecase/loanrequest"
)

type LoanRequestHandler struct{ uc *loanrequest.Usecase }

func NewLoanRequestHandler(uc *loanrequest.Usecase) *LoanRequestHandler {
	return &LoanRequestHandler{uc: uc}
}

func (h *LoanRequestHandler) Create(c echo.Context) error {
	var in loanrequest.CreateInput
	if ok, err := bindValid(c, &in); !ok {
		return err
	}
	dto, err := h.uc.Create(c.Request().Context(), actor(c), in)
	if err != nil {
		return writeError(c, err)
	}
	return respond(c, http.StatusCreated, dto)
}

func (h *LoanRequestHandler) Get(c echo.Context) error {
	id, ok := pathID(c, "id")
	if !ok {
		return fail(c, http.StatusBadRequest, "invalid loan request id")
	}
	dto, err := h.uc.Get(c.Request().Context(), actor(c), id)
	if err != nil {
		return writeError(c, err)
	}
	return respond(c, http.StatusOK, dto)
}

// List accepts ?box=sent|received and ?status=.
func (h *LoanRequestHandler) List(c echo.Context) error {
	box := domain.Box(strings.ToLower(strings.TrimSpace(c.QueryParam("box"))))
	switch box {
	case "", domain.BoxSent, domain.BoxReceived:
	default:
		return fail(c, http.StatusBadRequest, "box must be sent or received")
	}
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
	page, err := h.uc.List(c.Request().Context(), actor(c), box, status, p)
	if err != nil {
		return writeError(c, err)
	}
	return respond(c, http.StatusOK, page)
}

func (h *LoanRequestHandler) Accept(c echo.Context) error { return h.transition(c, h.uc.Accept) }
func (h *LoanRequestHandler) Reject(c echo.Context) error { return h.transition(c, h.uc.Reject) }
func (h *LoanRequestHandler) Cancel(c echo.Context) error { return h.transition(c, h.uc.Cancel) }

func (h *LoanRequestHandler) transition(c echo.Context, op func(ctx context.Context, a user.Actor, id uint64) (*loanrequest.RequestDTO, error)) error {
	id, ok := pathID(c, "id")
	if !ok {
		return fail(c, http.StatusBadRequest, "invalid loan request id")
	}
	dto, err := op(c.Request().Context(), actor(c), id)
	if err != nil {
		return writeError(c, err)
	}
	return respond(c, http.StatusOK, dto)
}
