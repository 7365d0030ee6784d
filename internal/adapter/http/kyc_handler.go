package http

import (
	"context"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	domain "inclusionnet/internal/domain/kyc"
	"inclusionnet/internal/domain/user"
	"inclusionnet/internal/usecase/kyc"
)

type KYCHandler struct{ uc *kyc.Usecase }

func NewKYCHandler(uc *kyc.Usecase) *KYCHandler { return &KYCHandler{uc: uc} }

func (h *KYCHandler) Submit(c echo.Context) error {
	var in kyc.SubmitInput
	if ok, err := bindValid(c, &in); !ok {
		return err
	}
	dto, err := h.uc.Submit(c.Request().Context(), actor(c), in)
	if err != nil {
		return writeError(c, err)
	}
	return respond(c, http.StatusCreated, dto)
}

func (h *KYCHandler) ListMine(c echo.Context) error {
	docs, err := h.uc.ListMine(c.Request().Context(), actor(c))
	if err != nil {
		return writeError(c, err)
	}
	return respond(c, http.StatusOK, docs)
}

func (h *KYCHandler) AdminList(c echo.Context) error {
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

func (h *KYCHandler) Verify(c echo.Context) error { return h.review(c, h.uc.Verify) }
func (h *KYCHandler) Reject(c echo.Context) error { return h.review(c, h.uc.Reject) }

type reviewFunc = func(ctx context.Context, a user.Actor, id uint64, in kyc.ReviewInput) (*kyc.DocumentDTO, error)

func (h *KYCHandler) review(c echo.Context, op reviewFunc) error {
	id, ok := pathID(c, "id")
	if !ok {
		return fail(c, http.StatusBadRequest, "invalid document id")
	}
	var in kyc.ReviewInput
	if ok, err := bindValid(c, &in); !ok {
		return err
	}
	dto, err := op(c.Request().Context(), actor(c), id, in)
	if err != nil {
		return writeError(c, err)
	}
	return respond(c, http.StatusOK, dto)
}
