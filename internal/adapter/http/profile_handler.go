package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"inclusionnet/internal/usecase/profile"
)

type ProfileHandler struct{ uc *profile.Usecase }

func NewProfileHandler(uc *profile.Usecase) *ProfileHandler { return &ProfileHandler{uc: uc} }

func (h *ProfileHandler) PutBorrower(c echo.Context) error {
	var in profile.BorrowerInput
	if ok, err := bindValid(c, &in); !ok {
		return err
	}
	dto, err := h.uc.PutBorrower(c.Request().Context(), actor(c), in)
	if err != nil {
		return writeError(c, err)
	}
	return respond(c, http.StatusOK, dto)
}

func (h *ProfileHandler) GetBorrower(c echo.Context) error {
	dto, err := h.uc.GetBorrower(c.Request().Context(), actor(c))
	if err != nil {
		return writeError(c, err)
	}
	return respond(c, http.StatusOK, dto)
}

func (h *ProfileHandler) PutLender(c echo.Context) error {
	var in profile.LenderInput
	if ok, err := bindValid(c, &in); !ok {
		return err
	}
	dto, err := h.uc.PutLender(c.Request().Context(), actor(c), in)
	if err != nil {
		return writeError(c, err)
	}
	return respond(c, http.StatusOK, dto)
}

func (h *ProfileHandler) GetLender(c echo.Context) error {
	dto, err := h.uc.GetLender(c.Request().Context(), actor(c))
	if err != nil {
		return writeError(c, err)
	}
	return respond(c, http.StatusOK, dto)
}
