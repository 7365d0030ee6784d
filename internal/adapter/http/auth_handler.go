package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"inclusionnet/internal/usecase/auth"
)

type AuthHandler struct{ uc *auth.Usecase }

func NewAuthHandler(uc *auth.Usecase) *AuthHandler { return &AuthHandler{uc: uc} }

func (h *AuthHandler) Register(c echo.Context) error {
	var in auth.RegisterInput
	if ok, err := bindValid(c, &in); !ok {
		return err
	}
	dto, err := h.uc.Register(c.Request().Context(), in)
	if err != nil {
		return writeError(c, err)
	}
	return respond(c, http.StatusCreated, dto)
}

func (h *AuthHandler) Login(c echo.Context) error {
	var in auth.LoginInput
	if ok, err := bindValid(c, &in); !ok {
		return err
	}
	dto, err := h.uc.Login(c.Request().Context(), in)
	if err != nil {
		return writeError(c, err)
	}
	return respond(c, http.StatusOK, dto)
}

func (h *AuthHandler) Me(c echo.Context) error {
	dto, err := h.uc.Me(c.Request().Context(), actor(c))
	if err != nil {
		return writeError(c, err)
	}
	return respond(c, http.StatusOK, dto)
}
