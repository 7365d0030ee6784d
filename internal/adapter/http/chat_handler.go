package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"inclusionnet/internal/usecase/chat"
)

type ChatHandler struct{ uc *chat.Usecase }

func NewChatHandler(uc *chat.Usecase) *ChatHandler { return &ChatHandler{uc: uc} }

func (h *ChatHandler) Send(c echo.Context) error {
	id, ok := pathID(c, "id")
	if !ok {
		return fail(c, http.StatusBadRequest, "invalid loan request id")
	}
	var in chat.SendInput
	if ok, err := bindValid(c, &in); !ok {
		return err
	}
	dto, err := h.uc.Send(c.Request().Context(), actor(c), id, in)
	if err != nil {
		return writeError(c, err)
	}
	return respond(c, http.StatusCreated, dto)
}

func (h *ChatHandler) List(c echo.Context) error {
	id, ok := pathID(c, "id")
	if !ok {
		return fail(c, http.StatusBadRequest, "invalid loan request id")
	}
	p, err := pageParams(c)
	if err != nil {
		return writeError(c, err)
	}
	page, err := h.uc.List(c.Request().Context(), actor(c), id, p)
	if err != nil {
		return writeError(c, err)
	}
	return respond(c, http.StatusOK, page)
}
