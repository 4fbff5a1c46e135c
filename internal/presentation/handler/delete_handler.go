package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"photovault/internal/application/usecase/abstraction"
	"photovault/internal/presentation"
)

type DeleteHandler struct {
	deleter abstraction.Deleter
}

func NewDeleteHandler(deleter abstraction.Deleter) *DeleteHandler {
	return &DeleteHandler{
		deleter: deleter,
	}
}

// HandleDelete handles DELETE /photos/:id requests. Unknown ids succeed.
func (h *DeleteHandler) HandleDelete(c echo.Context) error {
	id := c.Param(presentation.IDParam)
	if id == "" {
		c.Response().Header().Set(presentation.ReasonTag, "missing photo id")

		return c.NoContent(http.StatusBadRequest)
	}

	if err := h.deleter.DeleteOne(c.Request().Context(), id); err != nil {
		c.Response().Header().Set(presentation.ReasonTag, err.Error())

		return c.NoContent(statusFromError(err))
	}

	return c.NoContent(http.StatusNoContent)
}

// HandleDeleteVisit handles DELETE /visits/:visitId/photos requests.
func (h *DeleteHandler) HandleDeleteVisit(c echo.Context) error {
	visitID := c.Param(presentation.VisitIDParam)
	if visitID == "" {
		c.Response().Header().Set(presentation.ReasonTag, "missing visit id")

		return c.NoContent(http.StatusBadRequest)
	}

	if err := h.deleter.DeleteAllForVisit(c.Request().Context(), visitID); err != nil {
		c.Response().Header().Set(presentation.ReasonTag, err.Error())

		return c.NoContent(statusFromError(err))
	}

	return c.NoContent(http.StatusNoContent)
}
