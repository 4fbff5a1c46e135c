package handler

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"photovault/internal/application/usecase/abstraction"
	"photovault/internal/presentation"
)

type GetHandler struct {
	getter abstraction.Getter
}

func NewGetHandler(getter abstraction.Getter) *GetHandler {
	return &GetHandler{
		getter: getter,
	}
}

// HandleGet handles GET /photos/:id requests.
func (h *GetHandler) HandleGet(c echo.Context) error {
	id := c.Param(presentation.IDParam)
	if id == "" {
		c.Response().Header().Set(presentation.ReasonTag, "missing photo id")

		return c.NoContent(http.StatusBadRequest)
	}

	download, err := h.getter.GetOne(c.Request().Context(), id)
	if err != nil {
		c.Response().Header().Set(presentation.ReasonTag, err.Error())

		return c.NoContent(statusFromError(err))
	}
	defer download.Body.Close()

	setBlobHeaders(c, id, download.Size, download.Filename)

	return c.Stream(http.StatusOK, download.ContentType, download.Body)
}

// setBlobHeaders marks responses as immutable: blob content never changes
// for a given id, so clients may cache indefinitely keyed by it.
func setBlobHeaders(c echo.Context, id string, size int64, filename string) {
	header := c.Response().Header()
	header.Set("Content-Length", fmt.Sprintf("%d", size))
	header.Set("Content-Disposition", fmt.Sprintf("inline; filename=%q", filename))
	header.Set("Cache-Control", "public, max-age=31536000, immutable")
	header.Set("ETag", fmt.Sprintf("%q", id))
}
